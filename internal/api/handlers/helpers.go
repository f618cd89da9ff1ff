package handlers

import (
	"strings"

	"fisk-dimension/internal/service"

	"cloud.google.com/go/civil"
)

// splitList splits a comma separated query value, dropping blanks.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// parseDateRange returns nil unless both bounds are set. Inputs are assumed to be
// validated as YYYY-MM-DD already.
func parseDateRange(from, to string) (*service.DateRange, error) {
	if from == "" || to == "" {
		return nil, nil
	}
	f, err := civil.ParseDate(from)
	if err != nil {
		return nil, err
	}
	t, err := civil.ParseDate(to)
	if err != nil {
		return nil, err
	}
	return &service.DateRange{From: f, To: t}, nil
}
