package models

import "strings"

type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

type ThreatStatus string

const (
	ThreatStatusNew           ThreatStatus = "new"
	ThreatStatusInvestigating ThreatStatus = "investigating"
	ThreatStatusResolved      ThreatStatus = "resolved"
)

func (s ThreatStatus) Valid() bool {
	switch s {
	case ThreatStatusNew, ThreatStatusInvestigating, ThreatStatusResolved:
		return true
	}
	return false
}

// Threat is a heuristically flagged record. Timestamp is unix milliseconds.
type Threat struct {
	ID        string       `json:"id"`
	Type      string       `json:"type"`
	Severity  Severity     `json:"severity"`
	Timestamp int64        `json:"timestamp"`
	Details   string       `json:"details,omitempty"`
	Status    ThreatStatus `json:"status,omitempty"`
}

// SeverityMatches compares severities case-insensitively ("high" matches High).
func SeverityMatches(s Severity, want string) bool {
	return strings.EqualFold(string(s), want)
}
