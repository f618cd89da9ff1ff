package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"fisk-dimension/internal/models"
	"fisk-dimension/internal/repository"

	"go.uber.org/zap"
)

// ThreatStore is the persistence side of the threat log.
type ThreatStore interface {
	Save(ctx context.Context, threat *models.Threat) error
	Get(ctx context.Context, id string) (*models.Threat, error)
	List(ctx context.Context) ([]*models.Threat, error)
	UpdateStatus(ctx context.Context, id string, status models.ThreatStatus) (*models.Threat, error)
}

// ThreatFilter narrows List. Empty slices match everything.
type ThreatFilter struct {
	Severities []string
	Statuses   []models.ThreatStatus
}

type ThreatService struct {
	classifier *ThreatClassifier
	store      ThreatStore
	latency    time.Duration
	logger     *zap.Logger
}

func NewThreatService(classifier *ThreatClassifier, store ThreatStore, latency time.Duration, logger *zap.Logger) *ThreatService {
	return &ThreatService{
		classifier: classifier,
		store:      store,
		latency:    latency,
		logger:     logger,
	}
}

// Detect parses a raw analysis body and classifies it. A nil threat with a nil error means
// nothing was flagged.
func (s *ThreatService) Detect(ctx context.Context, body []byte) (*models.Threat, error) {
	in, err := ParseThreatPayload(body)
	if err != nil {
		return nil, err
	}
	return s.Analyze(ctx, in)
}

// Analyze classifies an already parsed input and records any threat it yields.
func (s *ThreatService) Analyze(ctx context.Context, in ThreatInput) (threat *models.Threat, err error) {
	defer func() {
		if r := recover(); r != nil {
			threat = nil
			err = fmt.Errorf("threat classification panicked: %v", r)
		}
	}()

	if in.Shape == ShapeMixed {
		s.logger.Warn("Threat payload mixes top-level fields with transactionData")
	}

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	rule, threat := s.classifier.classify(in)
	if threat == nil {
		s.logger.Debug("No threat detected", zap.String("shape", string(in.Shape)))
		return nil, nil
	}

	s.logger.Info("Threat detected",
		zap.String("rule", rule),
		zap.String("threat_id", threat.ID),
		zap.String("type", threat.Type),
		zap.String("severity", string(threat.Severity)),
	)

	if s.store != nil {
		if err := s.store.Save(ctx, threat); err != nil {
			// The caller still gets the threat; the log is best effort.
			s.logger.Warn("Failed to store threat", zap.String("threat_id", threat.ID), zap.Error(err))
		}
	}

	return threat, nil
}

// List returns stored threats matching filter, newest first.
func (s *ThreatService) List(ctx context.Context, filter ThreatFilter) ([]*models.Threat, error) {
	all, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list threats: %w", err)
	}

	out := make([]*models.Threat, 0, len(all))
	for _, t := range all {
		if filter.matches(t) {
			out = append(out, t)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Timestamp != out[j].Timestamp {
			return out[i].Timestamp > out[j].Timestamp
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (f ThreatFilter) matches(t *models.Threat) bool {
	if len(f.Severities) > 0 {
		ok := false
		for _, want := range f.Severities {
			if models.SeverityMatches(t.Severity, want) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	if len(f.Statuses) > 0 {
		status := t.Status
		if status == "" {
			status = models.ThreatStatusNew
		}
		for _, want := range f.Statuses {
			if status == want {
				return true
			}
		}
		return false
	}
	return true
}

// UpdateStatus moves a threat to status.
func (s *ThreatService) UpdateStatus(ctx context.Context, id string, status models.ThreatStatus) (*models.Threat, error) {
	if !status.Valid() {
		return nil, ErrInvalidThreatStatus
	}

	threat, err := s.store.UpdateStatus(ctx, id, status)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrThreatNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update threat %s: %w", id, err)
	}

	s.logger.Info("Threat status updated", zap.String("threat_id", id), zap.String("status", string(status)))
	return threat, nil
}
