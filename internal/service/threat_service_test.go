package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fisk-dimension/internal/models"
	"fisk-dimension/internal/repository"

	"go.uber.org/zap"
)

type failingThreatStore struct {
	*repository.MemoryThreatRepository
}

func (failingThreatStore) Save(ctx context.Context, threat *models.Threat) error {
	return errors.New("store unavailable")
}

func newTestThreatService(store ThreatStore, latency time.Duration) *ThreatService {
	return NewThreatService(NewThreatClassifier(DefaultThreatRules(10000)), store, latency, zap.NewNop())
}

func TestThreatServiceDetectStoresThreat(t *testing.T) {
	store := repository.NewMemoryThreatRepository()
	svc := newTestThreatService(store, 0)
	ctx := context.Background()

	threat, err := svc.Detect(ctx, []byte(`{"description":"urgent payment please"}`))
	if err != nil {
		t.Fatalf("Detect: %v", err)
	}
	if threat == nil {
		t.Fatal("expected a threat")
	}

	stored, err := store.Get(ctx, threat.ID)
	if err != nil {
		t.Fatalf("threat not stored: %v", err)
	}
	if stored.Status != models.ThreatStatusNew {
		t.Fatalf("stored status = %s", stored.Status)
	}
}

func TestThreatServiceDetectNoThreat(t *testing.T) {
	store := repository.NewMemoryThreatRepository()
	svc := newTestThreatService(store, 0)

	threat, err := svc.Detect(context.Background(), []byte(`{"type":"revenue","amount":5}`))
	if err != nil || threat != nil {
		t.Fatalf("got %+v, %v", threat, err)
	}
	all, _ := store.List(context.Background())
	if len(all) != 0 {
		t.Fatalf("nothing should be stored, got %d", len(all))
	}
}

func TestThreatServiceDetectMalformed(t *testing.T) {
	svc := newTestThreatService(repository.NewMemoryThreatRepository(), 0)
	if _, err := svc.Detect(context.Background(), []byte(`{oops`)); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestThreatServiceStoreFailureIsNotFatal(t *testing.T) {
	svc := newTestThreatService(failingThreatStore{repository.NewMemoryThreatRepository()}, 0)
	threat, err := svc.Detect(context.Background(), []byte(`{"type":"expense","amount":20000}`))
	if err != nil || threat == nil {
		t.Fatalf("got %+v, %v", threat, err)
	}
}

func TestThreatServiceLatencyHonoursContext(t *testing.T) {
	svc := newTestThreatService(repository.NewMemoryThreatRepository(), time.Hour)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Detect(ctx, []byte(`{"type":"expense","amount":20000}`))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestThreatServiceRecoversFromPanickingRule(t *testing.T) {
	rules := []ThreatRule{{
		Name:  "broken",
		Match: func(ThreatInput) bool { panic("boom") },
	}}
	svc := NewThreatService(NewThreatClassifier(rules), repository.NewMemoryThreatRepository(), 0, zap.NewNop())

	threat, err := svc.Detect(context.Background(), []byte(`{}`))
	if err == nil || threat != nil {
		t.Fatalf("expected an error, got %+v, %v", threat, err)
	}
}

func TestThreatServiceList(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestThreatService(repository.NewMemoryThreatRepository(repository.SampleThreats(now)...), 0)
	ctx := context.Background()

	all, err := svc.List(ctx, ThreatFilter{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 7 {
		t.Fatalf("expected 7 threats, got %d", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1].Timestamp < all[i].Timestamp {
			t.Fatalf("threats not newest first at %d", i)
		}
	}

	high, err := svc.List(ctx, ThreatFilter{Severities: []string{"high", "CRITICAL"}})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(high) == 0 {
		t.Fatal("expected high or critical threats in the sample set")
	}
	for _, th := range high {
		if th.Severity != models.SeverityHigh && th.Severity != models.SeverityCritical {
			t.Fatalf("unexpected severity %s", th.Severity)
		}
	}

	resolved, _ := svc.List(ctx, ThreatFilter{Statuses: []models.ThreatStatus{models.ThreatStatusResolved}})
	for _, th := range resolved {
		if th.Status != models.ThreatStatusResolved {
			t.Fatalf("unexpected status %s", th.Status)
		}
	}
}

func TestThreatServiceUpdateStatus(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestThreatService(repository.NewMemoryThreatRepository(repository.SampleThreats(now)...), 0)
	ctx := context.Background()

	threat, err := svc.UpdateStatus(ctx, "threat-002", models.ThreatStatusInvestigating)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if threat.Status != models.ThreatStatusInvestigating {
		t.Fatalf("status = %s", threat.Status)
	}

	if _, err := svc.UpdateStatus(ctx, "nope", models.ThreatStatusResolved); !errors.Is(err, ErrThreatNotFound) {
		t.Fatalf("expected ErrThreatNotFound, got %v", err)
	}
	if _, err := svc.UpdateStatus(ctx, "threat-002", "closed"); !errors.Is(err, ErrInvalidThreatStatus) {
		t.Fatalf("expected ErrInvalidThreatStatus, got %v", err)
	}
}
