package repository

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"fisk-dimension/internal/models"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestGenerateSampleTransactionsDeterministic(t *testing.T) {
	a := GenerateSampleTransactions(50, 7, t0)
	b := GenerateSampleTransactions(50, 7, t0)
	if len(a) != 50 || len(b) != 50 {
		t.Fatalf("expected 50 records, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i].ID != b[i].ID || a[i].Timestamp != b[i].Timestamp || a[i].Data.Description != b[i].Data.Description {
			t.Fatalf("record %d differs between runs", i)
		}
	}
}

func TestGenerateSampleTransactionsShape(t *testing.T) {
	records := GenerateSampleTransactions(250, 1, t0)
	oldest := t0.Add(-sampleWindow).UnixMilli()
	ids := make(map[string]bool)

	for i, r := range records {
		if ids[r.ID] {
			t.Fatalf("duplicate id %s", r.ID)
		}
		ids[r.ID] = true

		if r.Data.Type != models.AllTransactionTypes[i%len(models.AllTransactionTypes)] {
			t.Fatalf("record %d has type %s", i, r.Data.Type)
		}
		if r.Data.Type.IsFinancial() != (r.Data.Amount != nil) {
			t.Fatalf("record %d: amount presence does not match type %s", i, r.Data.Type)
		}
		if (r.Data.Amount == nil) != (r.Data.Currency == "") {
			t.Fatalf("record %d: amount and currency must be present together", i)
		}
		if r.Data.Category == "" {
			t.Fatalf("record %d has no category", i)
		}
		if r.Timestamp > t0.UnixMilli() || r.Timestamp < oldest {
			t.Fatalf("record %d timestamp out of window", i)
		}
	}
}

func TestTitleize(t *testing.T) {
	if got := titleize("contract_deploy"); got != "Contract Deploy" {
		t.Fatalf("titleize = %q", got)
	}
}

func TestMemoryTransactionRepositoryGeneratesOnce(t *testing.T) {
	var calls int32
	repo := NewMemoryTransactionRepository(func() []*models.Transaction {
		atomic.AddInt32(&calls, 1)
		return GenerateSampleTransactions(10, 1, t0)
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.All(context.Background()); err != nil {
				t.Errorf("All: %v", err)
			}
		}()
	}
	wg.Wait()

	if calls != 1 {
		t.Fatalf("generator called %d times, want 1", calls)
	}
}

func TestMemoryTransactionRepositoryCreate(t *testing.T) {
	repo := NewMemoryTransactionRepository(func() []*models.Transaction {
		return GenerateSampleTransactions(3, 1, t0)
	})
	ctx := context.Background()

	if err := repo.Create(ctx, &models.Transaction{ID: "evt_new", Timestamp: t0.UnixMilli()}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("expected 4 records, got %d", len(all))
	}

	// The returned slice is a snapshot.
	all[0] = nil
	again, _ := repo.All(ctx)
	if again[0] == nil {
		t.Fatal("caller mutation leaked into the repository")
	}
}

func TestMemoryThreatRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryThreatRepository(SampleThreats(t0)...)

	all, err := repo.List(ctx)
	if err != nil || len(all) != 7 {
		t.Fatalf("List = %d, %v; want 7", len(all), err)
	}

	updated, err := repo.UpdateStatus(ctx, "threat-001", models.ThreatStatusResolved)
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != models.ThreatStatusResolved {
		t.Fatalf("status = %s", updated.Status)
	}
	got, _ := repo.Get(ctx, "threat-001")
	if got.Status != models.ThreatStatusResolved {
		t.Fatalf("stored status = %s", got.Status)
	}

	// Mutating a returned value must not change the store.
	got.Type = "changed"
	again, _ := repo.Get(ctx, "threat-001")
	if again.Type == "changed" {
		t.Fatal("caller mutation leaked into the repository")
	}

	if _, err := repo.Get(ctx, "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get missing: %v", err)
	}
	if _, err := repo.UpdateStatus(ctx, "missing", models.ThreatStatusNew); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateStatus missing: %v", err)
	}

	if err := repo.Save(ctx, &models.Threat{ID: "threat_le_1", Type: "Unusually Large Expense"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	all, _ = repo.List(ctx)
	if len(all) != 8 {
		t.Fatalf("expected 8 threats, got %d", len(all))
	}
}
