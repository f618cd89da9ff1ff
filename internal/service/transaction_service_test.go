package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"fisk-dimension/internal/dto"
	"fisk-dimension/internal/models"
	"fisk-dimension/internal/repository"

	"go.uber.org/zap"
)

type brokenProvider struct{}

func (brokenProvider) All(ctx context.Context) ([]*models.Transaction, error) {
	return nil, errors.New("connection refused")
}

func (brokenProvider) Create(ctx context.Context, tx *models.Transaction) error {
	return errors.New("connection refused")
}

func newTestTransactionService() (*TransactionService, *repository.MemoryTransactionRepository, *repository.MemoryThreatRepository) {
	txRepo := repository.NewMemoryTransactionRepository(nil)
	threatRepo := repository.NewMemoryThreatRepository()
	threats := newTestThreatService(threatRepo, 0)
	return NewTransactionService(txRepo, threats, zap.NewNop()), txRepo, threatRepo
}

func TestTransactionServiceCreate(t *testing.T) {
	svc, txRepo, threatRepo := newTestTransactionService()
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	svc.now = func() time.Time { return fixed }
	ctx := context.Background()

	resp, err := svc.Create(ctx, &dto.CreateTransactionRequest{
		Type:        "revenue",
		Amount:      amountPtr(99.5),
		Currency:    "USD",
		Description: "Subscription renewal",
		Date:        "2026-01-02",
		Category:    "Sales",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if !strings.HasPrefix(resp.ID, "evt_1767323045000_") {
		t.Fatalf("id = %q", resp.ID)
	}
	if resp.Status != models.StatusLogged || resp.Timestamp != fixed.UnixMilli() {
		t.Fatalf("unexpected record %+v", resp.Transaction)
	}
	if resp.Threat != nil {
		t.Fatalf("unexpected threat %+v", resp.Threat)
	}

	all, _ := txRepo.All(ctx)
	if len(all) != 1 || all[0].ID != resp.ID {
		t.Fatalf("record not stored: %+v", all)
	}
	threats, _ := threatRepo.List(ctx)
	if len(threats) != 0 {
		t.Fatalf("no threat should be stored, got %d", len(threats))
	}
}

func TestTransactionServiceCreateAttachesThreat(t *testing.T) {
	svc, txRepo, threatRepo := newTestTransactionService()
	ctx := context.Background()

	resp, err := svc.Create(ctx, &dto.CreateTransactionRequest{
		Type:        "expense",
		Amount:      amountPtr(25000),
		Currency:    "USD",
		Description: "New servers",
		Date:        "2026-01-02",
		Category:    "Hardware",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if resp.Threat == nil || resp.Threat.Type != "Unusually Large Expense" {
		t.Fatalf("expected a large expense threat, got %+v", resp.Threat)
	}

	// The submission is logged regardless.
	all, _ := txRepo.All(ctx)
	if len(all) != 1 {
		t.Fatalf("expected the record to be stored, got %d", len(all))
	}
	threats, _ := threatRepo.List(ctx)
	if len(threats) != 1 {
		t.Fatalf("expected the threat to be stored, got %d", len(threats))
	}
}

func TestTransactionServiceCreateStoreFailure(t *testing.T) {
	svc := NewTransactionService(brokenProvider{}, nil, zap.NewNop())
	_, err := svc.Create(context.Background(), &dto.CreateTransactionRequest{
		Type: "audit_log", Description: "x", Date: "2026-01-02", Category: "Compliance",
	})
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestTransactionServiceQuery(t *testing.T) {
	now := time.Now()
	txRepo := repository.NewMemoryTransactionRepository(func() []*models.Transaction {
		return repository.GenerateSampleTransactions(40, 5, now)
	})
	svc := NewTransactionService(txRepo, nil, zap.NewNop())

	page, err := svc.Query(context.Background(), TransactionQuery{Page: 2, Limit: 15})
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if page.Total != 40 || len(page.Items) != 15 {
		t.Fatalf("total %d, items %d", page.Total, len(page.Items))
	}

	if _, err := NewTransactionService(brokenProvider{}, nil, zap.NewNop()).Query(context.Background(), TransactionQuery{}); err == nil {
		t.Fatal("expected an error from a broken provider")
	}
}
