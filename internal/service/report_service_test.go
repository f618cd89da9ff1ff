package service

import (
	"context"
	"testing"
	"time"

	"fisk-dimension/internal/models"
	"fisk-dimension/internal/repository"

	"cloud.google.com/go/civil"
	"go.uber.org/zap"
)

func reportFixture() []*models.Transaction {
	rec := func(id, date string, typ models.TransactionType, category string, amount float64) *models.Transaction {
		return &models.Transaction{
			ID:        id,
			Timestamp: time.Now().UnixMilli(),
			Data: models.EventData{
				Type: typ, Category: category, Date: date,
				Amount: amountPtr(amount), Currency: "USD",
			},
		}
	}
	return []*models.Transaction{
		rec("1", "2023-01-15", models.TypeRevenue, "Software Sales", 5000),
		rec("2", "2023-01-20", models.TypeExpense, "Marketing", 500),
		rec("3", "2023-02-10", models.TypeRevenue, "Consulting", 3000),
		rec("4", "2023-02-25", models.TypeExpense, "Office Supplies", 150),
		rec("5", "2023-03-05", models.TypeRevenue, "Software Sales", 6000),
		rec("6", "2023-03-15", models.TypeExpense, "Salaries", 8000),
		rec("7", "2023-04-10", models.TypeRevenue, "Maintenance", 1200),
		rec("8", "2023-04-20", models.TypeExpense, "Cloud Hosting", 300),
		rec("9", "2022-12-31", models.TypeExpense, "Marketing", 200),
		// Non-financial records are ignored.
		{ID: "10", Data: models.EventData{Type: models.TypeAuditLog, Date: "2023-01-01"}},
	}
}

func newReportService(records []*models.Transaction) *ReportService {
	repo := repository.NewMemoryTransactionRepository(func() []*models.Transaction { return records })
	return NewReportService(repo, zap.NewNop())
}

func TestReportSummary(t *testing.T) {
	summary, err := newReportService(reportFixture()).Summary(context.Background(), nil)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}

	wantPeriods := []string{"Dec 2022", "Jan 2023", "Feb 2023", "Mar 2023", "Apr 2023"}
	if len(summary.Periods) != len(wantPeriods) {
		t.Fatalf("got %d periods", len(summary.Periods))
	}
	for i, p := range summary.Periods {
		if p.Period != wantPeriods[i] {
			t.Fatalf("period %d = %s, want %s", i, p.Period, wantPeriods[i])
		}
	}

	mar := summary.Periods[3]
	if mar.Revenue.String() != "6000" || mar.Expenses.String() != "8000" || mar.Profit.String() != "-2000" {
		t.Fatalf("Mar 2023 = %+v", mar)
	}

	if summary.ExpenseBreakdown[0].Name != "Salaries" {
		t.Fatalf("largest category = %s", summary.ExpenseBreakdown[0].Name)
	}
	for i := 1; i < len(summary.ExpenseBreakdown); i++ {
		if summary.ExpenseBreakdown[i-1].Value.LessThan(summary.ExpenseBreakdown[i].Value) {
			t.Fatalf("breakdown not sorted at %d", i)
		}
	}
	if summary.TotalRevenue.String() != "15200" || summary.TotalExpenses.String() != "9150" || summary.NetProfit.String() != "6050" {
		t.Fatalf("totals = %s / %s / %s", summary.TotalRevenue, summary.TotalExpenses, summary.NetProfit)
	}
}

func TestReportSummaryDateRange(t *testing.T) {
	rng := &DateRange{
		From: civil.Date{Year: 2023, Month: 2, Day: 1},
		To:   civil.Date{Year: 2023, Month: 3, Day: 5},
	}
	summary, err := newReportService(reportFixture()).Summary(context.Background(), rng)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if len(summary.Periods) != 2 || summary.Periods[0].Period != "Feb 2023" || summary.Periods[1].Period != "Mar 2023" {
		t.Fatalf("periods = %+v", summary.Periods)
	}
	if summary.Periods[1].Expenses.String() != "0" {
		t.Fatalf("Mar 15 expense should be outside the range: %+v", summary.Periods[1])
	}
}

func TestReportSummaryEmpty(t *testing.T) {
	summary, err := newReportService(nil).Summary(context.Background(), nil)
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if summary.Periods == nil || summary.ExpenseBreakdown == nil || len(summary.Periods) != 0 {
		t.Fatalf("expected empty, non-nil slices: %+v", summary)
	}
}
