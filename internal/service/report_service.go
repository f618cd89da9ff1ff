package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"fisk-dimension/internal/dto"
	"fisk-dimension/internal/models"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type ReportService struct {
	provider TransactionProvider
	logger   *zap.Logger
}

func NewReportService(provider TransactionProvider, logger *zap.Logger) *ReportService {
	return &ReportService{
		provider: provider,
		logger:   logger,
	}
}

type monthKey struct {
	year  int
	month int
}

func (k monthKey) label() string {
	return fmt.Sprintf("%.3s %d", time.Month(k.month).String(), k.year)
}

type monthTotals struct {
	revenue  decimal.Decimal
	expenses decimal.Decimal
}

// Summary aggregates revenue and expense records by calendar month. Only records with
// an amount count. rng may be nil for the whole log.
func (s *ReportService) Summary(ctx context.Context, rng *DateRange) (*dto.ReportSummaryResponse, error) {
	records, err := s.provider.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}

	months := make(map[monthKey]*monthTotals)
	categories := make(map[string]decimal.Decimal)
	var totalRevenue, totalExpenses decimal.Decimal

	for _, r := range records {
		if r == nil || r.Data.Amount == nil {
			continue
		}
		if r.Data.Type != models.TypeRevenue && r.Data.Type != models.TypeExpense {
			continue
		}

		day := recordDate(r)
		if rng != nil && (day.Before(rng.From) || day.After(rng.To)) {
			continue
		}

		key := monthKey{year: day.Year, month: int(day.Month)}
		totals, ok := months[key]
		if !ok {
			totals = &monthTotals{}
			months[key] = totals
		}

		amount := *r.Data.Amount
		if r.Data.Type == models.TypeRevenue {
			totals.revenue = totals.revenue.Add(amount)
			totalRevenue = totalRevenue.Add(amount)
			continue
		}
		totals.expenses = totals.expenses.Add(amount)
		totalExpenses = totalExpenses.Add(amount)
		categories[r.Data.Category] = categories[r.Data.Category].Add(amount)
	}

	keys := make([]monthKey, 0, len(months))
	for k := range months {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	resp := &dto.ReportSummaryResponse{
		Periods:          make([]dto.PeriodSummary, 0, len(keys)),
		ExpenseBreakdown: make([]dto.CategoryTotal, 0, len(categories)),
		TotalRevenue:     totalRevenue,
		TotalExpenses:    totalExpenses,
		NetProfit:        totalRevenue.Sub(totalExpenses),
	}
	for _, k := range keys {
		t := months[k]
		resp.Periods = append(resp.Periods, dto.PeriodSummary{
			Period:   k.label(),
			Revenue:  t.revenue,
			Expenses: t.expenses,
			Profit:   t.revenue.Sub(t.expenses),
		})
	}

	for name, value := range categories {
		resp.ExpenseBreakdown = append(resp.ExpenseBreakdown, dto.CategoryTotal{Name: name, Value: value})
	}
	sort.Slice(resp.ExpenseBreakdown, func(i, j int) bool {
		a, b := resp.ExpenseBreakdown[i], resp.ExpenseBreakdown[j]
		if c := a.Value.Cmp(b.Value); c != 0 {
			return c > 0
		}
		return a.Name < b.Name
	})

	s.logger.Debug("Report summary built",
		zap.Int("records", len(records)),
		zap.Int("periods", len(resp.Periods)),
	)
	return resp, nil
}

// recordDate prefers the user-supplied event date and falls back to the log timestamp.
func recordDate(r *models.Transaction) civil.Date {
	if len(r.Data.Date) >= 10 {
		if d, err := civil.ParseDate(r.Data.Date[:10]); err == nil {
			return d
		}
	}
	return civil.DateOf(r.Time())
}
