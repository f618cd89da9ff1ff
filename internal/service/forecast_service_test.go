package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type fakeForecaster struct {
	out *ForecastOutput
	err error
}

func (f fakeForecaster) Forecast(ctx context.Context, in ForecastInput) (*ForecastOutput, error) {
	return f.out, f.err
}

func TestParseForecast(t *testing.T) {
	body := `{"revenueForecast":"up 5%","expenseForecast":"flat","profitForecast":"up 3%","recommendations":"cut hosting"}`
	tests := []struct {
		name string
		raw  string
	}{
		{"plain", body},
		{"fenced", "```json\n" + body + "\n```"},
		{"bare fence", "```\n" + body + "\n```"},
		{"chatter", "Here is the forecast:\n" + body + "\nHope this helps."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := parseForecast(tt.raw)
			if err != nil {
				t.Fatalf("parseForecast: %v", err)
			}
			if out.RevenueForecast != "up 5%" || out.Recommendations != "cut hosting" {
				t.Fatalf("got %+v", out)
			}
		})
	}
}

func TestParseForecastRejectsGarbage(t *testing.T) {
	for _, raw := range []string{"", "```", "I cannot help with that.", "{not json}"} {
		if _, err := parseForecast(raw); err == nil {
			t.Errorf("parseForecast(%q) succeeded", raw)
		}
	}
}

func TestStubForecaster(t *testing.T) {
	in := ForecastInput{
		HistoricalData: "Jan revenue 5000, expenses 500\nFeb revenue 3000, expenses 150\n\nMar revenue 6000",
		MarketTrends:   "Cloud costs rising, SaaS demand steady",
	}
	a, err := StubForecaster{}.Forecast(context.Background(), in)
	if err != nil {
		t.Fatalf("Forecast: %v", err)
	}
	b, _ := StubForecaster{}.Forecast(context.Background(), in)
	if *a != *b {
		t.Fatal("stub output must be deterministic")
	}
	if !a.complete() {
		t.Fatalf("incomplete stub output %+v", a)
	}
	if !strings.Contains(a.RevenueForecast, "3 historical entries") {
		t.Fatalf("revenue forecast = %q", a.RevenueForecast)
	}
}

func TestForecastService(t *testing.T) {
	ctx := context.Background()
	in := ForecastInput{HistoricalData: "h", MarketTrends: "m"}
	full := &ForecastOutput{RevenueForecast: "a", ExpenseForecast: "b", ProfitForecast: "c", Recommendations: "d"}

	out, err := NewForecastService(fakeForecaster{out: full}, zap.NewNop()).Forecast(ctx, in)
	if err != nil || out != full {
		t.Fatalf("got %+v, %v", out, err)
	}

	_, err = NewForecastService(fakeForecaster{err: errors.New("model down")}, zap.NewNop()).Forecast(ctx, in)
	if !errors.Is(err, ErrForecastUnavailable) {
		t.Fatalf("expected ErrForecastUnavailable, got %v", err)
	}

	partial := &ForecastOutput{RevenueForecast: "a", ExpenseForecast: " ", ProfitForecast: "c", Recommendations: "d"}
	_, err = NewForecastService(fakeForecaster{out: partial}, zap.NewNop()).Forecast(ctx, in)
	if !errors.Is(err, ErrForecastUnavailable) {
		t.Fatalf("expected ErrForecastUnavailable for a partial forecast, got %v", err)
	}

	_, err = NewForecastService(fakeForecaster{err: context.DeadlineExceeded}, zap.NewNop()).Forecast(ctx, in)
	if !errors.Is(err, context.DeadlineExceeded) || errors.Is(err, ErrForecastUnavailable) {
		t.Fatalf("deadline should pass through, got %v", err)
	}
}

func TestSanitizeUTF8(t *testing.T) {
	if got := sanitizeUTF8("ok\xffok"); got != "okok" {
		t.Fatalf("sanitizeUTF8 = %q", got)
	}
	if got := sanitizeUTF8("привет"); got != "привет" {
		t.Fatalf("valid text changed: %q", got)
	}
}
