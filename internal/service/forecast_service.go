package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

type ForecastInput struct {
	HistoricalData string
	MarketTrends   string
}

type ForecastOutput struct {
	RevenueForecast string `json:"revenueForecast"`
	ExpenseForecast string `json:"expenseForecast"`
	ProfitForecast  string `json:"profitForecast"`
	Recommendations string `json:"recommendations"`
}

func (o *ForecastOutput) complete() bool {
	return strings.TrimSpace(o.RevenueForecast) != "" &&
		strings.TrimSpace(o.ExpenseForecast) != "" &&
		strings.TrimSpace(o.ProfitForecast) != "" &&
		strings.TrimSpace(o.Recommendations) != ""
}

// Forecaster turns history and market notes into a four-part text forecast.
type Forecaster interface {
	Forecast(ctx context.Context, in ForecastInput) (*ForecastOutput, error)
}

type ForecastService struct {
	forecaster Forecaster
	logger     *zap.Logger
}

func NewForecastService(forecaster Forecaster, logger *zap.Logger) *ForecastService {
	return &ForecastService{
		forecaster: forecaster,
		logger:     logger,
	}
}

// Forecast returns ErrForecastUnavailable when the backend fails or answers with
// something that is not a usable forecast.
func (s *ForecastService) Forecast(ctx context.Context, in ForecastInput) (*ForecastOutput, error) {
	out, err := s.forecaster.Forecast(ctx, in)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		s.logger.Error("Forecast backend failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrForecastUnavailable, err)
	}
	if out == nil || !out.complete() {
		s.logger.Warn("Forecast backend returned an incomplete forecast")
		return nil, ErrForecastUnavailable
	}

	s.logger.Info("Forecast generated",
		zap.Int("historical_length", len(in.HistoricalData)),
		zap.Int("trends_length", len(in.MarketTrends)),
	)
	return out, nil
}

const forecastSystemInstruction = `You are a financial analyst tasked with forecasting revenue and expenses for a business.
Based on the historical data and market trends provided, generate a forecast for revenue, expenses and profit for the upcoming period.
Also provide recommendations for improving financial performance based on your forecast.`

func buildForecastPrompt(in ForecastInput) string {
	return fmt.Sprintf(`Historical Data: %s
Market Trends: %s

Return ONLY a JSON object with exactly these string fields:
{
  "revenueForecast": "forecasted revenue for the upcoming period",
  "expenseForecast": "forecasted expenses for the upcoming period",
  "profitForecast": "forecasted profit (revenue minus expenses) for the upcoming period",
  "recommendations": "recommendations for improving financial performance"
}
Do NOT wrap the response in code fences.`, in.HistoricalData, in.MarketTrends)
}

// parseForecast decodes a model reply, tolerating Markdown fences and chatter around the object.
func parseForecast(raw string) (*ForecastOutput, error) {
	clean := cleanModelJSON(raw)
	if clean == "" {
		return nil, errors.New("empty model response")
	}

	var out ForecastOutput
	if err := json.Unmarshal([]byte(clean), &out); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	out.RevenueForecast = sanitizeUTF8(strings.TrimSpace(out.RevenueForecast))
	out.ExpenseForecast = sanitizeUTF8(strings.TrimSpace(out.ExpenseForecast))
	out.ProfitForecast = sanitizeUTF8(strings.TrimSpace(out.ProfitForecast))
	out.Recommendations = sanitizeUTF8(strings.TrimSpace(out.Recommendations))
	return &out, nil
}

func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		// Drop the opening fence line (``` or ```json).
		idx := strings.Index(s, "\n")
		if idx == -1 {
			return ""
		}
		s = strings.TrimSpace(s[idx+1:])
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			s = s[start : end+1]
		}
	}
	return s
}

// StubForecaster answers without a model. Output depends only on the input.
type StubForecaster struct{}

func (StubForecaster) Forecast(ctx context.Context, in ForecastInput) (*ForecastOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	lines := 0
	for _, l := range strings.Split(in.HistoricalData, "\n") {
		if strings.TrimSpace(l) != "" {
			lines++
		}
	}
	trends := strings.TrimSpace(in.MarketTrends)
	if len(trends) > 80 {
		trends = trends[:80] + "..."
	}

	return &ForecastOutput{
		RevenueForecast: fmt.Sprintf("Revenue is expected to stay close to the trend of the %d historical entries provided, with modest growth next period.", lines),
		ExpenseForecast: "Expenses are expected to remain stable, with recurring operational costs as the main driver.",
		ProfitForecast:  "Profit should hold roughly at the current margin if revenue growth keeps pace with expenses.",
		Recommendations: fmt.Sprintf("Review the largest expense categories and watch the reported market conditions (%s) before committing to new spending.", sanitizeUTF8(trends)),
	}, nil
}
