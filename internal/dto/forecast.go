package dto

type ForecastRequest struct {
	HistoricalData string `json:"historicalData" validate:"required,min=50"`
	MarketTrends   string `json:"marketTrends" validate:"required,min=20"`
}

type ForecastResponse struct {
	RevenueForecast string `json:"revenueForecast"`
	ExpenseForecast string `json:"expenseForecast"`
	ProfitForecast  string `json:"profitForecast"`
	Recommendations string `json:"recommendations"`
}
