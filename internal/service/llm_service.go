package service

import (
	"context"
	"errors"
	"fmt"

	"fisk-dimension/pkg/config"

	"github.com/Role1776/gigago"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

const forecastTemperature = 0.3

// GigaChatForecaster asks GigaChat for a forecast.
type GigaChatForecaster struct {
	client *gigago.Client
	model  *gigago.GenerativeModel
	logger *zap.Logger
}

func NewGigaChatForecaster(ctx context.Context, cfg *config.GigaChatConfig, logger *zap.Logger) (*GigaChatForecaster, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("GIGACHAT_API_KEY is not set")
	}

	opts := []gigago.Option{
		gigago.WithCustomScope(cfg.Scope),
	}
	if cfg.InsecureSkipVerify {
		opts = append(opts, gigago.WithCustomInsecureSkipVerify(true))
		logger.Warn("GigaChat TLS certificate verification is disabled")
	}

	client, err := gigago.NewClient(ctx, cfg.APIKey, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GigaChat client: %w", err)
	}

	model := client.GenerativeModel("GigaChat")
	model.SystemInstruction = forecastSystemInstruction
	model.Temperature = forecastTemperature

	logger.Info("Using GigaChat forecaster")
	return &GigaChatForecaster{
		client: client,
		model:  model,
		logger: logger,
	}, nil
}

func (f *GigaChatForecaster) Forecast(ctx context.Context, in ForecastInput) (*ForecastOutput, error) {
	messages := []gigago.Message{
		{Role: gigago.RoleUser, Content: buildForecastPrompt(in)},
	}

	resp, err := f.model.Generate(ctx, messages)
	if err != nil {
		return nil, fmt.Errorf("failed to generate response: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("no response from GigaChat")
	}

	content := resp.Choices[0].Message.Content
	out, err := parseForecast(content)
	if err != nil {
		f.logger.Warn("Unusable GigaChat reply", zap.String("content", content), zap.Error(err))
		return nil, err
	}
	return out, nil
}

func (f *GigaChatForecaster) Close() error {
	if f.client != nil {
		f.client.Close()
	}
	return nil
}

// GeminiForecaster asks a Gemini model through the Gemini Developer API.
type GeminiForecaster struct {
	client *genai.Client
	model  string
	logger *zap.Logger
}

func NewGeminiForecaster(ctx context.Context, cfg *config.GeminiConfig, logger *zap.Logger) (*GeminiForecaster, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("GEMINI_API_KEY is not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.APIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	logger.Info("Using Gemini forecaster", zap.String("model", cfg.Model))
	return &GeminiForecaster{
		client: client,
		model:  cfg.Model,
		logger: logger,
	}, nil
}

func (f *GeminiForecaster) Forecast(ctx context.Context, in ForecastInput) (*ForecastOutput, error) {
	temperature := float32(forecastTemperature)
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: buildForecastPrompt(in)}},
		},
	}
	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: forecastSystemInstruction}}},
		Temperature:       &temperature,
		ResponseMIMEType:  "application/json",
	}

	resp, err := f.client.Models.GenerateContent(ctx, f.model, contents, genConfig)
	if err != nil {
		return nil, fmt.Errorf("generate content: %w", err)
	}

	raw := resp.Text()
	out, err := parseForecast(raw)
	if err != nil {
		f.logger.Warn("Unusable Gemini reply", zap.String("content", raw), zap.Error(err))
		return nil, err
	}
	return out, nil
}
