package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Server.ReadTimeout != 30*time.Second {
		t.Errorf("read timeout = %v", cfg.Server.ReadTimeout)
	}
	if cfg.Storage.Driver != StorageMemory || cfg.Storage.ThreatStore != ThreatStoreMemory {
		t.Errorf("storage = %+v, want memory/memory", cfg.Storage)
	}
	if cfg.Threat.LargeExpenseThreshold != 10000 {
		t.Errorf("threshold = %v, want 10000", cfg.Threat.LargeExpenseThreshold)
	}
	if cfg.Threat.SimulatedLatency != 0 {
		t.Errorf("latency = %v, want 0", cfg.Threat.SimulatedLatency)
	}
	if cfg.Sample.Size != 250 {
		t.Errorf("sample size = %d, want 250", cfg.Sample.Size)
	}
	if cfg.Forecast.Provider != ForecastStub {
		t.Errorf("forecast provider = %q", cfg.Forecast.Provider)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("THREAT_LARGE_EXPENSE_THRESHOLD", "2500.5")
	t.Setenv("THREAT_SIMULATED_LATENCY_MS", "150")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("THREAT_STORE", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("FORECAST_PROVIDER", "gemini")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q", cfg.Server.Port)
	}
	if cfg.Threat.LargeExpenseThreshold != 2500.5 {
		t.Errorf("threshold = %v", cfg.Threat.LargeExpenseThreshold)
	}
	if cfg.Threat.SimulatedLatency != 150*time.Millisecond {
		t.Errorf("latency = %v", cfg.Threat.SimulatedLatency)
	}
	if cfg.Storage.Driver != StoragePostgres || cfg.Storage.ThreatStore != ThreatStoreRedis {
		t.Errorf("storage = %+v", cfg.Storage)
	}
	if cfg.Redis.DB != 3 {
		t.Errorf("redis db = %d", cfg.Redis.DB)
	}
	if cfg.Forecast.Provider != ForecastGemini {
		t.Errorf("forecast provider = %q", cfg.Forecast.Provider)
	}
}

func TestLoadInvalidNumberFallsBack(t *testing.T) {
	t.Setenv("SAMPLE_SIZE", "lots")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Sample.Size != 250 {
		t.Fatalf("sample size = %d, want default 250", cfg.Sample.Size)
	}
}

func TestLoadRejectsUnknownDrivers(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"STORAGE_DRIVER", "mongo"},
		{"THREAT_STORE", "kafka"},
		{"FORECAST_PROVIDER", "oracle"},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tt.key, tt.value)
			}
		})
	}
}
