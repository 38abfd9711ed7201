package config

import "testing"

func TestGetEnv(t *testing.T) {
	t.Setenv("CFG_VALUE", "custom")
	if got := getEnv("CFG_VALUE", "default"); got != "custom" {
		t.Fatalf("getEnv returned %q, want custom", got)
	}

	// Empty environment value should fall back to default
	t.Setenv("CFG_EMPTY", "")
	if got := getEnv("CFG_EMPTY", "fallback"); got != "fallback" {
		t.Fatalf("getEnv returned %q, want fallback", got)
	}
}

func TestLoad(t *testing.T) {
	// Ensure defaults when env vars are empty.
	t.Setenv("PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("SEED", "")
	t.Setenv("MODEL_VERSION", "")
	t.Setenv("MODEL_PATH", "")
	t.Setenv("RECOMMEND_SWEEP_DAYS", "")
	t.Setenv("OPENAI_API_KEY", "")

	cfg := Load()
	if cfg.Port != "8080" || cfg.DatabaseDriver != "sqlite" || cfg.DatabaseURL == "" || cfg.LogLevel != "info" {
		t.Fatalf("defaults not applied: %+v", cfg)
	}
	if cfg.Seed || cfg.RecommendSweepDays {
		t.Fatalf("boolean defaults not applied: %+v", cfg)
	}
	if cfg.ModelVersion != "v1" {
		t.Fatalf("ModelVersion default = %q, want v1", cfg.ModelVersion)
	}

	// Custom values override defaults
	t.Setenv("PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("SEED", "true")
	t.Setenv("MODEL_VERSION", "v3")
	t.Setenv("MODEL_PATH", "models/stress.onnx")
	t.Setenv("RECOMMEND_SWEEP_DAYS", "true")

	cfg = Load()
	if cfg.Port != "9090" || cfg.DatabaseDriver != "postgres" || cfg.DatabaseURL != "postgres://example" || !cfg.Seed {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.ModelVersion != "v3" || cfg.ModelPath != "models/stress.onnx" || !cfg.RecommendSweepDays {
		t.Fatalf("model env overrides missing: %+v", cfg)
	}
}
