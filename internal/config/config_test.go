package config

import (
	"testing"
	"time"
)

func setBaseEnv(t *testing.T) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("ENV", "dev")
	t.Setenv("DB_ADDR", "")
	t.Setenv("ACCESS_TOKEN_TTL", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("HTTP_READ_TIMEOUT", "")
	t.Setenv("HTTP_WRITE_TIMEOUT", "")
	t.Setenv("HTTP_IDLE_TIMEOUT", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("JWT_ISSUER", "")
}

func TestLoad_Defaults(t *testing.T) {
	setBaseEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("unexpected addr: %s", cfg.HTTPAddr)
	}
	if cfg.AccessTokenTTL != 30*time.Minute {
		t.Fatalf("expected 30m default TTL, got %s", cfg.AccessTokenTTL)
	}
	if cfg.BcryptCost != 12 {
		t.Fatalf("expected default cost 12, got %d", cfg.BcryptCost)
	}
	if cfg.JWTIssuer != "user-service" {
		t.Fatalf("unexpected issuer: %s", cfg.JWTIssuer)
	}
}

func TestLoad_MissingJWTSecret_Fails(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing JWT_SECRET")
	}
}

func TestLoad_MissingDBAddr_RequiredOutsideDev(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ENV", "prod")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing DB_ADDR in prod")
	}

	t.Setenv("DB_ADDR", "postgres://u:p@localhost:5432/users")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DBAddr == "" {
		t.Fatalf("expected DBAddr set")
	}
}

func TestLoad_InvalidDuration_Fails(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("ACCESS_TOKEN_TTL", "not-a-duration")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for bad duration")
	}
}

func TestLoad_InvalidBcryptCost_Fails(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("BCRYPT_COST", "twelve")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for bad integer")
	}
}
