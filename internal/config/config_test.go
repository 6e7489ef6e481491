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
	if cfg.HTTPAddr != ":8382" {
		t.Fatalf("unexpected http addr %q", cfg.HTTPAddr)
	}
	if cfg.GRPCAddr != ":8383" {
		t.Fatalf("unexpected grpc addr %q", cfg.GRPCAddr)
	}
	if cfg.SessionTTL != 3*time.Hour {
		t.Fatalf("unexpected session ttl %v", cfg.SessionTTL)
	}
	if cfg.ServiceName != "perm" {
		t.Fatalf("unexpected service name %q", cfg.ServiceName)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("AUTHCORE_SESSION_TTL", "45m")
	t.Setenv("AUTHCORE_COOKIE_DOMAIN", ".st29.ru")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.SessionTTL != 45*time.Minute {
		t.Fatalf("unexpected session ttl %v", cfg.SessionTTL)
	}
	if cfg.CookieDomain != ".st29.ru" {
		t.Fatalf("unexpected cookie domain %q", cfg.CookieDomain)
	}
}

func TestLoadInvalidDuration(t *testing.T) {
	t.Setenv("AUTHCORE_SESSION_TTL", "not-a-duration")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}
