package config

import "testing"

func TestIsRoutingEnabled(t *testing.T) {
	tests := []struct {
		name   string
		apiKey string
		want   bool
	}{
		{"real key", "5b3ce3597851110001cf6248", true},
		{"empty", "", false},
		{"placeholder", "your_api_key", false},
		{"placeholder with suffix", "your_api_key_here", false},
		{"placeholder uppercase", "CHANGEME", false},
		{"placeholder padded", "  placeholder  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{RoutingAPIKey: tt.apiKey}
			if got := cfg.IsRoutingEnabled(); got != tt.want {
				t.Errorf("IsRoutingEnabled() with key %q = %v, want %v", tt.apiKey, got, tt.want)
			}
		})
	}
}

func TestIsRedisEnabled(t *testing.T) {
	cfg := &Config{}
	if cfg.IsRedisEnabled() {
		t.Error("redis enabled without REDIS_URL")
	}

	cfg.RedisURL = "redis://localhost:6379/0"
	if !cfg.IsRedisEnabled() {
		t.Error("redis disabled despite REDIS_URL")
	}
}
