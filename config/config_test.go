package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
http_server:
  port: 9090
  allowed_origins: "http://a.test, http://b.test"
llm:
  request_timeout: 5s
  providers:
    - name: groq
      enabled: true
      priority: 1
      api_key: ${VTT_TEST_GROQ_KEY}
voice:
  timezone: UTC
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("VTT_TEST_GROQ_KEY", "gsk-test")

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.HTTPServer.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.HTTPServer.Port)
	}
	if len(cfg.HTTPServer.AllowedOrigins) != 2 || cfg.HTTPServer.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("unexpected origins %v", cfg.HTTPServer.AllowedOrigins)
	}
	if cfg.LLM.RequestTimeout != 5*time.Second {
		t.Errorf("expected 5s timeout, got %s", cfg.LLM.RequestTimeout)
	}
	if cfg.LLM.Temperature != 0.1 {
		t.Errorf("expected default temperature 0.1, got %v", cfg.LLM.Temperature)
	}
	if len(cfg.LLM.Providers) != 1 || cfg.LLM.Providers[0].APIKey != "gsk-test" {
		t.Errorf("expected expanded api key, got %+v", cfg.LLM.Providers)
	}
	if cfg.Voice.Timezone != "UTC" {
		t.Errorf("expected UTC timezone, got %s", cfg.Voice.Timezone)
	}
	if cfg.Voice.RateLimitPerMin != 30 {
		t.Errorf("expected default rate limit 30, got %d", cfg.Voice.RateLimitPerMin)
	}
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("VTT_TEST_VALUE", "expanded")

	tcs := map[string]string{
		"":                      "",
		"plain":                 "plain",
		"${VTT_TEST_VALUE}":     "expanded",
		"${VTT_TEST_UNSET_XYZ}": "${VTT_TEST_UNSET_XYZ}",
	}
	for in, want := range tcs {
		if got := expandEnvVar(in); got != want {
			t.Errorf("expandEnvVar(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateLLMConfig(t *testing.T) {
	tcs := map[string]struct {
		cfg     LLMConfig
		wantErr bool
	}{
		"ok": {
			cfg: LLMConfig{Providers: []ProviderConfig{{Name: "groq", Enabled: true, Priority: 1}}},
		},
		"missing name": {
			cfg:     LLMConfig{Providers: []ProviderConfig{{Enabled: true, Priority: 1}}},
			wantErr: true,
		},
		"duplicate priority": {
			cfg: LLMConfig{Providers: []ProviderConfig{
				{Name: "groq", Enabled: true, Priority: 1},
				{Name: "deepseek", Enabled: true, Priority: 1},
			}},
			wantErr: true,
		},
		"disabled skips priority check": {
			cfg: LLMConfig{Providers: []ProviderConfig{{Name: "groq", Enabled: false}}},
		},
		"temperature out of range": {
			cfg:     LLMConfig{Temperature: 3},
			wantErr: true,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			err := validateLLMConfig(&tc.cfg)
			if (err != nil) != tc.wantErr {
				t.Fatalf("wantErr=%v, got %v", tc.wantErr, err)
			}
		})
	}
}

func TestSplitList(t *testing.T) {
	got := splitList(" a, ,b ,")
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Errorf("unexpected split %v", got)
	}
}
