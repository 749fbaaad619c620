package config

import (
	"os"
	"path/filepath"
	"testing"
)

// chdir changes to dir for the duration of the test, restoring the
// previous working directory on cleanup. (testing.T.Chdir requires Go 1.24.)
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(prev); err != nil {
			t.Fatal(err)
		}
	})
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if cfg.HTTP.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.HTTP.Port)
	}
	if cfg.Index.Name != "ecommerce_orders" {
		t.Errorf("Index.Name = %q", cfg.Index.Name)
	}
	if cfg.Index.BatchSize != 100 {
		t.Errorf("BatchSize = %d, want 100", cfg.Index.BatchSize)
	}
	if cfg.LLM.Model != "anthropic/claude-3-haiku" {
		t.Errorf("Model = %q", cfg.LLM.Model)
	}
	if cfg.LLM.Temperature != 0.3 {
		t.Errorf("Temperature = %v", cfg.LLM.Temperature)
	}
	if cfg.Search.MaxResults != 5 {
		t.Errorf("MaxResults = %d, want 5", cfg.Search.MaxResults)
	}
	if len(cfg.Search.Categories) == 0 || cfg.Search.Categories[0].Name != "clothing" {
		t.Errorf("Categories = %+v", cfg.Search.Categories)
	}
	if len(cfg.Search.PersonalKeywords) == 0 || len(cfg.Search.BusinessKeywords) == 0 {
		t.Error("intent keyword defaults missing")
	}
}

func TestValidate(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err == nil {
		t.Error("missing llm.api_key accepted")
	}

	cfg.LLM.APIKey = "sk-test"
	if err := cfg.Validate(); err != nil {
		t.Errorf("valid config rejected: %v", err)
	}

	cfg.HTTP.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("out-of-range port accepted")
	}
}

func TestValidateCategoryName(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	cfg.LLM.APIKey = "sk-test"
	cfg.Search.Categories = []CategoryRule{{Keywords: []string{"x"}}}

	if err := cfg.Validate(); err == nil {
		t.Error("nameless category rule accepted")
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("SHOPLENS_TEST_VAR", "from-env")

	tests := []struct {
		in   string
		want string
	}{
		{"key: ${SHOPLENS_TEST_VAR}", "key: from-env"},
		{"key: ${SHOPLENS_TEST_UNSET:-fallback}", "key: fallback"},
		{"key: ${SHOPLENS_TEST_VAR:-fallback}", "key: from-env"},
		{"key: ${SHOPLENS_TEST_UNSET}", "key: "},
		{"key: plain", "key: plain"},
	}

	for _, tt := range tests {
		if got := string(expandEnvVars([]byte(tt.in))); got != tt.want {
			t.Errorf("expandEnvVars(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "config"), 0o755); err != nil {
		t.Fatal(err)
	}

	yaml := `
http:
  port: 9090
llm:
  api_key: "${SHOPLENS_TEST_KEY}"
search:
  max_results: 3
  categories:
    - name: clothing
      keywords: ["saree"]
`
	if err := os.WriteFile(filepath.Join(dir, "config", "test.yaml"), []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	t.Setenv("SHOPLENS_TEST_KEY", "sk-test")
	chdir(t, dir)

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.HTTP.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.HTTP.Port)
	}
	if cfg.LLM.APIKey != "sk-test" {
		t.Errorf("APIKey = %q", cfg.LLM.APIKey)
	}
	if cfg.Search.MaxResults != 3 {
		t.Errorf("MaxResults = %d, want 3", cfg.Search.MaxResults)
	}
	// Partial config still gets defaults for the rest.
	if cfg.Index.Name != "ecommerce_orders" {
		t.Errorf("Index.Name = %q", cfg.Index.Name)
	}
}

func TestLoadMissingFile(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := Load("nonexistent"); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestGetEnv(t *testing.T) {
	t.Setenv("ENV", "")
	if got := GetEnv(); got != "local" {
		t.Errorf("GetEnv = %q, want local", got)
	}

	t.Setenv("ENV", "prod")
	if got := GetEnv(); got != "prod" {
		t.Errorf("GetEnv = %q, want prod", got)
	}
}
