package config

import (
	"os"
	"path/filepath"
	"testing"
)

// clearEnv unsets every variable read by Load for the duration of the test.
func clearEnv(t *testing.T) {
	for _, name := range []string{"GOOGLE_API_KEY", "GEMINI_API_KEY", "DIARY_MODEL", "DIARY_LANGUAGE",
		"NOTION_TOKEN", "NOTION_DB_ID", "DIARY_STATUS", "DIARY_PROVIDER", "EODHD_API_KEY"} {
		t.Setenv(name, "")
	}
	// run in an empty directory, so that no .env is read.
	t.Chdir(t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	if cfg.HasModel() || cfg.HasNotion() {
		t.Errorf("Load() = %+v, want no credentials", cfg)
	}
	if cfg.Google.Model != "gemini-2.0-flash" || cfg.Google.Language != "Korean" || cfg.Notion.Status != "Analyzed" || cfg.Market.Provider != ProviderYahoo {
		t.Errorf("Load() defaults = %+v", cfg)
	}
}

func TestLoadFileAndEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "diary.yaml")
	content := `
google:
  api_key: from-file
  language: English
notion:
  token: token-from-file
market:
  provider: EODHD
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("NOTION_DB_ID", "db-from-env")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	if cfg.Google.APIKey != "from-env" {
		t.Errorf("Load() api key = %q, want the environment to win", cfg.Google.APIKey)
	}
	if cfg.Google.Language != "English" {
		t.Errorf("Load() language = %q", cfg.Google.Language)
	}
	if !cfg.HasNotion() {
		t.Errorf("Load() notion = %+v, want token from file and database from env", cfg.Notion)
	}
	if cfg.Market.Provider != ProviderEODHD {
		t.Errorf("Load() provider = %q", cfg.Market.Provider)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	os.Unsetenv("NOTION_TOKEN")
	if err := os.WriteFile(".env", []byte("NOTION_TOKEN=token-from-dotenv\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("missing.yaml")
	if err != nil {
		t.Fatalf("Load() unexpected error = %v", err)
	}
	if cfg.Notion.Token != "token-from-dotenv" {
		t.Errorf("Load() token = %q", cfg.Notion.Token)
	}
}

func TestLoadInvalidProvider(t *testing.T) {
	clearEnv(t)
	t.Setenv("DIARY_PROVIDER", "bloomberg")

	if _, err := Load(""); err == nil {
		t.Error("Load() expected an error for an unknown provider")
	}
}
