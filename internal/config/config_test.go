package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"dochub/internal/errors"
)

func testConfigPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "config.json")
}

func TestLoadFrom_Missing(t *testing.T) {
	cfg, err := LoadFrom(testConfigPath(t))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.GetServerURL() != DefaultServerURL {
		t.Errorf("ServerURL = %q, want default %q", cfg.GetServerURL(), DefaultServerURL)
	}
	if cfg.IsLoggedIn() {
		t.Error("fresh config should not be logged in")
	}
}

func TestSaveAndReload(t *testing.T) {
	path := testConfigPath(t)

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	cfg.SetServerURL("https://hub.example.com")
	cfg.SetTheme("nord")
	cfg.SetLastSpaceID("space-42")
	cfg.SetToken(&oauth2.Token{
		AccessToken: "abc123",
		Expiry:      time.Now().Add(time.Hour),
	})
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reloaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if reloaded.GetServerURL() != "https://hub.example.com" {
		t.Errorf("ServerURL = %q after reload", reloaded.GetServerURL())
	}
	if reloaded.GetTheme() != "nord" {
		t.Errorf("Theme = %q after reload", reloaded.GetTheme())
	}
	if reloaded.GetLastSpaceID() != "space-42" {
		t.Errorf("LastSpaceID = %q after reload", reloaded.GetLastSpaceID())
	}
	if !reloaded.IsLoggedIn() {
		t.Error("reloaded config should be logged in")
	}
}

func TestIsLoggedIn_Expired(t *testing.T) {
	cfg, err := LoadFrom(testConfigPath(t))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	cfg.SetToken(&oauth2.Token{
		AccessToken: "stale",
		Expiry:      time.Now().Add(-time.Minute),
	})
	if cfg.IsLoggedIn() {
		t.Error("expired token should not count as logged in")
	}
}

func TestLoadFromCorruptFile(t *testing.T) {
	path := testConfigPath(t)
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	_, err := LoadFrom(path)
	if err == nil {
		t.Fatal("corrupt config should fail to load")
	}
	if !errors.Is(err, errors.KindConfig) {
		t.Errorf("error kind = %v, want KindConfig", errors.GetKind(err))
	}
}

func TestValidateEmptyServerURL(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	if err == nil {
		t.Fatal("an empty server URL should not validate")
	}
	if !errors.Is(err, errors.KindInvalid) {
		t.Errorf("error kind = %v, want KindInvalid", errors.GetKind(err))
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("DOCHUB_SERVER", "https://override.example.com")

	cfg, err := LoadFrom(testConfigPath(t))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.GetServerURL() != "https://override.example.com" {
		t.Errorf("ServerURL = %q, want env override", cfg.GetServerURL())
	}
}
