package internal

import (
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfigValidates(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("defaults should pass: %v", err)
	}
}

func TestAPIConfig_RequiresBaseURL(t *testing.T) {
	cfg := APIConfig{BaseURL: "", Timeout: time.Second}
	if err := cfg.Validate(); err == nil {
		t.Fatal("empty base URL should fail validation")
	}
}

func TestAPIConfig_RejectsNonHTTPScheme(t *testing.T) {
	cfg := APIConfig{BaseURL: "ftp://recipes.example.com", Timeout: time.Second}
	if err := cfg.Validate(); err == nil {
		t.Fatal("non-http scheme should fail validation")
	}
}

func TestAPIConfig_AcceptsHTTPS(t *testing.T) {
	cfg := APIConfig{BaseURL: "https://recipes.example.com", Timeout: 30 * time.Second}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("https base URL should pass: %v", err)
	}
}

func TestStateConfig_Paths(t *testing.T) {
	cfg := StateConfig{Dir: "/home/x/.cookbook"}
	if got := cfg.DraftsDir(); got != filepath.Join("/home/x/.cookbook", "drafts") {
		t.Errorf("DraftsDir = %q", got)
	}
	if got := cfg.SessionPath(); got != filepath.Join("/home/x/.cookbook", "session.yaml") {
		t.Errorf("SessionPath = %q", got)
	}
}

func TestFullConfig_SectionValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Cache.Path = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("full config validate should catch cache error")
	}
}
