package langfuse

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadPrompt_FetchesAndCaches(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/public/v2/prompts/bedtime-predictor" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("label") != "production" {
			t.Errorf("expected label production, got %q", r.URL.Query().Get("label"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"type":"text","prompt":"remote prompt"}`))
	}))
	defer server.Close()

	cachePath := filepath.Join(t.TempDir(), "prompts", "bedtime.txt")
	prompt, err := LoadPrompt(context.Background(), PromptLoaderConfig{
		BaseURL:     server.URL,
		PublicKey:   "pk",
		SecretKey:   "sk",
		PromptName:  "bedtime-predictor",
		PromptLabel: "production",
		CachePath:   cachePath,
		Fallback:    "fallback",
	})
	if err != nil {
		t.Fatalf("LoadPrompt() error: %v", err)
	}
	if prompt != "remote prompt" {
		t.Errorf("expected remote prompt, got %q", prompt)
	}

	cached, err := os.ReadFile(cachePath)
	if err != nil {
		t.Fatalf("expected cached prompt file: %v", err)
	}
	if string(cached) != "remote prompt" {
		t.Errorf("unexpected cached prompt %q", cached)
	}
}

func TestLoadPrompt_ChatPromptKeepsSystemTurns(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"type":"chat","prompt":[{"role":"system","content":"be brief"},{"role":"user","content":"{{features}}"}]}`))
	}))
	defer server.Close()

	prompt, err := LoadPrompt(context.Background(), PromptLoaderConfig{
		BaseURL: server.URL, PublicKey: "pk", SecretKey: "sk", PromptName: "p",
	})
	if err != nil {
		t.Fatalf("LoadPrompt() error: %v", err)
	}
	if prompt != "be brief" {
		t.Errorf("expected system content only, got %q", prompt)
	}
}

func TestLoadPrompt_FallsBackToCacheFile(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	cachePath := filepath.Join(t.TempDir(), "bedtime.txt")
	if err := os.WriteFile(cachePath, []byte("cached prompt"), 0o600); err != nil {
		t.Fatal(err)
	}

	prompt, err := LoadPrompt(context.Background(), PromptLoaderConfig{
		BaseURL: server.URL, PublicKey: "pk", SecretKey: "sk", PromptName: "p", CachePath: cachePath,
	})
	if err != nil {
		t.Fatalf("LoadPrompt() error: %v", err)
	}
	if prompt != "cached prompt" {
		t.Errorf("expected cached prompt, got %q", prompt)
	}
}

func TestLoadPrompt_DisabledUsesFallback(t *testing.T) {
	prompt, err := LoadPrompt(context.Background(), PromptLoaderConfig{Fallback: "built-in"})
	if err != nil {
		t.Fatalf("LoadPrompt() error: %v", err)
	}
	if prompt != "built-in" {
		t.Errorf("expected fallback, got %q", prompt)
	}
}

func TestLoadPrompt_NothingAvailable(t *testing.T) {
	if _, err := LoadPrompt(context.Background(), PromptLoaderConfig{}); err == nil {
		t.Error("expected error when no prompt source is available")
	}
}
