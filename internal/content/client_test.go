package content

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testRows() []Puzzle {
	return []Puzzle{
		{ID: 1, Game: "trivia", Prompt: "2+2?", Choices: []string{"3", "4"}, Answer: 1},
		{ID: 2, Game: "trivia", Prompt: "3+3?", Choices: []string{"6", "7"}, Answer: 0},
	}
}

func TestClientFetchPuzzles(t *testing.T) {
	var gotPath, gotGame, gotLimit, gotKey string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotGame = r.URL.Query().Get("game")
		gotLimit = r.URL.Query().Get("limit")
		gotKey = r.Header.Get("apikey")
		json.NewEncoder(w).Encode(testRows())
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "secret"})

	puzzles, err := client.FetchPuzzles(context.Background(), "trivia", 5)
	if err != nil {
		t.Fatalf("FetchPuzzles() failed: %v", err)
	}

	if gotPath != "/rest/v1/puzzles" {
		t.Errorf("Unexpected path: %s", gotPath)
	}
	if gotGame != "eq.trivia" {
		t.Errorf("Expected game filter eq.trivia, got %s", gotGame)
	}
	if gotLimit != "5" {
		t.Errorf("Expected limit 5, got %s", gotLimit)
	}
	if gotKey != "secret" {
		t.Errorf("Expected apikey header, got %q", gotKey)
	}

	if len(puzzles) != 2 {
		t.Fatalf("Expected 2 puzzles, got %d", len(puzzles))
	}
	if puzzles[0].Prompt != "2+2?" {
		t.Errorf("Unexpected first puzzle: %+v", puzzles[0])
	}
}

func TestClientDropsInvalidRows(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rows := []Puzzle{
			{Game: "trivia", Prompt: "ok", Choices: []string{"a", "b"}, Answer: 0},
			{Game: "trivia", Prompt: "", Choices: []string{"a", "b"}, Answer: 0},
			{Game: "trivia", Prompt: "bad answer", Choices: []string{"a", "b"}, Answer: 9},
		}
		json.NewEncoder(w).Encode(rows)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	puzzles, err := client.FetchPuzzles(context.Background(), "trivia", 10)
	if err != nil {
		t.Fatalf("FetchPuzzles() failed: %v", err)
	}
	if len(puzzles) != 1 {
		t.Errorf("Expected 1 valid puzzle after filtering, got %d", len(puzzles))
	}
}

func TestClientRetriesServerErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode(testRows())
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})

	puzzles, err := client.FetchPuzzles(context.Background(), "trivia", 10)
	if err != nil {
		t.Fatalf("FetchPuzzles() should succeed after retries: %v", err)
	}
	if attempts != 3 {
		t.Errorf("Expected 3 attempts, got %d", attempts)
	}
	if len(puzzles) != 2 {
		t.Errorf("Expected 2 puzzles, got %d", len(puzzles))
	}
}

func TestClientDoesNotRetryClientErrors(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	if _, err := client.FetchPuzzles(context.Background(), "trivia", 10); err == nil {
		t.Error("Expected error on 401 response")
	}
	if attempts != 1 {
		t.Errorf("4xx should not be retried, got %d attempts", attempts)
	}
}

func TestClientUnconfigured(t *testing.T) {
	client := NewClient(ClientConfig{})

	if client.Configured() {
		t.Error("Client without base URL should not be configured")
	}
	if _, err := client.FetchPuzzles(context.Background(), "trivia", 10); err == nil {
		t.Error("Expected error fetching without an endpoint")
	}
}

func TestFetchOrFallbackOnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	puzzles := client.FetchOrFallback(context.Background(), "trivia", 10)
	if len(puzzles) == 0 {
		t.Error("FetchOrFallback() should serve the embedded pack on error")
	}
	for _, p := range puzzles {
		if p.Game != "trivia" {
			t.Errorf("Fallback row for wrong game: %+v", p)
		}
	}
}

func TestFetchOrFallbackUnconfigured(t *testing.T) {
	client := NewClient(ClientConfig{})

	puzzles := client.FetchOrFallback(context.Background(), "matchup", 10)
	if len(puzzles) == 0 {
		t.Error("FetchOrFallback() should serve the embedded pack when unconfigured")
	}
}

func TestFetchOrFallbackRemoteWins(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Puzzle{
			{Game: "trivia", Prompt: "remote row", Choices: []string{"a", "b"}, Answer: 0},
		})
	}))
	defer srv.Close()

	client := NewClient(ClientConfig{BaseURL: srv.URL})

	puzzles := client.FetchOrFallback(context.Background(), "trivia", 10)
	if len(puzzles) != 1 || puzzles[0].Prompt != "remote row" {
		t.Errorf("Expected the remote batch, got %+v", puzzles)
	}
}

func TestLoadClientConfigDefaults(t *testing.T) {
	t.Setenv("MINICADE_CONTENT_URL", "")
	t.Setenv("MINICADE_CONTENT_KEY", "")
	t.Setenv("MINICADE_CONTENT_TIMEOUT", "")

	cfg, err := LoadClientConfig()
	if err != nil {
		t.Fatalf("LoadClientConfig() failed: %v", err)
	}
	if cfg.Timeout != 5*time.Second {
		t.Errorf("Expected default timeout 5s, got %v", cfg.Timeout)
	}
}

func TestLoadClientConfigFromEnv(t *testing.T) {
	t.Setenv("MINICADE_CONTENT_URL", "http://example.test")
	t.Setenv("MINICADE_CONTENT_KEY", "abc")
	t.Setenv("MINICADE_CONTENT_TIMEOUT", "2s")

	cfg, err := LoadClientConfig()
	if err != nil {
		t.Fatalf("LoadClientConfig() failed: %v", err)
	}
	if cfg.BaseURL != "http://example.test" || cfg.APIKey != "abc" || cfg.Timeout != 2*time.Second {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}
