package content

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

// stubSource serves a fixed puzzle set for server tests.
type stubSource struct {
	rows []Puzzle
	err  error
}

func (s *stubSource) PuzzlesByGame(game string, limit int) ([]Puzzle, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []Puzzle
	for _, p := range s.rows {
		if p.Game == game {
			out = append(out, p)
		}
		if len(out) >= limit {
			break
		}
	}
	return out, nil
}

func newTestServer(t *testing.T, source PuzzleSource, apiKey string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewServer(source, apiKey).Routes())
	t.Cleanup(srv.Close)
	return srv
}

func decodePuzzles(t *testing.T, resp *http.Response) []Puzzle {
	t.Helper()
	defer resp.Body.Close()
	var puzzles []Puzzle
	if err := json.NewDecoder(resp.Body).Decode(&puzzles); err != nil {
		t.Fatalf("cannot decode response: %v", err)
	}
	return puzzles
}

func TestServerServesPuzzles(t *testing.T) {
	source := &stubSource{rows: []Puzzle{
		{Game: "trivia", Prompt: "q1", Choices: []string{"a", "b"}, Answer: 0},
		{Game: "trivia", Prompt: "q2", Choices: []string{"a", "b"}, Answer: 1},
		{Game: "matchup", Prompt: "p", Pair: "q"},
	}}
	srv := newTestServer(t, source, "")

	resp, err := http.Get(srv.URL + "/rest/v1/puzzles?game=eq.trivia&limit=10")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}

	puzzles := decodePuzzles(t, resp)
	if len(puzzles) != 2 {
		t.Errorf("Expected 2 trivia puzzles, got %d", len(puzzles))
	}
}

func TestServerGameFilterRequired(t *testing.T) {
	srv := newTestServer(t, &stubSource{}, "")

	resp, err := http.Get(srv.URL + "/rest/v1/puzzles")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("Expected 400 without game filter, got %d", resp.StatusCode)
	}
}

func TestServerLimit(t *testing.T) {
	source := &stubSource{}
	for i := 0; i < 10; i++ {
		source.rows = append(source.rows, Puzzle{
			Game: "matchup", Prompt: fmt.Sprintf("p%d", i), Pair: "q",
		})
	}
	srv := newTestServer(t, source, "")

	resp, err := http.Get(srv.URL + "/rest/v1/puzzles?game=eq.matchup&limit=3")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	puzzles := decodePuzzles(t, resp)
	if len(puzzles) != 3 {
		t.Errorf("Expected 3 puzzles with limit, got %d", len(puzzles))
	}
}

func TestServerBadLimit(t *testing.T) {
	srv := newTestServer(t, &stubSource{}, "")

	for _, limit := range []string{"abc", "0", "-5"} {
		resp, err := http.Get(srv.URL + "/rest/v1/puzzles?game=eq.trivia&limit=" + limit)
		if err != nil {
			t.Fatalf("GET failed: %v", err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("Expected 400 for limit %q, got %d", limit, resp.StatusCode)
		}
	}
}

func TestServerAPIKey(t *testing.T) {
	source := &stubSource{rows: []Puzzle{
		{Game: "trivia", Prompt: "q", Choices: []string{"a", "b"}, Answer: 0},
	}}
	srv := newTestServer(t, source, "secret")

	// Without the key
	resp, err := http.Get(srv.URL + "/rest/v1/puzzles?game=eq.trivia")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusUnauthorized {
		t.Errorf("Expected 401 without api key, got %d", resp.StatusCode)
	}

	// With the key
	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/rest/v1/puzzles?game=eq.trivia", nil)
	req.Header.Set("apikey", "secret")
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200 with api key, got %d", resp.StatusCode)
	}
}

func TestServerEmptyResultIsArray(t *testing.T) {
	srv := newTestServer(t, &stubSource{}, "")

	resp, err := http.Get(srv.URL + "/rest/v1/puzzles?game=eq.nothing")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	puzzles := decodePuzzles(t, resp)
	if puzzles == nil {
		t.Error("Empty result should decode as an empty array, not null")
	}
}

func TestServerHealth(t *testing.T) {
	srv := newTestServer(t, &stubSource{}, "")

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("GET failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("Expected 200 from heartbeat, got %d", resp.StatusCode)
	}
}

func TestServerRoundTripWithClient(t *testing.T) {
	source := &stubSource{rows: []Puzzle{
		{Game: "trivia", Prompt: "served", Choices: []string{"a", "b"}, Answer: 0},
	}}
	srv := newTestServer(t, source, "key123")

	client := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "key123"})

	puzzles, err := client.FetchPuzzles(t.Context(), "trivia", 10)
	if err != nil {
		t.Fatalf("FetchPuzzles() against own server failed: %v", err)
	}
	if len(puzzles) != 1 || puzzles[0].Prompt != "served" {
		t.Errorf("Unexpected puzzles: %+v", puzzles)
	}
}
