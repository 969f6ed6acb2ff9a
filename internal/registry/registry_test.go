package registry

import (
	"testing"

	"github.com/bitbreak/minicade/internal/core"
)

// stubGame is a minimal Game implementation for registry tests.
type stubGame struct {
	id    string
	title string
}

func (g *stubGame) ID() string    { return g.id }
func (g *stubGame) Title() string { return g.title }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {}

func (g *stubGame) Step(in core.InputFrame) core.StepResult { return core.StepResult{} }

func (g *stubGame) Render(dst *core.Screen) {}

func (g *stubGame) State() core.GameState { return core.GameState{} }

func register(t *testing.T, id, title string) {
	t.Helper()
	Register(id, func() Game {
		return &stubGame{id: id, title: title}
	})
}

func TestRegisterAndCreate(t *testing.T) {
	register(t, "test_create", "Test Create")

	game, err := Create("test_create")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if game.ID() != "test_create" {
		t.Errorf("Expected ID test_create, got %s", game.ID())
	}
	if game.Title() != "Test Create" {
		t.Errorf("Expected title 'Test Create', got %s", game.Title())
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	if err == nil {
		t.Error("Expected error creating unknown game")
	}
}

func TestCreateReturnsFreshInstances(t *testing.T) {
	register(t, "test_fresh", "Test Fresh")

	a, _ := Create("test_fresh")
	b, _ := Create("test_fresh")
	if a == b {
		t.Error("Create() should return a new instance each call")
	}
}

func TestExists(t *testing.T) {
	register(t, "test_exists", "Test Exists")

	if !Exists("test_exists") {
		t.Error("Exists() should be true for registered game")
	}
	if Exists("no_such_game") {
		t.Error("Exists() should be false for unknown game")
	}
}

func TestGet(t *testing.T) {
	register(t, "test_get", "Test Get")

	info, ok := Get("test_get")
	if !ok {
		t.Fatal("Get() should find registered game")
	}
	if info.ID != "test_get" || info.Title != "Test Get" {
		t.Errorf("Unexpected info: %+v", info)
	}

	if _, ok := Get("no_such_game"); ok {
		t.Error("Get() should not find unknown game")
	}
}

func TestListSorted(t *testing.T) {
	register(t, "test_list_b", "B")
	register(t, "test_list_a", "A")

	games := List()
	if len(games) < 2 {
		t.Fatalf("Expected at least 2 games, got %d", len(games))
	}
	for i := 1; i < len(games); i++ {
		if games[i-1].ID >= games[i].ID {
			t.Errorf("List() not sorted: %s before %s", games[i-1].ID, games[i].ID)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	register(t, "test_dup", "Dup")

	defer func() {
		if recover() == nil {
			t.Error("Expected panic on duplicate registration")
		}
	}()
	register(t, "test_dup", "Dup Again")
}
