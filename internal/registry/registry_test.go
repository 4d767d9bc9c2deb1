package registry

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateAlias(t *testing.T) {
	Register("stub_b", func() Game { return stubGame{id: "stub_b"} })
	Register("stub_a", func() Game { return stubGame{id: "stub_a"} })
	Alias("stub", "stub_b")

	g, err := Create("stub")
	if err != nil {
		t.Fatalf("Create(stub) failed: %v", err)
	}
	if g.ID() != "stub_b" {
		t.Errorf("alias resolved to %q, want stub_b", g.ID())
	}
	if !Exists("stub") || !Exists("stub_a") {
		t.Error("Exists should accept IDs and aliases")
	}

	var ids []string
	for _, info := range List() {
		if info.ID == "stub" {
			t.Error("aliases should not be listed")
		}
		if info.ID == "stub_a" || info.ID == "stub_b" {
			ids = append(ids, info.ID)
		}
	}
	if len(ids) != 2 || ids[0] != "stub_a" {
		t.Errorf("List() order = %v, want [stub_a stub_b]", ids)
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create() error = %v, want ErrUnknownGame", err)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("stub_dup", func() Game { return stubGame{id: "stub_dup"} })
}
