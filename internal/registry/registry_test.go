package registry

import (
	"testing"

	"github.com/vovakirdan/fpt/internal/core"
)

type stubGame struct{ id string }

func (g stubGame) ID() string                           { return g.id }
func (g stubGame) Title() string                        { return "Stub " + g.id }
func (g stubGame) Reset(core.RuntimeConfig)             {}
func (g stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g stubGame) Render(*core.Screen)                  {}
func (g stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub", func() Game { return stubGame{id: "zz_stub"} })
	Register("aa_stub", func() Game { return stubGame{id: "aa_stub"} })
	t.Cleanup(func() {
		unregister("zz_stub")
		unregister("aa_stub")
	})

	if !Exists("zz_stub") {
		t.Fatal("zz_stub should be registered")
	}

	g, err := Create("aa_stub")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.ID() != "aa_stub" {
		t.Errorf("Create returned %q, expected aa_stub", g.ID())
	}

	list := List()
	if len(list) != 2 {
		t.Fatalf("List() has %d entries, expected 2", len(list))
	}
	if list[0].ID != "aa_stub" || list[1].ID != "zz_stub" {
		t.Errorf("List() not sorted by ID: %+v", list)
	}
	if list[0].Title != "Stub aa_stub" {
		t.Errorf("Title = %q, expected %q", list[0].Title, "Stub aa_stub")
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does_not_exist"); err == nil {
		t.Error("Create should fail for an unknown id")
	}
	if Exists("does_not_exist") {
		t.Error("Exists should be false for an unknown id")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup_stub", func() Game { return stubGame{id: "dup_stub"} })
	t.Cleanup(func() { unregister("dup_stub") })

	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("dup_stub", func() Game { return stubGame{id: "dup_stub"} })
}
