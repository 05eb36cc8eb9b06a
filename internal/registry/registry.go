// Package registry maps level IDs to factories. Level packages register
// themselves at init time and the CLI and TUI look them up by ID.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-graveyard/internal/core"
)

// Game is one playable level as the platform drives it. Implementations are
// plain simulations; the platform owns input and terminal output.
type Game interface {
	// ID is the stable key used on the command line and in run history.
	ID() string

	// Title is shown in menus.
	Title() string

	// Reset starts a new run for the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick. The cursor of in is
	// given in screen cells; the game maps it into the world.
	Step(in core.Input) core.StepResult

	// Render draws the frame into dst, which is cleared beforehand.
	Render(dst *core.Screen)

	// State reports the score and outcome of the current run.
	State() core.GameState
}

// GameInfo describes a registered level.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh level instance.
type Factory func() Game

type entry struct {
	build Factory
	title string
}

var (
	mu     sync.RWMutex
	levels = map[string]entry{}
)

// Register adds a level under id, normally from an init function. The title
// is read once from a throwaway instance. Registering an id twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := levels[id]; dup {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}
	levels[id] = entry{build: f, title: f().Title()}
}

// List returns every registered level ordered by ID.
func List() []GameInfo {
	mu.RLock()
	infos := make([]GameInfo, 0, len(levels))
	for id, e := range levels {
		infos = append(infos, GameInfo{ID: id, Title: e.title})
	}
	mu.RUnlock()

	slices.SortFunc(infos, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return infos
}

// Create builds a new instance of the level id.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := levels[id]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("registry: unknown level %q", id)
	}
	return e.build(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := levels[id]
	return ok
}
