// Package registry holds the puzzle factories. Puzzles register themselves
// in init() so the platform can list and start them without importing each
// one by name.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-puzzles/internal/core"
)

// ErrUnknownGame is returned by Create for an unregistered ID or alias.
var ErrUnknownGame = errors.New("registry: unknown game")

// Game is implemented by every puzzle adapter. Implementations wrap a pure
// engine; the platform owns timing, input mapping and drawing to the terminal.
type Game interface {
	// ID returns a unique identifier (e.g. "slide_4x4", "2048").
	// Used for CLI arguments and score storage.
	ID() string

	// Title returns a human-readable name for menus.
	Title() string

	// Reset starts a fresh puzzle. The seed in cfg fixes the shuffle or spawns.
	Reset(cfg core.RuntimeConfig)

	// Step advances by one tick with the actions pressed since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *core.Screen)

	// State returns score, moves and terminal flags.
	State() core.GameState
}

// Controller is implemented by games that can describe their key bindings.
type Controller interface {
	Controls() string
}

// Resizer is implemented by games that can follow a terminal resize without
// being reset.
type Resizer interface {
	Resize(width, height int)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	aliases   = make(map[string]string)
)

// Register adds a game factory. Panics on a duplicate ID.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// Alias makes name resolve to the game registered as id. Later calls for
// the same name replace the target.
func Alias(name, id string) {
	mu.Lock()
	defer mu.Unlock()
	aliases[name] = id
}

// Resolve maps an alias to its game ID. Unknown names are returned as is.
func Resolve(name string) string {
	mu.RLock()
	defer mu.RUnlock()
	return resolveLocked(name)
}

func resolveLocked(name string) string {
	if id, ok := aliases[name]; ok {
		return id
	}
	return name
}

// List returns all registered games sorted by ID. Aliases are not listed.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a game by ID or alias.
func Create(name string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[resolveLocked(name)]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, name)
	}
	return f(), nil
}

// Exists reports whether name is a registered ID or alias.
func Exists(name string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[resolveLocked(name)]
	return ok
}
