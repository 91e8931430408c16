// Package lobby keeps several named games in memory and serializes the moves
// made on each of them. Games are independent: moves on different games may
// run concurrently.
package lobby

import (
	"fmt"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/session"
)

// nameWords is the number of words in a generated game name.
const nameWords = 2

// Game is one named game. All access goes through its mutex.
type Game struct {
	name  string
	arb   *engine.Arbiter
	mu    sync.Mutex
	state session.State
}

// Name returns the game's name.
func (g *Game) Name() string {
	return g.name
}

// State returns the current state of the game.
func (g *Game) State() session.State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Click applies a board click to the game.
func (g *Game) Click(sq chess.Square) (session.State, engine.Outcome) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out engine.Outcome
	g.state, out = g.state.Click(sq, g.arb)
	return g.state, out
}

// Move attempts a move by the player to move.
func (g *Game) Move(from, to chess.Square) (session.State, engine.Outcome) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var out engine.Outcome
	g.state, out = g.state.Move(from, to, g.arb)
	return g.state, out
}

// Lobby is a registry of games. It is safe for concurrent use.
type Lobby struct {
	arb   *engine.Arbiter
	mu    sync.RWMutex
	games map[string]*Game
}

// New creates an empty lobby whose games are decided by arb.
func New(arb *engine.Arbiter) *Lobby {
	if arb == nil {
		arb = engine.NewArbiter()
	}
	return &Lobby{
		arb:   arb,
		games: make(map[string]*Game),
	}
}

// Create adds a game starting from state under a generated name.
func (l *Lobby) Create(state session.State) *Game {
	l.mu.Lock()
	defer l.mu.Unlock()

	name := petname.Generate(nameWords, "-")
	for i := 2; l.games[name] != nil; i++ {
		name = fmt.Sprintf("%s-%d", petname.Generate(nameWords, "-"), i)
	}
	return l.add(name, state)
}

// CreateNamed adds a game under the given name.
func (l *Lobby) CreateNamed(name string, state session.State) (*Game, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.games[name] != nil {
		return nil, errors.Wrapf(errors.ErrGameExists, "game %q", name)
	}
	return l.add(name, state), nil
}

func (l *Lobby) add(name string, state session.State) *Game {
	g := &Game{name: name, arb: l.arb, state: state}
	l.games[name] = g
	return g
}

// Get returns the named game.
func (l *Lobby) Get(name string) (*Game, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	g, ok := l.games[name]
	if !ok {
		return nil, errors.Wrapf(errors.ErrGameNotFound, "game %q", name)
	}
	return g, nil
}

// Remove deletes the named game.
func (l *Lobby) Remove(name string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.games[name]; !ok {
		return errors.Wrapf(errors.ErrGameNotFound, "game %q", name)
	}
	delete(l.games, name)
	return nil
}

// Names returns the names of all games in sorted order.
func (l *Lobby) Names() []string {
	l.mu.RLock()
	names := make([]string, 0, len(l.games))
	for name := range l.games {
		names = append(names, name)
	}
	l.mu.RUnlock()

	slices.Sort(names)
	return names
}

// Len returns the number of games.
func (l *Lobby) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.games)
}
