package lobby

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/session"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestCreate_GeneratesUniqueNames(t *testing.T) {
	l := New(nil)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		g := l.Create(session.New())
		name := g.Name()
		if seen[name] {
			t.Fatalf("duplicate game name %q", name)
		}
		seen[name] = true
		testutil.AssertTrue(t, strings.Contains(name, "-"), "name %q has no separator", name)
	}
	testutil.AssertEqual(t, l.Len(), 50)
}

func TestCreateNamed(t *testing.T) {
	l := New(nil)

	g, err := l.CreateNamed("casual-otter", session.New())
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, g.Name(), "casual-otter")

	_, err = l.CreateNamed("casual-otter", session.New())
	testutil.AssertErrorIs(t, err, chesserrors.ErrGameExists)
}

func TestGetAndRemove(t *testing.T) {
	l := New(nil)
	created, err := l.CreateNamed("brave-heron", session.New())
	testutil.AssertNoError(t, err)

	got, err := l.Get("brave-heron")
	testutil.AssertNoError(t, err)
	if got != created {
		t.Error("Get returned a different game")
	}

	testutil.AssertNoError(t, l.Remove("brave-heron"))
	_, err = l.Get("brave-heron")
	testutil.AssertErrorIs(t, err, chesserrors.ErrGameNotFound)
	testutil.AssertErrorIs(t, l.Remove("brave-heron"), chesserrors.ErrGameNotFound)
}

func TestNamesSorted(t *testing.T) {
	l := New(nil)
	for _, name := range []string{"zesty-yak", "able-ant", "minty-moose"} {
		_, err := l.CreateNamed(name, session.New())
		testutil.AssertNoError(t, err)
	}
	testutil.AssertEqual(t, l.Names(), []string{"able-ant", "minty-moose", "zesty-yak"})
}

func TestGame_MoveAndClick(t *testing.T) {
	l := New(engine.NewArbiter())
	g := l.Create(session.New())

	state, out := g.Move(chess.Sq(6, 4), chess.Sq(4, 4))
	testutil.AssertTrue(t, out.Valid, out.Message)
	testutil.AssertEqual(t, state.Player(), chess.Black)

	_, out = g.Click(chess.Sq(1, 4))
	testutil.AssertTrue(t, out.Valid, out.Message)
	state, out = g.Click(chess.Sq(3, 4))
	testutil.AssertTrue(t, out.Valid, out.Message)
	testutil.AssertEqual(t, state.Ply(), 2)
	testutil.AssertEqual(t, g.State().Ply(), 2)
}

// Many goroutines race to play White's first move; exactly one wins per game
// and every other attempt sees Black to move.
func TestGame_ConcurrentMoves(t *testing.T) {
	l := New(engine.NewArbiter())
	const games = 4
	const racers = 16

	var wg sync.WaitGroup
	wins := make([]int, games)
	var winsMu sync.Mutex

	for i := 0; i < games; i++ {
		g, err := l.CreateNamed(fmt.Sprintf("game-%d", i), session.New())
		testutil.AssertNoError(t, err)
		for r := 0; r < racers; r++ {
			wg.Add(1)
			go func(i int, g *Game) {
				defer wg.Done()
				if _, out := g.Move(chess.Sq(6, 4), chess.Sq(4, 4)); out.Valid {
					winsMu.Lock()
					wins[i]++
					winsMu.Unlock()
				}
			}(i, g)
		}
	}
	wg.Wait()

	for i, n := range wins {
		testutil.AssertEqual(t, n, 1, "game-%d", i)
		g, err := l.Get(fmt.Sprintf("game-%d", i))
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, g.State().Ply(), 1)
	}
}
