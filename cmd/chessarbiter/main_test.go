package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/session"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// testConfig returns a plain-text configuration writing to buffers.
func testConfig() (*config.Config, *bytes.Buffer, *bytes.Buffer) {
	out, log := &bytes.Buffer{}, &bytes.Buffer{}
	cfg := config.NewConfigBuilder().
		WithColour(false).
		WithShowBoard(false).
		WithOutput(out).
		WithLog(log).
		Build()
	return cfg, out, log
}

func TestRun_Moves(t *testing.T) {
	cfg, out, _ := testConfig()

	err := run(cfg, "e2e4 e7e5 g1f3", nil)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, out.String(), "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 0 2\n")
}

func TestRun_MovesShowsBoard(t *testing.T) {
	cfg, out, _ := testConfig()
	cfg.Output.ShowBoard = true

	testutil.AssertNoError(t, run(cfg, "e2-e4", nil))
	testutil.AssertContains(t, out.String(), "4  .  .  .  .  P  .  .  .\n")
}

func TestRun_MovesRejected(t *testing.T) {
	cfg, out, _ := testConfig()

	err := run(cfg, "e2e4 e7e5 c1e3 g1f3", nil)
	testutil.AssertErrorIs(t, err, chesserrors.ErrIllegalMove)
	testutil.AssertContains(t, err.Error(), "ply 3, move c1e3, blocked-path")
	testutil.AssertEqual(t, out.String(), "")
}

func TestRun_MovesBadNotation(t *testing.T) {
	cfg, _, _ := testConfig()

	err := run(cfg, "e2e4 e7e9", nil)
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidSquare)
	testutil.AssertContains(t, err.Error(), "ply 2")
}

func TestRun_FoolsMate(t *testing.T) {
	moves := "f2f3 e7e5 g2g4 d8h4"

	t.Run("detection on", func(t *testing.T) {
		cfg, out, _ := testConfig()
		cfg.Rules.DetectCheckmate = true
		testutil.AssertNoError(t, run(cfg, moves, nil))
		testutil.AssertContains(t, out.String(), "checkmate, black wins\n")
	})

	t.Run("detection off", func(t *testing.T) {
		cfg, out, _ := testConfig()
		testutil.AssertNoError(t, run(cfg, moves, nil))
		testutil.AssertContains(t, out.String(), "white is in check\n")
		if strings.Contains(out.String(), "checkmate") {
			t.Errorf("checkmate reported without detection:\n%s", out.String())
		}
	})
}

func TestRun_MovesRepetition(t *testing.T) {
	cfg, out, log := testConfig()
	cfg.Verbosity = 1
	shuffle := "g1f3 g8f6 f3g1 f6g8 "

	testutil.AssertNoError(t, run(cfg, shuffle+shuffle, nil))
	testutil.AssertContains(t, out.String(), "position repeated three times\n")
	testutil.AssertContains(t, log.String(), "Played 8 plies, 0 checks")
}

func TestRun_MovesInsufficientMaterial(t *testing.T) {
	cfg, out, _ := testConfig()
	cfg.StartFEN = "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1"

	testutil.AssertNoError(t, run(cfg, "e1e2", nil))
	testutil.AssertContains(t, out.String(), "insufficient material\n")
}

func TestRun_StartFEN(t *testing.T) {
	cfg, out, _ := testConfig()
	cfg.StartFEN = "k7/8/1K6/8/8/8/8/2Q5 w - - 0 1"

	testutil.AssertNoError(t, run(cfg, "c1c7", nil))
	testutil.AssertContains(t, out.String(), "stalemate\n")
}

func TestRun_BadStartFEN(t *testing.T) {
	cfg, _, _ := testConfig()
	cfg.StartFEN = "not a position"

	testutil.AssertErrorIs(t, run(cfg, "", strings.NewReader("")), chesserrors.ErrInvalidFEN)
}

func TestRun_VerboseLogsRejections(t *testing.T) {
	cfg, _, log := testConfig()
	cfg.Verbosity = 1

	_ = run(cfg, "e2e5", nil)
	testutil.AssertContains(t, log.String(), "Rejected white pawn on e2 to e5")
}

func TestInteract(t *testing.T) {
	cfg, out, _ := testConfig()
	input := strings.Join([]string{
		"select e2",
		"click e4",
		"fen",
		"e7e5",
		"quit",
		"fen",
	}, "\n")

	testutil.AssertNoError(t, run(cfg, "", strings.NewReader(input)))

	got := out.String()
	testutil.AssertContains(t, got, "white> ")
	testutil.AssertContains(t, got, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1\n")
	testutil.AssertContains(t, got, "black> ")
	if n := strings.Count(got, " KQkq - 0 "); n != 1 {
		t.Errorf("fen printed %d times; want 1 (nothing after quit)", n)
	}
}

func TestInteract_EndOfInput(t *testing.T) {
	cfg, out, _ := testConfig()

	testutil.AssertNoError(t, run(cfg, "", strings.NewReader("e2e4\n")))
	testutil.AssertContains(t, out.String(), "black> \n")
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  string
	}{
		{"wrong turn", []string{"e7e5"}, "rejected: white needs to move (wrong-turn)\n"},
		{"empty square", []string{"select e4"}, "rejected: white needs to move (no-selection)\n"},
		{"blocked", []string{"c1e3"}, "rejected: "},
		{"bad square", []string{"select z9"}, "error: "},
		{"missing square", []string{"click"}, "usage: click <square>\n"},
		{"unknown command", []string{"castle"}, "type help for commands"},
		{"help", []string{"help"}, commandHelp},
		{"spaced move", []string{"e2 e4", "fen"}, "4P3"},
		{"deselect", []string{"click e2", "deselect", "click e4"}, "rejected: white needs to move (no-selection)\n"},
		{"check", []string{"e2e4", "f7f6", "d1h5"}, "black is in check\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, out, _ := testConfig()
			g := newGame(cfg, newArbiter(cfg), mustStart(t, cfg))

			for _, line := range tt.lines {
				if g.command(line) {
					t.Fatalf("command(%q) asked to quit", line)
				}
			}
			testutil.AssertContains(t, out.String(), tt.want)
		})
	}
}

func TestCommand_Moves(t *testing.T) {
	cfg, out, _ := testConfig()
	g := newGame(cfg, newArbiter(cfg), mustStart(t, cfg))

	g.command("moves")

	fields := strings.Fields(out.String())
	testutil.AssertEqual(t, len(fields), 20)
	testutil.AssertEqual(t, fields[0], "a2a3")
	testutil.AssertContains(t, out.String(), "g1f3")
}

func TestCommand_Promotion(t *testing.T) {
	cfg, out, _ := testConfig()
	cfg.StartFEN = "8/4P3/8/8/8/8/k7/4K3 w - - 0 1"
	g := newGame(cfg, newArbiter(cfg), mustStart(t, cfg))

	g.command("e7e8")
	testutil.AssertContains(t, out.String(), "pawn reached the last row\n")
}

func TestCommand_Quit(t *testing.T) {
	cfg, _, _ := testConfig()
	g := newGame(cfg, newArbiter(cfg), mustStart(t, cfg))

	for _, line := range []string{"quit", "exit", "  QUIT  "} {
		if !g.command(line) {
			t.Errorf("command(%q) = false; want true", line)
		}
	}
	if g.command("") {
		t.Error("empty line should not quit")
	}
}

func mustStart(t *testing.T, cfg *config.Config) session.State {
	t.Helper()
	state, err := startState(cfg)
	testutil.AssertNoError(t, err)
	return state
}

func writeProbeFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "positions.fen")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o600); err != nil {
		t.Fatalf("writing probe file: %v", err)
	}
	return path
}

func TestRun_Probe(t *testing.T) {
	cfg, out, log := testConfig()
	cfg.Verbosity = 1
	cfg.Probe.Workers = 3
	cfg.Probe.File = writeProbeFile(t,
		"# positions",
		engine.InitialFEN,
		"",
		"4k3/8/8/8/8/8/4r3/4K3 w - - 0 1",
		"k7/2Q5/1K6/8/8/8/8/8 b - - 0 1",
		"rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
		"4k3/8/8/8/8/8/4r3/4K3 w - - 5 20",
	)

	testutil.AssertNoError(t, run(cfg, "", nil))

	want := strings.Join([]string{
		"1: white to move, 20 legal moves",
		"2: white to move, 3 legal moves, check (king is threatened by a black rook on e2)",
		"3: black to move, 0 legal moves, stalemate",
		"4: white to move, 0 legal moves, check (king is threatened by a black queen on h4), checkmate",
		"5: white to move, 3 legal moves, check (king is threatened by a black rook on e2), same position as 2",
	}, "\n") + "\n"
	testutil.AssertEqual(t, out.String(), want)
	testutil.AssertContains(t, log.String(), "Probed 5 positions with 3 workers, 0 invalid, 1 repeated")
}

func TestRun_ProbeJSON(t *testing.T) {
	cfg, out, _ := testConfig()
	cfg.Probe.Format = config.JSONReport
	cfg.Probe.File = writeProbeFile(t, engine.InitialFEN, "4k3/8/8/8/8/8/4r3/4K3 w - - 0 1", engine.InitialFEN)

	testutil.AssertNoError(t, run(cfg, "", nil))

	var report output.JSONReport
	if err := json.Unmarshal(out.Bytes(), &report); err != nil {
		t.Fatalf("report is not JSON: %v\n%s", err, out.String())
	}
	testutil.AssertEqual(t, len(report.Positions), 3)
	testutil.AssertEqual(t, len(report.Positions[0].LegalMoves), 20)
	testutil.AssertTrue(t, report.Positions[1].Check)
	testutil.AssertEqual(t, report.Positions[2].SameAs, 1)
}

func TestRun_ProbeJSONLines(t *testing.T) {
	cfg, out, _ := testConfig()
	cfg.Probe.Format = config.JSONLinesReport
	cfg.Probe.File = writeProbeFile(t, engine.InitialFEN, engine.InitialFEN)

	testutil.AssertNoError(t, run(cfg, "", nil))
	testutil.AssertEqual(t, strings.Count(out.String(), "\n"), 2)
	testutil.AssertContains(t, out.String(), `"sameAs":1`)
}

func TestRun_ProbeInvalid(t *testing.T) {
	cfg, out, _ := testConfig()
	cfg.Probe.File = writeProbeFile(t, engine.InitialFEN, "bogus")

	err := run(cfg, "", nil)
	testutil.AssertErrorIs(t, err, chesserrors.ErrInvalidFEN)
	testutil.AssertContains(t, err.Error(), "1 of 2 positions")
	testutil.AssertContains(t, out.String(), "2: error: position 2")
}

func TestRun_ProbeMissingFile(t *testing.T) {
	cfg, _, _ := testConfig()
	cfg.Probe.File = filepath.Join(t.TempDir(), "missing.fen")

	err := run(cfg, "", nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("run() error = %v; want a not-exist error", err)
	}
}

func TestReadFENs(t *testing.T) {
	in := strings.NewReader("  # header\n\n" + engine.InitialFEN + "  \n\t\n8/8/8/8/8/8/8/K6k w - - 0 1\n")
	fens, err := readFENs(in)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, fens, []string{engine.InitialFEN, "8/8/8/8/8/8/8/K6k w - - 0 1"})
}
