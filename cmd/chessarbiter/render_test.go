package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

func plainOutput(coordinates bool) *config.OutputConfig {
	return &config.OutputConfig{Colour: false, Coordinates: coordinates}
}

func TestRender_Plain(t *testing.T) {
	var buf bytes.Buffer
	newRenderer(plainOutput(true)).render(&buf, chess.NewInitialBoard(), nil)

	want := strings.Join([]string{
		"8  r  n  b  q  k  b  n  r",
		"7  p  p  p  p  p  p  p  p",
		"6  .  .  .  .  .  .  .  .",
		"5  .  .  .  .  .  .  .  .",
		"4  .  .  .  .  .  .  .  .",
		"3  .  .  .  .  .  .  .  .",
		"2  P  P  P  P  P  P  P  P",
		"1  R  N  B  Q  K  B  N  R",
		"   a  b  c  d  e  f  g  h",
	}, "\n") + "\n"

	if got := buf.String(); got != want {
		t.Errorf("render() =\n%s\nwant\n%s", got, want)
	}
}

func TestRender_NoCoordinates(t *testing.T) {
	var buf bytes.Buffer
	newRenderer(plainOutput(false)).render(&buf, chess.NewInitialBoard(), nil)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != chess.BoardSize {
		t.Fatalf("got %d lines; want %d", len(lines), chess.BoardSize)
	}
	if lines[0] != " r  n  b  q  k  b  n  r" {
		t.Errorf("first line = %q", lines[0])
	}
}

func TestRender_Selected(t *testing.T) {
	var buf bytes.Buffer
	sel := chess.Sq(6, 4) // e2
	newRenderer(plainOutput(true)).render(&buf, chess.NewInitialBoard(), &sel)

	if !strings.Contains(buf.String(), "2  P  P  P  P [P] P  P  P\n") {
		t.Errorf("selected pawn not bracketed:\n%s", buf.String())
	}
}

func TestRender_Colour(t *testing.T) {
	var buf bytes.Buffer
	opts := &config.OutputConfig{Colour: true, Coordinates: true}
	newRenderer(opts).render(&buf, chess.NewInitialBoard(), nil)

	out := buf.String()
	if !strings.Contains(out, "\x1b[") {
		t.Error("colour output has no escape sequences")
	}
	if !strings.Contains(out, " K ") {
		t.Error("colour output is missing the white king")
	}
	if strings.Contains(out, ".") {
		t.Error("colour output should leave empty squares blank")
	}
}
