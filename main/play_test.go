// play_test.go
// Copyright (C) 2026 The tileplay authors

package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/rs/zerolog"

	tileplay "github.com/vthorsteinsson/tileplay"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

func newTestGame(t *testing.T) *tileplay.Game {
	t.Helper()
	dict := tileplay.NewDictionaryFromWords("AT", "TA", "ACT", "CAT", "CATS", "SCAT")
	game := tileplay.NewGame(tileplay.EnglishTileSet, tileplay.NewGenerator(dict))
	if err := game.SetRack(0, "CAT"); err != nil {
		t.Fatal(err)
	}
	if err := game.SetRack(1, "AT"); err != nil {
		t.Fatal(err)
	}
	return game
}

func TestRunPlay(t *testing.T) {
	is := is.New(t)
	game := newTestGame(t)
	input := strings.Join([]string{
		"hint",
		"8H CAT",
		"bogus command here",
		"H8 XX",
		"pass",
		"shuffle",
		"quit",
		"8H AT",
	}, "\n")
	var out bytes.Buffer
	is.NoErr(runPlay(game, strings.NewReader(input), &out))

	is.Equal(game.Scores, [2]int{10, 0})
	is.Equal(len(game.MoveList), 2)
	is.True(game.MoveList[1].IsPass())
	is.Equal(game.Rack(0).Len(), tileplay.RackSize)
	text := out.String()
	is.True(strings.Contains(text, "8H CAT scores 10"))
	is.True(strings.Contains(text, "unknown command 'bogus command here'"))
	is.True(strings.Contains(text, "does not match the board"))
	is.True(strings.HasSuffix(text, "Final score: Player 1 10, Player 2 0\n"))
}

func TestPlayCommand(t *testing.T) {
	is := is.New(t)
	game := newTestGame(t)
	var out bytes.Buffer

	is.NoErr(playCommand(game, nil, &out))
	is.NoErr(playCommand(game, []string{"hint", "1"}, &out))
	is.Equal(strings.Count(out.String(), "\n"), 1)
	is.True(playCommand(game, []string{"hint", "x"}, &out) != nil)
	is.True(playCommand(game, []string{"hint", "0"}, &out) != nil)

	// A rejected move leaves the game as it was
	err := playCommand(game, []string{"1A", "CAT"}, &out)
	is.True(err != nil)
	is.True(strings.HasPrefix(err.Error(), "move rejected"))
	is.Equal(game.PlayerToMove(), 0)
	is.Equal(game.Rack(0).Len(), 3)

	is.Equal(playCommand(game, []string{"QUIT"}, &out), errQuit)

	// The game also ends with the input
	out.Reset()
	is.NoErr(runPlay(game, strings.NewReader(""), &out))
	is.True(strings.Contains(out.String(), "Final score"))
}
