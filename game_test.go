// game_test.go
// Copyright (C) 2026 The tileplay authors
// This file contains tests for the Game controller

package tileplay

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestGame(t *testing.T) {
	is := is.New(t)
	game := NewGame(EnglishTileSet, NewGenerator(newTestDictionary()))
	game.SetPlayerNames("Alice", "Bob")
	is.Equal(game.Rack(0).Len(), RackSize)
	is.Equal(game.Rack(1).Len(), RackSize)
	is.Equal(game.Bag.TileCount(), 100-2*RackSize)

	is.NoErr(game.SetRack(0, "CAT"))
	is.NoErr(game.SetRack(1, "AT"))
	is.Equal(game.Rack(0).AsString(), "CAT")
	is.Equal(game.Bag.TileCount(), 100-5)
	is.Equal(game.PlayerToMove(), 0)

	// The first move
	move, err := game.Submit(lineCovers(7, 7, true, "CAT"))
	is.NoErr(err)
	is.Equal(move.Score, 10)
	is.Equal(game.Scores, [2]int{10, 0})
	is.Equal(game.TilesOnBoard(), 3)
	is.True(game.Board.IsCommitted(7, 8))
	is.Equal(game.Rack(0).Len(), RackSize)
	is.Equal(game.PlayerToMove(), 1)

	// An invalid move leaves everything as it was
	_, err = game.Submit(lineCovers(8, 8, true, "AT"))
	is.True(errors.Is(err, ErrInvalidWord))
	is.Equal(game.TilesOnBoard(), 3)
	is.Equal(game.Rack(1).AsString(), "AT")
	is.Equal(game.PlayerToMove(), 1)

	game.Pass()
	is.Equal(game.NumPassMoves, 1)
	is.Equal(game.PlayerToMove(), 0)
	is.True(game.MoveList[1].IsPass())

	// Hints for the player to move
	is.NoErr(game.SetRack(0, "S?"))
	hints := game.Hint()
	is.True(slices.ContainsFunc(hints, func(m *Move) bool { return m.Word == "CATS" }))

	// Play the blank
	move, err = game.Submit(lineCovers(7, 10, true, "s"))
	is.NoErr(err)
	is.Equal(move.Word, "CATS")
	is.Equal(move.Score, 5)
	is.Equal(game.Scores[0], 15)
	is.Equal(game.NumPassMoves, 0)
	tile := game.Board.TileAt(7, 10)
	is.True(tile.IsBlank())
	is.Equal(tile.Meaning, 'S')

	is.True(!game.IsOver())
	is.True(strings.HasPrefix(game.String(), "Alice (15 : 0) Bob"))
}

func TestSetRackErrors(t *testing.T) {
	is := is.New(t)
	game := NewGame(EnglishTileSet, NewGenerator(newTestDictionary()))
	is.True(game.SetRack(0, "ZZ") != nil)
	is.True(game.SetRack(0, "ABCDEFGH") != nil)
	is.NoErr(game.SetRack(0, ""))
	is.True(game.Rack(0).IsEmpty())
}
