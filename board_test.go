// board_test.go
// Copyright (C) 2026 The tileplay authors
// This file contains tests for the Board

package tileplay

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
)

func TestBonusLayout(t *testing.T) {
	is := is.New(t)
	board := NewBoard()
	is.Equal(board.BonusAt(7, 7), CenterSquare)
	is.Equal(board.BonusAt(0, 0), TripleWord)
	is.Equal(board.BonusAt(14, 14), TripleWord)
	is.Equal(board.BonusAt(1, 1), DoubleWord)
	is.Equal(board.BonusAt(1, 5), TripleLetter)
	is.Equal(board.BonusAt(0, 3), DoubleLetter)
	is.Equal(board.BonusAt(7, 8), NoBonus)
	is.Equal(board.BonusAt(-1, 0), OffBoard)
	is.Equal(board.BonusAt(0, 15), OffBoard)
	is.Equal(CenterSquare.WordMultiplier(), 2)
	is.Equal(TripleLetter.LetterMultiplier(), 3)
	is.Equal(TripleLetter.WordMultiplier(), 1)
	// The layout is symmetric
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			is.Equal(board.BonusAt(i, j), board.BonusAt(j, i))
			is.Equal(board.BonusAt(i, j), board.BonusAt(BoardSize-1-i, j))
		}
	}
}

func TestPlaceAndRemoveTile(t *testing.T) {
	is := is.New(t)
	board := NewBoard()
	is.True(board.IsEmpty(3, 4))
	is.True(!board.IsEmpty(15, 4))

	tile := EnglishTileSet.NewTile('C')
	is.NoErr(board.PlaceTile(3, 4, tile))
	is.Equal(board.TileAt(3, 4), tile)
	is.Equal(board.NumTiles, 1)

	// Collisions and bad positions leave the board unchanged
	is.True(errors.Is(board.PlaceTile(3, 4, EnglishTileSet.NewTile('A')), ErrCellOccupied))
	is.True(errors.Is(board.PlaceTile(-1, 4, tile), ErrOutOfBounds))
	is.True(errors.Is(board.PlaceTile(2, 2, nil), ErrNoTile))
	is.True(errors.Is(board.PlaceTile(2, 2, NewTile(BlankLetter, 0)), ErrUnboundBlank))
	is.Equal(board.NumTiles, 1)
	is.Equal(board.TileAt(3, 4), tile)

	// Uncommitted tiles can be taken back
	removed, err := board.RemoveTile(3, 4)
	is.NoErr(err)
	is.Equal(removed, tile)
	is.Equal(board.NumTiles, 0)
	_, err = board.RemoveTile(3, 4)
	is.True(errors.Is(err, ErrCellEmpty))

	// Committed tiles cannot
	is.NoErr(board.PlaceTile(3, 4, tile))
	board.Commit()
	is.True(board.IsCommitted(3, 4))
	_, err = board.RemoveTile(3, 4)
	is.True(errors.Is(err, ErrCellCommitted))
	is.Equal(board.TileAt(3, 4), tile)
}

func TestConnectivity(t *testing.T) {
	is := is.New(t)
	board := NewBoard()
	// First move rule: only the center is connected
	is.True(board.IsConnected(7, 7))
	is.True(!board.IsConnected(7, 8))
	is.True(!board.IsConnected(0, 0))

	placeWord(t, board, 7, 7, true, "CAT")
	is.True(board.IsCenterOccupied())
	is.True(board.IsConnected(7, 7))  // Occupied
	is.True(board.IsConnected(6, 8))  // Above A
	is.True(board.IsConnected(7, 10)) // Right of T
	is.True(board.IsConnected(7, 6))  // Left of C
	is.True(!board.IsConnected(6, 6)) // Diagonal only
	is.True(!board.IsConnected(0, 0))
	is.True(!board.IsConnected(15, 0))
	is.Equal(board.NumAdjacentTiles(6, 8), 1)
	is.Equal(board.NumAdjacentTiles(8, 7), 1)
}

func TestWordQueries(t *testing.T) {
	is := is.New(t)
	board := NewBoard()
	placeWord(t, board, 7, 7, true, "CAT")
	placeWord(t, board, 8, 9, false, "aR")

	is.Equal(board.WordFragment(7, 6, RIGHT), "CAT")
	is.Equal(board.WordFragment(7, 10, LEFT), "CAT")
	is.Equal(board.WordFragment(10, 9, ABOVE), "TAR")
	is.Equal(len(board.Fragment(7, 10, LEFT)), 3)

	left, right := board.CrossWords(8, 8, false)
	is.Equal(left, "A")
	is.Equal(right, "")
	left, right = board.CrossWords(8, 8, true)
	is.Equal(left, "")
	is.Equal(right, "A")

	word := board.WordHorizontal(7, 8)
	is.True(word != nil)
	is.Equal(word.Word, "CAT")
	is.Equal(word.Start, Coordinate{7, 7})
	is.True(word.Horizontal)

	word = board.WordVertical(8, 9)
	is.True(word != nil)
	is.Equal(word.Word, "TAR")
	is.Equal(word.Start, Coordinate{7, 9})
	// The blank keeps its assigned letter but scores nothing
	is.True(word.Tiles[1].Tile.IsBlank())
	is.Equal(word.Tiles[1].Tile.Score, 0)

	// Runs of a single tile are not words
	is.True(board.WordVertical(7, 7) == nil)
	is.True(board.WordHorizontal(9, 9) == nil)
	is.True(board.WordHorizontal(0, 0) == nil)
}

func TestFormedWords(t *testing.T) {
	is := is.New(t)
	board := NewBoard()
	placeWord(t, board, 7, 7, true, "CAT")
	// Place A and T below A and T of CAT, uncommitted
	is.NoErr(board.PlaceTile(8, 8, EnglishTileSet.NewTile('A')))
	is.NoErr(board.PlaceTile(8, 9, EnglishTileSet.NewTile('T')))
	words := board.FormedWords([]Coordinate{{8, 9}, {8, 8}})
	is.Equal(len(words), 3)
	// Horizontal first, then vertical by column
	is.Equal(words[0].Word, "AT")
	is.True(words[0].Horizontal)
	is.Equal(words[1].Word, "AA")
	is.Equal(words[1].Start, Coordinate{7, 8})
	is.Equal(words[2].Word, "TT")
	is.Equal(words[2].NumPlaced(), 1)
	is.True(!words[2].Tiles[0].Placed)
	is.True(words[2].Tiles[1].Placed)
}

func TestParseBoard(t *testing.T) {
	is := is.New(t)
	rows := emptyRows()
	rows[7] = ".......CAt....."
	board, err := ParseBoard(rows, EnglishTileSet)
	is.NoErr(err)
	is.Equal(board.NumTiles, 3)
	is.Equal(board.TileAt(7, 7).Letter, 'C')
	is.Equal(board.TileAt(7, 7).Score, 3)
	is.True(board.TileAt(7, 9).IsBlank())
	is.Equal(board.TileAt(7, 9).Meaning, 'T')
	is.True(board.IsCommitted(7, 8))
	is.Equal(board.Rows(), rows)
	is.True(strings.Contains(board.String(), " C A t "))

	_, err = ParseBoard(rows[:14], EnglishTileSet)
	is.True(err != nil)
	rows[3] = "...."
	_, err = ParseBoard(rows, EnglishTileSet)
	is.True(err != nil)
	rows[3] = "..3............"
	_, err = ParseBoard(rows, EnglishTileSet)
	is.True(err != nil)
}

func TestCloneIsIndependent(t *testing.T) {
	is := is.New(t)
	board := NewBoard()
	placeWord(t, board, 7, 7, true, "CAT")
	clone := board.Clone()
	is.NoErr(clone.PlaceTile(7, 10, EnglishTileSet.NewTile('S')))
	is.Equal(clone.NumTiles, 4)
	is.Equal(board.NumTiles, 3)
	is.True(board.TileAt(7, 10) == nil)
	is.Equal(clone.BonusAt(7, 7), board.BonusAt(7, 7))
}
