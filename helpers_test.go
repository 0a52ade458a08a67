// helpers_test.go
// Copyright (C) 2026 The tileplay authors
// This file contains a small word list and helpers shared by the
// tests of the tileplay package

package tileplay

import (
	"os"
	"strings"
	"testing"
	"unicode"

	"github.com/rs/zerolog"
)

func TestMain(m *testing.M) {
	// Keep debug and info events out of the test output
	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	os.Exit(m.Run())
}

// testWords is a small word list. Note that it deliberately
// does not contain AA or TT.
var testWords = []string{
	"AT", "TA", "AS", "IS", "IT", "TI", "AR", "ZA", "QI", "XI", "EH",
	"ACT", "CAT", "CATS", "SCAT", "CAST", "TACT", "TAT", "SAT",
	"ART", "RAT", "TAR", "STAR", "TSAR", "RATS", "ARTS",
	"EAT", "ATE", "TEA", "ETA", "SEAT", "EATS", "TEAS",
	"RETAIN", "RETAINS", "RETINA", "RETINAS", "STAINER", "NASTIER",
}

func newTestDictionary() *Dictionary {
	return NewDictionaryFromWords(testWords...)
}

// rackTiles creates fresh tiles for the given letters,
// with '?' denoting a blank
func rackTiles(t *testing.T, letters string) []*Tile {
	t.Helper()
	tiles := make([]*Tile, 0, len(letters))
	for _, letter := range letters {
		tile := EnglishTileSet.NewTile(letter)
		if tile == nil {
			t.Fatalf("letter '%c' is not in the tile set", letter)
		}
		tiles = append(tiles, tile)
	}
	return tiles
}

// placeWord puts a word on the board, starting at the given square,
// and commits it. Lower case letters are placed as blanks.
func placeWord(t *testing.T, board *Board, row, col int, horizontal bool, word string) {
	t.Helper()
	for _, letter := range word {
		var tile *Tile
		if unicode.IsLower(letter) {
			tile = NewTile(BlankLetter, 0)
			tile.Meaning = unicode.ToUpper(letter)
		} else {
			tile = EnglishTileSet.NewTile(letter)
		}
		if err := board.PlaceTile(row, col, tile); err != nil {
			t.Fatalf("placing '%c' at %v,%v: %v", letter, row, col, err)
		}
		if horizontal {
			col++
		} else {
			row++
		}
	}
	board.Commit()
}

// emptyRows returns the rows of an empty board
func emptyRows() []string {
	rows := make([]string, BoardSize)
	for i := range rows {
		rows[i] = strings.Repeat(".", BoardSize)
	}
	return rows
}

// lineCovers creates covers for consecutive squares from a string of
// letters, where a lower case letter denotes a blank standing for the
// corresponding upper case letter
func lineCovers(row, col int, horizontal bool, letters string) Covers {
	covers := make(Covers)
	for _, letter := range letters {
		if unicode.IsLower(letter) {
			covers[Coordinate{row, col}] = Cover{Letter: BlankLetter, Meaning: unicode.ToUpper(letter)}
		} else {
			covers[Coordinate{row, col}] = Cover{Letter: letter, Meaning: letter}
		}
		if horizontal {
			col++
		} else {
			row++
		}
	}
	return covers
}
