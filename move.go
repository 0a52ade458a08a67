// move.go
// Copyright (C) 2026 The tileplay authors
// This file contains the Move type, describing a placement
// of tiles on the board together with the words it forms
// and its score

/*

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.

*/

package tileplay

import (
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

// Coordinate stores a Board co-ordinate as as row, col tuple
type Coordinate struct {
	Row, Col int
}

// String returns the coordinate in row-column notation, e.g. 8H
func (coord Coordinate) String() string {
	if coord.Row < 0 || coord.Row >= BoardSize || coord.Col < 0 || coord.Col >= BoardSize {
		return fmt.Sprintf("(%v,%v)", coord.Row, coord.Col)
	}
	return rowIds[coord.Row] + colIds[coord.Col]
}

// compareCoordinates orders coordinates row-major
func compareCoordinates(a, b Coordinate) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}

// sortedCoordinates returns a row-major sorted copy of a coordinate list
func sortedCoordinates(coords []Coordinate) []Coordinate {
	sorted := slices.Clone(coords)
	slices.SortFunc(sorted, compareCoordinates)
	return sorted
}

// Cover describes the covering of a single square by a Letter.
// The Letter may be '?' indicating a blank tile, in which case
// the Meaning gives its meaning.
type Cover struct {
	Letter  rune
	Meaning rune
}

// Covers is a map of board coordinates to a tile covering
type Covers map[Coordinate]Cover

// Coordinates returns the covered coordinates in row-major order
func (covers Covers) Coordinates() []Coordinate {
	return sortedCoordinates(lo.Keys(covers))
}

// Placement is a tile put on a board square by a Move.
// The Tile is a description of the tile, including the
// letter assigned to a blank.
type Placement struct {
	Coordinate
	Tile Tile
}

// Move represents a tile move: one or more tiles placed in a
// single row or column, the words that this forms and their score
type Move struct {
	// Placements in row-major order
	Placements []Placement
	Horizontal bool
	// Word is the primary word, along the direction of the move,
	// or empty if the move forms no such word
	Word string
	// Words formed by the move. The primary word, if any, comes first.
	Words []Word
	Score int
}

// newMove places the given tiles on a copy of the board and
// collects the formed words and the score of the resulting move.
// The original board is not modified.
func newMove(board *Board, placements []Placement, horizontal bool, ev *ScoreEvaluator) (*Move, error) {
	placements = slices.Clone(placements)
	slices.SortFunc(placements, func(a, b Placement) int {
		return compareCoordinates(a.Coordinate, b.Coordinate)
	})
	clone := board.Clone()
	coords := make([]Coordinate, len(placements))
	for i, p := range placements {
		tile := p.Tile
		if err := clone.PlaceTile(p.Row, p.Col, &tile); err != nil {
			return nil, fmt.Errorf("placing %v at %v: %w", tile.String(), p.Coordinate, err)
		}
		coords[i] = p.Coordinate
	}
	move := &Move{
		Placements: placements,
		Horizontal: horizontal,
		Words:      clone.FormedWords(coords),
	}
	if len(placements) > 0 {
		// Find the word along the direction of the move and put it first
		first := placements[0].Coordinate
		ix := slices.IndexFunc(move.Words, func(w Word) bool {
			return w.Horizontal == horizontal && slices.Contains(w.Positions(), first)
		})
		if ix >= 0 {
			primary := move.Words[ix]
			move.Words = slices.Delete(move.Words, ix, ix+1)
			move.Words = slices.Insert(move.Words, 0, primary)
			move.Word = primary.Word
		}
	}
	move.Score = ev.Score(clone, move.Words)
	return move, nil
}

// TopLeft returns the coordinate of the first placed tile
func (move *Move) TopLeft() Coordinate {
	if len(move.Placements) == 0 {
		return Coordinate{-1, -1}
	}
	return move.Placements[0].Coordinate
}

// Start returns the coordinate where the primary word starts,
// or the first placed tile if there is no primary word
func (move *Move) Start() Coordinate {
	if move.Word != "" {
		return move.Words[0].Start
	}
	return move.TopLeft()
}

// Coord returns the move coordinate in the customary notation:
// row first (8H) for horizontal moves and column first (H8) for
// vertical ones
func (move *Move) Coord() string {
	start := move.Start()
	if start.Row < 0 || start.Col < 0 {
		return ""
	}
	if move.Horizontal {
		return rowIds[start.Row] + colIds[start.Col]
	}
	return colIds[start.Col] + rowIds[start.Row]
}

// String returns a string description of a Move
func (move *Move) String() string {
	if move.IsPass() {
		return "Pass"
	}
	word := move.Word
	if word == "" && len(move.Words) > 0 {
		word = move.Words[0].Word
	}
	return move.Coord() + " " + word
}

// IsPass returns true if the move places no tiles
func (move *Move) IsPass() bool {
	return len(move.Placements) == 0
}

// NumTiles returns the number of tiles placed by the move
func (move *Move) NumTiles() int {
	return len(move.Placements)
}

// Key returns a canonical representation of the placements of the
// move, which is equal for equal placements regardless of the
// direction in which the move was found
func (move *Move) Key() string {
	var sb strings.Builder
	for i, p := range move.Placements {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(fmt.Sprintf("%d,%d:%c%c", p.Row, p.Col, p.Tile.Letter, p.Tile.Meaning))
	}
	return sb.String()
}

// Covers returns the placements of the move as Covers
func (move *Move) Covers() Covers {
	covers := make(Covers, len(move.Placements))
	for _, p := range move.Placements {
		covers[p.Coordinate] = Cover{Letter: p.Tile.Letter, Meaning: p.Tile.Meaning}
	}
	return covers
}

// TilesString returns the placed tiles as a string, with blanks
// shown as the lower case letter they stand for
func (move *Move) TilesString() string {
	return strings.Join(lo.Map(move.Placements, func(p Placement, _ int) string {
		return p.Tile.String()
	}), "")
}

// WordStrings returns the texts of all words formed by the move
func (move *Move) WordStrings() []string {
	return lo.Map(move.Words, func(w Word, _ int) string {
		return w.Word
	})
}

// ParseCoord parses a move coordinate in the customary notation,
// returning the start square and the direction of the move:
// row first (8H) is horizontal, column first (H8) is vertical
func ParseCoord(coord string) (Coordinate, bool, error) {
	coord = strings.ToUpper(strings.TrimSpace(coord))
	if coord == "" {
		return Coordinate{}, false, fmt.Errorf("empty coordinate")
	}
	var rowId, colId string
	horizontal := coord[0] >= '0' && coord[0] <= '9'
	if horizontal {
		colId = strings.TrimLeft(coord, "0123456789")
		rowId = coord[:len(coord)-len(colId)]
	} else {
		colId, rowId = coord[:1], coord[1:]
	}
	row := slices.Index(rowIds[:], rowId)
	col := slices.Index(colIds[:], colId)
	if row < 0 || col < 0 {
		return Coordinate{}, false, fmt.Errorf("invalid coordinate '%v'", coord)
	}
	return Coordinate{row, col}, horizontal, nil
}

// ParseCovers converts a move in the customary notation, such as
// "8H CATS", into Covers. The word includes any letters already on
// the board, which must match the tiles there and are not covered
// again. A lower case letter is a blank standing for that letter.
func ParseCovers(board *Board, coord, word string) (Covers, error) {
	start, horizontal, err := ParseCoord(coord)
	if err != nil {
		return nil, err
	}
	covers := make(Covers)
	row, col := start.Row, start.Col
	for _, r := range word {
		if !board.IsValidPosition(row, col) {
			return nil, fmt.Errorf("%v does not fit on the board at %v", word, coord)
		}
		letter := normalizeTileLetter(r)
		if !isLetter(letter) {
			return nil, fmt.Errorf("invalid letter '%c' in %v", r, word)
		}
		if tile := board.TileAt(row, col); tile != nil {
			if tile.Meaning != letter {
				return nil, fmt.Errorf("%c at %v does not match the board", r, Coordinate{row, col})
			}
		} else if r >= 'a' && r <= 'z' {
			covers[Coordinate{row, col}] = Cover{Letter: BlankLetter, Meaning: letter}
		} else {
			covers[Coordinate{row, col}] = Cover{Letter: letter, Meaning: letter}
		}
		if horizontal {
			col++
		} else {
			row++
		}
	}
	return covers, nil
}
