// validate.go
// Copyright (C) 2026 The tileplay authors
// This file contains the validation of tile moves
// submitted by a player

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
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
)

// ErrorKind classifies the reason a submitted move is rejected
type ErrorKind int

// Submission error kinds, in the order in which they are checked
const (
	EmptyMove ErrorKind = iota + 1
	OutOfBounds
	CellOccupied
	RackMismatch
	NotInLine
	Disconnected
	InvalidWord
)

// Sentinel errors for the submission error kinds. ErrOutOfBounds
// and ErrCellOccupied are shared with the Board.
var (
	ErrEmptyMove    = errors.New("no tiles placed")
	ErrRackMismatch = errors.New("tiles are not in the rack")
	ErrNotInLine    = errors.New("tiles are not in a single contiguous line")
	ErrDisconnected = errors.New("tiles are not connected")
	ErrInvalidWord  = errors.New("word not in dictionary")
)

var kindSentinels = map[ErrorKind]error{
	EmptyMove:    ErrEmptyMove,
	OutOfBounds:  ErrOutOfBounds,
	CellOccupied: ErrCellOccupied,
	RackMismatch: ErrRackMismatch,
	NotInLine:    ErrNotInLine,
	Disconnected: ErrDisconnected,
	InvalidWord:  ErrInvalidWord,
}

var kindNames = map[ErrorKind]string{
	EmptyMove:    "EmptyMove",
	OutOfBounds:  "OutOfBounds",
	CellOccupied: "CellOccupied",
	RackMismatch: "RackMismatch",
	NotInLine:    "NotInLine",
	Disconnected: "Disconnected",
	InvalidWord:  "InvalidWord",
}

func (kind ErrorKind) String() string {
	if name, ok := kindNames[kind]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(kind))
}

// SubmissionError describes why a submitted move was rejected.
// It matches its kind's sentinel error with errors.Is.
type SubmissionError struct {
	Kind ErrorKind
	// The offending square, where applicable
	Coordinate
	// The offending word, for InvalidWord
	Word string
}

func (e *SubmissionError) Error() string {
	sentinel := kindSentinels[e.Kind]
	switch e.Kind {
	case OutOfBounds, CellOccupied, RackMismatch:
		return fmt.Sprintf("%v: %v", e.Coordinate, sentinel)
	case InvalidWord:
		if e.Word == "" {
			return "no word formed"
		}
		return fmt.Sprintf("%v: %s", sentinel, e.Word)
	}
	if sentinel == nil {
		return e.Kind.String()
	}
	return sentinel.Error()
}

// Unwrap returns the sentinel error of the kind
func (e *SubmissionError) Unwrap() error {
	return kindSentinels[e.Kind]
}

// Is returns true if target is a SubmissionError of the same kind
func (e *SubmissionError) Is(target error) bool {
	var t *SubmissionError
	if errors.As(target, &t) {
		return t.Kind == e.Kind
	}
	return false
}

func submissionError(kind ErrorKind, coord Coordinate) error {
	return &SubmissionError{Kind: kind, Coordinate: coord}
}

// ValidateSubmission checks a move submitted as a set of covers
// against the board, the player's rack and the dictionary. On
// success, the resulting Move, with its words and score, is
// returned. The board and the rack are not modified.
func (gen *Generator) ValidateSubmission(board *Board, rack []*Tile, covers Covers) (*Move, error) {
	if len(covers) == 0 {
		return nil, submissionError(EmptyMove, Coordinate{-1, -1})
	}
	coords := covers.Coordinates()
	for _, c := range coords {
		if !board.IsValidPosition(c.Row, c.Col) {
			return nil, submissionError(OutOfBounds, c)
		}
	}
	for _, c := range coords {
		if board.TileAt(c.Row, c.Col) != nil {
			return nil, submissionError(CellOccupied, c)
		}
	}
	if len(coords) > RackSize {
		// No more tiles than a full rack holds may be played at once
		return nil, submissionError(RackMismatch, coords[RackSize])
	}
	placements, err := matchRack(rack, covers, coords)
	if err != nil {
		return nil, err
	}
	horizontal, ok := lineDirection(board, coords)
	if !ok {
		return nil, submissionError(NotInLine, coords[0])
	}
	connected := false
	for _, c := range coords {
		if board.IsConnected(c.Row, c.Col) {
			connected = true
			break
		}
	}
	if !connected {
		return nil, submissionError(Disconnected, coords[0])
	}
	move, err := newMove(board, placements, horizontal, gen.evaluator)
	if err != nil {
		// The checks above make this impossible
		return nil, fmt.Errorf("building move: %w", err)
	}
	if len(move.Words) == 0 {
		return nil, &SubmissionError{Kind: InvalidWord, Coordinate: coords[0]}
	}
	for _, word := range move.Words {
		if !gen.dict.IsValid(word.Word) {
			log.Debug().Str("word", word.Word).Msg("invalid-word-submitted")
			return nil, &SubmissionError{Kind: InvalidWord, Coordinate: word.Start, Word: word.Word}
		}
	}
	return move, nil
}

// matchRack matches the covers against the tiles in the rack,
// returning the corresponding placements. Blank covers are matched
// first; a regular letter that is not in the rack is matched with
// a remaining blank.
func matchRack(rack []*Tile, covers Covers, coords []Coordinate) ([]Placement, error) {
	counts := makeRackCounts(rack)
	var scores [NumLetters]int
	for _, tile := range rack {
		if tile != nil && letterIndex(tile.Letter) >= 0 {
			scores[letterIndex(tile.Letter)] = tile.Score
		}
	}
	placements := make([]Placement, len(coords))
	for i, c := range coords {
		cover := covers[c]
		if normalizeTileLetter(cover.Letter) != BlankLetter {
			continue
		}
		meaning := normalizeTileLetter(cover.Meaning)
		if !isLetter(meaning) || counts[blankIndex] == 0 {
			return nil, submissionError(RackMismatch, c)
		}
		counts[blankIndex]--
		placements[i] = Placement{c, Tile{Letter: BlankLetter, Meaning: meaning}}
	}
	for i, c := range coords {
		letter := normalizeTileLetter(covers[c].Letter)
		if letter == BlankLetter {
			continue
		}
		ix := letterIndex(letter)
		switch {
		case ix < 0:
			return nil, submissionError(RackMismatch, c)
		case counts[ix] > 0:
			counts[ix]--
			placements[i] = Placement{c, Tile{Letter: letter, Meaning: letter, Score: scores[ix]}}
		case counts[blankIndex] > 0:
			counts[blankIndex]--
			placements[i] = Placement{c, Tile{Letter: BlankLetter, Meaning: letter}}
		default:
			return nil, submissionError(RackMismatch, c)
		}
	}
	return placements, nil
}

// lineDirection checks that the given (sorted) coordinates lie in a
// single row or column with no empty squares between them, and
// returns whether the line is horizontal
func lineDirection(board *Board, coords []Coordinate) (horizontal bool, ok bool) {
	first, last := coords[0], coords[len(coords)-1]
	if len(coords) == 1 {
		// Single cover: figure out whether the horizontal
		// cross is longer than the vertical cross
		hcross := len(board.Fragment(first.Row, first.Col, LEFT)) +
			len(board.Fragment(first.Row, first.Col, RIGHT))
		vcross := len(board.Fragment(first.Row, first.Col, ABOVE)) +
			len(board.Fragment(first.Row, first.Col, BELOW))
		return hcross >= vcross, true
	}
	covered := make(map[Coordinate]bool, len(coords))
	for _, c := range coords {
		covered[c] = true
	}
	switch {
	case first.Row == last.Row:
		horizontal = true
		for col := first.Col; col <= last.Col; col++ {
			c := Coordinate{first.Row, col}
			if !covered[c] && board.TileAt(c.Row, c.Col) == nil {
				// There is a missing square in the covers
				return horizontal, false
			}
		}
	case first.Col == last.Col:
		for _, c := range coords {
			if c.Col != first.Col {
				return horizontal, false
			}
		}
		for row := first.Row; row <= last.Row; row++ {
			c := Coordinate{row, first.Col}
			if !covered[c] && board.TileAt(c.Row, c.Col) == nil {
				return horizontal, false
			}
		}
	default:
		// Not strictly horizontal or strictly vertical
		return false, false
	}
	return horizontal, true
}
