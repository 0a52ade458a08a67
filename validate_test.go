// validate_test.go
// Copyright (C) 2026 The tileplay authors
// This file contains tests for the validation of submitted moves

package tileplay

import (
	"errors"
	"testing"

	"github.com/matryer/is"
)

// catBoard returns a board with CAT across the center square
func catBoard(t *testing.T) *Board {
	t.Helper()
	board := NewBoard()
	placeWord(t, board, 7, 7, true, "CAT")
	return board
}

// requireKind checks that err is a SubmissionError of the given kind
func requireKind(t *testing.T, err error, kind ErrorKind) *SubmissionError {
	t.Helper()
	var serr *SubmissionError
	if !errors.As(err, &serr) {
		t.Fatalf("expected a SubmissionError of kind %v, got %v", kind, err)
	}
	if serr.Kind != kind {
		t.Fatalf("expected kind %v, got %v (%v)", kind, serr.Kind, err)
	}
	return serr
}

func TestValidateEmptyMove(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(newTestDictionary())
	_, err := gen.ValidateSubmission(catBoard(t), rackTiles(t, "SAT"), Covers{})
	requireKind(t, err, EmptyMove)
	is.True(errors.Is(err, ErrEmptyMove))
	_, err = gen.ValidateSubmission(catBoard(t), rackTiles(t, "SAT"), nil)
	requireKind(t, err, EmptyMove)
}

func TestValidateOutOfBounds(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(newTestDictionary())
	covers := lineCovers(7, 13, true, "SAT")
	_, err := gen.ValidateSubmission(catBoard(t), rackTiles(t, "SAT"), covers)
	serr := requireKind(t, err, OutOfBounds)
	is.Equal(serr.Coordinate, Coordinate{7, 15})
	is.True(errors.Is(err, ErrOutOfBounds))
	is.True(!errors.Is(err, ErrCellOccupied))
}

func TestValidateCellOccupied(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(newTestDictionary())
	board := catBoard(t)
	_, err := gen.ValidateSubmission(board, rackTiles(t, "SAT"), lineCovers(7, 8, true, "A"))
	serr := requireKind(t, err, CellOccupied)
	is.Equal(serr.Coordinate, Coordinate{7, 8})
	is.True(errors.Is(err, ErrCellOccupied))
	is.True(errors.Is(err, &SubmissionError{Kind: CellOccupied}))
	is.True(!errors.Is(err, &SubmissionError{Kind: InvalidWord}))
	// The board is unchanged
	is.Equal(board.NumTiles, 3)
	is.Equal(board.TileAt(7, 8).Letter, 'A')
}

func TestValidateRackMismatch(t *testing.T) {
	gen := NewGenerator(newTestDictionary())
	board := catBoard(t)
	// Letter not in rack
	_, err := gen.ValidateSubmission(board, rackTiles(t, "SAT"), lineCovers(7, 10, true, "Z"))
	requireKind(t, err, RackMismatch)
	// Too many of a letter
	_, err = gen.ValidateSubmission(board, rackTiles(t, "SAT"), lineCovers(8, 7, false, "SS"))
	requireKind(t, err, RackMismatch)
	// Blank not in rack
	_, err = gen.ValidateSubmission(board, rackTiles(t, "SAT"), lineCovers(7, 10, true, "s"))
	requireKind(t, err, RackMismatch)
	// Blank without an assigned letter
	covers := Covers{{7, 10}: {Letter: BlankLetter, Meaning: BlankLetter}}
	_, err = gen.ValidateSubmission(board, rackTiles(t, "S?"), covers)
	requireKind(t, err, RackMismatch)
}

func TestValidateTooManyTiles(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(newTestDictionary())
	// Eight tiles are rejected even when the rack holds them all
	covers := lineCovers(7, 4, true, "RETAINST")
	_, err := gen.ValidateSubmission(NewBoard(), rackTiles(t, "RETAINST"), covers)
	serr := requireKind(t, err, RackMismatch)
	is.Equal(serr.Coordinate, Coordinate{7, 11})
	is.True(errors.Is(err, ErrRackMismatch))
	is.True(!errors.Is(err, ErrEmptyMove))

	covers = lineCovers(0, 0, true, "ABCDEFGH")
	_, err = gen.ValidateSubmission(catBoard(t), rackTiles(t, "ABCDEFG"), covers)
	requireKind(t, err, RackMismatch)

	// Seven of the eight tiles make a valid move
	move, err := gen.ValidateSubmission(NewBoard(), rackTiles(t, "RETAINST"), lineCovers(7, 4, true, "RETAINS"))
	is.NoErr(err)
	is.Equal(move.Score, 64)
}

func TestValidateNotInLine(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(newTestDictionary())
	board := catBoard(t)
	covers := Covers{
		{8, 8}: {Letter: 'A', Meaning: 'A'},
		{9, 9}: {Letter: 'T', Meaning: 'T'},
	}
	_, err := gen.ValidateSubmission(board, rackTiles(t, "SAT"), covers)
	requireKind(t, err, NotInLine)
	is.True(errors.Is(err, ErrNotInLine))

	// A gap in a row
	covers = Covers{
		{8, 7}: {Letter: 'A', Meaning: 'A'},
		{8, 9}: {Letter: 'T', Meaning: 'T'},
	}
	_, err = gen.ValidateSubmission(board, rackTiles(t, "SAT"), covers)
	requireKind(t, err, NotInLine)

	// A gap in a column, on an empty board
	covers = Covers{
		{7, 7}: {Letter: 'A', Meaning: 'A'},
		{9, 7}: {Letter: 'T', Meaning: 'T'},
	}
	_, err = gen.ValidateSubmission(NewBoard(), rackTiles(t, "SAT"), covers)
	requireKind(t, err, NotInLine)

	// Tiles on the board may fill the gaps
	covers = Covers{
		{7, 6}:  {Letter: 'S', Meaning: 'S'},
		{7, 10}: {Letter: 'S', Meaning: 'S'},
	}
	_, err = gen.ValidateSubmission(board, rackTiles(t, "SS"), covers)
	serr := requireKind(t, err, InvalidWord)
	is.Equal(serr.Word, "SCATS")
	is.Equal(serr.Coordinate, Coordinate{7, 6})
}

func TestValidateDisconnected(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(newTestDictionary())
	_, err := gen.ValidateSubmission(catBoard(t), rackTiles(t, "SAT"), lineCovers(0, 0, true, "AT"))
	requireKind(t, err, Disconnected)
	is.True(errors.Is(err, ErrDisconnected))
	// The first move must cover the center square
	_, err = gen.ValidateSubmission(NewBoard(), rackTiles(t, "SAT"), lineCovers(7, 5, true, "AT"))
	requireKind(t, err, Disconnected)
}

func TestValidateInvalidWord(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(newTestDictionary())
	board := catBoard(t)
	// AT is a word, but the tiles also form AA and TT downwards
	_, err := gen.ValidateSubmission(board, rackTiles(t, "SAT"), lineCovers(8, 8, true, "AT"))
	serr := requireKind(t, err, InvalidWord)
	is.Equal(serr.Word, "AA")
	is.Equal(serr.Coordinate, Coordinate{7, 8})
	is.True(errors.Is(err, ErrInvalidWord))
	is.Equal(err.Error(), "word not in dictionary: AA")

	// The main word is not in the dictionary
	_, err = gen.ValidateSubmission(NewBoard(), rackTiles(t, "SAT"), lineCovers(7, 7, true, "AST"))
	serr = requireKind(t, err, InvalidWord)
	is.Equal(serr.Word, "AST")

	// A single tile on an empty board forms no word
	_, err = gen.ValidateSubmission(NewBoard(), rackTiles(t, "SAT"), lineCovers(7, 7, true, "A"))
	serr = requireKind(t, err, InvalidWord)
	is.Equal(serr.Word, "")
}

func TestValidateCheckOrder(t *testing.T) {
	gen := NewGenerator(newTestDictionary())
	board := catBoard(t)
	// Out of bounds is reported before occupied squares and rack problems
	covers := Covers{
		{7, 8}:  {Letter: 'Z', Meaning: 'Z'},
		{7, 15}: {Letter: 'Z', Meaning: 'Z'},
	}
	_, err := gen.ValidateSubmission(board, rackTiles(t, "SAT"), covers)
	requireKind(t, err, OutOfBounds)
	// Occupied squares before rack problems
	delete(covers, Coordinate{7, 15})
	_, err = gen.ValidateSubmission(board, rackTiles(t, "SAT"), covers)
	requireKind(t, err, CellOccupied)
	// Rack problems before the line shape
	covers = Covers{
		{0, 0}: {Letter: 'Z', Meaning: 'Z'},
		{5, 5}: {Letter: 'A', Meaning: 'A'},
	}
	_, err = gen.ValidateSubmission(board, rackTiles(t, "SAT"), covers)
	requireKind(t, err, RackMismatch)
	// The line shape before connectivity
	covers[Coordinate{0, 0}] = Cover{Letter: 'S', Meaning: 'S'}
	_, err = gen.ValidateSubmission(board, rackTiles(t, "SAT"), covers)
	requireKind(t, err, NotInLine)
}

func TestValidateAccepted(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(newTestDictionary())
	board := catBoard(t)
	rack := rackTiles(t, "SAT")

	move, err := gen.ValidateSubmission(board, rack, lineCovers(7, 10, true, "S"))
	is.NoErr(err)
	is.Equal(move.Word, "CATS")
	is.True(move.Horizontal)
	is.Equal(move.Score, 6)
	is.Equal(move.Coord(), "8H")
	is.Equal(move.String(), "8H CATS")

	// A single tile forming a vertical word only
	move, err = gen.ValidateSubmission(board, rack, lineCovers(6, 9, true, "A"))
	is.NoErr(err)
	is.True(!move.Horizontal)
	is.Equal(move.Word, "AT")
	is.Equal(move.Coord(), "J7")
	is.Equal(move.Score, 2)

	// Two tiles forming cross words
	move, err = gen.ValidateSubmission(board, rack, lineCovers(8, 9, true, "AT"))
	is.NoErr(err)
	is.Equal(move.WordStrings(), []string{"AT", "TA"})
	is.Equal(move.Score, 4)

	// Neither the board nor the rack were modified
	is.Equal(board.NumTiles, 3)
	is.Equal(len(rack), 3)
	is.Equal(rack[0].Letter, 'S')
	is.True(board.TileAt(8, 9) == nil)
}

func TestValidateBlanks(t *testing.T) {
	is := is.New(t)
	gen := NewGenerator(newTestDictionary())

	// An explicit blank
	move, err := gen.ValidateSubmission(NewBoard(), rackTiles(t, "?AT"), lineCovers(7, 7, true, "cAT"))
	is.NoErr(err)
	is.Equal(move.Word, "CAT")
	is.Equal(move.Score, 4)
	is.True(move.Placements[0].Tile.IsBlank())

	// A letter missing from the rack is played with the blank
	move, err = gen.ValidateSubmission(NewBoard(), rackTiles(t, "CA?"), lineCovers(7, 7, true, "CAT"))
	is.NoErr(err)
	is.Equal(move.Score, 8)
	is.True(move.Placements[2].Tile.IsBlank())
	is.Equal(move.Placements[2].Tile.Meaning, 'T')
	is.Equal(move.TilesString(), "CAt")

	// The blank is claimed by the explicit cover first
	covers := lineCovers(7, 7, true, "CAt")
	move, err = gen.ValidateSubmission(NewBoard(), rackTiles(t, "CA?"), covers)
	is.NoErr(err)
	is.Equal(move.Score, 8)
	_, err = gen.ValidateSubmission(NewBoard(), rackTiles(t, "C?T"), lineCovers(7, 7, true, "cAT"))
	requireKind(t, err, RackMismatch)
}

func TestErrorKindString(t *testing.T) {
	is := is.New(t)
	is.Equal(EmptyMove.String(), "EmptyMove")
	is.Equal(InvalidWord.String(), "InvalidWord")
	is.Equal(ErrorKind(99).String(), "ErrorKind(99)")
	err := &SubmissionError{Kind: CellOccupied, Coordinate: Coordinate{7, 7}}
	is.Equal(err.Error(), "8H: square is already occupied")
}
