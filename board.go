// board.go
// Copyright (C) 2026 The tileplay authors
// This file implements the Board, with its fixed layout of
// bonus squares and the Tiles that may occupy it, together
// with the word extraction queries used by move generation,
// submission validation and scoring

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
	"slices"
	"strings"
	"unicode"
)

// BoardSize is the size of the Board
const BoardSize = 15

// CenterIndex is the row and column of the center (start) square
const CenterIndex = BoardSize / 2

// BlankLetter is the Letter of a blank tile
const BlankLetter = '?'

// Errors returned by the Board placement primitives
var (
	ErrOutOfBounds   = errors.New("position is out of bounds")
	ErrCellOccupied  = errors.New("square is already occupied")
	ErrCellEmpty     = errors.New("square is empty")
	ErrCellCommitted = errors.New("tile on square has been committed")
	ErrNoTile        = errors.New("no tile given")
	ErrUnboundBlank  = errors.New("blank tile has no assigned letter")
)

// Tile is a tile from the Bag. A regular tile has Meaning == Letter;
// a blank tile has Letter == BlankLetter and obtains its Meaning
// when it is placed on the board.
type Tile struct {
	Letter  rune
	Meaning rune // Meaning of blank tile (if Letter==BlankLetter)
	Score   int  // The nominal score of the tile
}

// NewTile returns a fresh regular or blank tile
func NewTile(letter rune, score int) *Tile {
	if letter == BlankLetter {
		return &Tile{Letter: BlankLetter, Meaning: BlankLetter, Score: 0}
	}
	return &Tile{Letter: letter, Meaning: letter, Score: score}
}

// IsBlank returns true if this is a blank tile
func (tile *Tile) IsBlank() bool {
	return tile != nil && tile.Letter == BlankLetter
}

// IsBound returns true if the tile has a letter meaning, i.e. it is
// either a regular tile or a blank that has been assigned a letter
func (tile *Tile) IsBound() bool {
	return tile != nil && isLetter(tile.Meaning)
}

// String represents a Tile as a string. A blank tile that has been
// assigned a letter is shown as that letter in lower case.
func (tile *Tile) String() string {
	if tile == nil {
		return "."
	}
	if tile.IsBlank() {
		if tile.IsBound() {
			return string(unicode.ToLower(tile.Meaning))
		}
		return string(BlankLetter)
	}
	return string(tile.Letter)
}

// Bonus identifies the kind of bonus square at a board position
type Bonus int

// Bonus square kinds. OffBoard is returned for positions outside the board.
const (
	OffBoard Bonus = iota - 1
	NoBonus
	DoubleLetter
	TripleLetter
	DoubleWord
	TripleWord
	// CenterSquare is the start square; it doubles the word that covers it
	CenterSquare
)

// LetterMultiplier returns the factor applied to a tile placed on the square
func (b Bonus) LetterMultiplier() int {
	switch b {
	case DoubleLetter:
		return 2
	case TripleLetter:
		return 3
	}
	return 1
}

// WordMultiplier returns the factor applied to a word covering the square
// with a newly placed tile
func (b Bonus) WordMultiplier() int {
	switch b {
	case DoubleWord, CenterSquare:
		return 2
	case TripleWord:
		return 3
	}
	return 1
}

func (b Bonus) String() string {
	switch b {
	case OffBoard:
		return "off-board"
	case DoubleLetter:
		return "double-letter"
	case TripleLetter:
		return "triple-letter"
	case DoubleWord:
		return "double-word"
	case TripleWord:
		return "triple-word"
	case CenterSquare:
		return "center"
	}
	return "none"
}

var wordMultipliers = [BoardSize]string{
	"311111131111113",
	"121111111111121",
	"112111111111211",
	"111211111112111",
	"111121111121111",
	"111111111111111",
	"111111111111111",
	"311111121111113",
	"111111111111111",
	"111111111111111",
	"111121111121111",
	"111211111112111",
	"112111111111211",
	"121111111111121",
	"311111131111113",
}

var letterMultipliers = [BoardSize]string{
	"111211111112111",
	"111113111311111",
	"111111212111111",
	"211111121111112",
	"111111111111111",
	"131113111311131",
	"112111212111211",
	"111211111112111",
	"112111212111211",
	"131113111311131",
	"111111111111111",
	"211111121111112",
	"111111212111111",
	"111113111311111",
	"111211111112111",
}

// bonusLayout is computed once and shared by all boards; it is never modified
var bonusLayout = makeBonusLayout()

func makeBonusLayout() [BoardSize][BoardSize]Bonus {
	var layout [BoardSize][BoardSize]Bonus
	for i := 0; i < BoardSize; i++ {
		for j := 0; j < BoardSize; j++ {
			switch {
			case i == CenterIndex && j == CenterIndex:
				layout[i][j] = CenterSquare
			case wordMultipliers[i][j] == '3':
				layout[i][j] = TripleWord
			case wordMultipliers[i][j] == '2':
				layout[i][j] = DoubleWord
			case letterMultipliers[i][j] == '3':
				layout[i][j] = TripleLetter
			case letterMultipliers[i][j] == '2':
				layout[i][j] = DoubleLetter
			default:
				layout[i][j] = NoBonus
			}
		}
	}
	return layout
}

// Board represents the board as a matrix of optional Tiles.
// The zero value is an empty board, ready to use.
type Board struct {
	tiles [BoardSize][BoardSize]*Tile
	// Committed tiles can no longer be removed from the board
	committed [BoardSize][BoardSize]bool
	// The number of tiles on the board
	NumTiles int
}

// Directions for Fragment()
const (
	ABOVE = 0
	LEFT  = 1
	RIGHT = 2
	BELOW = 3
)

var directionDeltas = [4]Coordinate{
	ABOVE: {-1, 0},
	LEFT:  {0, -1},
	RIGHT: {0, 1},
	BELOW: {1, 0},
}

// colIds are the column identifiers of a board
var colIds = [BoardSize]string{
	"A", "B", "C", "D", "E",
	"F", "G", "H", "I", "J",
	"K", "L", "M", "N", "O",
}

// rowIds are the row identifiers of a board
var rowIds = [BoardSize]string{
	"1", "2", "3", "4", "5",
	"6", "7", "8", "9", "10",
	"11", "12", "13", "14", "15",
}

// NewBoard returns a fresh, empty board
func NewBoard() *Board {
	return &Board{}
}

// Clone returns a copy of the board. Tiles are shared, not copied.
func (board *Board) Clone() *Board {
	clone := *board
	return &clone
}

// IsValidPosition returns true if the coordinate is within the board
func (board *Board) IsValidPosition(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

// IsEmpty returns true if the coordinate is on the board and has no tile
func (board *Board) IsEmpty(row, col int) bool {
	return board.IsValidPosition(row, col) && board.tiles[row][col] == nil
}

// TileAt returns a pointer to the Tile at the given coordinate,
// or nil if the square is empty or outside the board
func (board *Board) TileAt(row, col int) *Tile {
	if !board.IsValidPosition(row, col) {
		return nil
	}
	return board.tiles[row][col]
}

// BonusAt returns the bonus of the square at the given coordinate,
// or OffBoard if the coordinate is outside the board
func (board *Board) BonusAt(row, col int) Bonus {
	if !board.IsValidPosition(row, col) {
		return OffBoard
	}
	return bonusLayout[row][col]
}

// IsCenterOccupied returns true if the start square has a tile
func (board *Board) IsCenterOccupied() bool {
	return board.tiles[CenterIndex][CenterIndex] != nil
}

// PlaceTile puts a tile on an empty square. On failure,
// the board is left unchanged.
func (board *Board) PlaceTile(row, col int, tile *Tile) error {
	if !board.IsValidPosition(row, col) {
		return ErrOutOfBounds
	}
	if tile == nil {
		return ErrNoTile
	}
	if board.tiles[row][col] != nil {
		return ErrCellOccupied
	}
	if !tile.IsBound() {
		return ErrUnboundBlank
	}
	board.tiles[row][col] = tile
	board.NumTiles++
	return nil
}

// RemoveTile takes back a tile that has been placed but not
// yet committed, returning it
func (board *Board) RemoveTile(row, col int) (*Tile, error) {
	if !board.IsValidPosition(row, col) {
		return nil, ErrOutOfBounds
	}
	tile := board.tiles[row][col]
	if tile == nil {
		return nil, ErrCellEmpty
	}
	if board.committed[row][col] {
		return nil, ErrCellCommitted
	}
	board.tiles[row][col] = nil
	board.NumTiles--
	return tile, nil
}

// Commit marks all tiles currently on the board as committed
func (board *Board) Commit() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if board.tiles[row][col] != nil {
				board.committed[row][col] = true
			}
		}
	}
}

// IsCommitted returns true if the square holds a committed tile
func (board *Board) IsCommitted(row, col int) bool {
	return board.IsValidPosition(row, col) && board.committed[row][col]
}

// NumAdjacentTiles returns the number of tiles on the
// Board that are adjacent to the given coordinate
func (board *Board) NumAdjacentTiles(row, col int) int {
	count := 0
	for _, d := range directionDeltas {
		if board.TileAt(row+d.Row, col+d.Col) != nil {
			count++
		}
	}
	return count
}

// IsConnected returns true if a tile placed at the coordinate would
// connect to the tiles already on the board. While the center square
// is empty, only the center square is connected.
func (board *Board) IsConnected(row, col int) bool {
	if !board.IsValidPosition(row, col) {
		return false
	}
	if !board.IsCenterOccupied() {
		return row == CenterIndex && col == CenterIndex
	}
	return board.tiles[row][col] != nil || board.NumAdjacentTiles(row, col) > 0
}

// Fragment returns a list of the tiles that extend from the square
// at row, col in the direction specified (ABOVE/BELOW/LEFT/RIGHT),
// nearest first
func (board *Board) Fragment(row, col int, direction int) []*Tile {
	if !board.IsValidPosition(row, col) {
		return nil
	}
	if direction < ABOVE || direction > BELOW {
		return nil
	}
	d := directionDeltas[direction]
	frag := make([]*Tile, 0, BoardSize-1)
	for {
		row, col = row+d.Row, col+d.Col
		tile := board.TileAt(row, col)
		if tile == nil {
			break
		}
		frag = append(frag, tile)
	}
	return frag
}

// WordFragment returns the word formed by the tile sequence emanating
// from the given square in the indicated direction, not including the
// square itself, in reading order
func (board *Board) WordFragment(row, col int, direction int) string {
	frag := board.Fragment(row, col, direction)
	runes := make([]rune, len(frag))
	for i, tile := range frag {
		if direction == LEFT || direction == ABOVE {
			// Fragments going backwards must be reversed
			runes[len(frag)-1-i] = tile.Meaning
		} else {
			runes[i] = tile.Meaning
		}
	}
	return string(runes)
}

// CrossWords returns the word fragments to the left and right of, or above
// and below, the given coordinate on the board
func (board *Board) CrossWords(row, col int, horizontal bool) (left, right string) {
	if horizontal {
		return board.WordFragment(row, col, LEFT), board.WordFragment(row, col, RIGHT)
	}
	return board.WordFragment(row, col, ABOVE), board.WordFragment(row, col, BELOW)
}

// WordTile is a tile within a Word, with its coordinate
type WordTile struct {
	Coordinate
	Tile *Tile
	// Placed is true if the tile is being placed by the move
	// under consideration, false if it was already on the board
	Placed bool
}

// Word is a contiguous run of two or more tiles along a row or column
type Word struct {
	Word       string
	Horizontal bool
	Start      Coordinate
	Tiles      []WordTile
}

// Positions returns the coordinates of the tiles in the word
func (word *Word) Positions() []Coordinate {
	positions := make([]Coordinate, len(word.Tiles))
	for i, wt := range word.Tiles {
		positions[i] = wt.Coordinate
	}
	return positions
}

// NumPlaced returns the number of newly placed tiles in the word
func (word *Word) NumPlaced() int {
	n := 0
	for _, wt := range word.Tiles {
		if wt.Placed {
			n++
		}
	}
	return n
}

func (word *Word) String() string {
	return word.Word
}

// wordAt returns the full run of tiles through the given square,
// or nil if the square is empty or the run is a single tile
func (board *Board) wordAt(row, col int, horizontal bool) *Word {
	if board.TileAt(row, col) == nil {
		return nil
	}
	var back, forward Coordinate
	if horizontal {
		back, forward = directionDeltas[LEFT], directionDeltas[RIGHT]
	} else {
		back, forward = directionDeltas[ABOVE], directionDeltas[BELOW]
	}
	// Scan back to the start of the run
	for board.TileAt(row+back.Row, col+back.Col) != nil {
		row, col = row+back.Row, col+back.Col
	}
	word := &Word{Horizontal: horizontal, Start: Coordinate{row, col}}
	runes := make([]rune, 0, BoardSize)
	for tile := board.TileAt(row, col); tile != nil; tile = board.TileAt(row, col) {
		word.Tiles = append(word.Tiles, WordTile{Coordinate: Coordinate{row, col}, Tile: tile})
		runes = append(runes, tile.Meaning)
		row, col = row+forward.Row, col+forward.Col
	}
	if len(word.Tiles) < 2 {
		// A single tile is not a word in this direction
		return nil
	}
	word.Word = string(runes)
	return word
}

// WordHorizontal returns the horizontal word running through the
// given square, or nil if there is none
func (board *Board) WordHorizontal(row, col int) *Word {
	return board.wordAt(row, col, true)
}

// WordVertical returns the vertical word running through the
// given square, or nil if there is none
func (board *Board) WordVertical(row, col int) *Word {
	return board.wordAt(row, col, false)
}

// FormedWords returns every distinct word touching the given
// (already placed) squares: horizontal words first, by row,
// then vertical words, by column. The tiles on the given squares
// are marked as Placed.
func (board *Board) FormedWords(placed []Coordinate) []Word {
	isPlaced := make(map[Coordinate]bool, len(placed))
	for _, coord := range placed {
		isPlaced[coord] = true
	}
	type runKey struct {
		horizontal bool
		start      Coordinate
	}
	seen := make(map[runKey]bool)
	var horizontal, vertical []Word
	for _, coord := range sortedCoordinates(placed) {
		for _, h := range [2]bool{true, false} {
			word := board.wordAt(coord.Row, coord.Col, h)
			if word == nil {
				continue
			}
			key := runKey{h, word.Start}
			if seen[key] {
				// Already reported via another tile in the same run
				continue
			}
			seen[key] = true
			for i := range word.Tiles {
				word.Tiles[i].Placed = isPlaced[word.Tiles[i].Coordinate]
			}
			if h {
				horizontal = append(horizontal, *word)
			} else {
				vertical = append(vertical, *word)
			}
		}
	}
	slices.SortStableFunc(vertical, func(a, b Word) int {
		if a.Start.Col != b.Start.Col {
			return a.Start.Col - b.Start.Col
		}
		return a.Start.Row - b.Start.Row
	})
	return append(horizontal, vertical...)
}

// ParseBoard creates a Board from BoardSize strings of BoardSize
// characters each. A '.' or a space denotes an empty square, an
// upper case letter a regular tile and a lower case letter a blank
// tile that has been assigned the corresponding upper case letter.
// All tiles on the resulting board are committed.
func ParseBoard(rows []string, tileSet *TileSet) (*Board, error) {
	if len(rows) != BoardSize {
		return nil, fmt.Errorf("invalid board: must be %v rows, got %v", BoardSize, len(rows))
	}
	board := NewBoard()
	for r, rowString := range rows {
		row := []rune(rowString)
		if len(row) != BoardSize {
			return nil, fmt.Errorf(
				"invalid board row (#%v): must be %v characters long", r, BoardSize,
			)
		}
		for c, letter := range row {
			if letter == '.' || letter == ' ' {
				continue
			}
			var tile *Tile
			if unicode.IsLower(letter) {
				// Lower case letters represent blank tiles
				// that have been assigned a letter
				meaning := unicode.ToUpper(letter)
				if !isLetter(meaning) {
					return nil, fmt.Errorf("invalid letter '%c' at %v,%v", letter, r, c)
				}
				tile = NewTile(BlankLetter, 0)
				tile.Meaning = meaning
			} else {
				score, ok := tileSet.Scores[letter]
				if !ok || !isLetter(letter) {
					return nil, fmt.Errorf("invalid letter '%c' at %v,%v", letter, r, c)
				}
				tile = NewTile(letter, score)
			}
			if err := board.PlaceTile(r, c, tile); err != nil {
				return nil, fmt.Errorf("square %v,%v: %w", r, c, err)
			}
		}
	}
	board.Commit()
	return board, nil
}

// Rows returns the board in the format accepted by ParseBoard
func (board *Board) Rows() []string {
	rows := make([]string, BoardSize)
	for i := 0; i < BoardSize; i++ {
		var sb strings.Builder
		for j := 0; j < BoardSize; j++ {
			sb.WriteString(board.tiles[i][j].String())
		}
		rows[i] = sb.String()
	}
	return rows
}

// String represents a Board as a string
func (board *Board) String() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for i := 0; i < BoardSize; i++ {
		sb.WriteString(colIds[i] + " ")
	}
	sb.WriteString("\n")
	for i := 0; i < BoardSize; i++ {
		sb.WriteString(fmt.Sprintf("%2s ", rowIds[i]))
		for j := 0; j < BoardSize; j++ {
			sb.WriteString(fmt.Sprintf("%v ", board.tiles[i][j]))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
