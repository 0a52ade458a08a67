// movegen.go
// Copyright (C) 2026 The tileplay authors
// This file implements the move generator

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

/*

The code herein finds all legal moves on a 15x15 tile-placement board.

The algorithm is based on the classic paper by Appel & Jacobson,
"The World's Fastest Scrabble Program",
http://www.cs.cmu.edu/afs/cs/academic/class/15451-s06/www/lectures/scrabble.pdf

The main function in this module is Generator.GenerateMoves(). Given
a Board and a rack of tiles, it returns all legal tile moves that form
valid words in the Generator's Dictionary.

Moves are found by examining each one-dimensional Axis of the board
in turn, i.e. 15 rows and 15 columns for a total of 30 axes.
For each Axis, the tiles along it are copied out of the Board and the
cross-check set of each empty anchor square is calculated, i.e. the set
of letters that form valid words by connecting with word parts across
the square's Axis. To save processing time, the cross-check sets are
also intersected with the letters in the rack, unless the rack contains
a blank tile.

Any empty square adjacent to a covered square is an anchor square.
On an empty board, the center square is the only anchor.
Each anchor square is examined in turn, from "left" to "right":

1) If the square to the left of the anchor holds a tile, the word
	fragment ending there is looked up in the trie and, if it is a
	valid prefix, extended to the right from the anchor.
2) Otherwise, count the number of empty non-anchor squares to the left
	of the anchor, which may be zero. Call the number 'maxleft'.
	Try all permutations of rack tiles that are word beginnings, of
	length 0..maxleft (these left parts are calculated only once for
	the entire move generation), and extend each one to the right.
3) When placing a tile on the anchor square or to its right,
	do so under three constraints: (a) the cross-check
	set of the square in question; (b) that there is
	a path in the trie corresponding to the tiles that have
	been laid down so far; (c) a matching tile is still available
	in the rack. A blank tile can stand for any letter, and a
	regular tile and a blank are tried as separate alternatives.
4) If extending to the right and coming to a tile that is
	already on the board, it must correspond to the trie path
	being followed.
5) If we are running off the edge of the axis, or have come
	to an empty square, and we are at a final node in the
	trie indicating that a word of at least two letters is completed,
	we have a candidate move. Calculate its score and add it to the
	list of moves.

The axes are processed by a bounded pool of goroutines and their
results are merged in axis order (rows before columns), removing
duplicates: a single tile forming words in both directions is found
along both of its axes.

*/

package tileplay

import (
	"context"
	"runtime"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
)

// Generator finds all legal moves for a rack on a board,
// using a Dictionary. A Generator is safe for concurrent use.
type Generator struct {
	dict       *Dictionary
	workers    int
	maxAnchors int
	evaluator  *ScoreEvaluator
}

// GeneratorOption configures a Generator
type GeneratorOption func(*Generator)

// WithWorkers sets the maximum number of axes that are
// processed concurrently
func WithWorkers(n int) GeneratorOption {
	return func(gen *Generator) {
		if n > 0 {
			gen.workers = n
		}
	}
}

// WithMaxAnchors limits the number of anchor squares explored per
// move generation. Zero or a negative number means no limit.
func WithMaxAnchors(n int) GeneratorOption {
	return func(gen *Generator) {
		gen.maxAnchors = n
	}
}

// WithScoreEvaluator sets the evaluator used to score moves
func WithScoreEvaluator(ev *ScoreEvaluator) GeneratorOption {
	return func(gen *Generator) {
		if ev != nil {
			gen.evaluator = ev
		}
	}
}

// NewGenerator returns a move generator for the given Dictionary
func NewGenerator(dict *Dictionary, opts ...GeneratorOption) *Generator {
	gen := &Generator{
		dict:      dict,
		workers:   runtime.GOMAXPROCS(0),
		evaluator: DefaultScoreEvaluator,
	}
	for _, opt := range opts {
		opt(gen)
	}
	return gen
}

// Dictionary returns the Dictionary used by the Generator
func (gen *Generator) Dictionary() *Dictionary {
	return gen.dict
}

// ScoreEvaluator returns the evaluator used to score moves
func (gen *Generator) ScoreEvaluator() *ScoreEvaluator {
	return gen.evaluator
}

// genState holds the per-call state that is shared,
// read-only, by all axes of a move generation
type genState struct {
	gen     *Generator
	board   *Board
	rack    rackCounts
	scores  [NumLetters]int
	rackSet LetterSet
	lenRack int
	// Left parts of words that can be formed from the rack,
	// grouped by length (index 0 is length 1)
	leftParts [][]*leftPart
}

// leftPart is a word beginning formed from rack tiles, along with
// the trie node it leads to and the tiles remaining in the rack
type leftPart struct {
	node  *trieNode
	tiles []Tile
	rack  rackCounts
}

// tileChoices returns the tiles from the rack that can stand for the
// given letter: a regular tile, if any, and a blank, if any
func (gs *genState) tileChoices(rack *rackCounts, letter rune) []Tile {
	ix := letterIndex(letter)
	choices := make([]Tile, 0, 2)
	if rack[ix] > 0 {
		choices = append(choices, Tile{Letter: letter, Meaning: letter, Score: gs.scores[ix]})
	}
	if rack[blankIndex] > 0 {
		choices = append(choices, Tile{Letter: BlankLetter, Meaning: letter, Score: 0})
	}
	return choices
}

// take returns a copy of the rack with the given tile removed
func take(rack rackCounts, tile Tile) rackCounts {
	if tile.IsBlank() {
		rack[blankIndex]--
	} else {
		rack[letterIndex(tile.Letter)]--
	}
	return rack
}

// findLeftParts collects all left parts of up to maxLeft tiles that
// can be formed from the rack, starting from the given trie node
func (gs *genState) findLeftParts(node *trieNode, tiles []Tile, rack rackCounts, maxLeft int) {
	if len(tiles) >= maxLeft {
		return
	}
	for i, child := range node.children {
		if child == nil {
			continue
		}
		for _, tile := range gs.tileChoices(&rack, rune('A'+i)) {
			part := &leftPart{
				node:  child,
				tiles: append(slices.Clip(tiles), tile),
				rack:  take(rack, tile),
			}
			gs.leftParts[len(part.tiles)-1] = append(gs.leftParts[len(part.tiles)-1], part)
			gs.findLeftParts(child, part.tiles, part.rack, maxLeft)
		}
	}
}

// Axis stores information about a row or column on the board where
// the generator is looking for valid moves
type Axis struct {
	state      *genState
	index      int
	horizontal bool
	// The tiles along this Axis
	tiles [BoardSize]*Tile
	// A bitmap of the letters that are allowed on each square,
	// intersected with the current rack
	crossCheck [BoardSize]LetterSet
	// A boolean for each square indicating whether it is an anchor
	// square
	isAnchor [BoardSize]bool
	// The maximum number of anchors to explore, or -1 for no limit
	anchorLimit int
	// The list of valid tile moves found
	moves []*Move
}

// coord returns the board coordinate of a square within the Axis
func (axis *Axis) coord(i int) Coordinate {
	if axis.horizontal {
		return Coordinate{axis.index, i}
	}
	return Coordinate{i, axis.index}
}

// Init initializes a fresh Axis object, associating it with a board
// row or column
func (axis *Axis) Init(state *genState, index int, horizontal bool) {
	axis.state = state
	axis.index = index
	axis.horizontal = horizontal
	axis.anchorLimit = -1
	board := state.board
	for i := 0; i < BoardSize; i++ {
		c := axis.coord(i)
		axis.tiles[i] = board.TileAt(c.Row, c.Col)
	}
	for i := 0; i < BoardSize; i++ {
		if axis.tiles[i] != nil {
			// Already have a tile here: not an anchor and no
			// cross-check set needed
			continue
		}
		c := axis.coord(i)
		var isAnchor bool
		if !board.IsCenterOccupied() {
			// Special case: while the center square is empty,
			// it is the only anchor, in both directions
			isAnchor = c.Row == CenterIndex && c.Col == CenterIndex
		} else {
			isAnchor = board.NumAdjacentTiles(c.Row, c.Col) > 0
		}
		if !isAnchor {
			// Empty square with no adjacent tiles: not an anchor,
			// and we can place any letter from the rack here
			axis.crossCheck[i] = state.rackSet
		} else {
			// This is an anchor square. Note, however, that the
			// cross-check set for it may be empty, if no tile from
			// the rack can be placed in it due to cross-words.
			axis.isAnchor[i] = true
			axis.crossCheck[i] = state.rackSet & axis.crossSet(c)
		}
	}
}

func (axis *Axis) crossSet(c Coordinate) LetterSet {
	// Check whether the cross word(s) limit the set of allowed
	// letters in this anchor square
	left, right := axis.state.board.CrossWords(c.Row, c.Col, !axis.horizontal)
	if len(left) == 0 && len(right) == 0 {
		// No cross word, so no cross check constraint
		return AllLetters
	}
	return axis.state.gen.dict.CrossSet(left, right)
}

// IsAnchor returns true if the given square within the Axis
// is an anchor square
func (axis *Axis) IsAnchor(index int) bool {
	return axis.isAnchor[index]
}

// IsOpen returns true if the given square within the Axis
// is open for a new Tile from the Rack
func (axis *Axis) IsOpen(index int) bool {
	return axis.tiles[index] == nil && axis.crossCheck[index] != 0
}

// Allows returns true if the given letter can be placed
// in the indexed square within the Axis, in compliance
// with the cross checks
func (axis *Axis) Allows(index int, letter rune) bool {
	if axis.tiles[index] != nil {
		// We already have a tile in this square
		return false
	}
	return axis.crossCheck[index].Contains(letter)
}

// numExplorable returns the number of anchors on this axis where
// a tile from the rack can actually be placed
func (axis *Axis) numExplorable() int {
	n := 0
	for i := 0; i < BoardSize; i++ {
		if axis.isAnchor[i] && axis.crossCheck[i] != 0 {
			n++
		}
	}
	return n
}

// axisTile is a tile placed on a square of an Axis
type axisTile struct {
	index int
	tile  Tile
}

// extendRight places tiles on the anchor square and to its right,
// following the trie from the given node. start is the axis index
// of the first letter of the word being formed.
func (axis *Axis) extendRight(node *trieNode, index, start, anchor int, rack rackCounts, placed []axisTile) {
	if index >= BoardSize || axis.tiles[index] == nil {
		// The word ends here, unless we place more tiles
		if node.final && index-start >= 2 && index > anchor {
			axis.record(placed)
		}
	}
	if index >= BoardSize {
		// Gone off the board edge
		return
	}
	if tile := axis.tiles[index]; tile != nil {
		// There is a tile in the square: the trie path must follow it
		if child := node.child(tile.Meaning); child != nil {
			axis.extendRight(child, index+1, start, anchor, rack, placed)
		}
		return
	}
	if rack.total() == 0 || len(placed) >= RackSize {
		return
	}
	for i, child := range node.children {
		if child == nil {
			continue
		}
		letter := rune('A' + i)
		if !axis.Allows(index, letter) {
			continue
		}
		for _, tile := range axis.state.tileChoices(&rack, letter) {
			axis.extendRight(
				child, index+1, start, anchor,
				take(rack, tile),
				append(slices.Clip(placed), axisTile{index, tile}),
			)
		}
	}
}

// record makes a Move from the tiles placed along the Axis
// and adds it to the move list
func (axis *Axis) record(placed []axisTile) {
	placements := make([]Placement, len(placed))
	for i, at := range placed {
		placements[i] = Placement{Coordinate: axis.coord(at.index), Tile: at.tile}
	}
	move, err := newMove(axis.state.board, placements, axis.horizontal, axis.state.gen.evaluator)
	if err != nil {
		// Should not happen: generated placements are on empty squares
		log.Error().Err(err).Msg("invalid-generated-move")
		return
	}
	axis.moves = append(axis.moves, move)
}

// genMovesFromAnchor finds the moves that use the given square
// within the Axis as their leftmost anchor
func (axis *Axis) genMovesFromAnchor(anchor int, maxLeft int) {
	state := axis.state
	root := &state.gen.dict.root

	// Do we have a left part already on the board?
	if anchor > 0 && axis.tiles[anchor-1] != nil {
		// Yes: find the start of the fragment and walk it down the trie
		start := anchor - 1
		for start > 0 && axis.tiles[start-1] != nil {
			start--
		}
		node := root
		for i := start; i < anchor && node != nil; i++ {
			node = node.child(axis.tiles[i].Meaning)
		}
		if node == nil {
			// No matching prefix found: there cannot be any
			// valid completions of the left part that is already
			// there.
			return
		}
		axis.extendRight(node, anchor, start, anchor, state.rack, nil)
		return
	}

	// We are not completing an existing left part.
	// Begin by extending an empty prefix to the right, i.e. placing
	// tiles on the anchor square itself and to its right
	axis.extendRight(root, anchor, anchor, anchor, state.rack, nil)

	// Follow this by an effort to permute left prefixes into the
	// open space to the left of the anchor square, if any
	for leftLen := 1; leftLen <= maxLeft; leftLen++ {
		start := anchor - leftLen
		for _, lp := range state.leftParts[leftLen-1] {
			placed := make([]axisTile, leftLen)
			for i, tile := range lp.tiles {
				placed[i] = axisTile{start + i, tile}
			}
			axis.extendRight(lp.node, anchor, start, anchor, lp.rack, placed)
		}
	}
}

// GenerateMoves finds all legal moves along this Axis
func (axis *Axis) GenerateMoves(ctx context.Context) error {
	lastAnchor := -1
	explored := 0
	// Process the anchors, one by one, from left to right
	for i := 0; i < BoardSize; i++ {
		if !axis.IsAnchor(i) {
			continue
		}
		// This is an anchor
		if axis.crossCheck[i] != 0 {
			if axis.anchorLimit >= 0 && explored >= axis.anchorLimit {
				break
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			// A tile from the rack can actually be placed here:
			// count open squares to the anchor's left,
			// up to but not including the previous anchor, if any.
			openCnt := 0
			left := i
			for left > 0 && left > (lastAnchor+1) && axis.IsOpen(left-1) {
				openCnt++
				left--
			}
			axis.genMovesFromAnchor(i, min(openCnt, len(axis.state.leftParts)))
			explored++
		}
		lastAnchor = i
	}
	return nil
}

// GenerateMoves returns a list of all legal moves for the given rack
// on the given board. The board is not modified. The moves are
// listed in a stable order: by axis (rows top to bottom, then columns
// left to right) and, within an axis, by anchor.
func (gen *Generator) GenerateMoves(board *Board, rack []*Tile) []*Move {
	moves, err := gen.GenerateMovesContext(context.Background(), board, rack)
	if err != nil {
		log.Error().Err(err).Msg("generate-moves")
	}
	return moves
}

// GenerateMovesContext is GenerateMoves with cancellation. If the
// context is cancelled, the moves found so far are discarded and
// the context error is returned.
func (gen *Generator) GenerateMovesContext(ctx context.Context, board *Board, rack []*Tile) ([]*Move, error) {
	state := gen.newGenState(board, rack)
	if state.lenRack == 0 || gen.dict == nil {
		return []*Move{}, nil
	}

	// Set up all 30 axes: rows first, then columns
	axes := make([]*Axis, 2*BoardSize)
	for i := 0; i < BoardSize; i++ {
		axes[i] = &Axis{}
		axes[i].Init(state, i, true)
		axes[BoardSize+i] = &Axis{}
		axes[BoardSize+i].Init(state, i, false)
	}
	if gen.maxAnchors > 0 {
		// Distribute the anchor budget over the axes in a fixed order
		budget := gen.maxAnchors
		for _, axis := range axes {
			axis.anchorLimit = min(budget, axis.numExplorable())
			budget -= axis.anchorLimit
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(gen.workers)
	for _, axis := range axes {
		if axis.anchorLimit == 0 {
			continue
		}
		axis := axis
		g.Go(func() error {
			return axis.GenerateMoves(gctx)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Merge in axis order, dropping moves found along both axes
	moves := lo.UniqBy(
		lo.FlatMap(axes, func(axis *Axis, _ int) []*Move { return axis.moves }),
		(*Move).Key,
	)
	log.Debug().
		Int("rack", state.lenRack).
		Int("board-tiles", board.NumTiles).
		Int("moves", len(moves)).
		Msg("generated-moves")
	return moves, nil
}

// newGenState prepares the shared state for a move generation
func (gen *Generator) newGenState(board *Board, rack []*Tile) *genState {
	state := &genState{
		gen:   gen,
		board: board,
		rack:  makeRackCounts(rack),
	}
	for _, tile := range rack {
		if tile == nil {
			continue
		}
		if ix := letterIndex(tile.Letter); ix >= 0 {
			state.scores[ix] = tile.Score
		}
	}
	state.lenRack = state.rack.total()
	state.rackSet = state.rack.letterSet()
	// One tile from the rack will be put on the anchor square;
	// the rest is available to be played to the left of the anchor
	maxLeft := max(min(state.lenRack, RackSize)-1, 0)
	state.leftParts = make([][]*leftPart, maxLeft)
	if gen.dict != nil {
		state.findLeftParts(&gen.dict.root, nil, state.rack, maxLeft)
	}
	return state
}
