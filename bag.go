// bag.go
// Copyright (C) 2026 The tileplay authors
// This file contains the tile sets and the Bag logic

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

	"lukechampine.com/frand"
)

// Bag is a randomized list of tiles, initialized from a tile
// set, that is yet to be drawn and used in a game
type Bag []*Tile

// TileSet is a static list of tiles, used as a prototype
// to copy new Bags from
type TileSet struct {
	Tiles  []Tile
	Scores map[rune]int
	Counts map[rune]int
}

// initTileSet makes a complete tile set, given a scoring map
// and a map of letters and their associated counts
func initTileSet(scores map[rune]int, counts map[rune]int) *TileSet {
	// Assign tiles in a fixed letter order, so that
	// the tile set is the same from run to run
	letters := make([]rune, 0, len(counts))
	numTiles := 0
	for letter, count := range counts {
		letters = append(letters, letter)
		numTiles += count
	}
	slices.Sort(letters)
	tiles := make([]Tile, 0, numTiles)
	for _, letter := range letters {
		score, ok := scores[letter]
		if !ok {
			panic(fmt.Sprintf("No score for letter %c in tile set", letter))
		}
		for j := 0; j < counts[letter]; j++ {
			tiles = append(tiles, *NewTile(letter, score))
		}
	}
	return &TileSet{Tiles: tiles, Scores: scores, Counts: counts}
}

// initEnglishTileSet creates the standard English tile set
// of 100 tiles, including two blanks
func initEnglishTileSet() *TileSet {

	// The scores of each letter
	scores := map[rune]int{
		'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1,
		'F': 4, 'G': 2, 'H': 4, 'I': 1, 'J': 8,
		'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1,
		'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1,
		'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4,
		'Z': 10, BlankLetter: 0,
	}

	// The number of tiles for each letter
	counts := map[rune]int{
		'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12,
		'F': 2, 'G': 3, 'H': 2, 'I': 9, 'J': 1,
		'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8,
		'P': 2, 'Q': 1, 'R': 6, 'S': 4, 'T': 6,
		'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2,
		'Z': 1, BlankLetter: 2,
	}

	return initTileSet(scores, counts)
}

// EnglishTileSet is the standard English tile set
var EnglishTileSet = initEnglishTileSet()

// Size returns the number of tiles in the tile set
func (tileSet *TileSet) Size() int {
	return len(tileSet.Tiles)
}

// NewTile returns a fresh tile with the given letter from
// the tile set, or nil if the letter is not in the set.
// The input alias '_' is accepted for the blank.
func (tileSet *TileSet) NewTile(letter rune) *Tile {
	letter = normalizeTileLetter(letter)
	score, ok := tileSet.Scores[letter]
	if !ok {
		return nil
	}
	return NewTile(letter, score)
}

// NewBag creates a bag holding fresh copies of every tile in the tile set
func NewBag(tileSet *TileSet) *Bag {
	bag := make(Bag, len(tileSet.Tiles))
	for i := range bag {
		tile := tileSet.Tiles[i]
		bag[i] = &tile
	}
	return &bag
}

// DrawTile pops one tile from the (randomized) bag
// and returns it
func (bag *Bag) DrawTile() *Tile {
	if bag == nil || len(*bag) == 0 {
		// No tiles left in the bag
		return nil
	}
	// Find a random tile in the bag and return it
	i := frand.Intn(len(*bag))
	return bag.removeAt(i)
}

// DrawTileByLetter draws the specified tile from the bag and
// returns it, or nil if no such tile is left
func (bag *Bag) DrawTileByLetter(letter rune) *Tile {
	if bag == nil {
		return nil
	}
	letter = normalizeTileLetter(letter)
	for i, tile := range *bag {
		if tile.Letter == letter {
			return bag.removeAt(i)
		}
	}
	return nil
}

func (bag *Bag) removeAt(i int) *Tile {
	tile := (*bag)[i]
	*bag = slices.Delete(*bag, i, i+1)
	return tile
}

// ReturnTile returns a previously drawn Tile to the Bag
func (bag *Bag) ReturnTile(tile *Tile) {
	if bag == nil || tile == nil {
		return
	}
	if tile.IsBlank() {
		// A blank loses its meaning when it goes back into the bag
		tile.Meaning = BlankLetter
	}
	*bag = append(*bag, tile)
}

// String returns a string representation of a Bag
func (bag *Bag) String() string {
	if bag == nil {
		return ""
	}
	var sb strings.Builder
	if len(*bag) == 0 {
		sb.WriteString("Empty")
	} else {
		sb.WriteString(fmt.Sprintf("(%v tiles): ", bag.TileCount()))
		for _, tile := range *bag {
			sb.WriteString(fmt.Sprintf("%v ", tile))
		}
	}
	return sb.String()
}

// TileCount returns the number of tiles in a Bag
func (bag *Bag) TileCount() int {
	if bag == nil {
		return 0
	}
	return len(*bag)
}

// ExchangeAllowed returns true if there are at least RackSize
// tiles left in the bag, thus allowing exchange of tiles
func (bag *Bag) ExchangeAllowed() bool {
	return bag != nil && len(*bag) >= RackSize
}
