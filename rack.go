// rack.go
// Copyright (C) 2026 The tileplay authors

// This file implements the Rack struct and its operations

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
	"strings"

	"lukechampine.com/frand"
)

// RackSize contains the number of slots in the Rack
const RackSize = 7

// Rack represents a player's rack of Tiles
type Rack struct {
	Slots [RackSize]*Tile
}

// NewRack creates a rack containing fresh tiles for the given letters,
// with '?' (or '_') denoting the blank tile
func NewRack(letters []rune, tileSet *TileSet) (*Rack, error) {
	if len(letters) > RackSize {
		return nil, fmt.Errorf("too many tiles for a rack: %v", len(letters))
	}
	rack := &Rack{}
	for i, letter := range letters {
		tile := tileSet.NewTile(letter)
		if tile == nil {
			return nil, fmt.Errorf("letter '%c' is not in the tile set", letter)
		}
		rack.Slots[i] = tile
	}
	return rack, nil
}

// Fill draws tiles from the bag to fill a rack.
// Returns false if unable to fill all empty slots.
func (rack *Rack) Fill(bag *Bag) bool {
	for i := range rack.Slots {
		if rack.Slots[i] == nil {
			// Empty slot: draw a tile from the bag
			if rack.Slots[i] = bag.DrawTile(); rack.Slots[i] == nil {
				// Can't fill all empty slots: return false
				return false
			}
		}
	}
	// Able to fill all empty slots
	return true
}

// AddTile puts a tile into the first empty slot of the Rack,
// returning false if the Rack is full
func (rack *Rack) AddTile(tile *Tile) bool {
	for i := range rack.Slots {
		if rack.Slots[i] == nil {
			rack.Slots[i] = tile
			return true
		}
	}
	return false
}

// Tiles returns the tiles in the Rack, in slot order
func (rack *Rack) Tiles() []*Tile {
	tiles := make([]*Tile, 0, RackSize)
	if rack == nil {
		return tiles
	}
	for _, tile := range rack.Slots {
		if tile != nil {
			tiles = append(tiles, tile)
		}
	}
	return tiles
}

// Len returns the number of tiles in the Rack
func (rack *Rack) Len() int {
	return len(rack.Tiles())
}

// String returns a printable string representation of a Rack
func (rack *Rack) String() string {
	var sb strings.Builder
	for _, tile := range rack.Slots {
		sb.WriteString(fmt.Sprintf("%v ", tile))
	}
	return sb.String()
}

// AsRunes returns the tiles in the Rack as a list of runes
func (rack *Rack) AsRunes() []rune {
	runes := make([]rune, 0, RackSize)
	for _, tile := range rack.Tiles() {
		runes = append(runes, tile.Letter)
	}
	return runes
}

// AsString returns the tiles in the Rack as a contiguous string
func (rack *Rack) AsString() string {
	return string(rack.AsRunes())
}

// HasTile returns true if the given Tile is in the Rack
func (rack *Rack) HasTile(tile *Tile) bool {
	if rack == nil || tile == nil {
		return false
	}
	for _, t := range rack.Slots {
		if t == tile {
			return true
		}
	}
	return false
}

// IsEmpty returns true if the Rack is empty
func (rack *Rack) IsEmpty() bool {
	return rack.Len() == 0
}

// FindTile finds a tile with the given letter (or '?') in the
// rack and returns a pointer to it, or nil if not found
func (rack *Rack) FindTile(letter rune) *Tile {
	if rack == nil {
		return nil
	}
	letter = normalizeTileLetter(letter)
	for _, tile := range rack.Slots {
		if tile != nil && tile.Letter == letter {
			return tile
		}
	}
	return nil
}

// RemoveTile removes a tile from a Rack
func (rack *Rack) RemoveTile(tile *Tile) bool {
	if rack == nil || tile == nil {
		return false
	}
	for i := range rack.Slots {
		if rack.Slots[i] == tile {
			rack.Slots[i] = nil
			return true
		}
	}
	// Tile was not found in the rack
	return false
}

// Shuffle puts the tiles of the Rack in a random order,
// leaving any empty slots at the end
func (rack *Rack) Shuffle() {
	tiles := rack.Tiles()
	frand.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
	rack.Slots = [RackSize]*Tile{}
	copy(rack.Slots[:], tiles)
}

// ReturnToBag returns the tiles in the Rack to a Bag
func (rack *Rack) ReturnToBag(bag *Bag) {
	if rack == nil || bag == nil {
		return
	}
	for i := range rack.Slots {
		if rack.Slots[i] != nil {
			bag.ReturnTile(rack.Slots[i])
			rack.Slots[i] = nil
		}
	}
}
