// game.go
// Copyright (C) 2026 The tileplay authors

// This file contains the Game controller, which keeps track of
// the board, the bag, the racks and scores of two players and the
// moves made so far, using a Generator to find and validate moves

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

	"github.com/rs/zerolog/log"
)

// Game is a container for an in-progress game between
// two players, having a Board and two Racks, as well
// as a Bag and a list of Moves made so far
type Game struct {
	PlayerNames [2]string
	Scores      [2]int
	Board       *Board
	Racks       [2]Rack
	Bag         *Bag
	// A pass is recorded as a Move without placements
	MoveList []*Move
	// The number of consecutive passes
	NumPassMoves int
	TileSet      *TileSet
	gen          *Generator
}

// NewGame instantiates a new Game with a fresh bag copied
// from the given tile set, and draws the player racks
// from the bag
func NewGame(tileSet *TileSet, gen *Generator) *Game {
	game := &Game{
		PlayerNames: [2]string{"Player 1", "Player 2"},
		Board:       NewBoard(),
		Bag:         NewBag(tileSet),
		MoveList:    make([]*Move, 0, 30), // Initial capacity for 30 moves
		TileSet:     tileSet,
		gen:         gen,
	}
	game.Racks[0].Fill(game.Bag)
	game.Racks[1].Fill(game.Bag)
	return game
}

// SetPlayerNames sets the names of the two players
func (game *Game) SetPlayerNames(player0, player1 string) {
	game.PlayerNames[0] = player0
	game.PlayerNames[1] = player1
}

// PlayerToMove returns 0 or 1 depending on which player's move it is
func (game *Game) PlayerToMove() int {
	return len(game.MoveList) % 2
}

// Rack returns the rack of the given player (0 or 1)
func (game *Game) Rack(player int) *Rack {
	return &game.Racks[player]
}

// SetRack returns the tiles in a player's rack to the bag and draws
// the given letters instead. It returns an error, leaving the rack
// partially filled, if a letter is not available in the bag.
func (game *Game) SetRack(player int, letters string) error {
	rack := &game.Racks[player]
	rack.ReturnToBag(game.Bag)
	for i, letter := range []rune(letters) {
		if i >= RackSize {
			return fmt.Errorf("too many tiles for a rack: %v", letters)
		}
		tile := game.Bag.DrawTileByLetter(letter)
		if tile == nil {
			return fmt.Errorf("no tile '%c' left in the bag", letter)
		}
		rack.Slots[i] = tile
	}
	return nil
}

// TilesOnBoard returns the number of tiles already laid down
// on the board
func (game *Game) TilesOnBoard() int {
	return game.Board.NumTiles
}

// Hint returns all legal moves for the player to move
func (game *Game) Hint() []*Move {
	return game.gen.GenerateMoves(game.Board, game.Racks[game.PlayerToMove()].Tiles())
}

// Submit validates a tile move by the player to move and, if valid,
// moves the tiles from the player's rack to the board, commits them,
// updates the player's score and replenishes the rack
func (game *Game) Submit(covers Covers) (*Move, error) {
	player := game.PlayerToMove()
	rack := &game.Racks[player]
	move, err := game.gen.ValidateSubmission(game.Board, rack.Tiles(), covers)
	if err != nil {
		return nil, err
	}
	// Place the actual tiles from the rack on the board,
	// taking them back if anything goes wrong
	placed := make([]Coordinate, 0, len(move.Placements))
	rollback := func() {
		for _, c := range placed {
			if tile, err := game.Board.RemoveTile(c.Row, c.Col); err == nil {
				tile.Meaning = tile.Letter
				rack.AddTile(tile)
			}
		}
	}
	for _, p := range move.Placements {
		tile := rack.FindTile(p.Tile.Letter)
		if tile == nil || !rack.RemoveTile(tile) {
			rollback()
			return nil, fmt.Errorf("tile %c not in rack", p.Tile.Letter)
		}
		tile.Meaning = p.Tile.Meaning
		if err := game.Board.PlaceTile(p.Row, p.Col, tile); err != nil {
			rack.AddTile(tile)
			rollback()
			return nil, fmt.Errorf("placing tile at %v: %w", p.Coordinate, err)
		}
		placed = append(placed, p.Coordinate)
	}
	game.Board.Commit()
	game.MoveList = append(game.MoveList, move)
	game.Scores[player] += move.Score
	game.NumPassMoves = 0
	// Replenish the player's rack, as needed
	rack.Fill(game.Bag)
	log.Info().
		Int("player", player).
		Str("move", move.String()).
		Int("score", move.Score).
		Msg("move-submitted")
	return move, nil
}

// Pass records a pass by the player to move
func (game *Game) Pass() {
	game.MoveList = append(game.MoveList, &Move{})
	game.NumPassMoves++
}

// IsOver returns true if the bag is empty and one of the racks is empty
func (game *Game) IsOver() bool {
	return game.Bag.TileCount() == 0 &&
		(game.Racks[0].IsEmpty() || game.Racks[1].IsEmpty())
}

// String returns a string representation of a Game
func (game *Game) String() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%v (%v : %v) %v\n",
		game.PlayerNames[0],
		game.Scores[0],
		game.Scores[1],
		game.PlayerNames[1],
	))
	sb.WriteString(fmt.Sprintf("%v\n", game.Board))
	sb.WriteString(fmt.Sprintf("Rack 0: %v\n", &game.Racks[0]))
	sb.WriteString(fmt.Sprintf("Rack 1: %v\n", &game.Racks[1]))
	sb.WriteString(fmt.Sprintf("Bag: %v\n", game.Bag))
	// Show the move list, if present
	if len(game.MoveList) > 0 {
		sb.WriteString("Moves:\n")
		for i, m := range game.MoveList {
			if i%2 == 0 {
				// Left side player
				sb.WriteString(fmt.Sprintf("  %2d: (%v) %v", (i/2)+1, m.Score, m))
			} else {
				// Right side player
				sb.WriteString(fmt.Sprintf(" / %v (%v)\n", m, m.Score))
			}
		}
		if len(game.MoveList)%2 == 1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
