// score.go
// Copyright (C) 2026 The tileplay authors
// This file contains the ScoreEvaluator, which calculates
// the score of the words formed by a move

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
	"github.com/samber/lo"
)

// BingoBonus is the number of extra points awarded for laying down
// all the 7 tiles in the rack in one move
const BingoBonus = 50

// ScoreEvaluator calculates move scores from the words formed
// on a board where the move's tiles have been placed
type ScoreEvaluator struct {
	BingoBonus int
	// BingoTiles is the number of tiles that must be
	// placed in one move to earn the bingo bonus
	BingoTiles int
}

// DefaultScoreEvaluator uses the standard bingo rule
var DefaultScoreEvaluator = &ScoreEvaluator{
	BingoBonus: BingoBonus,
	BingoTiles: RackSize,
}

// WordScore returns the score of a single word. Letter multipliers
// only apply to newly placed tiles, and the word is multiplied by
// the word multipliers of the squares covered by newly placed tiles.
func (ev *ScoreEvaluator) WordScore(board *Board, word *Word) int {
	score := 0
	multiplier := 1
	for _, wt := range word.Tiles {
		// A blank tile has a score of 0
		letterScore := wt.Tile.Score
		if wt.Placed {
			bonus := board.BonusAt(wt.Row, wt.Col)
			letterScore *= bonus.LetterMultiplier()
			multiplier *= bonus.WordMultiplier()
		}
		score += letterScore
	}
	return score * multiplier
}

// Score returns the total score of the given words, plus the bingo
// bonus if the number of distinct newly placed tiles in them equals
// BingoTiles
func (ev *ScoreEvaluator) Score(board *Board, words []Word) int {
	if ev == nil {
		ev = DefaultScoreEvaluator
	}
	score := lo.SumBy(words, func(w Word) int {
		return ev.WordScore(board, &w)
	})
	placed := lo.Uniq(lo.FlatMap(words, func(w Word, _ int) []Coordinate {
		return lo.FilterMap(w.Tiles, func(wt WordTile, _ int) (Coordinate, bool) {
			return wt.Coordinate, wt.Placed
		})
	}))
	if ev.BingoTiles > 0 && len(placed) == ev.BingoTiles {
		score += ev.BingoBonus
	}
	return score
}
