// utils.go
// Copyright (C) 2026 The tileplay authors

// This file contains general utility functions and the
// letter count representation of a rack used during move generation.

package tileplay

// NumLetters is the number of letters in the alphabet
const NumLetters = 26

// blankIndex is the index of the blank within rackCounts
const blankIndex = NumLetters

// isLetter returns true if r is an upper case letter A-Z
func isLetter(r rune) bool {
	return r >= 'A' && r <= 'Z'
}

// letterIndex returns the 0-based index of a letter A-Z,
// or -1 if r is not such a letter
func letterIndex(r rune) int {
	if !isLetter(r) {
		return -1
	}
	return int(r - 'A')
}

// normalizeTileLetter maps tile input aliases to their canonical letter.
// The underscore is accepted for the blank.
func normalizeTileLetter(r rune) rune {
	if r == '_' {
		return BlankLetter
	}
	if r >= 'a' && r <= 'z' {
		return r - 'a' + 'A'
	}
	return r
}

// rackCounts holds the number of tiles of each letter in a rack,
// with the blank count at blankIndex
type rackCounts [NumLetters + 1]int

// makeRackCounts counts the tiles in a list. Tiles with letters
// outside A-Z (other than the blank) are ignored.
func makeRackCounts(tiles []*Tile) rackCounts {
	var counts rackCounts
	for _, tile := range tiles {
		if tile == nil {
			continue
		}
		if tile.IsBlank() {
			counts[blankIndex]++
		} else if ix := letterIndex(tile.Letter); ix >= 0 {
			counts[ix]++
		}
	}
	return counts
}

// total returns the number of tiles counted
func (counts *rackCounts) total() int {
	n := 0
	for _, c := range counts {
		n += c
	}
	return n
}

// hasBlank returns true if at least one blank is counted
func (counts *rackCounts) hasBlank() bool {
	return counts[blankIndex] > 0
}

// letterSet returns the set of letters that can be played from
// the rack: all letters if it contains a blank
func (counts *rackCounts) letterSet() LetterSet {
	if counts.hasBlank() {
		return AllLetters
	}
	var set LetterSet
	for i := 0; i < NumLetters; i++ {
		if counts[i] > 0 {
			set = set.Add(rune('A' + i))
		}
	}
	return set
}
