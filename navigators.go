// navigators.go
// Copyright (C) 2026 The tileplay authors

// This file contains the Navigator interface, which lets a caller
// steer a depth-first walk of the Dictionary trie, along with the
// navigators behind Dictionary.Permute and Dictionary.Match.

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

// Navigator controls a walk through a Dictionary. For each edge out
// of a node, in letter order, the walk asks PushEdge whether to try
// it, then Accepts whether to consume its letter. Accept reports the
// letters matched so far and whether they form a word. After an edge
// has been explored, PopEdge restores the navigator's state and
// tells whether the sibling edges should be tried too.
type Navigator interface {
	IsAccepting() bool
	Accepts(rune) bool
	Accept(matched []rune, final bool, node *trieNode)
	PushEdge(rune) bool
	PopEdge() bool
	Done()
}

// Navigation is a walk through a Dictionary under the
// control of a Navigator
type Navigation struct {
	navigator Navigator
}

// Go walks the Dictionary from its root
func (nav *Navigation) Go(dict *Dictionary, navigator Navigator) {
	if dict == nil {
		return
	}
	nav.Resume(dict, navigator, &dict.root, nil)
}

// Resume walks the Dictionary from a node that has already been
// reached along the given letters
func (nav *Navigation) Resume(dict *Dictionary, navigator Navigator, node *trieNode, matched []rune) {
	if dict == nil || navigator == nil || node == nil {
		return
	}
	nav.navigator = navigator
	if navigator.IsAccepting() {
		nav.visit(node, matched)
	}
	navigator.Done()
}

// visit tries the outgoing edges of a node
func (nav *Navigation) visit(node *trieNode, matched []rune) {
	for i, child := range node.children {
		if child == nil {
			continue
		}
		letter := rune('A' + i)
		if !nav.navigator.PushEdge(letter) {
			continue
		}
		nav.follow(child, letter, matched)
		if !nav.navigator.PopEdge() {
			return
		}
	}
}

// follow moves along an edge into its child node
func (nav *Navigation) follow(child *trieNode, letter rune, matched []rune) {
	navigator := nav.navigator
	if !navigator.IsAccepting() || !navigator.Accepts(letter) {
		return
	}
	// Navigators may keep the slice, so it is never shared
	word := append(matched[:len(matched):len(matched)], letter)
	navigator.Accept(word, child.final, child)
	if navigator.IsAccepting() {
		nav.visit(child, word)
	}
}

// PermutationNavigator collects the words that can be
// spelled with the tiles of a rack
type PermutationNavigator struct {
	rack    rackCounts
	saved   []rackCounts
	minLen  int
	results []string
}

// Init sets up the navigator for a rack, where '?' is a blank,
// and a minimum word length
func (pn *PermutationNavigator) Init(rack []rune, minLen int) {
	pn.rack = rackCounts{}
	for _, r := range rack {
		if r == BlankLetter {
			pn.rack[blankIndex]++
		} else if ix := letterIndex(r); ix >= 0 {
			pn.rack[ix]++
		}
	}
	pn.minLen = minLen
	pn.saved = make([]rackCounts, 0, RackSize)
	pn.results = make([]string, 0)
}

// canPlay returns true if the rack holds the letter or a blank
func (pn *PermutationNavigator) canPlay(letter rune) bool {
	return pn.rack[letterIndex(letter)] > 0 || pn.rack.hasBlank()
}

// PushEdge saves the rack before a playable letter is tried
func (pn *PermutationNavigator) PushEdge(letter rune) bool {
	if !pn.canPlay(letter) {
		return false
	}
	pn.saved = append(pn.saved, pn.rack)
	return true
}

// PopEdge restores the rack; every playable letter is tried
func (pn *PermutationNavigator) PopEdge() bool {
	last := len(pn.saved) - 1
	pn.rack = pn.saved[last]
	pn.saved = pn.saved[:last]
	return true
}

// Done does nothing: the trie is walked in letter order,
// so the results are already sorted
func (pn *PermutationNavigator) Done() {}

// IsAccepting returns true while tiles remain
func (pn *PermutationNavigator) IsAccepting() bool {
	return pn.rack.total() > 0
}

// Accepts uses a tile for the letter, preferring a regular
// tile over a blank
func (pn *PermutationNavigator) Accepts(letter rune) bool {
	switch ix := letterIndex(letter); {
	case pn.rack[ix] > 0:
		pn.rack[ix]--
	case pn.rack.hasBlank():
		pn.rack[blankIndex]--
	default:
		return false
	}
	return true
}

// Accept records the words that are long enough
func (pn *PermutationNavigator) Accept(matched []rune, final bool, node *trieNode) {
	if final && len(matched) >= pn.minLen {
		pn.results = append(pn.results, string(matched))
	}
}

// MatchNavigator collects the words of the same length as a
// pattern where '?' stands for any letter
type MatchNavigator struct {
	pattern []rune
	pos     int
	saved   []int
	results []string
}

// Init sets up the navigator for a pattern
func (mn *MatchNavigator) Init(pattern []rune) {
	mn.pattern = pattern
	mn.pos = 0
	mn.saved = make([]int, 0, BoardSize)
	mn.results = make([]string, 0, 16)
}

// wildcard returns true if the current pattern position is a '?'
func (mn *MatchNavigator) wildcard() bool {
	return mn.pattern[mn.pos] == BlankLetter
}

// fits returns true if the letter matches the current position
func (mn *MatchNavigator) fits(letter rune) bool {
	return mn.pos < len(mn.pattern) && (mn.wildcard() || mn.pattern[mn.pos] == letter)
}

// PushEdge saves the pattern position before a fitting letter is tried
func (mn *MatchNavigator) PushEdge(letter rune) bool {
	if !mn.fits(letter) {
		return false
	}
	mn.saved = append(mn.saved, mn.pos)
	return true
}

// PopEdge restores the pattern position. A fixed letter has only
// one edge, so siblings are only worth trying at a wildcard.
func (mn *MatchNavigator) PopEdge() bool {
	last := len(mn.saved) - 1
	mn.pos = mn.saved[last]
	mn.saved = mn.saved[:last]
	return mn.wildcard()
}

// Done is a no-op
func (mn *MatchNavigator) Done() {}

// IsAccepting returns true until the whole pattern is matched
func (mn *MatchNavigator) IsAccepting() bool {
	return mn.pos < len(mn.pattern)
}

// Accepts consumes a fitting letter
func (mn *MatchNavigator) Accepts(letter rune) bool {
	if !mn.fits(letter) {
		return false
	}
	mn.pos++
	return true
}

// Accept records words that span the entire pattern
func (mn *MatchNavigator) Accept(matched []rune, final bool, node *trieNode) {
	if final && mn.pos == len(mn.pattern) {
		mn.results = append(mn.results, string(matched))
	}
}
