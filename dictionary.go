// dictionary.go
// Copyright (C) 2026 The tileplay authors
// This file implements the Dictionary, a trie of the valid words,
// along with loading of word lists and cached cross-check sets

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
	"bufio"
	"fmt"
	"io"
	"math/bits"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/rs/zerolog/log"
	"golang.org/x/text/cases"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
)

// DefaultCrossCacheSize is the default number of entries
// in the cross-check set cache of a Dictionary
const DefaultCrossCacheSize = 2048

// LetterSet is a bit-mapped set of the letters A-Z
type LetterSet uint32

// AllLetters is the set of all letters A-Z
const AllLetters LetterSet = 1<<NumLetters - 1

// Add returns the set with the letter added
func (set LetterSet) Add(r rune) LetterSet {
	if ix := letterIndex(r); ix >= 0 {
		return set | 1<<uint(ix)
	}
	return set
}

// Contains returns true if the letter is in the set
func (set LetterSet) Contains(r rune) bool {
	ix := letterIndex(r)
	return ix >= 0 && set&(1<<uint(ix)) != 0
}

// Len returns the number of letters in the set
func (set LetterSet) Len() int {
	return bits.OnesCount32(uint32(set))
}

// String returns the letters in the set, in alphabetical order
func (set LetterSet) String() string {
	var sb strings.Builder
	for i := 0; i < NumLetters; i++ {
		if set&(1<<uint(i)) != 0 {
			sb.WriteRune(rune('A' + i))
		}
	}
	return sb.String()
}

// trieNode is a node in the Dictionary trie. Children are indexed
// by letter - 'A'.
type trieNode struct {
	children [NumLetters]*trieNode
	final    bool
}

// child returns the child node for the given letter, or nil
func (node *trieNode) child(r rune) *trieNode {
	if node == nil {
		return nil
	}
	ix := letterIndex(r)
	if ix < 0 {
		return nil
	}
	return node.children[ix]
}

// isFinal returns true if the path to the node spells a complete word
func (node *trieNode) isFinal() bool {
	return node != nil && node.final
}

// Dictionary is a trie containing the words of a word list.
// Once built, it is read-only and may be shared between
// goroutines; only the internal cross-check set cache changes.
type Dictionary struct {
	root       trieNode
	numWords   int
	crossCache crossCache
}

// upperCaser normalizes words to upper case. A Caser is stateful,
// so access is serialized.
var upperCaser = struct {
	sync.Mutex
	cases.Caser
}{Caser: cases.Upper(language.Und)}

// normalizeWord converts a word to upper case
func normalizeWord(word string) string {
	upperCaser.Lock()
	defer upperCaser.Unlock()
	return upperCaser.String(word)
}

// NewDictionary returns an empty Dictionary with a
// cross-check set cache of the default size
func NewDictionary() *Dictionary {
	return NewDictionaryWithCacheSize(DefaultCrossCacheSize)
}

// NewDictionaryWithCacheSize returns an empty Dictionary with
// a cross-check set cache of the given number of entries
func NewDictionaryWithCacheSize(cacheSize int) *Dictionary {
	dict := &Dictionary{}
	dict.crossCache.Init(cacheSize)
	return dict
}

// Insert adds a word to the Dictionary. It returns false if the
// word is empty or contains characters other than the letters A-Z
// (after upper case normalization).
func (dict *Dictionary) Insert(word string) bool {
	word = normalizeWord(word)
	if word == "" {
		return false
	}
	for _, r := range word {
		if !isLetter(r) {
			return false
		}
	}
	node := &dict.root
	for _, r := range word {
		ix := letterIndex(r)
		if node.children[ix] == nil {
			node.children[ix] = &trieNode{}
		}
		node = node.children[ix]
	}
	if !node.final {
		node.final = true
		dict.numWords++
	}
	return true
}

// NumWords returns the number of distinct words in the Dictionary
func (dict *Dictionary) NumWords() int {
	return dict.numWords
}

// lookup walks the trie along the given (normalized) letters,
// returning the node reached or nil if there is no such path
func (dict *Dictionary) lookup(letters string) *trieNode {
	node := &dict.root
	for _, r := range letters {
		if node = node.child(r); node == nil {
			return nil
		}
	}
	return node
}

// IsValid returns true if the word is in the Dictionary
func (dict *Dictionary) IsValid(word string) bool {
	if word == "" {
		return false
	}
	return dict.lookup(normalizeWord(word)).isFinal()
}

// IsPrefix returns true if at least one word in the Dictionary
// starts with the given prefix. The empty prefix is always valid.
func (dict *Dictionary) IsPrefix(prefix string) bool {
	return dict.lookup(normalizeWord(prefix)) != nil
}

// Navigate performs a navigation through the Dictionary under the
// control of a Navigator
func (dict *Dictionary) Navigate(navigator Navigator) {
	var nav Navigation
	nav.Go(dict, navigator)
}

// Permute finds all words that can be formed from the letters
// of the given rack and have at least minLen letters,
// returning them in alphabetical order.
// The rack may contain '?' wildcards/blanks.
func (dict *Dictionary) Permute(rack string, minLen int) []string {
	var pn PermutationNavigator
	pn.Init([]rune(normalizeWord(rack)), minLen)
	dict.Navigate(&pn)
	return pn.results
}

// Match returns all words in the Dictionary that match a
// given pattern string, which can include '?' wildcards/blanks,
// in alphabetical order
func (dict *Dictionary) Match(pattern string) []string {
	runes := []rune(normalizeWord(pattern))
	// Walk directly down the fixed letters before the first wildcard,
	// then resume a pattern navigation from there
	fixed := 0
	for fixed < len(runes) && runes[fixed] != BlankLetter {
		fixed++
	}
	if fixed == len(runes) {
		if dict.IsValid(string(runes)) {
			return []string{string(runes)}
		}
		return []string{}
	}
	node := dict.lookup(string(runes[:fixed]))
	if node == nil {
		return []string{}
	}
	var mn MatchNavigator
	mn.Init(runes[fixed:])
	var nav Navigation
	nav.Resume(dict, &mn, node, runes[:fixed])
	return mn.results
}

// CrossSet calculates a bit-mapped set of allowed letters
// in a cross-check set, given a left/top and right/bottom
// string that intersects the square being checked.
func (dict *Dictionary) CrossSet(left, right string) LetterSet {
	key := left + "?" + right
	return dict.crossCache.Lookup(key, func(string) LetterSet {
		// Walk down the left part once, then try each
		// letter for the square and the right part below it
		node := dict.lookup(left)
		var set LetterSet
		if node == nil {
			return set
		}
		for i, child := range node.children {
			if child == nil {
				continue
			}
			n := child
			for _, r := range right {
				if n = n.child(r); n == nil {
					break
				}
			}
			if n.isFinal() {
				set |= 1 << uint(i)
			}
		}
		return set
	})
}

// crossCache encapsulates a simple LRU cached map of
// cross-set matching patterns ("CA?S") to bitmapped sets
type crossCache struct {
	mux sync.Mutex
	lru *simplelru.LRU
}

// Init initializes an empty crossCache
func (cc *crossCache) Init(size int) {
	if size <= 0 {
		size = DefaultCrossCacheSize
	}
	cc.lru, _ = simplelru.NewLRU(size, nil)
}

// Lookup returns a bitmap set corresponding to a matching
// pattern key. If the key is found in the cache, it is
// returned immediately. Otherwise, the given fetchFunc() is
// called to calculate the associated bitmap set before storing
// it in the cache.
func (cc *crossCache) Lookup(key string, fetchFunc func(string) LetterSet) LetterSet {
	cc.mux.Lock()
	defer cc.mux.Unlock()
	if cc.lru == nil {
		// Zero value Dictionary: initialize lazily
		cc.lru, _ = simplelru.NewLRU(DefaultCrossCacheSize, nil)
	}
	if set, ok := cc.lru.Get(key); ok {
		return set.(LetterSet)
	}
	set := fetchFunc(key)
	cc.lru.Add(key, set)
	return set
}

// LoadStats summarizes the loading of a word list
type LoadStats struct {
	Words   int
	Skipped int
}

// LoadDictionary reads a newline-delimited word list into a fresh
// Dictionary. Blank lines, comment lines starting with '#' and
// words containing characters other than letters are skipped.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	return LoadDictionaryWithCacheSize(r, DefaultCrossCacheSize)
}

// LoadDictionaryWithCacheSize is LoadDictionary with a given
// cross-check set cache size
func LoadDictionaryWithCacheSize(r io.Reader, cacheSize int) (*Dictionary, error) {
	dict := NewDictionaryWithCacheSize(cacheSize)
	stats, err := dict.load(r)
	if err != nil {
		return nil, err
	}
	log.Info().
		Int("words", stats.Words).
		Int("skipped", stats.Skipped).
		Msg("dictionary-loaded")
	return dict, nil
}

func (dict *Dictionary) load(r io.Reader) (LoadStats, error) {
	var stats LoadStats
	// Strip an eventual UTF-8 byte order mark
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	// A bufio.Reader has no line length limit, so a stray
	// long line is skipped rather than failing the load
	reader := bufio.NewReader(transform.NewReader(r, decoder))
	for {
		raw, err := reader.ReadString('\n')
		if raw != "" {
			dict.loadLine(strings.TrimSpace(raw), &stats)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("reading word list: %w", err)
		}
	}
	return stats, nil
}

// loadLine adds a single word list line to the Dictionary. Words
// that are longer than the board can never be played.
func (dict *Dictionary) loadLine(line string, stats *LoadStats) {
	if line == "" || strings.HasPrefix(line, "#") {
		stats.Skipped++
		return
	}
	if utf8.RuneCountInString(line) > BoardSize || !dict.Insert(line) {
		log.Debug().
			Str("line", line[:min(len(line), 2*BoardSize)]).
			Msg("skipping-malformed-word")
		stats.Skipped++
		return
	}
	stats.Words++
}

// LoadDictionaryFile reads a word list file into a fresh Dictionary
func LoadDictionaryFile(path string, cacheSize int) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary: %w", err)
	}
	defer f.Close()
	dict, err := LoadDictionaryWithCacheSize(f, cacheSize)
	if err != nil {
		return nil, fmt.Errorf("loading dictionary %s: %w", path, err)
	}
	return dict, nil
}

// NewDictionaryFromWords builds a Dictionary from a list of words,
// skipping malformed ones
func NewDictionaryFromWords(words ...string) *Dictionary {
	dict := NewDictionary()
	for _, word := range words {
		dict.Insert(word)
	}
	return dict
}
