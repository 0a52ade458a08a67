// server.go
//
// Copyright (C) 2026 The tileplay authors
//
// This file implements the handlers of a compact HTTP server that
// receives JSON encoded requests and returns JSON encoded responses.

package tileplay

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"slices"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// ServiceVersion is reported in move list responses
const ServiceVersion = "1.0"

// Server holds what the request handlers need to find and check moves
type Server struct {
	Generator *Generator
	TileSet   *TileSet
}

// NewServer creates a Server using the given generator and tile set
func NewServer(gen *Generator, tileSet *TileSet) *Server {
	return &Server{Generator: gen, TileSet: tileSet}
}

// MovesRequest asks for the legal moves of a rack on a board
type MovesRequest struct {
	Board []string `json:"board"`
	Rack  string   `json:"rack"`
	Limit int      `json:"limit"`
}

// PlacementRequest is a tile placed on the board in a submitted move
type PlacementRequest struct {
	Row     int    `json:"row"`
	Col     int    `json:"col"`
	Letter  string `json:"letter"`
	Meaning string `json:"meaning,omitempty"`
}

// ValidateRequest asks whether a submitted move is legal
type ValidateRequest struct {
	Board      []string           `json:"board"`
	Rack       string             `json:"rack"`
	Placements []PlacementRequest `json:"placements"`
}

// WordCheckRequest asks whether words are in the dictionary
type WordCheckRequest struct {
	Words []string `json:"words"`
}

// MatchRequest asks for the dictionary words that either match a
// pattern, with '?' wildcards, or can be formed from a rack
type MatchRequest struct {
	Pattern string `json:"pattern,omitempty"`
	Rack    string `json:"rack,omitempty"`
	MinLen  int    `json:"min_len,omitempty"`
}

// MoveJson is the JSON representation of a move
type MoveJson struct {
	Coord string   `json:"coord"`
	Word  string   `json:"word"`
	Score int      `json:"score"`
	Tiles string   `json:"tiles"`
	Words []string `json:"words"`
}

// NewMoveJson creates the JSON representation of a move
func NewMoveJson(move *Move) MoveJson {
	return MoveJson{
		Coord: move.Coord(),
		Word:  move.Word,
		Score: move.Score,
		Tiles: move.TilesString(),
		Words: move.WordStrings(),
	}
}

// The JSON response header of a move list
type HeaderJson struct {
	Version string     `json:"version"`
	Count   int        `json:"count"`
	Moves   []MoveJson `json:"moves"`
}

// ValidateJson is the response to a ValidateRequest
type ValidateJson struct {
	Valid     bool      `json:"valid"`
	ErrorKind string    `json:"error_kind,omitempty"`
	Error     string    `json:"error,omitempty"`
	Move      *MoveJson `json:"move,omitempty"`
}

// WordCheckJson is the response to a WordCheckRequest. Words is
// a list of [word, valid] pairs.
type WordCheckJson struct {
	Valid bool    `json:"valid"`
	Words [][]any `json:"words"`
}

// MatchJson is the response to a MatchRequest
type MatchJson struct {
	Count int      `json:"count"`
	Words []string `json:"words"`
}

func writeJson(w http.ResponseWriter, result any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		// Unable to generate valid JSON
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// parseBoardAndRack validates and converts the board and rack of a
// request, writing an error response and returning false on failure
func (s *Server) parseBoardAndRack(w http.ResponseWriter, rows []string, rackString string) (*Board, *Rack, bool) {
	rackRunes := []rune(rackString)
	if len(rackRunes) == 0 || len(rackRunes) > RackSize {
		http.Error(w, "Invalid rack.\n", http.StatusBadRequest)
		return nil, nil, false
	}
	board, err := ParseBoard(rows, s.TileSet)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid board: %v.\n", err), http.StatusBadRequest)
		return nil, nil, false
	}
	// The board must either be empty or have a tile in the start square
	if board.NumTiles > 0 && !board.IsCenterOccupied() {
		http.Error(w, "The start square must be occupied.\n", http.StatusBadRequest)
		return nil, nil, false
	}
	rack, err := NewRack(rackRunes, s.TileSet)
	if err != nil {
		http.Error(w, "Rack contains invalid letter.\n", http.StatusBadRequest)
		return nil, nil, false
	}
	return board, rack, true
}

// HandleMovesRequest returns the legal moves for a rack on a board,
// highest scoring first
func (s *Server) HandleMovesRequest(w http.ResponseWriter, r *http.Request, req MovesRequest) {
	board, rack, ok := s.parseBoardAndRack(w, req.Board, req.Rack)
	if !ok {
		return
	}
	moves, err := s.Generator.GenerateMovesContext(r.Context(), board, rack.Tiles())
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	// Sort the moves in descending order by score, keeping the
	// generation order among moves of equal score
	slices.SortStableFunc(moves, func(a, b *Move) int {
		return b.Score - a.Score
	})
	// If a limit is specified, use that as a cap on the number of moves returned
	if req.Limit > 0 {
		moves = moves[0:min(req.Limit, len(moves))]
	}
	log.Debug().Str("rack", req.Rack).Int("count", len(moves)).Msg("moves-request")
	writeJson(w, HeaderJson{
		Version: ServiceVersion,
		Count:   len(moves),
		Moves:   lo.Map(moves, func(m *Move, _ int) MoveJson { return NewMoveJson(m) }),
	})
}

// HandleValidateRequest checks a submitted move
func (s *Server) HandleValidateRequest(w http.ResponseWriter, req ValidateRequest) {
	board, rack, ok := s.parseBoardAndRack(w, req.Board, req.Rack)
	if !ok {
		return
	}
	covers := make(Covers, len(req.Placements))
	for _, p := range req.Placements {
		letter := []rune(p.Letter)
		if len(letter) != 1 {
			http.Error(w, fmt.Sprintf("Invalid letter '%s'.\n", p.Letter), http.StatusBadRequest)
			return
		}
		cover := Cover{Letter: normalizeTileLetter(letter[0]), Meaning: normalizeTileLetter(letter[0])}
		if meaning := []rune(p.Meaning); len(meaning) == 1 {
			cover.Meaning = normalizeTileLetter(meaning[0])
		}
		covers[Coordinate{p.Row, p.Col}] = cover
	}
	if len(covers) != len(req.Placements) {
		http.Error(w, "Duplicate placement.\n", http.StatusBadRequest)
		return
	}
	move, err := s.Generator.ValidateSubmission(board, rack.Tiles(), covers)
	var result ValidateJson
	var serr *SubmissionError
	switch {
	case err == nil:
		mj := NewMoveJson(move)
		result = ValidateJson{Valid: true, Move: &mj}
	case errors.As(err, &serr):
		result = ValidateJson{ErrorKind: serr.Kind.String(), Error: serr.Error()}
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJson(w, result)
}

// HandleWordCheckRequest checks whether all the given words are
// in the dictionary
func (s *Server) HandleWordCheckRequest(w http.ResponseWriter, req WordCheckRequest) {
	if len(req.Words) == 0 || len(req.Words) > 2*BoardSize {
		http.Error(w, "Invalid word list.\n", http.StatusBadRequest)
		return
	}
	dict := s.Generator.Dictionary()
	result := WordCheckJson{Valid: true, Words: make([][]any, len(req.Words))}
	for i, word := range req.Words {
		valid := dict.IsValid(word)
		result.Words[i] = []any{word, valid}
		result.Valid = result.Valid && valid
	}
	writeJson(w, result)
}

// HandleMatchRequest lists the words matching a pattern or, if a rack
// is given instead, the words that can be formed from its tiles
func (s *Server) HandleMatchRequest(w http.ResponseWriter, req MatchRequest) {
	pattern, rack := []rune(req.Pattern), []rune(req.Rack)
	if (len(pattern) == 0) == (len(rack) == 0) {
		http.Error(w, "Either a pattern or a rack is required.\n", http.StatusBadRequest)
		return
	}
	if len(pattern) > BoardSize || len(rack) > RackSize {
		http.Error(w, "Pattern or rack too long.\n", http.StatusBadRequest)
		return
	}
	dict := s.Generator.Dictionary()
	var words []string
	if len(pattern) > 0 {
		words = dict.Match(req.Pattern)
	} else {
		// Words of a single letter are never played
		words = dict.Permute(req.Rack, max(req.MinLen, 2))
	}
	log.Debug().
		Str("pattern", req.Pattern).
		Str("rack", req.Rack).
		Int("count", len(words)).
		Msg("match-request")
	writeJson(w, MatchJson{Count: len(words), Words: words})
}
