// main.go
// Copyright (C) 2026 The tileplay authors

// Command line program for finding the legal moves of a rack
// on a board, for looking up words in the dictionary, and for
// playing a game between two players at the console

package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"

	tileplay "github.com/vthorsteinsson/tileplay"
)

// readBoard reads a board of BoardSize rows from a file.
// Lines that are empty after trimming trailing space are ignored.
func readBoard(path string) ([]string, error) {
	if path == "" {
		rows := make([]string, tileplay.BoardSize)
		for i := range rows {
			rows[i] = strings.Repeat(".", tileplay.BoardSize)
		}
		return rows, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening board file: %w", err)
	}
	defer f.Close()
	rows := make([]string, 0, tileplay.BoardSize)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line != "" {
			rows = append(rows, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading board file: %w", err)
	}
	return rows, nil
}

// writeMoves outputs a move list in the requested format
func writeMoves(w io.Writer, board *tileplay.Board, moves []*tileplay.Move, format string) error {
	result := lo.Map(moves, func(m *tileplay.Move, _ int) tileplay.MoveJson {
		return tileplay.NewMoveJson(m)
	})
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	case "yaml":
		out, err := yaml.Marshal(result)
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	case "text":
		fmt.Fprintf(w, "%v\n", board)
		for i, m := range result {
			fmt.Fprintf(w, "%4d. %-4s %-15s %4d  %s\n",
				i+1, m.Coord, m.Word, m.Score, strings.Join(m.Words, " "))
		}
		fmt.Fprintf(w, "%v moves\n", len(result))
		return nil
	}
	return fmt.Errorf("unknown output format '%v'", format)
}

func run() error {
	cfg, err := tileplay.LoadConfig(".env")
	if err != nil {
		return err
	}
	dictPath := flag.String("dict", cfg.DictionaryPath, "Word list file, one word per line")
	boardPath := flag.String("board", "", "File containing the board as 15 rows of 15 characters")
	rackString := flag.String("rack", "", "Rack letters, with '?' for a blank tile")
	limit := flag.Int("limit", 20, "Maximum number of moves to show (0 for all)")
	format := flag.String("format", "text", "Output format (text, json, yaml)")
	check := flag.String("check", "", "Comma-separated words to check against the dictionary")
	match := flag.String("match", "", "List the words matching a pattern, with '?' for any letter")
	permute := flag.String("permute", "", "List the words that can be formed from the given letters")
	play := flag.Bool("play", false, "Play a game between two players at the console")
	verbose := flag.Bool("v", false, "Log debug information")
	flag.Parse()

	level := cfg.LogLevel
	if *verbose {
		level = "debug"
	}
	if err := tileplay.SetupLogging(level, os.Stderr, true); err != nil {
		return err
	}

	dict, err := tileplay.LoadDictionaryFile(*dictPath, cfg.CrossCacheSize)
	if err != nil {
		return err
	}

	if *check != "" {
		words := strings.Split(*check, ",")
		allValid := true
		for _, word := range words {
			valid := dict.IsValid(strings.TrimSpace(word))
			allValid = allValid && valid
			fmt.Printf("%-15s %v\n", strings.TrimSpace(word), valid)
		}
		if !allValid {
			os.Exit(2)
		}
		return nil
	}

	if *match != "" || *permute != "" {
		var words []string
		if *match != "" {
			words = dict.Match(*match)
		} else {
			words = dict.Permute(*permute, 2)
		}
		for _, word := range words {
			fmt.Println(word)
		}
		fmt.Printf("%v words\n", len(words))
		return nil
	}

	gen := tileplay.NewGenerator(dict, cfg.GeneratorOptions()...)
	if *play {
		game := tileplay.NewGame(tileplay.EnglishTileSet, gen)
		return runPlay(game, os.Stdin, os.Stdout)
	}

	rows, err := readBoard(*boardPath)
	if err != nil {
		return err
	}
	board, err := tileplay.ParseBoard(rows, tileplay.EnglishTileSet)
	if err != nil {
		return err
	}
	rack, err := tileplay.NewRack([]rune(*rackString), tileplay.EnglishTileSet)
	if err != nil {
		return err
	}
	if rack.IsEmpty() {
		return fmt.Errorf("no rack given")
	}

	moves := gen.GenerateMoves(board, rack.Tiles())
	// Show the highest scoring moves first
	slices.SortStableFunc(moves, func(a, b *tileplay.Move) int {
		return b.Score - a.Score
	})
	if *limit > 0 && len(moves) > *limit {
		moves = moves[:*limit]
	}
	log.Debug().Str("rack", rack.AsString()).Int("shown", len(moves)).Msg("moves")
	return writeMoves(os.Stdout, board, moves, *format)
}

func main() {
	if err := run(); err != nil {
		log.Error().Err(err).Msg("tileplay")
		os.Exit(1)
	}
}
