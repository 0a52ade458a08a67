// play.go
// Copyright (C) 2026 The tileplay authors

// Interactive play between two players at the console

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	tileplay "github.com/vthorsteinsson/tileplay"
)

const playHelp = `Commands:
  <coord> <word>  play a word, e.g. 8H CAT (across) or H8 CAT (down);
                  include letters already on the board, lower case for a blank
  hint [n]        show the n best moves (default 5)
  shuffle         shuffle the rack
  pass            pass the turn
  quit            end the game`

// errQuit ends a play session
var errQuit = errors.New("quit")

// runPlay reads commands for the player to move from in,
// until the game is over, the input ends or a player quits
func runPlay(game *tileplay.Game, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	fmt.Fprintln(out, playHelp)
	for !game.IsOver() {
		player := game.PlayerToMove()
		fmt.Fprintf(out, "%v\n%v to move, rack %v\n> ",
			game, game.PlayerNames[player], game.Rack(player).AsString())
		if !scanner.Scan() {
			break
		}
		err := playCommand(game, strings.Fields(scanner.Text()), out)
		if errors.Is(err, errQuit) {
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
		}
	}
	fmt.Fprintf(out, "Final score: %v %v, %v %v\n",
		game.PlayerNames[0], game.Scores[0], game.PlayerNames[1], game.Scores[1])
	return scanner.Err()
}

// playCommand carries out a single command for the player to move
func playCommand(game *tileplay.Game, fields []string, out io.Writer) error {
	if len(fields) == 0 {
		return nil
	}
	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return errQuit
	case "pass":
		game.Pass()
		return nil
	case "shuffle":
		game.Rack(game.PlayerToMove()).Shuffle()
		return nil
	case "hint":
		n := 5
		if len(fields) > 1 {
			var err error
			if n, err = strconv.Atoi(fields[1]); err != nil || n < 1 {
				return fmt.Errorf("invalid hint count '%v'", fields[1])
			}
		}
		moves := game.Hint()
		slices.SortStableFunc(moves, func(a, b *tileplay.Move) int {
			return b.Score - a.Score
		})
		for _, m := range moves[:min(n, len(moves))] {
			fmt.Fprintf(out, "  %-4s %-15s %4d\n", m.Coord(), m.Word, m.Score)
		}
		if len(moves) == 0 {
			fmt.Fprintln(out, "  no moves found")
		}
		return nil
	}
	if len(fields) != 2 {
		return fmt.Errorf("unknown command '%v'\n%v", strings.Join(fields, " "), playHelp)
	}
	covers, err := tileplay.ParseCovers(game.Board, fields[0], fields[1])
	if err != nil {
		return err
	}
	move, err := game.Submit(covers)
	if err != nil {
		return fmt.Errorf("move rejected: %w", err)
	}
	log.Debug().Str("move", move.String()).Msg("played")
	fmt.Fprintf(out, "%v scores %v\n", move, move.Score)
	return nil
}
