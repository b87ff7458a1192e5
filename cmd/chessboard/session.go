package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessboard-go/internal/chess"
	"github.com/lgbarn/chessboard-go/internal/config"
	"github.com/lgbarn/chessboard-go/internal/errors"
	"github.com/lgbarn/chessboard-go/internal/output"
)

// runSession writes the board, then answers one square lookup per input
// line until EOF or a quit command. Malformed squares are reported to the
// log and do not end the session.
func runSession(cfg *config.Config, board *chess.Board, in io.Reader) error {
	writer := output.NewBoardWriter(cfg.OutputFile, cfg)
	if err := writer.WriteBoard(board); err != nil {
		return errors.Wrap(err, "writing board")
	}

	scanner := bufio.NewScanner(in)
	lineNum := 0
	for {
		if !cfg.Quiet {
			fmt.Fprint(cfg.OutputFile, cfg.Prompt)
		}
		if !scanner.Scan() {
			break
		}
		lineNum++

		line := strings.TrimSpace(scanner.Text())
		cfg.Logf(2, "line %d: %q\n", lineNum, line)

		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "board":
			if err := writer.WriteBoard(board); err != nil {
				return errors.Wrap(err, "writing board")
			}
			continue
		}

		pos, err := chess.ParsePosition(line)
		if err != nil {
			cfg.Logf(1, "%v\n", errors.Wrapf(err, "line %d", lineNum))
			continue
		}

		piece, ok := board.PieceAt(pos)
		if err := output.WriteLookup(cfg.OutputFile, pos, piece, ok); err != nil {
			return errors.Wrap(err, "writing lookup")
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "reading input")
	}
	return nil
}
