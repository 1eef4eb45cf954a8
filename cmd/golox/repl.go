package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/labstack/gommon/color"
	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"golox/internal"
	"golox/internal/config"
)

var completionWords = []string{
	"and", "else", "false", "for", "if", "nil", "or", "print", "true", "var", "while",
}

func completeKeywords(line string) []string {
	start := strings.LastIndexAny(line, " \t(){};,=!<>+-*/") + 1
	prefix := line[start:]
	if prefix == "" {
		return nil
	}
	var out []string
	for _, word := range completionWords {
		if strings.HasPrefix(word, prefix) {
			out = append(out, line[:start]+word)
		}
	}
	sort.Strings(out)
	return out
}

// runPrompt runs every input line as an independent program sharing the
// interpreter's root environment. Errors never stop the loop.
func runPrompt(cfg *config.Config, in *internal.Interpreter) int {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return runLines(os.Stdin, in, os.Stderr)
	}

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(completeKeywords)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		if _, err := line.ReadHistory(f); err != nil {
			logrus.WithError(err).Debug("cannot read history")
		}
		f.Close()
	}
	defer func() {
		f, err := os.Create(cfg.HistoryFile)
		if err != nil {
			logrus.WithError(err).Debug("cannot save history")
			return
		}
		defer f.Close()
		if _, err := line.WriteHistory(f); err != nil {
			logrus.WithError(err).Debug("cannot save history")
		}
	}()

	for {
		input, err := line.Prompt(cfg.Prompt)
		switch {
		case err == liner.ErrPromptAborted:
			fmt.Fprintln(os.Stderr, color.Yellow("^C"))
			continue
		case err == io.EOF:
			fmt.Fprintln(os.Stdout)
			return exitOK
		case err != nil:
			logrus.WithError(err).Error("reading input")
			return exitIOErr
		}

		if strings.TrimSpace(input) == "" {
			continue
		}
		line.AppendHistory(input)
		report(os.Stderr, in.Run(input))
	}
}

// runLines is the non-interactive prompt used when stdin is not a terminal
func runLines(r io.Reader, in *internal.Interpreter, errOut io.Writer) int {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		input := scanner.Text()
		if strings.TrimSpace(input) == "" {
			continue
		}
		report(errOut, in.Run(input))
	}
	if err := scanner.Err(); err != nil {
		logrus.WithError(err).Error("reading input")
		return exitIOErr
	}
	return exitOK
}
