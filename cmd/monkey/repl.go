package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/sirupsen/logrus"

	"monkey/internal"
)

const banner = `Hello! This is the Monkey programming language!
Feel free to type in commands, :quit to exit`

func repl(interp *internal.Interpreter, cfg *config, p stdPrinter, logger logrus.FieldLogger) int {
	if cfg.Banner {
		fmt.Println(banner)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(cfg.HistoryFile); err == nil {
		if _, err := ln.ReadHistory(f); err != nil {
			logger.WithError(err).Warn("could not read history")
		}
		f.Close()
	}
	defer func() {
		f, err := os.Create(cfg.HistoryFile)
		if err != nil {
			logger.WithError(err).Warn("could not save history")
			return
		}
		defer f.Close()
		if _, err := ln.WriteHistory(f); err != nil {
			logger.WithError(err).Warn("could not save history")
		}
	}()

	env := internal.NewEnv()
	for {
		line, err := ln.Prompt(cfg.Prompt)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			logger.WithError(err).Error("could not read input")
			return 1
		}

		source := strings.TrimSpace(line)
		if source == "" {
			continue
		}
		ln.AppendHistory(line)
		if source == ":quit" {
			return 0
		}

		result, ok := interp.Run(source, env)
		switch {
		case result == nil:
			// Diagnostics were already printed
		case !ok:
			p.Fprintln(os.Stdout, result.Inspect())
		case result.Type() != internal.VOID_OBJ:
			fmt.Println(p.color.Blue(result.Inspect()))
		}
	}
}
