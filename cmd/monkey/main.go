package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/labstack/gommon/color"
	"github.com/sirupsen/logrus"

	"monkey/internal"
)

// stdPrinter writes program output to stdout and colors what goes to
// other writers, which is only ever diagnostics and errors
type stdPrinter struct {
	color *color.Color
}

func (s stdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s stdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprint(w, s.color.Red(fmt.Sprintf(format, a...)))
}

func (s stdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, s.color.Red(fmt.Sprint(a...)))
}

func main() {
	configPath := flag.String("config", "", "path to the configuration file (default ~/"+defaultConfigFile+")")
	verbose := flag.Bool("v", false, "log parsing and evaluation")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "Usage: monkey [-config path] [-v] [/path/to/source.mk]")
		flag.PrintDefaults()
	}
	flag.Parse()

	os.Exit(run(*configPath, *verbose, flag.Args()))
}

func run(configPath string, verbose bool, args []string) int {
	logger := logrus.New()
	logger.Out = os.Stderr

	home, err := os.UserHomeDir()
	if err != nil {
		logger.WithError(err).Warn("could not find home directory")
	}

	cfg, err := loadConfig(configPath, home)
	if err != nil {
		logger.WithError(err).Error("could not load configuration")
		return 2
	}
	logger.SetLevel(cfg.level)
	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	c := color.New()
	if !cfg.Color {
		c.Disable()
	}
	printer := stdPrinter{color: c}
	interp := internal.NewInterpreter(printer, logger)

	switch len(args) {
	case 0:
		return repl(interp, cfg, printer, logger)
	case 1:
		return runFile(interp, args[0], printer, logger)
	default:
		flag.Usage()
		return 2
	}
}

func runFile(interp *internal.Interpreter, path string, p stdPrinter, logger logrus.FieldLogger) int {
	absPath, err := filepath.Abs(path)
	if err != nil {
		logger.WithError(err).Error("could not resolve path")
		return 1
	}

	b, err := os.ReadFile(absPath)
	if err != nil {
		logger.WithError(err).Error("could not read source")
		return 1
	}
	logger.WithField("path", absPath).Debug("running file")

	result, ok := interp.Run(string(b), internal.NewEnv())
	if result != nil && internal.IsError(result) {
		p.Fprintln(os.Stderr, result.Inspect())
	}
	if !ok {
		return 1
	}
	return 0
}
