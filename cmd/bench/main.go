package main

import (
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"monkey/internal"
)

// The program avoids puts so only the interpreter is measured
var source string = `
let fib = fn(n) {
	if (n < 2) { return n; }
	fib(n - 1) + fib(n - 2)
};
let counter = 0;
while (counter < 100000) {
	counter = counter + 1;
}
let squares = [];
let i = 0;
while (i < 1000) {
	push(squares, i * i);
	i = i + 1;
}
fib(20) + len(squares) + counter
`

func main() {
	runs := flag.Int("n", 10, "number of runs")
	path := flag.String("file", "", "benchmark this file instead of the built-in program")
	flag.Parse()

	logger := logrus.New()
	logger.Out = os.Stderr

	if *path != "" {
		b, err := os.ReadFile(*path)
		if err != nil {
			logger.WithError(err).Fatal("could not read source")
		}
		source = string(b)
	}

	var parseTime, evalTime time.Duration
	var result internal.Object
	interp := internal.NewInterpreter(internal.StdPrinter{}, nil)

	for run := 0; run < *runs; run++ {
		start := time.Now()
		program, diagnostics := internal.Parse(source)
		parseTime += time.Since(start)
		if len(diagnostics) != 0 {
			logger.WithField("diagnostics", diagnostics).Fatal("program does not parse")
		}

		start = time.Now()
		result = interp.Eval(program, internal.NewEnv())
		evalTime += time.Since(start)
	}

	if *runs == 0 {
		return
	}
	logger.WithFields(logrus.Fields{
		"runs":   *runs,
		"parse":  parseTime / time.Duration(*runs),
		"eval":   evalTime / time.Duration(*runs),
		"result": result.Inspect(),
	}).Info("average per run")
}
