package internal

import (
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// Interpreter evaluates programs against environments owned by the caller
type Interpreter struct {
	printer IPrinter
	logger  logrus.FieldLogger
	clock   func() time.Time
}

// NewInterpreter creates an interpreter that writes program output to p.
// A nil logger discards everything.
func NewInterpreter(p IPrinter, logger logrus.FieldLogger) *Interpreter {
	if logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		logger = discard
	}
	return &Interpreter{
		printer: p,
		logger:  logger,
		clock:   time.Now,
	}
}

// Parse parses one unit of source text. The program should not be
// evaluated when diagnostics are returned.
func Parse(source string) (*Program, []string) {
	program, state := parse(source)
	return program, state.Messages()
}

func parse(source string) (*Program, *interpreterState) {
	state := newInterpreterState(source)
	program := newParser(state).parse()
	return program, state
}

// Eval evaluates program in env. Bindings made by the program stay in env.
func (i *Interpreter) Eval(program *Program, env *Env) Object {
	e := &exec{
		builtins: defineGlobals(i.printer, i.clock),
		env:      env,
	}
	result := e.interpret(program)

	log := i.logger.WithField("result", result.Type())
	if err, ok := result.(*monkeyError); ok {
		log.WithField("error", err.Message()).Warn("evaluation failed")
	} else {
		log.Debug("evaluated program")
	}
	return result
}

// Run parses and evaluates source in env. Diagnostics are printed and
// nothing is evaluated when the source does not parse. The second result
// is false if there were diagnostics or the result is an error.
func (i *Interpreter) Run(source string, env *Env) (Object, bool) {
	program, state := parse(source)
	i.logger.WithFields(logrus.Fields{
		"statements":  len(program.stmts),
		"diagnostics": len(state.errors),
	}).Debug("parsed source")

	if !state.Valid() {
		state.PrintErrors(i.printer)
		return nil, false
	}

	result := i.Eval(program, env)
	return result, !isError(result)
}

// RunSourceWithPrinter runs source code on a fresh interpreter instance
func RunSourceWithPrinter(source string, p IPrinter) bool {
	result, ok := NewInterpreter(p, nil).Run(source, NewEnv())
	if result != nil && isError(result) {
		p.Fprintln(os.Stderr, result.Inspect())
	}
	return ok
}
