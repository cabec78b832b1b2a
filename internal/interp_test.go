package internal

import (
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

func TestRunPrintsDiagnostics(t *testing.T) {
	tp := &testPrinter{}
	result, ok := NewInterpreter(tp, nil).Run("let = 5;\nlet x 1;", NewEnv())
	if ok || result != nil {
		t.Errorf("source with diagnostics should not be evaluated")
	}
	expected := "Error on line 1\n\texpected next token to be IDENT, got = instead\n" +
		"Error on line 2\n\texpected next token to be =, got INT instead\n"
	if tp.printed != expected {
		t.Errorf("Expected:\n----\n%s----\nFound:\n----\n%s----", expected, tp.printed)
	}
}

func TestRunSourceWithPrinter(t *testing.T) {
	tp := &testPrinter{}
	if !RunSourceWithPrinter(`let a = 1; puts(a + 1)`, tp) {
		t.Errorf("program should succeed")
	}
	if !tp.Equals("2") {
		t.Errorf("unexpected output %q", tp.printed)
	}

	if RunSourceWithPrinter(`puts(1); 1 / 0; puts(2)`, tp) {
		t.Errorf("program should fail")
	}
	if !tp.Equals("1\nERROR: division by zero") {
		t.Errorf("unexpected output %q", tp.printed)
	}

	if RunSourceWithPrinter(`puts(1`, tp) {
		t.Errorf("program should not parse")
	}
	if tp.printed != "Error on line 1\n\texpected next token to be ), got EOF instead\n" {
		t.Errorf("only diagnostics should be printed, got %q", tp.printed)
	}
}

func TestRunSkipsIncompletePrograms(t *testing.T) {
	sources := []string{"puts(", "[1,", "if () { 1 }", "while () { 1 }"}
	for _, source := range sources {
		tp := &testPrinter{}
		result, ok := NewInterpreter(tp, nil).Run(source, NewEnv())
		if ok || result != nil {
			t.Errorf("%s should not be evaluated", source)
		}
		if !strings.HasPrefix(tp.printed, "Error on line 1") {
			t.Errorf("%s should print a diagnostic, got %q", source, tp.printed)
		}
	}
}

func TestParseReturnsDiagnostics(t *testing.T) {
	program, diagnostics := Parse("let a = 1;")
	if len(diagnostics) != 0 {
		t.Errorf("unexpected diagnostics %v", diagnostics)
	}
	if program.String() != "let a = 1;" {
		t.Errorf("unexpected program %s", program)
	}

	_, diagnostics = Parse("let 1")
	if len(diagnostics) != 1 {
		t.Errorf("expected one diagnostic, got %v", diagnostics)
	}
}

func TestEvalLogging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	interp := NewInterpreter(&testPrinter{}, logger)

	interp.Run("1 + 1", NewEnv())
	entry := hook.LastEntry()
	if entry == nil || entry.Level != logrus.DebugLevel {
		t.Fatalf("successful evaluation should log at debug level")
	}
	if entry.Data["result"] != INTEGER_OBJ {
		t.Errorf("result type should be logged, got %v", entry.Data["result"])
	}

	hook.Reset()
	interp.Run("1 + true", NewEnv())
	entry = hook.LastEntry()
	if entry == nil || entry.Level != logrus.WarnLevel {
		t.Fatalf("failed evaluation should log at warn level")
	}
	if entry.Data["error"] != "type mismatch: INTEGER + BOOLEAN" {
		t.Errorf("error message should be logged, got %v", entry.Data["error"])
	}
}
