package internal

import (
	"testing"
	"time"
)

func TestLen(t *testing.T) {
	checkEval(t, `len("")`, "0")
	checkEval(t, `len("four")`, "4")
	checkEval(t, `len("hello world")`, "11")
	checkEval(t, `len([1, 2, 3])`, "3")
	checkEval(t, `len([])`, "0")
	checkErrorMsg(t, `len(1)`, "argument to `len` not supported, got INTEGER")
	checkErrorMsg(t, `len("one", "two")`, "wrong number of arguments: want=1, got=2")
	checkErrorMsg(t, `len()`, "wrong number of arguments: want=1, got=0")
}

func TestBuiltinLookup(t *testing.T) {
	checkEval(t, "len", "builtin function")
	checkType(t, "len", BUILTIN_OBJ)

	// Bindings shadow builtins
	checkEval(t, `let len = fn(x) { 42 }; len("a")`, "42")
}

func TestTypeBuiltin(t *testing.T) {
	checkEval(t, "type(1)", "INTEGER")
	checkEval(t, "type(true)", "BOOLEAN")
	checkEval(t, `type("a")`, "STRING")
	checkEval(t, "type([])", "ARRAY")
	checkEval(t, "type(fn() {})", "FUNCTION")
	checkEval(t, "type(len)", "BUILTIN")
	checkEval(t, "type([][0])", "NULL")
	checkEval(t, "type(if (false) { 1 })", "VOID")
}

func TestPush(t *testing.T) {
	checkEval(t, "push([1], 2)", "[1, 2]")
	checkEval(t, "let a = [1]; push(a, 2); a", "[1, 2]")
	checkEval(t, "let a = []; push(push(a, 1), 2) == a", "true")
	checkErrorMsg(t, "push(1, 2)", "first argument to `push` must be ARRAY")
	checkErrorMsg(t, "push([])", "wrong number of arguments: want=2, got=1")
}

func TestPuts(t *testing.T) {
	tp := &testPrinter{}
	program, _ := Parse(`puts("hello", 1 + 2, [1]); puts()`)
	result := NewInterpreter(tp, nil).Eval(program, NewEnv())
	if result != VOID {
		t.Errorf("puts should return VOID instead of %s", result.Type())
	}
	if !tp.Equals("hello\n3\n[1]") {
		t.Errorf("unexpected output %q", tp.printed)
	}
}

func checkTime(t *testing.T, source string, expected string) {
	clock := func() time.Time {
		return time.Date(2021, time.March, 7, 14, 30, 15, 0, time.UTC)
	}
	program, _ := Parse(source)
	interp := NewInterpreter(&testPrinter{}, nil)
	interp.clock = clock
	if result := interp.Eval(program, NewEnv()); result.Inspect() != expected {
		t.Errorf("Error on: \n%s\n\tResult should be equal to %s instead of %s", source, expected, result.Inspect())
	}
}

func TestTime(t *testing.T) {
	checkTime(t, "time()", "1615127415")
	checkTime(t, `time("year")`, "2021")
	checkTime(t, `time("month")`, "3")
	checkTime(t, `time("day")`, "7")
	checkTime(t, `time("hour")`, "14")
	checkTime(t, `time("minute")`, "30")
	checkTime(t, `time("second")`, "15")
	checkTime(t, `let cur_time = time("hour");`, "14")
	checkTime(t, `let cur_time = time("hour"); cur_time`, "14")
	checkTime(t, `time("week")`, "ERROR: unknown time unit: week")
	checkTime(t, `time(1)`, "ERROR: argument to `time` must be STRING")
	checkTime(t, `time("a", "b")`, "ERROR: wrong number of arguments: want=0 or 1, got=2")
}
