package internal

import "testing"

func TestEnvLookup(t *testing.T) {
	outer := NewEnv()
	outer.define("a", &monkeyInteger{value: 1})
	inner := newEnv(outer)
	inner.define("b", &monkeyInteger{value: 2})

	if v, ok := inner.get("a"); !ok || v.Inspect() != "1" {
		t.Errorf("inner scope should see a = 1")
	}
	if _, ok := outer.get("b"); ok {
		t.Errorf("outer scope should not see b")
	}
	if inner.declared("a") {
		t.Errorf("a is not declared in the inner scope")
	}
	if !inner.declared("b") {
		t.Errorf("b is declared in the inner scope")
	}
}

func TestEnvAssign(t *testing.T) {
	outer := NewEnv()
	outer.define("a", &monkeyInteger{value: 1})
	inner := newEnv(outer)

	if !inner.assign("a", &monkeyInteger{value: 5}) {
		t.Fatalf("assign should find a in the outer scope")
	}
	if inner.declared("a") {
		t.Errorf("assign should not bind a in the inner scope")
	}
	if v, _ := outer.get("a"); v.Inspect() != "5" {
		t.Errorf("outer a should be 5 instead of %s", v.Inspect())
	}
	if inner.assign("missing", NULL) {
		t.Errorf("assign to an unbound name should fail")
	}
}

func TestSessionKeepsBindings(t *testing.T) {
	env := NewEnv()
	interp := NewInterpreter(&testPrinter{}, nil)

	if _, ok := interp.Run("let a = 2;", env); !ok {
		t.Fatalf("let should succeed")
	}
	result, ok := interp.Run("a * 3", env)
	if !ok || result.Inspect() != "6" {
		t.Errorf("a * 3 should be 6")
	}

	// A runtime error leaves the environment usable
	if _, ok := interp.Run("a + true", env); ok {
		t.Errorf("a + true should fail")
	}
	if result, _ := interp.Run("a", env); result.Inspect() != "2" {
		t.Errorf("a should still be 2 instead of %s", result.Inspect())
	}
}
