package internal

import (
	"errors"
	"fmt"
	"time"
)

var (
	errExpectedArray  = errors.New("first argument to `push` must be ARRAY")
	errExpectedString = errors.New("argument to `time` must be STRING")
)

func defineGlobals(p IPrinter, clock func() time.Time) map[string]*nativeFn {
	globals := make(map[string]*nativeFn)
	for _, fn := range []*nativeFn{
		defineLen(),
		definePuts(p),
		defineType(),
		definePush(),
		defineTime(clock),
	} {
		globals[fn.name] = fn
	}
	return globals
}

func defineLen() *nativeFn {
	return &nativeFn{
		name:       "len",
		arityValue: 1,
		callFn: func(arguments []Object) (Object, error) {
			switch arg := arguments[0].(type) {
			case *monkeyString:
				return &monkeyInteger{value: int64(len(arg.value))}, nil
			case *monkeyArray:
				return &monkeyInteger{value: int64(len(arg.elements))}, nil
			}
			return nil, fmt.Errorf("argument to `len` not supported, got %s", arguments[0].Type())
		},
	}
}

func definePuts(p IPrinter) *nativeFn {
	return &nativeFn{
		name:       "puts",
		arityValue: -1,
		callFn: func(arguments []Object) (Object, error) {
			for _, arg := range arguments {
				p.Println(arg.Inspect())
			}
			return VOID, nil
		},
	}
}

func defineType() *nativeFn {
	return &nativeFn{
		name:       "type",
		arityValue: 1,
		callFn: func(arguments []Object) (Object, error) {
			return &monkeyString{value: string(arguments[0].Type())}, nil
		},
	}
}

func definePush() *nativeFn {
	return &nativeFn{
		name:       "push",
		arityValue: 2,
		callFn: func(arguments []Object) (Object, error) {
			array, ok := arguments[0].(*monkeyArray)
			if !ok {
				return nil, errExpectedArray
			}
			array.elements = append(array.elements, arguments[1])
			return array, nil
		},
	}
}

var timeUnits = map[string]func(t time.Time) int64{
	"year":   func(t time.Time) int64 { return int64(t.Year()) },
	"month":  func(t time.Time) int64 { return int64(t.Month()) },
	"day":    func(t time.Time) int64 { return int64(t.Day()) },
	"hour":   func(t time.Time) int64 { return int64(t.Hour()) },
	"minute": func(t time.Time) int64 { return int64(t.Minute()) },
	"second": func(t time.Time) int64 { return int64(t.Second()) },
}

// defineTime returns unix seconds, or one field of the local time when
// called with a unit name
func defineTime(clock func() time.Time) *nativeFn {
	return &nativeFn{
		name:       "time",
		arityValue: -1,
		callFn: func(arguments []Object) (Object, error) {
			now := clock()
			switch len(arguments) {
			case 0:
				return &monkeyInteger{value: now.Unix()}, nil
			case 1:
				unit, ok := arguments[0].(*monkeyString)
				if !ok {
					return nil, errExpectedString
				}
				field, ok := timeUnits[unit.value]
				if !ok {
					return nil, fmt.Errorf("unknown time unit: %s", unit.value)
				}
				return &monkeyInteger{value: field(now)}, nil
			}
			return nil, fmt.Errorf("wrong number of arguments: want=0 or 1, got=%d", len(arguments))
		},
	}
}
