package internal

import (
	"fmt"
	"io"
)

// StdPrinter prints program output to stdout and everything else to the
// writer it is given
type StdPrinter struct{}

func (s StdPrinter) Println(a ...interface{}) (n int, err error) {
	return fmt.Println(a...)
}

func (s StdPrinter) Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error) {
	return fmt.Fprintf(w, format, a...)
}

func (s StdPrinter) Fprintln(w io.Writer, a ...interface{}) (n int, err error) {
	return fmt.Fprintln(w, a...)
}
