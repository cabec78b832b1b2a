package main

import (
	"fmt"
	"log"
	"os"

	"monkey/internal"
)

func main() {
	argsWithoutProg := os.Args[1:]

	if len(argsWithoutProg) != 1 {
		fmt.Println("Usage: tree /path/to/source.mk")
		return
	}

	b, err := os.ReadFile(argsWithoutProg[0])
	if err != nil {
		log.Fatal(err)
	}

	program, diagnostics := internal.Parse(string(b))
	if len(diagnostics) != 0 {
		for _, d := range diagnostics {
			fmt.Fprintln(os.Stderr, d)
		}
		os.Exit(1)
	}

	program.PrintTree(internal.StdPrinter{})
}
