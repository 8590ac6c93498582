// Command fileproc runs simulated file processing requests and reports
// their outcomes.
//
// With no request flags it runs the built-in demo scenarios:
//
//	fileproc
//	fileproc -output json
//
// A single request:
//
//	fileproc -name notes.txt -data "hello"
//	fileproc -name notes.txt -number 42
package main

import (
	"context"
	"fmt"
	"os"
)

func main() {
	app := newApp(os.Stdout, os.Stderr)
	code, err := app.run(context.Background(), os.Args[1:])
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	os.Exit(code)
}
