package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/vvka-141/charlint/internal/cli"
	"github.com/vvka-141/charlint/pkg/charlint"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(charlint.ExitPanic)
		}
	}()

	if err := cli.Execute(); err != nil {
		os.Exit(charlint.ExitCodeForError(err))
	}
}
