package main

import (
	"fmt"
	"os"

	"github.com/notaterm/nota/internal/state"
	"github.com/notaterm/nota/pkg/cmd/root"
)

func main() {
	s, err := state.NewState()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	cmd, err := root.NewCmdRoot(s)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
