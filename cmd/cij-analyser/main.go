// Package main is the entry point for the cij-analyser application
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/ethpandaops/cij-analyser/cmd"
	"github.com/ethpandaops/cij-analyser/internal/config"
)

const (
	envFlag      = "--env"
	envFlagEqual = "--env="
)

func main() {
	envFile, runTUI, err := parseArgs(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if !runTUI {
		// cobra handles --env itself
		cmd.Execute()
		return
	}

	if err := config.LoadEnvFile(envFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading env file: %v\n", err)
		os.Exit(1)
	}

	cmd.InitLogger()
	cmd.RunInteractive()
}

// parseArgs extracts the env file and reports whether only --env was given, in which case
// interactive mode is launched.
func parseArgs(args []string) (envFile string, runTUI bool, err error) {
	rest := args[1:]

	switch {
	case len(rest) == 0:
		return "", true, nil
	case len(rest) == 1 && rest[0] == envFlag:
		return "", false, fmt.Errorf("%s flag requires a value", envFlag)
	case len(rest) == 1 && strings.HasPrefix(rest[0], envFlagEqual):
		return rest[0][len(envFlagEqual):], true, nil
	case len(rest) == 2 && rest[0] == envFlag:
		return rest[1], true, nil
	default:
		return "", false, nil
	}
}
