// Package cmd contains CLI command definitions
package cmd

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ethpandaops/cij-analyser/internal/actions"
	"github.com/ethpandaops/cij-analyser/internal/config"
	"github.com/ethpandaops/cij-analyser/internal/extractor"
	"github.com/ethpandaops/cij-analyser/internal/runner"
	"github.com/ethpandaops/cij-analyser/pkg/interactive"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch interactive TUI mode",
	Long:  `Launches the interactive Terminal User Interface for CIJ Analyser.`,
	Run: func(_ *cobra.Command, _ []string) {
		RunInteractive()
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// RunInteractive shows the main menu until the user exits.
func RunInteractive() {
	fmt.Println("CIJ Analyser - Interactive Mode")
	fmt.Println("===============================")
	fmt.Println()

	if cfg == nil {
		cfg = config.FromEnv()
	}

	trunPath := runner.DefaultFilename

	for {
		options := []interactive.MenuOption{
			{
				Name:        "Extract",
				Description: "Extract metrics from test case artifacts",
				Action: func() error {
					path, err := interactive.AskPath("Run record:", trunPath, false)
					if err != nil {
						return nil
					}
					trunPath = path

					names := extractor.NewDefaultRegistry(Logger).Names()
					name, err := interactive.SelectOne("Extractor:", names, cfg.Extractor)
					if err != nil {
						return nil
					}

					if errs := actions.Extract(Logger, cfg, actions.ExtractOptions{
						TrunPath:  trunPath,
						Extractor: name,
					}); errs != 0 {
						fmt.Printf("\n❌ Extraction finished with %d error(s)\n", errs)
					}

					interactive.PauseForEnter()
					return nil
				},
			},
			{
				Name:        "Analyse",
				Description: "Check performance requirements and update the run record",
				Action: func() error {
					path, err := interactive.AskPath("Run record:", trunPath, false)
					if err != nil {
						return nil
					}
					trunPath = path

					preqs, err := interactive.AskPath("Requirement declaration (empty to skip):", "", true)
					if err != nil {
						return nil
					}

					if errs := actions.Analyse(Logger, cfg, actions.AnalyseOptions{
						TrunPath:  trunPath,
						PreqsPath: preqs,
						Output:    os.Stdout,
					}); errs != 0 {
						fmt.Printf("\n❌ Analysis finished with %d error(s)\n", errs)
					}

					interactive.PauseForEnter()
					return nil
				},
			},
			{
				Name:        "Extractors",
				Description: "List the available extractors",
				Action: func() error {
					actions.ListExtractors(Logger, os.Stdout)
					interactive.PauseForEnter()
					return nil
				},
			},
			{
				Name:        "Show Config",
				Description: "Display current environment configuration",
				Action: func() error {
					if err := actions.ShowConfig(os.Stdout); err != nil {
						fmt.Printf("\n❌ Error: %v\n", err)
					}
					interactive.PauseForEnter()
					return nil
				},
			},
		}

		if err := interactive.ShowMainMenu(options); err != nil {
			if errors.Is(err, interactive.ErrExit) {
				fmt.Println("Goodbye!")
				return
			}
			log.Fatal(err)
		}

		fmt.Println()
	}
}
