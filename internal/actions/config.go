package actions

import (
	"fmt"
	"io"

	"github.com/ethpandaops/cij-analyser/internal/config"
)

// ShowConfig writes the configuration resolved from the .env file and the environment.
func ShowConfig(w io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	_, err = fmt.Fprintln(w, cfg.String())

	return err
}
