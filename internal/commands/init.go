package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/config"
	"github.com/bankbook-dev/bankbook/internal/snapshot"
)

func newInitCommand() *cobra.Command {
	var personName string
	var appTitle string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a bankbook data directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, personName, appTitle)
		},
	}

	cmd.Flags().StringVar(&personName, "name", "", "owner name recorded in the config")
	cmd.Flags().StringVar(&appTitle, "title", "", "ledger title (default \"Bank Management\")")

	return cmd
}

func runInit(cmd *cobra.Command, dir, personName, appTitle string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.Filename)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	}

	cfg := config.Default(personName)
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	g := snapshot.DefaultGraph()
	g.PersonName = personName
	if appTitle != "" {
		g.AppTitle = appTitle
	}
	if err := snapshot.Save(filepath.Join(dir, snapshot.StateFilename), g); err != nil {
		return fmt.Errorf("writing state: %w", err)
	}

	cmd.Printf("Initialized bankbook data directory at %s\n", dir)
	return nil
}
