package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/bankbook-dev/bankbook/internal/config"
	"github.com/bankbook-dev/bankbook/internal/ledger"
	"github.com/bankbook-dev/bankbook/internal/logger"
	"github.com/bankbook-dev/bankbook/internal/model"
	"github.com/bankbook-dev/bankbook/internal/snapshot"
	"github.com/bankbook-dev/bankbook/internal/store"
)

const dateLayout = "2006-01-02"

func dataDir(cmd *cobra.Command) (string, error) {
	dir, err := cmd.Flags().GetString("data-dir")
	if err != nil {
		return "", err
	}
	if dir != "" {
		return dir, nil
	}
	return ".", nil
}

// openStore loads bankbook.yaml from the data directory (falling back to
// defaults when absent) and opens the state file under it. Commands
// close the returned store before exiting so pending saves flush.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dir, err := dataDir(cmd)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(filepath.Join(dir, config.Filename))
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		cfg = config.Default("")
	}
	if cfg.DataDir != "" {
		dir = cfg.DataDir
	}

	return store.Open(filepath.Join(dir, snapshot.StateFilename), store.Options{
		AutosaveDelay: cfg.AutosaveDelay(),
		Logger:        logger.New(),
	}), nil
}

// resolveAccount accepts an account ID or an exact account name.
func resolveAccount(s *store.Store, arg string) (model.Account, error) {
	if id, err := uuid.Parse(arg); err == nil {
		if a, ok := s.AccountByID(id); ok {
			return a, nil
		}
	}
	for _, a := range s.Accounts() {
		if a.Name == arg {
			return a, nil
		}
	}
	return model.Account{}, fmt.Errorf("unknown account %q", arg)
}

func resolveCategory(s *store.Store, arg string) (model.Category, error) {
	if id, err := uuid.Parse(arg); err == nil {
		if c, ok := s.CategoryByID(id); ok {
			return c, nil
		}
	}
	for _, c := range s.Categories() {
		if c.Name == arg {
			return c, nil
		}
	}
	return model.Category{}, fmt.Errorf("unknown category %q", arg)
}

func resolveCard(s *store.Store, arg string) (model.Category, error) {
	if id, err := uuid.Parse(arg); err == nil {
		if c, ok := s.CardByID(id); ok {
			return c, nil
		}
	}
	for _, c := range s.Cards() {
		if c.Name == arg {
			return c, nil
		}
	}
	return model.Category{}, fmt.Errorf("unknown credit card %q", arg)
}

// parseDate reads a YYYY-MM-DD flag value; empty means today.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local), nil
	}
	d, err := time.ParseInLocation(dateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing date %q: %w", s, err)
	}
	return d, nil
}

// scopeFromFlags builds the date scope: explicit --year/--month win over
// the --scope keyword.
func scopeFromFlags(cmd *cobra.Command) (ledger.Scope, error) {
	year, err := cmd.Flags().GetInt("year")
	if err != nil {
		return ledger.Scope{}, err
	}
	month, err := cmd.Flags().GetInt("month")
	if err != nil {
		return ledger.Scope{}, err
	}
	if year != 0 || month != 0 {
		if year == 0 || month == 0 {
			return ledger.Scope{}, errors.New("--year and --month go together")
		}
		return ledger.Month(year, month), nil
	}
	name, err := cmd.Flags().GetString("scope")
	if err != nil {
		return ledger.Scope{}, err
	}
	return ledger.ParseScope(name)
}

func addScopeFlags(cmd *cobra.Command) {
	cmd.Flags().String("scope", "month", "date scope: today, month or all")
	cmd.Flags().Int("year", 0, "calendar year (with --month)")
	cmd.Flags().Int("month", 0, "calendar month 1-12 (with --year)")
}
