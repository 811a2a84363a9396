package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// CLIConfig holds saved defaults persisted to disk.
type CLIConfig struct {
	DBPath             string  `yaml:"db_path,omitempty"`
	DownPaymentPercent float64 `yaml:"down_payment_percent,omitempty"`
	InterestRate       float64 `yaml:"interest_rate,omitempty"`
	HoldingMonths      int     `yaml:"holding_months,omitempty"`
}

// defaultConfig carries the stock financing assumptions used when the
// config file doesn't override them.
var defaultConfig = CLIConfig{
	DownPaymentPercent: 20,
	InterestRate:       8,
	HoldingMonths:      12,
}

// configPath returns the path to the CLI config file.
func configPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "flipscout", "config.yaml"), nil
}

// loadConfig reads the CLI config from disk, falling back to stock defaults
// for unset fields. A missing file is not an error.
func loadConfig() (CLIConfig, error) {
	cfg := defaultConfig

	path, err := configPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return defaultConfig, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.DownPaymentPercent == 0 {
		cfg.DownPaymentPercent = defaultConfig.DownPaymentPercent
	}
	if cfg.InterestRate == 0 {
		cfg.InterestRate = defaultConfig.InterestRate
	}
	if cfg.HoldingMonths == 0 {
		cfg.HoldingMonths = defaultConfig.HoldingMonths
	}

	return cfg, nil
}

// saveConfig writes the CLI config to disk.
func saveConfig(cfg CLIConfig) error {
	path, err := configPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show saved defaults",
		Long:  "Show the saved financing defaults and database path used by deal and estimate.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if isJSON() {
				return printJSON(cfg)
			}
			fmt.Printf("Down payment:  %.1f%%\n", cfg.DownPaymentPercent)
			fmt.Printf("Interest rate: %.1f%%\n", cfg.InterestRate)
			fmt.Printf("Holding:       %d months\n", cfg.HoldingMonths)
			if cfg.DBPath != "" {
				fmt.Printf("Database:      %s\n", cfg.DBPath)
			}
			return nil
		},
	}

	cmd.AddCommand(newConfigSetCmd())

	return cmd
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Update a saved default",
		Long:  "Update a saved default. Keys: down-payment, interest-rate, holding-months, db-path.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			key, value := args[0], args[1]
			switch key {
			case "down-payment":
				v, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return fmt.Errorf("invalid down-payment %q: %w", value, err)
				}
				cfg.DownPaymentPercent = v
			case "interest-rate":
				v, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return fmt.Errorf("invalid interest-rate %q: %w", value, err)
				}
				cfg.InterestRate = v
			case "holding-months":
				v, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("invalid holding-months %q: %w", value, err)
				}
				cfg.HoldingMonths = v
			case "db-path":
				cfg.DBPath = value
			default:
				return fmt.Errorf("unknown config key %q", key)
			}

			if err := saveConfig(cfg); err != nil {
				return err
			}

			fmt.Printf("Saved %s = %s\n", key, value)
			return nil
		},
	}
}
