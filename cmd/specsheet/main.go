package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/flanksource/commons/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/flanksource/specsheet"
	"github.com/flanksource/specsheet/api"
)

// Build information (set by goreleaser)
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	pathStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func main() {
	rootCmd := newRootCommand()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "specsheet",
		Short: "Generate printable product specification sheets",
		Long: `Specsheet composes a multi-page printable PDF for a catalog product:
a title page with hero image, attribute table, rating and QR code, followed
by a gallery of the product's collection siblings.`,
		Example: `  specsheet generate product.json --url shop.example.com/p/LF-1042
  specsheet generate product.json --base-url https://api.example.com -o sheets/
  specsheet version`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			specsheet.Flags.UseFlags()
		},
	}

	// .env keeps the API origin out of shell history; flags still win.
	if err := godotenv.Load(); err == nil {
		logger.Debugf("loaded .env")
	}
	if specsheet.Flags.BaseURL == "" {
		specsheet.Flags.BaseURL = os.Getenv("SPECSHEET_BASE_URL")
	}

	specsheet.BindAllFlags(rootCmd.PersistentFlags())
	rootCmd.AddCommand(newGenerateCommand(), newVersionCommand())
	return rootCmd
}

func newGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate <product.json>",
		Short: "Generate a specification sheet for one product record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := readProduct(args[0])
			if err != nil {
				return err
			}

			result, err := specsheet.Generate(cmd.Context(), raw, specsheet.Flags.Options)
			if err != nil {
				return fmt.Errorf("generating sheet: %w", err)
			}

			out := filepath.Join(specsheet.Flags.OutputDir, result.Filename)
			if err := os.WriteFile(out, result.Data, 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", out, err)
			}

			fmt.Printf("%s %s %s\n",
				okStyle.Render("✓"),
				pathStyle.Render(out),
				dimStyle.Render(fmt.Sprintf("(%d pages, %.1f KB)", result.Pages, float64(len(result.Data))/1024)),
			)
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("specsheet %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

func readProduct(path string) (api.RawProduct, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading product record: %w", err)
	}
	var raw api.RawProduct
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing product record %s: %w", path, err)
	}
	return raw, nil
}
