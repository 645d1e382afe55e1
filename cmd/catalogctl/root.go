package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/console-catalog/catalog-api/internal/adapters/logoclient"
	"github.com/console-catalog/catalog-api/internal/adapters/manifest"
	"github.com/console-catalog/catalog-api/internal/domain"
	"github.com/console-catalog/catalog-api/internal/platform/logger"
)

func newRootCmd() *cobra.Command {
	var (
		logLevel string
		logJSON  bool
	)
	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Inspect task catalogs and console branding",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger.Init(&logger.Config{
				Level:  logger.LogLevel(logLevel),
				Output: cmd.ErrOrStderr(),
				JSON:   logJSON,
			})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	root.PersistentFlags().BoolVar(&logJSON, "log-json", false, "log as JSON")

	root.AddCommand(newNormalizeCmd(), newLogoURLCmd())
	return root
}

func newNormalizeCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "normalize",
		Short: "Print the catalog items for the tasks in a manifest",
		Long: "Reads Task and ClusterTask manifests (YAML or JSON, multi-document) " +
			"from a file, or stdin when the file is '-', and prints the catalog items as JSON.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				tasks []*domain.TaskResource
				err   error
			)
			if file == "-" {
				tasks, err = manifest.Decode(cmd.InOrStdin())
			} else {
				tasks, err = manifest.DecodeFile(file)
			}
			if err != nil {
				return err
			}
			return writeItems(cmd.OutOrStdout(), domain.NormalizeTasks(tasks))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "manifest file, '-' for stdin")
	return cmd
}

func writeItems(w io.Writer, items []domain.CatalogItem) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

func newLogoURLCmd() *cobra.Command {
	var (
		server string
		theme  string
	)
	logoType := domain.MastheadType
	cmd := &cobra.Command{
		Use:   "logo-url",
		Short: "Fetch the console's custom logo and print it as a data URL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if server == "" {
				return fmt.Errorf("--server is required")
			}
			c := logoclient.New(server, logger.GetDefault())
			u := c.LogoURL(cmd.Context(), logoType == domain.FaviconType, logoclient.Theme(theme))
			if u == "" {
				return errors.New("no logo available")
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), u)
			return err
		},
	}
	cmd.Flags().StringVar(&server, "server", "", "console base path, e.g. https://console.example.com/")
	cmd.Flags().Var(&logoType, "type", "logo type (masthead or favicon)")
	cmd.Flags().StringVar(&theme, "theme", string(logoclient.ThemeLight), "console theme (light or dark)")
	return cmd
}
