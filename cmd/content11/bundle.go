package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var bundleCmd = &cobra.Command{
	Use:   "bundle [dir]",
	Short: "Export the manifest plus verbatim sources for a renderer",
	Long: `bundle validates the site and writes everything an external
renderer needs into the bundle directory: manifest.yaml, the writing
tree, and the static files tree. The default directory comes from the
site configuration.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := loadSite()
		if err != nil {
			return err
		}

		dir := site.Conf().BundleDir
		if len(args) == 1 {
			dir = args[0]
		}

		slog.Info("writing bundle", "dir", dir)
		return site.Bundle(dir)
	},
}

func init() {
	rootCmd.AddCommand(bundleCmd)
}
