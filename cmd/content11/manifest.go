package main

import (
	"os"

	"github.com/spf13/cobra"
)

var manifestOut string

var manifestCmd = &cobra.Command{
	Use:   "manifest",
	Short: "Print the site index as YAML",
	Long: `manifest loads and indexes the site, then emits the index as
YAML: every document's metadata in collection order, plus the tag index.
Bodies stay in the source files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		site, err := loadSite()
		if err != nil {
			return err
		}

		if manifestOut != "" {
			return site.WriteManifest(manifestOut)
		}

		out, err := site.Manifest()
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	},
}

func init() {
	manifestCmd.Flags().StringVarP(&manifestOut, "out", "o", "", "write the manifest to a file instead of stdout")
	rootCmd.AddCommand(manifestCmd)
}
