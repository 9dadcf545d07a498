package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thomas11/content11"
)

var (
	confPath string
	drafts   bool
	verbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "content11",
	Short: "Load, validate, and index a directory of writing",
	Long: `content11 reads a directory of posts and pages, validates their
metadata, and indexes them by slug, tag, and date. It produces no HTML;
pair it with whatever renderer you like and feed it the bundle.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&confPath, "conf", "content11.json", "path to the site configuration file")
	rootCmd.PersistentFlags().BoolVar(&drafts, "drafts", false, "include documents with the 'draft' flag")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

// loadSite is the one read path all commands share: conf, then scan, load,
// index.
func loadSite() (*content11.Site, error) {
	conf, err := content11.ReadConf(confPath)
	if err != nil {
		return nil, err
	}
	return content11.ReadSite(conf, drafts)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
