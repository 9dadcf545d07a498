package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/radovskyb/watcher"
	"github.com/spf13/cobra"

	"github.com/thomas11/content11"
)

var watch bool

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the content directory and print a summary",
	Long: `check loads every document, verifies the metadata invariants
(required dates on posts, unique slugs across the site), and prints a
summary of what it found. It exits nonzero on the first metadata or slug
collision error, naming the offending files.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runCheck(); err != nil {
			return err
		}
		if watch {
			return recheckOnChange()
		}
		return nil
	},
}

func init() {
	checkCmd.Flags().BoolVar(&watch, "watch", false, "keep running and re-validate on changes to the writing directory")
	rootCmd.AddCommand(checkCmd)
}

func runCheck() error {
	site, err := loadSite()
	if err != nil {
		return err
	}

	coll := site.Collection()
	fmt.Printf("%d documents: %d posts, %d pages, %d tags\n",
		coll.Len(), len(coll.Posts()), len(coll.Pages()), len(coll.Tags()))

	if frequent := site.FrequentTags(); len(frequent) > 0 {
		fmt.Print("frequent tags:")
		for _, t := range frequent {
			fmt.Printf(" %v", t)
		}
		fmt.Println()
	}

	for _, t := range coll.Tags() {
		fmt.Printf("  %v: %d\n", t, len(coll.ByTag(t)))
	}

	return nil
}

// recheckOnChange blocks, re-running validation whenever the writing
// directory changes. Validation failures are reported but do not stop the
// watch; the point is to keep checking while the author edits.
func recheckOnChange() error {
	conf, err := content11.ReadConf(confPath)
	if err != nil {
		return err
	}

	slog.Info("watching for changes", "dir", conf.WritingDir)

	w := watcher.New()
	w.SetMaxEvents(1)

	go func() {
		for {
			select {
			case <-w.Event:
				if err := runCheck(); err != nil {
					slog.Error("validation failed", "err", err)
				}
			case err := <-w.Error:
				slog.Error("watcher error", "err", err)
			case <-w.Closed:
				return
			}
		}
	}()

	if err := w.AddRecursive(conf.WritingDir); err != nil {
		return err
	}

	return w.Start(time.Millisecond * 200)
}
