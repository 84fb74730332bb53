// cmd/pawdirs/clean.go
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexcatdad/paw-dirs/dirs"
	"github.com/alexcatdad/paw-dirs/sharedlog"
)

var cleanYes bool

var cleanCmd = &cobra.Command{
	Use:   "clean <app>",
	Short: "Delete an application's cache folder",
	Args:  cobra.ExactArgs(1),
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&cleanYes, "yes", "y", false, "skip confirmation")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	d, err := dirs.Resolve(args[0])
	if err != nil {
		return err
	}

	log := sharedlog.Shared()
	if _, err := os.Stat(d.Cache); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return log.Print(fmt.Sprintf("nothing to clean: %s\n", d.Cache))
		}
		return err
	}

	if !cleanYes {
		c, err := log.ReadChar(fmt.Sprintf("delete %s? [y/N] ", d.Cache))
		if err != nil {
			return err
		}
		if c != 'y' && c != 'Y' {
			return log.Print("aborted\n")
		}
	}

	if err := os.RemoveAll(d.Cache); err != nil {
		return fmt.Errorf("cannot remove %s: %w", d.Cache, err)
	}
	return log.Print(fmt.Sprintf("removed %s\n", d.Cache))
}
