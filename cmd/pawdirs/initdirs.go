// cmd/pawdirs/initdirs.go
package main

import (
	"errors"
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/alexcatdad/paw-dirs/dirs"
	"github.com/alexcatdad/paw-dirs/sharedlog"
)

var initCmd = &cobra.Command{
	Use:   "init [app]",
	Short: "Create an application's folders",
	Long:  "Creates the config, data, cache, and log folders for an application.\nWith no argument, prompts for the application name.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	log := sharedlog.Shared()

	var app string
	if len(args) == 1 {
		app = args[0]
	} else {
		var err error
		app, err = log.ReadLine("application name: ")
		if err != nil {
			return err
		}
		if app == "" {
			return errors.New("no application name given")
		}
	}

	d, err := dirs.Resolve(app)
	if err != nil {
		return err
	}

	failed := false
	for _, path := range []string{d.Config, d.Data, d.Cache, d.Logs} {
		if err := os.MkdirAll(path, 0755); err != nil {
			var errno syscall.Errno
			if errors.As(err, &errno) {
				log.ErrorWithErrno(fmt.Sprintf("pawdirs: %s: ", path), int(errno))
				log.Error("\n")
			} else {
				log.Error(fmt.Sprintf("pawdirs: %v\n", err))
			}
			failed = true
			continue
		}
		log.Printv(fmt.Sprintf("created %s\n", path))
	}
	if failed {
		return fmt.Errorf("could not create every folder for %s", app)
	}
	return log.Print(fmt.Sprintf("initialized folders for %s\n", app))
}
