// cmd/pawdirs/paths.go
package main

import (
	"fmt"
	"runtime"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/alexcatdad/paw-dirs/dirs"
	"github.com/alexcatdad/paw-dirs/sharedlog"
)

var pathsCmd = &cobra.Command{
	Use:   "paths <app>",
	Short: "Print the resolved folders for an application",
	Args:  cobra.ExactArgs(1),
	RunE:  runPaths,
}

func init() {
	rootCmd.AddCommand(pathsCmd)
}

func runPaths(cmd *cobra.Command, args []string) error {
	d, err := dirs.Resolve(args[0])
	if err != nil {
		return err
	}

	log := sharedlog.Shared()
	log.Printv(fmt.Sprintf("resolved for %s\n", runtime.GOOS))

	label := color.New(color.FgCyan).SprintfFunc()
	for _, row := range []struct {
		name string
		path string
	}{
		{"home", d.Home},
		{"config", d.Config},
		{"data", d.Data},
		{"cache", d.Cache},
		{"logs", d.Logs},
		{"temp", d.Temp},
	} {
		if err := log.Print(fmt.Sprintf("%s  %s\n", label("%-6s", row.name), row.path)); err != nil {
			return err
		}
	}
	return nil
}
