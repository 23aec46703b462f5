// Command geomdemo renders geometry tool overlays to PNG files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/geomtool"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "geomdemo",
	Short: "Render drafting instruments and snapped strokes",
	Long: `geomdemo renders a ruler, protractor, set square or compass overlay on a
page, optionally with a stroke snapped to the instrument's guiding edge.
Scenes are described in TOML; see the config package for the format.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			geomtool.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log notifications and stroke updates")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
