package main

import (
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/gogpu/geomtool/config"
	"github.com/gogpu/geomtool/internal/watch"
	"github.com/spf13/cobra"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch scene.toml",
	Short: "Re-render a scene every time its file changes",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVarP(&renderOpts.output, "output", "o", "geomtool.png", "output file")
	watchCmd.Flags().Float64Var(&renderOpts.scale, "scale", 1, "resize the output by this factor")
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", 200*time.Millisecond, "quiet period before re-rendering")
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	out := cmd.OutOrStdout()
	rerender := func(path string) {
		scene, err := config.Load(path)
		if err == nil {
			err = renderToFile(scene, renderOpts.output, renderOpts.scale, false)
		}
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
			return
		}
		fmt.Fprintf(out, "Rendered %s -> %s\n", path, renderOpts.output)
	}

	rerender(args[0])
	fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", args[0])
	return watch.File(ctx, args[0], watchDebounce, rerender)
}
