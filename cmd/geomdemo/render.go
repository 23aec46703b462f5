package main

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/gogpu/geomtool/config"
	"github.com/gogpu/gg"
	"github.com/spf13/cobra"
)

var renderOpts struct {
	output   string
	scale    float64
	finalize bool
}

var renderCmd = &cobra.Command{
	Use:   "render [scene.toml]",
	Short: "Render a scene to a PNG file",
	Long: `Render a scene to a PNG file. Without a scene file the default scene
(a set square in the middle of an 800x600 page) is rendered.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderOpts.output, "output", "o", "geomtool.png", "output file")
	renderCmd.Flags().Float64Var(&renderOpts.scale, "scale", 1, "resize the output by this factor")
	renderCmd.Flags().BoolVar(&renderOpts.finalize, "finalize", false, "close the tool before rendering, leaving only the stroke")
}

func runRender(cmd *cobra.Command, args []string) error {
	scene := config.Default()
	if len(args) == 1 {
		var err error
		if scene, err = config.Load(args[0]); err != nil {
			return err
		}
	}
	if err := renderToFile(scene, renderOpts.output, renderOpts.scale, renderOpts.finalize); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", renderOpts.output)
	return nil
}

// renderScene builds scene and rasterizes it. With finalize the tool is
// closed first, so only the temporary stroke remains on top of the page.
func renderScene(scene *config.Scene, finalize bool) (image.Image, error) {
	built, err := scene.Build()
	if err != nil {
		return nil, err
	}
	if finalize {
		built.Tool.Close()
	}

	dc := gg.NewContext(scene.Page.Width, scene.Page.Height)
	defer dc.Close()
	if err := built.Page.RenderAll(dc); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return dc.Image(), nil
}

func renderToFile(scene *config.Scene, path string, scale float64, finalize bool) error {
	if scale <= 0 {
		return fmt.Errorf("scale must be positive, got %g", scale)
	}
	img, err := renderScene(scene, finalize)
	if err != nil {
		return err
	}
	if scale != 1 {
		w := int(float64(img.Bounds().Dx())*scale + 0.5)
		img = imaging.Resize(img, max(w, 1), 0, imaging.Lanczos)
	}
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
