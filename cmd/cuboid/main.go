// cuboid builds six-panel CSS 3D boxes.
//
// Subcommands render a cuboid into an HTML page, evaluate cuboid scripts,
// list the per-face transforms and export the faces as glTF.
package main

import (
	"context"
	"os"

	"fortio.org/log"
	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	log.SetDefaultsForClientTools()
	if err := fang.Execute(context.Background(), newRootCmd(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "cuboid",
		Short: "Build CSS 3D cuboids",
		Long: `cuboid builds a rectangular prism out of six absolutely positioned panels
inside one container, using CSS 3D transforms. Give it a width, height,
depth and unit, and an ancestor to receive perspective.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.setupLogging()
		},
	}
	o.bind(root)

	root.AddCommand(
		newHTMLCmd(o),
		newDemoCmd(o),
		newEvalCmd(o),
		newFacesCmd(o),
		newGLTFCmd(o),
	)
	return root
}
