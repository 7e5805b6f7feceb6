package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chazu/cuboid/pkg/cuboid"
)

func newFacesCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "faces",
		Short: "List the size and transform of every face",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			dims := cfg.Dimensions()
			unit := dims.Unit
			if unit == "" {
				unit = cuboid.DefaultUnit
			}

			w, closeFn, err := o.output(cmd)
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "FACE\tWIDTH\tHEIGHT\tORIGIN\tTRANSFORM")
			for _, p := range cuboid.Plans(dims.Depth, unit) {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.Face, p.Width, p.Height, p.Origin, p.Transform.CSS())
			}
			if err := tw.Flush(); err != nil {
				closeFn()
				return err
			}
			return closeFn()
		},
	}
}
