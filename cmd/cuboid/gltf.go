package main

import (
	"fmt"
	"strings"

	"fortio.org/log"
	"github.com/spf13/cobra"

	"github.com/chazu/cuboid/pkg/cuboid"
	"github.com/chazu/cuboid/pkg/export"
	"github.com/chazu/cuboid/pkg/tessellate"
)

func newGLTFCmd(o *options) *cobra.Command {
	var (
		volume bool
		cells  int
		scale  float64
		alpha  float64
		faces  []string
	)
	cmd := &cobra.Command{
		Use:   "gltf",
		Short: "Export the faces as a glTF model",
		Long: `gltf places the six faces exactly where the CSS transforms put them and
writes them as a glTF document. An --out path ending in .glb writes binary
glTF; stdout receives glTF JSON. Width and height must be numbers.
--face limits the export to the named faces.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			dims := cfg.Dimensions()
			meshes, err := faceMeshes(dims, faces)
			if err != nil {
				return err
			}
			if volume {
				v, err := tessellate.Volume(dims, cells)
				if err != nil {
					return err
				}
				log.Infof("gltf: volume has %d triangles", v.TriangleCount())
				meshes = append(meshes, v)
			}

			opts := export.Options{Scale: scale, Alpha: alpha}
			if o.out != "" && o.out != "-" {
				if err := export.Save(o.out, meshes, opts); err != nil {
					return err
				}
				log.Infof("gltf: wrote %d meshes to %s", len(meshes), o.out)
				return nil
			}
			if err := export.Write(cmd.OutOrStdout(), meshes, opts); err != nil {
				return fmt.Errorf("gltf: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&volume, "volume", false, "also export the enclosed volume as a marching-cubes mesh")
	cmd.Flags().IntVar(&cells, "cells", tessellate.DefaultVolumeCells, "marching cubes resolution for --volume")
	cmd.Flags().Float64Var(&scale, "scale", 1, "coordinate scale, e.g. 0.001 for px to meters")
	cmd.Flags().Float64Var(&alpha, "alpha", 1, "face opacity")
	cmd.Flags().StringSliceVar(&faces, "face", nil, "export only these faces (repeatable, e.g. --face front,left)")
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if strings.HasSuffix(strings.ToLower(o.out), ".gltf") || strings.HasSuffix(strings.ToLower(o.out), ".glb") || o.out == "-" || o.out == "" {
			return nil
		}
		return fmt.Errorf("--out: expected a .gltf or .glb file, got %q", o.out)
	}
	return cmd
}

// faceMeshes tessellates the named faces, or all six when names is empty.
func faceMeshes(dims cuboid.Dimensions, names []string) ([]*tessellate.Mesh, error) {
	if len(names) == 0 {
		return tessellate.Tessellate(dims)
	}
	meshes := make([]*tessellate.Mesh, 0, len(names))
	for _, name := range names {
		f, err := cuboid.ParseFace(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("--face: %w", err)
		}
		m, err := tessellate.Face(f, dims)
		if err != nil {
			return nil, err
		}
		meshes = append(meshes, m)
	}
	return meshes, nil
}
