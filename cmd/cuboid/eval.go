package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"fortio.org/log"
	"github.com/spf13/cobra"

	"github.com/chazu/cuboid/pkg/cuboid"
	"github.com/chazu/cuboid/pkg/engine"
	"github.com/chazu/cuboid/pkg/host/dom"
	"github.com/chazu/cuboid/pkg/host/script"
)

func newEvalCmd(o *options) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "eval [file]",
		Short: "Evaluate a cuboid script",
		Long: `eval runs a cuboid script and builds every (cuboid ...) it calls, appended
to the body in call order. With no file, or "-", the script is read from
standard input. --format html renders a page; --format js prints a program
that builds the same elements in a live page.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := readSource(cmd, args)
			if err != nil {
				return err
			}
			batch, evalErrs, err := engine.NewEngine().Evaluate(src)
			if err != nil {
				return err
			}
			if len(evalErrs) > 0 {
				for _, e := range evalErrs {
					log.Errf("eval: %v", e)
				}
				return fmt.Errorf("%d evaluation error(s)", len(evalErrs))
			}
			log.Infof("eval: %d cuboid(s)", batch.Len())

			switch format {
			case "html":
				doc := dom.New()
				for _, c := range batch.Build(cuboid.NewBuilder(doc, o.sink()), doc.Resolve) {
					doc.AppendChild(doc.Body(), c.Container)
				}
				if err := o.checkStrict(); err != nil {
					return err
				}
				return o.writePage(cmd, doc)
			case "js":
				s := script.New()
				for _, c := range batch.Build(cuboid.NewBuilder(s, o.sink()), s.Resolve) {
					s.AppendChild(s.Body(), c.Container)
				}
				if err := o.checkStrict(); err != nil {
					return err
				}
				w, closeFn, err := o.output(cmd)
				if err != nil {
					return err
				}
				if _, err := io.WriteString(w, s.String()); err != nil {
					closeFn()
					return err
				}
				return closeFn()
			default:
				return fmt.Errorf("--format: unknown format %q (want html or js)", format)
			}
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "html", "output format: html or js")
	return cmd
}

func readSource(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading stdin: %w", err)
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("script %s does not exist", args[0])
	}
	return string(b), err
}
