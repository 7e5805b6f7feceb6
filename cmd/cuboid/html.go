package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazu/cuboid/pkg/config"
	"github.com/chazu/cuboid/pkg/cuboid"
	"github.com/chazu/cuboid/pkg/host/dom"
)

// shading makes the otherwise unstyled panels visible in a browser.
const shading = `.cuboid { margin: 120px auto; }
.cuboid .side { background: rgba(74, 144, 217, 0.35); outline: 1px solid #2c3e50; }
`

func newHTMLCmd(o *options) *cobra.Command {
	var page, into string
	var shade bool
	cmd := &cobra.Command{
		Use:   "html",
		Short: "Render a cuboid into an HTML page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := o.load(cmd)
			if err != nil {
				return err
			}
			doc, err := openPage(page)
			if err != nil {
				return err
			}
			if err := o.renderInto(doc, into, cfg); err != nil {
				return err
			}
			if shade {
				doc.AddStylesheet(shading)
			}
			return o.writePage(cmd, doc)
		},
	}
	cmd.Flags().StringVar(&page, "page", "", "existing HTML page to build into (default a blank page)")
	cmd.Flags().StringVar(&into, "into", "body", "CSS selector of the element the cuboid is appended to")
	cmd.Flags().BoolVar(&shade, "shade", false, "add a stylesheet that shades the faces")
	return cmd
}

// newDemoCmd renders the demonstration page: a 400 x 200 x 40 cuboid with no
// unit, appended to the body, with perspective 100px on the body.
func newDemoCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Render the demonstration page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			doc := dom.New()
			if err := o.renderInto(doc, "body", config.Default()); err != nil {
				return err
			}
			doc.AddStylesheet(shading)
			return o.writePage(cmd, doc)
		},
	}
}

func openPage(path string) (*dom.Document, error) {
	if path == "" {
		return dom.New(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return dom.Parse(f)
}

func (o *options) renderInto(doc *dom.Document, into string, cfg config.Config) error {
	parent, err := doc.Query(into)
	if err != nil {
		return fmt.Errorf("--into: %w", err)
	}
	c := request(cfg).Build(cuboid.NewBuilder(doc, o.sink()), doc.Resolve)
	doc.AppendChild(parent, c.Container)
	return o.checkStrict()
}

func (o *options) writePage(cmd *cobra.Command, doc *dom.Document) error {
	w, closeFn, err := o.output(cmd)
	if err != nil {
		return err
	}
	if err := doc.Render(w); err != nil {
		closeFn()
		return err
	}
	return closeFn()
}
