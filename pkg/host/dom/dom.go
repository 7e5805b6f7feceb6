// Package dom implements host.Host on an HTML document tree
// (golang.org/x/net/html). Inline styles are kept in the style attribute and
// merged through a CSS declaration parser, so styles already present on a
// node survive the builder's writes. Perspective targets are found with CSS
// selectors.
package dom

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	selector "github.com/ericchiang/css"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/chazu/cuboid/pkg/host"
)

// Compile-time interface checks.
var (
	_ host.Host       = (*Document)(nil)
	_ host.Identifier = (*Document)(nil)
)

// ErrNoMatch is returned when a selector matches nothing.
var ErrNoMatch = errors.New("dom: selector matched no element")

const blankPage = "<!DOCTYPE html><html><head></head><body></body></html>"

// Document is an HTML document that panels are created in.
type Document struct {
	root *html.Node
	head *html.Node
	body *html.Node

	// Tag is the element created for panels. Defaults to "div".
	Tag atom.Atom
}

// New returns an empty HTML5 document.
func New() *Document {
	d, err := Parse(strings.NewReader(blankPage))
	if err != nil {
		panic(fmt.Sprintf("dom: parsing blank page: %v", err))
	}
	return d
}

// Parse reads an HTML document. The parser always synthesizes html, head and
// body elements, so Body never returns nil for a parsed document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("dom: parse: %w", err)
	}
	d := &Document{root: root, Tag: atom.Div}
	d.head = findElement(root, atom.Head)
	d.body = findElement(root, atom.Body)
	return d, nil
}

// Root returns the document node.
func (d *Document) Root() *html.Node { return d.root }

// Head returns the head element.
func (d *Document) Head() *html.Node { return d.head }

// Body returns the body element.
func (d *Document) Body() *html.Node { return d.body }

// QueryAll returns every element matching sel in document order.
func (d *Document) QueryAll(sel string) ([]*html.Node, error) {
	s, err := selector.Parse(sel)
	if err != nil {
		return nil, fmt.Errorf("dom: selector %q: %w", sel, err)
	}
	return s.Select(d.root), nil
}

// Query returns the first element matching sel, or ErrNoMatch.
func (d *Document) Query(sel string) (*html.Node, error) {
	nodes, err := d.QueryAll(sel)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoMatch, sel)
	}
	return nodes[0], nil
}

// Resolve looks up a perspective target by selector.
func (d *Document) Resolve(target string) (host.Node, error) {
	n, err := d.Query(target)
	if err != nil {
		return nil, err
	}
	return n, nil
}

// AddStylesheet appends a <style> element with text to the head.
func (d *Document) AddStylesheet(text string) {
	style := &html.Node{Type: html.ElementNode, Data: "style", DataAtom: atom.Style}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	d.head.AppendChild(style)
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// CreatePanel returns a new detached element.
func (d *Document) CreatePanel() host.Node {
	tag := d.Tag
	if tag == 0 {
		tag = atom.Div
	}
	return &html.Node{Type: html.ElementNode, Data: tag.String(), DataAtom: tag}
}

// SetClass replaces the class attribute.
func (d *Document) SetClass(n host.Node, class string) {
	SetAttr(unwrap(n), "class", class)
}

// SetID sets the id attribute.
func (d *Document) SetID(n host.Node, id string) {
	SetAttr(unwrap(n), "id", id)
}

// SetStyle merges one declaration into the style attribute. An existing
// declaration of the same property is replaced in place.
func (d *Document) SetStyle(n host.Node, property, value string) {
	el := unwrap(n)
	text := strings.TrimSpace(Attr(el, "style"))
	decls, ok := parseStyle(text)
	if !ok {
		// The existing text cannot be rewritten without losing declarations,
		// so the new one is appended and wins by source order.
		SetAttr(el, "style", appendDeclaration(text, property, value))
		return
	}
	replaced := false
	for _, decl := range decls {
		if decl.Property == property {
			decl.Value = value
			decl.Important = false
			replaced = true
		}
	}
	if !replaced {
		decls = append(decls, &css.Declaration{Property: property, Value: value})
	}
	SetAttr(el, "style", formatDeclarations(decls))
}

// AppendChild attaches child as the last child of parent, detaching it from
// its previous parent first.
func (d *Document) AppendChild(parent, child host.Node) {
	p, c := unwrap(parent), unwrap(child)
	if c.Parent != nil {
		c.Parent.RemoveChild(c)
	}
	p.AppendChild(c)
}

// Styles parses the element's style attribute. Declarations after a syntax
// error are dropped.
func Styles(n *html.Node) []*css.Declaration {
	decls, _ := parseStyle(strings.TrimSpace(Attr(n, "style")))
	return decls
}

// parseStyle parses a style attribute. ok is false when the declaration
// parser would drop or mangle part of text: on a parse error, or when text
// holds braces, which end the parser's declaration block early.
func parseStyle(text string) (decls []*css.Declaration, ok bool) {
	if text == "" {
		return nil, true
	}
	// The declaration parser only terminates a value on ';'.
	if !strings.HasSuffix(text, ";") {
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, false
	}
	return decls, !strings.ContainsAny(text, "{}")
}

// appendDeclaration adds "property: value;" to the end of style text.
func appendDeclaration(text, property, value string) string {
	decl := property + ": " + value + ";"
	text = strings.TrimRight(strings.TrimSpace(text), "; \t\n")
	if text == "" {
		return decl
	}
	return text + "; " + decl
}

// Style returns the value of one inline style property.
func Style(n *html.Node, property string) (string, bool) {
	for _, decl := range Styles(n) {
		if decl.Property == property {
			return decl.Value, true
		}
	}
	return "", false
}

// Attr returns the value of attribute key, or "".
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// SetAttr sets attribute key, replacing any previous value.
func SetAttr(n *html.Node, key, val string) {
	for i := range n.Attr {
		if n.Attr[i].Key == key {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

func formatDeclarations(decls []*css.Declaration) string {
	parts := make([]string, len(decls))
	for i, decl := range decls {
		parts[i] = decl.String()
	}
	return strings.Join(parts, " ")
}

func findElement(n *html.Node, a atom.Atom) *html.Node {
	if n.Type == html.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, a); found != nil {
			return found
		}
	}
	return nil
}

// unwrap extracts the *html.Node behind a host.Node.
func unwrap(n host.Node) *html.Node {
	return n.(*html.Node)
}
