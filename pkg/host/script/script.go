// Package script implements host.Host by recording every call as a
// JavaScript statement. The finished program is run in a webview (for
// example with Wails' runtime.WindowExecJS) to build the cuboid in a live
// page.
package script

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chazu/cuboid/pkg/host"
)

// Compile-time interface checks.
var (
	_ host.Host       = (*Script)(nil)
	_ host.Identifier = (*Script)(nil)
)

// Ref is a node in the recorded program: either a variable holding a created
// element or a document query.
type Ref struct {
	expr     string
	nullable bool
}

// Expr returns the JavaScript expression for the node.
func (r *Ref) Expr() string { return r.expr }

// access returns the expression to dereference, guarding queries that may
// match nothing.
func (r *Ref) access() string {
	if r.nullable {
		return r.expr + "?."
	}
	return r.expr + "."
}

// Script records host calls. The zero value is ready to use.
type Script struct {
	// Tag is the element created for panels. Defaults to "div".
	Tag string

	stmts []string
	vars  int
}

// New returns an empty Script.
func New() *Script {
	return &Script{}
}

// Query returns a reference to the first element matching sel at run time.
func (s *Script) Query(sel string) *Ref {
	return &Ref{expr: "document.querySelector(" + quote(sel) + ")", nullable: true}
}

// Body returns a reference to the document body.
func (s *Script) Body() *Ref {
	return &Ref{expr: "document.body"}
}

// Resolve returns a query reference for a perspective target. The lookup
// happens when the program runs.
func (s *Script) Resolve(target string) (host.Node, error) {
	if strings.TrimSpace(target) == "" {
		return nil, fmt.Errorf("script: empty target selector")
	}
	return s.Query(target), nil
}

// CreatePanel emits an element creation and returns its variable.
func (s *Script) CreatePanel() host.Node {
	s.vars++
	tag := s.Tag
	if tag == "" {
		tag = "div"
	}
	r := &Ref{expr: fmt.Sprintf("n%d", s.vars)}
	s.emit("const %s = document.createElement(%s);", r.expr, quote(tag))
	return r
}

// SetClass emits a className assignment.
func (s *Script) SetClass(n host.Node, class string) {
	s.assign(unwrap(n), "className", class)
}

// SetID emits an id assignment.
func (s *Script) SetID(n host.Node, id string) {
	s.assign(unwrap(n), "id", id)
}

// SetStyle emits a style.setProperty call.
func (s *Script) SetStyle(n host.Node, property, value string) {
	s.emit("%sstyle.setProperty(%s, %s);", unwrap(n).access(), quote(property), quote(value))
}

// AppendChild emits an appendChild call. Appending a query result is not
// supported by the DOM, so child must be a created panel.
func (s *Script) AppendChild(parent, child host.Node) {
	s.emit("%sappendChild(%s);", unwrap(parent).access(), unwrap(child).expr)
}

// Statements returns the recorded statements in order.
func (s *Script) Statements() []string {
	out := make([]string, len(s.stmts))
	copy(out, s.stmts)
	return out
}

// Len returns the number of recorded statements.
func (s *Script) Len() int { return len(s.stmts) }

// String returns the program wrapped in a block so its variables do not
// leak into the page.
func (s *Script) String() string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, st := range s.stmts {
		b.WriteString("  ")
		b.WriteString(st)
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
	return b.String()
}

func (s *Script) assign(r *Ref, field, value string) {
	if r.nullable {
		s.emit("{ const el = %s; if (el) el.%s = %s; }", r.expr, field, quote(value))
		return
	}
	s.emit("%s.%s = %s;", r.expr, field, quote(value))
}

func (s *Script) emit(format string, args ...any) {
	s.stmts = append(s.stmts, fmt.Sprintf(format, args...))
}

// quote returns v as a JavaScript string literal. JSON string syntax is a
// subset of JavaScript's and escapes <, > and & for inline script safety.
func quote(v string) string {
	b, err := json.Marshal(v)
	if err != nil {
		// Marshal of a string cannot fail.
		panic(err)
	}
	return string(b)
}

// unwrap extracts the *Ref behind a host.Node.
func unwrap(n host.Node) *Ref {
	return n.(*Ref)
}
