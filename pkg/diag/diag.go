// Package diag carries advisory diagnostics out of construction code.
// Nothing reported through a Sink aborts the work that produced it; callers
// that care about degraded output inspect the sink afterwards.
package diag

import (
	"fmt"
	"sync"
)

// Severity indicates how much attention a diagnostic needs.
type Severity int

const (
	SeverityInfo    Severity = iota // informational
	SeverityWarning                 // recoverable, a default was applied or caller action is needed
	SeverityError                   // recoverable, output is degraded
)

func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return fmt.Sprintf("Severity(%d)", int(s))
	}
}

// Diagnostic codes reported by the cuboid builder.
const (
	CodeUnitDefaulted      = "unit-defaulted"
	CodeWidthUnsupported   = "width-unsupported"
	CodeHeightUnsupported  = "height-unsupported"
	CodePerspectiveMissing = "perspective-missing"
	CodeTargetUnresolved   = "target-unresolved"
)

// Diagnostic describes a single finding.
type Diagnostic struct {
	Severity Severity
	Code     string // stable machine-readable identifier
	Subject  string // what the finding is about ("unit", "width", ...)
	Message  string // human-readable description
}

func (d Diagnostic) String() string {
	if d.Subject == "" {
		return fmt.Sprintf("[%s] %s", d.Severity, d.Message)
	}
	return fmt.Sprintf("[%s] %s: %s", d.Severity, d.Subject, d.Message)
}

// Sink receives diagnostics.
type Sink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(d Diagnostic)

// Report calls f(d).
func (f SinkFunc) Report(d Diagnostic) { f(d) }

// Discard drops everything reported to it.
var Discard Sink = SinkFunc(func(Diagnostic) {})

// Tee fans a diagnostic out to every sink in order.
func Tee(sinks ...Sink) Sink {
	return SinkFunc(func(d Diagnostic) {
		for _, s := range sinks {
			if s != nil {
				s.Report(d)
			}
		}
	})
}

// Collector keeps diagnostics in memory. It is safe for concurrent use.
type Collector struct {
	mu    sync.Mutex
	items []Diagnostic
}

// Report appends d.
func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	c.items = append(c.items, d)
	c.mu.Unlock()
}

// All returns a copy of every collected diagnostic in report order.
func (c *Collector) All() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)
	return out
}

// Warnings returns the warning-class diagnostics.
func (c *Collector) Warnings() []Diagnostic {
	return c.filter(SeverityWarning)
}

// Errors returns the error-class diagnostics.
func (c *Collector) Errors() []Diagnostic {
	return c.filter(SeverityError)
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Has reports whether a diagnostic with the given code was collected.
func (c *Collector) Has(code string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range c.items {
		if d.Code == code {
			return true
		}
	}
	return false
}

func (c *Collector) filter(s Severity) []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []Diagnostic
	for _, d := range c.items {
		if d.Severity == s {
			out = append(out, d)
		}
	}
	return out
}
