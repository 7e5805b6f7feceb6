package engine

import (
	"fmt"

	"github.com/chazu/cuboid/pkg/cuboid"
	"github.com/chazu/cuboid/pkg/diag"
	"github.com/chazu/cuboid/pkg/host"
)

// DefaultTarget is the perspective target used when a script gives a
// perspective value without naming a target.
const DefaultTarget = "body"

// PerspectiveRequest asks for perspective on a named node. Target is looked
// up by a Resolver when the request is built.
type PerspectiveRequest struct {
	Target string
	Value  string
}

// Request is one (cuboid ...) call recorded during evaluation.
type Request struct {
	ID          string
	Dimensions  cuboid.Dimensions
	Perspective *PerspectiveRequest
}

// Batch is the output of a successful evaluation, in call order.
type Batch struct {
	Requests []Request
}

// Len returns the number of recorded requests.
func (b *Batch) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Requests)
}

func (b *Batch) add(r Request) int {
	b.Requests = append(b.Requests, r)
	return len(b.Requests) - 1
}

// Resolver maps a perspective target name to a host node.
type Resolver func(target string) (host.Node, error)

// Build builds every request in order.
func (b *Batch) Build(builder *cuboid.Builder, resolve Resolver) []*cuboid.Cuboid {
	if b == nil {
		return nil
	}
	out := make([]*cuboid.Cuboid, 0, len(b.Requests))
	for _, r := range b.Requests {
		out = append(out, r.Build(builder, resolve))
	}
	return out
}

// Build builds the request. A target that cannot be resolved is reported as
// a warning and the builder then sees a perspective without a target.
func (r Request) Build(builder *cuboid.Builder, resolve Resolver) *cuboid.Cuboid {
	var p *cuboid.Perspective
	if r.Perspective != nil {
		p = &cuboid.Perspective{Value: r.Perspective.Value}
		switch {
		case resolve == nil:
			report(builder.Sink, r.Perspective.Target, "no resolver for perspective targets")
		default:
			n, err := resolve(r.Perspective.Target)
			if err != nil {
				report(builder.Sink, r.Perspective.Target, err.Error())
			} else {
				p.Target = n
			}
		}
	}

	c := builder.Build(r.Dimensions, p)
	if r.ID != "" {
		c.Identify(builder.Host, r.ID)
	}
	return c
}

func report(sink diag.Sink, target, msg string) {
	if sink == nil {
		return
	}
	sink.Report(diag.Diagnostic{
		Severity: diag.SeverityWarning,
		Code:     diag.CodeTargetUnresolved,
		Subject:  "perspective",
		Message:  fmt.Sprintf("target %q: %s", target, msg),
	})
}
