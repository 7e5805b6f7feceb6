package engine

import (
	"fmt"
	"strings"

	"github.com/chazu/cuboid/pkg/cuboid"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms cuboid script source code before passing it to
// zygomys. It performs two transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal)
//     This avoids the need to register keyword symbols as globals, which
//     would conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: face-names -> face_names
//     zygomys does not allow hyphens in identifiers (it interprets them
//     as the subtraction operator). This converts kebab-case identifiers
//     to underscore form outside of strings and comments.
//
// Both transformations respect string literal boundaries and line comments.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Skip double-quoted string literals.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Skip backtick-quoted string literals.
		if b[i] == '`' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '`' {
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments for zygomys.
		// zygomys uses // for line comments, not the traditional Lisp ;.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			// Skip additional ; characters (;; style).
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) {
			// Preserve := (assignment operator).
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			// Check for keyword: colon followed by a letter.
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				kwName := string(b[i+1 : j])
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, []byte(kwName)...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when hyphen sits between identifier characters (not a minus operator).
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isIdentStartChar(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

func isIdentStartChar(c byte) bool {
	return isLetter(c)
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing Go values through the zygomys environment
// ---------------------------------------------------------------------------

// sexpPerspective wraps a PerspectiveRequest so it can be returned from
// `perspective` and consumed by `cuboid`.
type sexpPerspective struct {
	req PerspectiveRequest
}

func (p *sexpPerspective) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(perspective %q :target %q)", p.req.Value, p.req.Target)
}
func (p *sexpPerspective) Type() *zygo.RegisteredType { return nil }

// sexpRequest refers to a request recorded in the batch.
type sexpRequest struct {
	index int
	id    string
}

func (r *sexpRequest) SexpString(ps *zygo.PrintState) string {
	if r.id != "" {
		return fmt.Sprintf("(cuboid %q)", r.id)
	}
	return fmt.Sprintf("(cuboid #%d)", r.index)
}
func (r *sexpRequest) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
// Returns the keyword name (without prefix) and true if it is.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
// Keywords are identified by the __kw_ prefix added during preprocessing.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				// Keyword at end with no value: treat as flag with nil.
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// lookup returns the keyword argument name, falling back to positional
// argument pos when the keyword is absent. pos < 0 disables the fallback.
func (a kwArgs) lookup(name string, pos int) (zygo.Sexp, bool) {
	if v, ok := a.kw[name]; ok {
		return v, true
	}
	if pos >= 0 && pos < len(a.positional) {
		return a.positional[pos], true
	}
	return nil, false
}

// checkPositional rejects positional arguments beyond names and positional
// arguments whose slot is also given by keyword. names lists the keyword for
// each positional slot in order.
func (a kwArgs) checkPositional(fn string, names ...string) error {
	if len(a.positional) > len(names) {
		return fmt.Errorf("%s: too many positional arguments (got %d, at most %d)",
			fn, len(a.positional), len(names))
	}
	for i := range a.positional {
		if _, ok := a.kw[names[i]]; ok {
			return fmt.Errorf("%s: positional argument %d conflicts with :%s", fn, i+1, names[i])
		}
	}
	return nil
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toKeywordString extracts a keyword name or plain string from a Sexp.
// Handles both preprocessed keywords (__kw_px) and plain strings ("px").
func toKeywordString(s zygo.Sexp) (string, error) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", fmt.Errorf("expected keyword or string, got %T (%s)", s, s.SexpString(nil))
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], nil
	}
	return str.S, nil
}

// toSize converts a width or height argument. Numbers are magnitudes and
// strings (or keywords such as :auto) are raw sizes. Anything else is kept
// as the invalid Size so the builder reports it.
func toSize(s zygo.Sexp) cuboid.Size {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return cuboid.Magnitude(float64(v.Val))
	case *zygo.SexpFloat:
		return cuboid.Magnitude(v.Val)
	case *zygo.SexpStr:
		name, _ := toKeywordString(v)
		return cuboid.Raw(name)
	}
	return cuboid.Size{}
}

// toFace converts a keyword or string to a cuboid.Face.
func toFace(s zygo.Sexp) (cuboid.Face, error) {
	name, err := toKeywordString(s)
	if err != nil {
		return 0, fmt.Errorf("expected face keyword: %w", err)
	}
	return cuboid.ParseFace(name)
}

// toPerspective converts a :perspective argument. A plain value gets the
// target given separately, or DefaultTarget.
func toPerspective(s zygo.Sexp, target string) (*PerspectiveRequest, error) {
	switch v := s.(type) {
	case *sexpPerspective:
		req := v.req
		if target != "" {
			req.Target = target
		}
		return &req, nil
	case *zygo.SexpStr:
		if target == "" {
			target = DefaultTarget
		}
		return &PerspectiveRequest{Target: target, Value: v.S}, nil
	case *zygo.SexpSentinel:
		if v == zygo.SexpNull {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("expected perspective or string, got %T (%s)", s, s.SexpString(nil))
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// registerBuiltins installs the cuboid DSL builtins into a zygomys environment.
// The builtins record requests in the provided Batch during evaluation.
//
// Source code must be preprocessed with preprocessSource() before evaluation so
// that :keyword tokens are converted to recognizable string literals.
func registerBuiltins(env *zygo.Zlisp, b *Batch) {

	// -----------------------------------------------------------------------
	// (perspective "100px" :target "#stage")
	// -----------------------------------------------------------------------
	env.AddFunction("perspective", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a := parseArgs(args)
		if err := a.checkPositional("perspective", "value", "target"); err != nil {
			return zygo.SexpNull, err
		}
		req := PerspectiveRequest{Target: DefaultTarget}

		v, ok := a.lookup("value", 0)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("perspective requires a value")
		}
		value, err := toString(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("perspective: value: %w", err)
		}
		req.Value = value

		if v, ok := a.lookup("target", 1); ok {
			target, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("perspective: target: %w", err)
			}
			req.Target = target
		}

		return &sexpPerspective{req: req}, nil
	})

	// -----------------------------------------------------------------------
	// (cuboid :width 40 :height 20 :depth 10 :unit "%"
	//         :perspective "100px" :target "body" :id "c1")
	// (cuboid 40 20 10 "%")
	// -----------------------------------------------------------------------
	env.AddFunction("cuboid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		a := parseArgs(args)
		if err := a.checkPositional("cuboid", "width", "height", "depth", "unit"); err != nil {
			return zygo.SexpNull, err
		}
		var r Request

		// A missing width or height stays invalid and is reported at build time.
		if v, ok := a.lookup("width", 0); ok {
			r.Dimensions.Width = toSize(v)
		}
		if v, ok := a.lookup("height", 1); ok {
			r.Dimensions.Height = toSize(v)
		}

		v, ok := a.lookup("depth", 2)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("cuboid requires a depth")
		}
		depth, err := toFloat64(v)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cuboid: depth: %w", err)
		}
		r.Dimensions.Depth = depth

		// A unit that is not a string is left empty and defaulted by the builder.
		if v, ok := a.lookup("unit", 3); ok {
			r.Dimensions.Unit, _ = toKeywordString(v)
		}

		if v, ok := a.kw["id"]; ok {
			id, err := toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("cuboid: id: %w", err)
			}
			r.ID = id
		}

		var target string
		if v, ok := a.kw["target"]; ok {
			target, err = toString(v)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("cuboid: target: %w", err)
			}
		}
		if v, ok := a.kw["perspective"]; ok {
			p, err := toPerspective(v, target)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("cuboid: perspective: %w", err)
			}
			r.Perspective = p
		} else if target != "" {
			return zygo.SexpNull, fmt.Errorf("cuboid: target given without a perspective value")
		}

		idx := b.add(r)
		return &sexpRequest{index: idx, id: r.ID}, nil
	})

	// -----------------------------------------------------------------------
	// (face-names)
	// -----------------------------------------------------------------------
	env.AddFunction("face_names", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		names := make([]zygo.Sexp, 0, cuboid.NumFaces)
		for _, f := range cuboid.Faces {
			names = append(names, &zygo.SexpStr{S: f.String()})
		}
		return zygo.MakeList(names), nil
	})

	// -----------------------------------------------------------------------
	// (face-transform :left 10 "px")
	// -----------------------------------------------------------------------
	env.AddFunction("face_transform", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) < 2 {
			return zygo.SexpNull, fmt.Errorf("face-transform requires a face and a depth")
		}
		f, err := toFace(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("face-transform: %w", err)
		}
		depth, err := toFloat64(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("face-transform: depth: %w", err)
		}
		unit := cuboid.DefaultUnit
		if len(args) > 2 {
			if unit, err = toKeywordString(args[2]); err != nil {
				return zygo.SexpNull, fmt.Errorf("face-transform: unit: %w", err)
			}
		}
		return &zygo.SexpStr{S: cuboid.Plan(f, depth, unit).Transform.CSS()}, nil
	})
}
