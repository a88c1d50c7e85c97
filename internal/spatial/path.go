package spatial

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/golang/geo/r2"
)

// CurveSegments is the number of straight segments each cubic Bézier is
// flattened into.
const CurveSegments = 8

// ParsePath flattens an SVG path into a closed polygon.
// Supported commands are the absolute M, L, H, V, C and Z; the outlines used
// by the body map are written with these only.
func ParsePath(d string) ([]r2.Point, error) {
	tokens := tokenizePath(d)

	var (
		points  []r2.Point
		current r2.Point
		cmd     byte
	)

	next := func(i *int) (float64, error) {
		if *i >= len(tokens) {
			return 0, fmt.Errorf("unexpected end of path after %q", string(cmd))
		}
		v, err := strconv.ParseFloat(tokens[*i], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number %q in path: %w", tokens[*i], err)
		}
		*i++
		return v, nil
	}
	nextPoint := func(i *int) (r2.Point, error) {
		x, err := next(i)
		if err != nil {
			return r2.Point{}, err
		}
		y, err := next(i)
		if err != nil {
			return r2.Point{}, err
		}
		return r2.Point{X: x, Y: y}, nil
	}

	for i := 0; i < len(tokens); {
		tok := tokens[i]
		if isCommand(tok) {
			cmd = tok[0]
			i++
			if cmd == 'Z' || cmd == 'z' {
				continue
			}
		} else if cmd == 0 {
			return nil, fmt.Errorf("path must start with a command, got %q", tok)
		}

		switch cmd {
		case 'M', 'L':
			p, err := nextPoint(&i)
			if err != nil {
				return nil, err
			}
			points = append(points, p)
			current = p
		case 'H':
			x, err := next(&i)
			if err != nil {
				return nil, err
			}
			current = r2.Point{X: x, Y: current.Y}
			points = append(points, current)
		case 'V':
			y, err := next(&i)
			if err != nil {
				return nil, err
			}
			current = r2.Point{X: current.X, Y: y}
			points = append(points, current)
		case 'C':
			c1, err := nextPoint(&i)
			if err != nil {
				return nil, err
			}
			c2, err := nextPoint(&i)
			if err != nil {
				return nil, err
			}
			end, err := nextPoint(&i)
			if err != nil {
				return nil, err
			}
			points = append(points, flattenCubic(current, c1, c2, end)...)
			current = end
		case 'Z', 'z':
			return nil, fmt.Errorf("unexpected coordinates after close path")
		default:
			return nil, fmt.Errorf("unsupported path command %q", string(cmd))
		}
	}

	// The closing edge is implicit in the polygon, drop a repeated start point.
	if n := len(points); n > 1 && points[0] == points[n-1] {
		points = points[:n-1]
	}

	return points, nil
}

// flattenCubic samples a cubic Bézier, excluding its start point
func flattenCubic(p0, p1, p2, p3 r2.Point) []r2.Point {
	out := make([]r2.Point, 0, CurveSegments)
	for s := 1; s <= CurveSegments; s++ {
		t := float64(s) / CurveSegments
		mt := 1 - t
		a := mt * mt * mt
		b := 3 * mt * mt * t
		c := 3 * mt * t * t
		d := t * t * t
		out = append(out, r2.Point{
			X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
			Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
		})
	}
	return out
}

func isCommand(tok string) bool {
	return len(tok) == 1 && unicode.IsLetter(rune(tok[0]))
}

// tokenizePath splits a path into command letters and numbers
func tokenizePath(d string) []string {
	var tokens []string
	var b strings.Builder

	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}

	for _, r := range d {
		switch {
		case r == ',' || unicode.IsSpace(r):
			flush()
		case unicode.IsLetter(r) && r != 'e' && r != 'E':
			flush()
			tokens = append(tokens, string(r))
		case r == '-' && b.Len() > 0 && !strings.HasSuffix(strings.ToLower(b.String()), "e"):
			flush()
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	flush()

	return tokens
}
