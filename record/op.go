// Package record provides a drawing context that records primitive calls
// instead of rasterizing them.
//
// It implements the method set of geomtool.Canvas and is meant for tests
// that assert on the exact sequence of primitives a view issues:
//
//	rec := record.New()
//	_ = view.Draw(rec)
//	if rec.Count(record.OpStroke) == 0 { ... }
package record

import (
	"fmt"
	"image/color"
	"strings"
)

// OpKind identifies a recorded primitive.
type OpKind uint8

const (
	// State operations
	OpPush      OpKind = iota // Save state
	OpPop                     // Restore state
	OpTranslate               // Translate the current matrix
	OpRotate                  // Rotate the current matrix
	OpTransform               // Multiply the current matrix

	// Path operations
	OpMoveTo    // Start a subpath
	OpLineTo    // Line segment
	OpCubicTo   // Cubic Bézier segment
	OpClosePath // Close the subpath

	// Style operations
	OpSetColor     // Set the source colour
	OpSetLineWidth // Set the stroke width
	OpSetLineCap   // Set the line cap
	OpSetDash      // Set a dash pattern
	OpClearDash    // Remove the dash pattern

	// Drawing operations
	OpFill   // Fill and clear the path
	OpStroke // Stroke and clear the path
	OpText   // Draw anchored text
)

var opKindNames = [...]string{
	OpPush:         "Push",
	OpPop:          "Pop",
	OpTranslate:    "Translate",
	OpRotate:       "Rotate",
	OpTransform:    "Transform",
	OpMoveTo:       "MoveTo",
	OpLineTo:       "LineTo",
	OpCubicTo:      "CubicTo",
	OpClosePath:    "ClosePath",
	OpSetColor:     "SetColor",
	OpSetLineWidth: "SetLineWidth",
	OpSetLineCap:   "SetLineCap",
	OpSetDash:      "SetDash",
	OpClearDash:    "ClearDash",
	OpFill:         "Fill",
	OpStroke:       "Stroke",
	OpText:         "Text",
}

// String returns the name of the operation.
func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "Unknown"
}

// IsPath reports whether k adds a segment to the current path.
func (k OpKind) IsPath() bool {
	return k >= OpMoveTo && k <= OpClosePath
}

// Op is one recorded call.
type Op struct {
	Kind OpKind
	// Args holds the numeric arguments in call order.
	// Points passed to path operations are already in device space.
	Args []float64
	// Text is set for OpText.
	Text string
	// Color is set for OpSetColor.
	Color color.NRGBA
}

// String formats the operation for diffs in test failures.
func (o Op) String() string {
	var b strings.Builder
	b.WriteString(o.Kind.String())
	switch o.Kind {
	case OpText:
		fmt.Fprintf(&b, "(%q", o.Text)
		for _, a := range o.Args {
			fmt.Fprintf(&b, ", %.4g", a)
		}
		b.WriteByte(')')
	case OpSetColor:
		fmt.Fprintf(&b, "(%d,%d,%d,%d)", o.Color.R, o.Color.G, o.Color.B, o.Color.A)
	default:
		if len(o.Args) == 0 {
			break
		}
		b.WriteByte('(')
		for i, a := range o.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%.4g", a)
		}
		b.WriteByte(')')
	}
	return b.String()
}
