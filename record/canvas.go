package record

import (
	"image/color"
	"strings"

	"github.com/gogpu/gg"
)

// Canvas records drawing calls. Like gg.Context, it keeps a current matrix
// and stores path points after transforming them.
//
// The zero value is not usable; call New. Canvas is not safe for
// concurrent use.
type Canvas struct {
	ops    []Op
	matrix gg.Matrix
	stack  []gg.Matrix
	fail   map[OpKind]error
}

// New returns an empty recorder with the identity transform.
func New() *Canvas {
	return &Canvas{
		ops:    make([]Op, 0, 64),
		matrix: gg.Identity(),
	}
}

// FailOn makes every later call of kind (OpFill or OpStroke) return err.
// Pass a nil err to clear it.
func (c *Canvas) FailOn(kind OpKind, err error) {
	if c.fail == nil {
		c.fail = make(map[OpKind]error)
	}
	if err == nil {
		delete(c.fail, kind)
		return
	}
	c.fail[kind] = err
}

// Ops returns a copy of the recorded operations.
func (c *Canvas) Ops() []Op {
	out := make([]Op, len(c.ops))
	copy(out, c.ops)
	return out
}

// Count returns how many operations of kind were recorded.
func (c *Canvas) Count(kind OpKind) int {
	n := 0
	for _, o := range c.ops {
		if o.Kind == kind {
			n++
		}
	}
	return n
}

// Segments returns the number of recorded line and curve segments.
func (c *Canvas) Segments() int {
	return c.Count(OpLineTo) + c.Count(OpCubicTo)
}

// Texts returns the strings passed to DrawStringAnchored, in order.
func (c *Canvas) Texts() []string {
	var out []string
	for _, o := range c.ops {
		if o.Kind == OpText {
			out = append(out, o.Text)
		}
	}
	return out
}

// Depth returns the number of unmatched Push calls.
func (c *Canvas) Depth() int {
	return len(c.stack)
}

// Matrix returns the current transformation matrix.
func (c *Canvas) Matrix() gg.Matrix {
	return c.matrix
}

// Reset drops all recorded operations and restores the initial state.
// Failure injection set with FailOn is kept.
func (c *Canvas) Reset() {
	c.ops = c.ops[:0]
	c.matrix = gg.Identity()
	c.stack = c.stack[:0]
}

// String returns one operation per line.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, o := range c.ops {
		b.WriteString(o.String())
		b.WriteByte('\n')
	}
	return b.String()
}

func (c *Canvas) add(kind OpKind, args ...float64) {
	c.ops = append(c.ops, Op{Kind: kind, Args: args})
}

// Push saves the current matrix.
func (c *Canvas) Push() {
	c.stack = append(c.stack, c.matrix)
	c.add(OpPush)
}

// Pop restores the last saved matrix. Extra calls are ignored.
func (c *Canvas) Pop() {
	c.add(OpPop)
	if len(c.stack) == 0 {
		return
	}
	c.matrix = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

// Translate applies a translation.
func (c *Canvas) Translate(x, y float64) {
	c.matrix = c.matrix.Multiply(gg.Translate(x, y))
	c.add(OpTranslate, x, y)
}

// Rotate applies a rotation in radians.
func (c *Canvas) Rotate(angle float64) {
	c.matrix = c.matrix.Multiply(gg.Rotate(angle))
	c.add(OpRotate, angle)
}

// Transform multiplies the current matrix by m.
func (c *Canvas) Transform(m gg.Matrix) {
	c.matrix = c.matrix.Multiply(m)
	c.add(OpTransform, m.A, m.B, m.C, m.D, m.E, m.F)
}

// MoveTo records the start of a subpath.
func (c *Canvas) MoveTo(x, y float64) {
	p := c.matrix.TransformPoint(gg.Pt(x, y))
	c.add(OpMoveTo, p.X, p.Y)
}

// LineTo records a line segment.
func (c *Canvas) LineTo(x, y float64) {
	p := c.matrix.TransformPoint(gg.Pt(x, y))
	c.add(OpLineTo, p.X, p.Y)
}

// CubicTo records a cubic Bézier segment.
func (c *Canvas) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p1 := c.matrix.TransformPoint(gg.Pt(c1x, c1y))
	p2 := c.matrix.TransformPoint(gg.Pt(c2x, c2y))
	p := c.matrix.TransformPoint(gg.Pt(x, y))
	c.add(OpCubicTo, p1.X, p1.Y, p2.X, p2.Y, p.X, p.Y)
}

// ClosePath records closing the current subpath.
func (c *Canvas) ClosePath() {
	c.add(OpClosePath)
}

// SetColor records the source colour.
func (c *Canvas) SetColor(col color.Color) {
	c.ops = append(c.ops, Op{Kind: OpSetColor, Color: color.NRGBAModel.Convert(col).(color.NRGBA)})
}

// SetLineWidth records the stroke width.
func (c *Canvas) SetLineWidth(width float64) {
	c.add(OpSetLineWidth, width)
}

// SetLineCap records the line cap.
func (c *Canvas) SetLineCap(lineCap gg.LineCap) {
	c.add(OpSetLineCap, float64(lineCap))
}

// SetDash records a dash pattern.
func (c *Canvas) SetDash(lengths ...float64) {
	c.add(OpSetDash, append([]float64(nil), lengths...)...)
}

// ClearDash records removing the dash pattern.
func (c *Canvas) ClearDash() {
	c.add(OpClearDash)
}

// Fill records a fill.
func (c *Canvas) Fill() error {
	c.add(OpFill)
	return c.fail[OpFill]
}

// Stroke records a stroke.
func (c *Canvas) Stroke() error {
	c.add(OpStroke)
	return c.fail[OpStroke]
}

// DrawStringAnchored records text with its device-space anchor position.
func (c *Canvas) DrawStringAnchored(s string, x, y, ax, ay float64) {
	p := c.matrix.TransformPoint(gg.Pt(x, y))
	c.ops = append(c.ops, Op{Kind: OpText, Text: s, Args: []float64{p.X, p.Y, ax, ay}})
}
