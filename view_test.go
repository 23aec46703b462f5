package geomtool

import (
	"errors"
	"strings"
	"testing"

	"github.com/gogpu/geomtool/record"
	"github.com/gogpu/gg"
	"golang.org/x/text/language"
)

// testTool is a mutable Tool whose guiding edge runs along the local x axis.
type testTool struct {
	kind     Kind
	height   float64
	rotation float64
	pos      gg.Point
}

func newTestTool(k Kind) *testTool {
	return &testTool{kind: k, height: 4, pos: gg.Pt(100, 100)}
}

func (t *testTool) Kind() Kind            { return t.kind }
func (t *testTool) Height() float64       { return t.height }
func (t *testTool) Rotation() float64     { return t.rotation }
func (t *testTool) Translation() gg.Point { return t.pos }

func (t *testTool) Matrix() gg.Matrix {
	return gg.Translate(t.pos.X, t.pos.Y).
		Multiply(gg.Rotate(t.rotation)).
		Multiply(gg.Scale(CM, CM))
}

func (t *testTool) LongestEdge() (gg.Point, gg.Point) {
	m := t.Matrix()
	return m.TransformPoint(gg.Pt(-t.height, 0)), m.TransformPoint(gg.Pt(t.height, 0))
}

func (t *testTool) Bounds() gg.Rect {
	return TransformRect(t.Matrix(), gg.NewRect(gg.Pt(-t.height, 0), gg.Pt(t.height, t.height)))
}

type testHost struct {
	rects []gg.Rect
}

func (h *testHost) FlagDirtyRegion(r gg.Rect) {
	h.rects = append(h.rects, r)
}

type testSink struct {
	strokes []*Stroke
}

func (s *testSink) AddStroke(st *Stroke) {
	s.strokes = append(s.strokes, st)
}

func newTestView(t *testing.T, tool Tool, opts ...Option) (*View, *testHost) {
	t.Helper()
	h := &testHost{}
	v, err := NewView(tool, h, opts...)
	if err != nil {
		t.Fatalf("NewView() error = %v", err)
	}
	return v, h
}

var testStyle = StrokeStyle{Width: 2, Color: gg.Black}

// strokeTail returns the path points of the last stroked subpath.
func strokeTail(ops []record.Op) []gg.Point {
	var pts []gg.Point
	for i := len(ops) - 1; i >= 0; i-- {
		switch ops[i].Kind {
		case record.OpMoveTo:
			return append([]gg.Point{gg.Pt(ops[i].Args[0], ops[i].Args[1])}, pts...)
		case record.OpLineTo:
			pts = append([]gg.Point{gg.Pt(ops[i].Args[0], ops[i].Args[1])}, pts...)
		}
	}
	return nil
}

func TestNewViewErrors(t *testing.T) {
	if _, err := NewView(nil, &testHost{}); !errors.Is(err, ErrNilTool) {
		t.Errorf("nil tool: error = %v, want ErrNilTool", err)
	}
	if _, err := NewView(newTestTool(Ruler), nil); !errors.Is(err, ErrNilHost) {
		t.Errorf("nil host: error = %v, want ErrNilHost", err)
	}
	bad := newTestTool(Kind(200))
	if _, err := NewView(bad, &testHost{}); !errors.Is(err, ErrUnknownKind) {
		t.Errorf("unknown kind: error = %v, want ErrUnknownKind", err)
	}
}

func TestUpdateThenDirtyRegionRepaintsOnce(t *testing.T) {
	tool := newTestTool(Setsquare)
	v, h := newTestView(t, tool)

	tool.height = 6
	tool.rotation = 0.3
	v.OnUpdateValues(tool.height, tool.rotation, tool.Matrix())
	if len(h.rects) != 0 {
		t.Fatalf("OnUpdateValues flagged %d regions, want 0", len(h.rects))
	}

	r := gg.NewRect(gg.Pt(12.25, -3), gg.Pt(480.5, 301.75))
	v.OnDirtyRegion(r)

	if len(h.rects) != 1 {
		t.Fatalf("flagged %d regions, want 1", len(h.rects))
	}
	if h.rects[0] != r {
		t.Errorf("flagged %+v, want %+v", h.rects[0], r)
	}
}

func TestUpdateValuesChangesDrawing(t *testing.T) {
	tool := newTestTool(Ruler)
	v, _ := newTestView(t, tool)

	before := record.New()
	if err := v.Draw(before); err != nil {
		t.Fatal(err)
	}

	// The view draws from its cache, not from the tool.
	tool.pos = gg.Pt(300, 300)
	same := record.New()
	if err := v.Draw(same); err != nil {
		t.Fatal(err)
	}
	if before.String() != same.String() {
		t.Error("Draw() changed without OnUpdateValues")
	}

	v.OnUpdateValues(tool.height, tool.rotation, tool.Matrix())
	after := record.New()
	if err := v.Draw(after); err != nil {
		t.Fatal(err)
	}
	if before.String() == after.String() {
		t.Error("Draw() unchanged after OnUpdateValues")
	}
}

func TestFinalization(t *testing.T) {
	tool := newTestTool(Protractor)
	v, h := newTestView(t, tool)

	r := gg.NewRect(gg.Pt(0, 0), gg.Pt(250, 180))
	v.OnFinalize(r)

	if len(h.rects) != 1 || h.rects[0] != r {
		t.Fatalf("flagged %v, want [%v]", h.rects, r)
	}
	if !v.Detached() {
		t.Error("Detached() = false after OnFinalize")
	}

	rec := record.New()
	if err := v.Draw(rec); err != nil {
		t.Fatalf("Draw() after finalize error = %v", err)
	}
	if n := len(rec.Ops()); n != 0 {
		t.Errorf("Draw() after finalize issued %d ops, want 0:\n%s", n, rec)
	}

	// Everything after detachment is ignored.
	v.OnFinalize(r)
	v.OnDirtyRegion(r)
	v.OnUpdateValues(9, 1, gg.Identity())
	if len(h.rects) != 1 {
		t.Errorf("flagged %d regions after detachment, want 1", len(h.rects))
	}
	if v.IsViewOf(tool) {
		t.Error("IsViewOf() = true after finalize")
	}
	if err := v.BeginStroke(gg.Pt(0, 0), SnapAlongEdge, testStyle); !errors.Is(err, ErrDetached) {
		t.Errorf("BeginStroke() error = %v, want ErrDetached", err)
	}
	if err := v.ExtendStroke(gg.Pt(0, 0)); !errors.Is(err, ErrDetached) {
		t.Errorf("ExtendStroke() error = %v, want ErrDetached", err)
	}
}

func TestFinalizationKeepsStroke(t *testing.T) {
	tool := newTestTool(Ruler)
	v, _ := newTestView(t, tool)

	if err := v.BeginStroke(gg.Pt(90, 120), SnapAlongEdge, testStyle); err != nil {
		t.Fatal(err)
	}
	if err := v.ExtendStroke(gg.Pt(150, 80)); err != nil {
		t.Fatal(err)
	}
	v.OnFinalize(tool.Bounds())

	rec := record.New()
	if err := v.Draw(rec); err != nil {
		t.Fatal(err)
	}
	if got := rec.Count(record.OpStroke); got != 1 {
		t.Errorf("Stroke ops = %d, want 1", got)
	}
	if got := rec.Count(record.OpFill); got != 0 {
		t.Errorf("Fill ops = %d, want 0 (no body after finalize)", got)
	}
	pts := strokeTail(rec.Ops())
	if len(pts) != 2 || !near(pts[0].X, 90) || !near(pts[1].X, 150) {
		t.Errorf("stroke = %v, want (90,100)-(150,100)", pts)
	}

	if s := v.CommitStroke(); s == nil {
		t.Error("CommitStroke() after finalize = nil, want stroke")
	}
}

func TestIsViewOf(t *testing.T) {
	h := &testHost{}
	t1, t2 := newTestTool(Ruler), newTestTool(Ruler)
	v1, err := NewView(t1, h)
	if err != nil {
		t.Fatal(err)
	}
	v2, err := NewView(t2, h)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		v    *View
		o    Overlay
		want bool
	}{
		{"v1 of t1", v1, t1, true},
		{"v1 of t2", v1, t2, false},
		{"v2 of t1", v2, t1, false},
		{"v2 of t2", v2, t2, true},
		{"nil overlay", v1, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.IsViewOf(tt.o); got != tt.want {
				t.Errorf("IsViewOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDrawIdempotent(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			tool := newTestTool(k)
			tool.rotation = 0.7
			v, _ := newTestView(t, tool)
			if err := v.BeginStroke(gg.Pt(60, 90), SnapAlongEdge, testStyle); err != nil {
				t.Fatal(err)
			}
			if err := v.ExtendStroke(gg.Pt(140, 130)); err != nil {
				t.Fatal(err)
			}

			first, second := record.New(), record.New()
			if err := v.Draw(first); err != nil {
				t.Fatal(err)
			}
			if err := v.Draw(second); err != nil {
				t.Fatal(err)
			}
			if first.String() != second.String() {
				t.Error("two Draw() calls issued different primitives")
			}
		})
	}
}

func TestDrawBalancesState(t *testing.T) {
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			v, _ := newTestView(t, newTestTool(k))
			rec := record.New()
			if err := v.Draw(rec); err != nil {
				t.Fatal(err)
			}
			if rec.Depth() != 0 {
				t.Errorf("Depth() = %d after Draw, want 0", rec.Depth())
			}
			if rec.Count(record.OpPush) != rec.Count(record.OpPop) {
				t.Errorf("Push = %d, Pop = %d", rec.Count(record.OpPush), rec.Count(record.OpPop))
			}
			if rec.Count(record.OpFill) == 0 || rec.Count(record.OpStroke) == 0 {
				t.Errorf("body not drawn:\n%s", rec)
			}
			if len(rec.Texts()) == 0 {
				t.Error("no labels drawn")
			}
		})
	}
}

func TestDrawBodyBeforeStroke(t *testing.T) {
	v, _ := newTestView(t, newTestTool(Setsquare))
	if err := v.BeginStroke(gg.Pt(60, 90), SnapAlongEdge, testStyle); err != nil {
		t.Fatal(err)
	}
	if err := v.ExtendStroke(gg.Pt(140, 130)); err != nil {
		t.Fatal(err)
	}

	rec := record.New()
	if err := v.Draw(rec); err != nil {
		t.Fatal(err)
	}
	ops := rec.Ops()
	if len(ops) < 3 {
		t.Fatalf("got %d ops", len(ops))
	}
	tail := ops[len(ops)-3:]
	if tail[0].Kind != record.OpMoveTo || tail[1].Kind != record.OpLineTo || tail[2].Kind != record.OpStroke {
		t.Errorf("last ops = %v %v %v, want MoveTo LineTo Stroke", tail[0].Kind, tail[1].Kind, tail[2].Kind)
	}
	if ops[0].Kind == record.OpMoveTo {
		t.Error("stroke drawn before body")
	}
}

func TestDrawPropagatesCanvasError(t *testing.T) {
	boom := errors.New("boom")
	for _, k := range Kinds() {
		t.Run(k.String(), func(t *testing.T) {
			v, _ := newTestView(t, newTestTool(k))
			rec := record.New()
			rec.FailOn(record.OpFill, boom)

			err := v.Draw(rec)
			if !errors.Is(err, boom) {
				t.Fatalf("Draw() error = %v, want boom", err)
			}
			if !strings.Contains(err.Error(), k.String()) {
				t.Errorf("error %q does not name the tool", err)
			}
			if rec.Depth() != 0 {
				t.Errorf("Depth() = %d after failed Draw, want 0", rec.Depth())
			}
		})
	}
}

func TestDegenerateEdgeDrawsNothing(t *testing.T) {
	tool := newTestTool(Ruler)
	tool.height = 0
	v, h := newTestView(t, tool)

	if err := v.BeginStroke(gg.Pt(10, 10), SnapAlongEdge, testStyle); err != nil {
		t.Fatal(err)
	}
	if err := v.ExtendStroke(gg.Pt(50, 60)); err != nil {
		t.Fatal(err)
	}
	if s := v.Stroke(); s == nil || !s.Empty() {
		t.Errorf("Stroke() = %v, want empty stroke", s)
	}
	if len(h.rects) != 0 {
		t.Errorf("flagged %v for an empty stroke", h.rects)
	}

	rec := record.New()
	if err := v.Draw(rec); err != nil {
		t.Fatalf("Draw() error = %v", err)
	}
	if n := rec.Segments(); n != 0 {
		t.Errorf("Segments() = %d, want 0", n)
	}
	if v.CommitStroke() != nil {
		t.Error("CommitStroke() of empty stroke != nil")
	}
}

func TestExtendStroke(t *testing.T) {
	tests := []struct {
		name  string
		mode  SnapMode
		want0 gg.Point
		want1 gg.Point
	}{
		{"along edge", SnapAlongEdge, gg.Pt(90, 100), gg.Pt(150, 100)},
		{"to midpoint", SnapToMidpoint, gg.Pt(150, 100), gg.Pt(100, 100)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, h := newTestView(t, newTestTool(Ruler))
			if err := v.BeginStroke(gg.Pt(90, 120), tt.mode, testStyle); err != nil {
				t.Fatal(err)
			}
			if err := v.ExtendStroke(gg.Pt(150, 80)); err != nil {
				t.Fatal(err)
			}

			pts := v.Stroke().Points()
			if len(pts) != 2 {
				t.Fatalf("Points() = %v", pts)
			}
			if !ptNear(pts[0], tt.want0) || !ptNear(pts[1], tt.want1) {
				t.Errorf("Points() = %v, want [%v %v]", pts, tt.want0, tt.want1)
			}
			if len(h.rects) != 1 || h.rects[0] != v.Stroke().Bounds() {
				t.Errorf("flagged %v, want [%v]", h.rects, v.Stroke().Bounds())
			}
		})
	}
}

func TestExtendStrokeFlagsOldAndNew(t *testing.T) {
	v, h := newTestView(t, newTestTool(Ruler))
	_ = v.BeginStroke(gg.Pt(90, 100), SnapAlongEdge, testStyle)
	_ = v.ExtendStroke(gg.Pt(150, 100))
	old := v.Stroke().Bounds()
	_ = v.ExtendStroke(gg.Pt(60, 100))

	if len(h.rects) != 2 {
		t.Fatalf("flagged %d regions, want 2", len(h.rects))
	}
	want := old.Union(v.Stroke().Bounds())
	if h.rects[1] != want {
		t.Errorf("flagged %+v, want %+v", h.rects[1], want)
	}
}

func TestExtendWithoutBegin(t *testing.T) {
	v, _ := newTestView(t, newTestTool(Compass))
	if err := v.ExtendStroke(gg.Pt(1, 1)); !errors.Is(err, ErrNoStroke) {
		t.Errorf("ExtendStroke() error = %v, want ErrNoStroke", err)
	}
}

func TestDrawFollowsMovedEdge(t *testing.T) {
	tool := newTestTool(Ruler)
	v, _ := newTestView(t, tool)
	_ = v.BeginStroke(gg.Pt(90, 120), SnapAlongEdge, testStyle)
	_ = v.ExtendStroke(gg.Pt(150, 80))

	tool.pos = gg.Pt(100, 200)
	v.OnUpdateValues(tool.height, tool.rotation, tool.Matrix())

	rec := record.New()
	if err := v.Draw(rec); err != nil {
		t.Fatal(err)
	}
	drawn := strokeTail(rec.Ops())
	if len(drawn) != 2 || !near(drawn[0].Y, 200) || !near(drawn[1].Y, 200) {
		t.Fatalf("stroke = %v, want it on y=200", drawn)
	}

	// The committed stroke is the one last drawn.
	got := v.CommitStroke().Points()
	if len(got) != len(drawn) {
		t.Fatalf("committed %v, drawn %v", got, drawn)
	}
	for i := range got {
		if !ptNear(got[i], drawn[i]) {
			t.Errorf("committed %v, drawn %v", got, drawn)
		}
	}
}

func TestDrawUsesCachedEdge(t *testing.T) {
	tool := newTestTool(Ruler)
	v, _ := newTestView(t, tool)
	_ = v.BeginStroke(gg.Pt(90, 120), SnapAlongEdge, testStyle)
	_ = v.ExtendStroke(gg.Pt(150, 80))

	// The tool moves but has not notified yet: body and stroke stay put.
	tool.pos = gg.Pt(100, 200)
	rec := record.New()
	if err := v.Draw(rec); err != nil {
		t.Fatal(err)
	}
	pts := strokeTail(rec.Ops())
	if len(pts) != 2 || !near(pts[0].Y, 100) || !near(pts[1].Y, 100) {
		t.Errorf("stroke = %v, want it on the cached edge y=100", pts)
	}
}

func TestFinalizeAfterMoveKeepsDrawnStroke(t *testing.T) {
	tool := newTestTool(Ruler)
	v, _ := newTestView(t, tool)
	_ = v.BeginStroke(gg.Pt(90, 120), SnapAlongEdge, testStyle)
	_ = v.ExtendStroke(gg.Pt(150, 80))
	tool.pos = gg.Pt(100, 160)
	v.OnUpdateValues(tool.height, tool.rotation, tool.Matrix())

	before := record.New()
	_ = v.Draw(before)
	v.OnFinalize(tool.Bounds())
	after := record.New()
	_ = v.Draw(after)

	b, a := strokeTail(before.Ops()), strokeTail(after.Ops())
	if len(a) != 2 || !ptNear(a[0], b[0]) || !ptNear(a[1], b[1]) {
		t.Errorf("stroke after finalize = %v, before = %v", a, b)
	}
}

func TestCommitStroke(t *testing.T) {
	v, h := newTestView(t, newTestTool(Ruler))
	if v.CommitStroke() != nil {
		t.Error("CommitStroke() without stroke != nil")
	}

	_ = v.BeginStroke(gg.Pt(90, 120), SnapAlongEdge, testStyle)
	_ = v.ExtendStroke(gg.Pt(150, 80))
	want := v.Stroke()
	h.rects = nil

	got := v.CommitStroke()
	if got != want {
		t.Fatalf("CommitStroke() = %p, want %p", got, want)
	}
	if v.Stroke() != nil {
		t.Error("view still holds the stroke after commit")
	}
	if len(h.rects) != 1 || h.rects[0] != got.Bounds() {
		t.Errorf("flagged %v, want [%v]", h.rects, got.Bounds())
	}
	if got.Style() != testStyle {
		t.Errorf("Style() = %+v, want %+v", got.Style(), testStyle)
	}
	if err := v.ExtendStroke(gg.Pt(1, 1)); !errors.Is(err, ErrNoStroke) {
		t.Errorf("ExtendStroke() after commit error = %v, want ErrNoStroke", err)
	}
}

func TestCommitTo(t *testing.T) {
	v, _ := newTestView(t, newTestTool(Protractor))
	sink := &testSink{}
	if v.CommitTo(sink) {
		t.Error("CommitTo() without stroke = true")
	}

	_ = v.BeginStroke(gg.Pt(50, 100), SnapToMidpoint, testStyle)
	_ = v.ExtendStroke(gg.Pt(30, 140))
	s := v.Stroke()
	if !v.CommitTo(sink) {
		t.Fatal("CommitTo() = false")
	}
	if len(sink.strokes) != 1 || sink.strokes[0] != s {
		t.Errorf("sink got %v, want [%p]", sink.strokes, s)
	}
	if v.CommitTo(sink) {
		t.Error("second CommitTo() = true")
	}
}

func TestBeginStrokeDiscardsPrevious(t *testing.T) {
	v, h := newTestView(t, newTestTool(Ruler))
	_ = v.BeginStroke(gg.Pt(90, 120), SnapAlongEdge, testStyle)
	_ = v.ExtendStroke(gg.Pt(150, 80))
	old := v.Stroke().Bounds()
	h.rects = nil

	_ = v.BeginStroke(gg.Pt(0, 0), SnapAlongEdge, testStyle)
	if v.Stroke() != nil {
		t.Error("BeginStroke() kept the previous stroke")
	}
	if len(h.rects) != 1 || h.rects[0] != old {
		t.Errorf("flagged %v, want [%v]", h.rects, old)
	}
}

func TestLabelLanguage(t *testing.T) {
	tests := []struct {
		lang language.Tag
		want string
	}{
		{language.English, "12.5°"},
		{language.German, "12,5°"},
	}
	for _, tt := range tests {
		t.Run(tt.lang.String(), func(t *testing.T) {
			tool := newTestTool(Setsquare)
			tool.rotation = Rad(12.5)
			v, _ := newTestView(t, tool, WithLanguage(tt.lang))

			rec := record.New()
			if err := v.Draw(rec); err != nil {
				t.Fatal(err)
			}
			found := false
			for _, s := range rec.Texts() {
				if s == tt.want {
					found = true
				}
			}
			if !found {
				t.Errorf("labels %q do not contain %q", rec.Texts(), tt.want)
			}
		})
	}
}

func TestWithLabelsOff(t *testing.T) {
	for _, k := range Kinds() {
		v, _ := newTestView(t, newTestTool(k), WithLabels(false))
		rec := record.New()
		if err := v.Draw(rec); err != nil {
			t.Fatal(err)
		}
		if n := rec.Count(record.OpText); n != 0 {
			t.Errorf("%v: %d labels drawn with labels off", k, n)
		}
	}
}

func TestWithTheme(t *testing.T) {
	theme := DefaultTheme
	theme.Body = gg.RGBA{R: 1, G: 0, B: 0, A: 1}
	v, _ := newTestView(t, newTestTool(Compass), WithTheme(theme))

	rec := record.New()
	if err := v.Draw(rec); err != nil {
		t.Fatal(err)
	}
	for _, op := range rec.Ops() {
		if op.Kind == record.OpSetColor {
			if op.Color.R != 255 || op.Color.G != 0 || op.Color.B != 0 {
				t.Errorf("first colour = %v, want red body", op.Color)
			}
			return
		}
	}
	t.Error("no colour set")
}
