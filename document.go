package freehand

// Document owns the ordered stroke list and the undo history. Stroke order
// is drawing order; redraw always iterates in this order so later strokes
// paint over earlier ones.
//
// The stroke list and the undone stack are exclusively owned by the
// Document: accessors hand out deep copies, and all mutation goes through
// its methods, which is what keeps the undo/redo invariants intact.
type Document struct {
	strokes []Stroke
	undone  []Stroke
}

// NewDocument creates an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Len returns the number of strokes.
func (d *Document) Len() int {
	return len(d.strokes)
}

// Strokes returns a deep copy of the stroke list in drawing order.
func (d *Document) Strokes() []Stroke {
	return cloneStrokes(d.strokes)
}

// view returns the live stroke list for rendering. Callers must not retain
// or mutate it.
func (d *Document) view() []Stroke {
	return d.strokes
}

// Push commits a new stroke. Committing invalidates the redo history:
// anything undone before this point can no longer be redone, which keeps
// redo from resurrecting strokes out of causal order.
func (d *Document) Push(s Stroke) {
	d.strokes = append(d.strokes, s)
	d.undone = d.undone[:0]
}

// AppendPoint adds a point to the in-progress (last) stroke. It is a no-op
// on an empty document.
func (d *Document) AppendPoint(p Point) {
	if len(d.strokes) == 0 {
		return
	}
	last := &d.strokes[len(d.strokes)-1]
	last.Points = append(last.Points, p)
}

// Last returns a copy of the last stroke and whether one exists.
func (d *Document) Last() (Stroke, bool) {
	if len(d.strokes) == 0 {
		return Stroke{}, false
	}
	return d.strokes[len(d.strokes)-1].Clone(), true
}

// ReplaceLast swaps the last stroke for its finalized form. Used once per
// stroke, when the smoother replaces the raw points. No-op when empty.
func (d *Document) ReplaceLast(s Stroke) {
	if len(d.strokes) == 0 {
		return
	}
	d.strokes[len(d.strokes)-1] = s
}

// ReplaceAll swaps the entire stroke list, as the eraser does after
// re-segmentation. When the replacement actually changed something the
// swap counts as a commit and clears the redo history.
func (d *Document) ReplaceAll(strokes []Stroke, changed bool) {
	d.strokes = strokes
	if changed {
		d.undone = d.undone[:0]
	}
}

// Undo pops the most recent stroke onto the undone stack. It reports
// whether anything changed; undoing an empty document is a no-op.
func (d *Document) Undo() bool {
	if len(d.strokes) == 0 {
		return false
	}
	last := d.strokes[len(d.strokes)-1]
	d.strokes = d.strokes[:len(d.strokes)-1]
	d.undone = append(d.undone, last)
	return true
}

// Redo pushes the most recently undone stroke back onto the stroke list.
// It reports whether anything changed; redo with nothing undone is a no-op.
func (d *Document) Redo() bool {
	if len(d.undone) == 0 {
		return false
	}
	last := d.undone[len(d.undone)-1]
	d.undone = d.undone[:len(d.undone)-1]
	d.strokes = append(d.strokes, last)
	return true
}

// Clear empties the stroke list and the undo history. Cleared strokes are
// not offered to the undo stack: clear is a hard reset, and an undo right
// after it is a no-op.
func (d *Document) Clear() {
	d.strokes = nil
	d.undone = nil
}
