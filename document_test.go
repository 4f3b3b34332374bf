package freehand

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testStroke(x float64) Stroke {
	return Stroke{
		Points:       []Point{Pt(x, 0.1), Pt(x, 0.9)},
		Style:        DefaultStyle(),
		Interpolated: true,
	}
}

func TestDocument_UndoRedoRestoresExactStroke(t *testing.T) {
	d := NewDocument()
	s := testStroke(0.3)
	d.Push(s)

	if !d.Undo() {
		t.Fatal("Undo() = false, want true")
	}
	if d.Len() != 0 {
		t.Fatalf("Len() after undo = %d, want 0", d.Len())
	}
	if !d.Redo() {
		t.Fatal("Redo() = false, want true")
	}

	got := d.Strokes()
	if diff := cmp.Diff([]Stroke{s}, got); diff != "" {
		t.Errorf("redo did not restore the stroke (-want +got):\n%s", diff)
	}
}

func TestDocument_UndoOnEmptyIsNoop(t *testing.T) {
	d := NewDocument()
	if d.Undo() {
		t.Error("Undo() on empty document = true, want false")
	}
	if d.Redo() {
		t.Error("Redo() with nothing undone = true, want false")
	}
}

func TestDocument_PushAfterUndoClearsRedo(t *testing.T) {
	d := NewDocument()
	d.Push(testStroke(0.1))
	d.Push(testStroke(0.2))
	d.Undo()

	// Committing a new stroke invalidates the undone stack.
	d.Push(testStroke(0.3))

	if d.Redo() {
		t.Error("Redo() after a new commit = true, want no-op")
	}
	if d.Len() != 2 {
		t.Errorf("Len() = %d, want 2", d.Len())
	}
}

func TestDocument_ReplaceAllCommitClearsRedo(t *testing.T) {
	d := NewDocument()
	d.Push(testStroke(0.1))
	d.Push(testStroke(0.2))
	d.Undo()

	// An erase that changed the document counts as a commit.
	d.ReplaceAll([]Stroke{testStroke(0.5)}, true)

	if d.Redo() {
		t.Error("Redo() after committing replace = true, want no-op")
	}
}

func TestDocument_ReplaceAllWithoutChangeKeepsRedo(t *testing.T) {
	d := NewDocument()
	d.Push(testStroke(0.1))
	d.Push(testStroke(0.2))
	d.Undo()

	d.ReplaceAll(d.Strokes(), false)

	if !d.Redo() {
		t.Error("Redo() after no-op replace = false, want true")
	}
}

func TestDocument_ClearThenUndoIsNoop(t *testing.T) {
	d := NewDocument()
	d.Push(testStroke(0.1))
	d.Push(testStroke(0.2))

	d.Clear()

	if d.Len() != 0 {
		t.Fatalf("Len() after clear = %d, want 0", d.Len())
	}
	// Clear does not feed the undo stack: it is a hard reset.
	if d.Undo() {
		t.Error("Undo() after clear = true, want no-op")
	}
}

func TestDocument_AppendPoint(t *testing.T) {
	d := NewDocument()
	d.AppendPoint(Pt(0.5, 0.5)) // no stroke yet: no-op
	if d.Len() != 0 {
		t.Fatal("AppendPoint on empty document created a stroke")
	}

	d.Push(NewStroke(DefaultStyle(), Pt(0.1, 0.1)))
	d.AppendPoint(Pt(0.2, 0.2))

	last, ok := d.Last()
	if !ok {
		t.Fatal("Last() reported no stroke")
	}
	if len(last.Points) != 2 {
		t.Errorf("len(last.Points) = %d, want 2", len(last.Points))
	}
}

func TestDocument_ReplaceLast(t *testing.T) {
	d := NewDocument()
	d.Push(testStroke(0.1))
	d.Push(testStroke(0.2))

	repl := testStroke(0.9)
	d.ReplaceLast(repl)

	got := d.Strokes()
	if diff := cmp.Diff(repl, got[1]); diff != "" {
		t.Errorf("ReplaceLast (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(testStroke(0.1), got[0]); diff != "" {
		t.Errorf("ReplaceLast touched earlier stroke (-want +got):\n%s", diff)
	}
}

func TestDocument_StrokesIsSnapshot(t *testing.T) {
	d := NewDocument()
	d.Push(testStroke(0.1))

	snap := d.Strokes()
	snap[0].Points[0].X = 42
	snap[0].Style.Color = "#ff0000"

	got := d.Strokes()
	if got[0].Points[0].X == 42 || got[0].Style.Color == "#ff0000" {
		t.Error("mutating a snapshot changed live document data")
	}
}
