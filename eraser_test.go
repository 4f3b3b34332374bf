package freehand

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// collinearStroke builds a horizontal stroke of n evenly spaced points at
// y=0.5, spanning x in [0,1].
func collinearStroke(n int) Stroke {
	pts := make([]Point, n)
	for i := range pts {
		pts[i] = Pt(float64(i)/float64(n-1), 0.5)
	}
	return Stroke{Points: pts, Style: DefaultStyle(), Interpolated: true}
}

func TestEraseAt_ZeroRadiusRemovesNothing(t *testing.T) {
	strokes := []Stroke{collinearStroke(5)}

	// Center exactly on a point: distance zero, still untouched.
	out := EraseAt(strokes, Pt(0.5, 0.5), 0)

	if diff := cmp.Diff(strokes, out); diff != "" {
		t.Errorf("radius 0 changed strokes (-want +got):\n%s", diff)
	}
}

func TestEraseAt_FullCoverageRemovesStroke(t *testing.T) {
	strokes := []Stroke{collinearStroke(5)}

	out := EraseAt(strokes, Pt(0.5, 0.5), 10)

	if len(out) != 0 {
		t.Errorf("len(out) = %d, want 0 fragments", len(out))
	}
}

func TestEraseAt_MiddlePointSplitsInTwo(t *testing.T) {
	// Five collinear points, middle one erased: exactly two fragments of
	// two points each.
	strokes := []Stroke{collinearStroke(5)}

	out := EraseAt(strokes, Pt(0.5, 0.5), 0.05)

	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2 fragments", len(out))
	}
	for i, frag := range out {
		if len(frag.Points) != 2 {
			t.Errorf("fragment %d has %d points, want 2", i, len(frag.Points))
		}
		if frag.Style != strokes[0].Style {
			t.Errorf("fragment %d style = %+v, want parent style", i, frag.Style)
		}
		if !frag.Interpolated {
			t.Errorf("fragment %d lost Interpolated flag", i)
		}
	}
}

func TestEraseAt_UntouchedStrokePassesThrough(t *testing.T) {
	strokes := []Stroke{collinearStroke(4)}

	out := EraseAt(strokes, Pt(0.5, 0.0), 0.1)

	if diff := cmp.Diff(strokes, out); diff != "" {
		t.Errorf("untouched stroke changed (-want +got):\n%s", diff)
	}
}

func TestEraseAt_CumulativeFragmentation(t *testing.T) {
	// A second erase operates on the fragments of the first.
	strokes := []Stroke{collinearStroke(9)}

	first := EraseAt(strokes, Pt(0.25, 0.5), 0.01)
	if len(first) != 2 {
		t.Fatalf("after first erase: %d fragments, want 2", len(first))
	}
	second := EraseAt(first, Pt(0.75, 0.5), 0.01)
	if len(second) != 3 {
		t.Fatalf("after second erase: %d fragments, want 3", len(second))
	}
}

func TestEraseAt_LeadingAndTrailingHits(t *testing.T) {
	// Erasing the first point leaves one fragment without it; erasing the
	// last point likewise. Neither produces empty fragments.
	strokes := []Stroke{collinearStroke(5)}

	out := EraseAt(strokes, Pt(0, 0.5), 0.05)
	if len(out) != 1 || len(out[0].Points) != 4 {
		t.Fatalf("leading hit: got %d fragments (first has %d points), want 1 fragment of 4",
			len(out), len(out[0].Points))
	}

	out = EraseAt(out, Pt(1, 0.5), 0.05)
	if len(out) != 1 || len(out[0].Points) != 3 {
		t.Fatalf("trailing hit: got %d fragments, want 1 fragment of 3 points", len(out))
	}
}

func TestEraseAt_FragmentsDoNotAliasParent(t *testing.T) {
	strokes := []Stroke{collinearStroke(5)}

	out := EraseAt(strokes, Pt(0.5, 0.5), 0.05)

	out[0].Points[0].X = 42
	if strokes[0].Points[0].X == 42 {
		t.Error("mutating a fragment changed the parent stroke")
	}
}

func TestEraseAt_DropsImportedSkippedPoints(t *testing.T) {
	s := collinearStroke(5)
	s.Points[1].Skipped = true
	out := EraseAt([]Stroke{s}, Pt(0, 0), 0)

	if len(out) != 2 {
		t.Fatalf("len(out) = %d, want 2 fragments around the skipped point", len(out))
	}
	if len(out[0].Points) != 1 || len(out[1].Points) != 3 {
		t.Errorf("fragment sizes = %d, %d; want 1 and 3",
			len(out[0].Points), len(out[1].Points))
	}
}

func TestEraseAt_MultipleStrokesLinearScan(t *testing.T) {
	strokes := []Stroke{collinearStroke(5), collinearStroke(5)}
	// Hit the middle of both.
	out := EraseAt(strokes, Pt(0.5, 0.5), 0.05)
	if len(out) != 4 {
		t.Errorf("len(out) = %d, want 4 fragments (2 per stroke)", len(out))
	}
}
