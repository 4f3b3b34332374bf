package freehand

import (
	"encoding/json"
	"fmt"
	"io"
)

// Record is the persisted form of a document: pure data, no behavior.
//
// AspectRatio is informational only. Import never uses it to rescale
// points; a document drawn on one aspect ratio simply renders stretched on
// another, exactly as the normalized coordinates dictate.
type Record struct {
	AspectRatio float64        `json:"aspectRatio,omitempty"`
	Strokes     []StrokeRecord `json:"strokes"`
}

// StrokeRecord is the persisted form of one stroke. Size is the normalized
// stroke width; the field name is part of the stored format.
type StrokeRecord struct {
	Points              []Point  `json:"points"`
	Size                float64  `json:"size"`
	Color               string   `json:"color"`
	Cap                 LineCap  `json:"cap"`
	Join                LineJoin `json:"join"`
	MiterLimit          float64  `json:"miterLimit"`
	IsInterpolationDone bool     `json:"isInterpolationDone"`
}

// Encode writes the record as JSON.
func (r Record) Encode(w io.Writer) error {
	if err := json.NewEncoder(w).Encode(r); err != nil {
		return fmt.Errorf("freehand: encode record: %w", err)
	}
	return nil
}

// DecodeRecord reads a JSON record. A document without a strokes field
// decodes to an empty record rather than an error.
func DecodeRecord(r io.Reader) (Record, error) {
	var rec Record
	if err := json.NewDecoder(r).Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("freehand: decode record: %w", err)
	}
	return rec, nil
}

// recordStroke converts a model stroke to its persisted form.
func recordStroke(s Stroke) StrokeRecord {
	return StrokeRecord{
		Points:              append([]Point(nil), s.Points...),
		Size:                s.Style.Width,
		Color:               s.Style.Color,
		Cap:                 s.Style.Cap,
		Join:                s.Style.Join,
		MiterLimit:          s.Style.MiterLimit,
		IsInterpolationDone: s.Interpolated,
	}
}

// modelStroke converts a persisted stroke back to the model form.
func modelStroke(r StrokeRecord) Stroke {
	return Stroke{
		Points: append([]Point(nil), r.Points...),
		Style: Style{
			Width:      r.Size,
			Color:      r.Color,
			Cap:        r.Cap,
			Join:       r.Join,
			MiterLimit: r.MiterLimit,
		},
		Interpolated: r.IsInterpolationDone,
	}
}

// recordFromStrokes builds a Record snapshot of a stroke list.
func recordFromStrokes(strokes []Stroke, aspectRatio float64) Record {
	rec := Record{
		AspectRatio: aspectRatio,
		Strokes:     make([]StrokeRecord, len(strokes)),
	}
	for i, s := range strokes {
		rec.Strokes[i] = recordStroke(s)
	}
	return rec
}

// strokesFromRecord rebuilds the stroke list from a Record. Strokes without
// points are kept; rendering treats them as no-ops.
func strokesFromRecord(rec Record) []Stroke {
	strokes := make([]Stroke, len(rec.Strokes))
	for i, r := range rec.Strokes {
		strokes[i] = modelStroke(r)
	}
	return strokes
}
