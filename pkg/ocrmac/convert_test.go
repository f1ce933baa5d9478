package ocrmac

import (
	"strings"
	"testing"

	"github.com/OCRBridge/ocrbridge-ocrmac/pkg/hocr"
)

func TestPageFromAnnotationsCoordinateFlip(t *testing.T) {
	annotations := []Annotation{{
		Text:       "Bottom",
		Confidence: 0.95,
		Box:        RelativeBox{X: 0.1, Y: 0.1, Width: 0.2, Height: 0.1},
	}}

	page := pageFromAnnotations(annotations, 1000, 800, 1)

	if len(page.Words) != 1 {
		t.Fatalf("got %d words, want 1", len(page.Words))
	}
	word := page.Words[0]
	if word.ID != "word_1_1" {
		t.Errorf("word ID = %q, want word_1_1", word.ID)
	}
	if word.BBox != hocr.NewBoundingBox(100, 640, 300, 720) {
		t.Errorf("word BBox = %+v, want bbox 100 640 300 720", word.BBox)
	}
	if word.Confidence != 95 {
		t.Errorf("confidence = %d, want 95", word.Confidence)
	}
}

func TestPageFromAnnotationsVerticalOrientation(t *testing.T) {
	// A span at the top of the image maps near y_min = 0, a span at the
	// bottom-left relative origin maps to y_max = H.
	top := pageFromAnnotations([]Annotation{{
		Box: RelativeBox{X: 0, Y: 0.9, Width: 0.5, Height: 0.1},
	}}, 1000, 800, 1)
	if bbox := top.Words[0].BBox; bbox.Y1 != 0 || bbox.Y2 != 80 {
		t.Errorf("top span bbox = %+v, want y_min 0, y_max 80", bbox)
	}

	bottom := pageFromAnnotations([]Annotation{{
		Box: RelativeBox{X: 0, Y: 0, Width: 0.5, Height: 0.1},
	}}, 1000, 800, 1)
	if bbox := bottom.Words[0].BBox; bbox.Y1 != 720 || bbox.Y2 != 800 {
		t.Errorf("bottom span bbox = %+v, want y_min 720, y_max 800", bbox)
	}
}

func TestPageFromAnnotationsBoxOrdering(t *testing.T) {
	boxes := []RelativeBox{
		{X: 0, Y: 0, Width: 1, Height: 1},
		{X: 0.25, Y: 0.25, Width: 0.5, Height: 0.5},
		{X: 0.7, Y: 0.1, Width: 0.3, Height: 0.2},
	}
	for _, box := range boxes {
		page := pageFromAnnotations([]Annotation{{Box: box}}, 1000, 800, 1)
		bbox := page.Words[0].BBox
		if bbox.X1 >= bbox.X2 || bbox.Y1 >= bbox.Y2 {
			t.Errorf("box %+v produced degenerate pixel bbox %+v", box, bbox)
		}
	}
}

func TestPageFromAnnotationsConfidenceScaling(t *testing.T) {
	tests := []struct {
		confidence float64
		want       int
	}{
		{0.95, 95},
		{0.75, 75},
		{0.50, 50},
		{1.0, 100},
		{0, 0},
		{1.5, 150}, // out of range passes through verbatim
	}
	for _, tt := range tests {
		page := pageFromAnnotations([]Annotation{{Confidence: tt.confidence}}, 100, 100, 1)
		if got := page.Words[0].Confidence; got != tt.want {
			t.Errorf("confidence %v mapped to %d, want %d", tt.confidence, got, tt.want)
		}
	}
}

func TestPageFromAnnotationsWordIndexing(t *testing.T) {
	annotations := []Annotation{
		{Text: "one"},
		{Text: "two"},
		{Text: "three"},
	}
	page := pageFromAnnotations(annotations, 100, 100, 1)

	for i, word := range page.Words {
		want := []string{"word_1_1", "word_1_2", "word_1_3"}[i]
		if word.ID != want {
			t.Errorf("word %d ID = %q, want %q", i, word.ID, want)
		}
	}
}

func TestDocumentFromAnnotations(t *testing.T) {
	doc, err := documentFromAnnotations([]Annotation{
		{Text: "Hello", Confidence: 0.9, Box: RelativeBox{X: 0.1, Y: 0.1, Width: 0.2, Height: 0.1}},
	}, 640, 480)
	if err != nil {
		t.Fatalf("documentFromAnnotations() error = %v", err)
	}

	for _, want := range []string{
		`id="page_1" title="bbox 0 0 640 480"`,
		`<meta name="ocr-system" content="ocrmac" />`,
		">Hello</span>",
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestDocumentFromAnnotationsEmpty(t *testing.T) {
	doc, err := documentFromAnnotations(nil, 640, 480)
	if err != nil {
		t.Fatalf("documentFromAnnotations() error = %v", err)
	}
	if !strings.Contains(doc, `<div class="ocr_page" id="page_1" title="bbox 0 0 640 480"></div>`) {
		t.Errorf("expected page container without words:\n%s", doc)
	}
}
