package ocrmac

import (
	"fmt"

	"github.com/OCRBridge/ocrbridge-ocrmac/pkg/hocr"
)

// RelativeBox is a bounding box in fractions (0-1) of the image dimensions,
// with the origin at the bottom-left of the image, as the Vision framework
// reports it.
type RelativeBox struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Annotation is one unit of recognized text from the backend. Text and
// confidence are passed through exactly as the backend produced them.
type Annotation struct {
	Text       string
	Confidence float64
	Box        RelativeBox
}

// Recognizer is the recognition backend contract: given an image path,
// language preferences, and a quality directive, return the recognized
// annotations in order.
type Recognizer interface {
	Recognize(imagePath string, languages []string, directive Directive) ([]Annotation, error)
}

// pageFromAnnotations converts the backend annotations for one image into
// an hOCR page.
//
// The backend origin is the bottom-left corner with y increasing upward;
// hOCR wants a top-left origin with y increasing downward. The vertical
// flip subtracts both the offset and the box height from 1 before scaling.
func pageFromAnnotations(annotations []Annotation, width, height, pageNumber int) hocr.Page {
	page := hocr.Page{
		ID:         fmt.Sprintf("page_%d", pageNumber),
		PageNumber: pageNumber,
		BBox:       hocr.NewBoundingBox(0, 0, float64(width), float64(height)),
	}

	for i, ann := range annotations {
		xMin := int(ann.Box.X * float64(width))
		xMax := int((ann.Box.X + ann.Box.Width) * float64(width))
		yMin := int((1.0 - ann.Box.Y - ann.Box.Height) * float64(height))
		yMax := int((1.0 - ann.Box.Y) * float64(height))

		page.Words = append(page.Words, hocr.Word{
			ID:   fmt.Sprintf("word_%d_%d", pageNumber, i+1),
			Text: ann.Text,
			BBox: hocr.NewBoundingBox(float64(xMin), float64(yMin), float64(xMax), float64(yMax)),
			// Not clamped: out-of-range backend confidence values come
			// through verbatim.
			Confidence: int(ann.Confidence * 100),
		})
	}

	return page
}

// documentFromAnnotations renders a single-page hOCR document.
func documentFromAnnotations(annotations []Annotation, width, height int) (string, error) {
	page := pageFromAnnotations(annotations, width, height, 1)
	return hocr.GenerateDocument(&hocr.HOCR{
		System: engineName,
		Pages:  []hocr.Page{page},
	})
}
