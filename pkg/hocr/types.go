package hocr

import "fmt"

// HOCR represents the entire hOCR document structure
type HOCR struct {
	System string // Value of the ocr-system meta element
	Pages  []Page // Pages in the document
}

// Page is one page of recognized text
// Corresponds to hOCR element with class: 'ocr_page'
type Page struct {
	ID         string      // Unique identifier
	PageNumber int         // Page number in document
	BBox       BoundingBox // Page coordinates
	Words      []Word      // Words on this page, in recognition order
}

// Class assign 'ocr_page' to 'Page' struct
func (Page) Class() string { return "ocr_page" }

// Title renders the page's hOCR title attribute
func (p Page) Title() string {
	return fmt.Sprintf("bbox %d %d %d %d", int(p.BBox.X1), int(p.BBox.Y1), int(p.BBox.X2), int(p.BBox.Y2))
}

// Word is a recognized word with bounding box
// Corresponds to hOCR element with class: 'ocrx_word'
type Word struct {
	ID         string      // Unique identifier
	Text       string      // The actual text content, as recognized
	BBox       BoundingBox // Word coordinates
	Confidence int         // Recognition confidence (0-100)
}

// Class assign 'ocrx_word' to 'Word' struct
func (Word) Class() string { return "ocrx_word" }

// Title renders the word's hOCR title attribute
func (w Word) Title() string {
	return fmt.Sprintf("bbox %d %d %d %d; x_wconf %d",
		int(w.BBox.X1), int(w.BBox.Y1), int(w.BBox.X2), int(w.BBox.Y2), w.Confidence)
}

// BoundingBox represents a rectangle in the document
// Used to store hOCR 'bbox' property values
type BoundingBox struct {
	X1 float64 // Left coordinate
	Y1 float64 // Top coordinate
	X2 float64 // Right coordinate
	Y2 float64 // Bottom coordinate
}

// NewBoundingBox creates a bounding box from coordinates
// x1, y1 represent the top-left corner, while x2, y2 represent the bottom-right corner,
// matching the coordinate order of hOCR 'bbox' properties.
func NewBoundingBox(x1, y1, x2, y2 float64) BoundingBox {
	return BoundingBox{
		X1: x1,
		Y1: y1,
		X2: x2,
		Y2: y2,
	}
}
