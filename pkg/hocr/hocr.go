// Package hocr implements generation, merging, and parsing of hOCR data,
// which is an HTML-based standard format for representing OCR results.
//
// This package provides:
//
// - A flat object model of word-level OCR results (pages holding words)
// - Functions for generating valid hOCR HTML from Go structures
// - A merge operation that combines per-page hOCR documents into one
// - Functions for parsing hOCR HTML back into the object model
//
// Key Types:
//
// - HOCR: Top-level structure representing an entire hOCR document
// - Page: Represents a single page with class 'ocr_page'
// - Word: Represents a single word with class 'ocrx_word'
// - BoundingBox: Represents a rectangle with absolute pixel coordinates
//
// Main Functions:
//
// - GenerateDocument: Generates valid hOCR HTML from the object model
// - MergeDocuments: Combines per-page hOCR documents under one shell
// - ParseHOCR: Parses hOCR data from HTML into the object model
package hocr
