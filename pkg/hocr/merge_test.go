package hocr

import (
	"fmt"
	"strings"
	"testing"
)

// singlePageDoc produces a one-page document holding one marker word.
func singlePageDoc(t *testing.T, marker string) string {
	t.Helper()
	doc, err := GenerateDocument(&HOCR{
		System: "ocrmac",
		Pages: []Page{{
			ID:         "page_1",
			PageNumber: 1,
			BBox:       NewBoundingBox(0, 0, 100, 100),
			Words: []Word{{
				ID:         "word_1_1",
				Text:       marker,
				BBox:       NewBoundingBox(0, 0, 10, 10),
				Confidence: 90,
			}},
		}},
	})
	if err != nil {
		t.Fatalf("GenerateDocument() error = %v", err)
	}
	return doc
}

func TestMergeDocumentsKeepsPageOrder(t *testing.T) {
	var pages []string
	for i := 1; i <= 3; i++ {
		pages = append(pages, singlePageDoc(t, fmt.Sprintf("marker%d", i)))
	}

	merged := MergeDocuments(pages, "ocrmac")

	last := -1
	for i := 1; i <= 3; i++ {
		pos := strings.Index(merged, fmt.Sprintf("marker%d", i))
		if pos == -1 {
			t.Fatalf("merged document missing page %d content:\n%s", i, merged)
		}
		if pos < last {
			t.Fatalf("page %d out of order in merged document", i)
		}
		last = pos
	}

	if got := strings.Count(merged, "<head>"); got != 1 {
		t.Errorf("merged document has %d head sections, want 1", got)
	}
	if got := strings.Count(merged, `name="ocr-system"`); got != 1 {
		t.Errorf("merged document has %d ocr-system metas, want 1", got)
	}
	if got := strings.Count(merged, `class="ocr_page"`); got != 3 {
		t.Errorf("merged document has %d page containers, want 3", got)
	}
	// Original page ids survive without renumbering.
	if got := strings.Count(merged, `id="page_1"`); got != 3 {
		t.Errorf("merged document has %d page_1 ids, want 3", got)
	}
}

func TestMergeDocumentsSingleElementUnchanged(t *testing.T) {
	doc := singlePageDoc(t, "only")
	if got := MergeDocuments([]string{doc}, "ocrmac"); got != doc {
		t.Errorf("single-element merge should return the document unchanged")
	}
}

func TestMergeDocumentsEmptyList(t *testing.T) {
	merged := MergeDocuments(nil, "ocrmac")

	if !strings.Contains(merged, "<body></body>") {
		t.Errorf("empty merge should produce an empty body:\n%s", merged)
	}
	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN"`,
		`<meta name="ocr-system" content="ocrmac" />`,
	} {
		if !strings.Contains(merged, want) {
			t.Errorf("empty merge missing %q:\n%s", want, merged)
		}
	}
}

func TestMergeDocumentsSkipsMissingBodyMarkers(t *testing.T) {
	pages := []string{
		singlePageDoc(t, "first"),
		"<html><p>no markers here</p></html>",
		singlePageDoc(t, "second"),
	}

	merged := MergeDocuments(pages, "ocrmac")

	if strings.Contains(merged, "no markers here") {
		t.Errorf("document without body markers should contribute nothing")
	}
	if !strings.Contains(merged, "first") || !strings.Contains(merged, "second") {
		t.Errorf("well-formed pages should survive the merge:\n%s", merged)
	}
}
