package hocr

import (
	"strings"
	"testing"
)

func samplePage() Page {
	return Page{
		ID:         "page_1",
		PageNumber: 1,
		BBox:       NewBoundingBox(0, 0, 1000, 800),
		Words: []Word{
			{
				ID:         "word_1_1",
				Text:       "Bottom",
				BBox:       NewBoundingBox(100, 640, 300, 720),
				Confidence: 95,
			},
		},
	}
}

func TestGenerateDocumentShell(t *testing.T) {
	doc, err := GenerateDocument(&HOCR{System: "ocrmac", Pages: []Page{samplePage()}})
	if err != nil {
		t.Fatalf("GenerateDocument() error = %v", err)
	}

	for _, want := range []string{
		`<?xml version="1.0" encoding="UTF-8"?>`,
		`<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">`,
		`<html xmlns="http://www.w3.org/1999/xhtml">`,
		`<meta http-equiv="content-type" content="text/html; charset=utf-8" />`,
		`<meta name="ocr-system" content="ocrmac" />`,
		`<body>`,
		`</body>`,
		`<div class="ocr_page" id="page_1" title="bbox 0 0 1000 800">`,
		`<span class="ocrx_word" id="word_1_1" title="bbox 100 640 300 720; x_wconf 95">Bottom</span>`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("generated document missing %q:\n%s", want, doc)
		}
	}
}

func TestGenerateDocumentEscapesText(t *testing.T) {
	page := samplePage()
	page.Words[0].Text = `a<b&c`

	doc, err := GenerateDocument(&HOCR{System: "ocrmac", Pages: []Page{page}})
	if err != nil {
		t.Fatalf("GenerateDocument() error = %v", err)
	}
	if !strings.Contains(doc, "a&lt;b&amp;c") {
		t.Errorf("word text not escaped:\n%s", doc)
	}
	if strings.Contains(doc, "a<b&c") {
		t.Errorf("raw word text leaked into markup:\n%s", doc)
	}
}

func TestGenerateDocumentEmptyWordText(t *testing.T) {
	page := samplePage()
	page.Words[0].Text = ""

	doc, err := GenerateDocument(&HOCR{System: "ocrmac", Pages: []Page{page}})
	if err != nil {
		t.Fatalf("GenerateDocument() error = %v", err)
	}
	if !strings.Contains(doc, `title="bbox 100 640 300 720; x_wconf 95"></span>`) {
		t.Errorf("empty word text should produce an empty element:\n%s", doc)
	}
}

func TestGenerateDocumentPageWithoutWords(t *testing.T) {
	page := Page{ID: "page_1", PageNumber: 1, BBox: NewBoundingBox(0, 0, 640, 480)}

	doc, err := GenerateDocument(&HOCR{System: "ocrmac", Pages: []Page{page}})
	if err != nil {
		t.Fatalf("GenerateDocument() error = %v", err)
	}
	if !strings.Contains(doc, `<div class="ocr_page" id="page_1" title="bbox 0 0 640 480"></div>`) {
		t.Errorf("expected empty page container:\n%s", doc)
	}
}
