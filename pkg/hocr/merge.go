package hocr

import (
	"fmt"
	"html"
	"strings"
)

const (
	bodyOpen  = "<body>"
	bodyClose = "</body>"
)

// mergedShell mirrors the head/meta block produced by the generation template.
const mergedShell = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">
<html xmlns="http://www.w3.org/1999/xhtml">
<head>
<meta http-equiv="content-type" content="text/html; charset=utf-8" />
<meta name="ocr-system" content="%s" />
</head>
<body>%s</body>
</html>`

// MergeDocuments combines per-page hOCR documents into a single document.
//
// Each input document contributes everything strictly between the first
// occurrences of its <body> and </body> markers; documents where either
// marker is missing contribute nothing. Page containers keep their original
// id and title attributes, no renumbering happens across pages.
//
// A single-element list is returned unchanged. An empty list still yields a
// well-formed document with an empty body.
func MergeDocuments(pages []string, system string) string {
	if len(pages) == 1 {
		return pages[0]
	}

	var combined strings.Builder
	for _, page := range pages {
		start := strings.Index(page, bodyOpen)
		end := strings.Index(page, bodyClose)
		if start != -1 && end != -1 && start+len(bodyOpen) <= end {
			combined.WriteString(page[start+len(bodyOpen) : end])
		}
	}

	return fmt.Sprintf(mergedShell, html.EscapeString(system), combined.String())
}
