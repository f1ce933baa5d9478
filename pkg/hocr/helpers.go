package hocr

import (
	"strings"
)

// ExtractText extracts all text from an HOCR document
// Words are joined with spaces in recognition order,
// pages are separated by a blank line
func ExtractText(hocrDoc *HOCR) string {
	var builder strings.Builder

	for i, page := range hocrDoc.Pages {
		if i > 0 {
			builder.WriteString("\n\n")
		}
		for j, word := range page.Words {
			if j > 0 {
				builder.WriteString(" ")
			}
			builder.WriteString(word.Text)
		}
	}

	return builder.String()
}
