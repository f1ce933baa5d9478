package hocr

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/encoding/charmap"
)

// ParseHOCR converts raw hOCR data into a structured HOCR object.
func ParseHOCR(data []byte) (HOCR, error) {
	var result HOCR

	// Figure out the character encoding
	content := string(data)
	encoding := "utf-8"
	if strings.Contains(content, "charset=") {
		metaStart := strings.Index(content, "charset=") + len("charset=")
		if metaStart > -1 && len(content) > metaStart+10 {
			encSnippet := content[metaStart : metaStart+20]
			enc := strings.ToLower(strings.FieldsFunc(encSnippet, func(r rune) bool {
				return r == '"' || r == ';' || r == '\'' || r == '>'
			})[0])
			if enc != "" {
				encoding = enc
			}
		}
	}

	// Convert to UTF-8 if needed
	var decoded []byte
	var err error
	if encoding != "utf-8" {
		decoder := charmap.ISO8859_1.NewDecoder()
		decoded, err = decoder.Bytes(data)
		if err != nil {
			return result, fmt.Errorf("failed to decode %s: %w", encoding, err)
		}
	} else {
		decoded = data
	}

	doc, err := html.Parse(strings.NewReader(string(decoded)))
	if err != nil {
		return result, err
	}

	// Pick up the ocr-system meta element from the head section
	result.System = findOcrSystem(doc)

	// Find and process all ocr_page elements
	var findPages func(*html.Node)
	findPages = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "div" {
			if strings.Contains(getAttrVal(n, "class"), "ocr_page") {
				result.Pages = append(result.Pages, processPage(n, len(result.Pages)+1))
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			findPages(c)
		}
	}
	findPages(doc)

	if len(result.Pages) == 0 {
		return result, fmt.Errorf("no ocr_page elements found in HOCR data")
	}
	return result, nil
}

// ParseTitle breaks down an hOCR title attribute into its components
// Example input: "bbox 100 200 300 400; x_wconf 95"
func ParseTitle(title string) map[string][]string {
	result := make(map[string][]string)
	parts := strings.Split(title, ";")
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		items := strings.Fields(part)
		if len(items) > 0 {
			key := items[0]
			values := items[1:]
			result[key] = values
		}
	}

	return result
}

// ParseBoundingBoxFromTitle extracts a bounding box from a title string
// Returns a structured BoundingBox object or nil if extraction fails
func ParseBoundingBoxFromTitle(title string) *BoundingBox {
	props := ParseTitle(title)
	if bbox, ok := props["bbox"]; ok && len(bbox) >= 4 {
		x1, _ := strconv.ParseFloat(bbox[0], 64)
		y1, _ := strconv.ParseFloat(bbox[1], 64)
		x2, _ := strconv.ParseFloat(bbox[2], 64)
		y2, _ := strconv.ParseFloat(bbox[3], 64)
		result := NewBoundingBox(x1, y1, x2, y2)
		return &result
	}
	return nil
}

// findOcrSystem locates the ocr-system meta element anywhere in the document head
func findOcrSystem(doc *html.Node) string {
	var system string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "meta" {
			if getAttrVal(n, "name") == "ocr-system" {
				system = getAttrVal(n, "content")
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return system
}

// processPage extracts page information and all word descendants
func processPage(n *html.Node, pageNumber int) Page {
	page := Page{
		PageNumber: pageNumber,
	}

	// Extract page attributes
	for _, attr := range n.Attr {
		switch attr.Key {
		case "id":
			page.ID = attr.Val
		case "title":
			if bbox := ParseBoundingBoxFromTitle(attr.Val); bbox != nil {
				page.BBox = *bbox
			}
			props := ParseTitle(attr.Val)
			if ppageno, ok := props["ppageno"]; ok && len(ppageno) > 0 {
				if num, err := strconv.Atoi(ppageno[0]); err == nil {
					page.PageNumber = num
				}
			}
		}
	}

	// Collect every ocrx_word descendant, regardless of intermediate layout
	// elements other systems may nest between page and word
	var extractWords func(*html.Node)
	extractWords = func(node *html.Node) {
		if node.Type == html.ElementNode && strings.Contains(getAttrVal(node, "class"), "ocrx_word") {
			page.Words = append(page.Words, processWord(node))
			return
		}
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			extractWords(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		extractWords(c)
	}

	return page
}

// processWord extracts a word element's text and properties
func processWord(n *html.Node) Word {
	var word Word

	for _, attr := range n.Attr {
		switch attr.Key {
		case "id":
			word.ID = attr.Val
		case "title":
			if bbox := ParseBoundingBoxFromTitle(attr.Val); bbox != nil {
				word.BBox = *bbox
			}
			props := ParseTitle(attr.Val)
			if conf, ok := props["x_wconf"]; ok && len(conf) > 0 {
				word.Confidence, _ = strconv.Atoi(conf[0])
			}
		}
	}

	if n.FirstChild != nil {
		word.Text = extractTextContent(n)
	}

	return word
}

// extractTextContent gets all text from a node and its children
func extractTextContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var text string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		text += extractTextContent(c)
	}
	return text
}

// Get the value of a specific attribute from a node
func getAttrVal(n *html.Node, attrName string) string {
	for _, attr := range n.Attr {
		if attr.Key == attrName {
			return attr.Val
		}
	}
	return ""
}
