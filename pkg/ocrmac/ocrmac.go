// Package ocrmac converts images and PDF documents into hOCR using the OCR
// engine built into macOS.
//
// The package feeds files to the Apple Vision framework (or the LiveText
// framework for enhanced recognition) and transforms the raw annotations
// into hOCR XML. Multi-page PDFs are rasterized page by page, each page is
// recognized separately, and the per-page results are merged into a single
// hOCR document.
//
// Key Features:
//
// - Recognize text in JPEG, PNG and TIFF images as well as PDF documents
// - Four recognition levels: fast, balanced, accurate, and livetext
// - Language preferences as IETF BCP 47 tags, validated up front
// - Coordinate conversion from Vision's bottom-left-relative boxes to
//   hOCR's absolute top-left pixel boxes
//
// Main Entry Points:
//
// - NewEngine: builds an engine wired to the production collaborators
// - Engine.Process: runs OCR on one file and returns the hOCR document
// - NewParams: builds and validates recognition parameters
//
// Platform Requirements:
//
// macOS is required; the livetext recognition level additionally requires
// macOS Sonoma (14.0) or later. Every call checks these before touching
// the input file.
package ocrmac

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/OCRBridge/ocrbridge-ocrmac/pkg/hocr"
)

const (
	engineName = "ocrmac"

	// Rendering resolution and worker hint handed to the rasterizer.
	pdfDPI     = 300
	pdfWorkers = 2

	// LiveText needs macOS Sonoma or later.
	minLiveTextMajor = 14
)

// supportedFormats holds the accepted file extensions, sorted for error output.
var supportedFormats = []string{".jpeg", ".jpg", ".pdf", ".png", ".tif", ".tiff"}

// Engine is the conversion pipeline. The collaborator fields are injectable
// so platform gating, recognition, and rasterization can be substituted in
// tests without touching global process state.
type Engine struct {
	Recognizer Recognizer
	Rasterizer Rasterizer
	Prober     Prober
	ImageSize  func(path string) (width, height int, err error)
}

// NewEngine returns an engine wired to the production collaborators:
// Vision recognition, poppler rasterization, and the host system probe.
func NewEngine() *Engine {
	return &Engine{
		Recognizer: NewVisionRecognizer(),
		Rasterizer: NewPopplerRasterizer(),
		Prober:     SystemProber{},
		ImageSize:  imageSize,
	}
}

// Name returns the engine identifier used in the hOCR ocr-system meta element.
func (e *Engine) Name() string { return engineName }

// SupportedFormats returns the file extensions the engine accepts.
func (e *Engine) SupportedFormats() []string {
	formats := make([]string, len(supportedFormats))
	copy(formats, supportedFormats)
	return formats
}

// Process runs OCR on the file at path and returns an hOCR XML document.
// A nil params uses balanced recognition with the backend's default
// languages. Calls are independent and reentrant; concurrent callers
// processing different files do not interfere.
func (e *Engine) Process(path string, params *Params) (string, error) {
	p := DefaultParams()
	if params != nil {
		if err := params.Validate(); err != nil {
			return "", err
		}
		p = *params
	}

	if err := e.validatePlatform(); err != nil {
		return "", err
	}
	if err := e.validateLiveTextRequirement(p.Level); err != nil {
		return "", err
	}

	if _, err := os.Stat(path); err != nil {
		return "", newError(ErrorTypeFileNotFound, fmt.Sprintf("file not found: %s", path), nil)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !isSupportedFormat(ext) {
		return "", newError(ErrorTypeUnsupportedFormat,
			fmt.Sprintf("unsupported file format: %s. Supported formats: %s", ext, strings.Join(supportedFormats, ", ")), nil)
	}

	var out string
	var err error
	if ext == ".pdf" {
		out, err = e.processPDF(path, p)
	} else {
		out, err = e.processImage(path, p)
	}
	if err != nil {
		return "", newError(ErrorTypeProcessing, "ocrmac processing failed", err)
	}
	return out, nil
}

func isSupportedFormat(ext string) bool {
	for _, format := range supportedFormats {
		if ext == format {
			return true
		}
	}
	return false
}

func (e *Engine) validatePlatform() error {
	if platform := e.Prober.OS(); platform != "darwin" {
		return newError(ErrorTypePlatform,
			fmt.Sprintf("ocrmac is only available on macOS systems. Current platform: %s", platform), nil)
	}
	return nil
}

// validateLiveTextRequirement checks the macOS version when livetext is
// requested. Other recognition levels skip the check entirely.
func (e *Engine) validateLiveTextRequirement(level RecognitionLevel) error {
	if level != RecognitionLiveText {
		return nil
	}

	version := e.Prober.OSVersion()
	if version == "" {
		return newError(ErrorTypeOSVersion,
			"unable to determine macOS version. LiveText requires macOS Sonoma (14.0) or later", nil)
	}

	major, err := strconv.Atoi(strings.Split(version, ".")[0])
	if err != nil {
		return newError(ErrorTypeOSVersion,
			fmt.Sprintf("invalid macOS version format: %s", version), err)
	}
	if major < minLiveTextMajor {
		return newError(ErrorTypeOSVersion,
			fmt.Sprintf("LiveText requires macOS Sonoma (14.0) or later. Current version: %s", version), nil)
	}
	return nil
}

// processImage recognizes a single image file.
func (e *Engine) processImage(imagePath string, params Params) (string, error) {
	annotations, err := e.Recognizer.Recognize(imagePath, params.Languages, params.Level.Directive())
	if err != nil {
		return "", err
	}

	// The recognition call alone does not guarantee dimensions,
	// read them from the image header independently.
	width, height, err := e.ImageSize(imagePath)
	if err != nil {
		return "", fmt.Errorf("failed to read image dimensions: %w", err)
	}

	return documentFromAnnotations(annotations, width, height)
}

// processPDF rasterizes the document and recognizes each page in order.
func (e *Engine) processPDF(pdfPath string, params Params) (string, error) {
	pages, err := e.Rasterizer.Rasterize(pdfPath, pdfDPI, pdfWorkers)
	if err != nil {
		return "", newError(ErrorTypeRasterization, "PDF conversion failed", err)
	}

	var pageDocs []string
	for _, page := range pages {
		doc, err := e.processPage(page, params)
		if err != nil {
			return "", err
		}
		pageDocs = append(pageDocs, doc)
	}

	if len(pageDocs) == 1 {
		return pageDocs[0], nil
	}
	return hocr.MergeDocuments(pageDocs, engineName), nil
}

// processPage writes the page image to a unique temporary file for the
// recognition backend, which needs a file path, and removes the file on
// every exit path. Unique names keep concurrent multi-page calls apart.
func (e *Engine) processPage(page image.Image, params Params) (string, error) {
	tempPath := filepath.Join(os.TempDir(), fmt.Sprintf("ocrmac-page-%s.png", uuid.NewString()))
	f, err := os.Create(tempPath)
	if err != nil {
		return "", fmt.Errorf("failed to create temporary page image: %w", err)
	}
	defer os.Remove(tempPath)

	if err := png.Encode(f, page); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to encode temporary page image: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write temporary page image: %w", err)
	}

	annotations, err := e.Recognizer.Recognize(tempPath, params.Languages, params.Level.Directive())
	if err != nil {
		return "", err
	}

	bounds := page.Bounds()
	return documentFromAnnotations(annotations, bounds.Dx(), bounds.Dy())
}
