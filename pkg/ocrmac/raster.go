package ocrmac

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Rasterizer renders a PDF into an ordered sequence of page images. Any
// parallelism stays inside the implementation and is bounded by the
// workers hint.
type Rasterizer interface {
	Rasterize(pdfPath string, dpi, workers int) ([]image.Image, error)
}

// PopplerRasterizer renders pages with the poppler pdftoppm tool, splitting
// the page range across a bounded set of pdftoppm processes.
type PopplerRasterizer struct {
	// PdftoppmPath and PdfinfoPath override the poppler binaries;
	// empty means PATH lookup.
	PdftoppmPath string
	PdfinfoPath  string
}

// NewPopplerRasterizer returns the production rasterizer.
func NewPopplerRasterizer() *PopplerRasterizer {
	return &PopplerRasterizer{}
}

// Rasterize renders every page of the PDF at the given DPI.
func (r *PopplerRasterizer) Rasterize(pdfPath string, dpi, workers int) ([]image.Image, error) {
	pdftoppm := r.PdftoppmPath
	if pdftoppm == "" {
		pdftoppm = "pdftoppm"
	}
	pdfinfo := r.PdfinfoPath
	if pdfinfo == "" {
		pdfinfo = "pdfinfo"
	}

	total, err := pageCount(pdfinfo, pdfPath)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, nil
	}

	outDir, err := os.MkdirTemp("", "ocrmac-raster-")
	if err != nil {
		return nil, fmt.Errorf("failed to create rasterization directory: %w", err)
	}
	defer os.RemoveAll(outDir)

	if workers < 1 {
		workers = 1
	}
	prefix := filepath.Join(outDir, "page")

	var g errgroup.Group
	g.SetLimit(workers)
	for _, span := range splitPageRanges(total, workers) {
		span := span
		g.Go(func() error {
			cmd := exec.Command(pdftoppm,
				"-png",
				"-r", strconv.Itoa(dpi),
				"-f", strconv.Itoa(span.first),
				"-l", strconv.Itoa(span.last),
				pdfPath, prefix)
			var stderr bytes.Buffer
			cmd.Stderr = &stderr
			if err := cmd.Run(); err != nil {
				return fmt.Errorf("pdftoppm failed for pages %d-%d: %v: %s",
					span.first, span.last, err, strings.TrimSpace(stderr.String()))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// pdftoppm zero-pads page numbers to the digit count of the last page.
	digits := len(strconv.Itoa(total))
	images := make([]image.Image, 0, total)
	for page := 1; page <= total; page++ {
		img, err := decodePage(fmt.Sprintf("%s-%0*d.png", prefix, digits, page))
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return images, nil
}

// pageSpan is an inclusive 1-based page range.
type pageSpan struct {
	first int
	last  int
}

// splitPageRanges cuts [1, total] into at most workers contiguous spans.
func splitPageRanges(total, workers int) []pageSpan {
	if total <= 0 {
		return nil
	}
	if workers < 1 {
		workers = 1
	}
	if workers > total {
		workers = total
	}

	spans := make([]pageSpan, 0, workers)
	chunk := total / workers
	extra := total % workers
	next := 1
	for i := 0; i < workers; i++ {
		size := chunk
		if i < extra {
			size++
		}
		spans = append(spans, pageSpan{first: next, last: next + size - 1})
		next += size
	}
	return spans
}

// pageCount reads the page total from pdfinfo output.
func pageCount(pdfinfo, pdfPath string) (int, error) {
	out, err := exec.Command(pdfinfo, pdfPath).Output()
	if err != nil {
		return 0, fmt.Errorf("pdfinfo failed for %s: %w", pdfPath, err)
	}
	for _, line := range strings.Split(string(out), "\n") {
		if value, ok := strings.CutPrefix(line, "Pages:"); ok {
			count, err := strconv.Atoi(strings.TrimSpace(value))
			if err != nil {
				return 0, fmt.Errorf("unexpected pdfinfo page count %q: %w", strings.TrimSpace(value), err)
			}
			return count, nil
		}
	}
	return 0, fmt.Errorf("pdfinfo reported no page count for %s", pdfPath)
}

func decodePage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("missing rasterized page %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode rasterized page %s: %w", path, err)
	}
	return img, nil
}
