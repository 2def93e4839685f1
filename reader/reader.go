package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	lpdf "github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	pcmodel "github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/outliner/model"
)

// ErrNotPDF is returned when the input file does not have a .pdf extension
var ErrNotPDF = errors.New("input file must be a PDF")

// StyledRun is one extracted text run with its typographic attributes
type StyledRun struct {
	Text     string
	FontSize float64
	Flags    model.StyleFlags
}

// Line is an ordered sequence of runs sharing a baseline
type Line struct {
	Runs []StyledRun
	BBox model.BBox
}

// Block is a group of vertically adjacent lines forming one layout block
type Block struct {
	Lines []Line
	BBox  model.BBox
}

// PageBlocks holds the assembled layout blocks for a single page
type PageBlocks struct {
	// Number is the 1-based page number
	Number int

	// Width and Height are the page dimensions from the MediaBox
	Width  float64
	Height float64

	// Blocks are the page's layout blocks in document order
	Blocks []Block
}

// Reader reads styled layout content from a PDF file
type Reader struct {
	file io.Closer
	pdf  *lpdf.Reader
	path string
}

// Open opens and validates a PDF file for reading. The returned Reader
// must be closed when done.
func Open(path string) (*Reader, error) {
	if strings.ToLower(filepath.Ext(path)) != ".pdf" {
		return nil, fmt.Errorf("%s: %w", path, ErrNotPDF)
	}

	if err := validate(path); err != nil {
		return nil, fmt.Errorf("validate %s: %w", path, err)
	}

	f, r, err := lpdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	return &Reader{file: f, pdf: r, path: path}, nil
}

// validate runs a pdfcpu read+validate pass so corrupt files fail
// before any content is extracted.
func validate(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	conf := pcmodel.NewDefaultConfiguration()
	if _, err := api.ReadValidateAndOptimize(f, conf); err != nil {
		return err
	}
	return nil
}

// PageCount returns the number of pages in the document
func (r *Reader) PageCount() int {
	return r.pdf.NumPage()
}

// Close releases the underlying file
func (r *Reader) Close() error {
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

// Pages walks every page and returns its assembled layout blocks in
// document order. Pages without text content yield empty block lists.
func (r *Reader) Pages() ([]PageBlocks, error) {
	count := r.pdf.NumPage()
	pages := make([]PageBlocks, 0, count)

	for num := 1; num <= count; num++ {
		page, err := r.readPage(num)
		if err != nil {
			return nil, fmt.Errorf("page %d of %s: %w", num, r.path, err)
		}
		pages = append(pages, page)
	}

	return pages, nil
}

// readPage extracts and assembles the blocks for one page
func (r *Reader) readPage(num int) (PageBlocks, error) {
	p := r.pdf.Page(num)

	width, height := 612.0, 792.0 // US Letter fallback
	if !p.V.IsNull() {
		if mb := p.V.Key("MediaBox"); mb.Kind() == lpdf.Array && mb.Len() == 4 {
			width = mb.Index(2).Float64() - mb.Index(0).Float64()
			height = mb.Index(3).Float64() - mb.Index(1).Float64()
		}
	}

	page := PageBlocks{Number: num, Width: width, Height: height}
	if p.V.IsNull() {
		return page, nil
	}

	content := p.Content()
	frags := make([]fragment, 0, len(content.Text))
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		size := t.FontSize
		if size <= 0 {
			size = 12
		}
		frags = append(frags, fragment{
			Text:     norm.NFC.String(t.S),
			X:        t.X,
			Y:        t.Y,
			W:        t.W,
			FontSize: size,
			Flags:    flagsForFont(t.Font),
		})
	}

	page.Blocks = assembleBlocks(assembleLines(frags))
	return page, nil
}

// flagsForFont derives the style-flag bitmask from a PostScript font
// name. Weight and slant live in the name for embedded subset fonts.
func flagsForFont(name string) model.StyleFlags {
	var flags model.StyleFlags

	lower := strings.ToLower(name)
	if strings.Contains(lower, "bold") ||
		strings.Contains(lower, "black") ||
		strings.Contains(lower, "heavy") ||
		strings.Contains(lower, "semibold") ||
		strings.Contains(lower, "demibold") {
		flags |= model.StyleBold
	}
	if strings.Contains(lower, "italic") || strings.Contains(lower, "oblique") {
		flags |= model.StyleItalic
	}

	return flags
}
