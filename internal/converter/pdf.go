package converter

import (
	"bytes"
	"io"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"golang.org/x/net/html"

	"text-processor/internal/model"
)

// PDFRenderer implements the Renderer interface for PDF output.
// It walks the wrapped HTML page and lays it out as styled text
// blocks: headings with level-dependent font sizes, monospace code
// blocks on a light fill, bullet glyphs for list items and
// pipe-joined table rows. Stylesheet rules, images and form inputs
// are not rendered.
type PDFRenderer struct{}

// NewPDFRenderer creates a new PDF renderer
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the HTML page into PDF bytes
func (r *PDFRenderer) Render(page string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	w := &pdfWriter{
		pdf: pdf,
		// Core fonts are cp1252; translate so accented text survives.
		translate: pdf.UnicodeTranslatorFromDescriptor(""),
	}
	if err := w.writePage(page); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write PDF")
	}
	return buf.Bytes(), nil
}

// CanRender checks if this renderer produces the given format
func (r *PDFRenderer) CanRender(format model.OutputFormat) bool {
	return format == model.FormatPDF
}

// pdfWriter accumulates text per block element and flushes each block
// to the PDF with styling chosen by the element name.
type pdfWriter struct {
	pdf       *gofpdf.Fpdf
	translate func(string) string

	text  strings.Builder
	block string
	skip  int // depth inside head/style/script
	list  int // depth inside ul/ol
	row   []string
}

var headingSizes = map[string]float64{
	"h1": 18, "h2": 15, "h3": 13, "h4": 12, "h5": 11, "h6": 10,
}

func (w *pdfWriter) writePage(page string) error {
	z := html.NewTokenizer(strings.NewReader(page))

	for {
		switch z.Next() {
		case html.ErrorToken:
			if err := z.Err(); err != io.EOF {
				return errors.Wrap(err, "failed to tokenize HTML")
			}
			w.flush()
			return nil

		case html.StartTagToken:
			name, _ := z.TagName()
			w.startElement(string(name))

		case html.EndTagToken:
			name, _ := z.TagName()
			w.endElement(string(name))

		case html.SelfClosingTagToken:
			name, _ := z.TagName()
			if string(name) == "br" {
				w.text.WriteByte('\n')
			}

		case html.TextToken:
			if w.skip == 0 {
				w.text.Write(z.Text())
			}
		}
	}
}

func (w *pdfWriter) startElement(name string) {
	switch name {
	case "head", "style", "script":
		w.skip++
	case "h1", "h2", "h3", "h4", "h5", "h6", "p", "li", "pre", "blockquote", "div":
		w.flush()
		w.block = name
	case "ul", "ol":
		w.flush()
		w.list++
	case "table":
		w.flush()
		w.pdf.Ln(2)
	case "tr":
		w.flush()
		w.row = nil
	case "br":
		w.text.WriteByte('\n')
	case "hr":
		w.flush()
		w.pdf.Ln(4)
	}
}

func (w *pdfWriter) endElement(name string) {
	switch name {
	case "head", "style", "script":
		if w.skip > 0 {
			w.skip--
		}
	case "h1", "h2", "h3", "h4", "h5", "h6", "p", "li", "pre", "blockquote", "div":
		w.flush()
	case "ul", "ol":
		if w.list > 0 {
			w.list--
		}
	case "td", "th":
		w.row = append(w.row, strings.Join(strings.Fields(w.text.String()), " "))
		w.text.Reset()
	case "tr":
		w.flushRow()
	case "table":
		w.pdf.Ln(2)
	}
}

// flush writes the accumulated text of the current block.
func (w *pdfWriter) flush() {
	raw := w.text.String()
	w.text.Reset()

	block := w.block
	w.block = ""

	var text string
	if block == "pre" {
		text = strings.Trim(raw, "\n")
	} else {
		text = strings.Join(strings.Fields(raw), " ")
	}
	if text == "" {
		return
	}

	switch {
	case headingSizes[block] != 0:
		size := headingSizes[block]
		w.pdf.Ln(4)
		w.pdf.SetFont("Helvetica", "B", size)
		w.pdf.MultiCell(0, size*0.6, w.translate(text), "", "L", false)
		w.pdf.Ln(2)

	case block == "pre":
		w.pdf.Ln(2)
		w.pdf.SetFont("Courier", "", 9)
		w.pdf.SetFillColor(245, 245, 245)
		for _, line := range strings.Split(text, "\n") {
			w.pdf.MultiCell(0, 4.5, w.translate(line), "", "L", true)
		}
		w.pdf.Ln(2)

	case block == "blockquote":
		w.pdf.SetFont("Helvetica", "I", 10)
		w.pdf.SetTextColor(100, 100, 100)
		w.pdf.MultiCell(0, 5, w.translate(text), "", "L", false)
		w.pdf.SetTextColor(0, 0, 0)

	case block == "li" || w.list > 0:
		w.pdf.SetFont("Helvetica", "", 10)
		w.pdf.MultiCell(0, 5, w.translate("• "+text), "", "L", false)

	default:
		w.pdf.SetFont("Helvetica", "", 10)
		w.pdf.MultiCell(0, 5, w.translate(text), "", "L", false)
		w.pdf.Ln(1)
	}
}

// flushRow writes a collected table row as a single text line.
func (w *pdfWriter) flushRow() {
	if len(w.row) == 0 {
		return
	}
	w.pdf.SetFont("Helvetica", "", 10)
	w.pdf.MultiCell(0, 5, w.translate(strings.Join(w.row, " | ")), "", "L", false)
	w.row = nil
}
