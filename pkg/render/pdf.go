package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/akeil/notion"
	"github.com/akeil/notion/internal/logging"
)

// Document is a page with its content, ready to be rendered.
// Blocks are the top level blocks of the page with their children nested.
type Document struct {
	Title      string
	LastEdited time.Time
	Blocks     []notion.Block
}

// Layout, in points
const (
	margin     = 48.0
	indentStep = 18.0
	lineHeight = 14.0
	bodySize   = 11.0
)

var headingSizes = map[notion.BlockType]float64{
	notion.Heading1Type: 20,
	notion.Heading2Type: 16,
	notion.Heading3Type: 13,
}

// RenderPDF writes the document as a PDF to w.
func RenderPDF(d Document, w io.Writer) error {
	logging.Debug("Render PDF for %q with %d top level blocks", d.Title, len(d.Blocks))
	pdf := setupPDF("A4", d)
	pdf.AddPage()

	r := &pdfRenderer{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor("")}
	if d.Title != "" {
		r.heading(d.Title, 24, 0)
	}

	err := notion.Walk(d.Blocks, func(b notion.Block, depth int) error {
		r.block(b, depth)
		return pdf.Error()
	})
	if err != nil {
		return err
	}
	return pdf.Output(w)
}

const tsFormat = "2006-01-02 15:04:05"

func setupPDF(pageSize string, d Document) *gofpdf.Fpdf {
	orientation := "P" // [P]ortrait or [L]andscape
	sizeUnit := "pt"
	fontDir := ""
	pdf := gofpdf.New(orientation, sizeUnit, pageSize, fontDir)

	pdf.SetMargins(margin, margin, margin) // left, top, right
	pdf.SetAutoPageBreak(true, margin)
	pdf.AliasNbPages("{totalPages}")
	pdf.SetProducer("notion", true)
	pdf.SetTitle(d.Title, true)

	if !d.LastEdited.IsZero() {
		modified := d.LastEdited.UTC()
		pdf.SetModificationDate(modified)
		pdf.SetCreationDate(modified)
	}

	pdf.SetFooterFunc(func() {
		pdf.SetY(-30)
		pdf.SetFont("helvetica", "", 8)
		pdf.SetTextColor(127, 127, 127)
		footer := fmt.Sprintf("%d / {totalPages}", pdf.PageNo())
		if !d.LastEdited.IsZero() {
			footer += "  |  " + d.LastEdited.Local().Format(tsFormat)
		}
		pdf.CellFormat(0, 10, footer, "", 0, "C", false, 0, "")
	})

	return pdf
}

type pdfRenderer struct {
	pdf *gofpdf.Fpdf
	tr  func(string) string
	// running number of the current numbered list, per depth
	numbers map[int]int
}

func (r *pdfRenderer) block(b notion.Block, depth int) {
	if b.Type() != notion.NumberedListItemType {
		r.resetNumbering(depth)
	}

	switch d := b.Data.(type) {
	case notion.Heading:
		r.heading(b.PlainText(), headingSizes[b.Type()], depth)
	case notion.Paragraph:
		r.text("", d.RichText, depth)
	case notion.Quote:
		r.text("| ", d.RichText, depth)
	case notion.Callout:
		r.text("! ", d.RichText, depth)
	case notion.Toggle:
		r.text("> ", d.RichText, depth)
	case notion.Template:
		r.text("", d.RichText, depth)
	case notion.BulletedListItem:
		r.text("- ", d.RichText, depth)
	case notion.NumberedListItem:
		r.text(fmt.Sprintf("%d. ", r.nextNumber(depth)), d.RichText, depth)
	case notion.ToDo:
		box := "[ ] "
		if d.Checked {
			box = "[x] "
		}
		r.text(box, d.RichText, depth)
	case notion.Code:
		r.code(notion.PlainTextOf(d.RichText), depth)
	case notion.Equation:
		r.code(d.Expression, depth)
	case notion.Bookmark:
		r.link(d.URL, d.URL, depth)
	case notion.Embed:
		r.link(d.URL, d.URL, depth)
	case notion.LinkPreview:
		r.link(d.URL, d.URL, depth)
	case notion.Image:
		r.link("Image: "+d.URL(), d.URL(), depth)
	case notion.Video:
		r.link("Video: "+d.URL(), d.URL(), depth)
	case notion.Audio:
		r.link("Audio: "+d.URL(), d.URL(), depth)
	case notion.PDF:
		r.link("PDF: "+d.URL(), d.URL(), depth)
	case notion.File:
		r.link("File: "+d.URL(), d.URL(), depth)
	case notion.ChildPage:
		r.plain("Page: "+d.Title, depth)
	case notion.ChildDatabase:
		r.plain("Database: "+d.Title, depth)
	case notion.TableRow:
		cells := make([]string, len(d.Cells))
		for i, c := range d.Cells {
			cells[i] = notion.PlainTextOf(c)
		}
		r.plain(strings.Join(cells, "  |  "), depth)
	case notion.Divider:
		r.divider()
	case notion.Unsupported:
		logging.Debug("Skip unsupported block %v of type %q", b.ID, d.Kind)
	default:
		// layout blocks have no content of their own
	}
}

func (r *pdfRenderer) resetNumbering(depth int) {
	if r.numbers != nil {
		delete(r.numbers, depth)
	}
}

func (r *pdfRenderer) nextNumber(depth int) int {
	if r.numbers == nil {
		r.numbers = make(map[int]int)
	}
	r.numbers[depth]++
	return r.numbers[depth]
}

func (r *pdfRenderer) indent(depth int) {
	r.pdf.SetLeftMargin(margin + float64(depth)*indentStep)
	r.pdf.SetX(margin + float64(depth)*indentStep)
}

func (r *pdfRenderer) heading(text string, size float64, depth int) {
	if size == 0 {
		size = bodySize
	}
	r.indent(depth)
	r.pdf.Ln(size / 2)
	r.pdf.SetFont("helvetica", "B", size)
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.MultiCell(0, size*1.3, r.tr(text), "", "L", false)
}

// text writes styled runs as a flowing paragraph.
func (r *pdfRenderer) text(prefix string, runs []notion.RichText, depth int) {
	r.indent(depth)
	r.pdf.SetTextColor(0, 0, 0)
	if prefix != "" {
		r.pdf.SetFont("helvetica", "", bodySize)
		r.pdf.Write(lineHeight, r.tr(prefix))
	}
	for _, run := range runs {
		r.run(run)
	}
	r.pdf.Ln(lineHeight)
}

func (r *pdfRenderer) run(run notion.RichText) {
	family, style := "helvetica", ""
	if a := run.Annotations; a != nil {
		if a.Bold {
			style += "B"
		}
		if a.Italic {
			style += "I"
		}
		if a.Underline {
			style += "U"
		}
		if a.Code {
			family = "courier"
		}
	}
	r.pdf.SetFont(family, style, bodySize)

	text := r.tr(run.String())
	href := ""
	switch {
	case run.Href != nil:
		href = *run.Href
	case run.Text != nil && run.Text.Link != nil:
		href = run.Text.Link.URL
	}
	if href != "" {
		r.pdf.SetTextColor(35, 110, 160)
		r.pdf.WriteLinkString(lineHeight, text, href)
		r.pdf.SetTextColor(0, 0, 0)
		return
	}
	r.pdf.Write(lineHeight, text)
}

func (r *pdfRenderer) plain(text string, depth int) {
	r.indent(depth)
	r.pdf.SetFont("helvetica", "", bodySize)
	r.pdf.SetTextColor(0, 0, 0)
	r.pdf.MultiCell(0, lineHeight, r.tr(text), "", "L", false)
}

func (r *pdfRenderer) code(text string, depth int) {
	r.indent(depth)
	r.pdf.SetFont("courier", "", bodySize-1)
	r.pdf.SetTextColor(60, 60, 60)
	r.pdf.SetFillColor(242, 242, 242)
	r.pdf.MultiCell(0, lineHeight, r.tr(text), "", "L", true)
}

func (r *pdfRenderer) link(text, url string, depth int) {
	r.indent(depth)
	r.pdf.SetFont("helvetica", "U", bodySize)
	r.pdf.SetTextColor(35, 110, 160)
	r.pdf.WriteLinkString(lineHeight, r.tr(text), url)
	r.pdf.Ln(lineHeight)
}

func (r *pdfRenderer) divider() {
	r.indent(0)
	w, _ := r.pdf.GetPageSize()
	y := r.pdf.GetY() + lineHeight/2
	r.pdf.SetDrawColor(191, 191, 191)
	r.pdf.Line(margin, y, w-margin, y)
	r.pdf.Ln(lineHeight)
}
