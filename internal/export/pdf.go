// Package export writes the board's strokes to a PDF by replaying their
// cached display lists through a gofpdf-backed canvas.
package export

import (
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"inkboard/internal/geometry"
	"inkboard/internal/render"
	"inkboard/internal/store"
	"inkboard/internal/style"
)

// sheetUnitsPerMM maps sheet units onto the A4 page.
const sheetUnitsPerMM = 3.0

// pdfCanvas adapts gofpdf to render.Canvas.
type pdfCanvas struct {
	pdf *gofpdf.Fpdf
}

var _ render.Canvas = (*pdfCanvas)(nil)

func (c *pdfCanvas) DrawLine(a, b geometry.Vec2, width float64, col style.Color) {
	c.setColor(col)
	c.pdf.SetLineWidth(width / sheetUnitsPerMM)
	c.pdf.Line(a.X/sheetUnitsPerMM, a.Y/sheetUnitsPerMM, b.X/sheetUnitsPerMM, b.Y/sheetUnitsPerMM)
}

func (c *pdfCanvas) DrawDot(p geometry.Vec2, radius float64, col style.Color) {
	c.setColor(col)
	c.pdf.Circle(p.X/sheetUnitsPerMM, p.Y/sheetUnitsPerMM, radius/sheetUnitsPerMM, "F")
}

func (c *pdfCanvas) setColor(col style.Color) {
	n := col.NRGBA()
	c.pdf.SetDrawColor(int(n.R), int(n.G), int(n.B))
	c.pdf.SetFillColor(int(n.R), int(n.G), int(n.B))
}

// WritePDF exports every stroke of the store to an A4 PDF at path.
func WritePDF(path string, s *store.Store) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	cv := &pdfCanvas{pdf: pdf}
	for _, rs := range s.RenderedStrokes() {
		rs.Rendered.Replay(cv)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}
