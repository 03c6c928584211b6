package pdf

import (
	"bytes"
	"fmt"
	"sort"

	"autoflow/internal/domain/entities"
	"autoflow/internal/usecase/interfaces"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
)

const issuerName = "AutoFlow"

// Line is one row of the invoice table. Price is printed, and counted in
// the computed total, only when ShowPrice is set and the value is
// positive; descriptive rows keep a zero price.
type Line struct {
	Description string
	Price       decimal.Decimal
	ShowPrice   bool
}

// InvoiceRenderer draws a single-page A4 invoice.
//
// The layout is deterministic: identical input data produces identical
// line ordering and identical currency strings, which is what the
// re-render tests assert.
type InvoiceRenderer struct{}

var _ interfaces.IInvoiceRenderer = (*InvoiceRenderer)(nil)

func NewInvoiceRenderer() *InvoiceRenderer {
	return &InvoiceRenderer{}
}

// BuildLines assembles the invoice table rows in their fixed order:
// vehicle row (base price), registration row, trim row, one row per
// optional, or a single fallback row when no configuration exists.
func BuildLines(inv entities.Invoice, cfg *entities.Configuration, vehicle *entities.Vehicle) []Line {
	var lines []Line

	if cfg != nil {
		if vehicle != nil {
			lines = append(lines, Line{
				Description: fmt.Sprintf("Veicolo: %s %s", dashIfEmpty(vehicle.Make), dashIfEmpty(vehicle.Model)),
				Price:       cfg.BasePrice,
				ShowPrice:   true,
			})
			lines = append(lines, Line{
				Description: fmt.Sprintf("Anno: %s, targa: %s, VIN: %s",
					dashIfZero(vehicle.Year), dashIfEmpty(vehicle.Plate), dashIfEmpty(vehicle.VIN)),
			})
			lines = append(lines, Line{
				Description: fmt.Sprintf("Alimentazione: %s, cambio: %s, colore: %s, km: %s",
					dashIfEmpty(vehicle.Fuel), dashIfEmpty(vehicle.Transmission),
					dashIfEmpty(vehicle.Color), dashIfZero(vehicle.Mileage)),
			})
		} else {
			lines = append(lines, Line{Description: "Veicolo configurato", Price: cfg.BasePrice, ShowPrice: true})
		}

		optionals := append([]entities.OptionalAccessory(nil), cfg.Optionals...)
		sort.Slice(optionals, func(i, j int) bool {
			if optionals[i].Name != optionals[j].Name {
				return optionals[i].Name < optionals[j].Name
			}
			return optionals[i].Code < optionals[j].Code
		})
		for _, opt := range optionals {
			desc := "Optional: " + dashIfEmpty(opt.Name)
			if opt.Description != "" {
				desc += " - " + opt.Description
			}
			lines = append(lines, Line{Description: desc, Price: opt.Price, ShowPrice: true})
		}
	}

	if len(lines) == 0 {
		lines = append(lines, Line{Description: "Prodotto/servizio", Price: inv.TotalAmount, ShowPrice: true})
	}
	return lines
}

// ComputeTotal sums every line price that will actually be displayed
// (ShowPrice and positive). Independent of the invoice's persisted total.
func ComputeTotal(lines []Line) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		if l.ShowPrice && l.Price.IsPositive() {
			total = total.Add(l.Price)
		}
	}
	return total
}

// FooterTotal picks the amount printed in the footer line: the persisted
// invoice total when present, the computed table total otherwise.
func FooterTotal(inv entities.Invoice, computed decimal.Decimal) decimal.Decimal {
	if inv.TotalAmount.IsPositive() {
		return inv.TotalAmount
	}
	return computed
}

// Render draws the invoice and returns the PDF bytes plus the computed
// total. Any page-construction failure is fatal: no bytes are returned.
func (r *InvoiceRenderer) Render(inv entities.Invoice, proposal *entities.Proposal, customer *entities.Customer, cfg *entities.Configuration, vehicle *entities.Vehicle) ([]byte, decimal.Decimal, error) {
	lines := BuildLines(inv, cfg, vehicle)
	computed := ComputeTotal(lines)

	doc := fpdf.New("P", "pt", "A4", "")
	// The document metadata dates must not move between renders of the
	// same invoice, or the output stops being byte-identical.
	doc.SetCreationDate(inv.IssueDate)
	doc.SetModificationDate(inv.IssueDate)
	tr := doc.UnicodeTranslatorFromDescriptor("")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	pageWidth, pageHeight := doc.GetPageSize()
	const margin = 40.0
	y := margin

	number := inv.Number
	if number == "" {
		number = "-"
	}

	doc.SetFont("Helvetica", "B", 18)
	doc.Text(margin, y+14, tr("FATTURA "+number))
	y += 34

	doc.SetFont("Helvetica", "", 12)
	doc.Text(margin, y+10, issuerName)

	// Customer block on the right; absent fields render the literal
	// string "null" (observable output, kept from the legacy documents).
	clientX := pageWidth/2 + 10
	clientY := margin

	doc.SetFont("Helvetica", "B", 10)
	doc.Text(clientX, clientY+10, "CLIENTE")
	clientY += 24

	doc.SetFont("Helvetica", "", 9)
	for _, field := range CustomerBlock(customer) {
		doc.Text(clientX, clientY, tr(field))
		clientY += 12
	}

	// Central table: description | price.
	y += 90
	tableTop := y
	tableWidth := pageWidth - 2*margin
	descWidth := tableWidth * 0.65
	const headerHeight = 20.0
	const rowHeight = 18.0

	doc.SetFillColor(230, 230, 230)
	doc.Rect(margin, tableTop, tableWidth, headerHeight, "F")

	doc.SetFont("Helvetica", "", 10)
	doc.Text(margin+4, tableTop+14, "Descrizione")
	doc.Text(margin+descWidth+4, tableTop+14, "Prezzo")

	rowY := tableTop + headerHeight
	doc.SetFont("Helvetica", "", 9)
	for _, line := range lines {
		doc.SetFillColor(245, 245, 245)
		doc.Rect(margin, rowY+1, tableWidth, rowHeight-2, "F")

		doc.Text(margin+4, rowY+12, tr(line.Description))
		if line.ShowPrice && line.Price.IsPositive() {
			doc.Text(margin+descWidth+4, rowY+12, tr(FormatEuro(line.Price)))
		}
		rowY += rowHeight
	}

	doc.SetLineWidth(0.5)
	doc.Rect(margin, tableTop, tableWidth, rowY-tableTop, "D")

	// Single-page contract: the footer must still fit above the bottom
	// margin, or the render is an error, not a silent second page.
	const footerHeight = 30.0
	if rowY+footerHeight > pageHeight-margin {
		return nil, decimal.Zero, fmt.Errorf("invoice %s: line items exceed a single page", inv.ID)
	}

	doc.SetFont("Helvetica", "B", 12)
	doc.Text(margin+descWidth, rowY+footerHeight, tr("Importo totale: "+FormatEuro(FooterTotal(inv, computed))))

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, decimal.Zero, fmt.Errorf("rendering invoice %s: %w", inv.ID, err)
	}
	return buf.Bytes(), computed, nil
}

// CustomerBlock returns the labelled customer fields in print order,
// substituting the literal "null" for anything absent.
func CustomerBlock(c *entities.Customer) []string {
	get := func(f func(*entities.Customer) string) string {
		if c == nil {
			return "null"
		}
		if v := f(c); v != "" {
			return v
		}
		return "null"
	}
	birth := "null"
	if c != nil && c.BirthDate != nil {
		birth = c.BirthDate.Format("2006-01-02")
	}
	return []string{
		"Nome: " + get(func(c *entities.Customer) string { return c.FirstName }),
		"Cognome: " + get(func(c *entities.Customer) string { return c.LastName }),
		"Email: " + get(func(c *entities.Customer) string { return c.Email }),
		"Telefono: " + get(func(c *entities.Customer) string { return c.Phone }),
		"Indirizzo: " + get(func(c *entities.Customer) string { return c.Address }),
		"Codice fiscale: " + get(func(c *entities.Customer) string { return c.FiscalID }),
		"Data di nascita: " + birth,
	}
}

func dashIfEmpty(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func dashIfZero(n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprintf("%d", n)
}
