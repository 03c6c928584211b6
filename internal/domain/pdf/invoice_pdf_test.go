package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
	"time"

	"autoflow/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFormatEuro(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "€ 0,00"},
		{"5", "€ 5,00"},
		{"999.9", "€ 999,90"},
		{"1000", "€ 1.000,00"},
		{"24999.99", "€ 24.999,99"},
		{"1234567.5", "€ 1.234.567,50"},
	}
	for _, tc := range cases {
		got := FormatEuro(decimal.RequireFromString(tc.in))
		if got != tc.want {
			t.Fatalf("FormatEuro(%s) = %q, want %q", tc.in, got, tc.want)
		}
		if strings.ContainsAny(got, "\u00a0\u202f") {
			t.Fatalf("FormatEuro(%s) contains a non-breaking space: %q", tc.in, got)
		}
	}
}

func TestBuildLines(t *testing.T) {
	inv := entities.Invoice{ID: "prop-1", Number: "AF-2025-001", TotalAmount: decimal.NewFromInt(18000)}

	t.Run("fallback row without configuration", func(t *testing.T) {
		lines := BuildLines(inv, nil, nil)
		if len(lines) != 1 {
			t.Fatalf("expected 1 fallback line, got %d", len(lines))
		}
		if lines[0].Description != "Prodotto/servizio" || !lines[0].ShowPrice {
			t.Fatalf("unexpected fallback line: %+v", lines[0])
		}
		if !lines[0].Price.Equal(inv.TotalAmount) {
			t.Fatalf("fallback price must be the invoice total, got %s", lines[0].Price)
		}
	})

	t.Run("configuration without vehicle", func(t *testing.T) {
		cfg := &entities.Configuration{ID: "cfg-1", BasePrice: decimal.NewFromInt(15000)}
		lines := BuildLines(inv, cfg, nil)
		if len(lines) != 1 {
			t.Fatalf("expected 1 line, got %d", len(lines))
		}
		if lines[0].Description != "Veicolo configurato" {
			t.Fatalf("unexpected description: %q", lines[0].Description)
		}
	})

	t.Run("full configuration with sorted optionals", func(t *testing.T) {
		cfg := &entities.Configuration{
			ID:        "cfg-1",
			BasePrice: decimal.NewFromInt(15000),
			Optionals: []entities.OptionalAccessory{
				{Code: "TETTO", Name: "Tetto panoramico", Price: decimal.NewFromInt(800)},
				{Code: "NAV", Name: "Navigatore", Description: "Mappe Europa", Price: decimal.NewFromInt(1200)},
			},
		}
		vehicle := &entities.Vehicle{
			ID: "veh-1", Make: "Fiat", Model: "Panda", Year: 2023,
			Plate: "AB123CD", Fuel: "benzina", Transmission: "manuale", Color: "rosso",
		}

		lines := BuildLines(inv, cfg, vehicle)
		if len(lines) != 5 {
			t.Fatalf("expected 5 lines, got %d", len(lines))
		}
		if lines[0].Description != "Veicolo: Fiat Panda" || !lines[0].Price.Equal(cfg.BasePrice) {
			t.Fatalf("unexpected vehicle row: %+v", lines[0])
		}
		if lines[1].Description != "Anno: 2023, targa: AB123CD, VIN: -" {
			t.Fatalf("unexpected registration row: %q", lines[1].Description)
		}
		if lines[1].ShowPrice || lines[2].ShowPrice {
			t.Fatalf("descriptive rows must not price")
		}
		if lines[2].Description != "Alimentazione: benzina, cambio: manuale, colore: rosso, km: -" {
			t.Fatalf("unexpected trim row: %q", lines[2].Description)
		}
		// Optionals sorted by name: Navigatore before Tetto panoramico.
		if lines[3].Description != "Optional: Navigatore - Mappe Europa" {
			t.Fatalf("unexpected first optional: %q", lines[3].Description)
		}
		if lines[4].Description != "Optional: Tetto panoramico" {
			t.Fatalf("unexpected second optional: %q", lines[4].Description)
		}
	})
}

func TestComputeTotal(t *testing.T) {
	lines := []Line{
		{Description: "a", Price: decimal.NewFromInt(100), ShowPrice: true},
		{Description: "b", Price: decimal.NewFromInt(50), ShowPrice: false},
		{Description: "c", Price: decimal.NewFromInt(-10), ShowPrice: true},
		{Description: "d", Price: decimal.Zero, ShowPrice: true},
		{Description: "e", Price: decimal.RequireFromString("0.01"), ShowPrice: true},
	}
	want := decimal.RequireFromString("100.01")
	if got := ComputeTotal(lines); !got.Equal(want) {
		t.Fatalf("ComputeTotal = %s, want %s", got, want)
	}
}

func TestFooterTotal(t *testing.T) {
	computed := decimal.NewFromInt(17000)

	t.Run("persisted total wins when present", func(t *testing.T) {
		inv := entities.Invoice{TotalAmount: decimal.NewFromInt(18000)}
		if got := FooterTotal(inv, computed); !got.Equal(inv.TotalAmount) {
			t.Fatalf("expected the persisted total 18000, got %s", got)
		}
	})

	t.Run("computed total when nothing is persisted", func(t *testing.T) {
		if got := FooterTotal(entities.Invoice{}, computed); !got.Equal(computed) {
			t.Fatalf("expected the computed total, got %s", got)
		}
	})

	t.Run("negative persisted total falls back", func(t *testing.T) {
		inv := entities.Invoice{TotalAmount: decimal.NewFromInt(-5)}
		if got := FooterTotal(inv, computed); !got.Equal(computed) {
			t.Fatalf("expected the computed total, got %s", got)
		}
	})
}

func TestCustomerBlock(t *testing.T) {
	t.Run("nil customer renders all null", func(t *testing.T) {
		for _, field := range CustomerBlock(nil) {
			if !strings.HasSuffix(field, ": null") {
				t.Fatalf("expected null field, got %q", field)
			}
		}
	})

	t.Run("missing fields render the literal null", func(t *testing.T) {
		birth := time.Date(1980, 1, 1, 0, 0, 0, 0, time.UTC)
		c := &entities.Customer{
			FirstName: "Mario",
			LastName:  "Rossi",
			FiscalID:  "RSSMRA80A01H501U",
			BirthDate: &birth,
		}
		got := CustomerBlock(c)
		want := []string{
			"Nome: Mario",
			"Cognome: Rossi",
			"Email: null",
			"Telefono: null",
			"Indirizzo: null",
			"Codice fiscale: RSSMRA80A01H501U",
			"Data di nascita: 1980-01-01",
		}
		if len(got) != len(want) {
			t.Fatalf("expected %d fields, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("field %d: got %q, want %q", i, got[i], want[i])
			}
		}
	})
}

func TestInvoiceRenderer_Render(t *testing.T) {
	renderer := NewInvoiceRenderer()

	inv := entities.Invoice{
		ID:          "prop-1",
		Number:      "AF-2025-001",
		IssueDate:   time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC),
		CustomerID:  "cust-1",
		ProposalID:  "prop-1",
		TotalAmount: decimal.NewFromInt(17000),
	}
	cfg := &entities.Configuration{
		ID:        "cfg-1",
		BasePrice: decimal.NewFromInt(15000),
		Optionals: []entities.OptionalAccessory{
			{Code: "NAV", Name: "Navigatore", Price: decimal.NewFromInt(1200)},
			{Code: "TETTO", Name: "Tetto panoramico", Price: decimal.NewFromInt(800)},
		},
	}
	vehicle := &entities.Vehicle{ID: "veh-1", Make: "Fiat", Model: "Panda"}
	customer := &entities.Customer{ID: "cust-1", FirstName: "Mario", LastName: "Rossi"}

	t.Run("produces a pdf and an independent total", func(t *testing.T) {
		data, computed, err := renderer.Render(inv, nil, customer, cfg, vehicle)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.HasPrefix(data, []byte("%PDF")) {
			t.Fatalf("output does not look like a PDF")
		}
		if !computed.Equal(decimal.NewFromInt(17000)) {
			t.Fatalf("expected computed total 17000, got %s", computed)
		}
	})

	t.Run("degrades to fallback row on missing data", func(t *testing.T) {
		data, computed, err := renderer.Render(inv, nil, nil, nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data) == 0 {
			t.Fatalf("expected PDF bytes")
		}
		if !computed.Equal(inv.TotalAmount) {
			t.Fatalf("expected computed total from fallback row, got %s", computed)
		}
	})

	t.Run("re-render is byte identical", func(t *testing.T) {
		first, _, err := renderer.Render(inv, nil, customer, cfg, vehicle)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, _, err := renderer.Render(inv, nil, customer, cfg, vehicle)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !bytes.Equal(first, second) {
			t.Fatalf("re-render is not byte-identical: len a=%d b=%d", len(first), len(second))
		}
		// The document date is pinned to the issue date, not the clock.
		if !bytes.Contains(first, []byte("D:20250201")) {
			t.Fatalf("expected the creation date to match the issue date")
		}
	})

	t.Run("too many rows for one page is an error", func(t *testing.T) {
		overflow := &entities.Configuration{ID: "cfg-big", BasePrice: decimal.NewFromInt(15000)}
		for i := 0; i < 30; i++ {
			overflow.Optionals = append(overflow.Optionals, entities.OptionalAccessory{
				Code:  fmt.Sprintf("OPT-%02d", i),
				Name:  fmt.Sprintf("Optional %02d", i),
				Price: decimal.NewFromInt(100),
			})
		}
		if _, _, err := renderer.Render(inv, nil, customer, overflow, vehicle); err == nil {
			t.Fatalf("expected a single-page overflow error")
		}

		// One row fewer still fits above the footer.
		overflow.Optionals = overflow.Optionals[:29]
		if _, _, err := renderer.Render(inv, nil, customer, overflow, vehicle); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
