// Package export serializes entity tables into downloadable files. The
// presentation layer hands it data already filtered and shaped; the byte
// formats themselves belong to the libraries.
package export

import (
	"fmt"
	"io"
	"strconv"

	"github.com/phpdave11/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/bako110/pausemanager/internal/models"
)

// Table is a shaped, ready-to-serialize view of an entity list.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
}

// WriteXLSX writes the table as a single-sheet spreadsheet.
func WriteXLSX(w io.Writer, t Table) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, h := range t.Headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("building header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}
	for r, row := range t.Rows {
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, r+2)
			if err != nil {
				return fmt.Errorf("building cell: %w", err)
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return fmt.Errorf("writing cell: %w", err)
			}
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// WritePDF writes the table as a landscape A4 PDF with a simple grid.
func WritePDF(w io.Writer, t Table) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 14)
	pdf.CellFormat(0, 10, t.Title, "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	colW := (pageW - left - right) / float64(len(t.Headers))

	pdf.SetFont("Helvetica", "B", 10)
	for _, h := range t.Headers {
		pdf.CellFormat(colW, 8, h, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range t.Rows {
		for _, v := range row {
			pdf.CellFormat(colW, 7, v, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("writing pdf: %w", err)
	}
	return nil
}

// ClientTable shapes a client list for export.
func ClientTable(clients []models.Client) Table {
	t := Table{
		Title:   "Liste des clients",
		Headers: []string{"Entreprise", "Contact", "Email", "Téléphone", "N° contrat", "Statut"},
	}
	for _, c := range clients {
		t.Rows = append(t.Rows, []string{
			c.Name, c.Contact, c.Email, c.Phone, c.ContractNumber, models.TranslateStatus(string(c.Status)),
		})
	}
	return t
}

// ServiceTable shapes a catalog category for export.
func ServiceTable(label string, services []models.Service) Table {
	t := Table{
		Title:   "Services " + label,
		Headers: []string{"Titre", "Description", "Prix", "Statut"},
	}
	for _, s := range services {
		t.Rows = append(t.Rows, []string{
			s.Title, s.Description, s.DisplayPrice(), models.TranslateStatus(string(s.Status)),
		})
	}
	return t
}

// EventTable shapes an event list for export.
func EventTable(events []models.Event) Table {
	t := Table{
		Title:   "Événements",
		Headers: []string{"Événement", "Date", "Horaire", "Client", "Participants", "Lieu", "Statut"},
	}
	for _, e := range events {
		t.Rows = append(t.Rows, []string{
			e.Name,
			e.Date,
			e.StartTime + " - " + e.EndTime,
			e.Client.Name,
			strconv.Itoa(e.Participants),
			e.Location,
			models.TranslateStatus(string(e.Status)),
		})
	}
	return t
}
