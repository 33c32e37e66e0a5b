// Package xlsx genera el relatório de vendas en Excel con excelize.
package xlsx

import (
	"bytes"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

// SheetName nombre de la hoja del relatório.
const SheetName = "Vendas"

const moneyFormat = 4 // #,##0.00

// SalesReportWriter implementa sales.ReportWriter.
type SalesReportWriter struct{}

// NewSalesReportWriter construye el writer.
func NewSalesReportWriter() *SalesReportWriter { return &SalesReportWriter{} }

// SalesReport una fila por venda y una fila final con el total del período.
func (w *SalesReportWriter) SalesReport(sales []dto.SaleResponse, start, end string) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(f.GetActiveSheetIndex()), SheetName); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	title := []interface{}{fmt.Sprintf("Relatório de vendas %s a %s", start, end)}
	if err := f.SetSheetRow(SheetName, "A1", &title); err != nil {
		return nil, fmt.Errorf("xlsx: título: %w", err)
	}

	header := []interface{}{"ID", "Data", "Cliente", "Vendedor", "Status", "Valor Total", "Nota Fiscal"}
	if err := f.SetSheetRow(SheetName, "A3", &header); err != nil {
		return nil, fmt.Errorf("xlsx: cabecera: %w", err)
	}

	row := 4
	total := decimal.Zero
	for _, s := range sales {
		total = total.Add(s.Total)
		invoice := ""
		if s.Invoice != nil {
			invoice = s.Invoice.Number
		}
		excelRow := []interface{}{
			s.ID,
			s.When(),
			s.Client.DisplayName(""),
			s.User.DisplayName(entity.NotAvailable),
			s.Status,
			s.Total.InexactFloat64(),
			invoice,
		}
		if err := setRow(f, row, excelRow); err != nil {
			return nil, err
		}
		row++
	}

	totalRow := []interface{}{"TOTAL", "", "", "", "", total.InexactFloat64(), fmt.Sprintf("%d vendas", len(sales))}
	if err := setRow(f, row, totalRow); err != nil {
		return nil, err
	}

	if err := formatMoneyColumn(f, row); err != nil {
		return nil, err
	}
	_ = f.SetColWidth(SheetName, "B", "D", 24)

	buf := &bytes.Buffer{}
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("xlsx: escribir archivo: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("xlsx: celda: %w", err)
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("xlsx: fila %d: %w", row, err)
	}
	return nil
}

func formatMoneyColumn(f *excelize.File, lastRow int) error {
	style, err := f.NewStyle(&excelize.Style{NumFmt: moneyFormat})
	if err != nil {
		return fmt.Errorf("xlsx: estilo: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "F4", fmt.Sprintf("F%d", lastRow), style); err != nil {
		return fmt.Errorf("xlsx: formato de valores: %w", err)
	}
	return nil
}
