package xlsx

import (
	"bytes"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/infostock-dashboard/internal/application/dto"
	"github.com/jhoicas/infostock-dashboard/internal/domain/entity"
)

func TestSalesReport_FilasYTotal(t *testing.T) {
	sales := []dto.SaleResponse{
		{ID: 1, SaleDate: "2024-01-05", Client: entity.Ref{Name: "Maria"}, User: entity.Ref{Name: "Carlos"}, Status: "CONFIRMADA", Total: decimal.NewFromInt(600), Invoice: &entity.Invoice{Number: "000123"}},
		{ID: 2, Date: "2024-01-06", Client: entity.Ref{ID: 8}, Status: "ABERTA", Total: decimal.RequireFromString("49.90")},
	}

	data, err := NewSalesReportWriter().SalesReport(sales, "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 6)

	assert.Equal(t, "Relatório de vendas 2024-01-01 a 2024-01-31", rows[0][0])
	assert.Equal(t, []string{"ID", "Data", "Cliente", "Vendedor", "Status", "Valor Total", "Nota Fiscal"}, rows[2])
	assert.Equal(t, "1", rows[3][0])
	assert.Equal(t, "Maria", rows[3][2])
	assert.Equal(t, "000123", rows[3][6])
	assert.Equal(t, "N/A", rows[4][3])
	assert.Equal(t, "TOTAL", rows[5][0])

	raw, err := f.GetCellValue(SheetName, "F6", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	assert.Equal(t, "649.9", raw)
}

func TestSalesReport_SinVendas(t *testing.T) {
	data, err := NewSalesReportWriter().SalesReport(nil, "2024-01-01", "2024-01-31")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	v, err := f.GetCellValue(SheetName, "G4")
	require.NoError(t, err)
	assert.Equal(t, "0 vendas", v)
}
