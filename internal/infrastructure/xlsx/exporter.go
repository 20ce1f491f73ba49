// Package xlsx implementa reports.SpreadsheetExporter con excelize.
package xlsx

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/gestion-carnes/internal/application/reports"
	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
	"github.com/jhoicas/gestion-carnes/pkg/format"
)

var _ reports.SpreadsheetExporter = (*Exporter)(nil)

const (
	SalesSheet         = "Ventas"
	DistributionsSheet = "Distribuciones"

	numFmtMoney = 4 // #,##0.00
)

// Exporter genera planillas en memoria.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// SalesWorkbook una fila por venta y una fila final de totales.
func (e *Exporter) SalesWorkbook(_ context.Context, sales []*entity.Sale) ([]byte, error) {
	headers := []string{"Fecha", "Producto", "Cantidad (kg)", "Precio unitario", "Ingreso", "Costo FIFO", "Ganancia"}
	rows := make([][]interface{}, 0, len(sales)+1)
	revenue, cost, profit := decimal.Zero, decimal.Zero, decimal.Zero
	for _, s := range sales {
		rows = append(rows, []interface{}{
			format.Date(s.SaleDate), s.ProductName, s.Quantity.InexactFloat64(),
			s.UnitPrice.InexactFloat64(), s.Revenue.InexactFloat64(), s.CostBasis.InexactFloat64(), s.Profit.InexactFloat64(),
		})
		revenue = revenue.Add(s.Revenue)
		cost = cost.Add(s.CostBasis)
		profit = profit.Add(s.Profit)
	}
	rows = append(rows, []interface{}{
		"TOTAL", "", "", "", revenue.InexactFloat64(), cost.InexactFloat64(), profit.InexactFloat64(),
	})
	return build(SalesSheet, headers, rows, 4)
}

// DistributionsWorkbook una fila por distribución (valores por kg y totales) y una fila de totales.
func (e *Exporter) DistributionsWorkbook(_ context.Context, entries []*entity.Distribution) ([]byte, error) {
	headers := []string{
		"Fecha", "Producto", "Cantidad (kg)", "Precio base", "Flete", "Precio venta", "% socio",
		"Ganancia socio", "Ganancia proveedor", "Total venta", "Total socio", "Total proveedor", "Retorno proveedor",
	}
	rows := make([][]interface{}, 0, len(entries)+1)
	sale, partner, supplier, ret := decimal.Zero, decimal.Zero, decimal.Zero, decimal.Zero
	for _, d := range entries {
		rows = append(rows, []interface{}{
			format.Date(d.Date), d.ProductName, d.Quantity.InexactFloat64(),
			d.BasePrice.InexactFloat64(), d.ShippingCost.InexactFloat64(), d.SalePrice.InexactFloat64(),
			d.PartnerSharePercentage.InexactFloat64(),
			d.PartnerProfit.InexactFloat64(), d.SupplierProfit.InexactFloat64(),
			d.TotalSale.InexactFloat64(), d.TotalPartnerProfit.InexactFloat64(),
			d.TotalSupplierProfit.InexactFloat64(), d.TotalSupplierReturn.InexactFloat64(),
		})
		sale = sale.Add(d.TotalSale)
		partner = partner.Add(d.TotalPartnerProfit)
		supplier = supplier.Add(d.TotalSupplierProfit)
		ret = ret.Add(d.TotalSupplierReturn)
	}
	rows = append(rows, []interface{}{
		"TOTAL", "", "", "", "", "", "", "", "",
		sale.InexactFloat64(), partner.InexactFloat64(), supplier.InexactFloat64(), ret.InexactFloat64(),
	})
	return build(DistributionsSheet, headers, rows, 4)
}

// build escribe encabezados en negrita, filas de datos y aplica formato monetario desde moneyFromCol (1-based).
func build(sheet string, headers []string, rows [][]interface{}, moneyFromCol int) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: numFmtMoney})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo moneda: %w", err)
	}

	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
		return nil, err
	}

	for r, values := range rows {
		for c, v := range values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if len(rows) > 0 {
		first, _ := excelize.CoordinatesToCellName(moneyFromCol, 2)
		end, _ := excelize.CoordinatesToCellName(len(headers), len(rows)+1)
		if err := f.SetCellStyle(sheet, first, end, money); err != nil {
			return nil, err
		}
		totalStart, _ := excelize.CoordinatesToCellName(1, len(rows)+1)
		totalEnd, _ := excelize.CoordinatesToCellName(1, len(rows)+1)
		if err := f.SetCellStyle(sheet, totalStart, totalEnd, bold); err != nil {
			return nil, err
		}
	}
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	if err := f.SetColWidth(sheet, "A", lastCol, 16); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}
