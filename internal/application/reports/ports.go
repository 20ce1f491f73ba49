package reports

import (
	"context"
	"time"

	"github.com/jhoicas/gestion-carnes/internal/domain/entity"
)

// SettlementHeader datos de cabecera de la liquidación de distribuciones.
type SettlementHeader struct {
	BusinessName string
	PartnerName  string
	SupplierName string
	From         time.Time // cero = desde el inicio
	To           time.Time // cero = hasta hoy
	GeneratedAt  time.Time
}

// SettlementPDFGenerator puerto para la hoja de liquidación socio/proveedor en PDF.
type SettlementPDFGenerator interface {
	GenerateSettlementPDF(ctx context.Context, header SettlementHeader, entries []*entity.Distribution) ([]byte, error)
}

// SpreadsheetExporter puerto para exportar planillas XLSX.
type SpreadsheetExporter interface {
	SalesWorkbook(ctx context.Context, sales []*entity.Sale) ([]byte, error)
	DistributionsWorkbook(ctx context.Context, entries []*entity.Distribution) ([]byte, error)
}
