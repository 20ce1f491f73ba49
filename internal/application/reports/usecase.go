// Package reports genera las exportaciones de ventas y distribuciones (XLSX y PDF).
package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/domain"
	"github.com/jhoicas/gestion-carnes/internal/domain/repository"
	"github.com/jhoicas/gestion-carnes/pkg/format"
)

// maxExportRows tope de filas por exportación.
const maxExportRows = 10000

// Names nombres que se imprimen en la liquidación.
type Names struct {
	Business string
	Partner  string
	Supplier string
}

// UseCase arma los datos y delega el formato en los generadores.
type UseCase struct {
	saleRepo repository.SaleRepository
	distRepo repository.DistributionRepository
	pdf      SettlementPDFGenerator
	xlsx     SpreadsheetExporter
	names    Names
}

// NewUseCase construye el caso de uso inyectando todas sus dependencias.
func NewUseCase(
	saleRepo repository.SaleRepository,
	distRepo repository.DistributionRepository,
	pdf SettlementPDFGenerator,
	xlsx SpreadsheetExporter,
	names Names,
) *UseCase {
	return &UseCase{saleRepo: saleRepo, distRepo: distRepo, pdf: pdf, xlsx: xlsx, names: names}
}

// SalesXLSX planilla con todas las ventas. Devuelve los bytes y el nombre sugerido.
func (uc *UseCase) SalesXLSX(ctx context.Context) ([]byte, string, error) {
	sales, err := uc.saleRepo.List(ctx, maxExportRows, 0)
	if err != nil {
		return nil, "", fmt.Errorf("reporte ventas: %w", err)
	}
	b, err := uc.xlsx.SalesWorkbook(ctx, sales)
	if err != nil {
		return nil, "", err
	}
	return b, filename("ventas", "xlsx"), nil
}

// DistributionsXLSX planilla de distribuciones del rango.
func (uc *UseCase) DistributionsXLSX(ctx context.Context, rng dto.DateRange) ([]byte, string, error) {
	from, to, err := format.ParseRange(rng.From, rng.To)
	if err != nil {
		return nil, "", domain.ErrInvalidInput
	}
	entries, err := uc.distRepo.List(ctx, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("reporte distribuciones: %w", err)
	}
	b, err := uc.xlsx.DistributionsWorkbook(ctx, entries)
	if err != nil {
		return nil, "", err
	}
	return b, filename("distribuciones", "xlsx"), nil
}

// SettlementPDF hoja de liquidación de las distribuciones del rango.
func (uc *UseCase) SettlementPDF(ctx context.Context, rng dto.DateRange) ([]byte, string, error) {
	from, to, err := format.ParseRange(rng.From, rng.To)
	if err != nil {
		return nil, "", domain.ErrInvalidInput
	}
	entries, err := uc.distRepo.List(ctx, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("liquidación: %w", err)
	}
	header := SettlementHeader{
		BusinessName: uc.names.Business,
		PartnerName:  uc.names.Partner,
		SupplierName: uc.names.Supplier,
		From:         from,
		To:           to,
		GeneratedAt:  time.Now(),
	}
	b, err := uc.pdf.GenerateSettlementPDF(ctx, header, entries)
	if err != nil {
		return nil, "", err
	}
	return b, filename("liquidacion", "pdf"), nil
}

func filename(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("20060102"), ext)
}
