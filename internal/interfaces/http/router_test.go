package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/gestion-carnes/internal/application/analytics"
	"github.com/jhoicas/gestion-carnes/internal/application/distribution"
	"github.com/jhoicas/gestion-carnes/internal/application/dto"
	"github.com/jhoicas/gestion-carnes/internal/application/inventory"
	"github.com/jhoicas/gestion-carnes/internal/application/reports"
	"github.com/jhoicas/gestion-carnes/internal/application/usecase"
	"github.com/jhoicas/gestion-carnes/internal/infrastructure/lock"
	"github.com/jhoicas/gestion-carnes/internal/infrastructure/memory"
	"github.com/jhoicas/gestion-carnes/internal/infrastructure/pdf"
	"github.com/jhoicas/gestion-carnes/internal/infrastructure/xlsx"
	apphttp "github.com/jhoicas/gestion-carnes/internal/interfaces/http"
	"github.com/jhoicas/gestion-carnes/pkg/logger"
)

// buildTestApp arma la API completa sobre el store en memoria.
func buildTestApp(t *testing.T) *fiber.App {
	t.Helper()
	store := memory.NewStore()
	log := logger.Nop()

	app := fiber.New(fiber.Config{ErrorHandler: apphttp.ErrorHandler()})
	app.Use(apphttp.RequestLogger(log))
	apphttp.Router(app, apphttp.RouterDeps{
		ProductUC:   usecase.NewProductUseCase(store.Products()),
		PurchaseUC:  inventory.NewPurchaseUseCase(store.Products(), store.Lots(), log),
		SaleUC:      inventory.NewSaleUseCase(store, lock.NewKeyedMutex(), store.Sales(), log),
		StockUC:     inventory.NewStockUseCase(store.Products(), store.Lots()),
		ExpenseUC:   usecase.NewExpenseUseCase(store.Expenses()),
		DashboardUC: appanalytics.NewDashboardUseCase(store.Analytics()),
		MarginsUC:   appanalytics.NewMarginsUseCase(store.Analytics()),
		DistributionUC: distribution.NewUseCase(
			store.Distributions(), store.Products(), store.Lots(), store.Sales(), decimal.NewFromInt(50), log,
		),
		CatalogUC: usecase.NewCatalogUseCase(store.Products(), store.Lots(), "Carnes Test"),
		ReportsUC: reports.NewUseCase(
			store.Sales(), store.Distributions(),
			pdf.NewMarotoSettlementGenerator(), xlsx.NewExporter(),
			reports.Names{Business: "Carnes Test", Partner: "Socio", Supplier: "Proveedor"},
		),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func createProduct(t *testing.T, app *fiber.App, name string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/products", map[string]interface{}{"name": name})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var p dto.ProductResponse
	decode(t, resp, &p)
	return p.ID
}

func purchase(t *testing.T, app *fiber.App, productID, date string, qty, cost float64) {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/purchases", map[string]interface{}{
		"product_id": productID, "purchase_date": date, "quantity": qty, "unit_cost": cost,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()
}

func TestProducts_CreateDuplicateAndValidation(t *testing.T) {
	app := buildTestApp(t)
	createProduct(t, app, "Vacío")

	resp := doJSON(t, app, http.MethodPost, "/api/products", map[string]interface{}{"name": "vacío"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/products", map[string]interface{}{"name": ""})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var e dto.ErrorResponse
	decode(t, resp, &e)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Contains(t, e.Fields, "name")
}

func TestProducts_GetUnknownIs404(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/products/no-existe", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestSales_FIFOCostThroughAPI(t *testing.T) {
	app := buildTestApp(t)
	id := createProduct(t, app, "Asado")
	purchase(t, app, id, "2024-01-01", 10, 5)
	purchase(t, app, id, "2024-01-02", 5, 8)

	resp := doJSON(t, app, http.MethodPost, "/api/sales", map[string]interface{}{
		"product_id": id, "sale_date": "2024-01-03", "quantity": 12, "unit_price": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var sale dto.SaleResponse
	decode(t, resp, &sale)

	assert.True(t, sale.CostBasis.Equal(decimal.NewFromInt(66)), "cost %s", sale.CostBasis)
	assert.True(t, sale.Revenue.Equal(decimal.NewFromInt(120)))
	assert.True(t, sale.Profit.Equal(decimal.NewFromInt(54)))
	assert.Len(t, sale.Allocations, 2)

	resp = doJSON(t, app, http.MethodGet, "/api/inventory/stock", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stock dto.StockResponse
	decode(t, resp, &stock)
	require.Len(t, stock.Items, 1)
	assert.True(t, stock.Items[0].TotalStock.Equal(decimal.NewFromInt(3)))
}

func TestSales_InsufficientStockIs409(t *testing.T) {
	app := buildTestApp(t)
	id := createProduct(t, app, "Matambre")
	purchase(t, app, id, "2024-01-01", 10, 5)

	resp := doJSON(t, app, http.MethodPost, "/api/sales", map[string]interface{}{
		"product_id": id, "quantity": 16, "unit_price": 10,
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	var e dto.ErrorResponse
	decode(t, resp, &e)
	assert.Equal(t, "INSUFFICIENT_STOCK", e.Code)
	assert.Contains(t, e.Message, "faltan 6 kg")
}

func TestSales_UnknownProductIs404MissingReference(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/sales", map[string]interface{}{
		"product_id": "fantasma", "quantity": 1, "unit_price": 10,
	})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	var e dto.ErrorResponse
	decode(t, resp, &e)
	assert.Equal(t, "MISSING_REFERENCE", e.Code)
}

func TestSales_ZeroQuantityIsValidationError(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/sales", map[string]interface{}{
		"product_id": "x", "quantity": 0, "unit_price": 10,
	})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var e dto.ErrorResponse
	decode(t, resp, &e)
	assert.Equal(t, "VALIDATION", e.Code)
	assert.Equal(t, "gt=0", e.Fields["quantity"])
}

func TestDistributions_CalculateAndReject(t *testing.T) {
	app := buildTestApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/distributions/calculate", map[string]interface{}{
		"base_price": 4100, "shipping_cost": 200, "sale_price": 7500, "partner_share_percentage": 50,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var preview dto.DistributionPreviewResponse
	decode(t, resp, &preview)
	assert.True(t, preview.Unit.PartnerProfit.Equal(decimal.NewFromInt(1600)))
	assert.True(t, preview.Unit.SupplierTotalReturn.Equal(decimal.NewFromInt(5900)))

	resp = doJSON(t, app, http.MethodPost, "/api/distributions/calculate", map[string]interface{}{
		"base_price": 4100, "shipping_cost": 200, "sale_price": 4000, "partner_share_percentage": 50,
	})
	require.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	var e dto.ErrorResponse
	decode(t, resp, &e)
	assert.Equal(t, "INVALID_DISTRIBUTION", e.Code)
}

func TestDistributions_RegisterListDelete(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/distributions", map[string]interface{}{
		"product_name": "Media res", "date": "2024-02-10", "quantity": 10,
		"base_price": 4100, "shipping_cost": 200, "sale_price": 7500, "partner_share_percentage": 50,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var created dto.DistributionResponse
	decode(t, resp, &created)

	resp = doJSON(t, app, http.MethodGet, "/api/distributions?from=2024-02-01&to=2024-02-10", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var list dto.DistributionListResponse
	decode(t, resp, &list)
	assert.Equal(t, 1, list.Totals.Count)
	assert.True(t, list.Totals.TotalPartnerProfit.Equal(decimal.NewFromInt(16000)))

	resp = doJSON(t, app, http.MethodDelete, "/api/distributions/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodDelete, "/api/distributions/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestDashboard_InvertedRangeIs400(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/dashboard?from=2024-03-01&to=2024-01-01", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var d dto.DashboardDTO
	decode(t, resp, &d)
	assert.True(t, d.GrossMarginPct.IsZero())
}

func TestAnalytics_ProductRanking(t *testing.T) {
	app := buildTestApp(t)
	id := createProduct(t, app, "Entraña")
	purchase(t, app, id, "2024-02-01", 10, 5)
	resp := doJSON(t, app, http.MethodPost, "/api/sales", map[string]interface{}{
		"product_id": id, "sale_date": "2024-02-02", "quantity": 4, "unit_price": 10,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/analytics/products?from=2024-02-01&to=2024-02-29", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rep dto.MarginsReportDTO
	decode(t, resp, &rep)
	require.Len(t, rep.Ranking, 1)
	assert.Equal(t, "Entraña", rep.Ranking[0].ProductName)
	assert.True(t, rep.Ranking[0].Profit.Equal(decimal.NewFromInt(20)))
	assert.True(t, rep.Ranking[0].MarginPct.Equal(decimal.NewFromInt(50)))

	resp = doJSON(t, app, http.MethodGet, "/api/analytics/products?top_n=500", nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	var e dto.ErrorResponse
	decode(t, resp, &e)
	assert.Equal(t, "max=200", e.Fields["top_n"])
}

func TestExpenses_DeleteUnknownIs404(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodDelete, "/api/expenses/nada", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestReports_SalesXLSXHeaders(t *testing.T) {
	app := buildTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/reports/sales.xlsx", nil)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "spreadsheetml")
	assert.Contains(t, resp.Header.Get("Content-Disposition"), ".xlsx")
}

func TestRequestLogger_PropagatesRequestID(t *testing.T) {
	app := buildTestApp(t)
	req := httptest.NewRequest(http.MethodGet, "/api/catalog", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))
}
