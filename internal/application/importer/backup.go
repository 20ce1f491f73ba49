// Package importer carga en el almacenamiento un respaldo JSON de la aplicación anterior.
package importer

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Claves del respaldo (localStorage de la aplicación anterior).
const (
	KeyProducts      = "sabri_v2_productos"
	KeyPurchases     = "sabri_v2_compras"
	KeySales         = "sabri_v2_ventas"
	KeyExpenses      = "sabri_v2_gastos"
	KeyDistributions = "sabri_v2_distribuciones"
)

// Backup contenido del respaldo ya decodificado.
type Backup struct {
	Products      []BackupProduct
	Purchases     []BackupPurchase
	Sales         []BackupSale
	Expenses      []BackupExpense
	Distributions []BackupDistribution
}

// BackupProduct producto tal como lo guardaba la aplicación anterior.
type BackupProduct struct {
	ID            flexString  `json:"id"`
	Name          flexString  `json:"nombre"`
	Description   flexString  `json:"descripcion"`
	Category      flexString  `json:"categoria"`
	Image         flexString  `json:"imagen"`
	ManualPrice   flexDecimal `json:"precio_manual"`
	VisibleInShop *bool       `json:"visible_catalogo"`
	ProfitMargin  flexDecimal `json:"margen_ganancia"`
}

// BackupPurchase lote de compra.
type BackupPurchase struct {
	ID        flexString  `json:"id"`
	ProductID flexString  `json:"producto_id"`
	Quantity  flexDecimal `json:"cantidad_kg"`
	Remaining flexDecimal `json:"cantidad_disponible"`
	UnitCost  flexDecimal `json:"costo_unitario"`
	Date      flexString  `json:"fecha"`
	CreatedAt flexString  `json:"creado_en"` // epoch en milisegundos
}

// BackupSale venta ya costeada.
type BackupSale struct {
	ID          flexString  `json:"id"`
	ProductID   flexString  `json:"producto_id"`
	ProductName flexString  `json:"producto_nombre"`
	Quantity    flexDecimal `json:"cantidad_vendida"`
	UnitPrice   flexDecimal `json:"precio_venta_unitario"`
	Revenue     flexDecimal `json:"ingreso_total"`
	Cost        flexDecimal `json:"costo_calculado"`
	Profit      flexDecimal `json:"ganancia"`
	Date        flexString  `json:"fecha"`
}

// BackupExpense gasto. Versiones viejas usan "descripcion" en lugar de "concepto".
type BackupExpense struct {
	ID          flexString  `json:"id"`
	Concept     flexString  `json:"concepto"`
	Description flexString  `json:"descripcion"`
	Amount      flexDecimal `json:"monto"`
	Date        flexString  `json:"fecha"`
}

// BackupDistribution reparto registrado; el producto se guardaba solo por nombre.
type BackupDistribution struct {
	ID                     flexString  `json:"id"`
	Date                   flexString  `json:"fecha"`
	Product                flexString  `json:"producto"`
	Quantity               flexDecimal `json:"cantidad"`
	BasePrice              flexDecimal `json:"base_price"`
	ShippingCost           flexDecimal `json:"shipping_cost"`
	SalePrice              flexDecimal `json:"sale_price"`
	PartnerSharePercentage flexDecimal `json:"partner_share_percentage"`
}

// Parse lee el respaldo. Cada clave puede venir como arreglo JSON o como el string
// serializado que guardaba localStorage. Claves ausentes = secciones vacías.
func Parse(r io.Reader) (*Backup, error) {
	var raw map[string]json.RawMessage
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("decodificar respaldo: %w", err)
	}
	var b Backup
	sections := []struct {
		key string
		out any
	}{
		{KeyProducts, &b.Products},
		{KeyPurchases, &b.Purchases},
		{KeySales, &b.Sales},
		{KeyExpenses, &b.Expenses},
		{KeyDistributions, &b.Distributions},
	}
	for _, s := range sections {
		if err := section(raw[s.key], s.out); err != nil {
			return nil, fmt.Errorf("%s: %w", s.key, err)
		}
	}
	return &b, nil
}

func section(raw json.RawMessage, out any) error {
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil
	}
	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return err
		}
		if strings.TrimSpace(inner) == "" {
			return nil
		}
		raw = json.RawMessage(inner)
	}
	return json.Unmarshal(raw, out)
}

// flexString acepta string o número JSON (los IDs eran Date.now()).
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("valor no textual: %s", b)
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) String() string { return string(f) }

// millis interpreta el valor como epoch en milisegundos.
func (f flexString) millis() (time.Time, bool) {
	ms, err := strconv.ParseInt(string(f), 10, 64)
	if err != nil || ms <= 0 {
		return time.Time{}, false
	}
	return time.UnixMilli(ms).UTC(), true
}

// flexDecimal acepta número, string numérico ("12.5" o "12,5"), vacío o null.
type flexDecimal struct {
	Value decimal.Decimal
	Valid bool
}

func (f *flexDecimal) UnmarshalJSON(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"`)
	s = strings.TrimSpace(s)
	if s == "" || s == "null" {
		*f = flexDecimal{}
		return nil
	}
	if !strings.Contains(s, ".") {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("número inválido %q", s)
	}
	*f = flexDecimal{Value: d, Valid: true}
	return nil
}

// or devuelve el valor o def si no venía en el respaldo.
func (f flexDecimal) or(def decimal.Decimal) decimal.Decimal {
	if !f.Valid {
		return def
	}
	return f.Value
}

// ptr nil si no venía o si no es positivo.
func (f flexDecimal) positivePtr() *decimal.Decimal {
	if !f.Valid || !f.Value.GreaterThan(decimal.Zero) {
		return nil
	}
	v := f.Value
	return &v
}
