// Package format da formato a montos, cantidades y fechas para reportes (estilo es-AR).
package format

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DateLayout formato de fecha usado en la API (YYYY-MM-DD).
const DateLayout = "2006-01-02"

var errInvertedRange = errors.New("la fecha final es anterior a la inicial")

var printer = message.NewPrinter(language.MustParse("es-AR"))

// Money formatea un monto con dos decimales y separadores locales: "$ 12.345,50".
func Money(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return "$ " + printer.Sprint(number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Quantity formatea kilos con hasta tres decimales: "12,5 kg".
func Quantity(d decimal.Decimal) string {
	f, _ := d.Round(3).Float64()
	return printer.Sprint(number.Decimal(f, number.MaxFractionDigits(3))) + " kg"
}

// Percent formatea un porcentaje: "50 %".
func Percent(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprint(number.Decimal(f, number.MaxFractionDigits(2))) + " %"
}

// Date formatea una fecha como DD/MM/YYYY.
func Date(t time.Time) string {
	return t.Format("02/01/2006")
}

// ParseDate interpreta YYYY-MM-DD. Si s está vacío devuelve def.
func ParseDate(s string, def time.Time) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	// Acepta también fechas ISO completas (las del respaldo JSON).
	if len(s) > len(DateLayout) {
		if t, err := time.Parse(time.RFC3339, s); err == nil {
			return t, nil
		}
		s = s[:len(DateLayout)]
	}
	return time.Parse(DateLayout, s)
}

// Today fecha de hoy a las 00:00 en UTC.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseRange interpreta un rango YYYY-MM-DD inclusivo. Extremos vacíos quedan en cero (sin límite);
// el extremo final se lleva al último instante del día.
func ParseRange(from, to string) (time.Time, time.Time, error) {
	start, err := ParseDate(from, time.Time{})
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := ParseDate(to, time.Time{})
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if !end.IsZero() {
		end = end.Add(24*time.Hour - time.Nanosecond)
	}
	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		return time.Time{}, time.Time{}, errInvertedRange
	}
	return start, end, nil
}
