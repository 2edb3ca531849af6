package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"prestabanco/domain"
)

// RateRange is the annual interest band offered for a property type.
type RateRange struct {
	Type  domain.PropertyType `json:"value"`
	Label string              `json:"label"`
	Min   decimal.Decimal     `json:"minRate"`
	Max   decimal.Decimal     `json:"maxRate"`
}

var rateStep = decimal.RequireFromString("0.1")

var rateRanges = []RateRange{
	{Type: domain.FirstHome, Label: "Primera Vivienda", Min: decimal.RequireFromString("3.5"), Max: decimal.RequireFromString("5.0")},
	{Type: domain.SecondHome, Label: "Segunda Vivienda", Min: decimal.RequireFromString("4.0"), Max: decimal.RequireFromString("6.0")},
	{Type: domain.Commercial, Label: "Propiedades Comerciales", Min: decimal.RequireFromString("5.0"), Max: decimal.RequireFromString("7.0")},
	{Type: domain.Remodeling, Label: "Remodelación", Min: decimal.RequireFromString("4.5"), Max: decimal.RequireFromString("6.0")},
}

// RateRanges lists every property type with its band, in menu order.
func RateRanges() []RateRange {
	out := make([]RateRange, len(rateRanges))
	copy(out, rateRanges)
	return out
}

// RateRangeFor looks up the band; ok is false for an unknown type.
func RateRangeFor(pt domain.PropertyType) (RateRange, bool) {
	for _, r := range rateRanges {
		if r.Type == pt {
			return r, true
		}
	}
	return RateRange{}, false
}

// DefaultRate is the rate preselected when a type is chosen: the band minimum,
// or zero for an unknown type.
func DefaultRate(pt domain.PropertyType) decimal.Decimal {
	r, ok := RateRangeFor(pt)
	if !ok {
		return decimal.Zero
	}
	return r.Min
}

// Contains reports whether rate lies inside the band on a 0.1 step.
func (r RateRange) Contains(rate decimal.Decimal) bool {
	if rate.LessThan(r.Min) || rate.GreaterThan(r.Max) {
		return false
	}
	return rate.Mod(rateStep).IsZero()
}

func (r RateRange) String() string {
	return fmt.Sprintf("%s - Tasa: %s - %s", r.Label, FormatRate(r.Min), FormatRate(r.Max))
}

var propertyTypeNames = map[domain.PropertyType]string{
	domain.FirstHome:  "Primera Vivienda",
	domain.SecondHome: "Segunda Vivienda",
	domain.Commercial: "Propiedad Comercial",
	domain.Remodeling: "Remodelación",
}

// PropertyTypeName is the label used in application listings; unknown types
// are shown as-is.
func PropertyTypeName(pt domain.PropertyType) string {
	if name, ok := propertyTypeNames[pt]; ok {
		return name
	}
	return string(pt)
}
