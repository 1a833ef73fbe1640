package models

import (
	"strings"

	"gest35bi/apperrors"
)

// Months lists the twelve monthly value keys in calendar order.
var Months = []string{
	"janeiro",
	"fevereiro",
	"marco",
	"abril",
	"maio",
	"junho",
	"julho",
	"agosto",
	"setembro",
	"outubro",
	"novembro",
	"dezembro",
}

var monthLabels = map[string]string{
	"janeiro":   "Janeiro",
	"fevereiro": "Fevereiro",
	"marco":     "Março",
	"abril":     "Abril",
	"maio":      "Maio",
	"junho":     "Junho",
	"julho":     "Julho",
	"agosto":    "Agosto",
	"setembro":  "Setembro",
	"outubro":   "Outubro",
	"novembro":  "Novembro",
	"dezembro":  "Dezembro",
}

var monthAliases = map[string]string{
	"january":   "janeiro",
	"february":  "fevereiro",
	"march":     "marco",
	"april":     "abril",
	"may":       "maio",
	"june":      "junho",
	"july":      "julho",
	"august":    "agosto",
	"september": "setembro",
	"october":   "outubro",
	"november":  "novembro",
	"december":  "dezembro",
}

// NormalizeMonth maps a key or its English alias to the stored key. Matching
// is exact: no case folding, no diacritics.
func NormalizeMonth(key string) (string, bool) {
	if _, ok := monthLabels[key]; ok {
		return key, true
	}
	canonical, ok := monthAliases[key]
	return canonical, ok
}

// MonthLabel returns the display name of a stored month key.
func MonthLabel(key string) string {
	if label, ok := monthLabels[key]; ok {
		return label
	}
	return strings.ToUpper(key)
}

// MonthlyValues holds one free-text value per month. The field set is the
// whole key space; there is no way to add or drop a month.
type MonthlyValues struct {
	January   string `json:"janeiro" bson:"janeiro"`
	February  string `json:"fevereiro" bson:"fevereiro"`
	March     string `json:"marco" bson:"marco"`
	April     string `json:"abril" bson:"abril"`
	May       string `json:"maio" bson:"maio"`
	June      string `json:"junho" bson:"junho"`
	July      string `json:"julho" bson:"julho"`
	August    string `json:"agosto" bson:"agosto"`
	September string `json:"setembro" bson:"setembro"`
	October   string `json:"outubro" bson:"outubro"`
	November  string `json:"novembro" bson:"novembro"`
	December  string `json:"dezembro" bson:"dezembro"`
}

func (m *MonthlyValues) field(key string) *string {
	switch key {
	case "janeiro":
		return &m.January
	case "fevereiro":
		return &m.February
	case "marco":
		return &m.March
	case "abril":
		return &m.April
	case "maio":
		return &m.May
	case "junho":
		return &m.June
	case "julho":
		return &m.July
	case "agosto":
		return &m.August
	case "setembro":
		return &m.September
	case "outubro":
		return &m.October
	case "novembro":
		return &m.November
	case "dezembro":
		return &m.December
	}
	return nil
}

// Get returns the value stored for month (aliases accepted).
func (m MonthlyValues) Get(month string) (string, bool) {
	key, ok := NormalizeMonth(month)
	if !ok {
		return "", false
	}
	return *m.field(key), true
}

// Set overwrites a single month. Unknown months leave m untouched.
func (m *MonthlyValues) Set(month, value string) error {
	key, ok := NormalizeMonth(month)
	if !ok {
		return apperrors.NewInvalidMonthError(month)
	}
	*m.field(key) = value
	return nil
}

// Values returns the twelve values in calendar order.
func (m MonthlyValues) Values() []string {
	values := make([]string, 0, len(Months))
	for _, key := range Months {
		values = append(values, *m.field(key))
	}
	return values
}

// Filled counts months with a non-empty value.
func (m MonthlyValues) Filled() int {
	filled := 0
	for _, v := range m.Values() {
		if v != "" {
			filled++
		}
	}
	return filled
}
