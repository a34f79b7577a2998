package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

const MonthsPerYear = 12

// SalesRecord is one (method, month, total) tuple for a reporting year.
type SalesRecord struct {
	Method string
	Month  int
	Total  decimal.Decimal
}

// Series holds one total per month, index 0 is January.
type Series [MonthsPerYear]decimal.Decimal

// MonthlySeries keeps the methods in first-appearance order next to their series.
type MonthlySeries struct {
	Methods  []string
	byMethod map[string]*Series
}

// Series returns the series for method.
func (m *MonthlySeries) Series(method string) (Series, bool) {
	if m == nil {
		return Series{}, false
	}
	series, ok := m.byMethod[method]
	if !ok {
		return Series{}, false
	}
	return *series, true
}

// Len reports the number of payment methods.
func (m *MonthlySeries) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Methods)
}

// BuildMonthlySeries groups sales by payment method into zero-filled twelve month
// series. A repeated (method, month) pair overwrites the earlier value.
func BuildMonthlySeries(records []SalesRecord) (*MonthlySeries, error) {
	out := &MonthlySeries{byMethod: make(map[string]*Series)}
	for _, record := range records {
		if record.Month < 1 || record.Month > MonthsPerYear {
			return nil, fmt.Errorf("%w: got %d for %q", ErrInvalidMonth, record.Month, record.Method)
		}
		series, ok := out.byMethod[record.Method]
		if !ok {
			series = &Series{}
			out.byMethod[record.Method] = series
			out.Methods = append(out.Methods, record.Method)
		}
		series[record.Month-1] = record.Total
	}
	return out, nil
}
