package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	orderdomain "github.com/Apurer/go-gin-backoffice/internal/domains/orders/domain"
)

// StatusOverviewRecord is one raw per-status count from the reporting source.
type StatusOverviewRecord struct {
	Status string
	Total  decimal.Decimal
}

// StatusTotal is one bar of the status histogram.
type StatusTotal struct {
	Status orderdomain.Status
	Total  decimal.Decimal
}

// HistogramOrder is the fixed display order; chart colours are assigned by position.
func HistogramOrder() []orderdomain.Status {
	return []orderdomain.Status{
		orderdomain.StatusCancel,
		orderdomain.StatusDelivered,
		orderdomain.StatusProcessing,
		orderdomain.StatusRefund,
		orderdomain.StatusDelivering,
		orderdomain.StatusReturn,
	}
}

// BuildStatusHistogram returns exactly one entry per status in HistogramOrder,
// zero where the source reported nothing. A status reported twice is rejected.
func BuildStatusHistogram(records []StatusOverviewRecord) ([]StatusTotal, error) {
	totals := make(map[orderdomain.Status]decimal.Decimal, len(records))
	for _, record := range records {
		status, err := orderdomain.ParseStatus(record.Status)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, record.Status)
		}
		if _, seen := totals[status]; seen {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateStatusKey, status)
		}
		if record.Total.IsNegative() {
			return nil, fmt.Errorf("%w: %s has %s", ErrInvalidSalesCount, status, record.Total)
		}
		totals[status] = record.Total
	}

	order := HistogramOrder()
	histogram := make([]StatusTotal, 0, len(order))
	for _, status := range order {
		histogram = append(histogram, StatusTotal{Status: status, Total: totals[status]})
	}
	return histogram, nil
}
