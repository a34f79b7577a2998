package domain

import (
	"fmt"
	"strings"
)

// TopSellingRecord is one ranked product. The source decides the ranking.
type TopSellingRecord struct {
	Name string
	Sold int64
}

// NormalizeTopSelling validates the ranked list and trims product names,
// keeping the order it was given.
func NormalizeTopSelling(records []TopSellingRecord) ([]TopSellingRecord, error) {
	out := make([]TopSellingRecord, 0, len(records))
	for i, record := range records {
		name := strings.TrimSpace(record.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: rank %d", ErrEmptyProductName, i+1)
		}
		if record.Sold < 0 {
			return nil, fmt.Errorf("%w: %q sold %d", ErrInvalidSalesCount, name, record.Sold)
		}
		out = append(out, TopSellingRecord{Name: name, Sold: record.Sold})
	}
	return out, nil
}
