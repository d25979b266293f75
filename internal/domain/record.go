package domain

import (
	"github.com/shopspring/decimal"
)

// Record is one purchase entry in the tracker.
type Record struct {
	ID          int64
	Vendor      string
	Amount      decimal.Decimal
	Description string
	// OccurredAt is an ISO-8601 timestamp string. It is kept as a string
	// because imported data may carry unparseable values; display code is
	// responsible for degrading gracefully.
	OccurredAt string
}

// AddRecordInput carries every Record field except the id, which is
// assigned by the store.
type AddRecordInput struct {
	Vendor      string
	Amount      decimal.Decimal
	Description string
	OccurredAt  string
}

// NextID returns the id for the next record appended to records:
// max of the existing ids plus one, or 1 for an empty list.
func NextID(records []Record) int64 {
	var max int64
	for _, r := range records {
		if r.ID > max {
			max = r.ID
		}
	}
	return max + 1
}

// TotalAmount sums the amounts of records. Zero for an empty list.
func TotalAmount(records []Record) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(r.Amount)
	}
	return total
}
