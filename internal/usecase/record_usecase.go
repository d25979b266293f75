package usecase

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/receipts/internal/domain"
)

// RecordUseCase holds the authoritative in-memory record list for the
// session. Every mutation writes through to the persistence layer; the
// write is best effort and never fails the mutation.
//
// All operations are synchronous and single-writer. The session is the only
// writer of its slot, so no locking is needed.
type RecordUseCase struct {
	records   []domain.Record
	persister *PersistUseCase
	logger    zerolog.Logger
}

// NewRecordUseCase creates a RecordUseCase seeded with initial.
func NewRecordUseCase(initial []domain.Record, persister *PersistUseCase, logger zerolog.Logger) *RecordUseCase {
	return &RecordUseCase{
		records:   initial,
		persister: persister,
		logger:    logger,
	}
}

// Add appends a new record built from input, assigning the next id. Field
// contents are not validated here; that is the calling surface's concern.
// Returns the new full list.
func (uc *RecordUseCase) Add(ctx context.Context, input domain.AddRecordInput) []domain.Record {
	record := domain.Record{
		ID:          domain.NextID(uc.records),
		Vendor:      input.Vendor,
		Amount:      input.Amount,
		Description: input.Description,
		OccurredAt:  input.OccurredAt,
	}

	uc.records = append(uc.records, record)
	uc.persister.Save(ctx, uc.records)

	uc.logger.Debug().Int64("id", record.ID).Str("vendor", record.Vendor).Msg("record added")
	return uc.records
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op, not an error.
func (uc *RecordUseCase) Delete(ctx context.Context, id int64) []domain.Record {
	kept := uc.records[:0]
	for _, r := range uc.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	uc.records = kept
	uc.persister.Save(ctx, uc.records)
	return uc.records
}

// Clear empties the list unconditionally and deletes the storage slot.
func (uc *RecordUseCase) Clear(ctx context.Context) {
	uc.records = nil
	uc.persister.Clear(ctx)
}

// Total returns the sum of all record amounts. Zero for an empty list.
func (uc *RecordUseCase) Total() decimal.Decimal {
	return domain.TotalAmount(uc.records)
}

// List returns the current ordered record list.
func (uc *RecordUseCase) List() []domain.Record {
	return uc.records
}
