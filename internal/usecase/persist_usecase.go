package usecase

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/receipts/internal/domain"
)

// DefaultDescription replaces a missing description on load and decode.
const DefaultDescription = "No description"

// PersistUseCase reads and writes the full record list to one named slot in
// a Storage medium. Storage failures never escape it: a failed write is a
// logged no-op and a failed read degrades to the built-in default list.
// Persistence is an optimization here, not a correctness requirement.
type PersistUseCase struct {
	storage Storage
	clock   Clock
	key     string
	logger  zerolog.Logger
}

// NewPersistUseCase creates a new PersistUseCase writing to the slot named key.
func NewPersistUseCase(storage Storage, clock Clock, key string, logger zerolog.Logger) *PersistUseCase {
	return &PersistUseCase{
		storage: storage,
		clock:   clock,
		key:     key,
		logger:  logger,
	}
}

// storedRecord is the canonical persisted shape.
type storedRecord struct {
	ID          int64       `json:"id"`
	Vendor      string      `json:"vendor"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
	OccurredAt  string      `json:"occurredAt"`
}

// loadedRecord is the read-side shape. It accepts the canonical field names
// plus the recognized legacy aliases carried over from older persisted data:
// retailStore (vendor), price (amount) and date (occurredAt).
type loadedRecord struct {
	ID          int64       `json:"id"`
	Vendor      string      `json:"vendor"`
	RetailStore string      `json:"retailStore"`
	Amount      json.Number `json:"amount"`
	Price       json.Number `json:"price"`
	Description string      `json:"description"`
	OccurredAt  string      `json:"occurredAt"`
	Date        string      `json:"date"`
}

// Save serializes records into the slot. Best effort: any storage or
// serialization failure is logged and swallowed, and the in-memory list is
// never affected.
func (uc *PersistUseCase) Save(ctx context.Context, records []domain.Record) {
	stored := make([]storedRecord, 0, len(records))
	for _, r := range records {
		stored = append(stored, storedRecord{
			ID:          r.ID,
			Vendor:      r.Vendor,
			Amount:      json.Number(r.Amount.String()),
			Description: r.Description,
			OccurredAt:  r.OccurredAt,
		})
	}

	blob, err := json.Marshal(stored)
	if err != nil {
		uc.logger.Error().Err(err).Msg("failed to serialize records")
		return
	}

	if err := uc.storage.Set(ctx, uc.key, string(blob)); err != nil {
		uc.logger.Error().Err(err).Str("key", uc.key).Msg("failed to save records to storage")
	}
}

// Load reads the slot and returns the normalized record list. An absent
// slot, a storage failure or an unparseable blob all yield the built-in
// default list; this is the deliberate first-run experience, not an error.
func (uc *PersistUseCase) Load(ctx context.Context) []domain.Record {
	blob, err := uc.storage.Get(ctx, uc.key)
	if err != nil {
		if err != domain.ErrSlotNotFound {
			uc.logger.Error().Err(err).Str("key", uc.key).Msg("failed to load records from storage")
		}
		return uc.DefaultRecords()
	}

	var loaded []loadedRecord
	if err := json.Unmarshal([]byte(blob), &loaded); err != nil {
		uc.logger.Error().Err(err).Str("key", uc.key).Msg("failed to parse stored records")
		return uc.DefaultRecords()
	}

	records := make([]domain.Record, 0, len(loaded))
	for _, l := range loaded {
		records = append(records, uc.normalize(l))
	}
	return records
}

// normalize maps a loaded entry to the canonical Record shape, resolving
// legacy aliases and filling the two fields older data may lack.
func (uc *PersistUseCase) normalize(l loadedRecord) domain.Record {
	vendor := l.Vendor
	if vendor == "" {
		vendor = l.RetailStore
	}

	rawAmount := l.Amount
	if rawAmount == "" {
		rawAmount = l.Price
	}
	amount, err := decimal.NewFromString(rawAmount.String())
	if err != nil {
		amount = decimal.Zero
	}

	description := l.Description
	if description == "" {
		description = DefaultDescription
	}

	occurredAt := l.OccurredAt
	if occurredAt == "" {
		occurredAt = l.Date
	}
	if occurredAt == "" {
		occurredAt = uc.clock.Now().Format("2006-01-02T15:04:05.000Z")
	}

	return domain.Record{
		ID:          l.ID,
		Vendor:      vendor,
		Amount:      amount,
		Description: description,
		OccurredAt:  occurredAt,
	}
}

// Clear deletes the slot. A subsequent Load returns the default list.
func (uc *PersistUseCase) Clear(ctx context.Context) {
	if err := uc.storage.Delete(ctx, uc.key); err != nil {
		uc.logger.Error().Err(err).Str("key", uc.key).Msg("failed to clear storage slot")
	}
}

// DefaultRecords returns the fixed sample list shown on first run and
// whenever stored data is absent or unreadable.
func (uc *PersistUseCase) DefaultRecords() []domain.Record {
	return []domain.Record{
		{ID: 1, Vendor: "MediaMarkt", Amount: decimal.RequireFromString("42.50"), Description: "Bluetooth headphones", OccurredAt: "2024-01-15T00:00:00.000Z"},
		{ID: 2, Vendor: "Carrefour", Amount: decimal.RequireFromString("28.90"), Description: "Weekly groceries", OccurredAt: "2024-01-18T00:00:00.000Z"},
		{ID: 3, Vendor: "Amazon", Amount: decimal.RequireFromString("35.75"), Description: "USB-C cable and adapter", OccurredAt: "2024-01-20T00:00:00.000Z"},
		{ID: 4, Vendor: "IKEA", Amount: decimal.RequireFromString("67.00"), Description: "Desk organizer set", OccurredAt: "2024-01-22T00:00:00.000Z"},
		{ID: 5, Vendor: "Saturn", Amount: decimal.RequireFromString("159.99"), Description: "Wireless mouse and keyboard", OccurredAt: "2024-01-25T00:00:00.000Z"},
	}
}
