package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/receipts/internal/domain"
	"github.com/iho/receipts/internal/usecase"
	"github.com/iho/receipts/internal/usecase/mocks"
)

const testSlotKey = "invoices-and-receipts-items"

func newTestPersister(storage *mocks.MockStorage) *usecase.PersistUseCase {
	clock := mocks.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	return usecase.NewPersistUseCase(storage, clock, testSlotKey, zerolog.Nop())
}

func TestRecordUseCase_Add(t *testing.T) {
	tests := []struct {
		name    string
		initial []domain.Record
		wantID  int64
	}{
		{
			name:    "first record gets id one",
			initial: nil,
			wantID:  1,
		},
		{
			name: "id is max plus one",
			initial: []domain.Record{
				{ID: 1, Vendor: "A"},
				{ID: 2, Vendor: "B"},
			},
			wantID: 3,
		},
		{
			name: "deleted ids are not reused",
			initial: []domain.Record{
				{ID: 4, Vendor: "A"},
			},
			wantID: 5,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := mocks.NewMockStorage()
			uc := usecase.NewRecordUseCase(tt.initial, newTestPersister(storage), zerolog.Nop())

			records := uc.Add(context.Background(), domain.AddRecordInput{
				Vendor:      "MediaMarkt",
				Amount:      decimal.RequireFromString("9.99"),
				Description: "batteries",
				OccurredAt:  "2024-03-01T00:00:00.000Z",
			})

			last := records[len(records)-1]
			if last.ID != tt.wantID {
				t.Errorf("expected id %d, got %d", tt.wantID, last.ID)
			}
			if last.Vendor != "MediaMarkt" {
				t.Errorf("expected vendor MediaMarkt, got %q", last.Vendor)
			}
			if len(records) != len(tt.initial)+1 {
				t.Errorf("expected %d records, got %d", len(tt.initial)+1, len(records))
			}
		})
	}
}

func TestRecordUseCase_AddWritesThrough(t *testing.T) {
	storage := mocks.NewMockStorage()
	uc := usecase.NewRecordUseCase(nil, newTestPersister(storage), zerolog.Nop())

	uc.Add(context.Background(), domain.AddRecordInput{
		Vendor:      "IKEA",
		Amount:      decimal.RequireFromString("67.00"),
		Description: "shelf",
		OccurredAt:  "2024-03-01T00:00:00.000Z",
	})

	if _, err := storage.Get(context.Background(), testSlotKey); err != nil {
		t.Errorf("expected slot to be written after add, got %v", err)
	}
}

func TestRecordUseCase_Delete(t *testing.T) {
	tests := []struct {
		name     string
		deleteID int64
		wantIDs  []int64
	}{
		{
			name:     "removes matching record",
			deleteID: 2,
			wantIDs:  []int64{1, 3},
		},
		{
			name:     "absent id is a no-op",
			deleteID: 99,
			wantIDs:  []int64{1, 2, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			initial := []domain.Record{{ID: 1}, {ID: 2}, {ID: 3}}
			storage := mocks.NewMockStorage()
			uc := usecase.NewRecordUseCase(initial, newTestPersister(storage), zerolog.Nop())

			records := uc.Delete(context.Background(), tt.deleteID)

			if len(records) != len(tt.wantIDs) {
				t.Fatalf("expected %d records, got %d", len(tt.wantIDs), len(records))
			}
			for i, want := range tt.wantIDs {
				if records[i].ID != want {
					t.Errorf("record %d: expected id %d, got %d", i, want, records[i].ID)
				}
			}
		})
	}
}

func TestRecordUseCase_Clear(t *testing.T) {
	storage := mocks.NewMockStorage()
	persister := newTestPersister(storage)
	uc := usecase.NewRecordUseCase(persister.DefaultRecords(), persister, zerolog.Nop())

	uc.Clear(context.Background())

	if len(uc.List()) != 0 {
		t.Errorf("expected empty list after clear, got %d records", len(uc.List()))
	}

	// The slot is gone, so a reload yields the default list again.
	loaded := persister.Load(context.Background())
	if len(loaded) != 5 {
		t.Errorf("expected the 5 default records after clear, got %d", len(loaded))
	}
}

func TestRecordUseCase_Total(t *testing.T) {
	tests := []struct {
		name    string
		amounts []string
		want    string
	}{
		{
			name:    "empty list totals zero",
			amounts: nil,
			want:    "0",
		},
		{
			name:    "sums amounts",
			amounts: []string{"10", "20"},
			want:    "30",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var initial []domain.Record
			for i, a := range tt.amounts {
				initial = append(initial, domain.Record{
					ID:     int64(i + 1),
					Amount: decimal.RequireFromString(a),
				})
			}

			uc := usecase.NewRecordUseCase(initial, newTestPersister(mocks.NewMockStorage()), zerolog.Nop())

			if got := uc.Total(); got.String() != tt.want {
				t.Errorf("expected total %s, got %s", tt.want, got.String())
			}
		})
	}
}
