package usecase_test

import (
	"context"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/receipts/internal/domain"
	"github.com/iho/receipts/internal/usecase"
	"github.com/iho/receipts/internal/usecase/mocks"
)

const testBaseURL = "https://receipts.example.com/app"

func newTestShare(storage *mocks.MockStorage, locator *mocks.MockLocator, clipboard *mocks.MockClipboard) *usecase.ShareUseCase {
	clock := mocks.NewMockClock(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))
	persister := usecase.NewPersistUseCase(storage, clock, testSlotKey, zerolog.Nop())
	return usecase.NewShareUseCase(persister, locator, clipboard, clock, testBaseURL, zerolog.Nop())
}

func TestShareUseCase_RoundTrip(t *testing.T) {
	share := newTestShare(mocks.NewMockStorage(), mocks.NewMockLocator(""), mocks.NewMockClipboard())

	records := []domain.Record{
		{ID: 1, Vendor: "Test", Amount: decimal.RequireFromString("10"), Description: "desc", OccurredAt: "2024-01-01"},
		{ID: 2, Vendor: "Shop", Amount: decimal.RequireFromString("20.50"), Description: "desc2", OccurredAt: "2024-01-02"},
	}

	token, err := share.Encode(records)
	if err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}
	if strings.ContainsAny(token, "+/=") {
		t.Errorf("token is not URL safe: %q", token)
	}

	decoded := share.Decode(token)
	if len(decoded) != len(records) {
		t.Fatalf("expected %d records, got %d", len(records), len(decoded))
	}
	for i, want := range records {
		got := decoded[i]
		if got.ID != want.ID || got.Vendor != want.Vendor || got.Description != want.Description || got.OccurredAt != want.OccurredAt {
			t.Errorf("record %d: expected %+v, got %+v", i, want, got)
		}
		if !got.Amount.Equal(want.Amount) {
			t.Errorf("record %d: expected amount %s, got %s", i, want.Amount, got.Amount)
		}
	}
}

func TestShareUseCase_DecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{
			name:  "empty token",
			token: "",
		},
		{
			name:  "not base64",
			token: "!!!not-base64!!!",
		},
		{
			name:  "base64 of non-json",
			token: base64.RawURLEncoding.EncodeToString([]byte("hello world")),
		},
		{
			name:  "base64 of a non-array",
			token: base64.RawURLEncoding.EncodeToString([]byte(`{"id":1}`)),
		},
		{
			name:  "array of non-tuples",
			token: base64.RawURLEncoding.EncodeToString([]byte(`[1,2,3]`)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			share := newTestShare(mocks.NewMockStorage(), mocks.NewMockLocator(""), mocks.NewMockClipboard())
			if got := share.Decode(tt.token); got != nil {
				t.Errorf("expected nil for malformed token, got %+v", got)
			}
		})
	}
}

func TestShareUseCase_DecodeDefaults(t *testing.T) {
	share := newTestShare(mocks.NewMockStorage(), mocks.NewMockLocator(""), mocks.NewMockClipboard())

	// Tuples with falsy or missing slots and a hostile amount.
	token := base64.RawURLEncoding.EncodeToString([]byte(`[[0,"",null,"",""],[3,"Shop","abc"]]`))

	decoded := share.Decode(token)
	if len(decoded) != 2 {
		t.Fatalf("expected 2 records, got %d", len(decoded))
	}

	first := decoded[0]
	if first.ID != 1 {
		t.Errorf("expected id to default to 1, got %d", first.ID)
	}
	if first.Vendor != usecase.DefaultVendor {
		t.Errorf("expected vendor to default, got %q", first.Vendor)
	}
	if !first.Amount.IsZero() {
		t.Errorf("expected amount to default to zero, got %s", first.Amount)
	}
	if first.Description != usecase.DefaultDescription {
		t.Errorf("expected description to default, got %q", first.Description)
	}
	if first.OccurredAt != "2024-03-01T12:00:00.000Z" {
		t.Errorf("expected occurredAt to default to the clock time, got %q", first.OccurredAt)
	}

	second := decoded[1]
	if !second.Amount.IsZero() {
		t.Errorf("expected non-numeric amount to coerce to zero, got %s", second.Amount)
	}
	if second.Description != usecase.DefaultDescription {
		t.Errorf("expected missing description slot to default, got %q", second.Description)
	}
}

func TestShareUseCase_Link(t *testing.T) {
	share := newTestShare(mocks.NewMockStorage(), mocks.NewMockLocator(""), mocks.NewMockClipboard())

	records := []domain.Record{
		{ID: 1, Vendor: "Test", Amount: decimal.RequireFromString("10"), Description: "desc", OccurredAt: "2024-01-01"},
	}

	link, err := share.Link(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(link, testBaseURL+"?d=") {
		t.Errorf("expected link on the base URL with the share parameter, got %q", link)
	}
	if !strings.HasSuffix(link, "#shared-receipts") {
		t.Errorf("expected the fragment marker, got %q", link)
	}
}

func TestShareUseCase_BootstrapImportsAndScrubs(t *testing.T) {
	storage := mocks.NewMockStorage()
	locator := mocks.NewMockLocator("")
	clipboard := mocks.NewMockClipboard()
	share := newTestShare(storage, locator, clipboard)

	records := []domain.Record{
		{ID: 1, Vendor: "Test", Amount: decimal.RequireFromString("10"), Description: "desc", OccurredAt: "2024-01-01"},
		{ID: 2, Vendor: "Shop", Amount: decimal.RequireFromString("20"), Description: "desc2", OccurredAt: "2024-01-02"},
	}

	link, err := share.Link(records)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	locator.Replace(context.Background(), link)

	adopted := share.Bootstrap(context.Background())
	if len(adopted) != 2 {
		t.Fatalf("expected the 2 shared records, got %d", len(adopted))
	}
	if adopted[0].Vendor != "Test" || adopted[1].Vendor != "Shop" {
		t.Errorf("unexpected adopted records: %+v", adopted)
	}

	if strings.Contains(locator.Address(), "d=") {
		t.Errorf("expected share parameter scrubbed from address, got %q", locator.Address())
	}

	// A reload without the token finds the imported records persisted.
	locator.Replace(context.Background(), testBaseURL)
	reloaded := share.Bootstrap(context.Background())
	if len(reloaded) != 2 {
		t.Fatalf("expected persisted import on reload, got %d records", len(reloaded))
	}
	if reloaded[0].Vendor != "Test" || reloaded[1].Vendor != "Shop" {
		t.Errorf("unexpected reloaded records: %+v", reloaded)
	}
}

func TestShareUseCase_BootstrapWithoutToken(t *testing.T) {
	tests := []struct {
		name    string
		address string
	}{
		{
			name:    "no address",
			address: "",
		},
		{
			name:    "address without share parameter",
			address: testBaseURL + "?other=1",
		},
		{
			name:    "address with malformed token",
			address: testBaseURL + "?d=garbage",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			share := newTestShare(mocks.NewMockStorage(), mocks.NewMockLocator(tt.address), mocks.NewMockClipboard())

			records := share.Bootstrap(context.Background())
			if len(records) != 5 {
				t.Errorf("expected the default list, got %d records", len(records))
			}
		})
	}
}

func TestShareUseCase_CopyLink(t *testing.T) {
	t.Run("writes the link", func(t *testing.T) {
		clipboard := mocks.NewMockClipboard()
		share := newTestShare(mocks.NewMockStorage(), mocks.NewMockLocator(""), clipboard)

		if err := share.CopyLink(context.Background(), "https://example.com?d=abc"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		writes := clipboard.Writes()
		if len(writes) != 1 || writes[0] != "https://example.com?d=abc" {
			t.Errorf("unexpected clipboard writes: %v", writes)
		}
	})

	t.Run("surfaces failure without retry", func(t *testing.T) {
		clipboard := mocks.NewMockClipboard()
		calls := 0
		clipboard.WriteFunc = func(ctx context.Context, text string) error {
			calls++
			return errors.New("clipboard unavailable")
		}
		share := newTestShare(mocks.NewMockStorage(), mocks.NewMockLocator(""), clipboard)

		if err := share.CopyLink(context.Background(), "x"); err == nil {
			t.Error("expected error, got nil")
		}
		if calls != 1 {
			t.Errorf("expected exactly one write attempt, got %d", calls)
		}
	})
}
