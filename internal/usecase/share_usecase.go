package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/iho/receipts/internal/domain"
)

const (
	// ShareParam is the query parameter carrying an encoded record list.
	ShareParam = "d"

	// shareFragment marks generated links as shared data for downstream
	// tooling. It carries no data.
	shareFragment = "shared-receipts"

	// DefaultVendor replaces a missing vendor slot on decode.
	DefaultVendor = "Unknown Store"
)

// ShareUseCase encodes the full record list into a URL-safe token and back,
// and arbitrates between an inbound share token and persisted state at
// startup. The encoding is obfuscation for link compactness, not security:
// there is no integrity check and no tamper detection.
type ShareUseCase struct {
	persister *PersistUseCase
	locator   Locator
	clipboard Clipboard
	clock     Clock
	baseURL   string
	logger    zerolog.Logger
}

// NewShareUseCase creates a new ShareUseCase. Links are built on baseURL with
// any pre-existing query and fragment dropped.
func NewShareUseCase(persister *PersistUseCase, locator Locator, clipboard Clipboard, clock Clock, baseURL string, logger zerolog.Logger) *ShareUseCase {
	return &ShareUseCase{
		persister: persister,
		locator:   locator,
		clipboard: clipboard,
		clock:     clock,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// Encode serializes records into an unpadded URL-safe base64 token. Field
// names are dropped: each record becomes the fixed-order tuple
// (id, vendor, amount, description, occurredAt).
func (uc *ShareUseCase) Encode(records []domain.Record) (string, error) {
	tuples := make([][]any, 0, len(records))
	for _, r := range records {
		tuples = append(tuples, []any{
			r.ID,
			r.Vendor,
			json.Number(r.Amount.String()),
			r.Description,
			r.OccurredAt,
		})
	}

	blob, err := json.Marshal(tuples)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(blob), nil
}

// Decode reverses Encode. It returns nil, never an error, when the token is
// empty, malformed or does not decode to a tuple array: callers treat nil as
// "no inbound share data". Missing or falsy tuple slots take defaults; a
// non-numeric amount coerces to zero silently.
func (uc *ShareUseCase) Decode(token string) []domain.Record {
	if token == "" {
		return nil
	}

	blob, err := base64.RawURLEncoding.DecodeString(strings.TrimRight(token, "="))
	if err != nil {
		uc.logger.Warn().Err(err).Msg("malformed share token")
		return nil
	}

	var tuples [][]json.RawMessage
	if err := json.Unmarshal(blob, &tuples); err != nil {
		uc.logger.Warn().Err(err).Msg("share token is not a tuple array")
		return nil
	}

	records := make([]domain.Record, 0, len(tuples))
	for _, tuple := range tuples {
		records = append(records, uc.recordFromTuple(tuple))
	}
	return records
}

func (uc *ShareUseCase) recordFromTuple(tuple []json.RawMessage) domain.Record {
	id := tupleInt(tuple, 0)
	if id == 0 {
		id = 1
	}

	vendor := tupleString(tuple, 1)
	if vendor == "" {
		vendor = DefaultVendor
	}

	description := tupleString(tuple, 3)
	if description == "" {
		description = DefaultDescription
	}

	occurredAt := tupleString(tuple, 4)
	if occurredAt == "" {
		occurredAt = uc.clock.Now().Format("2006-01-02T15:04:05.000Z")
	}

	return domain.Record{
		ID:          id,
		Vendor:      vendor,
		Amount:      tupleAmount(tuple, 2),
		Description: description,
		OccurredAt:  occurredAt,
	}
}

func tupleInt(tuple []json.RawMessage, i int) int64 {
	if i >= len(tuple) {
		return 0
	}
	var n int64
	if err := json.Unmarshal(tuple[i], &n); err != nil {
		return 0
	}
	return n
}

func tupleString(tuple []json.RawMessage, i int) string {
	if i >= len(tuple) {
		return ""
	}
	var s string
	if err := json.Unmarshal(tuple[i], &s); err != nil {
		return ""
	}
	return s
}

// tupleAmount coerces the amount slot to a decimal. Numbers and numeric
// strings both count; anything else is zero.
func tupleAmount(tuple []json.RawMessage, i int) decimal.Decimal {
	if i >= len(tuple) {
		return decimal.Zero
	}

	var n json.Number
	if err := json.Unmarshal(tuple[i], &n); err != nil {
		var s string
		if err := json.Unmarshal(tuple[i], &s); err != nil {
			return decimal.Zero
		}
		n = json.Number(s)
	}

	amount, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// Link builds the full shareable URL: the encoded token as the single share
// query parameter on the base URL, with the fragment marker appended.
func (uc *ShareUseCase) Link(records []domain.Record) (string, error) {
	token, err := uc.Encode(records)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(uc.baseURL)
	if err != nil {
		return "", err
	}

	q := url.Values{}
	q.Set(ShareParam, token)
	u.RawQuery = q.Encode()
	u.Fragment = shareFragment

	return u.String(), nil
}

// CopyLink writes link to the clipboard. Fire and forget: no retry is
// attempted on failure, the caller surfaces the outcome once.
func (uc *ShareUseCase) CopyLink(ctx context.Context, link string) error {
	if err := uc.clipboard.Write(ctx, link); err != nil {
		uc.logger.Warn().Err(err).Msg("failed to copy share link to clipboard")
		return err
	}
	return nil
}

// Bootstrap resolves the initial record list for a session. An inbound share
// token on the current address wins: its records are adopted, persisted over
// whatever was stored before (last writer wins, no merge) and the parameter
// is stripped from the visible address so a reload does not re-import.
// Otherwise the persisted list, or the default list, is loaded.
func (uc *ShareUseCase) Bootstrap(ctx context.Context) []domain.Record {
	records := uc.importFromAddress(ctx)
	if len(records) > 0 {
		return records
	}
	return uc.persister.Load(ctx)
}

func (uc *ShareUseCase) importFromAddress(ctx context.Context) []domain.Record {
	address, err := uc.locator.Current(ctx)
	if err != nil || address == "" {
		return nil
	}

	u, err := url.Parse(address)
	if err != nil {
		uc.logger.Warn().Err(err).Msg("unparseable session address")
		return nil
	}

	q := u.Query()
	records := uc.Decode(q.Get(ShareParam))
	if len(records) == 0 {
		return nil
	}

	uc.persister.Save(ctx, records)

	q.Del(ShareParam)
	u.RawQuery = q.Encode()
	if err := uc.locator.Replace(ctx, u.String()); err != nil {
		uc.logger.Warn().Err(err).Msg("failed to scrub share token from address")
	}

	uc.logger.Info().Int("records", len(records)).Msg("imported shared records")
	return records
}
