package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aminfam/family_wallet_app/internal/apperrors"
	"github.com/aminfam/family_wallet_app/internal/core/domain"
	portsrepo "github.com/aminfam/family_wallet_app/internal/core/ports/repositories"
	"github.com/aminfam/family_wallet_app/internal/dto"
	"github.com/aminfam/family_wallet_app/internal/utils/accounting"
	"github.com/aminfam/family_wallet_app/internal/utils/categories"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// defaultItem substitutes for an absent description so Item is never empty.
const defaultItem = "unspecified"

type recorderService struct {
	entryRepo      portsrepo.EntryRepositoryFacade
	loc            *time.Location
	storageTimeout time.Duration
	now            func() time.Time
}

// RecorderOption configures a recorderService.
type RecorderOption func(*recorderService)

// WithRecorderClock overrides the time source, for tests.
func WithRecorderClock(now func() time.Time) RecorderOption {
	return func(s *recorderService) { s.now = now }
}

// NewRecorderService creates the service that turns candidate transactions
// into immutable ledger entries. loc is the fixed ledger offset; timestamps
// are taken in it at call time and never normalized afterwards.
func NewRecorderService(entryRepo portsrepo.EntryRepositoryFacade, loc *time.Location, storageTimeout time.Duration, opts ...RecorderOption) *recorderService {
	s := &recorderService{
		entryRepo:      entryRepo,
		loc:            loc,
		storageTimeout: storageTimeout,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Record validates and normalizes a candidate, then appends one entry, or two
// for a transfer. Validation happens entirely before any write, so a failure
// never partially appends.
func (s *recorderService) Record(ctx context.Context, candidate dto.CandidateTransaction) ([]domain.Entry, error) {
	kind := domain.RequestKind(strings.ToLower(strings.TrimSpace(candidate.Type)))
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownKind, candidate.Type)
	}

	amountStr := strings.TrimSpace(string(candidate.Amount))
	if amountStr == "" {
		return nil, fmt.Errorf("%w: amount missing", apperrors.ErrInvalidAmount)
	}
	magnitude, err := decimal.NewFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidAmount, amountStr)
	}

	item := strings.TrimSpace(candidate.Item)
	if item == "" {
		item = defaultItem
	}

	account := domain.Account(strings.TrimSpace(candidate.Account))
	if account == "" {
		account = domain.AccountCash
	}

	now := s.now().In(s.loc)

	if kind == domain.RequestTransfer {
		return s.recordTransfer(ctx, account, candidate.ToAccount, magnitude, now)
	}

	signed, err := accounting.SignedAmount(domain.Kind(kind), magnitude)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownKind, kind)
	}

	entry := domain.Entry{
		EntryID:   uuid.NewString(),
		Item:      item,
		Amount:    signed,
		Category:  categories.Normalize(candidate.Category),
		Account:   account,
		Kind:      domain.Kind(kind),
		CreatedAt: now,
	}

	saveCtx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()
	if err := s.entryRepo.SaveEntry(saveCtx, entry); err != nil {
		return nil, fmt.Errorf("%w: saving entry: %v", apperrors.ErrStorage, err)
	}
	return []domain.Entry{entry}, nil
}

// recordTransfer materializes a transfer request as an out/in pair with equal
// magnitude, opposite sign, the same timestamp, and a shared transfer ID, so
// the pair always conserves money. A self-transfer (to == from) is permitted
// and nets to zero.
func (s *recorderService) recordTransfer(ctx context.Context, from domain.Account, toRaw string, magnitude decimal.Decimal, now time.Time) ([]domain.Entry, error) {
	to := domain.Account(strings.TrimSpace(toRaw))
	if to == "" {
		to = domain.AccountCash
	}

	transferID := uuid.NewString()
	abs := magnitude.Abs()

	out := domain.Entry{
		EntryID:    uuid.NewString(),
		TransferID: transferID,
		Item:       fmt.Sprintf("Transfer out to %s", to),
		Amount:     abs.Neg(),
		Category:   categories.CategoryTransfers,
		Account:    from,
		Kind:       domain.KindTransferOut,
		CreatedAt:  now,
	}
	in := domain.Entry{
		EntryID:    uuid.NewString(),
		TransferID: transferID,
		Item:       fmt.Sprintf("Transfer in from %s", from),
		Amount:     abs,
		Category:   categories.CategoryTransfers,
		Account:    to,
		Kind:       domain.KindTransferIn,
		CreatedAt:  now,
	}

	saveCtx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()
	if err := s.entryRepo.SaveEntryPair(saveCtx, out, in); err != nil {
		return nil, fmt.Errorf("%w: saving transfer pair: %v", apperrors.ErrStorage, err)
	}
	return []domain.Entry{out, in}, nil
}
