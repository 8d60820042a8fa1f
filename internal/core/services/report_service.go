package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/aminfam/family_wallet_app/internal/apperrors"
	"github.com/aminfam/family_wallet_app/internal/core/domain"
	portsrepo "github.com/aminfam/family_wallet_app/internal/core/ports/repositories"
	"github.com/aminfam/family_wallet_app/internal/utils/categories"
)

// statementTimeFormat matches the statement layout of the exported file.
const statementTimeFormat = "2006-01-02 03:04 PM"

type reportService struct {
	entryRepo      portsrepo.EntryRepositoryFacade
	loc            *time.Location
	storageTimeout time.Duration
}

// NewReportService creates the statement formatter over the entry log.
func NewReportService(entryRepo portsrepo.EntryRepositoryFacade, loc *time.Location, storageTimeout time.Duration) *reportService {
	return &reportService{entryRepo: entryRepo, loc: loc, storageTimeout: storageTimeout}
}

// Statement returns display rows for entries with from <= timestamp <= to,
// newest first. Categories are re-normalized on read so old labels render
// canonically; amounts keep their sign at three decimal places.
func (s *reportService) Statement(ctx context.Context, from, to time.Time) ([]domain.StatementRow, error) {
	readCtx, cancel := context.WithTimeout(ctx, s.storageTimeout)
	defer cancel()
	entries, err := s.entryRepo.ListAllEntries(readCtx)
	if err != nil {
		return nil, fmt.Errorf("%w: reading entry log: %v", apperrors.ErrStorage, err)
	}

	filtered := entries[:0:0]
	for _, e := range entries {
		if !from.IsZero() && e.CreatedAt.Before(from) {
			continue
		}
		if !to.IsZero() && e.CreatedAt.After(to) {
			continue
		}
		filtered = append(filtered, e)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
	})

	rows := make([]domain.StatementRow, len(filtered))
	for i, e := range filtered {
		rows[i] = domain.StatementRow{
			Timestamp: e.CreatedAt.In(s.loc).Format(statementTimeFormat),
			Item:      e.Item,
			Amount:    e.Amount.StringFixed(3),
			Account:   string(e.Account),
			Category:  categories.Normalize(e.Category),
			Kind:      string(e.Kind),
		}
	}
	return rows, nil
}
