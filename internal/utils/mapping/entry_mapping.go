package mapping

import (
	"github.com/aminfam/family_wallet_app/internal/core/domain"
	"github.com/aminfam/family_wallet_app/internal/models"
)

// ToModelEntry converts a domain Entry to a model Entry
func ToModelEntry(d domain.Entry) models.Entry {
	var transferID *string
	if d.TransferID != "" {
		id := d.TransferID
		transferID = &id
	}
	return models.Entry{
		EntryID:    d.EntryID,
		TransferID: transferID,
		Item:       d.Item,
		Amount:     d.Amount,
		Category:   d.Category,
		Account:    string(d.Account),
		Kind:       string(d.Kind),
		CreatedAt:  d.CreatedAt,
	}
}

// ToDomainEntry converts a model Entry to a domain Entry
func ToDomainEntry(m models.Entry) domain.Entry {
	transferID := ""
	if m.TransferID != nil {
		transferID = *m.TransferID
	}
	return domain.Entry{
		EntryID:    m.EntryID,
		TransferID: transferID,
		Item:       m.Item,
		Amount:     m.Amount,
		Category:   m.Category,
		Account:    domain.Account(m.Account),
		Kind:       domain.Kind(m.Kind),
		CreatedAt:  m.CreatedAt,
	}
}

// ToDomainEntrySlice converts a slice of model Entries to a slice of domain Entries
func ToDomainEntrySlice(ms []models.Entry) []domain.Entry {
	ds := make([]domain.Entry, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEntry(m)
	}
	return ds
}
