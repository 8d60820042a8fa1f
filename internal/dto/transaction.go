package dto

import (
	"encoding/json"
	"time"

	"github.com/aminfam/family_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FlexString decodes from either a JSON string or a JSON number. Classifier
// output is inconsistent about quoting amounts, and malformed values must
// survive decoding so the recorder can reject them with a typed error.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = FlexString(n.String())
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*f = FlexString(s)
	return nil
}

// CandidateTransaction is the classifier's output: every field is optional
// and may be malformed. The recorder validates it at the boundary, turning
// missing or bad fields into typed error values.
type CandidateTransaction struct {
	Type      string     `json:"type"`
	Item      string     `json:"item"`
	Amount    FlexString `json:"amount"`
	Category  string     `json:"category"`
	Account   string     `json:"account"`
	ToAccount string     `json:"to_account"`
}

// RecordTransactionRequest submits a candidate transaction directly, skipping
// the classifier.
type RecordTransactionRequest struct {
	Type      string     `json:"type" binding:"required"`
	Item      string     `json:"item"`
	Amount    FlexString `json:"amount" binding:"required"`
	Category  string     `json:"category"`
	Account   string     `json:"account"`
	ToAccount string     `json:"to_account"`
}

// ToCandidate converts the request into the candidate shape the recorder
// validates.
func (r RecordTransactionRequest) ToCandidate() CandidateTransaction {
	return CandidateTransaction{
		Type:      r.Type,
		Item:      r.Item,
		Amount:    r.Amount,
		Category:  r.Category,
		Account:   r.Account,
		ToAccount: r.ToAccount,
	}
}

// ClassifyRequest carries raw input for the classifier: free text, or an
// image as base64 with its MIME type.
type ClassifyRequest struct {
	Text          string `json:"text"`
	ImageBase64   string `json:"imageBase64"`
	ImageMIMEType string `json:"imageMimeType"`
}

// EntryResponse is one ledger entry as returned by the API.
type EntryResponse struct {
	EntryID    string          `json:"entryID"`
	TransferID string          `json:"transferID,omitempty"`
	Item       string          `json:"item"`
	Amount     decimal.Decimal `json:"amount"`
	Category   string          `json:"category"`
	Account    string          `json:"account"`
	Kind       string          `json:"kind"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// RecordTransactionResponse reports the entries appended by one record call:
// one entry for most kinds, two for a transfer.
type RecordTransactionResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a domain.Entry to an EntryResponse DTO
func ToEntryResponse(e domain.Entry) EntryResponse {
	return EntryResponse{
		EntryID:    e.EntryID,
		TransferID: e.TransferID,
		Item:       e.Item,
		Amount:     e.Amount,
		Category:   e.Category,
		Account:    string(e.Account),
		Kind:       string(e.Kind),
		CreatedAt:  e.CreatedAt,
	}
}

// ToListEntryResponse converts a slice of domain.Entry to EntryResponse DTOs
func ToListEntryResponse(entries []domain.Entry) []EntryResponse {
	res := make([]EntryResponse, len(entries))
	for i, e := range entries {
		res[i] = ToEntryResponse(e)
	}
	return res
}
