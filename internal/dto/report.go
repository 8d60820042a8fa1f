package dto

import "github.com/aminfam/family_wallet_app/internal/core/domain"

// StatementRowResponse is one exported row of the filtered log.
type StatementRowResponse struct {
	Timestamp string `json:"timestamp"`
	Item      string `json:"item"`
	Amount    string `json:"amount"`
	Account   string `json:"account"`
	Category  string `json:"category"`
	Kind      string `json:"kind"`
}

// StatementResponse is the JSON form of a statement export.
type StatementResponse struct {
	From string                 `json:"from"`
	To   string                 `json:"to"`
	Rows []StatementRowResponse `json:"rows"`
}

// ToStatementResponse converts domain statement rows to the API response shape.
func ToStatementResponse(rows []domain.StatementRow, from, to string) StatementResponse {
	out := make([]StatementRowResponse, len(rows))
	for i, r := range rows {
		out[i] = StatementRowResponse{
			Timestamp: r.Timestamp,
			Item:      r.Item,
			Amount:    r.Amount,
			Account:   r.Account,
			Category:  r.Category,
			Kind:      r.Kind,
		}
	}
	return StatementResponse{From: from, To: to, Rows: out}
}
