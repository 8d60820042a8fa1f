package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/aminfam/family_wallet_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCandidateTransaction_AmountAcceptsStringOrNumber(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "quoted amount", body: `{"type":"expense","amount":"50"}`, want: "50"},
		{name: "numeric amount", body: `{"type":"expense","amount":50}`, want: "50"},
		{name: "numeric decimal amount", body: `{"type":"expense","amount":12.5}`, want: "12.5"},
		{name: "malformed amount survives decoding", body: `{"type":"expense","amount":"abc"}`, want: "abc"},
		{name: "absent amount decodes empty", body: `{"type":"expense"}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var c dto.CandidateTransaction
			require.NoError(t, json.Unmarshal([]byte(tt.body), &c))
			assert.Equal(t, tt.want, string(c.Amount))
		})
	}
}

func TestCandidateTransaction_RejectsNonScalarAmount(t *testing.T) {
	var c dto.CandidateTransaction
	err := json.Unmarshal([]byte(`{"type":"expense","amount":{"v":1}}`), &c)
	assert.Error(t, err)
}
