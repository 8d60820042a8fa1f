// Package gemini adapts the Gemini API into the candidate-transaction
// classifier consumed by the recorder. The model is treated as opaque:
// anything it returns that is not valid JSON surfaces as a classification
// error, never as a crash.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aminfam/family_wallet_app/internal/apperrors"
	"github.com/aminfam/family_wallet_app/internal/core/domain"
	portssvc "github.com/aminfam/family_wallet_app/internal/core/ports/services"
	"github.com/aminfam/family_wallet_app/internal/dto"
	"github.com/aminfam/family_wallet_app/internal/utils/categories"
	"google.golang.org/genai"
)

// Classifier calls Gemini to turn free text or a receipt image into a
// candidate transaction.
type Classifier struct {
	client *genai.Client
	model  string
}

var _ portssvc.ClassifierSvcFacade = (*Classifier)(nil)

// New creates a classifier. apiKey may be empty, in which case the genai
// client falls back to its environment configuration.
func New(ctx context.Context, apiKey, model string) (*Classifier, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Classifier{client: client, model: model}, nil
}

// ClassifyText extracts a candidate transaction from a free-text description,
// typically Arabic.
func (c *Classifier) ClassifyText(ctx context.Context, text string) (*dto.CandidateTransaction, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: buildPrompt()},
				{Text: "Input: " + text},
			},
		},
	}
	return c.generate(ctx, contents)
}

// ClassifyImage extracts a candidate transaction from a receipt or screenshot.
func (c *Classifier) ClassifyImage(ctx context.Context, mimeType string, data []byte) (*dto.CandidateTransaction, error) {
	contents := []*genai.Content{
		{
			Role: "user",
			Parts: []*genai.Part{
				{Text: buildPrompt()},
				{
					InlineData: &genai.Blob{
						MIMEType: mimeType,
						Data:     data,
					},
				},
			},
		},
	}
	return c.generate(ctx, contents)
}

func (c *Classifier) generate(ctx context.Context, contents []*genai.Content) (*dto.CandidateTransaction, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: generate content: %v", apperrors.ErrClassification, err)
	}

	rawText := resp.Text()
	if rawText == "" {
		return nil, fmt.Errorf("%w: empty response from model", apperrors.ErrClassification)
	}

	clean := cleanModelJSON(rawText)

	var candidate dto.CandidateTransaction
	if err := json.Unmarshal([]byte(clean), &candidate); err != nil {
		return nil, fmt.Errorf("%w: unmarshal model output: %v", apperrors.ErrClassification, err)
	}
	return &candidate, nil
}

// buildPrompt assembles the extraction instructions. Item details are kept
// verbatim rather than summarized, matching how the owner phrases entries.
func buildPrompt() string {
	kinds := []string{
		string(domain.RequestIncome), string(domain.RequestExpense),
		string(domain.RequestTransfer), string(domain.RequestLend),
		string(domain.RequestBorrow), string(domain.RequestRepayIn),
		string(domain.RequestRepayOut),
	}
	accounts := make([]string, len(domain.FixedAccounts))
	for i, a := range domain.FixedAccounts {
		accounts[i] = string(a)
	}

	return "You are a personal accountant for a meticulous engineer. The input " +
		"is a short transaction description, usually in Arabic, or a receipt image.\n\n" +
		"Strict rules:\n" +
		"1. \"item\": keep the details exactly as given; do not abbreviate or summarize.\n" +
		"2. \"amount\": the number, precisely.\n" +
		"3. \"account\": one of " + strings.Join(accounts, ", ") + ".\n" +
		"4. \"type\": one of " + strings.Join(kinds, ", ") + ".\n" +
		"5. \"category\": one of " + strings.Join(categories.All(), ", ") + ".\n" +
		"6. \"to_account\": only for transfers, the destination account.\n\n" +
		"Output STRICT JSON only with keys: type, item, amount, category, account, to_account.\n" +
		"Do NOT wrap the response in code fences.\n" +
		"Do NOT use ```json or any Markdown.\n" +
		"Output must begin with \"{\" and end with \"}\".\n"
}

// cleanModelJSON strips Markdown fences and surrounding junk if the model
// ignored the formatting instructions.
func cleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			return s
		}
		s = strings.TrimSpace(s)
	}

	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}

	s = strings.TrimSpace(s)

	// Keep only from the first '{' to the last '}' if there is still junk
	// around the JSON object.
	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end != -1 && end > start {
			s = strings.TrimSpace(s[start : end+1])
		}
	}

	return s
}
