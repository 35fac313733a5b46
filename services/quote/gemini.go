// File: services/quote/gemini.go
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"seven18/models"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

const geminiModel = "gemini-2.5-flash"

// Customer-facing failure messages.
const (
	msgQuoteUnavailable       = "AI service is currently unavailable. Please contact us directly for a quote."
	msgInspirationUnavailable = "AI service is currently unavailable. Please contact us directly for event inspiration."
	msgQuoteFailed            = "We had trouble generating your quote. Please check your details or try again later."
	msgInspirationFailed      = "We had trouble generating inspiration. Please try again."
)

// GeminiPricer implements Pricer and Stylist against the Gemini API. A
// pricer constructed without an API key keeps its models nil and fails
// fast with a service-unavailable error before any network call.
type GeminiPricer struct {
	quoteModel       *genai.GenerativeModel
	inspirationModel *genai.GenerativeModel
	logger           *zap.Logger
}

// NewGeminiPricer creates a pricer. An empty apiKey yields a pricer whose
// calls reject immediately; client construction errors are logged and
// treated the same way.
func NewGeminiPricer(apiKey string, logger *zap.Logger) *GeminiPricer {
	p := &GeminiPricer{logger: logger}
	if apiKey == "" {
		logger.Warn("GEMINI_API_KEY not set; quote and inspiration generation disabled")
		return p
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		logger.Error("failed to create Gemini client; quote generation disabled", zap.Error(err))
		return p
	}

	quoteModel := client.GenerativeModel(geminiModel)
	quoteModel.ResponseMIMEType = "application/json"
	quoteModel.ResponseSchema = quoteSchema

	inspirationModel := client.GenerativeModel(geminiModel)
	inspirationModel.ResponseMIMEType = "application/json"
	inspirationModel.ResponseSchema = inspirationSchema

	p.quoteModel = quoteModel
	p.inspirationModel = inspirationModel
	return p
}

// Available reports whether the upstream service is configured.
func (p *GeminiPricer) Available() bool {
	return p.quoteModel != nil
}

// GenerateQuote builds the quote prompt, sends it, and parses the JSON
// reply into a BookingQuote.
func (p *GeminiPricer) GenerateQuote(ctx context.Context, form models.BookingFormData) (*models.BookingQuote, error) {
	if p.quoteModel == nil {
		return nil, newError(CodeServiceUnavailable, msgQuoteUnavailable, nil)
	}

	text, err := p.generate(ctx, p.quoteModel, BuildQuotePrompt(form))
	if err != nil {
		p.logger.Error("gemini quote request failed", zap.Error(err))
		return nil, newError(CodeUpstream, msgQuoteFailed, err)
	}

	result, err := parseQuote([]byte(text))
	if err != nil {
		p.logger.Error("gemini quote reply failed to parse", zap.Error(err))
		return nil, newError(CodeMalformedResponse, msgQuoteFailed, err)
	}
	return result, nil
}

// GenerateInspiration builds the styling prompt and parses the reply.
func (p *GeminiPricer) GenerateInspiration(ctx context.Context, eventType, details string) (*models.EventInspiration, error) {
	if p.inspirationModel == nil {
		return nil, newError(CodeServiceUnavailable, msgInspirationUnavailable, nil)
	}

	text, err := p.generate(ctx, p.inspirationModel, BuildInspirationPrompt(eventType, details))
	if err != nil {
		p.logger.Error("gemini inspiration request failed", zap.Error(err))
		return nil, newError(CodeUpstream, msgInspirationFailed, err)
	}

	result, err := parseInspiration([]byte(text))
	if err != nil {
		p.logger.Error("gemini inspiration reply failed to parse", zap.Error(err))
		return nil, newError(CodeMalformedResponse, msgInspirationFailed, err)
	}
	return result, nil
}

func (p *GeminiPricer) generate(ctx context.Context, model *genai.GenerativeModel, prompt string) (string, error) {
	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

func parseQuote(data []byte) (*models.BookingQuote, error) {
	var q models.BookingQuote
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("decode quote reply: %w", err)
	}
	if q.Summary == "" || q.Quote.PackageName == "" {
		return nil, fmt.Errorf("quote reply missing required fields")
	}
	if q.Quote.BaseCost < 0 || q.Quote.WeekendSurcharge < 0 || q.Quote.TotalEstimate < 0 {
		return nil, fmt.Errorf("quote reply contains negative amounts")
	}
	return &q, nil
}

func parseInspiration(data []byte) (*models.EventInspiration, error) {
	var ins models.EventInspiration
	if err := json.Unmarshal(data, &ins); err != nil {
		return nil, fmt.Errorf("decode inspiration reply: %w", err)
	}
	if ins.ThemeName == "" || ins.SignatureCocktail.Name == "" {
		return nil, fmt.Errorf("inspiration reply missing required fields")
	}
	return &ins, nil
}
