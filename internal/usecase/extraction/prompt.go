package extraction

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kailas-cloud/thriftfind/internal/domain"
	"github.com/kailas-cloud/thriftfind/internal/domain/term"
)

// SystemPrompt instructs a chat model to answer with term groups as JSON.
const SystemPrompt = `You turn shopping search queries into search terms for a marketplace of secondhand and handmade goods.
Respond with a single JSON object and nothing else, shaped exactly like:
{"terms": [{"term": "vintage", "variants": ["vintage", "retro", "antique"]}]}
Rules:
- Drop filler words, pronouns, politeness and who the item is for.
- Keep only words that describe the item, its style, mood, material or purpose.
- Use one lowercase word or short phrase per term and list close spellings or synonyms as variants.
- Merge obvious synonyms into one term.
- Do not classify terms into fields or categories.`

// UserPrompt folds the instructions and the query into one user message for
// chat APIs that take no separate system field.
func UserPrompt(query string) string {
	return SystemPrompt + "\n\nQuery: " + query
}

type termsPayload struct {
	Terms *[]struct {
		Term     string   `json:"term"`
		Variants []string `json:"variants"`
	} `json:"terms"`
}

// ParseTerms decodes the model's message content. The JSON object may be
// wrapped in a markdown code fence or surrounded by prose.
func ParseTerms(content string) ([]term.Group, error) {
	raw := jsonObject(content)
	if raw == "" {
		return nil, fmt.Errorf("no JSON object in response: %w", domain.ErrExtraction)
	}

	var payload termsPayload
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return nil, fmt.Errorf("decode terms: %v: %w", err, domain.ErrExtraction)
	}
	if payload.Terms == nil {
		return nil, fmt.Errorf("response has no terms array: %w", domain.ErrExtraction)
	}

	groups := make([]term.Group, 0, len(*payload.Terms))
	for _, t := range *payload.Terms {
		groups = append(groups, term.Group{Term: t.Term, Variants: t.Variants})
	}
	return groups, nil
}

// jsonObject returns the outermost {...} span of s, or "".
func jsonObject(s string) string {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start < 0 || end < start {
		return ""
	}
	return s[start : end+1]
}
