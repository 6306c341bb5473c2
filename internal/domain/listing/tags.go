package listing

import (
	"encoding/json"
	"strings"
)

// Tags is a uniform ordered sequence of tag strings.
//
// Tag columns arrive in three shapes depending on who wrote the row: a real
// array, a JSON-encoded array string, or a comma-separated string. ParseTags
// collapses all three into Tags.
type Tags []string

// tagCutset is trimmed from both ends of every tag.
const tagCutset = " \t\r\n\"'[]"

// ParseTags normalizes a raw tag column value. Unknown shapes and malformed
// input yield nil rather than an error.
func ParseTags(raw any) Tags {
	switch v := raw.(type) {
	case nil:
		return nil
	case Tags:
		return cleanTags(v)
	case []string:
		return cleanTags(v)
	case []any:
		strs := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				strs = append(strs, s)
			}
		}
		return cleanTags(strs)
	case string:
		return parseTagString(v)
	case []byte:
		return parseTagString(string(v))
	case json.RawMessage:
		return parseTagString(string(v))
	default:
		return nil
	}
}

func parseTagString(s string) Tags {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.HasPrefix(s, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			return cleanTags(arr)
		}
		// Malformed JSON falls through to comma splitting; the cutset strips the
		// stray brackets and quotes.
	}
	return cleanTags(strings.Split(s, ","))
}

func cleanTags(in []string) Tags {
	out := make(Tags, 0, len(in))
	for _, t := range in {
		t = strings.Trim(t, tagCutset)
		t = strings.Join(strings.Fields(t), " ")
		if t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// UnmarshalJSON accepts an array, a JSON-array string, a CSV string or null.
func (t *Tags) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err //nolint:wrapcheck // surfaced by encoding/json with field context
	}
	*t = ParseTags(raw)
	return nil
}

// String encodes the tags as a JSON array, the canonical storage form.
func (t Tags) String() string {
	if len(t) == 0 {
		return "[]"
	}
	b, err := json.Marshal([]string(t))
	if err != nil {
		return "[]"
	}
	return string(b)
}
