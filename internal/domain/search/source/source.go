package source

// Source identifies which extraction path produced a search's term groups.
type Source string

// Source constants.
const (
	// OpenAI means the remote LLM extractor produced the terms.
	OpenAI Source = "openai"
	// Local means the deterministic stop-word tokenizer produced the terms.
	Local Source = "local"
	// Vision means the caller supplied pre-extracted terms (e.g. from an image pass).
	Vision Source = "vision"
)

// IsValid checks if the source is one of the supported values.
func (s Source) IsValid() bool {
	return s == OpenAI || s == Local || s == Vision
}
