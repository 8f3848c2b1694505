package domain

// Flashcard is a single question/answer pair generated from source text.
// The JSON field names match the wire contract the model is instructed
// to produce, so the same type is used for provider-response parsing,
// caching, and API responses.
type Flashcard struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}
