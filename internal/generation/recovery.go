package generation

import (
	"encoding/json"
	"strings"

	"github.com/askary/studyaid-api/internal/domain"
)

// MalformedResponseMessage is the client-facing message for responses
// that could not be salvaged into a flashcard array.
const MalformedResponseMessage = "Malformed provider response."

// RecoverCards extracts a flashcard array from raw model output.
//
// Models regularly wrap the requested JSON in prose ("Sure! [...] Hope
// that helps."), so recovery is two-phase: parse raw directly, and if
// that fails parse the span from the first '[' to the last ']'. The
// first-to-last bracket span is deliberate; no bracket balancing is
// attempted. If both phases fail the result is a KindRecovery *Error.
//
// The parsed document must itself be an array: a bare "null" also
// unmarshals cleanly into a slice, but it is not a flashcard array and
// is rejected.
func RecoverCards(raw string) ([]domain.Flashcard, error) {
	var cards []domain.Flashcard

	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		if err := json.Unmarshal([]byte(trimmed), &cards); err == nil {
			return cards, nil
		}
	}

	start := strings.Index(raw, "[")
	end := strings.LastIndex(raw, "]")
	if start >= 0 && end > start {
		if err := json.Unmarshal([]byte(raw[start:end+1]), &cards); err == nil {
			return cards, nil
		}
	}

	return nil, NewError(KindRecovery, MalformedResponseMessage)
}
