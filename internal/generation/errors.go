package generation

// Kind classifies a generation failure. The distinction lets callers
// tell "provider refused/failed" apart from "provider answered but
// unusably" without string matching.
type Kind int

const (
	// KindConfiguration covers failures detected before any network
	// I/O, such as a missing API key.
	KindConfiguration Kind = iota + 1

	// KindTransport covers network-level failures: DNS, connection,
	// and timeout errors.
	KindTransport

	// KindProvider covers semantic failures reported by the provider:
	// a non-200 status or a success envelope missing the expected
	// message content.
	KindProvider

	// KindRecovery covers responses that arrived intact but could not
	// be salvaged into the expected JSON structure.
	KindRecovery
)

// Error is the failure variant of a generation result. Message is safe
// to surface to API callers; Err, when set, preserves the underlying
// cause for logs.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewError returns a generation failure of the given kind with a
// client-safe message.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError is like NewError but also records the underlying cause.
func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
