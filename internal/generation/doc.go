// Package generation defines the boundary between the application core
// and external chat-completion backends: the Provider interface, the
// typed failure taxonomy, and best-effort recovery of structured data
// from noisy model output. Concrete providers live under
// internal/platform and are supplied to the service layer by
// constructor injection, never through a global registry.
package generation
