// Package domain contains the core types shared across the application:
// flashcards, chat messages, and the validation errors raised at the
// service boundary. Types here have no dependencies on transport,
// provider, or storage concerns.
package domain
