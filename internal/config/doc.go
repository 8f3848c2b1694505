// Package config defines the application configuration structure and
// loading logic. Settings arrive through environment variables with the
// STUDYAID_ prefix, are normalized (credential trimming, TTL floor,
// defaults), and are validated before the rest of the application sees
// them. Core components receive their configuration sections explicitly
// at construction time; nothing reads ambient state.
package config
