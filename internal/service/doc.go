// Package service contains the request orchestrator that composes the
// readability scorer, provider gateway, response recovery, and
// fingerprint cache into the two generation operations exposed over
// HTTP.
package service
