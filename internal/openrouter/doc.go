// Package openrouter is a minimal client for the OpenRouter chat completions
// API, which multiplexes hosted models behind an OpenAI-compatible wire
// format.
//
// Rate limits and 5xx responses are retried with exponential back-off;
// authentication failures are typed and never retried. The HTTP client is a
// struct field so tests can point the client at a local httptest server.
package openrouter
