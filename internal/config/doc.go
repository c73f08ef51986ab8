// Package config loads and merges reviewgate configuration from multiple
// sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables, in three spellings: plain (GITHUB_TOKEN,
//     MODEL_ID, ...), GitHub Actions inputs (INPUT_GITHUB_TOKEN, ...), and
//     REVIEWGATE_ prefixed
//  3. Project config file (.reviewgate.yml in the working tree)
//  4. Built-in defaults
//
// The two credentials (github_token, open_router_key) are required; every
// other option has a usable default or is optional.
package config
