// Package config holds the validated settings of the crypto facade: logging and RSA parameters.
//
// Settings are plain structs populated by the caller (CLI flags or code) and checked with
// Validate before use. Defaults reproduce the behaviour historical callers rely on.
package config
