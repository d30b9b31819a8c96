// Package secretbox encrypts small secret strings (third-party provider
// API keys) for storage in a database, using AES-256-GCM.
//
// The package also provides masking for safe display and per-provider
// format pre-validation. It performs no I/O and never logs secret
// material; the key is injected once at construction and rotating it
// requires a process restart.
package secretbox
