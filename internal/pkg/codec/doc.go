// Package codec converts between raw byte sequences and their textual forms.
//
// Hex output is always lowercase with two characters per byte. Hex input is read
// against the same fixed lowercase alphabet and malformed input is rejected with
// ErrInvalidHex rather than decoded into undefined bytes. The base64 helpers use the
// standard padded alphabet, which is the form RSA key blobs and signatures travel in.
package codec
