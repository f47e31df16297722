// Package gateways defines interfaces for external system adapters.
package gateways

import "io"

// SignatureVerifier checks detached signatures
type SignatureVerifier interface {
	// VerifySignature verifies sigPath as a detached signature of the
	// content read from signed
	VerifySignature(signed io.Reader, sigPath string) error
}
