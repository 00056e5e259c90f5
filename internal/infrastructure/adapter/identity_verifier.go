package adapter

import (
	"context"
	"fmt"

	"github.com/vahanafin/vahana/internal/domain/valueobject"
)

// StubIdentityVerifier is a development adapter for PAN and Aadhaar checks.
// It accepts any document that passes the format validation, standing in for
// the NSDL and UIDAI verification APIs. It implements port.IdentityVerifier.
type StubIdentityVerifier struct{}

// NewStubIdentityVerifier creates a new stub verifier.
func NewStubIdentityVerifier() *StubIdentityVerifier {
	return &StubIdentityVerifier{}
}

// VerifyPAN reports whether the PAN is well-formed.
func (v *StubIdentityVerifier) VerifyPAN(_ context.Context, pan string) (bool, error) {
	if pan == "" {
		return false, fmt.Errorf("PAN is required")
	}
	return valueobject.ValidPANFormat(pan), nil
}

// VerifyAadhaar reports whether the Aadhaar number is well-formed.
func (v *StubIdentityVerifier) VerifyAadhaar(_ context.Context, aadhaar string) (bool, error) {
	if aadhaar == "" {
		return false, fmt.Errorf("aadhaar number is required")
	}
	return valueobject.ValidAadhaarFormat(aadhaar), nil
}
