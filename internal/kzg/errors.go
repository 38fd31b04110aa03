package kzg

import "errors"

var (
	// ErrLengthMismatch is returned when a and b (or a selector and the
	// domain) do not have matching lengths.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrCommitLengthExceedsKey is returned when a caller asks to commit
	// more elements than the public key holds.
	ErrCommitLengthExceedsKey = errors.New("vector length exceeds public key length")

	// ErrInverseNonexistent guards the m=0 case, which NewDomain makes
	// structurally unreachable (NextPowerOfTwo(m) is always >= 1).
	ErrInverseNonexistent = errors.New("domain size has no multiplicative inverse")

	// ErrVerifyOpeningProof is returned by Verify when either pairing
	// equation fails to hold. It never discloses which one.
	ErrVerifyOpeningProof = errors.New("verification failed")

	// ErrRemainderNotShifted is an internal invariant violation: the
	// remainder of L(X)/t(X) must have a zero constant term by
	// construction (see Open, step 5). Surfacing it as a distinct error
	// lets a faulty interpolation be caught instead of silently
	// producing a proof for the wrong polynomial.
	ErrRemainderNotShifted = errors.New("remainder of division by the vanishing polynomial has a nonzero constant term")
)
