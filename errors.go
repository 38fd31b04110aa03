package lvc

import "errors"

// Sentinel errors returned by this package. Wrapped internal errors can be
// unwrapped with errors.Is against these.
var (
	// ErrSetupDomainUnavailable is returned when NewSetup is asked for a
	// vector length with no corresponding evaluation domain in Fr.
	ErrSetupDomainUnavailable = errors.New("no evaluation domain of the requested size exists in Fr")

	// ErrCommitLengthExceedsKey is returned when a vector is longer than
	// the public key it is committed against.
	ErrCommitLengthExceedsKey = errors.New("vector length exceeds public key length")

	// ErrInverseNonexistent guards a domain size with no multiplicative
	// inverse. Structurally unreachable once a Setup has been built,
	// since its cardinality is always the result of rounding an input
	// >= 1 up to a power of two.
	ErrInverseNonexistent = errors.New("domain size has no multiplicative inverse")

	// ErrLengthMismatch is returned when a and b, or a selector and the
	// domain, do not have matching lengths.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrVerificationFailed is returned by Verify when a proof does not
	// hold, without disclosing which of the two pairing checks failed.
	ErrVerificationFailed = errors.New("verification failed")

	// ErrSerializationInvalid is returned when decoding bytes that are
	// not a canonical, on-curve, correct-subgroup encoding.
	ErrSerializationInvalid = errors.New("invalid serialized encoding")
)
