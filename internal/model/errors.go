package model

import "github.com/rotisserie/eris"

// Sentinel errors for the core error taxonomy. Validation errors
// (ErrLocationNotFound, ErrInvalidLocation, ErrInvalidDate) surface to the
// caller as client errors. ErrAssessorUnavailable and ErrDataIntegrity are
// internal: the pipeline absorbs them and degrades to the fallback scorer.
var (
	// ErrLocationNotFound means a name resolved to nothing above the fuzzy
	// match threshold.
	ErrLocationNotFound = eris.New("location not found")

	// ErrInvalidLocation means a record is missing or carries coordinates
	// outside the valid degree ranges.
	ErrInvalidLocation = eris.New("invalid location")

	// ErrInvalidDate means a departure date fails the past/future window.
	ErrInvalidDate = eris.New("invalid departure date")

	// ErrAssessorUnavailable means the external risk assessor timed out,
	// errored, or returned an unparseable or out-of-range result.
	ErrAssessorUnavailable = eris.New("risk assessor unavailable")

	// ErrDataIntegrity means a reference record was missing required
	// attributes at lookup time. Treated as a bug, never a request failure.
	ErrDataIntegrity = eris.New("reference data integrity violation")
)
