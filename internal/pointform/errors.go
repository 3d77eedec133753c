package pointform

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidSelection    = errors.New("invalid selection")
	ErrLocationUnavailable = errors.New("location unavailable")
	ErrSubmitInProgress    = errors.New("submission already in progress")
)

// Lookup sources reported by LookupFailure.
const (
	SourceRegions    = "regions"
	SourceSubRegions = "sub_regions"
	SourceCatalog    = "catalog"
)

// LookupFailure reports a failed region, city or catalog fetch. The affected
// list stays empty and the fetch is not retried.
type LookupFailure struct {
	Source string
	Err    error
}

func (e *LookupFailure) Error() string {
	return fmt.Sprintf("%s lookup failed: %v", e.Source, e.Err)
}

func (e *LookupFailure) Unwrap() error {
	return e.Err
}

// Draft fields in the order Validate checks them.
const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldRegion    = "region"
	FieldSubRegion = "subRegion"
	FieldPosition  = "position"
	FieldItems     = "items"
)

type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("field %s is required", e.Field)
}

// SubmissionError carries the registration collaborator's error unchanged.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	if e.Err == nil {
		return "submission failed"
	}
	return e.Err.Error()
}

func (e *SubmissionError) Unwrap() error {
	return e.Err
}
