package hymix

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrTooFewSheets indicates the workbook lacks a coefficient or sample sheet.
var ErrTooFewSheets = errors.New("workbook needs at least two sheets")

// ErrNoSamples indicates the sample sheet has no usable rows.
var ErrNoSamples = errors.New("sample sheet has no valid rows")

// ErrInvalidOption indicates an unknown kind or method.
var ErrInvalidOption = errors.New("invalid option")

// SheetError represents an error while reading one sheet.
type SheetError struct {
	SheetName string
	Component string // "coefficients", "samples"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, component string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}

// OptionError reports an unusable option value.
type OptionError struct {
	Field string
	Value string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("%v: %s %q", ErrInvalidOption, e.Field, e.Value)
}

func (e *OptionError) Unwrap() error {
	return ErrInvalidOption
}
