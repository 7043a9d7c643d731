package xlinspect

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrFileAccess indicates the input file exists but cannot be read.
var ErrFileAccess = errors.New("file not readable")

// ErrInvalidFormat indicates the input file is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrPasswordRequired indicates the workbook is encrypted and no valid password was given.
var ErrPasswordRequired = errors.New("workbook is password protected")

// ErrSheetNotFound indicates the requested sheet does not exist in the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// SheetError represents an error while working on a single sheet.
type SheetError struct {
	SheetName string
	Op        string // "load", "describe", "classify"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Op, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}

// NewSheetError creates a new SheetError.
func NewSheetError(sheetName, op string, err error) *SheetError {
	return &SheetError{
		SheetName: sheetName,
		Op:        op,
		Err:       err,
	}
}
