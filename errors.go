package chord2md

import "errors"

// Sentinel errors for library operations.
var (
	ErrInputTooLarge  = errors.New("chart content exceeds maximum size")
	ErrHTMLConversion = errors.New("HTML conversion failed")
	ErrPDFGeneration  = errors.New("PDF generation failed")
	ErrBrowserConnect = errors.New("failed to connect to browser")
	ErrPageCreate     = errors.New("failed to create browser page")
	ErrPageLoad       = errors.New("failed to load page")

	// Option validation errors.
	ErrInvalidMargin = errors.New("invalid margin")

	// Pool errors.
	ErrPoolClosed = errors.New("service pool is closed")
)
