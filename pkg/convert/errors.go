package convert

import "errors"

var (
	// ErrUnsupportedConversion indicates a format pair other than PDF→DOCX.
	ErrUnsupportedConversion = errors.New("unsupported conversion")

	// ErrInputNotFound indicates the input file does not exist.
	ErrInputNotFound = errors.New("input file not found")

	// ErrOutputExists indicates the output file exists and Force was not
	// set.
	ErrOutputExists = errors.New("output file already exists")

	// ErrPDFRead indicates the PDF could not be opened or parsed.
	ErrPDFRead = errors.New("failed to read PDF")

	// ErrDOCXWrite indicates the DOCX document could not be written.
	ErrDOCXWrite = errors.New("failed to write DOCX")
)
