package convert

import (
	"fmt"
	"os"
	"strings"

	docx "github.com/fumiama/go-docx"
	"github.com/ledongthuc/pdf"
)

// Format identifies a document format.
type Format int

const (
	PDF Format = iota
	DOCX
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case DOCX:
		return "DOCX"
	default:
		return fmt.Sprintf("format(%d)", int(f))
	}
}

// ParseFormat resolves a format name as used on the command line.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pdf":
		return PDF, nil
	case "docx":
		return DOCX, nil
	default:
		return PDF, fmt.Errorf("unknown format %q", s)
	}
}

// Options configures a conversion.
type Options struct {
	InputPath  string
	OutputPath string
	From       Format
	To         Format
	// Force overwrites an existing output file.
	Force bool
}

// Result reports what a successful conversion processed.
type Result struct {
	Pages    int
	Warnings []string
}

// Convert converts the input document to the output format. The input must
// exist, and the output must not exist unless Force is set; both are
// checked before any parsing starts.
func Convert(opts Options) (*Result, error) {
	if opts.From != PDF || opts.To != DOCX {
		return nil, fmt.Errorf("%w: %s to %s", ErrUnsupportedConversion, opts.From, opts.To)
	}

	if _, err := os.Stat(opts.InputPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInputNotFound, opts.InputPath)
	}

	if _, err := os.Stat(opts.OutputPath); err == nil && !opts.Force {
		return nil, fmt.Errorf("%w: %s (use --force to overwrite)", ErrOutputExists, opts.OutputPath)
	}

	return pdfToDocx(opts)
}

func pdfToDocx(opts Options) (*Result, error) {
	f, reader, err := pdf.Open(opts.InputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrPDFRead, err.Error())
	}
	defer f.Close()

	doc := docx.New().WithDefaultTheme()
	result := &Result{}
	extracted := false

	total := reader.NumPage()
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("page %d: %s", i, err.Error()))
			continue
		}
		result.Pages++

		for _, line := range strings.Split(text, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}
			doc.AddParagraph().AddText(trimmed)
			extracted = true
		}

		if i < total {
			doc.AddParagraph().AddPageBreaks()
		}
	}

	if !extracted {
		result.Warnings = append(result.Warnings,
			"PDF appears to contain no extractable text (may be image-based)")
	}

	out, err := os.Create(opts.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDOCXWrite, err.Error())
	}
	if _, err := doc.WriteTo(out); err != nil {
		out.Close()
		return nil, fmt.Errorf("%w: %s", ErrDOCXWrite, err.Error())
	}
	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDOCXWrite, err.Error())
	}
	return result, nil
}
