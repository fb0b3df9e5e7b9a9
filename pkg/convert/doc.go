// Package convert extracts text from PDF documents and assembles it into
// DOCX paragraphs. PDF→DOCX is currently the only supported direction.
//
//	result, err := convert.Convert(convert.Options{
//		InputPath:  "report.pdf",
//		OutputPath: "report.docx",
//		From:       convert.PDF,
//		To:         convert.DOCX,
//	})
//
// Extraction is text-only; image-based PDFs produce an empty document and
// a warning in the result.
package convert
