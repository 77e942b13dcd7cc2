package documents

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/gen2brain/go-fitz"
)

// Converter turns uploaded binary content into a transport-safe text form and
// back. The encoding must be exactly invertible.
type Converter interface {
	Encode(raw []byte) (string, error)
	Decode(encoded string) ([]byte, error)
}

// Base64Converter is the default converter, matching the stored representation
// the API exposes on fetch.
type Base64Converter struct{}

func (Base64Converter) Encode(raw []byte) (string, error) {
	return base64.StdEncoding.EncodeToString(raw), nil
}

func (Base64Converter) Decode(encoded string) ([]byte, error) {
	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("base64 decode failed: %w", err)
	}
	return raw, nil
}

// ExtractPDFText pulls plain text out of a PDF, page by page.
func ExtractPDFText(raw []byte) (string, error) {
	doc, err := fitz.NewFromMemory(raw)
	if err != nil {
		return "", fmt.Errorf("pdf open failed: %w", err)
	}
	defer doc.Close()

	var sb strings.Builder
	for i := 0; i < doc.NumPage(); i++ {
		text, err := doc.Text(i)
		if err != nil {
			return "", fmt.Errorf("pdf text extraction failed on page %d: %w", i+1, err)
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}
	return sb.String(), nil
}
