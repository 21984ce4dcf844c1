package ocr

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubRunner replays canned output per binary and records the calls.
type stubRunner struct {
	calls   []string
	outputs map[string]string
	errs    map[string]error
}

func (r *stubRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	r.calls = append(r.calls, name)
	if err, ok := r.errs[name]; ok {
		return nil, []byte("boom"), err
	}
	if name == "pdftoppm" {
		// emulate page rendering: prefix is the last argument
		prefix := args[len(args)-1]
		_ = os.WriteFile(prefix+"-1.png", []byte("png"), 0o644)
		_ = os.WriteFile(prefix+"-2.png", []byte("png"), 0o644)
		return nil, nil, nil
	}
	return []byte(r.outputs[name]), nil, nil
}

func newExtractor(t *testing.T, r Runner) *Extractor {
	t.Helper()
	return NewExtractor(Config{MinNativeTextLen: 20}, nil).WithRunner(r)
}

func TestExtractPDFNativeText(t *testing.T) {
	long := strings.Repeat("REGISTRO TRIBUTARIO UNIFICADO NIT 1234567-8 ", 3)
	r := &stubRunner{outputs: map[string]string{"pdftotext": long}}
	e := newExtractor(t, r)

	res, err := e.Extract(context.Background(), "/tmp/doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf-text", res.Method)
	assert.Equal(t, []string{"pdftotext"}, r.calls)
	assert.Contains(t, res.Text, "REGISTRO TRIBUTARIO")
}

func TestExtractPDFShortTextFallsBackToOCR(t *testing.T) {
	r := &stubRunner{outputs: map[string]string{
		"pdftotext": "  \n ", // scanned image inside a PDF
		"tesseract": "DOCUMENTO PERSONAL DE IDENTIFICACION",
	}}
	e := newExtractor(t, r)

	res, err := e.Extract(context.Background(), "/tmp/scan.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf-ocr", res.Method)
	assert.Equal(t, 2, res.Pages)
	assert.Contains(t, res.Text, "DOCUMENTO PERSONAL")
	assert.Contains(t, r.calls, "pdftoppm")
	assert.Contains(t, r.calls, "tesseract")
}

func TestExtractImage(t *testing.T) {
	r := &stubRunner{outputs: map[string]string{"tesseract": "PATENTE DE COMERCIO\n\n\n\nREGISTRO No. 12345"}}
	e := newExtractor(t, r)

	res, err := e.Extract(context.Background(), filepath.Join(t.TempDir(), "front.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "image-ocr", res.Method)
	assert.Equal(t, 1, res.Pages)
	// normalization collapsed blank-line runs
	assert.Equal(t, "PATENTE DE COMERCIO\n\nREGISTRO No. 12345", res.Text)
}

func TestExtractUnsupportedExtension(t *testing.T) {
	e := newExtractor(t, &stubRunner{})
	_, err := e.Extract(context.Background(), "/tmp/data.docx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported extension")
}

func TestExtractImageOCRFailure(t *testing.T) {
	r := &stubRunner{errs: map[string]error{"tesseract": fmt.Errorf("exit status 1")}}
	e := newExtractor(t, r)
	_, err := e.Extract(context.Background(), "/tmp/front.png")
	require.Error(t, err)
}

func TestNormalize(t *testing.T) {
	in := "a\r\nb\t\tc  d\n\n\n\n\ne   \n"
	assert.Equal(t, "a\nb c d\n\ne", Normalize(in))
}
