package extract

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmonzon-gt/distribuidores/internal/ocr"
)

type cannedRunner struct {
	text string
}

func (r cannedRunner) Run(_ context.Context, name string, _ ...string) ([]byte, []byte, error) {
	if name == "pdftotext" {
		return []byte(r.text), nil, nil
	}
	return nil, nil, nil
}

func TestOCRAdapterPassesThroughExtraction(t *testing.T) {
	text := strings.Repeat("REGISTRO TRIBUTARIO UNIFICADO NIT 1234567-8 ", 3)
	extractor := ocr.NewExtractor(ocr.Config{MinNativeTextLen: 20}, nil).
		WithRunner(cannedRunner{text: text})
	adapter := NewOCRAdapter(extractor, slog.Default())

	res, err := adapter.Extract(context.Background(), "/tmp/rtu.pdf")
	require.NoError(t, err)
	assert.Equal(t, "pdf-text", res.Method)
	assert.Contains(t, res.Text, "REGISTRO TRIBUTARIO")
}
