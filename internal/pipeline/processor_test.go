package pipeline

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/internal/extract"
	"github.com/jmonzon-gt/distribuidores/internal/registry"
)

type stubText struct {
	text string
	err  error
}

func (s stubText) Extract(context.Context, string) (extract.TextExtractionResult, error) {
	return extract.TextExtractionResult{Text: s.text, Method: "pdf-text", Pages: 1}, s.err
}

type stubCross struct {
	res   registry.CheckResult
	calls int
}

func (s *stubCross) Check(context.Context, string, extract.Fields) registry.CheckResult {
	s.calls++
	return s.res
}

const genuineDPI = `REPUBLICA DE GUATEMALA DOCUMENTO PERSONAL DE IDENTIFICACION
CUI 1234 56789 0123
Apellidos: LOPEZ GARCIA
Nombres: JUAN CARLOS
Nacionalidad: GUATEMALTECA
Fecha de Nacimiento 15/03/1985`

func TestProcessSuccess(t *testing.T) {
	p := NewProcessor(stubText{text: genuineDPI}, nil, nil)

	res, err := p.Process(context.Background(), "/tmp/dpi.pdf", constants.DocIDFront)
	require.NoError(t, err)
	assert.Equal(t, constants.TaskSuccess, res.Status)
	assert.Equal(t, "1234567890123", res.Fields["cui"])
	assert.True(t, res.Valid)
	assert.GreaterOrEqual(t, res.Score, 60)
}

func TestProcessUnreadable(t *testing.T) {
	p := NewProcessor(stubText{text: "  x "}, nil, nil)

	res, err := p.Process(context.Background(), "/tmp/blur.jpg", constants.DocIDFront)
	require.NoError(t, err)
	assert.Equal(t, constants.TaskUnreadable, res.Status)
	assert.NotEmpty(t, res.Message)
}

// Readable text that does not look like the declared type is INCORRECT, not
// an error: the data still goes to a reviewer.
func TestProcessIncorrectLowScore(t *testing.T) {
	p := NewProcessor(stubText{text: "this is a long block of unrelated english text with nothing official in it"}, nil, nil)

	res, err := p.Process(context.Background(), "/tmp/wrong.pdf", constants.DocTaxRegistry)
	require.NoError(t, err)
	assert.Equal(t, constants.TaskIncorrect, res.Status)
	assert.False(t, res.Valid)
}

func TestProcessTechnicalFailure(t *testing.T) {
	p := NewProcessor(stubText{err: errors.New("pdftoppm: exit status 1")}, nil, nil)

	_, err := p.Process(context.Background(), "/tmp/doc.pdf", constants.DocIDFront)
	require.Error(t, err)
}

const patenteText = `REGISTRO MERCANTIL GENERAL DE LA REPUBLICA
PATENTE DE COMERCIO DE EMPRESA MERCANTIL INSCRIPCION
Registro No. 123456
Folio: 789
Libro: 55
Empresa: ABARROTERIA EL BUEN PRECIO
Expediente: 2015-4421`

func TestProcessCrossCheckMismatch(t *testing.T) {
	cross := &stubCross{res: registry.CheckResult{Performed: true, Match: false, Detail: "registro: \"1\" vs \"2\""}}
	p := NewProcessor(stubText{text: patenteText}, cross, nil)

	res, err := p.Process(context.Background(), "/tmp/patente.png", constants.DocCommerceLicense)
	require.NoError(t, err)
	assert.Equal(t, constants.TaskIncorrect, res.Status)
	assert.Equal(t, 1, cross.calls)
	assert.Contains(t, res.Message, "cross-check")
}

// An unavailable online check never blocks the result.
func TestProcessCrossCheckUnavailable(t *testing.T) {
	cross := &stubCross{res: registry.CheckResult{Unavailable: true}}
	p := NewProcessor(stubText{text: patenteText}, cross, nil)

	res, err := p.Process(context.Background(), "/tmp/patente.png", constants.DocCommerceLicense)
	require.NoError(t, err)
	assert.Equal(t, constants.TaskSuccess, res.Status)
}

func TestProcessCrossCheckOnlyForCommerceLicense(t *testing.T) {
	cross := &stubCross{res: registry.CheckResult{Performed: true, Match: false}}
	p := NewProcessor(stubText{text: genuineDPI}, cross, nil)

	res, err := p.Process(context.Background(), "/tmp/dpi.pdf", constants.DocIDFront)
	require.NoError(t, err)
	assert.Equal(t, constants.TaskSuccess, res.Status)
	assert.Zero(t, cross.calls)
}
