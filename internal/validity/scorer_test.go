package validity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jmonzon-gt/distribuidores/constants"
)

func TestScoreGenuineDocument(t *testing.T) {
	text := `REPUBLICA DE GUATEMALA
DOCUMENTO PERSONAL DE IDENTIFICACION
CUI 1234 56789 0123
Apellidos LOPEZ Nombres JUAN
Nacionalidad GUATEMALTECA Fecha de Nacimiento 15/03/1985`

	res := Score(constants.DocIDFront, text)
	assert.True(t, res.Valid)
	assert.GreaterOrEqual(t, res.Score, ValidScore)
	assert.Equal(t, 10, res.Total)
}

func TestScoreWrongDocument(t *testing.T) {
	res := Score(constants.DocTaxRegistry, "grocery list: milk, eggs, bread")
	assert.False(t, res.Valid)
	assert.Less(t, res.Score, ValidScore)
}

// OCR misreads within the similarity threshold still count as matches.
func TestScoreFuzzyMatching(t *testing.T) {
	text := `REPUBLlCA DE GUATEMALA
DOCUMENT0 PERS0NAL DE IDENTIFICACI0N
CUI APELLIDOS NOMBRES NACIONALIDAD NACIMIENTO`

	res := Score(constants.DocIDFront, text)
	assert.True(t, res.Valid, "score=%d", res.Score)
}

func TestScoreAccentFolding(t *testing.T) {
	res := Score(constants.DocTaxRegistry, `SUPERINTENDENCIA DE ADMINISTRACIÓN TRIBUTARIA
REGISTRO TRIBUTARIO UNIFICADO NIT CONTRIBUYENTE AFILIACIONES ESTABLECIMIENTOS`)
	assert.True(t, res.Valid)
	assert.Equal(t, 100, res.Score)
}

func TestScoreOtherTypeHasNoVocabulary(t *testing.T) {
	res := Score(constants.DocOther, "anything at all")
	assert.True(t, res.Valid)
	assert.Zero(t, res.Total)
}

func TestSimilarity(t *testing.T) {
	assert.Equal(t, 1.0, Similarity("COMERCIAL LÓPEZ", "comercial lopez"))
	assert.Greater(t, Similarity("TIENDA LA BENDICION", "TIENDA LA BENDICI0N"), 0.85)
	assert.Less(t, Similarity("TIENDA LA BENDICION", "FERRETERIA EL MARTILLO"), 0.85)
}
