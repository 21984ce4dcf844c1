package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmonzon-gt/distribuidores/internal/extract"
)

const registryPage = `<html><body>
<h1>Registro Mercantil</h1>
<table>
<tr><td>Registro:</td><td>000123456</td></tr>
<tr><td>Folio:</td><td>789</td></tr>
<tr><td>Libro:</td><td>55</td></tr>
<tr><td>Razón Social:</td><td>ABARROTERIA EL BUEN PRECIO</td></tr>
<tr><td>Estado:</td><td>ACTIVA</td></tr>
</table>
</body></html>`

func TestScrapeOfficialFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(registryPage))
	}))
	defer srv.Close()

	fields, err := ScrapeOfficialFields(context.Background(), srv.Client(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "000123456", fields["registro"])
	assert.Equal(t, "789", fields["folio"])
	assert.Equal(t, "55", fields["libro"])
	assert.Equal(t, "ABARROTERIA EL BUEN PRECIO", fields["nombre"])
	assert.Equal(t, "ACTIVA", fields["estado"])
}

func TestScrapeNoFields(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("<html><body><p>mantenimiento</p></body></html>"))
	}))
	defer srv.Close()

	_, err := ScrapeOfficialFields(context.Background(), srv.Client(), srv.URL)
	require.Error(t, err)
}

func TestCompareFullAgreement(t *testing.T) {
	official := map[string]string{
		"registro": "000123456", "folio": "789", "libro": "55",
		"nombre": "ABARROTERIA EL BUEN PRECIO",
	}
	fields := extract.Fields{
		"registro": "123 456", "folio": "789", "libro": "55",
		"nombre_legal": "ABARROTERIA EL BUEN PRECI0", // OCR zero, still fuzzy-close
	}

	cmp := Compare(official, fields)
	assert.Equal(t, 3, cmp.Compared)
	assert.Equal(t, 3, cmp.Agreed)
	assert.True(t, cmp.NameMatch)
	assert.True(t, cmp.Match)
}

// One disagreeing numeric field out of three is tolerated.
func TestCompareAllButOne(t *testing.T) {
	official := map[string]string{"registro": "123456", "folio": "789", "libro": "55", "nombre": "EL BUEN PRECIO"}
	fields := extract.Fields{"registro": "123456", "folio": "789", "libro": "99", "nombre_legal": "EL BUEN PRECIO"}

	cmp := Compare(official, fields)
	assert.Equal(t, 2, cmp.Agreed)
	assert.True(t, cmp.Match)
	assert.Contains(t, cmp.Detail, "libro")
}

// A single comparable numeric field must agree exactly.
func TestCompareSingleFieldMustAgree(t *testing.T) {
	official := map[string]string{"registro": "123456", "nombre": "EL BUEN PRECIO"}
	fields := extract.Fields{"registro": "654321", "nombre_legal": "EL BUEN PRECIO"}

	cmp := Compare(official, fields)
	assert.Equal(t, 1, cmp.Compared)
	assert.False(t, cmp.Match)
}

func TestCompareNameMismatchFails(t *testing.T) {
	official := map[string]string{"registro": "123456", "nombre": "FERRETERIA EL MARTILLO"}
	fields := extract.Fields{"registro": "123456", "nombre_legal": "ABARROTERIA EL BUEN PRECIO"}

	cmp := Compare(official, fields)
	assert.False(t, cmp.Match)
	assert.Contains(t, cmp.Detail, "nombre")
}

func TestCrossValidatorDegradesGracefully(t *testing.T) {
	v := NewCrossValidator(time.Second, nil)

	// no QR decodable from a non-image path
	res := v.Check(context.Background(), "/nonexistent/file.png", extract.Fields{})
	assert.True(t, res.Unavailable)
	assert.False(t, res.Performed)
	assert.Contains(t, res.Detail, "online check unavailable")
}

func TestIsRegistryURL(t *testing.T) {
	assert.True(t, IsRegistryURL("https://registromercantil.gob.gt/patente?exp=1"))
	assert.False(t, IsRegistryURL("PAT|123|456"))
}

func TestCanonNumber(t *testing.T) {
	assert.Equal(t, "123456", canonNumber("000123456"))
	assert.Equal(t, "123456", canonNumber("123 456"))
	assert.Equal(t, "0", canonNumber("000"))
}
