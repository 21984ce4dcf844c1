package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmonzon-gt/distribuidores/constants"
)

const dpiText = `REPUBLICA DE GUATEMALA
DOCUMENTO PERSONAL DE IDENTIFICACION
CUI 1234 56789 0123
Apellidos: LOPEZ GARCIA
Nombres: JUAN CARLOS
Fecha de Nacimiento 15/03/1985
Nacionalidad: GUATEMALTECA
Sexo: M
`

func TestParseDPI(t *testing.T) {
	res, err := ParseFields(constants.DocIDFront, dpiText)
	require.NoError(t, err)

	f := res.Fields
	assert.Equal(t, "1234567890123", f["cui"], "grouped digits must be re-joined")
	assert.Equal(t, "LOPEZ GARCIA", f["apellidos"])
	assert.Equal(t, "JUAN CARLOS", f["nombres"])
	assert.Equal(t, "15/03/1985", f["fecha_nacimiento"])
	assert.Equal(t, "GUATEMALTECA", f["nacionalidad"])
	assert.Equal(t, "M", f["sexo"])
	assert.Empty(t, res.Branches)
}

func TestParseDPIMissingFieldsAreAbsent(t *testing.T) {
	res, err := ParseFields(constants.DocIDFront, "CUI 9876 54321 0987\nno labels here")
	require.NoError(t, err)
	assert.Equal(t, "9876543210987", res.Fields["cui"])
	_, hasApellidos := res.Fields["apellidos"]
	assert.False(t, hasApellidos)
}

const rtuText = `SUPERINTENDENCIA DE ADMINISTRACION TRIBUTARIA
CONSTANCIA DE INSCRIPCION AL REGISTRO TRIBUTARIO UNIFICADO
NIT: 1234567-8
Nombre o Razón Social: COMERCIAL LOPEZ
Nombre Comercial: TIENDA LA BENDICION
Departamento: GUATEMALA
Municipio: MIXCO
Zona: 4
Calle: 5A. AVENIDA
Casa: 12-34
Estado: ACTIVO
Fecha de Inicio: 01/02/2015
Nombre Comercial: TIENDA LA BENDICION 2
Departamento: GUATEMALA
Municipio: VILLA NUEVA
Zona: 1
Estado: ACTIVO
Nombre Comercial: TIENDA LA BENDICION
Departamento: GUATEMALA
Municipio: MIXCO
Zona: 4
Calle: 5A. AVENIDA
Casa: 12-34
Estado: ACTIVO
Nombre Comercial: DEPOSITO CENTRAL
Municipio: AMATITLAN
`

func TestParseRTU(t *testing.T) {
	res, err := ParseFields(constants.DocTaxRegistry, rtuText)
	require.NoError(t, err)

	f := res.Fields
	assert.Equal(t, "1234567-8", f["nit"])
	assert.Equal(t, "COMERCIAL LOPEZ", f["nombre_legal"])
	assert.Equal(t, "TIENDA LA BENDICION", f["nombre_comercial"])

	// four blocks in the text, one an exact duplicate by (name, address)
	require.Len(t, res.Branches, 3)

	first := res.Branches[0]
	assert.Equal(t, "TIENDA LA BENDICION", first.Name)
	assert.Equal(t, "GUATEMALA", first.Department)
	assert.Equal(t, "MIXCO", first.Municipality)
	assert.Equal(t, "4", first.Zone)
	assert.Equal(t, "ACTIVO", first.Status)
	assert.Equal(t, "01/02/2015", first.StartDate)
	assert.Equal(t, "5A. AVENIDA, 12-34, Zona 4, MIXCO, GUATEMALA", first.Address)

	// absent components are skipped, not rendered empty
	assert.Equal(t, "AMATITLAN", res.Branches[2].Address)
}

const patenteEmpresaText = `REGISTRO MERCANTIL GENERAL DE LA REPUBLICA
PATENTE DE COMERCIO DE EMPRESA MERCANTIL
Registro No. 123 456
Folio: 789
Libro: 55
Expediente: 2015-4421
Empresa: ABARROTERIA EL BUEN PRECIO
Propietario: JUAN CARLOS LOPEZ GARCIA
Dirección Comercial: 5A. AVENIDA 12-34 ZONA 4, MIXCO
Objeto: COMPRA Y VENTA DE ABARROTES
`

func TestParsePatenteEmpresa(t *testing.T) {
	res, err := ParseFields(constants.DocCommerceLicense, patenteEmpresaText)
	require.NoError(t, err)

	f := res.Fields
	assert.Equal(t, PatenteEmpresa, f["tipo_patente"])
	assert.Equal(t, "123456", f["registro"], "grouped digits must be re-joined")
	assert.Equal(t, "789", f["folio"])
	assert.Equal(t, "55", f["libro"])
	assert.Equal(t, "2015-4421", f["expediente"])
	assert.Equal(t, "ABARROTERIA EL BUEN PRECIO", f["nombre_legal"])
	assert.Equal(t, "JUAN CARLOS LOPEZ GARCIA", f["propietario"])
	assert.Equal(t, "5A. AVENIDA 12-34 ZONA 4, MIXCO", f["direccion"])
}

func TestParsePatenteSociedad(t *testing.T) {
	text := `PATENTE DE COMERCIO DE SOCIEDAD
Registro 98765
Folio 11
Libro 2
Denominación: DISTRIBUIDORA DEL SUR, SOCIEDAD ANONIMA
`
	res, err := ParseFields(constants.DocCommerceLicense, text)
	require.NoError(t, err)
	assert.Equal(t, PatenteSociedad, res.Fields["tipo_patente"])
	assert.Equal(t, "98765", res.Fields["registro"])
	assert.Equal(t, "DISTRIBUIDORA DEL SUR, SOCIEDAD ANONIMA", res.Fields["nombre_legal"])
}

func TestParseFieldsUnknownType(t *testing.T) {
	_, err := ParseFields(constants.DocumentType("BOGUS"), "text")
	require.Error(t, err)
}

func TestMergeNeverBlanksKnownValues(t *testing.T) {
	old := Fields{"cui": "1234567890123", "apellidos": "LOPEZ GARCIA"}
	latest := Fields{"cui": "", "nombres": "JUAN CARLOS", "apellidos": "   "}

	merged := Merge(old, latest)
	assert.Equal(t, "1234567890123", merged["cui"])
	assert.Equal(t, "LOPEZ GARCIA", merged["apellidos"])
	assert.Equal(t, "JUAN CARLOS", merged["nombres"])
}

func TestMergeOverwritesWithNewValue(t *testing.T) {
	merged := Merge(Fields{"nit": "123-4"}, Fields{"nit": "1234567-8"})
	assert.Equal(t, "1234567-8", merged["nit"])
}

func TestValidatePayload(t *testing.T) {
	ok := Fields{"cui": "1234567890123", "apellidos": "LOPEZ"}
	require.NoError(t, ValidatePayload(constants.DocIDFront, ok))

	bad := Fields{"cui": "12 34"}
	require.Error(t, ValidatePayload(constants.DocIDFront, bad))

	require.NoError(t, ValidatePayload(constants.DocTaxRegistry, Fields{"nit": "1234567-8"}))
	require.Error(t, ValidatePayload(constants.DocTaxRegistry, Fields{"nit": "not-a-nit"}))
}
