package extract

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jmonzon-gt/distribuidores/constants"
)

// BuildFieldSchema returns the JSON-Schema constraining the structured field
// payload a document type may produce. Used before merging extracted fields
// into the owning request.
func BuildFieldSchema(docType constants.DocumentType) map[string]any {
	str := func() map[string]any { return map[string]any{"type": "string", "minLength": 1} }

	var props map[string]any
	switch docType {
	case constants.DocIDFront, constants.DocIDBack:
		props = map[string]any{
			"cui":              map[string]any{"type": "string", "pattern": `^\d{13}$`},
			"apellidos":        str(),
			"nombres":          str(),
			"fecha_nacimiento": str(),
			"nacionalidad":     str(),
			"sexo":             map[string]any{"type": "string", "pattern": `^[MF]$`},
		}
	case constants.DocTaxRegistry:
		props = map[string]any{
			"nit":              map[string]any{"type": "string", "pattern": `^\d{4,8}-?[\dK]$`},
			"nombre_legal":     str(),
			"nombre_comercial": str(),
			"direccion":        str(),
		}
	case constants.DocCommerceLicense:
		props = map[string]any{
			"tipo_patente": map[string]any{"type": "string", "enum": []string{PatenteEmpresa, PatenteSociedad}},
			"registro":     map[string]any{"type": "string", "pattern": `^\d+$`},
			"folio":        map[string]any{"type": "string", "pattern": `^\d+$`},
			"libro":        map[string]any{"type": "string", "pattern": `^\d+$`},
			"expediente":   str(),
			"nombre_legal": str(),
			"propietario":  str(),
			"direccion":    str(),
			"objeto":       str(),
		}
	default:
		props = map[string]any{}
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": map[string]any{"type": "string"},
		"properties":           props,
	}
}

// ValidatePayload validates extracted fields against the document type's
// schema before they are merged into the request record.
func ValidatePayload(docType constants.DocumentType, f Fields) error {
	schemaMap := BuildFieldSchema(docType)

	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	data, err := json.Marshal(f)
	if err != nil {
		return fmt.Errorf("marshal fields: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal fields: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("fields do not match %s schema: %w", docType, err)
	}
	return nil
}
