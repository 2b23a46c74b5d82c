package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// SettingsSchema returns a JSON Schema for settings.json.
func SettingsSchema() *jsonschema.Schema {
	r := jsonschema.Reflector{ExpandedStruct: true}
	sch := r.Reflect(&Settings{})
	sch.Title = "shellpane settings"
	sch.Description = "Schema for ~/.config/shellpane/settings.json."
	return sch
}

// MarshalSchema indents the schema to JSON bytes.
func MarshalSchema(sch *jsonschema.Schema) ([]byte, error) {
	return json.MarshalIndent(sch, "", "  ")
}
