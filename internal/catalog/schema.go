package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// templateSchema is the JSON Schema for a canonical catalog record.
// supported_formats is intentionally an open string list: unknown format
// values are legal input and simply contribute no hints during expansion.
const templateSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "TemplateMetadataRecord",
  "type": "object",
  "required": ["template_id", "template_name"],
  "properties": {
    "template_id": {"type": "string", "minLength": 1},
    "template_name": {"type": "string", "minLength": 1},
    "supported_formats": {"type": "array", "items": {"type": "string"}},
    "user_phrases": {"type": "array", "items": {"type": "string"}},
    "keywords": {"type": "array", "items": {"type": "string"}},
    "db_id": {}
  }
}`

var schema = jsonschema.MustCompileString("template.schema.json", templateSchema)

// ValidateLine checks one raw catalog line against the record schema.
func ValidateLine(raw []byte) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("record does not match schema: %w", err)
	}
	return nil
}
