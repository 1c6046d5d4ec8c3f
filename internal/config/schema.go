package config

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/invopop/jsonschema"
)

// Schema строит JSON Schema файла конфигурации. Редакторы YAML с
// поддержкой схем используют её для подсказок и проверки.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		DoNotReference:             true,
	}
	schema := reflector.ReflectFromType(reflect.TypeOf(Config{}))
	schema.Version = jsonschema.Version
	schema.Title = "Addon Builder Configuration"
	schema.Description = "Declarative definition of a Bedrock addon: packs, output, logging and content."
	return schema
}

// MarshalSchema сериализует схему с отступом в два пробела
func MarshalSchema() ([]byte, error) {
	data, err := json.MarshalIndent(Schema(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
