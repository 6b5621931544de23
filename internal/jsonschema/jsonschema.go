package jsonschema

import (
	"reflect"
	"strings"
)

// Schema represents the subset of JSON Schema accepted by the Gemini
// responseSchema field. It deliberately omits $ref/$defs: the response
// payload types in this module are non-recursive, and the Gemini dialect
// rejects references.
type Schema struct {
	// Type specifies the data type (e.g. "object", "array", "string", "number")
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of the object, each with its own schema
	Properties map[string]*Schema `json:"properties,omitempty"`
	// For array types, defines the schema of items in the array
	Items *Schema `json:"items,omitempty"`
	// Enum contains the list of allowed values
	Enum []any `json:"enum,omitempty"`
}

// Generate builds a Schema from the type parameter T by reflecting over its
// struct fields. Field names come from the `json` tag; descriptions, enums
// and required markers come from the `jsonschema` tag:
//
//	type Place struct {
//	    Name string   `json:"name" jsonschema:"description=Display name,required"`
//	    Kind string   `json:"kind" jsonschema:"enum=city|country"`
//	    Tags []string `json:"tags,omitempty"`
//	}
func Generate[T any]() *Schema {
	return generate(reflect.TypeFor[T]())
}

func generate(t reflect.Type) *Schema {
	switch t.Kind() {
	case reflect.Pointer:
		return generate(t.Elem())

	case reflect.Struct:
		return generateStruct(t)

	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: generate(t.Elem())}

	case reflect.String:
		return &Schema{Type: "string"}

	case reflect.Bool:
		return &Schema{Type: "boolean"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}

	default:
		// Maps and anything else fall back to a free-form object.
		return &Schema{Type: "object"}
	}
}

func generateStruct(t reflect.Type) *Schema {
	schema := &Schema{Type: "object", Properties: map[string]*Schema{}}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := fieldName(field)
		if name == "" {
			continue
		}

		fieldSchema := generate(field.Type)
		applyTag(fieldSchema, field.Tag.Get("jsonschema"), name, schema)
		schema.Properties[name] = fieldSchema
	}

	return schema
}

// fieldName resolves the JSON property name for a struct field, honouring
// the `json` tag and skipping fields tagged "-".
func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("json")
	if tag == "" {
		return field.Name
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}

// applyTag parses the jsonschema struct tag options onto fieldSchema,
// registering the field as required on parent when requested.
func applyTag(fieldSchema *Schema, tag string, name string, parent *Schema) {
	if tag == "" {
		return
	}

	for _, option := range strings.Split(tag, ",") {
		key, value, _ := strings.Cut(option, "=")
		switch key {
		case "description":
			fieldSchema.Description = value
		case "required":
			parent.Required = append(parent.Required, name)
		case "enum":
			for _, entry := range strings.Split(value, "|") {
				fieldSchema.Enum = append(fieldSchema.Enum, entry)
			}
		}
	}
}
