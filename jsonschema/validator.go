// Package jsonschema checks generated JSON-LD objects against embedded
// JSON Schema documents describing their structure.
package jsonschema

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fwojciec/schemagen"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var _ schemagen.Validator = (*Validator)(nil)

// Issue is a single structural problem in a document.
type Issue struct {
	Location string
	Message  string
}

func (i Issue) String() string {
	location := i.Location
	if location == "" {
		location = "/"
	}
	return fmt.Sprintf("%s: %s", location, i.Message)
}

// Validator validates breadcrumb and article JSON-LD.
type Validator struct {
	schemas map[schemagen.Kind]*jsonschema.Schema
}

// NewValidator compiles the embedded schemas.
func NewValidator() (*Validator, error) {
	v := &Validator{schemas: make(map[schemagen.Kind]*jsonschema.Schema)}
	for kind, name := range map[schemagen.Kind]string{
		schemagen.KindBreadcrumb: "schemas/breadcrumb.json",
		schemagen.KindArticle:    "schemas/article.json",
	} {
		compiled, err := compileSchema(name)
		if err != nil {
			return nil, fmt.Errorf("compiling %s: %w", name, err)
		}
		v.schemas[kind] = compiled
	}
	return v, nil
}

// Validate checks schema, which may be a JSON-LD struct, a decoded JSON
// value, or raw JSON as a string or []byte. Returns EINVALID listing every
// structural issue found.
func (v *Validator) Validate(kind schemagen.Kind, schema any) error {
	if err := kind.Validate(); err != nil {
		return err
	}

	doc, err := decode(schema)
	if err != nil {
		return schemagen.Errorf(schemagen.EINVALID, "%s schema is not valid JSON: %v", kind, err)
	}

	var issues []Issue
	if err := v.schemas[kind].Validate(doc); err != nil {
		issues = Issues(err)
	}
	if kind == schemagen.KindBreadcrumb && len(issues) == 0 {
		issues = checkPositions(doc)
	}
	if len(issues) == 0 {
		return nil
	}

	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		parts = append(parts, issue.String())
	}
	return schemagen.Errorf(schemagen.EINVALID, "%s schema invalid: %s", kind, strings.Join(parts, "; "))
}

// Issues flattens a validation error into its leaf issues.
func Issues(err error) []Issue {
	validationErr, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return []Issue{{Message: err.Error()}}
	}
	var issues []Issue
	var walk func(*jsonschema.ValidationError)
	walk = func(node *jsonschema.ValidationError) {
		if len(node.Causes) == 0 {
			issues = append(issues, Issue{
				Location: strings.TrimSpace(node.InstanceLocation),
				Message:  strings.TrimSpace(node.Message),
			})
			return
		}
		for _, cause := range node.Causes {
			walk(cause)
		}
	}
	walk(validationErr)
	return issues
}

// checkPositions reports list items whose positions are not 1, 2, 3...
// in order. It assumes doc already passed the breadcrumb schema.
func checkPositions(doc any) []Issue {
	obj, _ := doc.(map[string]any)
	items, _ := obj["itemListElement"].([]any)

	var issues []Issue
	for i, item := range items {
		fields, _ := item.(map[string]any)
		n, _ := fields["position"].(json.Number)
		if n.String() != fmt.Sprint(i+1) {
			issues = append(issues, Issue{
				Location: fmt.Sprintf("/itemListElement/%d/position", i),
				Message:  fmt.Sprintf("position %s, want %d", n, i+1),
			})
		}
	}
	return issues
}

func compileSchema(name string) (*jsonschema.Schema, error) {
	data, err := schemaFS.ReadFile(name)
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft2020
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		return nil, err
	}
	return compiler.Compile(name)
}

// decode converts schema into the generic JSON form the compiled schemas
// validate.
func decode(schema any) (any, error) {
	var data []byte
	switch s := schema.(type) {
	case []byte:
		data = s
	case string:
		data = []byte(s)
	default:
		encoded, err := json.Marshal(schema)
		if err != nil {
			return nil, err
		}
		data = encoded
	}
	return jsonschema.UnmarshalJSON(bytes.NewReader(data))
}
