// AngelaMos | 2026
// schema.go

package settings

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

//go:embed schemas/*.json
var schemaFS embed.FS

// shapeChecker rejects request bodies whose fields have the wrong JSON
// types before they are merged into a stored document. Required fields
// and formats are checked later on the merged result.
type shapeChecker struct {
	schemas map[Kind]*gojsonschema.Schema
}

func newShapeChecker() (*shapeChecker, error) {
	c := &shapeChecker{schemas: make(map[Kind]*gojsonschema.Schema, len(kinds))}

	for _, kind := range kinds {
		raw, err := schemaFS.ReadFile("schemas/" + string(kind) + ".json")
		if err != nil {
			return nil, fmt.Errorf("read %s schema: %w", kind, err)
		}

		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("compile %s schema: %w", kind, err)
		}
		c.schemas[kind] = schema
	}

	return c, nil
}

func (c *shapeChecker) check(kind Kind, body []byte) error {
	schema, ok := c.schemas[kind]
	if !ok {
		return fmt.Errorf("no schema for settings kind %q", kind)
	}

	res, err := schema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return core.InvalidInputError("Invalid request body")
	}
	if res.Valid() {
		return nil
	}

	fields := make([]core.FieldError, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		field := e.Field()
		if field == "(root)" {
			field = ""
		}
		fields = append(fields, core.FieldError{
			Field:   strings.TrimPrefix(field, "(root)."),
			Message: e.Description(),
		})
	}

	return core.ValidationError(fields)
}
