package mcp

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/servers.schema.json
var schemaBytes []byte

var (
	compiledSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// getSchema compiles the embedded JSON schema once and returns it.
func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schemaBytes))
		if err != nil {
			compileErr = fmt.Errorf("unmarshaling schema JSON: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		if err := c.AddResource("servers.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("adding schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile("servers.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compiling schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// Discover reads the source service map and returns the installable server
// definitions, sorted by name. Entries on the denylist or matching the
// credential heuristic are filtered out. A missing, unreadable, or
// schema-invalid source file yields an empty list, never an error.
func Discover(path string) ([]Server, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil
	}
	if !validates(data) {
		return nil, nil
	}

	var doc struct {
		Servers map[string]json.RawMessage `json:"mcpServers"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil
	}

	var out []Server
	for name, raw := range doc.Servers {
		if denylist[name] {
			continue
		}
		if requiresCredentials(raw) {
			continue
		}

		var s Server
		if err := json.Unmarshal(raw, &s); err != nil {
			continue
		}
		s.Name = name
		out = append(out, s)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func validates(data []byte) bool {
	schema, err := getSchema()
	if err != nil {
		return false
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return false
	}
	return schema.Validate(inst) == nil
}
