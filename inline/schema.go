package inline

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/invopop/jsonschema"
	"github.com/samber/lo"
)

var documents = map[string]any{
	"search":    []Item{},
	"vidsrc":    []Candidate{},
	"torrentio": []Torrent{},
	"streams":   []Direct{},
}

// SchemaNames lists the documents Schema knows.
func SchemaNames() []string {
	names := lo.Keys(documents)
	sort.Strings(names)
	return names
}

// Schema returns the JSON schema of the output of the named command.
func Schema(name string) (*jsonschema.Schema, error) {
	document, ok := documents[name]
	if !ok {
		return nil, fmt.Errorf("unknown document %q, expected one of %v", name, SchemaNames())
	}

	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	reflector.Namer = func(t reflect.Type) string {
		return "inline." + t.Name()
	}

	return reflector.Reflect(document), nil
}
