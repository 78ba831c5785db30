package dataset

import (
	"github.com/invopop/jsonschema"

	"github.com/heartmarshall/miluk-lexicon/internal/domain"
)

// SchemaID is the $id published with the dataset schema.
const SchemaID = "https://github.com/heartmarshall/miluk-lexicon/schema/wordlist.json"

// Schema returns the JSON Schema of a dataset file.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		DoNotReference:             true,
		RequiredFromJSONSchemaTags: true,
	}
	s := reflector.Reflect([]domain.LexicalEntry{})
	s.ID = SchemaID
	s.Title = "Miluk wordlist"
	s.Description = "Array of lexical entries, in dataset order."
	return s
}
