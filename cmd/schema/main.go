// Command schema prints the JSON Schema of the wordlist dataset file.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"encoding/json"
	"log"
	"os"

	"github.com/heartmarshall/miluk-lexicon/internal/dataset"
)

func main() {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(dataset.Schema()); err != nil {
		log.Fatalf("encode schema: %v", err)
	}
}
