package seeder_test

import (
	"github.com/heartmarshall/miluk-lexicon/internal/adapter/postgres/entry"
	"github.com/heartmarshall/miluk-lexicon/internal/app/seeder"
)

// Compile-time check: *entry.Repo must satisfy EntryStore.
var _ seeder.EntryStore = (*entry.Repo)(nil)
