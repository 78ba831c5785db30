package dataset

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/miluk-lexicon/internal/domain"
)

func TestLoadFile_Testdata(t *testing.T) {
	t.Parallel()

	entries, err := LoadFile(filepath.Join("testdata", "wordlist.json"))
	require.NoError(t, err)
	require.Len(t, entries, 5)

	fire := entries[0]
	assert.Equal(t, "fire", fire.Headword)
	assert.Equal(t, []string{"tl'ata"}, fire.PronunciationVariants)
	require.NotNil(t, fire.Transcriptions)
	assert.Equal(t, "[tɬ'áta], fire", fire.Primary().Americanist)
	assert.Equal(t, "TLAH-tah", fire.InstantPhonetic())
	assert.Len(t, fire.AudioSources, 2)

	// "annie": null is an absent slot.
	assert.Nil(t, entries[1].Secondary())
	assert.NotNil(t, entries[1].Primary())

	// An empty object is a present slot.
	assert.True(t, domain.HasPrimary(&entries[3]))

	assert.Nil(t, entries[4].Transcriptions)
}

func TestFileSource_Load(t *testing.T) {
	t.Parallel()

	src := FileSource{Path: filepath.Join("testdata", "wordlist.json")}
	entries, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, entries, 5)
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope.json")
}

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		input     string
		wantLen   int
		wantErr   bool
		wantValid bool
	}{
		{name: "empty array", input: `[]`, wantLen: 0},
		{name: "one entry", input: `[{"headword":"fire"}]`, wantLen: 1},
		{name: "not an array", input: `{"headword":"fire"}`, wantErr: true},
		{name: "truncated", input: `[{"headword":`, wantErr: true},
		{name: "missing headword", input: `[{"headword":"fire"},{"linguistics_notes":"x"}]`, wantErr: true, wantValid: true},
		{name: "blank headword", input: `[{"headword":"  "}]`, wantErr: true, wantValid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Decode(strings.NewReader(tt.input))
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantValid, errors.Is(err, domain.ErrValidation))
				return
			}
			require.NoError(t, err)
			assert.Len(t, got, tt.wantLen)
		})
	}
}

func TestValidate_ReportsEveryBlankHeadword(t *testing.T) {
	t.Parallel()

	err := Validate([]domain.LexicalEntry{{Headword: ""}, {Headword: "ok"}, {Headword: "\t"}})

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	require.Len(t, ve.Errors, 2)
	assert.Equal(t, "entries[0].headword", ve.Errors[0].Field)
	assert.Equal(t, "entries[2].headword", ve.Errors[1].Field)
}

func TestNormalize_ComposesToNFC(t *testing.T) {
	t.Parallel()

	decomposed := "ala\u0301"
	composed := "al\u00e1"

	entries := []domain.LexicalEntry{{
		Headword:              decomposed,
		PronunciationVariants: []string{decomposed},
		LinguisticsNotes:      decomposed,
		Transcriptions: &domain.Transcriptions{
			Primary:         &domain.PrimarySpeaker{Americanist: decomposed, IPA: decomposed},
			Secondary:       &domain.SecondarySpeaker{Jacobs: decomposed, AmericanistIPA: decomposed},
			InstantPhonetic: decomposed,
		},
	}}

	Normalize(entries)

	e := entries[0]
	assert.Equal(t, composed, e.Headword)
	assert.Equal(t, composed, e.PronunciationVariants[0])
	assert.Equal(t, composed, e.LinguisticsNotes)
	assert.Equal(t, composed, e.Primary().Americanist)
	assert.Equal(t, composed, e.Primary().IPA)
	assert.Equal(t, composed, e.Secondary().Jacobs)
	assert.Equal(t, composed, e.Secondary().AmericanistIPA)
	assert.Equal(t, composed, e.InstantPhonetic())
}

func TestNormalize_KeepsUnreleasedMark(t *testing.T) {
	t.Parallel()

	// U+031A has no precomposed form; NFC leaves it for display normalization.
	s := "\u0294\u031Aa"
	entries := []domain.LexicalEntry{{Headword: s}}
	Normalize(entries)
	assert.Equal(t, s, entries[0].Headword)
}
