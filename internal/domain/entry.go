package domain

// LexicalEntry is a single wordlist entry: an English gloss aligned with
// the Miluk transcriptions recorded from two speakers.
//
// Entries are loaded once at process start and are never mutated afterwards.
// They have no identity beyond their position in the dataset and their
// headword; URL identifiers are assigned per view by the lexicon package.
type LexicalEntry struct {
	Headword              string          `json:"headword"                         jsonschema:"required,minLength=1"`
	PronunciationVariants []string        `json:"pronunciation_variants,omitempty"`
	LinguisticsNotes      string          `json:"linguistics_notes,omitempty"`
	Transcriptions        *Transcriptions `json:"pronunciation_table,omitempty"`
	AudioSources          []string        `json:"soundcloud_urls,omitempty"`
}

// Transcriptions holds the two independently optional speaker slots.
// A nil slot means the speaker has no record for the entry; an empty,
// non-nil slot still counts as present.
type Transcriptions struct {
	Primary         *PrimarySpeaker   `json:"lolly,omitempty"`
	Secondary       *SecondarySpeaker `json:"annie,omitempty"`
	InstantPhonetic string            `json:"instant_phonetic_englishization,omitempty"`
}

// PrimarySpeaker holds Lolly Metcalf's recorded forms.
type PrimarySpeaker struct {
	Americanist string `json:"americanist,omitempty"`
	IPA         string `json:"ipa,omitempty"`
}

// SecondarySpeaker holds Annie Miner Peterson's forms from the Jacobs texts.
type SecondarySpeaker struct {
	Jacobs         string `json:"jacobs,omitempty"`
	AmericanistIPA string `json:"americanist_ipa,omitempty"`
}

// Primary returns the primary speaker slot, or nil when absent.
func (e *LexicalEntry) Primary() *PrimarySpeaker {
	if e == nil || e.Transcriptions == nil {
		return nil
	}
	return e.Transcriptions.Primary
}

// Secondary returns the secondary speaker slot, or nil when absent.
func (e *LexicalEntry) Secondary() *SecondarySpeaker {
	if e == nil || e.Transcriptions == nil {
		return nil
	}
	return e.Transcriptions.Secondary
}

// InstantPhonetic returns the "how to say it" respelling, if any.
func (e *LexicalEntry) InstantPhonetic() string {
	if e == nil || e.Transcriptions == nil {
		return ""
	}
	return e.Transcriptions.InstantPhonetic
}
