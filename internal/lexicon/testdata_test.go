package lexicon

import "github.com/heartmarshall/miluk-lexicon/internal/domain"

func word(headword string) domain.LexicalEntry {
	return domain.LexicalEntry{Headword: headword}
}

func lolly(headword, americanist string) domain.LexicalEntry {
	return domain.LexicalEntry{
		Headword: headword,
		Transcriptions: &domain.Transcriptions{
			Primary: &domain.PrimarySpeaker{Americanist: americanist},
		},
	}
}

func annie(headword, jacobs string) domain.LexicalEntry {
	return domain.LexicalEntry{
		Headword: headword,
		Transcriptions: &domain.Transcriptions{
			Secondary: &domain.SecondarySpeaker{Jacobs: jacobs},
		},
	}
}

func both(headword, americanist, jacobs string) domain.LexicalEntry {
	return domain.LexicalEntry{
		Headword: headword,
		Transcriptions: &domain.Transcriptions{
			Primary:   &domain.PrimarySpeaker{Americanist: americanist},
			Secondary: &domain.SecondarySpeaker{Jacobs: jacobs},
		},
	}
}

func headwords(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Entry.Headword
	}
	return out
}

func rowIDs(rows []Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.ID
	}
	return out
}
