package lexicon

// Alphabet is the letter bar shown above the list.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ActiveLetters returns the letters of Alphabet that have at least one row,
// in alphabetical order. Rows grouped under OtherLetter or under a non-Latin
// initial are not indexed.
func ActiveLetters(rows []Row) []string {
	var seen [26]bool
	for i := range rows {
		if l := rows[i].Letter; isBasicLatin(l) {
			seen[l[0]-'A'] = true
		}
	}

	letters := make([]string, 0, len(Alphabet))
	for i, ok := range seen {
		if ok {
			letters = append(letters, Alphabet[i:i+1])
		}
	}
	return letters
}
