// Package dictionary looks up word relations (synonyms, antonyms,
// definitions) from a remote dictionary API, with a local JSON file cache so
// repeated quiz generation does not re-query the API.
package dictionary

// Response is the dictionary API payload for one word.
type Response struct {
	Word    string   `json:"word"`
	Results []Result `json:"results"`
}

// Result is one sense of a word.
type Result struct {
	Definition   string   `json:"definition"`
	PartOfSpeech string   `json:"partOfSpeech"`
	Synonyms     []string `json:"synonyms"`
	Antonyms     []string `json:"antonyms"`
	Examples     []string `json:"examples"`
}

// AllSynonyms flattens the synonyms of every sense, preserving order and
// dropping duplicates.
func (r Response) AllSynonyms() []string {
	return r.flatten(func(result Result) []string { return result.Synonyms })
}

// AllAntonyms flattens the antonyms of every sense.
func (r Response) AllAntonyms() []string {
	return r.flatten(func(result Result) []string { return result.Antonyms })
}

func (r Response) flatten(pick func(Result) []string) []string {
	var words []string
	seen := make(map[string]bool)
	for _, result := range r.Results {
		for _, word := range pick(result) {
			if word == "" || seen[word] {
				continue
			}
			seen[word] = true
			words = append(words, word)
		}
	}
	return words
}
