package vocabulary

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// WordInfo is the lexicon's classification of one lemma.
type WordInfo struct {
	Lemma        string
	Level        Level
	PartOfSpeech string
	Translations map[string]string
}

// Translation returns the translation in the given target language, or empty
// when the lexicon carries none.
func (w WordInfo) Translation(language string) string {
	return w.Translations[strings.ToLower(language)]
}

// lexiconEntry is the YAML shape of one wordlist entry.
type lexiconEntry struct {
	Lemma        string            `yaml:"lemma"`
	PartOfSpeech string            `yaml:"part_of_speech"`
	Translations map[string]string `yaml:"translations"`
}

// Lexicon maps normalized lemmas to their difficulty classification. It is
// loaded once from per-level YAML wordlists and read-only afterwards.
type Lexicon struct {
	words map[string]WordInfo
}

// LoadLexicon reads wordlist files named after their level (a1.yml .. c2.yml)
// from dir. Missing level files are tolerated; a directory with no wordlist at
// all is an error.
func LoadLexicon(dir string) (*Lexicon, error) {
	lexicon := &Lexicon{words: make(map[string]WordInfo)}

	loaded := 0
	for level := LevelA1; level <= LevelC2; level++ {
		path := filepath.Join(dir, strings.ToLower(level.String())+".yml")
		data, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("os.ReadFile(%s) > %w", path, err)
		}

		var entries []lexiconEntry
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("yaml.Unmarshal(%s) > %w", path, err)
		}
		for _, entry := range entries {
			lemma := Normalize(entry.Lemma)
			if lemma == "" {
				continue
			}
			// First classification wins: easier lists are loaded first.
			if _, ok := lexicon.words[lemma]; ok {
				continue
			}
			lexicon.words[lemma] = WordInfo{
				Lemma:        lemma,
				Level:        level,
				PartOfSpeech: entry.PartOfSpeech,
				Translations: entry.Translations,
			}
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("no wordlist files found in %s", dir)
	}
	return lexicon, nil
}

// Lookup returns the classification for a normalized lemma.
func (l *Lexicon) Lookup(lemma string) (WordInfo, bool) {
	info, ok := l.words[Normalize(lemma)]
	return info, ok
}

// Contains reports whether the lexicon knows the lemma.
func (l *Lexicon) Contains(lemma string) bool {
	_, ok := l.words[Normalize(lemma)]
	return ok
}

// Size returns the number of classified lemmas.
func (l *Lexicon) Size() int {
	return len(l.words)
}
