package vocabulary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Candidate is the wire shape for a vocabulary word attached to a progress
// record. Downstream validators forbid unrecognized fields, so the known flag
// must be serialized under exactly the key "known" and no other field may be
// added. NewCandidate is the only place this shape is built.
type Candidate struct {
	Word            string `json:"word" validate:"required"`
	Lemma           string `json:"lemma" validate:"required"`
	DifficultyLevel string `json:"difficulty_level" validate:"required"`
	PartOfSpeech    string `json:"part_of_speech"`
	Translation     string `json:"translation"`
	Known           bool   `json:"known"`
}

var (
	candidateValidator     *validator.Validate
	candidateValidatorOnce sync.Once
)

func getCandidateValidator() *validator.Validate {
	candidateValidatorOnce.Do(func() {
		candidateValidator = validator.New()
	})
	return candidateValidator
}

// NewCandidate builds a Candidate from a blocker word. The known flag defaults
// to false: a blocker is by definition not yet known to the user.
func NewCandidate(blocker BlockerWord) Candidate {
	return Candidate{
		Word:            blocker.Word,
		Lemma:           blocker.Lemma,
		DifficultyLevel: blocker.LevelName,
		PartOfSpeech:    blocker.PartOfSpeech,
		Translation:     blocker.Translation,
		Known:           false,
	}
}

// CandidatesFromResult converts a filter result into the strict candidate
// shape.
func CandidatesFromResult(result FilterResult) []Candidate {
	candidates := make([]Candidate, 0, len(result.BlockerWords))
	for _, blocker := range result.BlockerWords {
		candidates = append(candidates, NewCandidate(blocker))
	}
	return candidates
}

// DecodeCandidate parses and validates candidate JSON. Unknown fields (such
// as a stray "active") are rejected outright.
func DecodeCandidate(data []byte) (Candidate, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()

	var candidate Candidate
	if err := decoder.Decode(&candidate); err != nil {
		return Candidate{}, fmt.Errorf("decode candidate > %w", err)
	}
	if err := getCandidateValidator().Struct(candidate); err != nil {
		return Candidate{}, fmt.Errorf("validate candidate > %w", err)
	}
	return candidate, nil
}
