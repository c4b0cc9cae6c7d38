// Package remote fetches the vocabulary set from the word service.
package remote

import (
	"github.com/tatdt622989/japanese-word-display/internal/vocabulary"
)

// fetchResponse is the raw payload of the vocabulary endpoint: a success
// marker and word records grouped by proficiency level.
type fetchResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message,omitempty"`
	Data    map[string][]wordRecord `json:"data"`
}

// wordRecord is one raw entry as the service delivers it. Several fields
// arrive either as a single string or as an array; StringList normalizes them
// on decode so nothing downstream branches on the shape.
type wordRecord struct {
	ID            string                `json:"id"`
	Word          vocabulary.StringList `json:"word"`
	Reading       vocabulary.StringList `json:"reading"`
	Kana          vocabulary.StringList `json:"kana"`
	Meaning       vocabulary.StringList `json:"meaning"`
	Category      string                `json:"category"`
	PartsOfSpeech vocabulary.StringList `json:"parts_of_speech"`
	Examples      []exampleRecord       `json:"examples"`
}

type exampleRecord struct {
	Japanese string `json:"ja"`
	English  string `json:"en"`
}

func (r wordRecord) toWord() vocabulary.Word {
	examples := make([]vocabulary.Example, 0, len(r.Examples))
	for _, example := range r.Examples {
		examples = append(examples, vocabulary.Example{
			Sentence:    example.Japanese,
			Translation: example.English,
		})
	}

	return vocabulary.Word{
		ID:            r.ID,
		WrittenForms:  r.Word,
		Readings:      r.Reading,
		KanaForms:     r.Kana,
		Meanings:      r.Meaning,
		Category:      r.Category,
		PartsOfSpeech: r.PartsOfSpeech,
		Examples:      examples,
	}
}

func (r fetchResponse) toWords() map[string][]vocabulary.Word {
	leveled := make(map[string][]vocabulary.Word, len(r.Data))
	for level, records := range r.Data {
		words := make([]vocabulary.Word, 0, len(records))
		for _, record := range records {
			words = append(words, record.toWord())
		}
		leveled[level] = words
	}
	return leveled
}
