// Package quiz builds multiple-choice questions over the vocabulary store.
package quiz

import (
	"github.com/tatdt622989/japanese-word-display/internal/vocabulary"
)

// QuestionType selects which attribute of a word a question asks about. Each
// type doubles as the projection used for the correct answer and for
// distractor candidates.
type QuestionType string

const (
	QuestionTypeMeaning     QuestionType = "meaning"
	QuestionTypeReading     QuestionType = "reading"
	QuestionTypeWrittenForm QuestionType = "written_form"
)

var questionTypes = []QuestionType{
	QuestionTypeMeaning,
	QuestionTypeReading,
	QuestionTypeWrittenForm,
}

// Project maps a word to the attribute value this question type asks for.
func (t QuestionType) Project(word *vocabulary.Word) string {
	switch t {
	case QuestionTypeReading:
		return word.FirstReading()
	case QuestionTypeWrittenForm:
		return word.FirstWrittenForm()
	default:
		return word.FirstMeaning()
	}
}

// Option is one selectable answer.
type Option struct {
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

// Question is one quiz invocation. Exactly one option is correct and its
// text equals CorrectAnswerText. The option list can be shorter than
// requested when the store lacks enough distinct distractor values.
type Question struct {
	Prompt            string       `json:"prompt"`
	Options           []Option     `json:"options"`
	CorrectAnswerText string       `json:"correct_answer"`
	Type              QuestionType `json:"type"`
	TargetWordID      string       `json:"target_word_id"`
}
