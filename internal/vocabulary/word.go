// Package vocabulary holds the in-memory word collection for a session and
// the sources that populate it.
package vocabulary

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// StringList normalizes fields that the vocabulary service delivers either as
// a single string or as an array of strings.
type StringList []string

func (l *StringList) UnmarshalJSON(data []byte) error {
	if len(data) == 0 {
		return fmt.Errorf("empty value for string list")
	}
	if data[0] == '[' {
		var values []string
		if err := json.Unmarshal(data, &values); err != nil {
			return fmt.Errorf("json.Unmarshal > %w", err)
		}
		*l = values
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	*l = StringList{value}
	return nil
}

func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var value string
		if err := node.Decode(&value); err != nil {
			return fmt.Errorf("node.Decode > %w", err)
		}
		*l = StringList{value}
	case yaml.SequenceNode:
		var values []string
		if err := node.Decode(&values); err != nil {
			return fmt.Errorf("node.Decode > %w", err)
		}
		*l = values
	default:
		return fmt.Errorf("unexpected YAML node kind %d for string list", node.Kind)
	}
	return nil
}

// First returns the canonical (first) value, or an empty string when the list
// is empty.
func (l StringList) First() string {
	if len(l) == 0 {
		return ""
	}
	return l[0]
}

// Example is a sentence pair attached to a word.
type Example struct {
	Sentence    string `json:"sentence" yaml:"sentence" validate:"required"`
	Translation string `json:"translation" yaml:"translation" validate:"required"`
}

// Word is one vocabulary entry. WrittenForms, Readings and Meanings are never
// empty for a word accepted into the store; the first element of each is the
// canonical one.
type Word struct {
	ID            string     `json:"id" yaml:"id" validate:"required"`
	WrittenForms  StringList `json:"written_forms" yaml:"written_forms" validate:"min=1,dive,required"`
	Readings      StringList `json:"readings" yaml:"readings" validate:"min=1,dive,required"`
	KanaForms     StringList `json:"kana_forms" yaml:"kana_forms"`
	Meanings      StringList `json:"meanings" yaml:"meanings" validate:"min=1,dive,required"`
	Category      string     `json:"category" yaml:"category"`
	Level         string     `json:"level,omitempty" yaml:"level,omitempty"`
	PartsOfSpeech StringList `json:"parts_of_speech,omitempty" yaml:"parts_of_speech,omitempty"`
	Examples      []Example  `json:"examples,omitempty" yaml:"examples,omitempty" validate:"dive"`
}

// FirstWrittenForm returns the canonical written form.
func (w Word) FirstWrittenForm() string {
	return w.WrittenForms.First()
}

// FirstReading returns the canonical reading.
func (w Word) FirstReading() string {
	return w.Readings.First()
}

// FirstMeaning returns the canonical meaning.
func (w Word) FirstMeaning() string {
	return w.Meanings.First()
}

// HasExamples reports whether the word carries at least one example sentence.
func (w Word) HasExamples() bool {
	return len(w.Examples) > 0
}
