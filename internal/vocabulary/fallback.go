package vocabulary

// FallbackWords returns the builtin vocabulary used when no source can
// deliver a collection. It is intentionally tiny; it keeps the display and
// the quiz alive until the service is reachable again.
func FallbackWords() []Word {
	return []Word{
		{
			ID:            "1",
			WrittenForms:  StringList{"勉強"},
			Readings:      StringList{"べんきょう"},
			KanaForms:     StringList{"べんきょう"},
			Meanings:      StringList{"study"},
			Category:      "noun",
			Level:         "N5",
			PartsOfSpeech: StringList{"noun", "suru verb"},
			Examples: []Example{
				{
					Sentence:    "毎日日本語を勉強します。",
					Translation: "I study Japanese every day.",
				},
			},
		},
		{
			ID:            "2",
			WrittenForms:  StringList{"先生"},
			Readings:      StringList{"せんせい"},
			KanaForms:     StringList{"せんせい"},
			Meanings:      StringList{"teacher"},
			Category:      "noun",
			Level:         "N5",
			PartsOfSpeech: StringList{"noun"},
			Examples: []Example{
				{
					Sentence:    "田中先生は とても親切です。",
					Translation: "Tanaka-sensei is very kind.",
				},
			},
		},
		{
			ID:            "3",
			WrittenForms:  StringList{"学校"},
			Readings:      StringList{"がっこう"},
			KanaForms:     StringList{"がっこう"},
			Meanings:      StringList{"school"},
			Category:      "noun",
			Level:         "N5",
			PartsOfSpeech: StringList{"noun"},
			Examples: []Example{
				{
					Sentence:    "学校までバスで行きます。",
					Translation: "I go to school by bus.",
				},
			},
		},
	}
}
