package notes

// Record is the fully resolved, defaulted form of an incoming payload.
// It lives for exactly one request: resolve, render, discard.
type Record struct {
	Title     string     `json:"title"`
	RawTime   string     `json:"raw_time,omitempty"` // ISO-8601; empty means "now"
	Message   string     `json:"message,omitempty"`
	Words     []Word     `json:"words"`
	Sentences []Sentence `json:"sentences,omitempty"`
}

// Word is one row of the vocabulary table.
type Word struct {
	English  string   `json:"english"`
	Bengali  string   `json:"bengali"`
	Synonyms []string `json:"synonyms"`
	Antonyms []string `json:"antonyms"`
}

// Sentence is one row of the example-sentence table. It comes from a
// JSON-encoded string embedded inside the message object.
type Sentence struct {
	Word      string `json:"word"`
	MeaningBn string `json:"meaning_bn"`
	ExampleEn string `json:"example_en"`
	ExampleBn string `json:"example_bn"`
}
