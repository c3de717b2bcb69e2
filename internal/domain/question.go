package domain

import (
	"encoding/json"
	"fmt"
)

// questionKeys are the fields every imported question record must carry.
var questionKeys = []string{
	"video_id",
	"question_id",
	"question_text",
	"options",
	"answer_choice",
	"final_category",
}

// ParseQuestion decodes one JSONL catalog line. It returns ErrMalformedRecord
// (wrapped) when the line is not valid JSON or any required field is missing
// or null. Records with extra fields are accepted; the extras are ignored.
func ParseQuestion(line []byte) (Question, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(line, &raw); err != nil {
		return Question{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	for _, key := range questionKeys {
		value, ok := raw[key]
		if !ok || string(value) == "null" {
			return Question{}, fmt.Errorf("%w: missing field %q", ErrMalformedRecord, key)
		}
	}
	var q Question
	if err := json.Unmarshal(line, &q); err != nil {
		return Question{}, fmt.Errorf("%w: %v", ErrMalformedRecord, err)
	}
	return q, nil
}
