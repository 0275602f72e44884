package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/raanand/careerbot/internal/core"
)

const recordUnknownQuestionSchema = `
{
  "type": "object",
  "properties": {
    "question": {
      "type": "string",
      "description": "The question that couldn't be answered"
    }
  },
  "required": ["question"],
  "additionalProperties": false
}
`

// UnknownQuestion tracks questions the responder could not answer, so the
// candidate can extend the profile material later.
type UnknownQuestion struct {
	notifier core.Notifier
}

func NewUnknownQuestion(notifier core.Notifier) *UnknownQuestion {
	return &UnknownQuestion{
		notifier: notifier,
	}
}

func (u *UnknownQuestion) RecordUnknownQuestion(ctx context.Context, args json.RawMessage) (string, error) {
	var input struct {
		Question string `json:"question"`
	}
	if err := json.Unmarshal(args, &input); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	if input.Question == "" {
		return "", fmt.Errorf("question is required")
	}

	text := fmt.Sprintf("Recording unanswered question: %s", input.Question)
	dispatch(ctx, u.notifier, text)

	return recordedOK, nil
}

func (u *UnknownQuestion) GetDefinitions() map[string]Definition {
	return map[string]Definition{
		"record_unknown_question": {
			Description: "Always use this tool to record any question that couldn't be answered as you didn't know the answer",
			Schema:      recordUnknownQuestionSchema,
			Handler:     u.RecordUnknownQuestion,
		},
	}
}
