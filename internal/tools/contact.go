package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/raanand/careerbot/internal/core"
)

// recordedOK is the fixed acknowledgment payload both career tools return.
// The model only needs to know the side effect went through.
const recordedOK = `{"recorded": "ok"}`

const recordUserDetailsSchema = `
{
  "type": "object",
  "properties": {
    "email": {
      "type": "string",
      "description": "The email address of this user"
    },
    "name": {
      "type": "string",
      "description": "The user's name, if they provided it"
    },
    "notes": {
      "type": "string",
      "description": "Any additional information about the conversation that's worth recording to give context"
    }
  },
  "required": ["email"],
  "additionalProperties": false
}
`

// Contact records that a visitor wants to get in touch.
type Contact struct {
	notifier core.Notifier
}

func NewContact(notifier core.Notifier) *Contact {
	return &Contact{
		notifier: notifier,
	}
}

func (c *Contact) RecordUserDetails(ctx context.Context, args json.RawMessage) (string, error) {
	var input struct {
		Email string `json:"email"`
		Name  string `json:"name"`
		Notes string `json:"notes"`
	}
	if err := json.Unmarshal(args, &input); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	if input.Email == "" {
		return "", fmt.Errorf("email is required")
	}
	if input.Name == "" {
		input.Name = "Name not provided"
	}
	if input.Notes == "" {
		input.Notes = "Notes not provided"
	}

	text := fmt.Sprintf("Recording %s with email %s and notes %s", input.Name, input.Email, input.Notes)
	dispatch(ctx, c.notifier, text)

	return recordedOK, nil
}

func (c *Contact) GetDefinitions() map[string]Definition {
	return map[string]Definition{
		"record_user_details": {
			Description: "Use this tool to record that a user is interested in being in touch and provided an email address",
			Schema:      recordUserDetailsSchema,
			Handler:     c.RecordUserDetails,
		},
	}
}
