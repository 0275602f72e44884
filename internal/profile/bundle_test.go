package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSystemPrompt(t *testing.T) {
	bundle := &Bundle{
		Name:         "Rahul Anand",
		Summary:      "Backend engineer.",
		ProfileText:  "Acme Corp, 2018-2024.",
		ProjectsText: "Payments platform rewrite.",
	}

	prompt := bundle.SystemPrompt()

	assert.True(t, strings.HasPrefix(prompt, "You are acting as Rahul Anand."))
	assert.Contains(t, prompt, "## Summary:\nBackend engineer.")
	assert.Contains(t, prompt, "## LinkedIn Profile:\nAcme Corp, 2018-2024.")
	assert.Contains(t, prompt, "## LinkedIn Projects:\nPayments platform rewrite.")
	assert.Contains(t, prompt, "record_unknown_question")
	assert.Contains(t, prompt, "record_user_details")
	assert.True(t, strings.HasSuffix(prompt, "always staying in character as Rahul Anand."))
}

func TestPromptTokens(t *testing.T) {
	bundle := &Bundle{Name: "Rahul Anand", Summary: "Short summary."}

	n, err := bundle.PromptTokens()
	assert.NoError(t, err)
	assert.Greater(t, n, 50, "persona instructions alone exceed 50 tokens")
}
