package profile

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	tk     *tiktoken.Tiktoken
	tkErr  error
	tkOnce sync.Once
)

func getTokenizer() (*tiktoken.Tiktoken, error) {
	tkOnce.Do(func() {
		tk, tkErr = tiktoken.GetEncoding("cl100k_base")
	})
	return tk, tkErr
}

// PromptTokens reports how many cl100k_base tokens the rendered system
// prompt occupies. Used for operator visibility at startup only; the loop
// itself never truncates the bundle.
func (b *Bundle) PromptTokens() (int, error) {
	enc, err := getTokenizer()
	if err != nil {
		return 0, err
	}
	return len(enc.Encode(b.SystemPrompt(), nil, nil)), nil
}
