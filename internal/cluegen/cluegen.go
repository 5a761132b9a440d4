// Package cluegen generates short crossword clues for words that come
// without one, using the Gemini API in batch. It is optional: the engine
// runs fine without a client, and pre-supplied clue text is never
// overwritten.
package cluegen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultModel = "gemini-2.5-flash"

const cluePromptHeader = `Generate very short clues (2-5 words each) for these words.
Target audience: young teenagers playing a word game.
Mix of straightforward definitions and slightly clever clues.
Keep it simple and age-appropriate.

Words:
`

const cluePromptFooter = `

Respond with ONLY a JSON array of clues in the same order, like:
["clue for word 1", "clue for word 2", ...]

No explanations, just the JSON array.`

// Client wraps the GenAI client for clue generation.
type Client struct {
	client    *genai.Client
	modelName string
}

// New creates a clue-generation client using the GEMINI_API_KEY
// environment variable (or other ambient credentials the SDK supports).
func New(ctx context.Context) (*Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Client{client: client, modelName: defaultModel}, nil
}

// GenerateClues returns one clue per word, in order. The whole batch goes
// out in a single request; callers chunk long lists themselves.
func (c *Client) GenerateClues(ctx context.Context, words []string) ([]string, error) {
	if len(words) == 0 {
		return nil, nil
	}

	var sb strings.Builder
	sb.WriteString(cluePromptHeader)
	for i, w := range words {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, w)
	}
	sb.WriteString(cluePromptFooter)

	resp, err := c.client.Models.GenerateContent(ctx, c.modelName,
		[]*genai.Content{{
			Role:  "user",
			Parts: []*genai.Part{{Text: sb.String()}},
		}},
		&genai.GenerateContentConfig{
			Temperature:      genai.Ptr(float32(0.7)),
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}

	text := resp.Text()
	if text == "" {
		return nil, fmt.Errorf("empty gemini response")
	}

	var clues []string
	if err := json.Unmarshal([]byte(text), &clues); err != nil {
		return nil, fmt.Errorf("parse clues JSON: %w\nraw response: %s", err, text)
	}
	if len(clues) != len(words) {
		return nil, fmt.Errorf("got %d clues for %d words", len(clues), len(words))
	}
	return clues, nil
}
