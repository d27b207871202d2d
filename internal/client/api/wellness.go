package api

import (
	"context"
	"net/http"
)

// RandomSoulNote fetches one affirmation.
func (c *Client) RandomSoulNote(ctx context.Context) (*SoulNote, error) {
	var note SoulNote
	if err := c.do(ctx, http.MethodGet, "/soul_notes/random", nil, &note); err != nil {
		return nil, err
	}
	return &note, nil
}

// LoopPrompt fetches one redirection prompt.
func (c *Client) LoopPrompt(ctx context.Context) (string, error) {
	var body struct {
		Prompt string `json:"prompt"`
	}
	if err := c.do(ctx, http.MethodGet, "/loop_breaker/prompt", nil, &body); err != nil {
		return "", err
	}
	return body.Prompt, nil
}

// Techniques fetches the breath-and-ground exercise list.
func (c *Client) Techniques(ctx context.Context) ([]Technique, error) {
	var body struct {
		Techniques []Technique `json:"techniques"`
	}
	if err := c.do(ctx, http.MethodGet, "/breath_ground", nil, &body); err != nil {
		return nil, err
	}
	return body.Techniques, nil
}
