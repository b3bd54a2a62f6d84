package model

import "time"

// SavedPrompt is a writing prompt a user kept.
type SavedPrompt struct {
	ID        int64
	UserID    int64
	PromptID  string
	Genre     string
	Keywords  string
	Prompt    string
	CreatedAt time.Time
	Deleted   bool
}

// PromptRequest asks for a writing prompt. Both fields are optional.
type PromptRequest struct {
	Genre    string `json:"genre,omitempty"`
	Keywords string `json:"keywords,omitempty"`
}

// PromptResponse carries a generated prompt and its HTML rendering.
type PromptResponse struct {
	Prompt     string `json:"prompt"`
	PromptHTML string `json:"prompt_html"`
}

// SavePromptRequest stores a prompt in the user's list.
type SavePromptRequest struct {
	Genre    string `json:"genre,omitempty"`
	Keywords string `json:"keywords,omitempty"`
	Prompt   string `json:"prompt"`
}

// SavedPromptResponse is a saved prompt as returned by the API.
type SavedPromptResponse struct {
	PromptID  string    `json:"prompt_id"`
	Genre     string    `json:"genre,omitempty"`
	Keywords  string    `json:"keywords,omitempty"`
	Prompt    string    `json:"prompt"`
	CreatedAt time.Time `json:"created_at"`
}
