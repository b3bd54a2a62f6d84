package prompt

import (
	"bytes"
	"strings"

	"github.com/tidwall/gjson"
	"github.com/yuin/goldmark"
)

// PostProcess extracts the prompt text from a raw model reply. The reply may
// be a JSON object with a "prompt" field, optionally wrapped in a code fence,
// or plain text.
func PostProcess(raw string) (string, error) {
	text := stripCodeFence(strings.TrimSpace(raw))

	if gjson.Valid(text) && gjson.Parse(text).IsObject() {
		v := gjson.Get(text, "prompt")
		if !v.Exists() {
			return "", ErrEmptyPrompt
		}
		text = v.String()
	}

	text = strings.TrimSpace(text)
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = strings.TrimSpace(text[1 : len(text)-1])
	}
	if text == "" {
		return "", ErrEmptyPrompt
	}
	return text, nil
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	body := strings.TrimPrefix(s, "```")
	closed := strings.HasSuffix(body, "```")
	if closed {
		body = strings.TrimSuffix(body, "```")
	}
	// The first line is an info string such as "json" unless the fence is a
	// single closed line.
	if i := strings.IndexByte(body, '\n'); i >= 0 {
		body = body[i+1:]
	} else if !closed {
		return ""
	}
	return strings.TrimSpace(body)
}

// RenderHTML renders prompt Markdown to HTML. Raw HTML in the input is not passed through.
func RenderHTML(md string) (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(md), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
