package server

import (
	"fmt"
	"regexp"
	"strings"
)

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)\\s*```")

// ExtractJSON pulls the JSON object out of an LLM reply. Models sometimes
// wrap the payload in markdown fences or surround it with prose; take the
// fenced block when present, otherwise the outermost braces.
func ExtractJSON(content string) (string, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return "", fmt.Errorf("empty model response")
	}

	if m := fenceRe.FindStringSubmatch(content); m != nil {
		return m[1], nil
	}

	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start < 0 || end <= start {
		return "", fmt.Errorf("no JSON object in model response")
	}
	return content[start : end+1], nil
}
