// Package extract locates and parses a JSON payload embedded in free
// text. Model responses routinely wrap the requested object in prose
// or markdown fences; every generation call site runs its output
// through this package before trusting it.
package extract

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// snippetLen bounds the raw-text prefix embedded in extraction errors.
const snippetLen = 100

var fenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.*?)```")

// Error reports that no valid JSON payload could be located in a
// response. Snippet holds a truncated prefix of the offending text.
type Error struct {
	Snippet string
}

func (e *Error) Error() string {
	return fmt.Sprintf("extract: response contains no valid JSON: %q", e.Snippet)
}

// JSON extracts the first JSON object from raw and returns it as a
// generic map. Attempts, in order, first success wins:
//
//  1. parse the trimmed text directly
//  2. parse the inner text of a fenced code block
//  3. parse the first balanced {...} span
//  4. if an opening brace has no closing brace, append one and parse
//
// When every attempt fails it returns *Error with a diagnostic prefix.
func JSON(raw string) (map[string]any, error) {
	var obj map[string]any
	if err := Into(raw, &obj); err != nil {
		return nil, err
	}
	return obj, nil
}

// Into extracts the first JSON object from raw and unmarshals it into v.
func Into(raw string, v any) error {
	trimmed := strings.TrimSpace(raw)

	if err := json.Unmarshal([]byte(trimmed), v); err == nil {
		return nil
	}

	if m := fenceRe.FindStringSubmatch(trimmed); m != nil {
		if err := json.Unmarshal([]byte(strings.TrimSpace(m[1])), v); err == nil {
			return nil
		}
	}

	if span := balancedSpan(trimmed); span != "" {
		if err := json.Unmarshal([]byte(span), v); err == nil {
			return nil
		}
	}

	// Best-effort repair: an object that was cut off before its
	// closing brace.
	if i := strings.Index(trimmed, "{"); i >= 0 && !strings.Contains(trimmed, "}") {
		if err := json.Unmarshal([]byte(trimmed[i:]+"}"), v); err == nil {
			return nil
		}
	}

	snippet := trimmed
	if len(snippet) > snippetLen {
		snippet = snippet[:snippetLen]
	}
	zap.L().Debug("extract: no JSON payload located",
		zap.Int("text_len", len(trimmed)),
		zap.String("prefix", snippet),
	)
	return &Error{Snippet: snippet}
}

// balancedSpan returns the first {...} span in text whose braces
// balance, skipping braces inside JSON string literals. Returns ""
// when no balanced span exists.
func balancedSpan(text string) string {
	start := strings.Index(text, "{")
	if start < 0 {
		return ""
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch c {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		}
	}
	return ""
}
