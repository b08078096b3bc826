package describe

import (
	"fmt"
	"regexp"
	"strings"
)

var fenceStart = regexp.MustCompile("^```\\w*\\n?")

// ExtractJSON pulls the first complete JSON object out of an LLM reply.
// Tolerates markdown code fences and prose before or after the object;
// models are asked for bare JSON but do not reliably comply.
func ExtractJSON(reply string) (string, error) {
	reply = strings.TrimSpace(reply)
	if strings.HasPrefix(reply, "```") {
		reply = fenceStart.ReplaceAllString(reply, "")
		reply = strings.TrimSuffix(strings.TrimSpace(reply), "```")
		reply = strings.TrimSpace(reply)
	}
	start := strings.Index(reply, "{")
	if start < 0 {
		return "", fmt.Errorf("no JSON object in reply")
	}
	reply = reply[start:]

	depth := 0
	inString := false
	escaped := false
	for i, c := range reply {
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return reply[:i+1], nil
			}
		}
	}
	return "", fmt.Errorf("unbalanced JSON braces in reply")
}
