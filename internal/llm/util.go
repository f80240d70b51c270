package llm

import "strings"

// CleanJSONBlock strips a markdown code fence from a model response. Gemini
// tends to wrap JSON answers in ```json fences even when the prompt forbids
// it; the payload inside the fence is returned unchanged.
func CleanJSONBlock(text string) string {
	text = strings.TrimSpace(text)

	if rest, ok := strings.CutPrefix(text, "```json"); ok {
		return trimClosingFence(rest)
	}

	rest, ok := strings.CutPrefix(text, "```")
	if !ok {
		return text
	}
	// A bare fence may still carry a language tag on its first line.
	if idx := strings.Index(rest, "\n"); idx >= 0 {
		tag := rest[:idx]
		if len(tag) < 20 && !strings.ContainsAny(tag, " {") {
			rest = rest[idx+1:]
		}
	}
	return trimClosingFence(rest)
}

func trimClosingFence(text string) string {
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}
