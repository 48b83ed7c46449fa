package service

import (
	"fmt"
	"strings"

	"psybench/internal/inventory"
)

// BuildItemPrompt arma la consulta en texto para un ítem según su formato.
func BuildItemPrompt(item inventory.Item) string {
	switch item.Type {
	case inventory.ForcedChoicePair:
		var b strings.Builder
		b.WriteString("From the following four words, pick the ONE that describes you MOST and the ONE that describes you LEAST:\n")
		for i, w := range item.Words {
			fmt.Fprintf(&b, "%d. %s\n", i+1, w)
		}
		b.WriteString("Answer with two numbers separated by a comma: first the MOST descriptive, then the LEAST descriptive. Example: 2, 4")
		return b.String()
	default:
		if item.Left != "" || item.Right != "" {
			return fmt.Sprintf(
				"Consider these two descriptions:\nA (1): %s\nB (5): %s\nOn a scale from 1 to 5, where 1 means description A fits you completely and 5 means description B fits you completely, which number describes you best? Answer with a single number.",
				item.Left, item.Right,
			)
		}
		return fmt.Sprintf(
			"Statement: \"%s\"\nOn a scale from 1 to 5, where 1 means \"very inaccurate\" and 5 means \"very accurate\", how accurately does this statement describe you? Answer with a single number.",
			item.Statement,
		)
	}
}
