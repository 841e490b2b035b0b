// Copyright © 2026 ソニーレベル <C7kali3@gmail.com>
// Prompt building

package assistant

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/invopop/jsonschema"
)

var (
	schemaOnce sync.Once
	schemaJSON string
)

// SuggestionSchema returns the JSON schema of Suggestion embedded in prompts
func SuggestionSchema() string {
	schemaOnce.Do(func() {
		reflector := &jsonschema.Reflector{
			DoNotReference:            true,
			AllowAdditionalProperties: false,
		}
		data, err := json.Marshal(reflector.Reflect(&Suggestion{}))
		if err != nil {
			panic(fmt.Sprintf("marshal suggestion schema: %v", err))
		}
		schemaJSON = string(data)
	})
	return schemaJSON
}

// BuildAskPrompt creates the prompt for open-ended questions
func BuildAskPrompt(query string) string {
	var sb strings.Builder

	sb.WriteString("You are tasked with responding to a user query. Answer succinctly. ")
	sb.WriteString("If your answer is longer than 1-2 sentences, use Markdown formatting, ")
	sb.WriteString("especially for code blocks.\n\n")
	sb.WriteString("Query:\n")
	sb.WriteString(query)
	sb.WriteString("\n")

	return sb.String()
}

// BuildSuggestPrompt creates the prompt asking for exactly one command
func BuildSuggestPrompt(query string) string {
	var sb strings.Builder

	sb.WriteString("You are tasked with suggesting a one-off bash command/script.\n")
	sb.WriteString("Only respond in accordance to this JSON Schema, and wrap it in a markdown code block i.e. \"```json\".\n\n")
	sb.WriteString("If the information you were given is not sufficient you may use template parameters using angle brackets,\n")
	sb.WriteString("for example \"git switch <branch-name>\". Parameter names may only contain letters, digits, '_' and '-'.\n\n")
	sb.WriteString("Always give a short explanation of what the command does. Only add a comment when it contains\n")
	sb.WriteString("relevant remarks; there is no need to repeat the user's query.\n\n")
	sb.WriteString("Schema:\n```\n")
	sb.WriteString(SuggestionSchema())
	sb.WriteString("\n```\n\n")
	sb.WriteString("Query:\n")
	sb.WriteString(query)
	sb.WriteString("\n")

	return sb.String()
}
