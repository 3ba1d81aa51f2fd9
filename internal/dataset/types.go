// Package dataset defines the derived training-record shapes shared by the
// pipeline stages.
package dataset

// PromptExample pairs one synthetic routing prompt with the template it
// should route to. db_id has no omitempty on purpose: an absent source id
// serializes as an explicit null in the prompt dataset.
type PromptExample struct {
	Prompt               string `json:"prompt"`
	ExpectedTemplateID   string `json:"expected_template_id"`
	ExpectedTemplateName string `json:"expected_template_name"`
	DBID                 any    `json:"db_id"`
}

// Chat roles used in fine-tune conversations.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// SystemInstruction frames the assistant for every fine-tune conversation.
const SystemInstruction = "You are a template routing assistant. Given user intent, respond with the best template id."

// Message is a single chat turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Conversation is one fine-tuning example: a fixed system instruction, the
// user prompt, and the expected template id as the assistant answer.
type Conversation struct {
	Messages []Message `json:"messages"`
}
