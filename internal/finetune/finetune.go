// Package finetune implements the fine-tune formatting stage: each prompt
// example becomes a three-turn instructional conversation.
package finetune

import (
	"github.com/templatelab/routeset/internal/dataset"
)

// Wrap builds the conversation for one prompt example. The assistant turn
// is the literal expected template id - no paraphrasing, no explanation.
func Wrap(ex dataset.PromptExample) dataset.Conversation {
	return dataset.Conversation{
		Messages: []dataset.Message{
			{Role: dataset.RoleSystem, Content: dataset.SystemInstruction},
			{Role: dataset.RoleUser, Content: ex.Prompt},
			{Role: dataset.RoleAssistant, Content: ex.ExpectedTemplateID},
		},
	}
}
