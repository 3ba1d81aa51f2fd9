// Package expand implements the prompt-expansion stage: each catalog record
// becomes up to VariantsPerTemplate routing prompts labeled with the
// template they should route to.
package expand

import (
	"github.com/templatelab/routeset/internal/catalog"
	"github.com/templatelab/routeset/internal/dataset"
)

// VariantsPerTemplate caps how many prompts a single template contributes.
const VariantsPerTemplate = 4

// FromTemplate derives the prompt examples for one catalog record.
//
// The record's phrases come from user_phrases, falling back to keywords; a
// record with neither produces nothing. The hint at index i pairs only with
// the phrase at index i - once the hint list is exhausted, remaining phrases
// stand alone. Expected template fields are copied verbatim.
func FromTemplate(tpl catalog.Template) []dataset.PromptExample {
	phrases := tpl.Phrases()
	if len(phrases) == 0 {
		return nil
	}
	if len(phrases) > VariantsPerTemplate {
		phrases = phrases[:VariantsPerTemplate]
	}

	hints := catalog.HintsFor(tpl.Formats())

	examples := make([]dataset.PromptExample, 0, len(phrases))
	for i, phrase := range phrases {
		prompt := phrase
		if i < len(hints) {
			prompt = hints[i] + " " + phrase
		}
		examples = append(examples, dataset.PromptExample{
			Prompt:               prompt,
			ExpectedTemplateID:   tpl.TemplateID,
			ExpectedTemplateName: tpl.TemplateName,
			DBID:                 tpl.DBID,
		})
	}
	return examples
}
