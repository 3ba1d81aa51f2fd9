package finetune

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/templatelab/routeset/internal/dataset"
)

func TestWrap(t *testing.T) {
	ex := dataset.PromptExample{
		Prompt:               "format:square make a square banner",
		ExpectedTemplateID:   "t1",
		ExpectedTemplateName: "Hero",
	}

	conv := Wrap(ex)

	if len(conv.Messages) != 3 {
		t.Fatalf("got %d messages, want 3", len(conv.Messages))
	}

	system := conv.Messages[0]
	if system.Role != dataset.RoleSystem || system.Content != dataset.SystemInstruction {
		t.Errorf("unexpected system turn: %+v", system)
	}

	user := conv.Messages[1]
	if user.Role != dataset.RoleUser || user.Content != ex.Prompt {
		t.Errorf("unexpected user turn: %+v", user)
	}

	assistant := conv.Messages[2]
	if assistant.Role != dataset.RoleAssistant || assistant.Content != ex.ExpectedTemplateID {
		t.Errorf("unexpected assistant turn: %+v", assistant)
	}
}

func TestStage_Run(t *testing.T) {
	dir := t.TempDir()
	promptsPath := filepath.Join(dir, "prompts.jsonl")
	outPath := filepath.Join(dir, "finetune.jsonl")

	prompts := []string{
		`{"prompt":"format:square make a square banner","expected_template_id":"t1","expected_template_name":"Hero","db_id":null}`,
		`{"prompt":"mobile layout vertical promo","expected_template_id":"t2","expected_template_name":"Promo","db_id":7}`,
	}
	if err := os.WriteFile(promptsPath, []byte(strings.Join(prompts, "\n")+"\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stage := &Stage{Prompts: promptsPath, Output: outPath}
	res, err := stage.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if res.Records != 2 {
		t.Errorf("got %d records, want 2", res.Records)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d output lines, want 2", len(lines))
	}

	// Round-trip: user content is the prompt, assistant content is the
	// template id, both unchanged.
	for i, line := range lines {
		var conv dataset.Conversation
		if err := json.Unmarshal([]byte(line), &conv); err != nil {
			t.Fatalf("line %d: %v", i+1, err)
		}
		var src dataset.PromptExample
		if err := json.Unmarshal([]byte(prompts[i]), &src); err != nil {
			t.Fatal(err)
		}
		if conv.Messages[1].Content != src.Prompt {
			t.Errorf("line %d: user content %q, want %q", i+1, conv.Messages[1].Content, src.Prompt)
		}
		if conv.Messages[2].Content != src.ExpectedTemplateID {
			t.Errorf("line %d: assistant content %q, want %q", i+1, conv.Messages[2].Content, src.ExpectedTemplateID)
		}
	}
}

func TestStage_Run_MalformedInput(t *testing.T) {
	dir := t.TempDir()
	promptsPath := filepath.Join(dir, "prompts.jsonl")
	if err := os.WriteFile(promptsPath, []byte("{broken\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	stage := &Stage{Prompts: promptsPath, Output: filepath.Join(dir, "out.jsonl")}
	if _, err := stage.Run(context.Background(), nil); err == nil {
		t.Fatal("expected error for malformed input")
	}
}

func TestStage_Dependencies(t *testing.T) {
	stage := &Stage{}
	deps := stage.Dependencies()
	if len(deps) != 1 || deps[0] != "expand-prompts" {
		t.Errorf("unexpected dependencies: %v", deps)
	}
}
