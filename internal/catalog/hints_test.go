package catalog

import "testing"

func TestHintsFor(t *testing.T) {
	tests := []struct {
		name     string
		formats  []Format
		expected []string
	}{
		{
			name:    "single format",
			formats: []Format{FormatSquare},
			expected: []string{
				"format:square", "social square", "1:1 canvas",
			},
		},
		{
			name:    "multiple formats concatenate in record order",
			formats: []Format{FormatPortrait, FormatLandscape},
			expected: []string{
				"format:portrait", "mobile layout", "vertical video",
				"format:landscape", "desktop layout", "wide hero",
			},
		},
		{
			name:     "unknown format alone falls back to generic",
			formats:  []Format{"circle"},
			expected: []string{GenericHint},
		},
		{
			name:    "unknown format among known ones contributes nothing",
			formats: []Format{"circle", FormatSquare},
			expected: []string{
				"format:square", "social square", "1:1 canvas",
			},
		},
		{
			name:     "no formats falls back to generic",
			formats:  nil,
			expected: []string{GenericHint},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HintsFor(tt.formats)
			if len(got) != len(tt.expected) {
				t.Fatalf("length mismatch: got %d (%v), want %d", len(got), got, len(tt.expected))
			}
			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("index %d: got %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestHintsFor_PreservesDuplicates(t *testing.T) {
	// The same format listed twice duplicates its hints; expansion must not
	// deduplicate.
	got := HintsFor([]Format{FormatSquare, FormatSquare})
	if len(got) != 6 {
		t.Fatalf("got %d hints, want 6", len(got))
	}
	if got[0] != got[3] {
		t.Errorf("expected duplicated hints, got %v", got)
	}
}
