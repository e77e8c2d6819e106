package recommend_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/knowledge-engine/recommender/internal/recommend"
)

func TestResolveModel(t *testing.T) {
	tests := []struct {
		label string
		id    string
		known bool
	}{
		{"grok-4 (flagship)", "grok-4", true},
		{"grok-4-fast-reasoning", "grok-4-fast-reasoning", true},
		{"grok-4-1-fast-reasoning (latest)", "grok-4-1-fast-reasoning", true},
		{"grok-code-fast-1", "grok-code-fast-1", true},
		{"unknown-model-label", "grok-4-1-fast-reasoning", false},
		{"", "grok-4-1-fast-reasoning", false},
		{"grok-4", "grok-4-1-fast-reasoning", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			id, known := recommend.ResolveModel(tt.label)
			assert.Equal(t, tt.id, id)
			assert.Equal(t, tt.known, known)
		})
	}
}

func TestModelLabels(t *testing.T) {
	labels := recommend.ModelLabels()

	assert.Len(t, labels, 4)
	assert.Equal(t, recommend.DefaultModelLabel, labels[0])

	labels[0] = "changed"
	assert.Equal(t, recommend.DefaultModelLabel, recommend.ModelLabels()[0])
}
