package voyage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgLog "task-suggestion/pkg/log"
	pkgVoyage "task-suggestion/pkg/voyage"
)

type mockVoyage struct {
	inputType pkgVoyage.InputType
	vectors   [][]float32
	err       error
}

func (m *mockVoyage) Embed(ctx context.Context, inputType pkgVoyage.InputType, texts []string) ([][]float32, error) {
	m.inputType = inputType
	return m.vectors, m.err
}

func (m *mockVoyage) Model() string { return "voyage-3" }

func TestEmbedQuery(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mock := &mockVoyage{vectors: [][]float32{{0.1, 0.2}}}
		vec, err := New(mock, pkgLog.NewNop()).EmbedQuery(context.Background(), "online shop")
		require.NoError(t, err)
		assert.Equal(t, []float32{0.1, 0.2}, vec)
		assert.Equal(t, pkgVoyage.InputQuery, mock.inputType)
	})

	t.Run("empty result", func(t *testing.T) {
		_, err := New(&mockVoyage{}, pkgLog.NewNop()).EmbedQuery(context.Background(), "x")
		assert.Error(t, err)
	})

	t.Run("client error", func(t *testing.T) {
		_, err := New(&mockVoyage{err: errors.New("429")}, pkgLog.NewNop()).EmbedQuery(context.Background(), "x")
		assert.Error(t, err)
	})
}
