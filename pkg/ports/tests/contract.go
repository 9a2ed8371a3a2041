package tests

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/pitchflow/pkg/domain"
	"github.com/aretw0/pitchflow/pkg/ports"
)

// TreeLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.TreeLoader.
func TreeLoaderContractTest(t *testing.T, loader ports.TreeLoader, want *domain.DecisionTree) {
	t.Helper()

	t.Run("Load_Success", func(t *testing.T) {
		got, err := loader.Load(context.Background())
		require.NoError(t, err)
		require.NotNil(t, got)

		assert.Equal(t, want.Theme, got.Theme)
		assert.Equal(t, want.Goal, got.Goal)
		assert.Equal(t, want.Start, got.Start)

		require.Len(t, got.Nodes, len(want.Nodes))
		for i, node := range want.Nodes {
			assert.Equal(t, node, got.Nodes[i], "node %s", node.ID)
		}
		require.Len(t, got.Outcomes, len(want.Outcomes))
		for i, outcome := range want.Outcomes {
			assert.Equal(t, outcome, got.Outcomes[i], "outcome %s", outcome.ID)
		}
	})

	t.Run("Load_Repeatable", func(t *testing.T) {
		first, err := loader.Load(context.Background())
		require.NoError(t, err)
		second, err := loader.Load(context.Background())
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("Load_Cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := loader.Load(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}
