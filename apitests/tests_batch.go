package apitests

import (
	"github.com/stretchr/testify/assert"

	"github.com/restharness/fixture-api-tests/ops"
	"github.com/restharness/fixture-api-tests/services"
)

func DoBatchTests(t *T) {
	t.Run("bulk comment creation respects batch grouping", func(t *T) {
		env := t.Env()
		gen := services.NewGenerator()

		const total = 12
		payloads := make([]services.Comment, total)
		for i := range payloads {
			payloads[i] = gen.NextComment(1)
		}

		results, stats := ops.CreateCommentsInBatches(env, payloads)

		wantGroups := (total + env.Config.BatchSize - 1) / env.Config.BatchSize
		assert.Equal(t, wantGroups, stats.Groups)
		assert.Equal(t, total, stats.Requested)
		assert.Equal(t, stats.Succeeded, len(results))
		assert.Equal(t, total, stats.Succeeded+stats.Failed)
		for _, r := range results {
			assert.Equal(t, 201, r.Status)
			assert.Greater(t, r.Data.ID, 0)
		}
		t.Debug("batch run: %d requested, %d succeeded, %d groups", stats.Requested, stats.Succeeded, stats.Groups)
	})

	t.Run("empty payload list is a no-op", func(t *T) {
		results, stats := ops.CreateCommentsInBatches(t.Env(), nil)
		assert.Empty(t, results)
		assert.Zero(t, stats.Groups)
	})
}
