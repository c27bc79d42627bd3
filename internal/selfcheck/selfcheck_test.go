package selfcheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_AllPass(t *testing.T) {
	results := Run(nil)
	require.Len(t, results, len(checks))
	for _, r := range results {
		assert.True(t, r.Passed, "%s: %s", r.Name, r.Detail)
	}
	assert.True(t, Passed(results))
}

func TestPassed(t *testing.T) {
	assert.True(t, Passed(nil))
	assert.False(t, Passed([]Result{{Name: "a", Passed: true}, {Name: "b"}}))
}
