package examples_test

import (
	"testing"

	"github.com/aretw0/ribbon"
	"github.com/aretw0/ribbon/pkg/examples"
	"github.com/aretw0/ribbon/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_AllDefinitionsCompile(t *testing.T) {
	for _, summary := range examples.List() {
		ex, ok := examples.Get(summary.ID)
		require.True(t, ok, summary.ID)

		_, err := schema.Compile(ex.Definition)
		assert.NoError(t, err, "example %s must carry a valid program", ex.ID)
		assert.NotEmpty(t, ex.DefaultInput, ex.ID)
	}
}

func TestCatalog_HintsMatchRules(t *testing.T) {
	for _, summary := range examples.List() {
		ex, _ := examples.Get(summary.ID)
		for key := range ex.Hints {
			_, ok := ex.Definition.Transitions[key]
			assert.True(t, ok, "example %s hint %q has no matching rule", ex.ID, key)
		}
	}
}

func TestGet_Unknown(t *testing.T) {
	_, ok := examples.Get("does-not-exist")
	assert.False(t, ok)
}

func TestBinaryIncrement_RunsOnDefaultInput(t *testing.T) {
	ex, ok := examples.Get("binary_increment")
	require.True(t, ok)

	sess := ribbon.NewSession()
	_, err := sess.Load(ex.Definition, ex.DefaultInput)
	require.NoError(t, err)

	res, err := sess.Run(0)
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, "1100", sess.State().Tape.String())
}

func TestBitFlip_RunsOnDefaultInput(t *testing.T) {
	ex, ok := examples.Get("bit_flip")
	require.True(t, ok)

	sess := ribbon.NewSession()
	_, err := sess.Load(ex.Definition, ex.DefaultInput)
	require.NoError(t, err)

	res, err := sess.Run(0)
	require.NoError(t, err)
	assert.True(t, res.Accepted)
	assert.Equal(t, "01001", sess.State().Tape.String())
}

func TestLessons_Ordered(t *testing.T) {
	deck := examples.Lessons()
	require.NotEmpty(t, deck)
	assert.Equal(t, "welcome", deck[0].ID)
	for _, l := range deck {
		assert.NotEmpty(t, l.Title)
		assert.NotEmpty(t, l.Body)
	}
}
