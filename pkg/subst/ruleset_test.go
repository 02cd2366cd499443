package subst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/luavend/pkg/errors"
	"github.com/arthur-debert/luavend/pkg/subst"
)

func TestNewRuleSet_RejectsConflicts(t *testing.T) {
	t.Run("same_from_different_to", func(t *testing.T) {
		rules := mustRules(t, [2]string{"a", "x"}, [2]string{"a", "y"})
		set, err := subst.NewRuleSet(rules)
		require.Error(t, err)
		assert.Nil(t, set)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSubstitutionConflict))

		// Both conflicting targets and the literal are reported.
		assert.Contains(t, err.Error(), `"a"`)
		assert.Contains(t, err.Error(), `"x"`)
		assert.Contains(t, err.Error(), `"y"`)
	})

	t.Run("identical_duplicates_are_harmless", func(t *testing.T) {
		rules := mustRules(t, [2]string{"a", "x"}, [2]string{"a", "x"})
		set, err := subst.NewRuleSet(rules)
		require.NoError(t, err)
		assert.Equal(t, 2, set.Len())
	})

	t.Run("conflict_found_across_distant_positions", func(t *testing.T) {
		rules := mustRules(t,
			[2]string{"a", "x"},
			[2]string{"b", "y"},
			[2]string{"c", "z"},
			[2]string{"a", "other"},
		)
		_, err := subst.NewRuleSet(rules)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrSubstitutionConflict))
	})

	t.Run("empty_set_is_valid", func(t *testing.T) {
		set, err := subst.NewRuleSet(nil)
		require.NoError(t, err)
		assert.Equal(t, 0, set.Len())
	})
}

func TestRuleSet_PreservesOrder(t *testing.T) {
	rules := mustRules(t, [2]string{"one", "1"}, [2]string{"two", "2"}, [2]string{"three", "3"})
	set, err := subst.NewRuleSet(rules)
	require.NoError(t, err)

	got := set.Rules()
	require.Len(t, got, 3)
	assert.Equal(t, "one", got[0].From())
	assert.Equal(t, "two", got[1].From())
	assert.Equal(t, "three", got[2].From())
}

func TestRuleSet_RulesReturnsCopy(t *testing.T) {
	set := mustSet(t, [2]string{"a", "b"})
	first := set.Rules()
	second := set.Rules()
	require.Len(t, first, 1)

	// Mutating the returned slice must not affect the set.
	first[0] = subst.Rule{}
	assert.Equal(t, "a", second[0].From())
	assert.Equal(t, "a", set.Rules()[0].From())
}
