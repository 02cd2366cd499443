package subst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/luavend/pkg/subst"
)

func mustRules(t *testing.T, pairs ...[2]string) []subst.Rule {
	t.Helper()
	rules := make([]subst.Rule, 0, len(pairs))
	for _, p := range pairs {
		r, err := subst.NewRawRule(p[0], p[1])
		require.NoError(t, err)
		rules = append(rules, r)
	}
	return rules
}

func mustSet(t *testing.T, pairs ...[2]string) *subst.RuleSet {
	t.Helper()
	set, err := subst.NewRuleSet(mustRules(t, pairs...))
	require.NoError(t, err)
	return set
}

func TestRuleSet_Apply(t *testing.T) {
	tests := []struct {
		name  string
		pairs [][2]string
		input string
		want  string
	}{
		{
			name:  "single_substitution",
			pairs: [][2]string{{"Hello", "hi"}},
			input: "Hello world",
			want:  "hi world",
		},
		{
			name:  "no_op_rule_set",
			pairs: nil,
			input: "Hello world",
			want:  "Hello world",
		},
		{
			name:  "copy_identity_when_no_literal_occurs",
			pairs: [][2]string{{"absent", "x"}, {"missing", "y"}},
			input: "Hello world",
			want:  "Hello world",
		},
		{
			name:  "sequential_non_overlap",
			pairs: [][2]string{{"Hello", "world"}, {"world", "Hello"}},
			input: "Hello world",
			want:  "world Hello",
		},
		{
			name:  "replacement_not_rescanned",
			pairs: [][2]string{{"a", "aa"}},
			input: "aaa",
			want:  "aaaaaa",
		},
		{
			name:  "earliest_match_wins",
			pairs: [][2]string{{"world", "W"}, {"Hello", "H"}},
			input: "Hello world",
			want:  "H W",
		},
		{
			name:  "repeated_occurrences",
			pairs: [][2]string{{"plug/foo", "/store/foo"}},
			input: `use("plug/foo"); use("plug/foo")`,
			want:  `use("/store/foo"); use("/store/foo")`,
		},
		{
			name:  "match_at_end_of_buffer",
			pairs: [][2]string{{"end", "END"}},
			input: "the end",
			want:  "the END",
		},
		{
			name:  "match_at_start_of_buffer",
			pairs: [][2]string{{"the", "a"}},
			input: "the end",
			want:  "a end",
		},
		{
			name:  "empty_buffer",
			pairs: [][2]string{{"a", "b"}},
			input: "",
			want:  "",
		},
		{
			name:  "overlapping_candidates_consume_left_to_right",
			pairs: [][2]string{{"aba", "X"}},
			input: "ababa",
			want:  "Xba",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := mustSet(t, tt.pairs...)
			got := set.Apply([]byte(tt.input))
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestRuleSet_Apply_TieBreakByRuleOrder(t *testing.T) {
	// Both literals start at position 0; the rule earlier in the set
	// must win, and the choice must be stable across repeated runs.
	set := mustSet(t, [2]string{"ab", "FIRST"}, [2]string{"abc", "SECOND"})
	for i := 0; i < 10; i++ {
		got := set.Apply([]byte("abcdef"))
		assert.Equal(t, "FIRSTcdef", string(got))
	}

	// Reversing the rule order flips the winner.
	reversed := mustSet(t, [2]string{"abc", "SECOND"}, [2]string{"ab", "FIRST"})
	for i := 0; i < 10; i++ {
		got := reversed.Apply([]byte("abcdef"))
		assert.Equal(t, "SECONDdef", string(got))
	}
}

func TestRuleSet_Apply_DoesNotMutateInput(t *testing.T) {
	set := mustSet(t, [2]string{"abc", "z"})
	input := []byte("abc abc")
	set.Apply(input)
	assert.Equal(t, "abc abc", string(input))
}

func TestRuleSet_ApplyStats(t *testing.T) {
	set := mustSet(t, [2]string{"foo", "bar"}, [2]string{"baz", "qux"})
	out, counts := set.ApplyStats([]byte("foo baz foo"))
	assert.Equal(t, "bar qux bar", string(out))
	require.Len(t, counts, 2)
	assert.Equal(t, 2, counts[0])
	assert.Equal(t, 1, counts[1])
}
