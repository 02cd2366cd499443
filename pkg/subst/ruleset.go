package subst

import (
	"github.com/rs/zerolog"

	"github.com/arthur-debert/luavend/pkg/errors"
	"github.com/arthur-debert/luavend/pkg/logging"
)

// RuleSet is a finalized, conflict-free ordered list of rules. It is
// immutable after construction and shared read-only across the whole
// tree walk. Order matters: the scan breaks position ties in favor of
// the rule appearing earlier in the set.
type RuleSet struct {
	rules  []Rule
	logger zerolog.Logger
}

// NewRuleSet validates the merged rule list and freezes it.
//
// Two rules mapping the same literal to different replacements make the
// scan output depend on rule ordering, so the whole set is rejected
// before any file is read or written. Identical duplicates are
// harmless and kept as-is.
func NewRuleSet(rules []Rule) (*RuleSet, error) {
	for i := 0; i < len(rules); i++ {
		for j := i + 1; j < len(rules); j++ {
			a, b := rules[i], rules[j]
			if a.From() == b.From() && a.To() != b.To() {
				return nil, errors.Newf(errors.ErrSubstitutionConflict,
					"literal %q maps to both %q and %q", a.From(), a.To(), b.To()).
					WithDetail("from", a.From()).
					WithDetail("to_first", a.To()).
					WithDetail("to_second", b.To())
			}
		}
	}

	frozen := make([]Rule, len(rules))
	copy(frozen, rules)
	set := &RuleSet{
		rules:  frozen,
		logger: logging.GetLogger("subst.ruleset"),
	}
	set.logger.Debug().Int("rules", len(frozen)).Msg("Rule set finalized")
	return set, nil
}

// Len returns the number of rules in the set.
func (s *RuleSet) Len() int { return len(s.rules) }

// Rules returns a copy of the rule list in set order.
func (s *RuleSet) Rules() []Rule {
	out := make([]Rule, len(s.rules))
	copy(out, s.rules)
	return out
}
