package materialize

import (
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/luavend/pkg/errors"
	"github.com/arthur-debert/luavend/pkg/subst"
	"github.com/arthur-debert/luavend/pkg/types"
)

// RuleStat records how often one rule fired across the whole walk.
type RuleStat struct {
	From       string `yaml:"from"`
	To         string `yaml:"to"`
	Kind       string `yaml:"kind"`
	Provenance string `yaml:"provenance,omitempty"`
	Count      int    `yaml:"count"`
}

// Report summarizes one regeneration run.
type Report struct {
	FilesScanned int        `yaml:"files_scanned"`
	FilesCopied  int        `yaml:"files_copied"`
	FilesSkipped int        `yaml:"files_skipped"`
	Rules        []RuleStat `yaml:"rules"`
}

// Substitutions returns the total number of replacements made.
func (r *Report) Substitutions() int {
	total := 0
	for _, rs := range r.Rules {
		total += rs.Count
	}
	return total
}

// WriteYAML writes the report to path through fs.
func (r *Report) WriteYAML(fsys types.FS, path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, "cannot marshal run report")
	}
	if err := fsys.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write run report %s", path)
	}
	return nil
}

func ruleStats(set *subst.RuleSet, hits []int) []RuleStat {
	rules := set.Rules()
	stats := make([]RuleStat, len(rules))
	for i, r := range rules {
		stats[i] = RuleStat{
			From:       r.From(),
			To:         r.To(),
			Kind:       r.Kind().String(),
			Provenance: r.Provenance(),
			Count:      hits[i],
		}
	}
	return stats
}
