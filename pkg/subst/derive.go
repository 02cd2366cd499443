package subst

import (
	"github.com/arthur-debert/luavend/pkg/directive"
	"github.com/arthur-debert/luavend/pkg/errors"
	"github.com/arthur-debert/luavend/pkg/types"
)

// FromRecords derives URL rules from plugin records.
//
// An unresolved record yields no rules. A generic-url record yields one
// rule mapping the full reference to the local path. A hosted-url
// record additionally yields the short-form alias rule: source files
// may reference a plugin by either its full address or its abbreviated
// short form, and both must resolve to the same local path.
func FromRecords(records []types.PluginRecord) ([]Rule, error) {
	var rules []Rule
	for _, rec := range records {
		switch rec.Source.Kind {
		case types.SourceUnresolved:
			continue
		case types.SourceGenericURL:
			r, err := NewURLRule(rec.Source.URL, rec.Path, rec.Pname)
			if err != nil {
				return nil, err
			}
			rules = append(rules, r)
		case types.SourceHostedURL:
			full, err := NewURLRule(rec.Source.URL, rec.Path, rec.Pname)
			if err != nil {
				return nil, err
			}
			short, err := NewURLRule(rec.Source.ShortForm(), rec.Path, rec.Pname)
			if err != nil {
				return nil, err
			}
			rules = append(rules, full, short)
		default:
			return nil, errors.Newf(errors.ErrInternal,
				"plugin %q has unknown source kind %d", rec.Pname, rec.Source.Kind)
		}
	}
	return rules, nil
}

// FromDirectives derives rules from extra-substitution entries.
//
// Any kind other than plugin or string is a producer-contract
// violation: the blobs are machine-generated upstream, so this is an
// internal assertion rather than a user-facing parse error.
func FromDirectives(entries []directive.SubEntry) ([]Rule, error) {
	var rules []Rule
	for _, e := range entries {
		switch e.Kind {
		case directive.KindPlugin:
			r, err := NewURLRule(e.From, e.To, e.Extra)
			if err != nil {
				return nil, err
			}
			rules = append(rules, r)
		case directive.KindString:
			key, hasKey := e.Extra, e.Extra != directive.NoKey
			if !hasKey {
				key = ""
			}
			r, err := NewStringRule(e.From, e.To, key, hasKey)
			if err != nil {
				return nil, err
			}
			rules = append(rules, r)
		default:
			return nil, errors.Newf(errors.ErrInternal,
				"unrecognized directive entry kind %q", e.Kind)
		}
	}
	return rules, nil
}
