package subst

import (
	"github.com/arthur-debert/luavend/pkg/errors"
)

// Kind classifies a rule's provenance.
type Kind int

const (
	// KindRaw is a rule with no auxiliary metadata.
	KindRaw Kind = iota

	// KindURL is a rule derived from a plugin's upstream reference.
	KindURL

	// KindString is a rule derived from a directive-blob string entry.
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindRaw:
		return "raw"
	case KindURL:
		return "url"
	case KindString:
		return "string"
	default:
		return "unknown"
	}
}

// Rule is one immutable literal mapping: every occurrence of From in a
// scanned buffer is replaced by To.
type Rule struct {
	from []byte
	to   []byte
	kind Kind

	// provenance is the plugin name a URL rule was derived from.
	provenance string

	// key is the optional key of a string rule.
	key    string
	hasKey bool
}

// NewRawRule builds a rule with no auxiliary metadata.
func NewRawRule(from, to string) (Rule, error) {
	if from == "" {
		return Rule{}, errors.New(errors.ErrRuleInvalid, "rule literal cannot be empty")
	}
	return Rule{from: []byte(from), to: []byte(to), kind: KindRaw}, nil
}

// NewURLRule builds a rule derived from a plugin reference.
func NewURLRule(from, to, provenance string) (Rule, error) {
	if from == "" {
		return Rule{}, errors.Newf(errors.ErrRuleInvalid,
			"url rule for plugin %q has an empty literal", provenance)
	}
	return Rule{
		from:       []byte(from),
		to:         []byte(to),
		kind:       KindURL,
		provenance: provenance,
	}, nil
}

// NewStringRule builds a rule derived from a directive-blob string
// entry. hasKey is false for keyless entries.
func NewStringRule(from, to, key string, hasKey bool) (Rule, error) {
	if from == "" {
		return Rule{}, errors.New(errors.ErrRuleInvalid, "string rule has an empty literal")
	}
	return Rule{
		from:   []byte(from),
		to:     []byte(to),
		kind:   KindString,
		key:    key,
		hasKey: hasKey,
	}, nil
}

// From returns the literal the rule matches.
func (r Rule) From() string { return string(r.from) }

// To returns the replacement text.
func (r Rule) To() string { return string(r.to) }

// Kind returns the rule's classification.
func (r Rule) Kind() Kind { return r.kind }

// Provenance returns the plugin name for URL rules, "" otherwise.
func (r Rule) Provenance() string { return r.provenance }

// Key returns the key of a string rule and whether one is present.
func (r Rule) Key() (string, bool) { return r.key, r.hasKey }
