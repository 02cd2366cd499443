package directive

import (
	"github.com/arthur-debert/luavend/pkg/errors"
)

// The shortest possible entry needs at least 3 delimiter characters, so
// anything shorter holds zero entries by definition.
const minBlobLen = 3

// SelectionEntry is one parsed entry of the plugin-selection blob:
// pname '|' version '|' path.
type SelectionEntry struct {
	Pname   string
	Version string
	Path    string
}

// SubKind discriminates extra-substitution entries.
type SubKind string

const (
	KindPlugin SubKind = "plugin"
	KindString SubKind = "string"
)

// SubEntry is one parsed entry of the extra-substitution blob:
// kind '|' from '|' to '|' extra. For string entries an extra of "-"
// means "no key".
type SubEntry struct {
	Kind  SubKind
	From  string
	To    string
	Extra string
}

// NoKey is the extra-field sentinel for keyless string entries.
const NoKey = "-"

// ParseSelection parses a plugin-selection blob. A blob shorter than
// three bytes yields zero entries regardless of content.
func ParseSelection(blob string) ([]SelectionEntry, error) {
	if len(blob) < minBlobLen {
		return nil, nil
	}

	var entries []SelectionEntry
	cur := NewCursor([]byte(blob))
	for !cur.Done() {
		pname, ok := cur.NextUntil('|')
		if !ok {
			return nil, malformed("pname", blob)
		}
		version, ok := cur.NextUntil('|')
		if !ok {
			return nil, malformed("version", blob)
		}
		path, ok := cur.NextUntil(';')
		if !ok {
			// Last entry: the path runs to the end of the blob.
			if path, ok = cur.Rest(); !ok {
				return nil, malformed("path", blob)
			}
		}
		entries = append(entries, SelectionEntry{
			Pname:   string(pname),
			Version: string(version),
			Path:    string(path),
		})
	}
	return entries, nil
}

// ParseExtraSubs parses an extra-substitution blob. A blob shorter than
// three bytes yields zero entries regardless of content.
func ParseExtraSubs(blob string) ([]SubEntry, error) {
	if len(blob) < minBlobLen {
		return nil, nil
	}

	var entries []SubEntry
	cur := NewCursor([]byte(blob))
	for !cur.Done() {
		kind, ok := cur.NextUntil('|')
		if !ok {
			return nil, malformed("kind", blob)
		}
		from, ok := cur.NextUntil('|')
		if !ok {
			return nil, malformed("from", blob)
		}
		to, ok := cur.NextUntil('|')
		if !ok {
			return nil, malformed("to", blob)
		}
		extra, ok := cur.NextUntil(';')
		if !ok {
			if extra, ok = cur.Rest(); !ok {
				return nil, malformed("extra", blob)
			}
		}
		entries = append(entries, SubEntry{
			Kind:  SubKind(kind),
			From:  string(from),
			To:    string(to),
			Extra: string(extra),
		})
	}
	return entries, nil
}

func malformed(field, blob string) error {
	return errors.Newf(errors.ErrMalformedDirective,
		"directive entry is missing the %q field", field).
		WithDetail("blob", blob)
}
