package types

// SourceKind classifies how a plugin's upstream source reference was
// resolved by the registry index.
type SourceKind int

const (
	// SourceUnresolved means the registry holds no usable upstream
	// reference for the plugin. No substitution rules are derived.
	SourceUnresolved SourceKind = iota

	// SourceGenericURL is an arbitrary upstream URL.
	SourceGenericURL

	// SourceHostedURL is a URL on a recognized hosting provider, which
	// additionally enables the stripped "short form" alias.
	SourceHostedURL
)

func (k SourceKind) String() string {
	switch k {
	case SourceUnresolved:
		return "unresolved"
	case SourceGenericURL:
		return "generic-url"
	case SourceHostedURL:
		return "hosted-url"
	default:
		return "unknown"
	}
}

// SourceRef is a classified upstream source reference.
type SourceRef struct {
	Kind SourceKind

	// URL is the full upstream reference. Empty for SourceUnresolved.
	URL string

	// Prefix is the hosting provider's scheme+host prefix that was
	// recognized. Set only for SourceHostedURL; stripping it from URL
	// yields the short form.
	Prefix string
}

// ShortForm returns the abbreviated reference for hosted URLs, or ""
// when no short form exists.
func (r SourceRef) ShortForm() string {
	if r.Kind != SourceHostedURL {
		return ""
	}
	return r.URL[len(r.Prefix):]
}

// PluginRecord describes one selected plugin: its registry identity,
// the local path its sources were staged at, and the classified
// upstream reference. Records are read once, turned into substitution
// rules, and discarded.
type PluginRecord struct {
	Pname   string
	Version string
	Path    string
	Source  SourceRef
}
