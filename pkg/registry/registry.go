// Package registry reads the package-registry index: the TOML listing
// files a declarative build system generates, mapping plugin names to
// their versions and upstream source locations.
package registry

import (
	"os"
	"path/filepath"
	"strings"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog"

	"github.com/arthur-debert/luavend/pkg/directive"
	"github.com/arthur-debert/luavend/pkg/errors"
	"github.com/arthur-debert/luavend/pkg/logging"
	"github.com/arthur-debert/luavend/pkg/types"
)

// listing mirrors one generated TOML listing file.
type listing struct {
	Plugins []pluginStanza `toml:"plugin"`
}

type pluginStanza struct {
	Pname   string `toml:"pname"`
	Version string `toml:"version"`
	Src     string `toml:"src"`
}

// Index is the loaded registry: plugin name to upstream source URL.
type Index struct {
	sources      map[string]string
	hostPrefixes []string
	logger       zerolog.Logger
}

// Load reads every *.toml listing under root. An unreadable root or
// listing file is fatal; the surrounding run cannot proceed without the
// index.
func Load(root string, hostPrefixes []string) (*Index, error) {
	logger := logging.GetLogger("registry")

	dirents, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRegistryAccess,
			"cannot open registry root %s", root)
	}

	ix := &Index{
		sources:      make(map[string]string),
		hostPrefixes: hostPrefixes,
		logger:       logger,
	}

	for _, de := range dirents {
		if de.IsDir() || filepath.Ext(de.Name()) != ".toml" {
			continue
		}
		path := filepath.Join(root, de.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrRegistryAccess,
				"cannot read registry listing %s", path)
		}
		var l listing
		if err := gotoml.Unmarshal(data, &l); err != nil {
			return nil, errors.Wrapf(err, errors.ErrRegistryParse,
				"malformed registry listing %s", path)
		}
		for _, p := range l.Plugins {
			ix.sources[p.Pname] = p.Src
		}
		logger.Debug().
			Str("listing", de.Name()).
			Int("plugins", len(l.Plugins)).
			Msg("Loaded registry listing")
	}

	logger.Info().Int("plugins", len(ix.sources)).Msg("Registry index loaded")
	return ix, nil
}

// Resolve classifies the upstream source reference for a plugin name.
// Names absent from the index, or present without a source, resolve to
// SourceUnresolved.
func (ix *Index) Resolve(pname string) types.SourceRef {
	src, ok := ix.sources[pname]
	if !ok || src == "" {
		return types.SourceRef{Kind: types.SourceUnresolved}
	}
	for _, prefix := range ix.hostPrefixes {
		if strings.HasPrefix(src, prefix) && len(src) > len(prefix) {
			return types.SourceRef{
				Kind:   types.SourceHostedURL,
				URL:    src,
				Prefix: prefix,
			}
		}
	}
	return types.SourceRef{Kind: types.SourceGenericURL, URL: src}
}

// BuildRecords joins the plugin-selection entries with the index,
// producing the records that rule derivation consumes.
func (ix *Index) BuildRecords(entries []directive.SelectionEntry) []types.PluginRecord {
	records := make([]types.PluginRecord, 0, len(entries))
	for _, e := range entries {
		src := ix.Resolve(e.Pname)
		if src.Kind == types.SourceUnresolved {
			ix.logger.Debug().
				Str("pname", e.Pname).
				Msg("No upstream source in registry, plugin yields no rules")
		}
		records = append(records, types.PluginRecord{
			Pname:   e.Pname,
			Version: e.Version,
			Path:    e.Path,
			Source:  src,
		})
	}
	return records
}
