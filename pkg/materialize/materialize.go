// Package materialize walks the input tree and regenerates the output
// tree: Lua sources go through the substitution scan, everything else
// is copied verbatim, and the entry-point file gets the prologue
// prepended. Regeneration is total; pre-existing output files are
// overwritten.
package materialize

import (
	"io/fs"
	"path/filepath"
	"slices"

	"github.com/rs/zerolog"

	"github.com/arthur-debert/luavend/pkg/errors"
	"github.com/arthur-debert/luavend/pkg/logging"
	"github.com/arthur-debert/luavend/pkg/subst"
	"github.com/arthur-debert/luavend/pkg/types"
)

// Options configures one materialization run.
type Options struct {
	// InputRoot and OutputRoot are absolute tree roots.
	InputRoot  string
	OutputRoot string

	// Entrypoint is the slash-separated relative path of the file that
	// receives the prologue.
	Entrypoint string

	// Extensions marks substitution targets, e.g. [".lua"].
	Extensions []string

	// Prologue is prepended to the entry-point file's scanned content.
	Prologue []byte
}

// Materializer regenerates one output tree. Rule construction fully
// precedes the walk, so the rule set is shared read-only and no file
// state is retained across entries.
type Materializer struct {
	fs     types.FS
	rules  *subst.RuleSet
	opts   Options
	logger zerolog.Logger

	report *Report
	hits   []int
}

// New creates a materializer over fs with a finalized rule set.
func New(fs types.FS, rules *subst.RuleSet, opts Options) *Materializer {
	return &Materializer{
		fs:     fs,
		rules:  rules,
		opts:   opts,
		logger: logging.GetLogger("materialize"),
	}
}

// Run walks the input tree depth-first and regenerates the output
// tree, returning a report of what was done. Filesystem errors mid-walk
// abort the run and may leave a partially regenerated output tree.
func (m *Materializer) Run() (*Report, error) {
	done := logging.LogOperationStart(m.logger, "materialize")
	defer done()

	m.report = &Report{}
	m.hits = make([]int, m.rules.Len())

	if err := m.fs.MkdirAll(m.opts.OutputRoot, 0755); err != nil {
		return nil, errors.Wrapf(err, errors.ErrDirCreate,
			"cannot create output root %s", m.opts.OutputRoot)
	}

	if err := m.walk(""); err != nil {
		return nil, err
	}

	m.report.Rules = ruleStats(m.rules, m.hits)
	m.logger.Info().
		Int("scanned", m.report.FilesScanned).
		Int("copied", m.report.FilesCopied).
		Int("skipped", m.report.FilesSkipped).
		Msg("Output tree regenerated")
	return m.report, nil
}

func (m *Materializer) walk(rel string) error {
	infos, err := m.fs.ReadDir(filepath.Join(m.opts.InputRoot, rel))
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess,
			"cannot read input directory %s", filepath.Join(m.opts.InputRoot, rel))
	}

	for _, info := range infos {
		childRel := filepath.Join(rel, info.Name())
		switch {
		case info.IsDir():
			outDir := filepath.Join(m.opts.OutputRoot, childRel)
			// Pre-existing output directories are not an error.
			if err := m.fs.MkdirAll(outDir, 0755); err != nil {
				return errors.Wrapf(err, errors.ErrDirCreate,
					"cannot create output directory %s", outDir)
			}
			if err := m.walk(childRel); err != nil {
				return err
			}
		case info.Mode().IsRegular():
			if err := m.processFile(childRel, info.Mode().Perm()); err != nil {
				return err
			}
		default:
			m.logger.Warn().
				Str("entry", childRel).
				Str("mode", info.Mode().String()).
				Msg("Skipping entry that is neither file nor directory")
			m.report.FilesSkipped++
		}
	}
	return nil
}

func (m *Materializer) processFile(rel string, perm fs.FileMode) error {
	src := filepath.Join(m.opts.InputRoot, rel)
	dst := filepath.Join(m.opts.OutputRoot, rel)

	data, err := m.fs.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", src)
	}

	if !m.isTarget(rel) {
		if err := m.fs.WriteFile(dst, data, perm); err != nil {
			return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dst)
		}
		m.report.FilesCopied++
		m.logger.Debug().Str("file", rel).Msg("Copied verbatim")
		return nil
	}

	out, counts := m.rules.ApplyStats(data)
	for i, n := range counts {
		m.hits[i] += n
	}
	if filepath.ToSlash(rel) == m.opts.Entrypoint {
		out = append(append([]byte(nil), m.opts.Prologue...), out...)
		m.logger.Debug().Str("file", rel).Msg("Injected prologue into entry point")
	}
	if err := m.fs.WriteFile(dst, out, perm); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", dst)
	}
	m.report.FilesScanned++
	m.logger.Debug().Str("file", rel).Msg("Scanned and rewrote")
	return nil
}

func (m *Materializer) isTarget(rel string) bool {
	return slices.Contains(m.opts.Extensions, filepath.Ext(rel))
}
