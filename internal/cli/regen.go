package cli

import (
	"fmt"
	"io"

	"github.com/arthur-debert/luavend/pkg/config"
	"github.com/arthur-debert/luavend/pkg/directive"
	"github.com/arthur-debert/luavend/pkg/filesystem"
	"github.com/arthur-debert/luavend/pkg/logging"
	"github.com/arthur-debert/luavend/pkg/materialize"
	"github.com/arthur-debert/luavend/pkg/paths"
	"github.com/arthur-debert/luavend/pkg/registry"
	"github.com/arthur-debert/luavend/pkg/style"
	"github.com/arthur-debert/luavend/pkg/subst"
)

// regenArgs carries the six positional invocation parameters plus the
// flag-driven extras.
type regenArgs struct {
	RegistryRoot string
	InputRoot    string
	OutputRoot   string
	Selection    string
	ExtraSubs    string
	Prologue     string

	ConfigPath string
	ReportPath string
}

// runRegen is the whole pipeline: derive rules from both sources,
// validate them, then materialize the output tree. Rule validation
// happens strictly before any file is read or written, so a conflict
// leaves zero output side effects.
func runRegen(a regenArgs, out io.Writer) error {
	logger := logging.GetLogger("cli.regen")

	cfg, err := config.Load(a.ConfigPath)
	if err != nil {
		return err
	}

	for _, p := range []struct{ label, path string }{
		{"registry root", a.RegistryRoot},
		{"input tree", a.InputRoot},
		{"output tree", a.OutputRoot},
	} {
		if err := paths.ValidateAbsolute(p.label, p.path); err != nil {
			return err
		}
	}

	ix, err := registry.Load(a.RegistryRoot, cfg.HostPrefixes)
	if err != nil {
		return err
	}

	selection, err := directive.ParseSelection(a.Selection)
	if err != nil {
		return err
	}
	rules, err := subst.FromRecords(ix.BuildRecords(selection))
	if err != nil {
		return err
	}

	extra, err := directive.ParseExtraSubs(a.ExtraSubs)
	if err != nil {
		return err
	}
	extraRules, err := subst.FromDirectives(extra)
	if err != nil {
		return err
	}

	set, err := subst.NewRuleSet(append(rules, extraRules...))
	if err != nil {
		return err
	}
	logger.Info().
		Int("plugins", len(selection)).
		Int("rules", set.Len()).
		Msg("Rule set finalized")

	fs := filesystem.NewOS()
	m := materialize.New(fs, set, materialize.Options{
		InputRoot:  a.InputRoot,
		OutputRoot: a.OutputRoot,
		Entrypoint: cfg.Entrypoint,
		Extensions: cfg.Extensions,
		Prologue:   []byte(a.Prologue),
	})
	report, err := m.Run()
	if err != nil {
		return err
	}

	if a.ReportPath != "" {
		if err := report.WriteYAML(fs, a.ReportPath); err != nil {
			return err
		}
		logger.Info().Str("path", a.ReportPath).Msg("Run report written")
	}

	fmt.Fprintln(out, style.RenderSummary(report))
	return nil
}
