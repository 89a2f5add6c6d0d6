package scaffold

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/movekit/cli/internal/config"
	"github.com/movekit/cli/internal/errors"
	"github.com/movekit/cli/internal/manifest"
	"github.com/movekit/cli/internal/output"
	"github.com/movekit/cli/internal/profile"
	"github.com/movekit/cli/internal/prompt"
	"github.com/movekit/cli/internal/template"
	"github.com/movekit/cli/internal/variants"
)

// Options configures one scaffold operation.
type Options struct {
	// TargetDir is the directory to create the package in.
	TargetDir string

	// Name is the explicit package name. Empty means derive it from the
	// target directory's final segment.
	Name string

	// Variants are the optional variants forced via flags.
	Variants []variants.ID

	// SkipProfile disables account profile creation; the placeholder
	// address is substituted instead.
	SkipProfile bool

	// Network is the network the account profile is created against.
	Network string

	// NamedAddresses are extra [addresses] entries for the manifest.
	NamedAddresses map[string]string

	// AssumeYes and AssumeNo suppress prompts: every selection takes its
	// stated default, and the final confirmation is accepted (yes) or
	// declined (no).
	AssumeYes bool
	AssumeNo  bool

	// RefreshTemplates drops cached template copies before resolving.
	RefreshTemplates bool
}

// Result reports a completed scaffold operation.
type Result struct {
	// PackageDir is the absolute target directory.
	PackageDir string

	// PackageName is the final package name.
	PackageName string

	// Address is the profile address substituted into templates, or the
	// placeholder sentinel when profile creation was skipped.
	Address string

	// Variants are the variants that were rendered, in render order.
	Variants []variants.ID
}

// Scaffolder orchestrates one package scaffold: target resolution, naming,
// variant selection, base structure, profile creation, and rendering.
// It owns no state across operations.
type Scaffolder struct {
	// Config supplies the cache dir, account CLI, and template URLs.
	Config *config.Config

	// Prompter asks interactive questions. Nil means non-interactive.
	Prompter prompt.Prompter

	// Profile creates the account profile. Nil falls back to the account
	// CLI named in Config.
	Profile profile.Initializer

	// Fetcher overrides the remote template transport, mainly for tests.
	Fetcher Fetcher
}

// Run executes the scaffold operation. The first error is fatal: remaining
// steps are not attempted and already-written files are left in place.
func (s *Scaffolder) Run(ctx context.Context, opts Options) (*Result, error) {
	// ResolvingTarget
	targetDir, err := ValidateTarget(opts.TargetDir)
	if err != nil {
		return nil, err
	}
	output.Println("The package will be created in: " + output.Noun(targetDir))

	// NamingPackage
	name, err := s.packageName(targetDir, opts)
	if err != nil {
		return nil, err
	}
	output.Println("Package name: " + output.Noun(name))

	// SelectingVariants
	selected, err := s.selectVariants(opts)
	if err != nil {
		return nil, err
	}

	if err := s.confirm(targetDir, name, selected, opts); err != nil {
		return nil, err
	}

	// CreatingBaseStructure ∥ InitializingProfile. Neither needs the
	// other's output, but both must settle before the substitution
	// context is built.
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating directory %s: %w", targetDir, err)
	}

	network, err := s.network(opts)
	if err != nil {
		return nil, err
	}

	address := template.SentinelAddress
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		for _, sub := range []string{"sources", "tests"} {
			if err := os.MkdirAll(filepath.Join(targetDir, sub), 0o755); err != nil {
				return fmt.Errorf("creating directory %s: %w", sub, err)
			}
		}
		return nil
	})

	if !opts.SkipProfile {
		output.Println("Creating a " + output.Noun("`default`") + " profile for the package")
		g.Go(func() error {
			return output.RunWithSpinner(gctx, func() error {
				addr, err := s.initializer(network).Init(gctx, targetDir)
				if err != nil {
					return err
				}
				address = addr
				return nil
			}, output.WithTitle("Creating account profile..."))
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// RenderingVariants
	subCtx := template.NewScaffoldContext(name, address)
	resolver := &Resolver{
		CacheDir: s.Config.CacheDir,
		Fetcher:  s.Fetcher,
		Refresh:  opts.RefreshTemplates,
	}

	for _, id := range selected {
		v, err := variants.Get(id)
		if err != nil {
			return nil, err
		}

		root, err := resolver.Resolve(ctx, s.sourceFor(v))
		if err != nil {
			return nil, err
		}

		output.Debug("rendering variant", "variant", v.ID, "source", root)
		if err := Render(root, targetDir, subCtx); err != nil {
			return nil, err
		}
	}

	if err := s.mergeManifest(targetDir, opts.NamedAddresses); err != nil {
		return nil, err
	}

	output.Println(output.Checkmark("Created package " + output.Noun(name) + " in " + targetDir))

	return &Result{
		PackageDir:  targetDir,
		PackageName: name,
		Address:     address,
		Variants:    selected,
	}, nil
}

// ValidateTarget normalizes dir to an absolute path and enforces the
// target invariant: the directory must not exist yet, or must be an empty
// directory. Violations are reported before any write occurs.
func ValidateTarget(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving target directory: %w", err)
	}

	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return abs, nil
	}
	if err != nil {
		return "", fmt.Errorf("checking target directory %s: %w", abs, err)
	}

	if !info.IsDir() {
		return "", errors.NewInvalidTargetError("the target exists and is not a directory", abs, "")
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return "", fmt.Errorf("reading target directory %s: %w", abs, err)
	}
	if len(entries) > 0 {
		return "", errors.NewInvalidTargetError(
			"the directory is not empty",
			abs,
			"Choose an empty or non-existent directory.",
		)
	}

	return abs, nil
}

// interactive reports whether prompts should be shown.
func (s *Scaffolder) interactive(opts Options) bool {
	return s.Prompter != nil && !opts.AssumeYes && !opts.AssumeNo
}

// packageName determines the package name per the naming rules: explicit
// flag, else derived from the target directory's final segment, offered as
// the prompt default when interactive.
func (s *Scaffolder) packageName(targetDir string, opts Options) (string, error) {
	if opts.Name != "" {
		return opts.Name, nil
	}

	derived := template.UpperCamelCase(filepath.Base(targetDir))
	if !s.interactive(opts) {
		return derived, nil
	}

	answer, err := s.Prompter.AskString("Enter the package name", derived)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(answer) == "" {
		return derived, nil
	}
	return template.UpperCamelCase(answer), nil
}

// selectVariants decides which variants to render. The default variant is
// always first; optional variants come from flags, or from yes/no prompts
// whose stated default is no.
func (s *Scaffolder) selectVariants(opts Options) ([]variants.ID, error) {
	forced := make(map[variants.ID]bool, len(opts.Variants))
	for _, id := range opts.Variants {
		v, err := variants.Get(id)
		if err != nil {
			return nil, err
		}
		if !v.Optional {
			continue
		}
		forced[id] = true
	}

	selected := []variants.ID{variants.Default}
	for _, v := range variants.Optional() {
		include := forced[v.ID]
		if !include && s.interactive(opts) {
			answer, err := s.Prompter.AskYesNo(v.Question, false)
			if err != nil {
				return nil, err
			}
			include = answer
		}
		if include {
			selected = append(selected, v.ID)
		}
	}

	return selected, nil
}

// confirm shows the file-tree preview and asks for the final go-ahead.
// AssumeYes accepts silently, AssumeNo declines silently, and a declined
// prompt is a normal cancellation rather than an internal error.
func (s *Scaffolder) confirm(targetDir, name string, selected []variants.ID, opts Options) error {
	if opts.AssumeYes {
		return nil
	}
	if opts.AssumeNo {
		return errors.Wrap(errors.ErrCancelled, "declined by --assume-no")
	}
	if s.Prompter == nil {
		return nil
	}

	preview := s.previewFiles(selected, name)
	output.Println("\nCreate these files and directories?")
	output.Print(output.RenderFileTree(filepath.Base(targetDir), preview))

	ok, err := s.Prompter.AskYesNo("Proceed", true)
	if err != nil {
		return err
	}
	if !ok {
		output.Println(output.Warning("Cancelled"))
		return errors.Wrap(errors.ErrCancelled, "declined by user")
	}
	return nil
}

// previewFiles lists the files the selected variants will produce, with
// name tokens already substituted. Remote-sourced variants are summarized
// rather than fetched just for the preview.
func (s *Scaffolder) previewFiles(selected []variants.ID, name string) map[string]string {
	subCtx := template.NewScaffoldContext(name, template.SentinelAddress)

	files := map[string]string{
		"sources/": "Module sources",
		"tests/":   "Module tests",
	}

	for _, id := range selected {
		v, err := variants.Get(id)
		if err != nil {
			continue
		}
		if s.urlFor(v) != "" {
			files["("+string(v.ID)+")"] = "fetched from " + s.urlFor(v)
			continue
		}

		_ = fs.WalkDir(variants.FS(), v.Subtree, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() {
				return nil
			}
			rel, relErr := filepath.Rel(v.Subtree, path)
			if relErr != nil {
				return nil
			}
			files[subCtx.ApplyPath(rel)] = ""
			return nil
		})
	}

	return files
}

// urlFor returns the configured remote URL for a variant, if any.
func (s *Scaffolder) urlFor(v variants.Variant) string {
	switch v.ID {
	case variants.Coin:
		return s.Config.Templates.CoinURL
	case variants.CompanionApp:
		return s.Config.Templates.CompanionAppURL
	default:
		return ""
	}
}

// sourceFor builds the template source for a variant.
func (s *Scaffolder) sourceFor(v variants.Variant) Source {
	return Source{
		ID:   string(v.ID),
		URL:  s.urlFor(v),
		FS:   variants.FS(),
		Root: v.Subtree,
	}
}

// networks the account profile can be created against.
var networks = []string{"devnet", "testnet", "mainnet"}

// network decides which network the profile is created on: the explicit
// flag, an interactive choice, or devnet.
func (s *Scaffolder) network(opts Options) (string, error) {
	if opts.SkipProfile || opts.Network != "" {
		return opts.Network, nil
	}
	if !s.interactive(opts) {
		return networks[0], nil
	}

	idx, err := s.Prompter.AskChoice("Select the network for the account profile:", networks, 0)
	if err != nil {
		return "", err
	}
	return networks[idx], nil
}

// initializer returns the profile initializer, defaulting to the
// configured account CLI.
func (s *Scaffolder) initializer(network string) profile.Initializer {
	if s.Profile != nil {
		return s.Profile
	}
	return profile.CLIInitializer{Binary: s.Config.AccountCLI, Network: network}
}

// mergeManifest merges named addresses into the rendered manifest.
func (s *Scaffolder) mergeManifest(targetDir string, addrs map[string]string) error {
	if len(addrs) == 0 {
		return nil
	}

	path := filepath.Join(targetDir, manifest.Filename)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("no %s was rendered to merge named addresses into", manifest.Filename)
	}
	return manifest.MergeNamedAddresses(path, addrs)
}
