// Package app implements the application layer for depfix.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"go.trai.ch/depfix/internal/core/domain"
	"go.trai.ch/depfix/internal/core/ports"
	"go.trai.ch/depfix/internal/engine/runner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	cleaner      ports.Cleaner
	patcher      ports.ManifestPatcher
	npmrc        ports.NpmrcWriter
	runner       *runner.Runner
	logger       ports.Logger
	tracer       ports.Tracer
	out          io.Writer
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	cleaner ports.Cleaner,
	patcher ports.ManifestPatcher,
	npmrc ports.NpmrcWriter,
	r *runner.Runner,
	log ports.Logger,
	tracer ports.Tracer,
) *App {
	return &App{
		configLoader: loader,
		cleaner:      cleaner,
		patcher:      patcher,
		npmrc:        npmrc,
		runner:       r,
		logger:       log,
		tracer:       tracer,
		out:          os.Stdout,
	}
}

// WithOutput sets the writer used for the plan table and the completion banner.
func (a *App) WithOutput(w io.Writer) *App {
	a.out = w
	return a
}

// jsonToggler is implemented by loggers that can switch to structured output.
type jsonToggler interface {
	SetJSON(enable bool)
}

// SetJSONLogs switches the logger to JSON output when supported.
func (a *App) SetJSONLogs(enable bool) {
	if l, ok := a.logger.(jsonToggler); ok {
		l.SetJSON(enable)
	}
}

// RepairOptions configuration for the Repair method.
type RepairOptions struct {
	// Root is the project root. Empty means the current directory.
	Root string
	// CleanupPolicy overrides the configured policy when not empty.
	CleanupPolicy string
	// Parallel overrides the configured parallel mode when not nil.
	Parallel *bool
}

// CleanOptions configuration for the Clean method.
type CleanOptions struct {
	Root          string
	CleanupPolicy string
}

// Repair runs the full sequence: clean, pin the manifest, write .npmrc files and install.
func (a *App) Repair(ctx context.Context, opts RepairOptions) error {
	root := rootOrDefault(opts.Root)
	if err := checkRoot(root); err != nil {
		return err
	}

	cfg, err := a.loadConfig(root, opts.CleanupPolicy, opts.Parallel)
	if err != nil {
		return err
	}

	if err := printTitle(a.out); err != nil {
		return err
	}

	ctx, span := a.tracer.Start(ctx, "repair")
	defer span.End()

	if err := a.clean(ctx, root, cfg.CleanupPolicy); err != nil {
		span.RecordError(err)
		return err
	}

	if err := a.pin(ctx, root); err != nil {
		span.RecordError(err)
		return err
	}

	summary, err := a.install(ctx, root, cfg)
	if err != nil {
		span.RecordError(err)
		return err
	}

	if summary.Warnings > 0 {
		a.logger.Warn(fmt.Sprintf("%d of %d steps reported warnings", summary.Warnings, summary.Steps))
	}

	return printCompletion(a.out)
}

// Clean removes cached dependency directories and lockfiles.
func (a *App) Clean(ctx context.Context, opts CleanOptions) error {
	root := rootOrDefault(opts.Root)
	if err := checkRoot(root); err != nil {
		return err
	}

	cfg, err := a.loadConfig(root, opts.CleanupPolicy, nil)
	if err != nil {
		return err
	}

	return a.clean(ctx, root, cfg.CleanupPolicy)
}

// Pin patches the frontend manifest and writes the .npmrc files.
func (a *App) Pin(ctx context.Context, root string) error {
	root = rootOrDefault(root)
	if err := checkRoot(root); err != nil {
		return err
	}

	return a.pin(ctx, root)
}

// Plan prints the install steps without running them.
func (a *App) Plan(_ context.Context, root string) error {
	root = rootOrDefault(root)

	cfg, err := a.loadConfig(root, "", nil)
	if err != nil {
		return err
	}

	return printPlan(a.out, domain.InstallPlan(cfg.PackageManager))
}

func (a *App) loadConfig(root, policy string, parallel *bool) (domain.Config, error) {
	cfg, err := a.configLoader.Load(root)
	if err != nil {
		return cfg, zerr.Wrap(err, "failed to load configuration")
	}

	if policy != "" {
		p, err := domain.ParseCleanupPolicy(policy)
		if err != nil {
			return cfg, err
		}
		cfg.CleanupPolicy = p
	}

	if parallel != nil {
		cfg.Parallel = *parallel
	}

	return cfg, nil
}

func (a *App) clean(ctx context.Context, root string, policy domain.CleanupPolicy) error {
	_, span := a.tracer.Start(ctx, "clean")
	defer span.End()

	a.logger.Info("Cleaning node_modules directories...")

	removed, err := a.cleaner.Clean(root, domain.TargetDirs())
	span.SetAttribute("clean.removed", len(removed))
	if err == nil {
		return nil
	}

	span.RecordError(err)
	if policy == domain.CleanupFail {
		return zerr.Wrap(err, "cleanup aborted")
	}

	a.logger.Warn("Cleanup incomplete, continuing: " + err.Error())
	return nil
}

func (a *App) pin(ctx context.Context, root string) error {
	_, span := a.tracer.Start(ctx, "pin")
	defer span.End()

	a.logger.Info("Updating frontend package.json...")

	path := domain.ManifestPath(root)
	span.SetAttribute("manifest.path", path)

	changed, err := a.patcher.Patch(path, domain.ManifestPins())
	if err != nil {
		span.RecordError(err)
		return err
	}
	if changed {
		a.logger.Success("Updated frontend package.json")
	} else {
		a.logger.Success("Frontend package.json already pinned")
	}

	a.logger.Info("Creating .npmrc files...")
	if err := a.npmrc.Write(domain.NpmrcPaths(root), domain.NpmrcContent); err != nil {
		span.RecordError(err)
		return err
	}
	a.logger.Success("Created .npmrc files")

	return nil
}

func (a *App) install(ctx context.Context, root string, cfg domain.Config) (runner.Summary, error) {
	ctx, span := a.tracer.Start(ctx, "install")
	defer span.End()

	span.SetAttribute("install.parallel", cfg.Parallel)
	span.SetAttribute("install.package_manager", cfg.PackageManager)

	summary, err := a.runner.Run(ctx, domain.InstallPlan(cfg.PackageManager), runner.Options{
		Root:     root,
		Parallel: cfg.Parallel,
	})
	if err != nil {
		span.RecordError(err)
	}
	return summary, err
}

func rootOrDefault(root string) string {
	if root == "" {
		return domain.RootDir
	}
	return root
}

func checkRoot(root string) error {
	info, err := os.Stat(root)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidRoot.Error()), "root", root)
	}
	if !info.IsDir() {
		return zerr.With(domain.ErrInvalidRoot, "root", root)
	}
	return nil
}
