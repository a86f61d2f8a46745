package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/lakshaymaurya-felt/projclean/internal/config"
	"github.com/lakshaymaurya-felt/projclean/internal/tui"
)

var (
	// Global flags
	debug        bool
	dryRun       bool
	configPath   string
	templateName string

	// Loaded in PersistentPreRunE
	cfg      *config.Config
	registry *config.Registry

	// Version info populated from main
	appVersion = "dev"
	appCommit  = "none"
	appDate    = "unknown"
)

// SetVersionInfo sets build-time version information.
func SetVersionInfo(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

var rootCmd = &cobra.Command{
	Use:   "projclean [path]",
	Short: "Find and remove build artifacts from a project",
	Long: `projclean - find and remove build artifacts and dependency folders.

Scans a project tree for the folders and files a project template marks as
disposable (node_modules, dist, __pycache__, lock files, ...), lets you pick
what to remove, and deletes the selection.

Without a subcommand an interactive screen is started. When stdout is not a
terminal the results are printed as a plain listing instead.`,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runInteractive,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Show detailed operation logs")
	rootCmd.PersistentFlags().BoolVar(&dryRun, "dry-run", false, "Show what would be deleted without deleting")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default "+config.DefaultPath()+")")
	rootCmd.PersistentFlags().StringVarP(&templateName, "template", "t", "", "Project template to clean for")

	_ = rootCmd.RegisterFlagCompletionFunc("template", completeTemplates)

	// Register all subcommands
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(cleanCmd)
	rootCmd.AddCommand(templatesCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

// setup configures logging and loads the config file before any command runs.
func setup(cmd *cobra.Command, args []string) error {
	log.SetOutput(cmd.ErrOrStderr())
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	log.SetLevel(log.WarnLevel)
	if debug {
		log.SetLevel(log.DebugLevel)
	}

	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}
	loaded, err := config.Load(path)
	if err != nil {
		return err
	}
	cfg = loaded
	registry = loaded.Registry()
	return nil
}

// activeTemplate returns the --template flag, falling back to the config default.
func activeTemplate() string {
	if templateName != "" {
		return templateName
	}
	if cfg != nil && cfg.DefaultTemplate != "" {
		return cfg.DefaultTemplate
	}
	return config.DefaultTemplate
}

func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}

func runInteractive(cmd *cobra.Command, args []string) error {
	root := rootArg(args)
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return runScan(cmd.OutOrStdout(), root, activeTemplate())
	}

	closeLog := redirectLog()
	defer closeLog()

	return tui.Run(tui.Options{
		Root:         root,
		Template:     activeTemplate(),
		Registry:     registry,
		DryRun:       dryRun,
		Confirm:      cfg.ConfirmDeletes(),
		ErrorPreview: cfg.ErrorPreview,
	})
}

// redirectLog moves log output into a file under the user cache dir so it
// cannot draw over the alt screen. Logs are dropped if the file can't be opened.
func redirectLog() func() {
	path, err := logFilePath()
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	var f *os.File
	if err == nil {
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	}
	if err != nil {
		log.SetOutput(io.Discard)
		return func() {}
	}

	log.SetOutput(f)
	log.WithField("version", appVersion).Debug("interactive session started")
	return func() {
		log.SetOutput(os.Stderr)
		_ = f.Close()
	}
}

func logFilePath() (string, error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate cache dir: %w", err)
	}
	return filepath.Join(dir, "projclean", "projclean.log"), nil
}

func completeTemplates(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	reg := registry
	if reg == nil {
		reg = config.NewRegistry()
	}
	return reg.Names(), cobra.ShellCompDirectiveNoFileComp
}
