// Package main provides the CLI entrypoint for folio.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/folio/internal/api"
	"github.com/verte-zerg/folio/internal/config"
	"github.com/verte-zerg/folio/internal/display"
	"github.com/verte-zerg/folio/internal/logger"
	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/store"
	"github.com/verte-zerg/folio/internal/tui"
)

const dotEnvFile = ".env"

type rootFlags struct {
	verbose bool
	noColor bool
	offline bool
	baseURL string
}

// app carries state shared by every command of one process.
type app struct {
	out    io.Writer
	errOut io.Writer

	flags rootFlags
	cfg   config.FileConfig
	log   *slog.Logger
	f     *display.Formatter
	ready bool

	store  *store.Store
	client *api.Client

	portfolio *model.Portfolio
	posts     []model.BlogPost
	postsOK   bool

	// isTerminal reports whether fd is an interactive terminal.
	isTerminal func(fd int) bool
	open       tui.Opener
}

func newApp(out, errOut io.Writer) *app {
	return &app{
		out:        out,
		errOut:     errOut,
		isTerminal: term.IsTerminal,
		open:       openURL,
	}
}

func main() {
	a := newApp(os.Stdout, os.Stderr)
	rootCmd := newRootCmd(a)
	err := rootCmd.Execute()
	a.close()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "folio",
		Short:             "Terminal portfolio with a typing test",
		SilenceUsage:      true,
		SilenceErrors:     false,
		Args:              cobra.NoArgs,
		PersistentPreRunE: a.setup,
		RunE:              a.runWelcome,
	}

	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&a.flags.verbose, "verbose", "v", false, "enable verbose output")
	flags.BoolVar(&a.flags.noColor, "no-color", false, "disable colored output")
	flags.BoolVar(&a.flags.offline, "offline", false, "skip the network and use cached or built-in data")
	flags.StringVar(&a.flags.baseURL, "base-url", api.DefaultBaseURL, "portfolio site base URL")

	addContentCommands(rootCmd, a)
	rootCmd.AddCommand(newInteractiveCmd(a))
	rootCmd.AddCommand(newServeCmd(a))
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCacheCmd(a))

	return rootCmd
}

// setup loads configuration once per process. Flags override the config
// file, which overrides built-in defaults.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	if a.ready {
		return nil
	}
	if err := config.LoadDotEnv(dotEnvFile); err != nil {
		return err
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := config.ApplyEnv(&fileCfg); err != nil {
		return err
	}
	applyStringConfig(cmd, "base-url", &a.flags.baseURL, fileCfg.API.BaseURL)
	applyBoolConfig(cmd, "offline", &a.flags.offline, fileCfg.API.Offline)
	if fileCfg.Display.Color != nil && !cmd.Flags().Changed("no-color") {
		a.flags.noColor = !*fileCfg.Display.Color
	}
	a.cfg = fileCfg

	a.log = logger.Init(logger.Config{Writer: a.errOut, Verbose: a.flags.verbose})
	color := !a.flags.noColor && os.Getenv("NO_COLOR") == ""
	a.f = display.New(a.out, color)
	a.ready = true
	return nil
}

func (a *app) runWelcome(cmd *cobra.Command, _ []string) error {
	p, err := a.loadPortfolio(cmd.Context())
	if err != nil {
		return err
	}
	a.println(a.f.Header("Folio CLI"))
	a.println(a.f.Welcome(p))
	return nil
}

// newClient wires the API client to the on-disk cache. A cache that cannot
// be opened only disables caching.
func (a *app) newClient() (*api.Client, error) {
	if a.client != nil {
		return a.client, nil
	}
	client := api.New(a.flags.baseURL)
	client.Logger = a.log
	client.Offline = a.flags.offline
	if a.cfg.API.Timeout != nil {
		timeout, err := time.ParseDuration(*a.cfg.API.Timeout)
		if err != nil || timeout <= 0 {
			return nil, fmt.Errorf("invalid api timeout %q", *a.cfg.API.Timeout)
		}
		client.HTTP.Timeout = timeout
	}
	st, err := store.Open(config.DefaultCachePath())
	if err != nil {
		a.log.Warn("cache disabled", "err", err)
	} else {
		a.store = st
		client.Cache = st
	}
	a.client = client
	return client, nil
}

func (a *app) close() {
	if a.store == nil {
		return
	}
	if err := a.store.Close(); err != nil {
		logErrf("failed to close cache: %v\n", err)
	}
	a.store = nil
}

func (a *app) loadPortfolio(ctx context.Context) (model.Portfolio, error) {
	if err := a.load(ctx, false); err != nil {
		return model.Portfolio{}, err
	}
	return *a.portfolio, nil
}

func (a *app) loadPosts(ctx context.Context) ([]model.BlogPost, error) {
	if err := a.load(ctx, true); err != nil {
		return nil, err
	}
	return a.posts, nil
}

type portfolioResult struct {
	portfolio model.Portfolio
	source    api.Source
}

// load fetches whatever is still missing, behind a spinner when stderr is a
// terminal. Fetched values are stored only after every step has finished.
func (a *app) load(ctx context.Context, withPosts bool) error {
	if ctx == nil {
		ctx = context.Background()
	}
	client, err := a.newClient()
	if err != nil {
		return err
	}
	var steps []tui.Step
	if a.portfolio == nil {
		steps = append(steps, tui.Step{Label: "Loading portfolio data...", Run: func(ctx context.Context) any {
			p, src := client.Portfolio(ctx)
			return portfolioResult{portfolio: p, source: src}
		}})
	}
	if withPosts && !a.postsOK {
		steps = append(steps, tui.Step{Label: "Loading blog posts...", Run: func(ctx context.Context) any {
			posts, _ := client.BlogPosts(ctx)
			return posts
		}})
	}
	if len(steps) == 0 {
		return nil
	}
	results, err := a.runSteps(ctx, steps)
	if err != nil {
		return err
	}
	var source api.Source
	for _, r := range results {
		switch v := r.(type) {
		case portfolioResult:
			p := v.portfolio
			a.portfolio = &p
			source = v.source
		case []model.BlogPost:
			a.posts = v
			a.postsOK = true
		}
	}
	switch source {
	case api.SourceCache:
		logErrln(a.f.Warning("Site unreachable, showing cached data"))
	case api.SourceFallback:
		logErrln(a.f.Warning("Site unreachable, showing built-in data"))
	}
	return nil
}

// runSteps returns the step values in order. An interrupted spinner cancels
// the step still running and returns an error.
func (a *app) runSteps(ctx context.Context, steps []tui.Step) ([]any, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	if !a.isTerminal(int(os.Stderr.Fd())) {
		for _, step := range steps {
			a.log.Debug(step.Label)
		}
		results := tui.RunSteps(ctx, steps)
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("loading interrupted: %w", err)
		}
		return results, nil
	}
	loader := tui.NewLoaderModel(ctx, steps)
	program := tea.NewProgram(loader, tea.WithOutput(os.Stderr), tea.WithInput(nil))
	if _, err := program.Run(); err != nil {
		return nil, fmt.Errorf("failed to run loader: %w", err)
	}
	if !loader.Done() {
		return nil, fmt.Errorf("loading interrupted")
	}
	return loader.Results(), nil
}

func (a *app) println(s string) {
	if _, err := fmt.Fprintln(a.out, s); err != nil {
		// Best-effort output.
		_ = err
	}
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create config dir: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newCacheCmd(a *app) *cobra.Command {
	cacheCmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage cached portfolio data",
		Args:  cobra.NoArgs,
	}
	cacheCmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Remove cached responses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := store.Open(config.DefaultCachePath())
			if err != nil {
				return fmt.Errorf("failed to open cache: %w", err)
			}
			defer func() {
				if cerr := st.Close(); cerr != nil {
					logErrf("failed to close cache: %v\n", cerr)
				}
			}()
			n, err := st.Purge(cmd.Context())
			if err != nil {
				return err
			}
			a.println(a.f.Success(fmt.Sprintf("Removed %d cached responses", n)))
			return nil
		},
	})
	return cacheCmd
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# folio configuration
# Uncomment a value to enable it. CLI flags override config values.

[api]
# base-url = %q   # Portfolio site
# timeout = %q                  # Per-request timeout
# offline = false                 # Skip the network

[display]
# color = true                    # Colored output

[typing]
# duration = %d                   # Test length in seconds (%d-%d)
# line-width = %d                 # Wrap width for the test text
# corpus-file = ""                # One paragraph per line

[server]
# addr = %q                   # Listen address for folio serve
# data-file = ""                  # Portfolio JSON to publish
`,
		api.DefaultBaseURL,
		api.DefaultTimeout.String(),
		defaultTypingSeconds, minTypingSeconds, maxTypingSeconds,
		defaultLineWidth,
		defaultServeAddr,
	)
}

func openURL(url string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	return cmd.Start()
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
