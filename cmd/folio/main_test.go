package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/folio/internal/config"
	"github.com/verte-zerg/folio/internal/display"
	"github.com/verte-zerg/folio/internal/logger"
)

func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv(config.EnvBaseURL, "")
	t.Setenv(config.EnvOffline, "")
	t.Setenv(config.EnvPort, "")
}

func newTestApp(t *testing.T) (*app, *bytes.Buffer) {
	t.Helper()
	isolate(t)
	var out bytes.Buffer
	a := newApp(&out, &out)
	a.isTerminal = func(int) bool { return false }
	a.open = func(string) error { return nil }
	a.f = display.New(&out, false)
	a.log = logger.Discard()
	a.flags.offline = true
	a.ready = true
	t.Cleanup(a.close)
	return a, &out
}

func TestValidateSeconds(t *testing.T) {
	for _, s := range []int{10, 60, 300} {
		if err := validateSeconds(s); err != nil {
			t.Fatalf("expected %d to be valid: %v", s, err)
		}
	}
	for _, s := range []int{0, 9, 301} {
		if err := validateSeconds(s); err == nil {
			t.Fatalf("expected %d to be rejected", s)
		}
	}
}

func TestTypingOptions(t *testing.T) {
	a, _ := newTestApp(t)
	opts, err := a.typingOptions(nil, defaultLineWidth)
	if err != nil {
		t.Fatalf("typingOptions: %v", err)
	}
	if opts.Duration != defaultTypingSeconds || opts.LineWidth != defaultLineWidth {
		t.Fatalf("unexpected defaults: %+v", opts)
	}

	duration := 30
	a.cfg.Typing.Duration = &duration
	opts, err = a.typingOptions(nil, 40)
	if err != nil {
		t.Fatalf("typingOptions: %v", err)
	}
	if opts.Duration != 30 || opts.LineWidth != 40 {
		t.Fatalf("expected config duration and width, got %+v", opts)
	}

	opts, err = a.typingOptions([]string{"120"}, 40)
	if err != nil || opts.Duration != 120 {
		t.Fatalf("expected argument to override config, got %+v (%v)", opts, err)
	}
	if _, err := a.typingOptions([]string{"abc"}, 40); err == nil {
		t.Fatalf("expected error for non-numeric duration")
	}
	if _, err := a.typingOptions([]string{"5"}, 40); err == nil {
		t.Fatalf("expected error for short duration")
	}
	if _, err := a.typingOptions(nil, 0); err == nil {
		t.Fatalf("expected error for zero width")
	}
}

func TestTypingOptionsCorpusFile(t *testing.T) {
	a, _ := newTestApp(t)
	path := filepath.Join(t.TempDir(), "corpus.txt")
	if err := os.WriteFile(path, []byte("first paragraph\n\nsecond paragraph\n"), 0o644); err != nil {
		t.Fatalf("write corpus: %v", err)
	}
	a.cfg.Typing.CorpusFile = &path
	opts, err := a.typingOptions(nil, defaultLineWidth)
	if err != nil {
		t.Fatalf("typingOptions: %v", err)
	}
	if len(opts.Texts) != 2 || opts.Texts[1] != "second paragraph" {
		t.Fatalf("unexpected corpus: %q", opts.Texts)
	}

	missing := filepath.Join(t.TempDir(), "missing.txt")
	a.cfg.Typing.CorpusFile = &missing
	if _, err := a.typingOptions(nil, defaultLineWidth); err == nil {
		t.Fatalf("expected error for missing corpus file")
	}
}

func TestRootCommandOffline(t *testing.T) {
	isolate(t)
	var out bytes.Buffer
	a := newApp(&out, &out)
	a.isTerminal = func(int) bool { return false }
	t.Cleanup(a.close)

	root := newRootCmd(a)
	root.SetArgs([]string{"--offline", "--no-color", "contact"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out.String(), "hey@sreeragh.me") {
		t.Fatalf("expected contact email in output, got %q", out.String())
	}
	if !a.flags.offline || !a.flags.noColor {
		t.Fatalf("expected flags to be applied: %+v", a.flags)
	}
}

func TestConfigFileOverridesDefaults(t *testing.T) {
	isolate(t)
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "[api]\nbase-url = \"http://127.0.0.1:1\"\noffline = true\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	var out bytes.Buffer
	a := newApp(&out, &out)
	a.isTerminal = func(int) bool { return false }
	t.Cleanup(a.close)

	root := newRootCmd(a)
	root.SetArgs([]string{"--base-url", "http://example.invalid", "about"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if a.flags.baseURL != "http://example.invalid" {
		t.Fatalf("expected flag to win over config, got %q", a.flags.baseURL)
	}
	if !a.flags.offline {
		t.Fatalf("expected offline from config")
	}
	if !strings.Contains(out.String(), "Sreeragh") {
		t.Fatalf("expected profile in output, got %q", out.String())
	}
}

func TestShellDispatch(t *testing.T) {
	a, out := newTestApp(t)
	sh := &shell{app: a}
	input := strings.NewReader("about\nskills bogus\nnope\n\nworks --list\nhistory\nexit\nabout\n")
	if err := sh.run(context.Background(), input); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"Sreeragh",
		`unknown skill category "bogus"`,
		"Unknown command: nope",
		"   3  nope",
		"   4  works --list",
		"Thanks for visiting!",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output, got %q", want, got)
		}
	}
	if len(sh.history) != 6 {
		t.Fatalf("expected shell to stop at exit, history %v", sh.history)
	}
}

func TestShellHelpListsAliases(t *testing.T) {
	a, _ := newTestApp(t)
	help := (&shell{app: a}).help()
	for _, want := range []string{"typing (type, monkeytype)", "works (projects, portfolio)", "exit (quit, q)"} {
		if !strings.Contains(help, want) {
			t.Fatalf("expected %q in help, got %q", want, help)
		}
	}
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.API.BaseURL != nil || cfg.Typing.Duration != nil {
		t.Fatalf("expected commented template to leave values unset: %+v", cfg)
	}
}

func TestLoadStoresStepResults(t *testing.T) {
	a, _ := newTestApp(t)
	if err := a.load(context.Background(), true); err != nil {
		t.Fatalf("load: %v", err)
	}
	if a.portfolio == nil || a.portfolio.Profile.Name != "Sreeragh" {
		t.Fatalf("expected portfolio to be stored, got %+v", a.portfolio)
	}
	if !a.postsOK {
		t.Fatalf("expected blog listing to be marked loaded")
	}
}

func TestLoadCancelledStoresNothing(t *testing.T) {
	a, _ := newTestApp(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := a.load(ctx, true); err == nil {
		t.Fatalf("expected error for cancelled load")
	}
	if a.portfolio != nil || a.postsOK {
		t.Fatalf("expected no state after cancelled load")
	}
}
