package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/folio/internal/config"
	"github.com/verte-zerg/folio/internal/corpus"
	"github.com/verte-zerg/folio/internal/display"
	"github.com/verte-zerg/folio/internal/model"
	"github.com/verte-zerg/folio/internal/server"
	"github.com/verte-zerg/folio/internal/tui"
	"github.com/verte-zerg/folio/internal/typing"
)

const (
	defaultTypingSeconds = 60
	minTypingSeconds     = 10
	maxTypingSeconds     = 300
	defaultLineWidth     = typing.DefaultLineWidth
	defaultServeAddr     = ":8080"
)

// addContentCommands registers the portfolio commands on parent. The
// interactive shell reuses them.
func addContentCommands(parent *cobra.Command, a *app) {
	parent.AddCommand(newAboutCmd(a))
	parent.AddCommand(newWorksCmd(a))
	parent.AddCommand(newSkillsCmd(a))
	parent.AddCommand(newContactCmd(a))
	parent.AddCommand(newBlogCmd(a))
	parent.AddCommand(newTypingCmd(a))
}

func newAboutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "about",
		Aliases: []string{"whoami", "info"},
		Short:   "Learn more about me",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.loadPortfolio(cmd.Context())
			if err != nil {
				return err
			}
			a.println(a.f.About(p))
			return nil
		},
	}
}

func newWorksCmd(a *app) *cobra.Command {
	var list, interactive bool
	cmd := &cobra.Command{
		Use:     "works",
		Aliases: []string{"projects", "portfolio"},
		Short:   "View my projects and works",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.loadPortfolio(cmd.Context())
			if err != nil {
				return err
			}
			if len(p.Works) == 0 {
				a.println(a.f.Warning("No works available at the moment."))
				return nil
			}
			switch {
			case interactive:
				return a.browseWorks(p.Works)
			case list:
				a.println(a.f.WorksList(p.Works))
			default:
				a.println(a.f.WorksTable(p.Works))
				a.println(a.f.Info("Use --interactive or -i for detailed view"))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "show works as a detailed list")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "browse works interactively")
	return cmd
}

func (a *app) browseWorks(works []model.Work) error {
	if !a.isTerminal(int(os.Stdin.Fd())) {
		a.println(a.f.WorksList(works))
		return nil
	}
	browser := tui.NewWorksModel(works, a.f, a.open)
	program := tea.NewProgram(browser, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run works browser: %w", err)
	}
	return nil
}

func newSkillsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "skills [category]",
		Aliases: []string{"tech", "stack"},
		Short:   "View my technical skills",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := a.loadPortfolio(cmd.Context())
			if err != nil {
				return err
			}
			if len(args) == 0 {
				a.println(a.f.Skills(p.Skills))
				return nil
			}
			category, ok := display.FindSkillCategory(p.Skills, args[0])
			if !ok {
				return fmt.Errorf("unknown skill category %q (available: %s)", args[0], strings.Join(display.SkillCategoryKeys(), ", "))
			}
			a.println(a.f.SkillSection(category))
			return nil
		},
	}
}

func newContactCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "contact",
		Short: "Get contact information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := a.loadPortfolio(cmd.Context())
			if err != nil {
				return err
			}
			a.println(a.f.Contact(p))
			return nil
		},
	}
}

func newBlogCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "blog [slug]",
		Short: "View blog posts",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				client, err := a.newClient()
				if err != nil {
					return err
				}
				article := client.BlogPost(cmd.Context(), args[0])
				if article == nil {
					return fmt.Errorf("blog post %q not found", args[0])
				}
				a.println(a.f.Article(*article))
				return nil
			}
			posts, err := a.loadPosts(cmd.Context())
			if err != nil {
				return err
			}
			if len(posts) == 0 {
				a.println(a.f.Warning("No blog posts available at the moment."))
				return nil
			}
			a.println(a.f.Blog(posts))
			a.println(a.f.Info(fmt.Sprintf("Total: %d posts", len(posts))))
			return nil
		},
	}
}

func newTypingCmd(a *app) *cobra.Command {
	var width int
	cmd := &cobra.Command{
		Use:     "typing [seconds]",
		Aliases: []string{"type", "monkeytype"},
		Short:   "Start a typing test",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			applyIntConfig(cmd, "width", &width, a.cfg.Typing.LineWidth)
			opts, err := a.typingOptions(args, width)
			if err != nil {
				return err
			}
			if !a.isTerminal(int(os.Stdin.Fd())) {
				return errors.New("typing test needs an interactive terminal")
			}
			m := tui.NewTypingModel(opts)
			program := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("failed to run typing test: %w", err)
			}
			if m.Interrupted() {
				a.println(a.f.Info("Typing test cancelled."))
				return nil
			}
			if res, ok := m.Result(); ok {
				a.println(a.f.TypingResults(res))
				a.println(a.f.Notes(typing.Assess(res)))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&width, "width", defaultLineWidth, "wrap width for the test text")
	return cmd
}

// typingOptions resolves the duration argument, config and corpus.
func (a *app) typingOptions(args []string, width int) (tui.TypingOptions, error) {
	seconds := defaultTypingSeconds
	if a.cfg.Typing.Duration != nil {
		seconds = *a.cfg.Typing.Duration
	}
	if len(args) == 1 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil {
			return tui.TypingOptions{}, fmt.Errorf("invalid time limit %q: use a value between %d and %d seconds", args[0], minTypingSeconds, maxTypingSeconds)
		}
		seconds = parsed
	}
	if err := validateSeconds(seconds); err != nil {
		return tui.TypingOptions{}, err
	}

	if width <= 0 {
		return tui.TypingOptions{}, fmt.Errorf("--width must be greater than 0")
	}

	texts := corpus.Builtin
	path := config.DefaultCorpusPath()
	explicit := false
	if a.cfg.Typing.CorpusFile != nil && *a.cfg.Typing.CorpusFile != "" {
		path = *a.cfg.Typing.CorpusFile
		explicit = true
	}
	if _, err := os.Stat(path); err == nil || explicit {
		loaded, err := corpus.LoadFile(path)
		if err != nil {
			return tui.TypingOptions{}, fmt.Errorf("failed to load corpus: %w", err)
		}
		texts = loaded
	}

	return tui.TypingOptions{
		Duration:  seconds,
		LineWidth: width,
		Texts:     texts,
		Formatter: a.f,
	}, nil
}

func validateSeconds(seconds int) error {
	if seconds < minTypingSeconds || seconds > maxTypingSeconds {
		return fmt.Errorf("invalid time limit %d: use a value between %d and %d seconds", seconds, minTypingSeconds, maxTypingSeconds)
	}
	return nil
}

func newServeCmd(a *app) *cobra.Command {
	var addr, dataFile string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Publish portfolio data over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			applyStringConfig(cmd, "addr", &addr, a.cfg.Server.Addr)
			applyStringConfig(cmd, "data", &dataFile, a.cfg.Server.DataFile)

			content, err := server.LoadContent(dataFile)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logErrf("Serving portfolio on %s\n", addr)
			return server.Run(ctx, addr, server.New(content, a.log), a.log)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "listen address")
	cmd.Flags().StringVar(&dataFile, "data", "", "portfolio JSON file (default: built-in data)")
	return cmd
}
