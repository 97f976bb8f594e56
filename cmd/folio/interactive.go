package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/spf13/cobra"
)

const shellPrompt = "folio> "

func newInteractiveCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Start interactive mode",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.loadPortfolio(cmd.Context()); err != nil {
				return err
			}
			sh := &shell{app: a}
			return sh.run(cmd.Context(), cmd.InOrStdin())
		},
	}
}

// shell reads commands line by line and dispatches them to the content
// commands.
type shell struct {
	app     *app
	history []string
}

func (s *shell) run(ctx context.Context, in io.Reader) error {
	a := s.app
	a.println(a.f.Info(`Interactive mode. Type "help" for commands, "exit" to leave.`))
	scanner := bufio.NewScanner(in)
	for {
		if _, err := fmt.Fprint(a.out, shellPrompt); err != nil {
			return fmt.Errorf("failed to write prompt: %w", err)
		}
		if !scanner.Scan() {
			break
		}
		if !s.exec(ctx, scanner.Text()) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	a.println("")
	return nil
}

// exec runs one input line and reports whether the shell should continue.
func (s *shell) exec(ctx context.Context, line string) bool {
	a := s.app
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	s.history = append(s.history, strings.Join(fields, " "))

	switch fields[0] {
	case "exit", "quit", "q":
		a.println(a.f.Info("Thanks for visiting! 👋"))
		return false
	case "help", "?":
		a.println(s.help())
		return true
	case "history":
		for i, entry := range s.history {
			a.println(fmt.Sprintf("%4d  %s", i+1, entry))
		}
		return true
	case "clear":
		a.println("\033[H\033[2J")
		return true
	}

	tree := s.commands()
	target, _, err := tree.Find(fields)
	if err != nil || target == tree {
		a.println(a.f.Error("Unknown command: " + fields[0]))
		a.println(a.f.Info(`Type "help" to see available commands`))
		return true
	}
	tree.SetArgs(fields)
	if err := tree.ExecuteContext(ctx); err != nil {
		a.println(a.f.Error(err.Error()))
	}
	return true
}

// commands builds a fresh command tree per line so flag values never leak
// between lines.
func (s *shell) commands() *cobra.Command {
	root := &cobra.Command{
		Use:           "folio",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(s.app.out)
	root.SetErr(s.app.out)
	addContentCommands(root, s.app)
	return root
}

func (s *shell) help() string {
	var items []string
	for _, c := range s.commands().Commands() {
		if !c.IsAvailableCommand() {
			continue
		}
		name := c.Name()
		if len(c.Aliases) > 0 {
			name += " (" + strings.Join(c.Aliases, ", ") + ")"
		}
		items = append(items, fmt.Sprintf("%-32s %s", name, c.Short))
	}
	sort.Strings(items)
	items = append(items, fmt.Sprintf("%-32s %s", "history", "Show entered commands"))
	items = append(items, fmt.Sprintf("%-32s %s", "clear", "Clear the screen"))
	items = append(items, fmt.Sprintf("%-32s %s", "exit (quit, q)", "Leave interactive mode"))
	return s.app.f.Section("Available commands", s.app.f.List(items, false))
}
