// Package interactive provides the interactive read shell of uaflow.
package interactive

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/uaflow/uaflow-go/pkg/reader"
	"github.com/uaflow/uaflow-go/pkg/session"
)

// Shell reads nodes on demand.
type Shell struct {
	sess   session.Session
	opts   []reader.Option
	maxAge time.Duration
	rl     *readline.Instance
	out    io.Writer
}

// New creates a Shell reading through sess. opts are applied to every
// read; maxAge is the initial staleness bound and can be changed with
// the maxage command.
func New(sess session.Session, maxAge time.Duration, opts ...reader.Option) (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "uaflow> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}

	s := newShell(sess, maxAge, rl.Stdout(), opts...)
	s.rl = rl
	return s, nil
}

func newShell(sess session.Session, maxAge time.Duration, out io.Writer, opts ...reader.Option) *Shell {
	return &Shell{
		sess:   sess,
		opts:   opts,
		maxAge: maxAge,
		out:    out,
	}
}

// Run starts the command loop. It calls cancel when the user quits.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if quit := s.Execute(ctx, line); quit {
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}
	}
}

// Execute runs one command line and reports whether the shell should exit.
func (s *Shell) Execute(ctx context.Context, line string) bool {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return false
	}
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "read", "r":
		s.cmdRead(ctx, args)

	case "maxage", "max-age":
		s.cmdMaxAge(args)

	case "quit", "exit", "q":
		return true

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
uaflow Commands:
  read <node>...     - Read node values (e.g. ns=2;s=Temperature i=2258)
  maxage [duration]  - Show or set the maximum cached value age (e.g. 500ms, 0)
  help               - Show this help
  quit               - Exit`)
}

func (s *Shell) cmdRead(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(s.out, "Usage: read <node>...")
		return
	}

	opts := append([]reader.Option{}, s.opts...)
	opts = append(opts, reader.WithMaxAge(s.maxAge), reader.WithFailureRecords())
	results := reader.New(args, opts...).Read(ctx, s.sess)
	PrintResults(s.out, results)
}

func (s *Shell) cmdMaxAge(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(s.out, "max age: %s\n", s.maxAge)
		return
	}
	d, err := time.ParseDuration(args[0])
	if err != nil || d < 0 {
		fmt.Fprintf(s.out, "Invalid duration: %s\n", args[0])
		return
	}
	s.maxAge = d
	fmt.Fprintf(s.out, "max age set to %s\n", d)
}

// PrintResults writes one line per read result.
func PrintResults(w io.Writer, results []reader.Result) {
	for _, r := range results {
		switch {
		case r.Err != nil:
			fmt.Fprintf(w, "%-32s  ERROR    %v\n", r.Identifier, r.Err)
		case r.TimedOut():
			fmt.Fprintf(w, "%-32s  TIMEOUT\n", r.Identifier)
		case r.StatusGood:
			fmt.Fprintf(w, "%-32s  GOOD     %v\n", r.Identifier, r.Value)
		default:
			fmt.Fprintf(w, "%-32s  0x%08X  %v\n", r.Identifier, uint32(*r.Status), r.Value)
		}
	}
}
