package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/zephyrtronium/calc"
)

var (
	inname  string
	verb    string
	mode    = calc.Degrees
	round   int
	verbose bool
	nocolor bool
)

// errFailed reports that at least one expression failed to evaluate. The
// failures themselves have already been printed.
var errFailed = errors.New("evaluation failed")

var rootCmd = &cobra.Command{
	Use:   "calc [expression...]",
	Short: "Scientific calculator",
	Long: `Calc evaluates calculator expressions such as "2+3*4", "sin(30)^2",
"5!/3", or "ans*2".

Each argument is evaluated in order. With no arguments, expressions are read
one per line from the input. Each successful result, rounded to --round
significant digits, becomes ans for the next expression. The lines :deg and :rad switch the angle mode, and :ans prints
the last answer.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func main() {
	log.SetFlags(0)
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, errFailed) {
			os.Exit(1)
		}
		log.Fatal(err)
	}
}

func init() {
	rootCmd.Flags().StringVar(&inname, "in", "", "input file, - for stdin (default stdin if no args given)")
	rootCmd.Flags().StringVar(&verb, "fmt", "%.15g", "result formatting string")
	rootCmd.Flags().IntVar(&round, "round", 12, "significant digits kept in results and ans, 0 for full precision")
	rootCmd.Flags().Var(&mode, "mode", "angle mode for trigonometric functions")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "log every evaluation to stderr")
	rootCmd.Flags().BoolVar(&nocolor, "no-color", false, "disable colored output")
}

func run(cmd *cobra.Command, args []string) error {
	if round < 0 {
		return fmt.Errorf("--round must not be negative, got %d", round)
	}
	if nocolor {
		color.NoColor = true
	}
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	lg := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	s := &session{
		ev:    calc.New(calc.Angle(mode), calc.Logger(lg)),
		out:   cmd.OutOrStdout(),
		verb:  verb + "\n",
		round: round,
		errc:  color.New(color.FgRed, color.Bold),
	}

	if len(args) > 0 && inname == "" {
		for _, arg := range args {
			s.line(arg)
		}
		return s.status()
	}

	in, interactive, err := infile(inname)
	if err != nil {
		return err
	}
	if c, ok := in.(io.Closer); ok && in != os.Stdin {
		defer c.Close()
	}
	s.caret = interactive
	if err := s.run(in, interactive); err != nil {
		return err
	}
	for _, arg := range args {
		s.line(arg)
	}
	if interactive {
		return nil
	}
	return s.status()
}

// infile opens the input named by the --in flag and reports whether it is an
// interactive terminal.
func infile(name string) (io.Reader, bool, error) {
	if name != "" && name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return nil, false, fmt.Errorf("opening input: %w", err)
		}
		return f, false, nil
	}
	return os.Stdin, term.IsTerminal(int(os.Stdin.Fd())), nil
}

// run evaluates each line of in, showing a prompt if interactive.
func (s *session) run(in io.Reader, interactive bool) error {
	sc := bufio.NewScanner(in)
	for {
		if interactive {
			fmt.Fprint(s.out, prompt)
		}
		if !sc.Scan() {
			break
		}
		s.line(sc.Text())
	}
	if interactive {
		fmt.Fprintln(s.out)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
