// Package cli is the terminal front end: a one-shot mode driven by flags and
// an interactive menu.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/vaultpass/passgen-go/internal/charset"
	"github.com/vaultpass/passgen-go/internal/model"
	"github.com/vaultpass/passgen-go/internal/service"
)

const clearScreen = "\033[H\033[2J"

// App wires the generator service to a terminal.
type App struct {
	svc      *service.GeneratorService
	prompter *Prompter
	out      io.Writer
	clear    bool

	defaultLength int
	hash          bool
}

// Option customizes an App.
type Option func(*App)

// WithDefaultLength sets the length offered when the user just presses enter.
func WithDefaultLength(n int) Option {
	return func(a *App) { a.defaultLength = n }
}

// WithHash makes interactive generation also print an Argon2id hash.
func WithHash(on bool) Option {
	return func(a *App) { a.hash = on }
}

// WithClearScreen forces terminal clearing on or off.
func WithClearScreen(on bool) Option {
	return func(a *App) { a.clear = on }
}

// New creates an App reading from in and writing to out. Screens are cleared
// between menu actions only when out is a terminal.
func New(svc *service.GeneratorService, in io.Reader, out io.Writer, opts ...Option) *App {
	a := &App{
		svc:           svc,
		prompter:      NewPrompter(in, out),
		out:           out,
		clear:         isTerminal(out),
		defaultLength: service.DefaultLength,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Generate prints count passwords built from req, one per line, or one JSON
// object per line when asJSON is set.
func (a *App) Generate(req model.GenerateRequest, count int, asJSON bool) error {
	resps, err := a.svc.GenerateBatch(req, count)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(a.out)
	for _, resp := range resps {
		if asJSON {
			if err := enc.Encode(resp); err != nil {
				return err
			}
			continue
		}
		if resp.Hash != "" {
			fmt.Fprintf(a.out, "%s\t%s\n", resp.Password, resp.Hash)
			continue
		}
		fmt.Fprintln(a.out, resp.Password)
	}
	return nil
}

// Interactive runs the menu loop until the user exits or input ends.
func (a *App) Interactive() error {
	a.screen()
	for {
		fmt.Fprint(a.out, menu)
		choice, err := a.prompter.Line("> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		switch strings.ToLower(choice) {
		case "1", "g", "generate":
			err = a.generateInteractive()
		case "2", "a", "about":
			a.screen()
			fmt.Fprintln(a.out, aboutText)
		case "3", "l", "license":
			a.screen()
			fmt.Fprintln(a.out, licenseText)
		case "4", "q", "quit", "exit":
			fmt.Fprintln(a.out, "Goodbye.")
			return nil
		case "":
		default:
			fmt.Fprintf(a.out, "Unknown command %q.\n", choice)
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func (a *App) generateInteractive() error {
	a.screen()

	length, err := a.prompter.Length(a.defaultLength)
	if err != nil {
		return err
	}

	var classes []charset.Class
	for _, c := range charset.All() {
		ok, err := a.prompter.YesNo("Include "+c.Description()+"?", true)
		if err != nil {
			return err
		}
		if ok {
			classes = append(classes, c)
		}
	}

	resp, err := a.svc.Generate(service.NewRequest(length, classes, a.hash))
	if err != nil {
		if service.IsValidationError(err) {
			fmt.Fprintf(a.out, "\nError: %v\n", err)
			return nil
		}
		slog.Error("password generation failed", "error", err)
		fmt.Fprintln(a.out, "\nError: could not generate a password")
		return nil
	}

	fmt.Fprintf(a.out, "\nGenerated Password: %s\n", resp.Password)
	if resp.Hash != "" {
		fmt.Fprintf(a.out, "Argon2id Hash:      %s\n", resp.Hash)
	}
	return nil
}

func (a *App) screen() {
	if a.clear {
		fmt.Fprint(a.out, clearScreen)
	}
	fmt.Fprintln(a.out, banner)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
