package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/dmitrijs2005/healthgate/internal/diseases"
)

type App struct {
	backend Backend
	catalog *diseases.Catalog
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp builds a REPL over backend. Prompts for disease fields come from
// the built-in catalog, which the server shares.
func NewApp(backend Backend, in io.Reader, out io.Writer) *App {
	return &App{
		backend: backend,
		catalog: diseases.Default(),
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// Run blocks in the REPL until exit or end of input, then closes the backend.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "Welcome to healthgate CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader, a.out)
	return a.backend.Close()
}

func (a *App) isLoggedIn() bool {
	_, ok := a.backend.Identity()
	return ok
}

func (a *App) getStatus() string {
	if name, ok := a.backend.Identity(); ok {
		return fmt.Sprintf("(%s) ", name)
	}
	return ""
}
