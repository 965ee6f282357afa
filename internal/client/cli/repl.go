package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Diseases(ctx context.Context) error
	Predict(ctx context.Context, args []string) error
}

// runREPL reads one command per line from reader and dispatches it to a.
// Command handlers read their own prompts from the same reader, so the loop
// must not buffer ahead of them. Errors returned by handlers are printed and
// the loop continues. It exits on EOF or "exit"/"quit".
//
//	Not logged in: help, register, login, diseases, exit
//	Logged in:     help, predict <disease>, diseases, whoami, logout, exit
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "hg %s> ", statusFn())
		line, err := readLine(reader)
		if err != nil {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				fmt.Fprintln(w, "Available commands: predict <disease>, diseases, whoami, logout, exit")
			} else {
				fmt.Fprintln(w, "Available commands: register, login, diseases, exit")
			}

		case "register":
			err = a.Register(ctx)

		case "login":
			err = a.Login(ctx)

		case "logout":
			err = a.Logout(ctx)

		case "whoami":
			err = a.Whoami(ctx)

		case "diseases", "list":
			err = a.Diseases(ctx)

		case "predict":
			err = a.Predict(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if err != nil {
			fmt.Fprintln(w, "Error:", err)
		}
	}
}
