package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isSignedIn() bool

	SignUp(ctx context.Context) error
	Confirm(ctx context.Context, args []string) error
	SignIn(ctx context.Context) error
	SignOut(ctx context.Context) error

	Show(ctx context.Context, args []string) error
	Reload(ctx context.Context) error

	AddContact(ctx context.Context) error
	EditContact(ctx context.Context, args []string) error
	DeleteContact(ctx context.Context, args []string) error
	AddOccasion(ctx context.Context, args []string) error
	EditOccasion(ctx context.Context, args []string) error
	DeleteOccasion(ctx context.Context, args []string) error

	Select(ctx context.Context, args []string) error
	Occasion(ctx context.Context, args []string) error
	Style(ctx context.Context, args []string) error
	Generate(ctx context.Context) error
	Send(ctx context.Context, args []string) error
}

const (
	helpSignedOut = "Available commands: signup, confirm <token>, signin, exit"
	helpSignedIn  = `Available commands:
  show [generate|contacts|occasions]   switch panel and show it
  select <contact>                     choose who to write to
  occasion <n|none>                    choose one of the contact's occasions
  style <formal|casual|warm>           choose the tone
  generate                             offer 3 message options
  send <n>                             log option n as sent and copy it
  add | edit <n> | delete <n>          manage contacts
  addoccasion <contact> | editoccasion <n> | deleteoccasion <n>
  reload | signout | exit`
)

// needsSession lists the commands that only work while signed in.
var needsSession = map[string]bool{
	"show": true, "reload": true, "select": true, "occasion": true, "style": true,
	"generate": true, "gen": true, "send": true, "add": true, "edit": true, "delete": true,
	"addoccasion": true, "editoccasion": true, "deleteoccasion": true, "signout": true,
}

// runREPL starts a simple read–eval–print loop for the TouchBase CLI.
//
// It writes the prompt and all replies to w, reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Errors returned by handlers are printed and
// the loop goes on. The loop exits on EOF or when the user types "exit" or
// "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader, w io.Writer) {
	for {
		fmt.Fprintf(w, "%s> ", statusFn())
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			fmt.Fprintln(w)
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := strings.ToLower(parts[0])
		args := parts[1:]

		if needsSession[cmd] && !a.isSignedIn() {
			fmt.Fprintln(w, "Please sign in first.")
			continue
		}

		var cerr error
		switch cmd {
		case "help":
			if a.isSignedIn() {
				fmt.Fprintln(w, helpSignedIn)
			} else {
				fmt.Fprintln(w, helpSignedOut)
			}

		case "signup", "register":
			cerr = a.SignUp(ctx)
		case "confirm":
			cerr = a.Confirm(ctx, args)
		case "signin", "login":
			cerr = a.SignIn(ctx)
		case "signout", "logout":
			cerr = a.SignOut(ctx)

		case "show":
			cerr = a.Show(ctx, args)
		case "reload":
			cerr = a.Reload(ctx)

		case "add":
			cerr = a.AddContact(ctx)
		case "edit":
			cerr = a.EditContact(ctx, args)
		case "delete":
			cerr = a.DeleteContact(ctx, args)
		case "addoccasion":
			cerr = a.AddOccasion(ctx, args)
		case "editoccasion":
			cerr = a.EditOccasion(ctx, args)
		case "deleteoccasion":
			cerr = a.DeleteOccasion(ctx, args)

		case "select":
			cerr = a.Select(ctx, args)
		case "occasion":
			cerr = a.Occasion(ctx, args)
		case "style":
			cerr = a.Style(ctx, args)
		case "generate", "gen":
			cerr = a.Generate(ctx)
		case "send":
			cerr = a.Send(ctx, args)

		case "exit", "quit":
			fmt.Fprintln(w, "Bye!")
			return

		default:
			fmt.Fprintln(w, "Unknown command:", cmd)
		}

		if cerr != nil {
			fmt.Fprintln(w, describe(cerr))
		}
		if errors.Is(err, io.EOF) {
			return
		}
	}
}
