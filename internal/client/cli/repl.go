package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/renewadmin/internal/logging"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	takeSignIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Forget(ctx context.Context) error
	List(ctx context.Context, resource string) error
	Next(ctx context.Context) error
	Prev(ctx context.Context) error
	Search(ctx context.Context, text string) error
	Sort(ctx context.Context, field string) error
	Limit(ctx context.Context, n string) error
	Refresh(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context, resource string) error
	Edit(ctx context.Context, resource, id string) error
	Delete(ctx context.Context, resource, id string) error
	Report(ctx context.Context, sub string) error
	Remind(ctx context.Context, serviceID string) error
	WALog(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, forget, help, exit"
	helpLoggedIn  = `Available commands:
  list <resource>            open a list (` + resourceList + `)
  next | prev                page forward / back
  search <text>              filter the open list (empty text clears)
  sort <field>               sort by field, again to flip direction
  limit <10|25|50|100>       rows per page
  refresh                    reload the open list
  show <id>                  details of a row of the open list
  add <resource>             create a record
  edit <resource> <id>       edit a record
  delete <resource> <id>     delete a record
  report preview|download    services report
  remind <service-id>        send a WhatsApp renewal reminder
  walog                      WhatsApp reminder log
  whoami | logout | forget | exit`
)

// runREPL starts a simple read-eval-print loop for the renewadmin console.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. Before each prompt a sign-in requested by
// the session guard is served by running Login. The loop exits on EOF or
// when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own messages. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		if ctx.Err() != nil {
			return
		}
		if a.takeSignIn() {
			_ = a.Login(ctx)
		}

		printlnFn(fmt.Sprintf("ra %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || strings.TrimSpace(line) == "") {
			return
		}

		cmd, rest, _ := strings.Cut(strings.TrimSpace(line), " ")
		rest = strings.TrimSpace(rest)
		args := strings.Fields(rest)
		if cmd == "" {
			continue
		}
		ctx := logging.ContextWith(ctx, "cmd", cmd)

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.WhoAmI(ctx)

		case "forget":
			_ = a.Forget(ctx)

		case "l", "list":
			if len(args) != 1 {
				printlnFn("Usage: list <resource>")
				continue
			}
			_ = a.List(ctx, args[0])

		case "n", "next":
			_ = a.Next(ctx)

		case "p", "prev":
			_ = a.Prev(ctx)

		case "search":
			_ = a.Search(ctx, rest)

		case "sort":
			if len(args) != 1 {
				printlnFn("Usage: sort <field>")
				continue
			}
			_ = a.Sort(ctx, args[0])

		case "limit":
			if len(args) != 1 {
				printlnFn("Usage: limit <10|25|50|100>")
				continue
			}
			_ = a.Limit(ctx, args[0])

		case "refresh":
			_ = a.Refresh(ctx)

		case "show":
			if len(args) != 1 {
				printlnFn("Usage: show <id>")
				continue
			}
			_ = a.Show(ctx, args[0])

		case "add":
			if len(args) != 1 {
				printlnFn("Usage: add <resource>")
				continue
			}
			_ = a.Add(ctx, args[0])

		case "edit":
			if len(args) != 2 {
				printlnFn("Usage: edit <resource> <id>")
				continue
			}
			_ = a.Edit(ctx, args[0], args[1])

		case "delete":
			if len(args) != 2 {
				printlnFn("Usage: delete <resource> <id>")
				continue
			}
			_ = a.Delete(ctx, args[0], args[1])

		case "report":
			if len(args) != 1 {
				printlnFn("Usage: report preview|download")
				continue
			}
			_ = a.Report(ctx, args[0])

		case "remind":
			if len(args) != 1 {
				printlnFn("Usage: remind <service-id>")
				continue
			}
			_ = a.Remind(ctx, args[0])

		case "walog":
			_ = a.WALog(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
