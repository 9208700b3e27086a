package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Open(ctx context.Context, path string) error
	Back(ctx context.Context) error
	Brands(ctx context.Context) error
	Boxes(ctx context.Context) error
	AddBrand(ctx context.Context) error
	EditBrand(ctx context.Context) error
	DeleteBrand(ctx context.Context) error
	AddBox(ctx context.Context) error
	EditBox(ctx context.Context) error
	DeleteBox(ctx context.Context) error
	Theme(ctx context.Context) error
	Session(ctx context.Context) error
	FlushNotifications()
}

// runREPL starts a simple read-eval-print loop for the blindboxctl client.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Prompt & Commands
//
// The prompt shows the current status (from statusFn) and accepts commands:
//
//	Not logged in:
//	  - help           - show available commands
//	  - login          - authenticate
//	  - exit | quit    - leave the program
//
//	Logged in:
//	  - open <path>    - navigate to a view (gated)
//	  - back           - go back one step in history
//	  - brands         - list brands
//	  - boxes          - list blind boxes
//	  - addbrand | editbrand | delbrand    - brand management (admin)
//	  - addbox | editbox | delbox          - blind-box management (admin)
//	  - theme          - toggle light/dark
//	  - session        - show session token claims
//	  - logout         - log out
//	  - exit | quit    - leave the program
//
// Any errors returned by command handlers are ignored here; handlers report
// their own failures through the notification queue. After every command the
// queue is flushed to the terminal, which keeps the loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func(ctx context.Context) string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bb> %s > ", statusFn(ctx)))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: open <path>, back, brands, boxes, addbrand, editbrand, delbrand, addbox, editbox, delbox, theme, session, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "open":
			if len(parts) < 2 {
				printlnFn("Usage: open <path>")
				continue
			}
			_ = a.Open(ctx, parts[1])

		case "back":
			_ = a.Back(ctx)

		case "brands":
			_ = a.Brands(ctx)

		case "boxes":
			_ = a.Boxes(ctx)

		case "addbrand":
			_ = a.AddBrand(ctx)

		case "editbrand":
			_ = a.EditBrand(ctx)

		case "delbrand":
			_ = a.DeleteBrand(ctx)

		case "addbox":
			_ = a.AddBox(ctx)

		case "editbox":
			_ = a.EditBox(ctx)

		case "delbox":
			_ = a.DeleteBox(ctx)

		case "theme":
			_ = a.Theme(ctx)

		case "session":
			_ = a.Session(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		a.FlushNotifications()
	}
}
