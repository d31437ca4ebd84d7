package cli

import (
	"context"
	"fmt"
	"strings"
)

// runREPL is a simple read–eval–print loop over the unlocked vault. It
// reads a line, parses the first token as the command, and dispatches.
// The loop exits on EOF or when the user types "exit" or "quit". Session
// validity is re-checked before every command that touches the repository.
func (a *App) runREPL(ctx context.Context) {
	fmt.Fprintln(a.out, "Type 'help' for commands.")

	for {
		fmt.Fprintf(a.out, "vault (%s)> ", a.flow.Session().User().Username)
		line, err := a.reader.ReadString('\n')
		if err != nil {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			fmt.Fprintln(a.out, "Available commands: list, add, show, update, delete, search, categories, summary, suggest, import, logout, exit")
			continue
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		case "logout":
			a.flow.Logout(ctx)
			if err := a.login(ctx); err != nil {
				return
			}
			continue
		}

		if err := a.ensureSession(ctx); err != nil {
			return
		}

		var cmdErr error
		switch cmd {
		case "list":
			cmdErr = a.list(ctx)
		case "add":
			cmdErr = a.add(ctx)
		case "show":
			cmdErr = a.show(ctx, args)
		case "update":
			cmdErr = a.update(ctx, args)
		case "delete":
			cmdErr = a.delete(ctx, args)
		case "search":
			cmdErr = a.search(ctx, args)
		case "categories":
			cmdErr = a.categories(ctx)
		case "summary":
			cmdErr = a.summary(ctx)
		case "suggest":
			cmdErr = a.suggest(ctx)
		case "import":
			cmdErr = a.importLegacy(ctx, args)
		default:
			fmt.Fprintln(a.out, "Unknown command:", cmd)
		}
		if cmdErr != nil {
			fmt.Fprintln(a.out, "Error:", cmdErr)
		}
	}
}
