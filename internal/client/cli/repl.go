package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Add(ctx context.Context) error
	List(ctx context.Context) error
	Favorites(ctx context.Context) error
	Category(ctx context.Context, name string) error
	Show(ctx context.Context, id string) error
	ToggleFavorite(ctx context.Context, id string) error
	Tag(ctx context.Context, id string, tags []string) error
	Edit(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Search(ctx context.Context, text string) error
	Filter(ctx context.Context, tags []string) error
	Download(ctx context.Context, id, path string) error
	Stats(ctx context.Context) error
}

const (
	helpAnonymous = "Available commands: register, login, list, favorites, category, show, search, filter, stats, exit\n" +
		"(changes are not saved until you login)"
	helpLoggedIn = "Available commands: add, (l)ist, favorites, category <name>, show <id>, fav <id>, " +
		"tag <id> <tags...>, edit <id>, delete <id>, search <text>, filter <tags...>, " +
		"download <id> <path>, stats, logout, exit"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// It returns on EOF or when the user types "exit" or "quit". Handler errors
// are printed and the loop continues.
//
// Commands that take arguments print a usage line when they are missing.
// Everything except add is available before login and works on the demo
// collection.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("pw> %s > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpAnonymous)
			}

		case "register":
			cmdErr = a.Register(ctx)

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "add":
			if !a.isLoggedIn() {
				printlnFn("Please login first")
				continue
			}
			cmdErr = a.Add(ctx)

		case "l", "list":
			cmdErr = a.List(ctx)

		case "favorites":
			cmdErr = a.Favorites(ctx)

		case "category":
			if len(args) != 1 {
				printlnFn("Usage: category <name>")
				continue
			}
			cmdErr = a.Category(ctx, args[0])

		case "show":
			if len(args) != 1 {
				printlnFn("Usage: show <id>")
				continue
			}
			cmdErr = a.Show(ctx, args[0])

		case "fav":
			if len(args) != 1 {
				printlnFn("Usage: fav <id>")
				continue
			}
			cmdErr = a.ToggleFavorite(ctx, args[0])

		case "tag":
			if len(args) < 1 {
				printlnFn("Usage: tag <id> <tags...>")
				continue
			}
			cmdErr = a.Tag(ctx, args[0], args[1:])

		case "edit":
			if len(args) != 1 {
				printlnFn("Usage: edit <id>")
				continue
			}
			cmdErr = a.Edit(ctx, args[0])

		case "delete":
			if len(args) != 1 {
				printlnFn("Usage: delete <id>")
				continue
			}
			cmdErr = a.Delete(ctx, args[0])

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <text>")
				continue
			}
			cmdErr = a.Search(ctx, strings.Join(args, " "))

		case "filter":
			if len(args) == 0 {
				printlnFn("Usage: filter <tags...>")
				continue
			}
			cmdErr = a.Filter(ctx, args)

		case "download":
			if len(args) != 2 {
				printlnFn("Usage: download <id> <path>")
				continue
			}
			cmdErr = a.Download(ctx, args[0], args[1])

		case "stats":
			cmdErr = a.Stats(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
	}
}
