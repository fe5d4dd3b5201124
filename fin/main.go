// Command fin is an interactive bookkeeping console. All state lives in
// memory for the duration of the session.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"

	"github.com/hqnguyen/finbook"
	"github.com/hqnguyen/finbook/cmd"
)

func main() {
	// Optional: FINBOOK_PLAIN and friends can come from a .env file.
	godotenv.Load()

	book := finbook.NewBook()

	// With arguments, run a single command and exit.
	if len(os.Args) > 1 {
		os.Exit(int(run(book, os.Args[1:])))
	}

	fmt.Println("fin - bookkeeping session. Type 'help' for commands, 'quit' to leave.")
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		args, err := cmd.SplitArgs(line)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		run(book, args)
	}
}

// run dispatches one command line against the shared book. Each call gets a
// fresh commander so per-command flag state never leaks between lines.
func run(book *finbook.Book, args []string) subcommands.ExitStatus {
	fs := flag.NewFlagSet(path.Base(os.Args[0]), flag.ContinueOnError)
	commander := subcommands.NewCommander(fs, fs.Name())
	cmd.Register(commander, book)
	if err := fs.Parse(args); err != nil {
		return subcommands.ExitUsageError
	}
	return commander.Execute(context.Background())
}
