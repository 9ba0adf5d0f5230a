package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/todo/internal/cli"
	"github.com/alexanderramin/todo/internal/repository"
	"github.com/alexanderramin/todo/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "An error occurred: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// The store lives next to wherever the tool is invoked.
	store := repository.NewJSONFileStore(repository.DefaultFileName)

	var opts []service.Option
	if os.Getenv("TODO_DEBUG") == "1" {
		opts = append(opts, service.WithObserver(service.NewLogUseCaseObserver(os.Stderr)))
	}

	list, err := service.NewTodoList(ctx, store, opts...)
	if err != nil {
		return fmt.Errorf("opening todo store: %w", err)
	}

	app := &cli.App{
		List:        list,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()),
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
