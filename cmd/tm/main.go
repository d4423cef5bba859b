package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/cmds"
	"github.com/reusee/turing/modes"
	"github.com/reusee/turing/servers"
)

var serveMode bool

func init() {
	cmds.Define("serve", cmds.Func(func() {
		serveMode = true
	}).Desc("serve runs over HTTP"))
}

func main() {
	cmds.Execute(os.Args[1:])

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	if serveMode {
		scope.Call(func(
			serve servers.Serve,
		) {
			ce(serve(ctx))
		})
		return
	}

	if len(*files) == 0 {
		fmt.Fprintln(os.Stderr, "-file <description> is required")
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	}

	scope.Call(func(
		execute Execute,
	) {
		ce(execute(ctx, os.Stdout))
	})
}

func ce(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
