package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/tomz197/skyraid/internal/config"
	"github.com/tomz197/skyraid/internal/loop/client"
)

func main() {
	// The terminal belongs to the game, so logs only go to a file if asked.
	var logOut io.Writer = io.Discard
	if path := config.GetEnv(config.EnvLogFile, ""); path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logOut = f
	}
	logger := config.NewLogger(logOut, "skyraid")

	rules, err := config.Resolve(config.GetEnv(config.EnvRules, ""))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load rules: %v\n", err)
		os.Exit(1)
	}

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c, err := client.NewClient(bufio.NewReader(os.Stdin), os.Stdout, client.ClientOptions{
		Rules:  rules,
		Logger: logger,
	})
	if err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("game started", "variant", rules.Variant)
	if err := c.Run(ctx); err != nil {
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}
