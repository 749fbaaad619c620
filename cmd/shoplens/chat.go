package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shoplens/shoplens/internal/usecase/pipeline"
)

func newChatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Interactive question-answering session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runChat(a)
		},
	}
}

func runChat(a *app) error {
	if err := a.connect(); err != nil {
		return err
	}

	svc, _ := a.newPipeline()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("shoplens interactive mode. Ask about products, gifts, or business performance.")
	fmt.Println("Type 'quit' to exit.")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		if ctx.Err() != nil {
			break
		}

		question := strings.TrimSpace(scanner.Text())
		if question == "" {
			continue
		}
		switch strings.ToLower(question) {
		case "quit", "exit", "q":
			fmt.Println("Goodbye!")
			return nil
		}

		resp, err := svc.Answer(ctx, question, pipeline.Options{})
		if err != nil {
			// One failed question must not end the session.
			a.logger.Error("query failed", zap.Error(err))
			fmt.Printf("Sorry, something went wrong: %v\n", err)
			continue
		}

		printResponse(resp)
	}

	return scanner.Err()
}
