package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shoplens/shoplens/internal/usecase/pipeline"
)

func newQueryCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "query <question>",
		Short: "Answer a single question and exit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd.Context(), a, args[0], asJSON)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full response envelope as JSON")
	return cmd
}

func runQuery(ctx context.Context, a *app, question string, asJSON bool) error {
	if err := a.connect(); err != nil {
		return err
	}

	svc, _ := a.newPipeline()

	resp, err := svc.Answer(ctx, question, pipeline.Options{})
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	printResponse(resp)
	return nil
}

func printResponse(resp pipeline.Response) {
	fmt.Println(resp.Answer)
	fmt.Printf("\n[%s] %d sources, response time: %.1fs\n",
		resp.Intent, len(resp.Sources), resp.TotalTime)
}
