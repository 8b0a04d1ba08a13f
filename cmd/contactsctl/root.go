package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/satheeshds/contacts/client"
)

const defaultAPI = "http://localhost:5000/api"

type options struct {
	api     string
	timeout time.Duration
}

func (o *options) client() *client.Client {
	return client.New(o.api, o.timeout)
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "contactsctl",
		Short:         "Manage contacts and categories",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.api, "api", defaultAPI, "base URL of the contacts API")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")

	cmd.AddCommand(newContactsCmd(opts), newCategoriesCmd(opts))
	return cmd
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// deleteWithFallback runs del once. A category still in use only produces a
// warning. Any other failure asks for confirmation and retries once.
func deleteWithFallback(cmd *cobra.Command, what string, del func(context.Context) error) error {
	ctx := cmd.Context()
	err := del(ctx)
	if err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", what)
		return nil
	}
	if client.IsConflict(err) {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %s was not deleted: %v\n", what, err)
		return nil
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "deleting %s failed: %v\nretry? [y/N] ", what, err)
	answer, _ := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
	default:
		return err
	}
	if err := del(ctx); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", what)
	return nil
}
