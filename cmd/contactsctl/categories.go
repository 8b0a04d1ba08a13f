package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/satheeshds/contacts/models"
)

func newCategoriesCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "categories",
		Aliases: []string{"category"},
		Short:   "Manage categories",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			categories, err := opts.client().ListCategories(cmd.Context())
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME")
			for _, c := range categories {
				fmt.Fprintf(tw, "%s\t%s\n", c.ID, c.Name)
			}
			return tw.Flush()
		},
	}

	create := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client().CreateCategory(cmd.Context(), models.CategoryInput{Name: args[0]})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}

	update := &cobra.Command{
		Use:   "update ID NAME",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client().UpdateCategory(cmd.Context(), args[0], models.CategoryInput{Name: args[1]})
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}

	del := &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a category that has no contacts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl := opts.client()
			return deleteWithFallback(cmd, "category "+args[0], func(ctx context.Context) error {
				return cl.DeleteCategory(ctx, args[0])
			})
		},
	}

	contacts := &cobra.Command{
		Use:   "contacts ID",
		Short: "List the contacts in a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := opts.client().ListContactsByCategory(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printContacts(cmd, list)
			return nil
		},
	}

	cmd.AddCommand(list, create, update, del, contacts)
	return cmd
}
