package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/satheeshds/contacts/client"
	"github.com/satheeshds/contacts/models"
)

type contactFlags struct {
	name, surname, bio, phone, email, address, category string
}

func (f *contactFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "first name")
	cmd.Flags().StringVar(&f.surname, "surname", "", "surname")
	cmd.Flags().StringVar(&f.bio, "bio", "", "short biography")
	cmd.Flags().StringVar(&f.phone, "phone", "", "phone number, digits with an optional leading +")
	cmd.Flags().StringVar(&f.email, "email", "", "email address")
	cmd.Flags().StringVar(&f.address, "address", "", "postal address")
	cmd.Flags().StringVar(&f.category, "category", "", "category ID")
}

// input builds a request body from base, overriding the fields whose flag
// was set on the command line.
func (f *contactFlags) input(cmd *cobra.Command, base models.Contact) models.ContactInput {
	changed := cmd.Flags().Changed
	pick := func(flag, cur, val string) string {
		if changed(flag) {
			return val
		}
		return cur
	}
	address := pick("address", base.Address, f.address)
	return models.ContactInput{
		Name:        pick("name", base.Name, f.name),
		Surname:     pick("surname", base.Surname, f.surname),
		Bio:         pick("bio", base.Bio, f.bio),
		PhoneNumber: pick("phone", base.PhoneNumber, f.phone),
		Email:       pick("email", base.Email, f.email),
		Address:     &address,
		CategoryID:  pick("category", base.CategoryID, f.category),
	}
}

func newContactsCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "contacts",
		Aliases: []string{"contact"},
		Short:   "Manage contacts",
	}
	cmd.AddCommand(
		newContactsListCmd(opts),
		newContactsGetCmd(opts),
		newContactsCreateCmd(opts),
		newContactsUpdateCmd(opts),
		newContactsDeleteCmd(opts),
	)
	return cmd
}

func newContactsListCmd(opts *options) *cobra.Command {
	var categories []string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts, optionally only those in the given categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			contacts, err := opts.client().ListContacts(cmd.Context())
			if err != nil {
				return err
			}
			printContacts(cmd, client.FilterByCategory(contacts, categories...))
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&categories, "category", nil, "category ID to include (repeatable)")
	return cmd
}

func newContactsGetCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get ID",
		Short: "Show one contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := opts.client().GetContact(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}
}

func newContactsCreateCmd(opts *options) *cobra.Command {
	var f contactFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := opts.client().CreateContact(cmd.Context(), f.input(cmd, models.Contact{}))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}
	f.register(cmd)
	return cmd
}

func newContactsUpdateCmd(opts *options) *cobra.Command {
	var f contactFlags
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a contact; fields without a flag keep their current value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl := opts.client()
			current, err := cl.GetContact(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			c, err := cl.UpdateContact(cmd.Context(), args[0], f.input(cmd, current))
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), c)
		},
	}
	f.register(cmd)
	return cmd
}

func newContactsDeleteCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cl := opts.client()
			return deleteWithFallback(cmd, "contact "+args[0], func(ctx context.Context) error {
				return cl.DeleteContact(ctx, args[0])
			})
		},
	}
}

func printContacts(cmd *cobra.Command, contacts []models.Contact) {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tSURNAME\tPHONE\tEMAIL\tCATEGORY")
	for _, c := range contacts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", c.ID, c.Name, c.Surname, c.PhoneNumber, c.Email, c.CategoryID)
	}
	tw.Flush()
}
