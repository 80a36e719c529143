// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/canonical/booking-service/internal/types"
)

var emailsCmd = &cobra.Command{
	Use:   "emails",
	Short: "Manage the email allow-list (requires admin verification)",
}

var listEmailsCmd = &cobra.Command{
	Use:   "list",
	Short: "List allowed emails",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp := struct {
			Emails []*types.AllowedEmail `json:"emails"`
		}{}
		if err := newAPIClient().do(context.Background(), "GET", "/admin/emails", nil, &resp); err != nil {
			return fmt.Errorf("failed to list emails: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "EMAIL\tROLE")
		for _, e := range resp.Emails {
			fmt.Fprintf(w, "%s\t%s\n", e.Email, e.Role)
		}
		w.Flush()
		return nil
	},
}

var addEmailCmd = &cobra.Command{
	Use:   "add [email]",
	Short: "Add an email to the allow-list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		role, _ := cmd.Flags().GetString("role")

		body := map[string]string{"email": args[0], "role": role}
		if err := newAPIClient().do(context.Background(), "POST", "/admin/emails", body, nil); err != nil {
			return fmt.Errorf("failed to add email: %w", err)
		}

		fmt.Printf("Email added: %s (%s)\n", args[0], role)
		return nil
	},
}

var setRoleCmd = &cobra.Command{
	Use:   "set-role [email] [role]",
	Short: "Change an allowed email's role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		body := map[string]string{"role": args[1]}
		path := "/admin/emails/" + url.PathEscape(args[0])
		if err := newAPIClient().do(context.Background(), "PATCH", path, body, nil); err != nil {
			return fmt.Errorf("failed to change role: %w", err)
		}

		fmt.Printf("Role changed: %s is now %s\n", args[0], args[1])
		return nil
	},
}

var removeEmailCmd = &cobra.Command{
	Use:   "remove [email]",
	Short: "Remove an email from the allow-list",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "/admin/emails/" + url.PathEscape(args[0])
		if err := newAPIClient().do(context.Background(), "DELETE", path, nil, nil); err != nil {
			return fmt.Errorf("failed to remove email: %w", err)
		}

		fmt.Printf("Email removed: %s\n", args[0])
		return nil
	},
}

func init() {
	addEmailCmd.Flags().String("role", "member", "Role for the new entry (member, admin or super_admin)")

	emailsCmd.AddCommand(listEmailsCmd)
	emailsCmd.AddCommand(addEmailCmd)
	emailsCmd.AddCommand(setRoleCmd)
	emailsCmd.AddCommand(removeEmailCmd)
	rootCmd.AddCommand(emailsCmd)
}
