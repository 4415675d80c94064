package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"folio/internal/auth"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Unlock the admin session",
	Long: `Unlock the admin session by entering the admin password. The unlocked
state persists in the local state store until "folio-cli logout".

The password is checked against a bcrypt hash shipped with the tool
(FOLIO_ADMIN_HASH); this gate prevents accidental edits, nothing more.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()

		if gate.State() == auth.Unlocked {
			fmt.Println("Admin session already unlocked")
			return nil
		}
		if gate.State() == auth.Locked {
			gate.Toggle()
		}

		fmt.Fprint(os.Stderr, "Password: ")
		reader := bufio.NewReader(os.Stdin)
		password, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("reading password: %w", err)
		}
		password = strings.TrimRight(password, "\r\n")

		ok, err := gate.Submit(ctx, password)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%s", gate.UserError())
		}

		fmt.Println("Admin session unlocked")
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Lock the admin session",
	RunE: func(cmd *cobra.Command, args []string) error {
		gate.Logout()
		fmt.Println("Admin session locked")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
