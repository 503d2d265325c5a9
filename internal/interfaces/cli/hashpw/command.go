package hashpw

import (
	"fmt"

	"github.com/spf13/cobra"

	"gantry/internal/infrastructure/auth"
)

// NewCommand hashes an admin password for the auth.admin.password_hash
// config field.
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Generate a bcrypt hash for the admin password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}
