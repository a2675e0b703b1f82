package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"

	"github.com/JurmiThinley/jobtrackr/pkg/config"
	"github.com/JurmiThinley/jobtrackr/pkg/db"
	gormstore "github.com/JurmiThinley/jobtrackr/pkg/server/store/gorm"
)

// userResetPasswordCmd represents the user reset-password command
var userResetPasswordCmd = &cobra.Command{
	Use:   "reset-password <username>",
	Short: "Reset a user's password",
	Long: `Reset the password for a user.

If no password is provided with --password, a random one is generated and
printed to stdout. Existing bearer tokens stay valid until they expire.

Example:
  jobtrackrctl user reset-password alice`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		username := args[0]
		password, _ := cmd.Flags().GetString("password")

		generated := password == ""
		if generated {
			var err error
			password, err = generatePassword()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to generate password: %v\n", err)
				os.Exit(1)
			}
		}

		if err := resetPassword(username, password); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to reset password for %s: %v\n", username, err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Reset password for '%s'\n", username)
		if generated {
			fmt.Println(password)
		}
	},
}

func init() {
	userCmd.AddCommand(userResetPasswordCmd)
	userResetPasswordCmd.Flags().StringP("password", "p", "", "New password (default: generated)")
}

func resetPassword(username, password string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), cfg.Cost())
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return gormstore.NewUsersStore(database).UpdatePassword(username, string(hash))
}
