package main

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JurmiThinley/jobtrackr/pkg/config"
	"github.com/JurmiThinley/jobtrackr/pkg/db"
	"github.com/JurmiThinley/jobtrackr/pkg/model"
	gormstore "github.com/JurmiThinley/jobtrackr/pkg/server/store/gorm"
)

// userCreateCmd represents the user create command
var userCreateCmd = &cobra.Command{
	Use:   "create <username>",
	Short: "Create a user",
	Long: `Create a user.

If no password is provided with --password, a random one is generated and
printed to stdout.

Example:
  jobtrackrctl user create alice
  jobtrackrctl user create alice --password s3cret`,
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

		if err := createUser(username, password); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Created user '%s'\n", username)
		if generated {
			fmt.Println(password)
		}
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)
	userCreateCmd.Flags().StringP("password", "p", "", "Password for the new user (default: generated)")
}

func generatePassword() (string, error) {
	bytes := make([]byte, 24)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

func createUser(username, password string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}

	user := &model.User{Username: username}
	if err := user.SetPassword(password, cfg.Cost()); err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	return gormstore.NewUsersStore(database).CreateUser(user)
}
