package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"boardhub/pkg/db"
	"boardhub/pkg/model"
	gormstore "boardhub/pkg/server/store/gorm"
)

// userCreateCmd represents the user create command
var userCreateCmd = &cobra.Command{
	Use:   "create <email>",
	Short: "Create a user account",
	Long: `Create a user account.

The email must be unique. New accounts are active immediately; use
'boardhubctl token generate' to mint a token for the user.

Example:
  boardhubctl user create ada@example.com
  boardhubctl user create ada@example.com --first-name Ada --last-name Lovelace`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		email := args[0]
		firstName, _ := cmd.Flags().GetString("first-name")
		lastName, _ := cmd.Flags().GetString("last-name")

		user, err := createUser(email, firstName, lastName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create user: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Created user %d (%s)\n", user.ID, user.Email)
	},
}

func init() {
	userCmd.AddCommand(userCreateCmd)
	userCreateCmd.Flags().String("first-name", "", "User's first name")
	userCreateCmd.Flags().String("last-name", "", "User's last name")
}

func createUser(email, firstName, lastName string) (*model.User, error) {
	database, err := db.Connect(db.Config{})
	if err != nil {
		return nil, err
	}

	users := gormstore.NewUsersStore(database)

	if _, err := users.FindByEmail(email); err == nil {
		return nil, fmt.Errorf("user '%s' already exists", email)
	}

	user := &model.User{
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		IsActive:  true,
	}
	if err := users.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}
