package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/duquediazn/tabulae-client/internal/domain/models"
)

func loginCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Log in and verify the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if a.email == "" || a.password == "" {
				return fmt.Errorf("--email and --password are required")
			}

			sess, err := a.sessions.Login(cmd.Context(), a.email, a.password)
			if err != nil {
				return err
			}

			fmt.Printf("Logged in as %s (%s)\n", sess.Profile.Name, sess.Profile.Role)
			return nil
		},
	}
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Invalidate the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			a.sessions.Bootstrap(cmd.Context())
			a.sessions.Logout(cmd.Context())
			fmt.Println("Logged out")
			return nil
		},
	}
}

func registerCmd(a *app) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account (inactive until an admin approves it)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" || a.email == "" || a.password == "" {
				return fmt.Errorf("--name, --email and --password are required")
			}

			user, err := a.api.Auth.Register(cmd.Context(), models.RegisterRequest{
				Name:     name,
				Email:    a.email,
				Password: a.password,
			})
			if err != nil {
				return err
			}

			fmt.Printf("Registered %s (id %d); an administrator must activate the account\n", user.Email, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Full name")
	return cmd
}

func profileCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "profile",
		Short: "Show the authenticated user's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureSession(cmd.Context()); err != nil {
				return err
			}

			sess := a.sessions.Session()
			p := sess.Profile
			fmt.Printf("ID:     %d\nName:   %s\nEmail:  %s\nRole:   %s\nActive: %t\n",
				p.ID, p.Name, p.Email, p.Role, p.IsActive)
			return nil
		},
	}
}
