package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	blogdrown "github.com/blogdrown/blogdrown-go"
)

func init() {
	var email, username, password string

	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with email and password",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(func(ctx context.Context, c *blogdrown.Client) error {
				user, err := c.Login(ctx, blogdrown.LoginRequest{Email: email, Password: password})
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "logged in as %s\n", user.Username)
				return nil
			})
		},
	}
	loginCmd.Flags().StringVarP(&email, "email", "e", "", "Account email (required)")
	loginCmd.Flags().StringVarP(&password, "password", "p", "", "Account password (required)")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)

	signupCmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and log in",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(func(ctx context.Context, c *blogdrown.Client) error {
				user, err := c.Signup(ctx, blogdrown.SignupRequest{Email: email, Username: username, Password: password})
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "welcome, %s\n", user.Username)
				return nil
			})
		},
	}
	signupCmd.Flags().StringVarP(&email, "email", "e", "", "Account email (required)")
	signupCmd.Flags().StringVarP(&username, "username", "u", "", "Username (required)")
	signupCmd.Flags().StringVarP(&password, "password", "p", "", "Account password (required)")
	_ = signupCmd.MarkFlagRequired("email")
	_ = signupCmd.MarkFlagRequired("username")
	_ = signupCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(signupCmd)

	logoutCmd := &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(func(ctx context.Context, c *blogdrown.Client) error {
				if err := c.Logout(ctx); err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, "logged out")
				return nil
			})
		},
	}
	rootCmd.AddCommand(logoutCmd)

	whoamiCmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session user",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(func(ctx context.Context, c *blogdrown.Client) error {
				if err := c.FetchSession(ctx); err != nil {
					return err
				}
				user, _ := c.Store().SessionUser()
				fmt.Fprintf(os.Stdout, "%s <%s>\n", user.Username, user.Email)
				return nil
			})
		},
	}
	rootCmd.AddCommand(whoamiCmd)
}
