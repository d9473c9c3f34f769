package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	blogdrown "github.com/blogdrown/blogdrown-go"
)

func init() {
	commentsCmd := &cobra.Command{Use: "comments", Short: "Comment operations"}

	var body string
	addCmd := &cobra.Command{
		Use:   "add POST_ID",
		Short: "Comment on a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(func(ctx context.Context, c *blogdrown.Client) error {
				if err := c.FetchSession(ctx); err != nil {
					return err
				}
				comment, err := c.CreateComment(ctx, args[0], body)
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "comment %s added\n", comment.ID)
				return nil
			})
		},
	}
	addCmd.Flags().StringVarP(&body, "body", "b", "", "Comment body (required)")
	_ = addCmd.MarkFlagRequired("body")
	commentsCmd.AddCommand(addCmd)

	editCmd := &cobra.Command{
		Use:   "edit COMMENT_ID",
		Short: "Replace a comment's body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(func(ctx context.Context, c *blogdrown.Client) error {
				if err := c.UpdateComment(ctx, args[0], body); err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, "updated")
				return nil
			})
		},
	}
	editCmd.Flags().StringVarP(&body, "body", "b", "", "Replacement body (required)")
	_ = editCmd.MarkFlagRequired("body")
	commentsCmd.AddCommand(editCmd)

	rmCmd := &cobra.Command{
		Use:   "rm COMMENT_ID",
		Short: "Delete a comment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(func(ctx context.Context, c *blogdrown.Client) error {
				if err := c.DeleteComment(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, "deleted")
				return nil
			})
		},
	}
	commentsCmd.AddCommand(rmCmd)

	rootCmd.AddCommand(commentsCmd)
}
