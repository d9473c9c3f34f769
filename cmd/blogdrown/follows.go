package main

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	blogdrown "github.com/blogdrown/blogdrown-go"
)

func init() {
	followCmd := &cobra.Command{
		Use:   "follow USER_ID",
		Short: "Follow an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(func(ctx context.Context, c *blogdrown.Client) error {
				return c.Follow(ctx, args[0])
			})
		},
	}
	rootCmd.AddCommand(followCmd)

	unfollowCmd := &cobra.Command{
		Use:   "unfollow USER_ID",
		Short: "Unfollow an author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(func(ctx context.Context, c *blogdrown.Client) error {
				return c.Unfollow(ctx, args[0])
			})
		},
	}
	rootCmd.AddCommand(unfollowCmd)

	followsCmd := &cobra.Command{
		Use:   "follows",
		Short: "List followed authors",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(func(ctx context.Context, c *blogdrown.Client) error {
				if err := c.RefreshFollows(ctx); err != nil {
					return err
				}
				st := c.Store()
				ids := st.Following()
				sort.Strings(ids)
				for _, uid := range ids {
					if u, ok := st.User(uid); ok {
						fmt.Fprintf(os.Stdout, "%s  %s\n", u.ID, u.Username)
					} else {
						fmt.Fprintln(os.Stdout, uid)
					}
				}
				return nil
			})
		},
	}
	rootCmd.AddCommand(followsCmd)

	feedCmd := &cobra.Command{
		Use:   "feed",
		Short: "List posts from followed authors, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(func(ctx context.Context, c *blogdrown.Client) error {
				if err := c.RefreshFollows(ctx); err != nil {
					return err
				}
				if err := c.RefreshPosts(ctx); err != nil {
					return err
				}
				for _, id := range c.Store().FollowedPostIDs() {
					p, _ := c.Store().Post(id)
					fmt.Fprintf(os.Stdout, "%s  %-30s  by %s\n", p.ID, p.Title, authorName(c, p.OwnerID))
				}
				return nil
			})
		},
	}
	rootCmd.AddCommand(feedCmd)
}
