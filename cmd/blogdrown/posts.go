package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	blogdrown "github.com/blogdrown/blogdrown-go"
)

func authorName(c *blogdrown.Client, ownerID string) string {
	if u, ok := c.Store().User(ownerID); ok {
		return u.Username
	}
	return ownerID
}

func init() {
	postsCmd := &cobra.Command{Use: "posts", Short: "Post operations"}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List all posts, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(func(ctx context.Context, c *blogdrown.Client) error {
				if err := c.RefreshPosts(ctx); err != nil {
					return err
				}
				for _, id := range c.Store().NewestPostIDs() {
					p, _ := c.Store().Post(id)
					fmt.Fprintf(os.Stdout, "%s  %-30s  by %s\n", p.ID, p.Title, authorName(c, p.OwnerID))
				}
				return nil
			})
		},
	}
	postsCmd.AddCommand(listCmd)

	var raw bool
	readCmd := &cobra.Command{
		Use:   "read POST_ID",
		Short: "Read one post with its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(func(ctx context.Context, c *blogdrown.Client) error {
				if err := c.FetchPost(ctx, args[0]); err != nil {
					return err
				}
				p, ok := c.Store().Post(args[0])
				if !ok {
					return fmt.Errorf("post %s not in cache after fetch", args[0])
				}

				fmt.Fprintf(os.Stdout, "# %s\nby %s, updated %s\n\n", p.Title, authorName(c, p.OwnerID), p.UpdatedAt)
				body := p.Text
				if !raw {
					html, err := c.RenderMarkdown(p.Text)
					if err != nil {
						return err
					}
					body = html
				}
				fmt.Fprintln(os.Stdout, body)

				for _, cid := range c.Store().CommentIDsForPost(p.ID) {
					cm, _ := c.Store().Comment(cid)
					fmt.Fprintf(os.Stdout, "---\n[%s] %s: %s\n", cm.ID, authorName(c, cm.AuthorID), cm.Text)
				}
				return nil
			})
		},
	}
	readCmd.Flags().BoolVar(&raw, "raw", false, "Print raw markdown instead of HTML")
	postsCmd.AddCommand(readCmd)

	var title, body string
	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new post",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(func(ctx context.Context, c *blogdrown.Client) error {
				if err := c.FetchSession(ctx); err != nil {
					return err
				}
				post, err := c.CreatePost(ctx, blogdrown.NewPostRequest{Title: title, Body: body})
				if err != nil {
					return err
				}
				fmt.Fprintf(os.Stdout, "created %s (%s)\n", post.ID, post.NormalizedTitle)
				return nil
			})
		},
	}
	createCmd.Flags().StringVarP(&title, "title", "t", "", "Post title (required)")
	createCmd.Flags().StringVarP(&body, "body", "b", "", "Post body markdown (required)")
	_ = createCmd.MarkFlagRequired("title")
	_ = createCmd.MarkFlagRequired("body")
	postsCmd.AddCommand(createCmd)

	editCmd := &cobra.Command{
		Use:   "edit POST_ID",
		Short: "Replace a post's body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(func(ctx context.Context, c *blogdrown.Client) error {
				if err := c.UpdatePost(ctx, args[0], body); err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, "updated")
				return nil
			})
		},
	}
	editCmd.Flags().StringVarP(&body, "body", "b", "", "Replacement body markdown (required)")
	_ = editCmd.MarkFlagRequired("body")
	postsCmd.AddCommand(editCmd)

	deleteCmd := &cobra.Command{
		Use:   "delete POST_ID",
		Short: "Delete a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(func(ctx context.Context, c *blogdrown.Client) error {
				if err := c.DeletePost(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintln(os.Stdout, "deleted")
				return nil
			})
		},
	}
	postsCmd.AddCommand(deleteCmd)

	authorCmd := &cobra.Command{
		Use:   "author AUTHOR_ID",
		Short: "List an author's posts, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithClient(func(ctx context.Context, c *blogdrown.Client) error {
				if err := c.RefreshPosts(ctx); err != nil {
					return err
				}
				for _, id := range c.Store().PostIDsByAuthor(args[0]) {
					p, _ := c.Store().Post(id)
					fmt.Fprintf(os.Stdout, "%s  %s\n", p.ID, p.Title)
				}
				return nil
			})
		},
	}
	postsCmd.AddCommand(authorCmd)

	rootCmd.AddCommand(postsCmd)
}
