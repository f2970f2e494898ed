package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var feedCmd = &cobra.Command{
	Use:   "feed",
	Short: "View the activity feed",
}

var feedListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent feed posts",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svcs := buildServices(st)
		posts, err := svcs.feed.Recent(context.Background(), limit)
		if err != nil {
			return err
		}
		if len(posts) == 0 {
			fmt.Println("Nothing here yet. Go train!")
			return nil
		}

		for _, p := range posts {
			likes := ""
			if p.Likes > 0 {
				likes = fmt.Sprintf("  ♥ %d", p.Likes)
			}
			fmt.Printf("%s  [%s]  %s%s\n    id: %s\n",
				p.CreatedAt.Local().Format("Jan 2 15:04"), p.Kind, p.Body, likes, p.PostID)
		}
		return nil
	},
}

var feedLikeCmd = &cobra.Command{
	Use:   "like <post-id>",
	Short: "Like a feed post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svcs := buildServices(st)
		likes, err := svcs.feed.Like(context.Background(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("♥ %d\n", likes)
		return nil
	},
}

func init() {
	feedListCmd.Flags().IntP("limit", "n", 20, "Number of posts to show")

	feedCmd.AddCommand(feedListCmd)
	feedCmd.AddCommand(feedLikeCmd)
}
