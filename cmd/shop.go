package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	shopsvc "github.com/techniq-app/techniq/internal/shop"
)

var shopCmd = &cobra.Command{
	Use:   "shop",
	Short: "Browse and buy from the coin shop",
}

var shopListCmd = &cobra.Command{
	Use:   "list",
	Short: "List shop items",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := context.Background()
		svcs := buildServices(st)

		p, err := st.PlayerRepo().Load(ctx)
		if err != nil {
			return fmt.Errorf("load player: %w", err)
		}

		fmt.Printf("Balance: %d coins", p.CoinBalance)
		if p.StreakFreezes > 0 {
			fmt.Printf("  ·  %d freeze(s) banked", p.StreakFreezes)
		}
		fmt.Println()
		fmt.Println(strings.Repeat("─", 52))

		for _, item := range shopsvc.Catalog() {
			owned, err := svcs.shop.Owned(ctx, item.ID)
			if err != nil {
				return err
			}
			marker := " "
			if owned {
				marker = "✓"
			}
			fmt.Printf("%s %-16s  %-16s  %5d coins\n", marker, item.ID, item.Name, item.Price)
		}
		return nil
	},
}

var shopBuyCmd = &cobra.Command{
	Use:   "buy <item-id>",
	Short: "Buy a shop item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		svcs := buildServices(st)
		receipt, err := svcs.shop.Purchase(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Bought %s for %d coins. Balance: %d\n",
			receipt.Item.Name, receipt.Item.Price, receipt.Balance)
		return nil
	},
}

func init() {
	shopCmd.AddCommand(shopListCmd)
	shopCmd.AddCommand(shopBuyCmd)
}
