package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/techniq-app/techniq/internal/llm"
	"github.com/techniq-app/techniq/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect recorded LLM traffic",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM calls",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(context.Background(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("list llm events: %w", err)
		}
		if purpose != "" {
			kept := events[:0]
			for _, e := range events {
				if e.Purpose == purpose {
					kept = append(kept, e)
				}
			}
			events = kept
		}
		if len(events) == 0 {
			fmt.Println("No LLM calls recorded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tWHEN\tPURPOSE\tMODEL\tIN\tOUT\tMS\tOK")
		for _, e := range events {
			status := "yes"
			if !e.Success {
				status = "no"
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%d\t%s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04"),
				e.Purpose,
				clip(e.Model, 32),
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				status,
			)
		}
		return w.Flush()
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one LLM call in full, bodies included",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("event ID must be a number, got %q", args[0])
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.EventRepo().GetLLMEvent(context.Background(), id)
		if err != nil {
			return fmt.Errorf("load llm event: %w", err)
		}
		if e == nil {
			return fmt.Errorf("no LLM event with ID %d", id)
		}

		fmt.Printf("ID:       %d\n", e.ID)
		fmt.Printf("When:     %s\n", e.Timestamp.Local().Format("2006-01-02 15:04:05"))
		fmt.Printf("Provider: %s\n", e.Provider)
		fmt.Printf("Model:    %s\n", e.Model)
		fmt.Printf("Purpose:  %s\n", e.Purpose)
		fmt.Printf("Tokens:   %d in, %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Printf("Latency:  %dms\n", e.LatencyMs)
		if !e.Success {
			fmt.Printf("Failed:   %s\n", e.ErrorMessage)
		}
		printBody("REQUEST", e.RequestBody)
		printBody("RESPONSE", e.ResponseBody)
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Aggregate token usage and estimated spend",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		byPurpose, err := s.EventRepo().LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("aggregate usage: %w", err)
		}
		if len(byPurpose) == 0 {
			fmt.Println("Nothing recorded yet.")
			return nil
		}

		fmt.Println("Usage by purpose")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PURPOSE\tCALLS\tIN\tOUT\tTOTAL\tAVG MS")
		var calls, in, out int
		for _, u := range byPurpose {
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%d\t%d\n",
				u.Purpose, u.Calls, u.InputTokens, u.OutputTokens,
				u.InputTokens+u.OutputTokens, u.AvgLatencyMs)
			calls += u.Calls
			in += u.InputTokens
			out += u.OutputTokens
		}
		fmt.Fprintf(w, "total\t%d\t%d\t%d\t%d\t\n", calls, in, out, in+out)
		if err := w.Flush(); err != nil {
			return err
		}

		byModel, err := s.EventRepo().LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("aggregate model usage: %w", err)
		}
		if len(byModel) == 0 {
			return nil
		}

		fmt.Println()
		fmt.Println("Estimated spend (USD)")
		w = tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MODEL\tCALLS\tIN\tOUT\tCOST")
		var spend float64
		var unpriced []string
		for _, mu := range byModel {
			price := llm.LookupCost(mu.Model)
			if price == nil {
				unpriced = append(unpriced, mu.Model)
				fmt.Fprintf(w, "%s\t%d\t%d\t%d\t?\n",
					clip(mu.Model, 36), mu.Calls, mu.InputTokens, mu.OutputTokens)
				continue
			}
			c := price.Cost(mu.InputTokens, mu.OutputTokens)
			spend += c
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n",
				clip(mu.Model, 36), mu.Calls, mu.InputTokens, mu.OutputTokens, dollars(c))
		}
		total := "total"
		if len(unpriced) > 0 {
			total = "total (partial)"
		}
		fmt.Fprintf(w, "%s\t\t\t\t%s\n", total, dollars(spend))
		if err := w.Flush(); err != nil {
			return err
		}
		if len(unpriced) > 0 {
			fmt.Printf("\nNo pricing data for: %s\n", strings.Join(unpriced, ", "))
		}
		return nil
	},
}

func printBody(label, body string) {
	rule := strings.Repeat("-", 60)
	fmt.Println()
	fmt.Println(rule)
	fmt.Println(label)
	fmt.Println(rule)
	if body == "" {
		fmt.Println("(not captured)")
		return
	}
	fmt.Println(body)
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func dollars(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Max calls to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Only show calls tagged with this purpose")

	llmCmd.AddCommand(llmListCmd, llmViewCmd, llmStatsCmd)
}
