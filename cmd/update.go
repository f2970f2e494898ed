package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/techniq-app/techniq/internal/selfupdate"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace this binary with the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), 2*time.Minute)
		defer cancel()

		checker := selfupdate.NewChecker(selfupdate.WithTimeout(2 * time.Minute))
		err := checker.Update(ctx,
			&selfupdate.UpdateInput{CurrentVersion: version},
			func(p selfupdate.UpdateProgress) { fmt.Println(p.Message) },
		)

		switch {
		case err == nil:
			return nil
		case errors.Is(err, selfupdate.ErrDevBuild):
			fmt.Println("This is a development build; install a packaged release to use update.")
			return nil
		case errors.Is(err, selfupdate.ErrAlreadyLatest):
			fmt.Println("You are on the latest version.")
			return nil
		case os.IsPermission(err):
			return fmt.Errorf("%w\n\nThe binary is not writable by you. Try: sudo techniq update", err)
		default:
			return err
		}
	},
}
