package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/techniq-app/techniq/internal/achievements"
	"github.com/techniq-app/techniq/internal/app"
	"github.com/techniq-app/techniq/internal/economy"
	"github.com/techniq-app/techniq/internal/feed"
	"github.com/techniq-app/techniq/internal/progression"
	"github.com/techniq-app/techniq/internal/shop"
	"github.com/techniq-app/techniq/internal/store"
	"github.com/techniq-app/techniq/internal/training"
)

// runApp opens the store and launches the TUI.
func runApp(cmd *cobra.Command) error {
	st, err := openStore(cmd)
	if err != nil {
		return err
	}
	defer st.Close()

	return app.Run(st)
}

// services bundles the domain services the CLI commands need.
type services struct {
	economy  *economy.Service
	ledger   *progression.Ledger
	training *training.Service
	shop     *shop.Service
	feed     *feed.Service
}

// buildServices wires the domain services over an open store. The ledger
// anchors streak and first-of-day decisions to the machine's local timezone.
func buildServices(st *store.Store) services {
	players := st.PlayerRepo()
	events := st.EventRepo()

	econ := economy.NewService(players, events)
	ledger := progression.NewLedger(players, econ, time.Local)
	ach := achievements.NewService(players, events, econ)
	feedSvc := feed.NewService(st.FeedRepo())

	return services{
		economy:  econ,
		ledger:   ledger,
		training: training.NewService(events, ledger, ach, feedSvc),
		shop:     shop.NewService(players, econ),
		feed:     feedSvc,
	}
}
