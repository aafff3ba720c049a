package cmd

import (
	"context"
	"os"
	"sync"

	"github.com/pmatchdesk/go-cabinet-sync/cmd/setup"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/graceful"
	"github.com/pmatchdesk/go-cabinet-sync/internal/common/log"
	syncorderqueue "github.com/pmatchdesk/go-cabinet-sync/internal/deliveries/consumer/sync_order_queue"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "consumer",
	Short: "Consumer is a consumer application for handling queued sync order tasks",
	Long:  ``,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(runConsumerCmd)

	runConsumerCmd.Flags().StringP(runConsumerCmdName, "n", "sync-order", "consumer name")
}

var (
	runConsumerCmd = &cobra.Command{
		Use:     "run",
		Short:   "Run consumer",
		Long:    `Run consumer for handling queued sync order tasks, available consumer type: sync-order`,
		Example: "consumer run -n={consumer-type-name}",
		Run:     runConsumer,
	}
	runConsumerCmdName = "name"
)

func runConsumer(ccmd *cobra.Command, args []string) {
	var (
		ctx      = context.Background()
		starters []graceful.ProcessStarter
		stoppers []graceful.ProcessStopper
	)

	consumerName, _ := ccmd.Flags().GetString(runConsumerCmdName)

	s, stopperContract, err := setup.Init("consumer-" + consumerName)
	if err != nil {
		log.Fatalf(ctx, "failed to setup app: %v", err)
	}

	var consumerProcess graceful.ProcessStartStopper
	switch consumerName {
	case "sync-order":
		consumerProcess, err = syncorderqueue.New(ctx, s.Config, s.Service.Sync, s.Metrics)
	default:
		log.Fatalf(ctx, "unknown consumer type: %s", consumerName)
	}
	if err != nil {
		log.Fatalf(ctx, "failed to setup consumer: %v", err)
	}

	starters = append(starters, consumerProcess.Start())
	stoppers = append(stoppers, consumerProcess.Stop())
	stoppers = append(stoppers, stopperContract...)

	wg := new(sync.WaitGroup)
	wg.Add(1)
	go func() {
		graceful.StartProcessAtBackground(starters...)
		graceful.StopProcessAtBackground(s.Config.App.GracefulTimeout, stoppers...)
		wg.Done()
	}()
	wg.Wait()
	log.Infof(ctx, "consumer %s stopped!", consumerName)
}
