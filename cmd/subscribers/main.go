package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blloydimmunology/Portfolio/pkg/config"
	"github.com/blloydimmunology/Portfolio/pkg/services"
)

// Maintenance tool for the mailing list: inspect or edit the subscriber
// file directly, without going through the running site.

func main() {
	rootCmd := &cobra.Command{
		Use:           "subscribers",
		Short:         "Manage the subscriber mailing list",
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	store := func() *services.SubscriberStore {
		return services.NewSubscriberStore(config.Load().SubscribersFile)
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print all subscribers",
		RunE: func(cmd *cobra.Command, args []string) error {
			subscribers, err := store().List()
			if err != nil {
				return err
			}
			fmt.Printf("\nTotal Subscribers: %d\n\n", len(subscribers))
			for i, email := range subscribers {
				fmt.Printf("%d. %s\n", i+1, email)
			}
			return nil
		},
	}

	addCmd := &cobra.Command{
		Use:   "add <email>",
		Short: "Add a subscriber",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store().Add(args[0]); err != nil {
				return err
			}
			fmt.Println("Added:", args[0])
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove <email>",
		Short: "Remove a subscriber",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := store().Remove(args[0]); err != nil {
				return err
			}
			fmt.Println("Removed:", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(listCmd, addCmd, removeCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
