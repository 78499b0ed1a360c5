package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	var limit int
	leaderboardCmd := &cobra.Command{
		Use:   "leaderboard",
		Short: "Show the points leaderboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := fmt.Sprintf("%s/api/leaderboard?limit=%d", apiFlag, limit)
			data, err := doGet(url)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	leaderboardCmd.Flags().IntVarP(&limit, "limit", "l", 10, "Number of entries")
	rootCmd.AddCommand(leaderboardCmd)

	profileCmd := &cobra.Command{
		Use:   "profile",
		Short: "Show the caller's profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			url := fmt.Sprintf("%s/api/profile", apiFlag)
			data, err := doGet(url)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(profileCmd)
}
