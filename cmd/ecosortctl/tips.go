package main

import (
	"fmt"
	"net/url"
	"os"

	"github.com/spf13/cobra"
)

func init() {
	var wasteType string
	tipsCmd := &cobra.Command{
		Use:   "tips",
		Short: "List recycling tips",
		RunE: func(cmd *cobra.Command, args []string) error {
			u := fmt.Sprintf("%s/api/tips", apiFlag)
			if wasteType != "" {
				u += "?wasteType=" + url.QueryEscape(wasteType)
			}
			data, err := doGet(u)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	tipsCmd.Flags().StringVarP(&wasteType, "type", "t", "", "Filter by waste type (organic, plastic, glass, paper, electronic, metal, other)")
	rootCmd.AddCommand(tipsCmd)

	rewardsCmd := &cobra.Command{
		Use:   "rewards",
		Short: "List active rewards",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := doGet(fmt.Sprintf("%s/api/rewards", apiFlag))
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(os.Stdout, string(data))
			return nil
		},
	}
	rootCmd.AddCommand(rewardsCmd)
}
