package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danharves/certsched/internal/cli/formatter"
	"github.com/danharves/certsched/internal/contract"
)

func newGroupsCmd(app *App) *cobra.Command {
	var (
		license    string
		maxSize    int
		minSize    int
		windowDays int
		bufferDays int
	)

	cmd := &cobra.Command{
		Use:   "groups",
		Short: "Partition employees into training groups for a license",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewGroupingRequest(license)

			if cmd.Flags().Changed("max-size") {
				req.Policy.MaxGroupSize = maxSize
			}
			if cmd.Flags().Changed("min-size") {
				req.Policy.MinGroupSize = minSize
			}
			if cmd.Flags().Changed("window") {
				req.Policy.TimeWindowDays = windowDays
			}
			if cmd.Flags().Changed("buffer") {
				req.Policy.ExpiryBufferDays = bufferDays
			}

			resp, err := app.Grouping.BuildGroups(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatGroups(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&license, "license", "", "License id to build groups for")
	cmd.Flags().IntVar(&maxSize, "max-size", 15, "Maximum group size")
	cmd.Flags().IntVar(&minSize, "min-size", 3, "Size below which the expiry window is waived")
	cmd.Flags().IntVar(&windowDays, "window", 90, "Maximum days-until-expiry spread within a group")
	cmd.Flags().IntVar(&bufferDays, "buffer", 30, "Days a session must precede a member's expiry")
	_ = cmd.MarkFlagRequired("license")

	return cmd
}
