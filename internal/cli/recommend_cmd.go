package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/danharves/certsched/internal/cli/formatter"
	"github.com/danharves/certsched/internal/contract"
	"github.com/danharves/certsched/internal/domain"
)

func newRecommendCmd(app *App) *cobra.Command {
	var (
		course       string
		budget       float64
		maxDistance  float64
		lat, lng     float64
		startDate    string
		endDate      string
		participants int
		maxResults   int
		styles       []string
		required     []string
		excluded     []string
		urgency      string
	)

	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Rank training providers for a course under the given constraints",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.NewRecommendRequest(course)
			req.MaxResults = maxResults
			c := &req.Constraints

			if cmd.Flags().Changed("budget") {
				c.MaxBudget = &budget
			}
			if cmd.Flags().Changed("max-distance") {
				c.MaxTravelDistanceKm = &maxDistance
			}
			if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lng") {
				c.PreferredLocation = &domain.GeoPoint{Lat: lat, Lng: lng}
			}
			if cmd.Flags().Changed("participants") {
				c.MaxParticipants = &participants
			}
			if startDate != "" {
				t, err := time.Parse("2006-01-02", startDate)
				if err != nil {
					return fmt.Errorf("invalid --start date %q (expected YYYY-MM-DD)", startDate)
				}
				c.PreferredStartDate = &t
			}
			if endDate != "" {
				t, err := time.Parse("2006-01-02", endDate)
				if err != nil {
					return fmt.Errorf("invalid --end date %q (expected YYYY-MM-DD)", endDate)
				}
				c.PreferredEndDate = &t
			}
			c.PreferredLearningStyles = styles
			c.RequiredEmployeeIDs = required
			c.ExcludedEmployeeIDs = excluded
			if urgency != "" {
				c.Urgency = domain.UrgencyLevel(urgency)
			}

			resp, err := app.Recommend.Recommend(context.Background(), req)
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatRecommendations(resp))
			return nil
		},
	}

	cmd.Flags().StringVar(&course, "course", "", "Course id to find providers for")
	cmd.Flags().Float64Var(&budget, "budget", 0, "Maximum total budget")
	cmd.Flags().Float64Var(&maxDistance, "max-distance", 0, "Maximum provider distance in km")
	cmd.Flags().Float64Var(&lat, "lat", 0, "Preferred location latitude")
	cmd.Flags().Float64Var(&lng, "lng", 0, "Preferred location longitude")
	cmd.Flags().StringVar(&startDate, "start", "", "Preferred start date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end", "", "Preferred end date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&participants, "participants", 0, "Maximum participant count")
	cmd.Flags().IntVar(&maxResults, "max-results", 0, "Cap the number of recommendations (0 = all)")
	cmd.Flags().StringSliceVar(&styles, "styles", nil, "Preferred learning styles")
	cmd.Flags().StringSliceVar(&required, "require", nil, "Employee ids that must attend")
	cmd.Flags().StringSliceVar(&excluded, "exclude", nil, "Employee ids to leave out")
	cmd.Flags().StringVar(&urgency, "urgency", "", "Request urgency (low|medium|high)")
	_ = cmd.MarkFlagRequired("course")

	return cmd
}
