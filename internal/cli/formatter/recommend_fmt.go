package formatter

import (
	"fmt"
	"strings"

	"github.com/danharves/certsched/internal/contract"
)

// FormatRecommendations renders a RecommendResponse as a styled provider
// ranking.
func FormatRecommendations(resp *contract.RecommendResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Provider ranking for %s", resp.CourseID)))
	b.WriteString("\n\n")

	if len(resp.Recommendations) == 0 {
		b.WriteString(Dim("No providers matched the constraints."))
		b.WriteString("\n")
	}

	for i, rec := range resp.Recommendations {
		titleLine := fmt.Sprintf(
			"%s %s  %s",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(rec.Provider.Name),
			ScoreBadge(rec.Score),
		)
		b.WriteString(titleLine + "\n")

		b.WriteString(fmt.Sprintf("   %s %s   %s %s   %s %d days\n",
			Dim("Cost:"), StyleFg.Render(FormatMoney(rec.Provider.TotalEstimatedCost, rec.Provider.Currency)),
			Dim("Distance:"), StyleFg.Render(FormatKm(rec.Provider.DistanceKm)),
			Dim("Lead time:"), rec.Provider.LeadTimeDays,
		))

		for _, s := range rec.Sessions {
			b.WriteString(fmt.Sprintf("   %s %s %s\n",
				Dim("Session:"),
				StyleBlue.Render(HumanDate(s.Date)),
				Dim(s.StartTime+"-"+s.EndTime),
			))
		}

		for _, reason := range rec.Reasons {
			b.WriteString(fmt.Sprintf("   %s %s\n",
				StyleYellow.Render("REASON:"),
				Dim(reason.Message),
			))
		}

		for _, w := range rec.Warnings {
			b.WriteString(fmt.Sprintf("   %s\n",
				SeverityStyle(w.Severity).Render("WARNING: "+w.Message),
			))
		}

		if i < len(resp.Recommendations)-1 {
			b.WriteString("\n")
		}
	}

	if len(resp.Exclusions) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("Excluded providers"))
		b.WriteString("\n")
		for _, ex := range resp.Exclusions {
			b.WriteString(fmt.Sprintf("%s %s %s\n",
				StyleRed.Render("✖"),
				StyleFg.Render(ex.ProviderName),
				Dim(fmt.Sprintf("[%s] %s", ex.Code, ex.Message)),
			))
		}
	}

	return RenderBox("Recommendations", b.String())
}
