package formatter

import (
	"fmt"
	"strings"

	"github.com/danharves/certsched/internal/contract"
)

// FormatGroups renders a GroupingResponse as a styled group listing.
func FormatGroups(resp *contract.GroupingResponse) string {
	var b strings.Builder

	b.WriteString(Header(fmt.Sprintf("Training groups for %s", resp.LicenseID)))
	b.WriteString("\n\n")

	if len(resp.Groups) == 0 {
		b.WriteString(Dim("No groups formed."))
		b.WriteString("\n")
	}

	for i, g := range resp.Groups {
		priority := fmt.Sprintf("P%.0f", g.Priority.Value)
		if g.Priority.Defaulted {
			priority += "*"
		}
		titleLine := fmt.Sprintf(
			"%s %s  %s",
			Bold(fmt.Sprintf("%d.", i+1)),
			StyleFg.Render(g.Name),
			StylePurple.Render(priority),
		)
		b.WriteString(titleLine + "\n")

		if g.Session != nil {
			b.WriteString(fmt.Sprintf("   %s %s %s %s\n",
				Dim("Fills session:"),
				TruncID(g.Session.SessionID),
				StyleBlue.Render(HumanDate(g.Session.Date)),
				Dim(fmt.Sprintf("(%d spots left)", g.Session.RemainingSpots)),
			))
		} else if g.Classification != "" {
			b.WriteString(fmt.Sprintf("   %s %s\n",
				Dim("Classification:"),
				StyleYellow.Render(g.Classification),
			))
		}

		if g.Priority.Defaulted {
			b.WriteString(fmt.Sprintf("   %s\n",
				StyleYellow.Render("Priority defaulted: "+g.Priority.Message),
			))
		}

		for _, m := range g.Members {
			b.WriteString(fmt.Sprintf("   %s %s  %s  %s\n",
				Dim("-"),
				StyleFg.Render(m.EmployeeID),
				StatusPill(m.Status),
				Dim("expires in "+FormatDays(m.DaysUntilExpiry)),
			))
		}

		if i < len(resp.Groups)-1 {
			b.WriteString("\n")
		}
	}

	return RenderBox("Grouping Plan", b.String())
}
