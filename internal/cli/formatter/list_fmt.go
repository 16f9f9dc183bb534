package formatter

import (
	"fmt"
	"strings"

	"github.com/danharves/certsched/internal/domain"
	"github.com/danharves/certsched/internal/service"
)

// FormatProviders renders a provider listing.
func FormatProviders(providers []domain.ProviderCandidate) string {
	var b strings.Builder

	if len(providers) == 0 {
		b.WriteString(Dim("No providers found."))
		b.WriteString("\n")
	}

	for i, p := range providers {
		rate := "unpublished rate"
		if p.HourlyRate != nil {
			rate = FormatMoney(*p.HourlyRate, p.Currency) + "/h"
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n",
			TruncID(p.ID),
			Bold(p.Name),
			Dim(rate),
		))

		var courses []string
		for _, c := range p.Courses {
			courses = append(courses, c.CourseID)
		}
		if len(courses) > 0 {
			b.WriteString(fmt.Sprintf("   %s %s\n",
				Dim("Courses:"),
				StyleBlue.Render(strings.Join(courses, ", ")),
			))
		}
		b.WriteString(fmt.Sprintf("   %s %d-%d participants, %d day lead time\n",
			Dim("Delivery:"), p.MinGroupSize, p.MaxGroupSize, p.LeadTimeDays,
		))

		if i < len(providers)-1 {
			b.WriteString("\n")
		}
	}

	return RenderBox("Providers", b.String())
}

// FormatSessions renders a session listing with remaining capacity.
func FormatSessions(sessions []domain.ExistingSession) string {
	var b strings.Builder

	if len(sessions) == 0 {
		b.WriteString(Dim("No sessions scheduled."))
		b.WriteString("\n")
	}

	for _, s := range sessions {
		spots := s.AvailableSpots()
		spotStyle := StyleGreen
		if spots == 0 {
			spotStyle = StyleRed
		}
		b.WriteString(fmt.Sprintf("%s %s  %s  %s\n",
			TruncID(s.ID),
			Bold(s.Title),
			StyleBlue.Render(HumanDate(s.StartsAt)),
			spotStyle.Render(fmt.Sprintf("%d/%d spots free", spots, s.MaxParticipants)),
		))
		if s.Location != "" {
			b.WriteString(fmt.Sprintf("   %s %s\n", Dim("Location:"), StyleFg.Render(s.Location)))
		}
	}

	return RenderBox("Sessions", b.String())
}

// FormatImportResult summarizes an import run.
func FormatImportResult(r *service.ImportResult) string {
	var b strings.Builder

	b.WriteString(StyleGreen.Render("Import complete"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s %d\n", Dim("Providers:"), r.Providers))
	b.WriteString(fmt.Sprintf("%s %d\n", Dim("Certificates:"), r.Certificates))
	b.WriteString(fmt.Sprintf("%s %d\n", Dim("Availability records:"), r.Availability))
	b.WriteString(fmt.Sprintf("%s %d\n", Dim("Learning profiles:"), r.Profiles))
	b.WriteString(fmt.Sprintf("%s %d\n", Dim("Work arrangements:"), r.Arrangements))
	b.WriteString(fmt.Sprintf("%s %d (%d enrolled)\n", Dim("Sessions:"), r.Sessions, r.Enrollments))

	return RenderBox("Snapshot Import", b.String())
}
