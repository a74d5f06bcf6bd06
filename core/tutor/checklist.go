package tutor

const (
	NoMilestones  = "No milestones found for this week."
	ScheduleTitle = "mock_dates.json"
)

// Lookup returns the milestones of the first schedule record for week.
// An unknown week, or one without milestones, gets the NoMilestones placeholder.
// The schedule reference is always returned.
func Lookup(week WeekID, schedule []WeekRecord) ChecklistResult {
	var items []string
	for _, rec := range schedule {
		if rec.Week.Equal(week) {
			items = rec.Milestones
			break
		}
	}
	if len(items) == 0 {
		items = []string{NoMilestones}
	}
	return ChecklistResult{
		Checklist: append([]string(nil), items...),
		Refs:      []Ref{{Title: ScheduleTitle, Loc: "week:" + week.String()}},
	}
}
