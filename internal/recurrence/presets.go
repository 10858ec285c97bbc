package recurrence

// Preset is a named quick-pick recurrence.
type Preset struct {
	Name string
	Rule string
}

// Presets lists the quick-pick shortcuts in display order.
var Presets = []Preset{
	{Name: "daily", Rule: "FREQ=DAILY"},
	{Name: "everyOtherDay", Rule: "FREQ=DAILY;INTERVAL=2"},
	{Name: "weekdays", Rule: "FREQ=WEEKLY;BYDAY=MO,TU,WE,TH,FR"},
	{Name: "weekends", Rule: "FREQ=WEEKLY;BYDAY=SA,SU"},
	{Name: "wednesday", Rule: "FREQ=WEEKLY;BYDAY=WE"},
}

// PresetRule returns the rule for a preset name.
func PresetRule(name string) (string, bool) {
	for _, p := range Presets {
		if p.Name == name {
			return p.Rule, true
		}
	}
	return "", false
}
