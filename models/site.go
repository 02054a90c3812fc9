package models

// Site — one of the four research sites growing polar plants, each assigned
// a distinct nutrient-solution EC target. Color is cosmetic and only carried
// for the chart frontend.
type Site struct {
	Name     string  `json:"name"`
	TargetEC float64 `json:"targetEc"` // dS/m, nutrient solution target
	Color    string  `json:"color"`
}

// Sites is the fixed study enumeration. Order here is the iteration order
// everywhere downstream, which makes tie-breaks and summary ordering
// deterministic.
var Sites = []Site{
	{Name: "송도고", TargetEC: 1.0, Color: "#1f77b4"},
	{Name: "하늘고", TargetEC: 2.0, Color: "#2ca02c"},
	{Name: "아라고", TargetEC: 4.0, Color: "#ff7f0e"},
	{Name: "동산고", TargetEC: 8.0, Color: "#d62728"},
}

// SiteByName looks a site up in the fixed enumeration.
func SiteByName(name string) (Site, bool) {
	for _, s := range Sites {
		if s.Name == name {
			return s, true
		}
	}
	return Site{}, false
}

// ECTargets returns the site → target EC lookup used by the growth summary.
func ECTargets() map[string]float64 {
	m := make(map[string]float64, len(Sites))
	for _, s := range Sites {
		m[s.Name] = s.TargetEC
	}
	return m
}
