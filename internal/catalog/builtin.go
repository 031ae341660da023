package catalog

// Builtin returns the bundled neighborhood catalog used when no catalog file
// or database is configured.
func Builtin() *Catalog {
	c, err := New(builtinNeighborhoods())
	if err != nil {
		panic("catalog: invalid builtin data: " + err.Error())
	}
	return c
}

func builtinNeighborhoods() []Neighborhood {
	return []Neighborhood{
		{
			Name: "University Town Center",
			Objective: map[Dimension]Metric{
				Safety:      Known(72),
				Transit:     Known(91),
				Convenience: Known(90),
				Parking:     Known(54),
				Environment: Known(78),
			},
			Perception: map[Dimension]string{
				Safety:      "Generally safe at night near main plazas, occasional bike theft concerns.",
				Transit:     "Frequent buses and easy campus access; many users report low car dependence.",
				Convenience: "Very walkable for groceries, food, and study spots.",
				Parking:     "Visitor parking can be expensive and difficult during peak hours.",
				Environment: "Active, student-centered area with moderate noise on weekends.",
			},
			RedditSampleSize: 86,
			TradeoffNote:     "Excellent transit and convenience, but parking pressure is common.",
		},
		{
			Name: "Northwood",
			Objective: map[Dimension]Metric{
				Safety:      Known(86),
				Transit:     Known(62),
				Convenience: Known(70),
				Parking:     Known(84),
				Environment: Known(88),
			},
			Perception: map[Dimension]string{
				Safety:      "Residents frequently describe it as quiet and family-friendly.",
				Transit:     "Transit is workable but less frequent than central neighborhoods.",
				Convenience: "Good basics nearby, though some errands still require a short drive.",
				Parking:     "Street and complex parking are usually easier than denser areas.",
				Environment: "Calm streets, lower noise, and more green space reported.",
			},
			RedditSampleSize: 59,
			TradeoffNote:     "Strong safety and environment, weaker transit frequency.",
		},
		{
			Name: "Costa Mesa Border",
			Objective: map[Dimension]Metric{
				Safety:      Known(64),
				Transit:     Known(58),
				Convenience: Known(74),
				Parking:     Unknown(),
				Environment: Known(68),
			},
			Perception: map[Dimension]string{
				Safety:      "Mixed opinions: some blocks feel safe, others mention late-night caution.",
				Transit:     "Most discussions suggest relying on a car for daily routines.",
				Convenience: "Good shopping and food options if driving is available.",
				Parking:     "Parking information is inconsistent across postings and complexes.",
				Environment: "More urban feel with variable noise depending on street proximity.",
			},
			RedditSampleSize: 37,
			TradeoffNote:     "Decent convenience with higher uncertainty in parking data quality.",
		},
	}
}
