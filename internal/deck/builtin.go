package deck

// Builtin returns the default healthcare presentation shown when no deck
// file is given.
func Builtin() *Deck {
	d, err := NewDeck("Rebuilding Rural Healthcare", builtinSlides)
	if err != nil {
		panic("deck: builtin deck is invalid: " + err.Error())
	}
	return d
}

var builtinSlides = []Slide{
	{
		Title:    "Rebuilding Rural Healthcare",
		Subtitle: "A connected care network for underserved regions",
		Body:     []string{"Use ← → or swipe to navigate", "Press space to start autoplay"},
	},
	{
		Title:    "The Crisis",
		Subtitle: "Access is collapsing outside the cities",
		Stats: []Stat{
			{Label: "residents without a nearby clinic", Value: "1500000"},
			{Label: "rural hospitals at financial risk", Value: "42%"},
			{Label: "average drive to emergency care (min)", Value: "68"},
		},
	},
	{
		Title:    "Workforce Shortage",
		Subtitle: "Too few clinicians, spread too thin",
		Stats: []Stat{
			{Label: "unfilled nursing positions", Value: "12500"},
			{Label: "physicians over 60", Value: "37%"},
		},
		Body: []string{"Burnout drives early retirement", "Recruiting pipelines favour urban centres"},
	},
	{
		Title:    "Chronic Disease Burden",
		Subtitle: "Late diagnosis multiplies cost",
		Stats: []Stat{
			{Label: "adults living with a chronic condition", Value: "2.5M"},
			{Label: "preventable admissions", Value: "28%"},
		},
	},
	{
		Title:    "Our Vision",
		Subtitle: "Care that travels to the patient",
		Body: []string{
			"Community health hubs in every county",
			"Telehealth as the default first contact",
			"Shared records across every provider",
		},
	},
	{
		Title:    "Pillar 1: Community Hubs",
		Subtitle: "Primary care, pharmacy and screening under one roof",
		Body:     []string{"Repurpose existing clinic buildings", "Extended evening and weekend hours"},
	},
	{
		Title:    "Pillar 2: Telehealth",
		Subtitle: "Specialists within reach of every hub",
		Stats: []Stat{
			{Label: "virtual consultations per year", Value: "240000"},
			{Label: "reduction in specialist wait time", Value: "55%"},
		},
	},
	{
		Title:    "Pillar 3: Mobile Units",
		Subtitle: "Screening vans on a weekly circuit",
		Body:     []string{"Vaccination, maternal care, diabetic eye exams", "Routes planned from hub demand data"},
	},
	{
		Title:    "Pillar 4: Workforce Pipeline",
		Subtitle: "Train locally, retain locally",
		Stats: []Stat{
			{Label: "new rural residency places", Value: "320"},
			{Label: "retention after five years", Value: "81%"},
		},
	},
	{
		Title:    "Timeline",
		Subtitle: "Three phases over five years",
		Body: []string{
			"Year 1: pilot hubs in six counties",
			"Years 2-3: telehealth network and mobile units",
			"Years 4-5: statewide rollout",
		},
	},
	{
		Title:    "Projected Impact",
		Subtitle: "What success looks like by year five",
		Stats: []Stat{
			{Label: "people gaining regular access", Value: "3 Million"},
			{Label: "fewer emergency transfers", Value: "35%"},
			{Label: "annual system savings (USD)", Value: "180000000"},
		},
	},
	{
		Title:    "Feasibility",
		Subtitle: "Built on what already exists",
		Body: []string{
			"Existing facilities cover 70% of hub sites",
			"Broadband expansion already funded",
			"Partner health systems signed letters of intent",
		},
	},
	{
		Title:    "Funding",
		Subtitle: "Blended public and philanthropic capital",
		Stats: []Stat{
			{Label: "committed to date (USD)", Value: "45000000"},
			{Label: "of phase one funded", Value: "62%"},
		},
	},
	{
		Title:    "Join Us",
		Subtitle: "Every community deserves care close to home",
		Body:     []string{"Thank you"},
	},
}
