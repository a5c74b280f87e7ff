package domain

// seedActivities is the fixed offering catalogue loaded at process start.
// Activities are never created or deleted at runtime; only rosters mutate.
var seedActivities = []Activity{
	{
		Name:            "Baseball Team",
		Description:     "Join our competitive baseball team and compete in league games",
		Schedule:        "Mondays and Thursdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 15,
		Participants:    []string{"alex@mergington.edu"},
	},
	{
		Name:            "Soccer Club",
		Description:     "Play soccer and develop teamwork skills",
		Schedule:        "Tuesdays and Fridays, 4:00 PM - 5:30 PM",
		MaxParticipants: 18,
		Participants:    []string{"jordan@mergington.edu"},
	},
	{
		Name:            "Music Band",
		Description:     "Learn to play instruments and perform in school concerts",
		Schedule:        "Wednesdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 25,
		Participants:    []string{"maya@mergington.edu", "lucas@mergington.edu"},
	},
	{
		Name:            "Drama Club",
		Description:     "Act in theatrical productions and develop performance skills",
		Schedule:        "Thursdays, 4:00 PM - 5:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"isabella@mergington.edu"},
	},
	{
		Name:            "Debate Team",
		Description:     "Compete in debate tournaments and develop public speaking skills",
		Schedule:        "Mondays and Wednesdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 16,
		Participants:    []string{"christopher@mergington.edu", "avery@mergington.edu"},
	},
	{
		Name:            "Science Club",
		Description:     "Explore STEM topics through experiments and projects",
		Schedule:        "Tuesdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"tyler@mergington.edu"},
	},
	{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu", "daniel@mergington.edu"},
	},
	{
		Name:            "Programming Class",
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
		Participants:    []string{"emma@mergington.edu", "sophia@mergington.edu"},
	},
	{
		Name:            "Gym Class",
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
		Participants:    []string{"john@mergington.edu", "olivia@mergington.edu"},
	},
}
