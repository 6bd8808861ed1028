package activity

const seedDomain = "@mergington.edu"

// SeedActivities returns the roster every fresh directory starts from.
func SeedActivities() []Activity {
	return []Activity{
		{
			Name:            "Debate Club",
			Description:     "Develop argumentation and public speaking skills through competitive debate",
			Schedule:        "Wednesdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 16,
			Participants:    emails("alex"),
		},
		{
			Name:            "Robotics Team",
			Description:     "Build and program robots for competitions",
			Schedule:        "Saturdays, 10:00 AM - 12:00 PM",
			MaxParticipants: 15,
			Participants:    emails("james", "sara"),
		},
		{
			Name:            "Basketball Team",
			Description:     "Competitive basketball league and training",
			Schedule:        "Mondays and Thursdays, 4:00 PM - 5:30 PM",
			MaxParticipants: 15,
			Participants:    emails("tyler"),
		},
		{
			Name:            "Volleyball Club",
			Description:     "Learn and play volleyball with other enthusiasts",
			Schedule:        "Tuesdays and Fridays, 4:00 PM - 5:30 PM",
			MaxParticipants: 18,
			Participants:    emails("mia", "lucas"),
		},
		{
			Name:            "Art Studio",
			Description:     "Explore painting, drawing, and mixed media techniques",
			Schedule:        "Mondays and Wednesdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 20,
			Participants:    emails("hannah"),
		},
		{
			Name:            "Theater Production",
			Description:     "Perform in school plays and musicals",
			Schedule:        "Thursdays, 4:00 PM - 6:00 PM",
			MaxParticipants: 25,
			Participants:    emails("christopher", "isabella"),
		},
		{
			Name:            "Science Club",
			Description:     "Conduct experiments and explore scientific concepts",
			Schedule:        "Thursdays, 3:30 PM - 5:00 PM",
			MaxParticipants: 18,
			Participants:    emails("ryan", "sophia"),
		},
		{
			Name:            "Chess Club",
			Description:     "Learn strategies and compete in chess tournaments",
			Schedule:        "Fridays, 3:30 PM - 5:00 PM",
			MaxParticipants: 12,
			Participants:    emails("michael", "daniel"),
		},
		{
			Name:            "Programming Class",
			Description:     "Learn programming fundamentals and build software projects",
			Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
			MaxParticipants: 20,
			Participants:    emails("emma", "sophia"),
		},
		{
			Name:            "Gym Class",
			Description:     "Physical education and sports activities",
			Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
			MaxParticipants: 30,
			Participants:    emails("john", "olivia"),
		},
	}
}

func emails(users ...string) []string {
	out := make([]string, 0, len(users))
	for _, u := range users {
		out = append(out, u+seedDomain)
	}
	return out
}
