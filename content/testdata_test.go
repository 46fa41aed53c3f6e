package content

import "time"

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixturePosts() []Post {
	return []Post{
		{
			ID: "1", Title: "Boxing Footwork", Excerpt: "Move like water.", Content: "# Footwork",
			Date: day(2024, 1, 10), Author: "John Doe", Category: "Fighting", ReadTime: "8 min read",
			Tags: []string{"Boxing", "Footwork"},
		},
		{
			ID: "2", Title: "Quantum Basics", Excerpt: "Superposition without tears.", Content: "# Qubits",
			Date: day(2024, 3, 1), Author: "John Doe", Category: "Science", ReadTime: "12 min read",
			Tags: []string{"Physics"},
		},
		{
			ID: "3", Title: "Calisthenics Start", Excerpt: "Bodyweight training for FITNESS.", Content: "# Pushups",
			Date: day(2024, 3, 1), Author: "John Doe", Category: "fitness", ReadTime: "quick read",
			Tags: []string{"Calisthenics"},
		},
		{
			ID: "4", Title: "Strength Training Fundamentals: A Complete Guide", Excerpt: "Build a foundation.",
			Content: "# Strength", Date: day(2024, 3, 20), Author: "John Doe", Category: "Fitness",
			ReadTime: "15 min read", Tags: []string{"Strength Training", "Recovery"},
		},
		{
			ID: "5", Title: "Arduino Sensors", Excerpt: "Reading the world.", Content: "# Sensors",
			Date: day(2023, 12, 5), Author: "John Doe", Category: "Engineering", ReadTime: "8 min read",
			Tags: []string{"Electronics", "Sensors"},
		},
	}
}

func ids(posts []Post) []string {
	out := make([]string, len(posts))
	for i, p := range posts {
		out[i] = p.ID
	}
	return out
}
