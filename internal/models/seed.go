package models

// DemoEvents returns the starter catalogue used when SEED_DEMO_DATA is on and
// the store is empty. Counters start at zero so they stay consistent with the
// (empty) registration roster.
func DemoEvents() []*Event {
	return []*Event{
		{
			Title:       "Tech Symposium 2026",
			Description: "Annual technical symposium featuring workshops, coding competitions, and tech talks from industry experts.",
			Date:        "2026-03-15",
			Time:        "09:00 AM",
			Location:    "Main Auditorium",
			Capacity:    500,
			Organizer:   "Dr. Amit Kumar",
		},
		{
			Title:       "Spring Cultural Fest",
			Description: "Celebrate diversity with music, dance, drama performances, and art exhibitions from talented students.",
			Date:        "2026-03-22",
			Time:        "05:00 PM",
			Location:    "College Grounds",
			Capacity:    1000,
			Organizer:   "Ms. Neha Singh",
		},
		{
			Title:       "AI & Machine Learning Workshop",
			Description: "Hands-on workshop covering fundamentals of AI, neural networks, and practical ML applications.",
			Date:        "2026-02-28",
			Time:        "10:00 AM",
			Location:    "Computer Lab 3",
			Capacity:    60,
			Organizer:   "Prof. Rajesh Verma",
		},
		{
			Title:       "Inter-College Sports Meet",
			Description: "Annual sports competition featuring cricket, football, basketball, athletics and more.",
			Date:        "2026-04-05",
			Time:        "07:00 AM",
			Location:    "Sports Complex",
			Capacity:    300,
			Organizer:   "Coach Vikram Patel",
		},
		{
			Title:       "Career Development Seminar",
			Description: "Learn about career paths, interview skills, and industry insights from HR professionals.",
			Date:        "2026-03-08",
			Time:        "02:00 PM",
			Location:    "Seminar Hall B",
			Capacity:    200,
			Organizer:   "Dr. Priya Sharma",
		},
	}
}
