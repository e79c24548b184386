package store

import (
	"time"

	"github.com/Xae97/TaskFundi/internal/auth"
	"github.com/Xae97/TaskFundi/internal/models"
)

// SeedData is the initial dataset the stores are constructed with. The
// lifecycle is explicit: seed at process start, mutate in memory, no
// teardown.
type SeedData struct {
	Users         []models.User
	Jobs          []models.JobPosting
	Conversations []models.Conversation
}

func date(value string) time.Time {
	t, _ := time.Parse("2006-01-02", value)
	return t
}

func datetime(value string) time.Time {
	t, _ := time.Parse("2006-01-02T15:04:05", value)
	return t
}

// DefaultSeed returns the demo dataset: five users, eight postings across
// on-site trades and remote digital work, and three conversations tied to
// postings. The seed password for every demo account is "password123".
func DefaultSeed() *SeedData {
	hash, err := auth.HashPassword("password123")
	if err != nil {
		panic("seed: hashing demo password: " + err.Error())
	}

	users := []models.User{
		{
			ID: "1", Name: "Test Client", Email: "client@test.com",
			PasswordHash: hash, Role: models.UserRoleClient,
			Location: models.Location{Address: "Westlands, Nairobi", Latitude: -1.2641, Longitude: 36.8035},
		},
		{
			ID: "2", Name: "Test Fundi", Email: "fundi@test.com",
			PasswordHash: hash, Role: models.UserRoleFundi,
			Location: models.Location{Address: "Kilimani, Nairobi", Latitude: -1.2873, Longitude: 36.7822},
			Skills:   "Plumbing, Electrical, Carpentry",
		},
		{
			ID: "3", Name: "John Electrician", Email: "john@test.com",
			PasswordHash: hash, Role: models.UserRoleFundi,
			Location: models.Location{Address: "Lavington, Nairobi", Latitude: -1.2783, Longitude: 36.7712},
			Skills:   "Electrical, Wiring, Circuit Installation",
		},
		{
			ID: "4", Name: "Jane Smith", Email: "jane@test.com",
			PasswordHash: hash, Role: models.UserRoleClient,
			Location: models.Location{Address: "Karen, Nairobi", Latitude: -1.3187, Longitude: 36.7062},
		},
		{
			ID: "5", Name: "Peter Kamau", Email: "peter@test.com",
			PasswordHash: hash, Role: models.UserRoleClient,
			Location: models.Location{Address: "Kileleshwa, Nairobi", Latitude: -1.2841, Longitude: 36.7776},
		},
	}

	jobs := []models.JobPosting{
		{
			ID:    "1",
			Title: "Kitchen Plumbing Repair",
			Description: "Need an experienced plumber to fix a leaking sink and replace faulty faucet " +
				"in the kitchen. Must have own tools and be available this weekend.",
			Budget:         models.Budget{Amount: 5000, Currency: "KES"},
			Location:       models.Location{Address: "Westlands, Nairobi", Latitude: -1.2641, Longitude: 36.8035},
			Category:       "Plumbing",
			RequiredSkills: []string{"Plumbing", "Home Repair"},
			ClientID:       "1",
			Status:         models.JobStatusOpen,
			CreatedAt:      date("2025-04-05"),
		},
		{
			ID:    "2",
			Title: "House Painting Project",
			Description: "Looking for a professional painter to paint the interior of a 3-bedroom house. " +
				"Need color consultation and high-quality finish. Paint will be provided.",
			Budget:         models.Budget{Amount: 35000, Currency: "KES"},
			Location:       models.Location{Address: "Kilimani, Nairobi", Latitude: -1.2873, Longitude: 36.7822},
			Category:       "Painting",
			RequiredSkills: []string{"Painting", "Interior Design", "Color Mixing"},
			ClientID:       "4",
			Status:         models.JobStatusOpen,
			CreatedAt:      date("2025-04-06"),
		},
		{
			ID:    "3",
			Title: "Electrical Wiring Installation",
			Description: "Need an electrician to install new wiring and outlets in home office. " +
				"Must be certified and experienced with modern electrical systems.",
			Budget:         models.Budget{Amount: 15000, Currency: "KES"},
			Location:       models.Location{Address: "Lavington, Nairobi", Latitude: -1.2783, Longitude: 36.7712},
			Category:       "Electrical",
			RequiredSkills: []string{"Electrical", "Wiring", "Circuit Installation"},
			ClientID:       "1",
			Status:         models.JobStatusOpen,
			CreatedAt:      date("2025-04-07"),
		},
		{
			ID:    "4",
			Title: "Garden Landscaping",
			Description: "Seeking professional gardener for complete backyard landscaping project. " +
				"Includes planting, pathway creation, and irrigation system setup.",
			Budget:         models.Budget{Amount: 45000, Currency: "KES"},
			Location:       models.Location{Address: "Karen, Nairobi", Latitude: -1.3187, Longitude: 36.7062},
			Category:       "Gardening",
			RequiredSkills: []string{"Landscaping", "Gardening", "Irrigation"},
			ClientID:       "4",
			Status:         models.JobStatusOpen,
			CreatedAt:      date("2025-04-07"),
		},
		{
			ID:    "5",
			Title: "Bathroom Renovation",
			Description: "Complete bathroom renovation needed. Work includes tiling, plumbing, and " +
				"fixture installation. Looking for experienced contractor with portfolio.",
			Budget:         models.Budget{Amount: 120000, Currency: "KES"},
			Location:       models.Location{Address: "Kileleshwa, Nairobi", Latitude: -1.2841, Longitude: 36.7776},
			Category:       "Home Improvement",
			RequiredSkills: []string{"Plumbing", "Tiling", "Renovation"},
			ClientID:       "5",
			Status:         models.JobStatusOpen,
			CreatedAt:      date("2025-04-06"),
		},
		{
			ID:    "6",
			Title: "Website Development",
			Description: "Looking for a skilled web developer to create a responsive e-commerce website " +
				"with payment integration and custom CMS.",
			Budget:         models.Budget{Amount: 75000, Currency: "KES"},
			Location:       models.Location{Address: "Remote"},
			Category:       "Programming",
			RequiredSkills: []string{"Web Development", "JavaScript", "React", "UI/UX"},
			ClientID:       "4",
			Status:         models.JobStatusOpen,
			CreatedAt:      date("2025-04-07"),
			IsRemote:       true,
		},
		{
			ID:    "7",
			Title: "Mobile App Design",
			Description: "Need a UI/UX designer to create wireframes and high-fidelity designs for a " +
				"fitness tracking mobile app.",
			Budget:         models.Budget{Amount: 50000, Currency: "KES"},
			Location:       models.Location{Address: "Remote"},
			Category:       "Design",
			RequiredSkills: []string{"UI Design", "UX Design", "App Design", "Figma"},
			ClientID:       "1",
			Status:         models.JobStatusOpen,
			CreatedAt:      date("2025-04-06"),
			IsRemote:       true,
		},
		{
			ID:    "8",
			Title: "Data Analysis Project",
			Description: "Looking for a data analyst to help process and visualize customer data and " +
				"create meaningful insights for business decisions.",
			Budget:         models.Budget{Amount: 40000, Currency: "KES"},
			Location:       models.Location{Address: "Remote"},
			Category:       "Data Analysis",
			RequiredSkills: []string{"Excel", "Python", "Data Visualization", "Statistics"},
			ClientID:       "5",
			Status:         models.JobStatusOpen,
			CreatedAt:      date("2025-04-05"),
			IsRemote:       true,
		},
	}

	conversations := []models.Conversation{
		{
			ID: "1",
			Participants: []models.Participant{
				{UserID: "1", Name: "Test Client", Role: models.UserRoleClient},
				{UserID: "2", Name: "Test Fundi", Role: models.UserRoleFundi},
			},
			JobID:    "1",
			JobTitle: "Kitchen Plumbing Repair",
			Messages: []models.Message{
				{
					ID: "100", SenderID: "1",
					Text:      "Hi, I need help with my kitchen sink. Are you available this week?",
					Timestamp: datetime("2025-04-06T14:15:00"), Read: true,
				},
				{
					ID: "101", SenderID: "2",
					Text:      "I can start the plumbing work tomorrow at 9 AM if that works for you.",
					Timestamp: datetime("2025-04-06T14:30:00"), Read: false,
				},
			},
		},
		{
			ID: "2",
			Participants: []models.Participant{
				{UserID: "1", Name: "Test Client", Role: models.UserRoleClient},
				{UserID: "3", Name: "John Electrician", Role: models.UserRoleFundi},
			},
			JobID:    "3",
			JobTitle: "Electrical Wiring Installation",
			Messages: []models.Message{
				{
					ID: "200", SenderID: "3",
					Text:      "I've reviewed your electrical installation requirements. The total cost will be around 15,000 KES.",
					Timestamp: datetime("2025-04-05T10:30:00"), Read: true,
				},
				{
					ID: "201", SenderID: "1",
					Text:      "Thank you for providing the quote. When can you start?",
					Timestamp: datetime("2025-04-05T10:45:00"), Read: true,
				},
			},
		},
		{
			ID: "3",
			Participants: []models.Participant{
				{UserID: "4", Name: "Jane Smith", Role: models.UserRoleClient},
				{UserID: "2", Name: "Test Fundi", Role: models.UserRoleFundi},
			},
			JobID:    "2",
			JobTitle: "House Painting Project",
			Messages: []models.Message{
				{
					ID: "300", SenderID: "2",
					Text:      "Which color scheme are you considering for the house?",
					Timestamp: datetime("2025-04-06T16:10:00"), Read: true,
				},
				{
					ID: "301", SenderID: "4",
					Text:      "I've sent you the paint colors I'd like for the living room.",
					Timestamp: datetime("2025-04-06T16:20:00"), Read: true,
				},
			},
		},
	}

	return &SeedData{
		Users:         users,
		Jobs:          jobs,
		Conversations: conversations,
	}
}
