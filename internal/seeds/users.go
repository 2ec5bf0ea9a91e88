package seeds

import "github.com/afrilink/platform_be/internal/models"

// Users returns the demo accounts. Each call returns fresh copies so a
// repository can mutate them freely.
func Users() []models.User {
	return []models.User{
		{
			ID:            "1",
			Name:          "Amara Okafor",
			Email:         "amara@example.com",
			Role:          models.RoleFreelancer,
			Bio:           "Full-stack developer with 5+ years experience in React and Node.js",
			Skills:        []string{"React", "Node.js", "TypeScript", "MongoDB"},
			Location:      "Lagos, Nigeria",
			Rating:        4.9,
			CompletedJobs: 87,
		},
		{
			ID:            "2",
			Name:          "Kofi Asante",
			Email:         "kofi@example.com",
			Role:          models.RoleClient,
			Bio:           "Tech entrepreneur building innovative solutions",
			Location:      "Accra, Ghana",
			Rating:        4.7,
			CompletedJobs: 12,
		},
	}
}
