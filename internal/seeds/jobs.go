package seeds

import "github.com/afrilink/platform_be/internal/models"

// Jobs is ordered newest first.
func Jobs() []models.Job {
	return []models.Job{
		{
			ID:          "1",
			Title:       "Full-Stack Developer for E-commerce Platform",
			Description: "We are looking for an experienced full-stack developer to build a modern e-commerce platform for our African handicrafts business. The project involves creating a responsive web application with payment integration, inventory management, and user authentication.",
			Budget:      5000,
			BudgetType:  models.BudgetFixed,
			Skills:      []string{"React", "Node.js", "MongoDB", "TypeScript", "Stripe API"},
			Client: models.JobClient{
				Name:        "Kwame Asante",
				Rating:      4.8,
				ReviewCount: 23,
				Location:    "Accra, Ghana",
			},
			PostedAt:        "2 hours ago",
			Proposals:       8,
			Duration:        "2-3 months",
			ExperienceLevel: models.ExperienceExpert,
		},
		{
			ID:          "2",
			Title:       "Mobile App UI/UX Design",
			Description: "Need a talented designer to create beautiful, intuitive UI/UX for our mobile banking app targeting rural communities in East Africa. The design should be culturally sensitive and accessible.",
			Budget:      45,
			BudgetType:  models.BudgetHourly,
			Skills:      []string{"Figma", "UI/UX Design", "Mobile Design", "Prototyping"},
			Client: models.JobClient{
				Name:        "Fatima Okonkwo",
				Rating:      4.9,
				ReviewCount: 45,
				Location:    "Lagos, Nigeria",
			},
			PostedAt:        "5 hours ago",
			Proposals:       15,
			Duration:        "1 month",
			ExperienceLevel: models.ExperienceIntermediate,
		},
		{
			ID:          "3",
			Title:       "WordPress Website for NGO",
			Description: "Looking for a WordPress developer to create a professional website for our education NGO. The site should include donation functionality, blog, and volunteer registration.",
			Budget:      1200,
			BudgetType:  models.BudgetFixed,
			Skills:      []string{"WordPress", "PHP", "CSS", "Elementor"},
			Client: models.JobClient{
				Name:        "Sarah Mwangi",
				Rating:      4.6,
				ReviewCount: 12,
				Location:    "Nairobi, Kenya",
			},
			PostedAt:        "1 day ago",
			Proposals:       22,
			Duration:        "3-4 weeks",
			ExperienceLevel: models.ExperienceEntry,
		},
		{
			ID:          "4",
			Title:       "Python Data Analysis for Agricultural Project",
			Description: "Seeking a data scientist to analyze crop yield data and weather patterns for our agricultural tech startup. Experience with machine learning and agricultural data preferred.",
			Budget:      75,
			BudgetType:  models.BudgetHourly,
			Skills:      []string{"Python", "Pandas", "Machine Learning", "Data Visualization"},
			Client: models.JobClient{
				Name:        "Ahmed Hassan",
				Rating:      4.7,
				ReviewCount: 18,
				Location:    "Cairo, Egypt",
			},
			PostedAt:        "2 days ago",
			Proposals:       6,
			Duration:        "2 months",
			ExperienceLevel: models.ExperienceExpert,
		},
		{
			ID:          "5",
			Title:       "Social Media Content Creation",
			Description: "Need a creative content creator to develop engaging social media content for our fashion brand. Must understand African fashion trends and social media best practices.",
			Budget:      25,
			BudgetType:  models.BudgetHourly,
			Skills:      []string{"Content Creation", "Social Media", "Graphic Design", "Photography"},
			Client: models.JobClient{
				Name:        "Aisha Abdulahi",
				Rating:      4.5,
				ReviewCount: 31,
				Location:    "Addis Ababa, Ethiopia",
			},
			PostedAt:        "3 days ago",
			Proposals:       28,
			Duration:        "Ongoing",
			ExperienceLevel: models.ExperienceIntermediate,
		},
	}
}
