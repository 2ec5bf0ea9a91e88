package models

import "time"

type Proposal struct {
	ID           string    `json:"id"`
	JobID        string    `json:"jobId"`
	FreelancerID string    `json:"freelancerId"`
	CoverLetter  string    `json:"coverLetter"`
	Budget       string    `json:"budget"`
	Duration     string    `json:"duration"`
	SubmittedAt  time.Time `json:"submittedAt"`
}
