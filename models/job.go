package models

// Job is a single job recommendation relayed from the AI backend service.
type Job struct {
	ID          string   `json:"id,omitempty"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Location    string   `json:"location,omitempty"`
	Description string   `json:"description,omitempty"`
	URL         string   `json:"url,omitempty"`
	Salary      string   `json:"salary,omitempty"`
	Source      string   `json:"source,omitempty"`
	Remote      bool     `json:"remote,omitempty"`
	MatchScore  float64  `json:"match_score,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}
