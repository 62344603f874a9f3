package models

// CandidateProfile is the structured result of parsing resume text.
// Fields that could not be extracted carry sentinel values instead of
// being empty, so the payload shape is stable for the front-end.
type CandidateProfile struct {
	Name        string   `json:"name"`
	Experience  string   `json:"experience"`
	Skills      []string `json:"skills"`
	LastTwoJobs []string `json:"lastTwoJobs"`
}
