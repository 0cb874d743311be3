package models

// ProfileSummary aggregates user-level profile data, the classified
// repository maps, and unlocked achievement badges. Built once per request
// and handed whole to the narrative synthesizer.
type ProfileSummary struct {
	Avatar          *string                      `json:"avatar"`
	Username        *string                      `json:"username"`
	Name            *string                      `json:"name"`
	Company         *string                      `json:"company"`
	Location        *string                      `json:"location"`
	Blog            *string                      `json:"blog"`
	Bio             *string                      `json:"bio"`
	Email           *string                      `json:"email"`
	Twitter         *string                      `json:"twitter"`
	Followers       int                          `json:"followers"`
	Following       int                          `json:"following"`
	PublicRepoCount int                          `json:"public_repo_count"`
	OriginalRepos   map[string]RepositorySummary `json:"original_repos"`
	AuthoredForks   map[string]RepositorySummary `json:"authored_forks"`
	Badges          map[string]string            `json:"badges"`
}

// ResponsePayload is the merged /api response: profile fields plus the LLM
// analysis flattened into a single object.
type ResponsePayload struct {
	ProfileSummary
	AnalysisResult
}
