package models

import "fmt"

// ProjectIdea is one suggested project with its recommended stack
type ProjectIdea struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	TechStack   []string `json:"tech stack"`
}

// ProjectIdeas holds exactly three suggestions, keyed as the front end expects
type ProjectIdeas struct {
	First  ProjectIdea `json:"project_idea_1"`
	Second ProjectIdea `json:"project_idea_2"`
	Third  ProjectIdea `json:"project_idea_3"`
}

// Tag is the short humorous label assigned to the profile
type Tag struct {
	TagName     string `json:"tag_name"`
	Description string `json:"description"`
}

// AnalysisResult is the JSON object the completion endpoint is instructed to
// produce. The upstream schema is prompt-enforced only, so Validate must be
// called on every parsed response before it is merged into the payload.
type AnalysisResult struct {
	Score            int          `json:"score"`
	DetailedAnalysis string       `json:"detailed_analysis"`
	ImprovementAreas []string     `json:"improvement_areas"`
	Diagnostics      []string     `json:"diagnostics"`
	ProjectIdeas     ProjectIdeas `json:"project_ideas"`
	Tag              Tag          `json:"tag"`
	DeveloperType    string       `json:"developer_type"`
}

// Validate checks the required keys and value ranges of a parsed analysis.
// A failure means the model returned a malformed or partial object and the
// whole request must fail closed.
func (a *AnalysisResult) Validate() error {
	if a.Score < 0 || a.Score > 100 {
		return fmt.Errorf("score %d out of range [0,100]", a.Score)
	}
	if a.DetailedAnalysis == "" {
		return fmt.Errorf("missing detailed_analysis")
	}
	if a.DeveloperType == "" {
		return fmt.Errorf("missing developer_type")
	}

	ideas := []ProjectIdea{a.ProjectIdeas.First, a.ProjectIdeas.Second, a.ProjectIdeas.Third}
	for i, idea := range ideas {
		if idea.Title == "" || idea.Description == "" {
			return fmt.Errorf("project_idea_%d is incomplete", i+1)
		}
	}

	return nil
}
