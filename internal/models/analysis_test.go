package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validAnalysis() AnalysisResult {
	idea := ProjectIdea{Title: "CLI tool", Description: "A useful tool", TechStack: []string{"Go"}}
	return AnalysisResult{
		Score:            72,
		DetailedAnalysis: "Solid profile with active repositories",
		ImprovementAreas: []string{"Add repository descriptions"},
		Diagnostics:      []string{"3 licensed repositories"},
		ProjectIdeas:     ProjectIdeas{First: idea, Second: idea, Third: idea},
		Tag:              Tag{TagName: "Commit Machine", Description: "Commits daily"},
		DeveloperType:    "backend dev",
	}
}

func TestAnalysisResultValidate(t *testing.T) {
	t.Run("Valid result passes", func(t *testing.T) {
		result := validAnalysis()
		assert.NoError(t, result.Validate())
	})

	t.Run("Score out of range fails", func(t *testing.T) {
		result := validAnalysis()
		result.Score = 101
		assert.Error(t, result.Validate())

		result.Score = -1
		assert.Error(t, result.Validate())
	})

	t.Run("Boundary scores pass", func(t *testing.T) {
		result := validAnalysis()
		result.Score = 0
		assert.NoError(t, result.Validate())

		result.Score = 100
		assert.NoError(t, result.Validate())
	})

	t.Run("Missing detailed analysis fails", func(t *testing.T) {
		result := validAnalysis()
		result.DetailedAnalysis = ""
		assert.Error(t, result.Validate())
	})

	t.Run("Missing developer type fails", func(t *testing.T) {
		result := validAnalysis()
		result.DeveloperType = ""
		assert.Error(t, result.Validate())
	})

	t.Run("Incomplete project idea fails", func(t *testing.T) {
		result := validAnalysis()
		result.ProjectIdeas.Third.Description = ""
		err := result.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "project_idea_3")
	})
}

func TestAnalysisResultJSONShape(t *testing.T) {
	result := validAnalysis()
	payload, err := json.Marshal(result)
	assert.NoError(t, err)

	var raw map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(payload, &raw))

	for _, key := range []string{"score", "detailed_analysis", "improvement_areas", "diagnostics", "project_ideas", "tag", "developer_type"} {
		assert.Contains(t, raw, key)
	}

	var ideas map[string]map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(raw["project_ideas"], &ideas))
	assert.Contains(t, ideas, "project_idea_1")
	assert.Contains(t, ideas, "project_idea_2")
	assert.Contains(t, ideas, "project_idea_3")

	// The stack key carries a space, matching the prompt schema
	assert.Contains(t, ideas["project_idea_1"], "tech stack")
}

func TestResponsePayloadMergesFlat(t *testing.T) {
	login := "octocat"
	payload := ResponsePayload{
		ProfileSummary: ProfileSummary{
			Username:      &login,
			OriginalRepos: map[string]RepositorySummary{"tool": {}},
			AuthoredForks: map[string]RepositorySummary{},
			Badges:        map[string]string{},
		},
		AnalysisResult: validAnalysis(),
	}

	body, err := json.Marshal(payload)
	assert.NoError(t, err)

	var raw map[string]json.RawMessage
	assert.NoError(t, json.Unmarshal(body, &raw))

	// Profile and analysis fields sit side by side at the top level
	assert.Contains(t, raw, "username")
	assert.Contains(t, raw, "original_repos")
	assert.Contains(t, raw, "score")
	assert.Contains(t, raw, "developer_type")
}
