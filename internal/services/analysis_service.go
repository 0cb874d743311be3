package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/0xarchit/github-profile-analyzer/internal/models"
	"github.com/0xarchit/github-profile-analyzer/pkg/config"
	openai "github.com/sashabaranov/go-openai"
)

// analysisSystemPrompt fixes the output schema and the ten-parameter scoring
// rubric. Kept verbatim so scores stay consistent across deployments.
const analysisSystemPrompt = `You are a JSON generator that evaluates a user's public GitHub profile data with high consistency and logical precision.
Your evaluation must be based on 10 weighted parameters, each contributing up to 10 points (for a total score out of 100).
Always return your output strictly in the following JSON structure:

{
  "score": <integer between 0 and 100 representing overall GitHub profile strength>,
  "detailed_analysis": "<an insightful summary based on key metrics such as user popularity, repository quality, biography clarity, profile backlinks, and presence of web pages>",
  "improvement_areas": [
    "<brief, specific suggestions for improving weak areas such as adding repository descriptions, refining bio, increasing stars or followers, etc.>"
  ],
  "diagnostics": [
    "<additional observations such as number of licensed repositories, archived projects, or usage of pinned repos that do not directly impact score but are useful for awareness>"
  ],
  "project_ideas": {
    "project_idea_1": {
      "title": "<a short title for the project idea>",
      "description": "<a detailed description of the project idea>",
      "tech stack": []
    },
    "project_idea_2": {
      "title": "<a short title for the project idea>",
      "description": "<a detailed description of the project idea>",
      "tech stack": []
    },
    "project_idea_3": {
      "title": "<a short title for the project idea>",
      "description": "<a detailed description of the project idea>",
      "tech stack": []
    }
  },
  "tag": {
    "tag_name": "<a sarcastic or funny tag based on the user profile>",
    "description": "<a short line explaining why this tag was given>"
  },
  "developer_type": "<developer type inferred from tech stack, repositories, and activeness — e.g., tech explorer, frontend dev, backend dev, fullstack dev, etc.>"
}

Scoring Method (10 parameters × 10 points each):
1. Repository Quality – based on code quality, stars, forks, and activity.
2. Repository Diversity – variety in domains, languages, and frameworks used.
3. Profile Completeness – presence of bio, avatar, and external links.
4. Popularity – followers, stars, forks, and engagement.
5. Contribution Activity – frequency and consistency of commits or pull requests.
6. Documentation & Descriptions – presence and clarity of repo descriptions or READMEs.
7. Project Impact – originality, public utility, or technical depth.
8. Skill Representation – clarity and balance of tech stack across repositories.
9. Professional Presence – presence of pinned repos, portfolio link, and profile readability.
10. Community Involvement – collaborations, contributions to others’ projects, or open-source participation.

Rules:
- Each parameter is rated from 0 to 10, sum gives the final score out of 100.
- Use fixed threshold-based evaluation for consistency. Do not vary scores randomly.
- Apply a ±1 variation only when metrics are borderline (never exceed ±1 total variation).
- If data for a parameter is missing, give 0–2 points and mention it in diagnostics.
- Use a constructive, analytic tone; never generic or repetitive.
- Never invent data — base insights strictly on provided GitHub data.
- Always return valid, complete JSON — no text outside JSON.
- Project ideas should be new non repeative to exsisting on profile.
`

// AnalysisService sends the aggregated profile to the completion endpoint and
// parses the scored analysis out of the reply.
type AnalysisService struct {
	keys *models.CredentialPool
}

func NewAnalysisService(keys *models.CredentialPool) *AnalysisService {
	return &AnalysisService{
		keys: keys,
	}
}

// Analyze runs one chat completion over the serialized profile. The parsed
// result is schema-validated and fails closed on any malformed reply.
func (s *AnalysisService) Analyze(ctx context.Context, profile *models.ProfileSummary) (*models.AnalysisResult, error) {
	payload, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("serializing profile: %w", err)
	}

	cfg := openai.DefaultConfig(s.keys.Pick())
	cfg.BaseURL = strings.TrimSuffix(config.AppConfig.LLM.BaseURL, "/")
	client := openai.NewClientWithConfig(cfg)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: config.AppConfig.LLM.Model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: analysisSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: string(payload)},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		if errors.As(err, &apiErr) && apiErr.HTTPStatusCode > 0 {
			return nil, &StatusError{StatusCode: apiErr.HTTPStatusCode, Message: "Failed to fetch AI analysis"}
		}
		return nil, &StatusError{StatusCode: 500, Message: "Failed to fetch AI analysis"}
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("completion returned no choices")
	}

	content := stripCodeFences(resp.Choices[0].Message.Content)

	var result models.AnalysisResult
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("parsing analysis response: %w", err)
	}
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("invalid analysis response: %w", err)
	}

	return &result, nil
}

// stripCodeFences removes markdown code fences that some models wrap around JSON
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		if i := strings.Index(s, "\n"); i != -1 {
			s = s[i+1:]
		}
		if i := strings.LastIndex(s, "```"); i != -1 {
			s = s[:i]
		}
		s = strings.TrimSpace(s)
	}
	return s
}
