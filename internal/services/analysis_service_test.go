package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/0xarchit/github-profile-analyzer/internal/models"
	"github.com/0xarchit/github-profile-analyzer/pkg/config"
	"github.com/stretchr/testify/assert"
)

func testProfile() *models.ProfileSummary {
	login := "octocat"
	return &models.ProfileSummary{
		Username:      &login,
		OriginalRepos: map[string]models.RepositorySummary{},
		AuthoredForks: map[string]models.RepositorySummary{},
		Badges:        map[string]string{},
	}
}

func validAnalysisJSON() string {
	idea := map[string]any{"title": "CLI tool", "description": "A useful tool", "tech stack": []string{"Go"}}
	content, _ := json.Marshal(map[string]any{
		"score":             72,
		"detailed_analysis": "Solid profile",
		"improvement_areas": []string{"Add descriptions"},
		"diagnostics":       []string{"3 licensed repos"},
		"project_ideas": map[string]any{
			"project_idea_1": idea,
			"project_idea_2": idea,
			"project_idea_3": idea,
		},
		"tag":            map[string]any{"tag_name": "Commit Machine", "description": "Commits daily"},
		"developer_type": "backend dev",
	})
	return string(content)
}

func newAnalysisService(t *testing.T, serverURL string) *AnalysisService {
	t.Helper()

	config.AppConfig = &config.Config{
		LLM: config.LLMConfig{
			BaseURL: serverURL,
			Model:   "gpt-oss-120b",
		},
	}

	pool, err := models.NewCredentialPool([]string{"test-key"})
	assert.NoError(t, err)
	return NewAnalysisService(pool)
}

func completionBody(content string) string {
	body, _ := json.Marshal(map[string]any{
		"id":     "cmpl-1",
		"object": "chat.completion",
		"choices": []map[string]any{
			{"index": 0, "message": map[string]any{"role": "assistant", "content": content}, "finish_reason": "stop"},
		},
	})
	return string(body)
}

func TestAnalyze(t *testing.T) {
	t.Run("Valid completion is parsed and validated", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "gpt-oss-120b", req["model"])

			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, completionBody(validAnalysisJSON()))
		}))
		defer server.Close()

		service := newAnalysisService(t, server.URL)
		result, err := service.Analyze(context.Background(), testProfile())

		assert.NoError(t, err)
		assert.Equal(t, 72, result.Score)
		assert.Equal(t, "backend dev", result.DeveloperType)
		assert.Equal(t, "CLI tool", result.ProjectIdeas.First.Title)
	})

	t.Run("Fenced JSON is unwrapped", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, completionBody("```json\n"+validAnalysisJSON()+"\n```"))
		}))
		defer server.Close()

		service := newAnalysisService(t, server.URL)
		result, err := service.Analyze(context.Background(), testProfile())

		assert.NoError(t, err)
		assert.Equal(t, 72, result.Score)
	})

	t.Run("Upstream failure carries its status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprint(w, `{"error":{"message":"overloaded","type":"server_error"}}`)
		}))
		defer server.Close()

		service := newAnalysisService(t, server.URL)
		_, err := service.Analyze(context.Background(), testProfile())

		var statusErr *StatusError
		assert.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
		assert.Equal(t, "Failed to fetch AI analysis", statusErr.Message)
	})

	t.Run("Unparseable content fails closed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, completionBody("here is your analysis: great profile"))
		}))
		defer server.Close()

		service := newAnalysisService(t, server.URL)
		_, err := service.Analyze(context.Background(), testProfile())
		assert.Error(t, err)
	})

	t.Run("Schema violation fails closed", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, completionBody(`{"score":150,"detailed_analysis":"x","developer_type":"y"}`))
		}))
		defer server.Close()

		service := newAnalysisService(t, server.URL)
		_, err := service.Analyze(context.Background(), testProfile())
		assert.ErrorContains(t, err, "invalid analysis response")
	})
}

func TestStripCodeFences(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Plain JSON untouched", input: `{"a":1}`, expected: `{"a":1}`},
		{name: "Fence with language tag", input: "```json\n{\"a\":1}\n```", expected: `{"a":1}`},
		{name: "Bare fence", input: "```\n{\"a\":1}\n```", expected: `{"a":1}`},
		{name: "Surrounding whitespace", input: "  {\"a\":1}  ", expected: `{"a":1}`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, stripCodeFences(tc.input))
		})
	}
}
