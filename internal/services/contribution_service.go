package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/0xarchit/github-profile-analyzer/internal/models"
	"github.com/0xarchit/github-profile-analyzer/internal/repositories"
	"github.com/0xarchit/github-profile-analyzer/pkg/config"
	"github.com/0xarchit/github-profile-analyzer/pkg/logger"
)

const (
	calendarTTL     = time.Hour
	calendarTimeout = 30 * time.Second

	cellSize   = 10
	cellMargin = 2
	daysCount  = 7
)

const contributionQuery = `
query($login: String!) {
  user(login: $login) {
    contributionsCollection {
      contributionCalendar {
        weeks {
          contributionDays {
            date
            contributionCount
          }
        }
      }
    }
  }
}
`

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type contributionDay struct {
	Date              string `json:"date"`
	ContributionCount int    `json:"contributionCount"`
}

type contributionWeek struct {
	ContributionDays []contributionDay `json:"contributionDays"`
}

type calendarData struct {
	User struct {
		ContributionsCollection struct {
			ContributionCalendar struct {
				Weeks []contributionWeek `json:"weeks"`
			} `json:"contributionCalendar"`
		} `json:"contributionsCollection"`
	} `json:"user"`
}

// ContributionService fetches a user's contribution calendar over GraphQL and
// renders it as an SVG, backed by the pass-through cache.
type ContributionService struct {
	tokens     *models.CredentialPool
	cacheRepo  *repositories.SVGCacheRepository
	httpClient *http.Client
}

func NewContributionService(tokens *models.CredentialPool, cacheRepo *repositories.SVGCacheRepository) *ContributionService {
	return &ContributionService{
		tokens:     tokens,
		cacheRepo:  cacheRepo,
		httpClient: &http.Client{Timeout: calendarTimeout},
	}
}

// Render returns the calendar SVG for the username, from cache when fresh.
// cacheKey is the exact request URL.
func (s *ContributionService) Render(ctx context.Context, cacheKey, username string) ([]byte, error) {
	body, found, err := s.cacheRepo.Get(cacheKey)
	if err != nil {
		logger.WithError(err).Warnf("Contribution cache lookup failed")
	}
	if found {
		return body, nil
	}

	weeks, err := s.fetchCalendar(ctx, username)
	if err != nil {
		return nil, err
	}

	svg := renderCalendarSVG(weeks)

	if err := s.cacheRepo.Put(cacheKey, svg, "image/svg+xml", calendarTTL); err != nil {
		logger.WithError(err).Warnf("Failed to store contribution SVG in cache")
	}

	return svg, nil
}

// fetchCalendar runs the contribution calendar GraphQL query with a randomly
// selected token
func (s *ContributionService) fetchCalendar(ctx context.Context, username string) ([]contributionWeek, error) {
	reqBody, err := json.Marshal(graphqlRequest{
		Query:     contributionQuery,
		Variables: map[string]any{"login": username},
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, config.AppConfig.GitHub.GraphQLURL, bytes.NewReader(reqBody))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.tokens.Pick())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", "github-profile-analyzer/1.0")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("GitHub API error: %d - %s", resp.StatusCode, string(respBody)),
		}
	}

	var gqlResp graphqlResponse
	if err := json.Unmarshal(respBody, &gqlResp); err != nil {
		return nil, fmt.Errorf("parsing GraphQL response: %w", err)
	}
	if len(gqlResp.Errors) > 0 {
		return nil, fmt.Errorf("GraphQL error: %s", gqlResp.Errors[0].Message)
	}

	var data calendarData
	if err := json.Unmarshal(gqlResp.Data, &data); err != nil {
		return nil, fmt.Errorf("parsing calendar data: %w", err)
	}

	return data.User.ContributionsCollection.ContributionCalendar.Weeks, nil
}

// renderCalendarSVG draws one fixed-size cell per day, color intensity
// normalized against the busiest day in the window
func renderCalendarSVG(weeks []contributionWeek) []byte {
	width := len(weeks)*(cellSize+cellMargin) + cellMargin
	height := daysCount*(cellSize+cellMargin) + cellMargin

	maxContrib := 1
	for _, week := range weeks {
		for _, day := range week.ContributionDays {
			if day.ContributionCount > maxContrib {
				maxContrib = day.ContributionCount
			}
		}
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, width, height)
	b.WriteString(`<rect width="100%" height="100%" fill="#1a1a1a"/>`)

	for wi, week := range weeks {
		for di, day := range week.ContributionDays {
			x := wi * (cellSize + cellMargin)
			y := di * (cellSize + cellMargin)

			fill := "#2f3727"
			if day.ContributionCount > 0 {
				intensity := float64(day.ContributionCount) / float64(maxContrib)
				if intensity > 1 {
					intensity = 1
				}
				fill = fmt.Sprintf("rgba(0,255,0,%.2f)", 0.2+intensity*0.8)
			}

			fmt.Fprintf(&b, `<rect x="%d" y="%d" width="%d" height="%d" fill="%s"/>`, x, y, cellSize, cellSize, fill)
		}
	}
	b.WriteString("</svg>")

	return []byte(b.String())
}
