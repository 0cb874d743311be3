package services

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/0xarchit/github-profile-analyzer/internal/models"
	"github.com/0xarchit/github-profile-analyzer/pkg/config"
	"github.com/0xarchit/github-profile-analyzer/pkg/logger"
	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

const (
	stargazerPageSize = 100
	stargazerMaxPages = 5

	quotaTimeout       = 60 * time.Second
	profileTimeout     = 30 * time.Second
	commitProbeTimeout = 15 * time.Second
)

// GitHubService wraps every REST call against the hosting API. Each call is
// authenticated with a caller-supplied token from the pool.
type GitHubService struct {
	tokens *models.CredentialPool
}

func NewGitHubService(tokens *models.CredentialPool) *GitHubService {
	return &GitHubService{
		tokens: tokens,
	}
}

// PickToken selects a random token for the current request
func (s *GitHubService) PickToken() string {
	return s.tokens.Pick()
}

// createClient creates a GitHub client with the provided token
func (s *GitHubService) createClient(token string) *github.Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(context.Background(), ts)
	client := github.NewClient(tc)

	// GITHUB_API_URL points the client at a test server when set
	if base := config.AppConfig.GitHub.APIBaseURL; base != "" {
		if parsed, err := url.Parse(strings.TrimSuffix(base, "/") + "/"); err == nil {
			client.BaseURL = parsed
		}
	}

	return client
}

// RemainingQuota returns the remaining core quota for the given token
func (s *GitHubService) RemainingQuota(ctx context.Context, token string) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, quotaTimeout)
	defer cancel()

	limits, _, err := s.createClient(token).RateLimit.Get(ctx)
	if err != nil {
		return 0, err
	}

	return limits.GetCore().Remaining, nil
}

// AggregateRateLimits sums quota totals across every token in the pool,
// skipping tokens whose quota call fails
func (s *GitHubService) AggregateRateLimits(ctx context.Context) models.RateLimitReport {
	var report models.RateLimitReport

	for _, token := range s.tokens.All() {
		tokenCtx, cancel := context.WithTimeout(ctx, quotaTimeout)
		limits, _, err := s.createClient(token).RateLimit.Get(tokenCtx)
		cancel()
		if err != nil {
			logger.WithError(err).Warnf("Skipping token in rate limit aggregate")
			continue
		}

		core := limits.GetCore()
		report.Rate.Limit += core.Limit
		report.Rate.Remaining += core.Remaining
		report.Rate.Used += core.Limit - core.Remaining
	}

	return report
}

// HasStarred scans the stargazers of the designated repository for the
// username, page by page, stopping on a match, an empty page, a failed page
// or the page cap.
func (s *GitHubService) HasStarred(ctx context.Context, token, username string) bool {
	client := s.createClient(token)
	owner := config.AppConfig.GitHub.StarRepoOwner
	repo := config.AppConfig.GitHub.StarRepoName

	for page := 1; page <= stargazerMaxPages; page++ {
		pageCtx, cancel := context.WithTimeout(ctx, profileTimeout)
		stargazers, _, err := client.Activity.ListStargazers(pageCtx, owner, repo, &github.ListOptions{
			Page:    page,
			PerPage: stargazerPageSize,
		})
		cancel()
		if err != nil || len(stargazers) == 0 {
			return false
		}

		for _, stargazer := range stargazers {
			if stargazer.GetUser().GetLogin() == username {
				return true
			}
		}
	}

	return false
}

// GetUser fetches the public profile of the username
func (s *GitHubService) GetUser(ctx context.Context, token, username string) (*github.User, error) {
	ctx, cancel := context.WithTimeout(ctx, profileTimeout)
	defer cancel()

	user, resp, err := s.createClient(token).Users.Get(ctx, username)
	if err != nil {
		return nil, &StatusError{StatusCode: statusFrom(resp), Message: "Failed to fetch user data"}
	}

	return user, nil
}

// ListRepositories fetches the first 100 repositories of the username,
// most recently updated first
func (s *GitHubService) ListRepositories(ctx context.Context, token, username string) ([]*github.Repository, error) {
	ctx, cancel := context.WithTimeout(ctx, profileTimeout)
	defer cancel()

	opt := &github.RepositoryListOptions{
		Sort:        "updated",
		ListOptions: github.ListOptions{PerPage: 100, Page: 1},
	}

	repos, resp, err := s.createClient(token).Repositories.List(ctx, username, opt)
	if err != nil {
		return nil, &StatusError{StatusCode: statusFrom(resp), Message: "Failed to fetch repositories"}
	}

	return repos, nil
}

// HasAuthoredCommits probes whether the user has at least one commit in the
// named repository. Any failure is a silent negative, never an error.
func (s *GitHubService) HasAuthoredCommits(ctx context.Context, token, username, repoName string) bool {
	ctx, cancel := context.WithTimeout(ctx, commitProbeTimeout)
	defer cancel()

	opt := &github.CommitsListOptions{
		Author:      username,
		ListOptions: github.ListOptions{PerPage: 1},
	}

	commits, _, err := s.createClient(token).Repositories.ListCommits(ctx, username, repoName, opt)
	if err != nil {
		return false
	}

	return len(commits) > 0
}

// statusFrom extracts the upstream status code from a go-github response
func statusFrom(resp *github.Response) int {
	if resp != nil && resp.Response != nil {
		return resp.StatusCode
	}
	return 500
}
