package services

import (
	"context"
	"sync"

	"github.com/0xarchit/github-profile-analyzer/internal/models"
	"github.com/google/go-github/v57/github"
	"golang.org/x/sync/errgroup"
)

// forkProbeBatchSize bounds how many commit-authorship probes run at once
const forkProbeBatchSize = 15

type forkCandidate struct {
	name    string
	summary models.RepositorySummary
}

// ProfileService builds the per-request ProfileSummary: profile fields, the
// original/fork partition of the first 100 repositories, and the authored
// forks confirmed by commit probes.
type ProfileService struct {
	githubService *GitHubService
}

func NewProfileService(githubService *GitHubService) *ProfileService {
	return &ProfileService{
		githubService: githubService,
	}
}

// Aggregate fetches the user profile and repository listing concurrently,
// partitions the repositories, and probes fork candidates for authorship
func (s *ProfileService) Aggregate(ctx context.Context, token, username string) (*models.ProfileSummary, error) {
	var (
		user  *github.User
		repos []*github.Repository
	)

	g, groupCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		user, err = s.githubService.GetUser(groupCtx, token, username)
		return err
	})
	g.Go(func() error {
		var err error
		repos, err = s.githubService.ListRepositories(groupCtx, token, username)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	originals, forks := partitionRepositories(repos)

	return &models.ProfileSummary{
		Avatar:          user.AvatarURL,
		Username:        user.Login,
		Name:            user.Name,
		Company:         user.Company,
		Location:        user.Location,
		Blog:            user.Blog,
		Bio:             user.Bio,
		Email:           user.Email,
		Twitter:         user.TwitterUsername,
		Followers:       user.GetFollowers(),
		Following:       user.GetFollowing(),
		PublicRepoCount: user.GetPublicRepos(),
		OriginalRepos:   originals,
		AuthoredForks:   s.probeForks(ctx, token, username, forks),
	}, nil
}

// partitionRepositories splits a listing into originals and fork candidates.
// Every repository lands in exactly one of the two.
func partitionRepositories(repos []*github.Repository) (map[string]models.RepositorySummary, []forkCandidate) {
	originals := make(map[string]models.RepositorySummary)
	var forks []forkCandidate

	for _, repo := range repos {
		summary := buildRepositorySummary(repo)
		if repo.GetFork() {
			forks = append(forks, forkCandidate{name: repo.GetName(), summary: summary})
		} else {
			originals[repo.GetName()] = summary
		}
	}

	return originals, forks
}

// probeForks runs commit-authorship probes in sequential batches, each
// batch's probes concurrent. A failed probe is a silent negative and never
// aborts its batch.
func (s *ProfileService) probeForks(ctx context.Context, token, username string, forks []forkCandidate) map[string]models.RepositorySummary {
	authored := make(map[string]models.RepositorySummary)
	var mu sync.Mutex

	for start := 0; start < len(forks); start += forkProbeBatchSize {
		end := min(start+forkProbeBatchSize, len(forks))

		var g errgroup.Group
		for _, fork := range forks[start:end] {
			fork := fork
			g.Go(func() error {
				if s.githubService.HasAuthoredCommits(ctx, token, username, fork.name) {
					mu.Lock()
					authored[fork.name] = fork.summary
					mu.Unlock()
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	return authored
}

// buildRepositorySummary maps upstream repository data to the response shape
func buildRepositorySummary(repo *github.Repository) models.RepositorySummary {
	summary := models.RepositorySummary{
		Description:    repo.Description,
		Stars:          repo.GetStargazersCount(),
		Forks:          repo.GetForksCount(),
		Issues:         repo.GetOpenIssuesCount(),
		Watchers:       repo.GetWatchersCount(),
		PrimaryLang:    repo.Language,
		HasIssues:      repo.GetHasIssues(),
		HasProjects:    repo.GetHasProjects(),
		HasWiki:        repo.GetHasWiki(),
		HasPages:       repo.GetHasPages(),
		HasDownloads:   repo.GetHasDownloads(),
		HasDiscussions: repo.GetHasDiscussions(),
		Topics:         repo.Topics,
	}

	if license := repo.GetLicense(); license != nil {
		summary.License = models.LicenseInfo{
			Key:    license.GetKey(),
			Name:   license.GetName(),
			SPDXID: license.GetSPDXID(),
			URL:    license.GetURL(),
		}
	}
	if summary.Topics == nil {
		summary.Topics = []string{}
	}

	return summary
}
