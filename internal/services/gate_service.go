package services

import (
	"context"
	"fmt"
)

// GateService checks the two preconditions of the analysis pipeline: the
// token's remaining quota and the target user's star on the designated
// repository. No further hosting-API call is made once a check fails.
type GateService struct {
	githubService *GitHubService
}

func NewGateService(githubService *GitHubService) *GateService {
	return &GateService{
		githubService: githubService,
	}
}

// Check validates the quota and star-gate preconditions for the username
func (s *GateService) Check(ctx context.Context, token, username string) error {
	remaining, err := s.githubService.RemainingQuota(ctx, token)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrQuotaCheckFailed, err)
	}
	if remaining == 0 {
		return ErrQuotaExhausted
	}

	if !s.githubService.HasStarred(ctx, token, username) {
		return ErrNotStarred
	}

	return nil
}
