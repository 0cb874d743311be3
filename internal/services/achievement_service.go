package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/0xarchit/github-profile-analyzer/internal/models"
	"github.com/0xarchit/github-profile-analyzer/pkg/config"
	"golang.org/x/sync/errgroup"
)

const achievementProbeTimeout = 10 * time.Second

// AchievementService probes the fixed badge catalog against the user's
// public profile page. Unlocked means the probe URL answers 200; anything
// else, including transport failures, is a silent negative.
type AchievementService struct {
	httpClient *http.Client
}

func NewAchievementService() *AchievementService {
	return &AchievementService{
		httpClient: &http.Client{Timeout: achievementProbeTimeout},
	}
}

// UnlockedBadges probes every slug in the catalog concurrently and returns
// the unlocked slug to badge image mapping
func (s *AchievementService) UnlockedBadges(ctx context.Context, username string) map[string]string {
	unlocked := make(map[string]string)
	var mu sync.Mutex

	var g errgroup.Group
	for slug, asset := range models.BadgeAssets {
		slug, asset := slug, asset
		g.Go(func() error {
			if s.hasAchievement(ctx, username, slug) {
				mu.Lock()
				unlocked[slug] = asset
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return unlocked
}

// hasAchievement issues one HEAD probe for the slug
func (s *AchievementService) hasAchievement(ctx context.Context, username, slug string) bool {
	probeURL := fmt.Sprintf("%s/%s?tab=achievements&achievement=%s",
		config.AppConfig.GitHub.ProfileBaseURL, url.PathEscape(username), slug)

	req, err := http.NewRequestWithContext(ctx, http.MethodHead, probeURL, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", "github-profile-analyzer/1.0")
	req.Header.Set("Accept", "*/*")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode == http.StatusOK
}
