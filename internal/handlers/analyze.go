package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/0xarchit/github-profile-analyzer/internal/middleware"
	"github.com/0xarchit/github-profile-analyzer/internal/models"
	"github.com/0xarchit/github-profile-analyzer/internal/services"
	"github.com/0xarchit/github-profile-analyzer/pkg/config"
	"github.com/0xarchit/github-profile-analyzer/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// AnalyzeHandler runs the full analysis pipeline: gate, aggregate, badges,
// narrative synthesis, merge.
type AnalyzeHandler struct {
	gateService        *services.GateService
	profileService     *services.ProfileService
	achievementService *services.AchievementService
	analysisService    *services.AnalysisService
	githubService      *services.GitHubService
}

func NewAnalyzeHandler(
	gateService *services.GateService,
	profileService *services.ProfileService,
	achievementService *services.AchievementService,
	analysisService *services.AnalysisService,
	githubService *services.GitHubService,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		gateService:        gateService,
		profileService:     profileService,
		achievementService: achievementService,
		analysisService:    analysisService,
		githubService:      githubService,
	}
}

// Analyze handles GET /api
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username parameter is required"})
		return
	}

	log := logger.WithFields(logrus.Fields{
		"request_id": middleware.GetRequestID(c),
		"username":   username,
	})

	ctx := c.Request.Context()
	token := h.githubService.PickToken()

	if err := h.gateService.Check(ctx, token, username); err != nil {
		switch {
		case errors.Is(err, services.ErrQuotaExhausted):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "GitHub API rate limit exceeded"})
		case errors.Is(err, services.ErrNotStarred):
			gh := config.AppConfig.GitHub
			c.JSON(http.StatusForbidden, gin.H{
				"error":     fmt.Sprintf("You have not starred the %s/%s repository", gh.StarRepoOwner, gh.StarRepoName),
				"showPopup": true,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check rate limit"})
		}
		log.WithError(err).Info("Analysis gate rejected request")
		return
	}

	// Profile aggregation and badge probes are independent, join both before
	// handing the summary to the synthesizer
	var (
		profile *models.ProfileSummary
		badges  map[string]string
	)
	g, groupCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		profile, err = h.profileService.Aggregate(groupCtx, token, username)
		return err
	})
	g.Go(func() error {
		badges = h.achievementService.UnlockedBadges(groupCtx, username)
		return nil
	})
	if err := g.Wait(); err != nil {
		log.WithError(err).Error("Profile aggregation failed")
		respondUpstreamError(c, err)
		return
	}
	profile.Badges = badges

	analysis, err := h.analysisService.Analyze(ctx, profile)
	if err != nil {
		log.WithError(err).Error("AI analysis failed")
		respondUpstreamError(c, err)
		return
	}

	log.WithFields(logrus.Fields{
		"original_repos": len(profile.OriginalRepos),
		"authored_forks": len(profile.AuthoredForks),
		"badges":         len(profile.Badges),
		"score":          analysis.Score,
	}).Info("Analysis completed")

	c.JSON(http.StatusOK, models.ResponsePayload{
		ProfileSummary: *profile,
		AnalysisResult: *analysis,
	})
}
