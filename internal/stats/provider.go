package stats

import (
	"context"
	"errors"

	"freelance-market-api/internal/models"
	"freelance-market-api/internal/realtime"

	"gorm.io/gorm"
)

// Provider reads persisted stat columns for the realtime layer. It only
// ever reads; the write path lives in the HTTP handlers.
type Provider struct {
	db *gorm.DB
}

func NewProvider(db *gorm.DB) *Provider {
	return &Provider{db: db}
}

// GetProjectStats implements realtime.StatsProvider.
func (p *Provider) GetProjectStats(ctx context.Context, projectID string) (realtime.ProjectStats, error) {
	var project models.Project
	err := p.db.WithContext(ctx).First(&project, "id = ?", projectID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return realtime.ProjectStats{}, realtime.ErrNotFound
		}
		return realtime.ProjectStats{}, err
	}
	return realtime.ProjectStats{
		ViewCount:         project.ViewCount,
		ApplicationsCount: project.ApplicationsCount,
		BookmarkCount:     project.BookmarkCount,
	}, nil
}

// GetFreelancerStats implements realtime.StatsProvider.
func (p *Provider) GetFreelancerStats(ctx context.Context, freelancerID string) (realtime.FreelancerStats, error) {
	var freelancer models.Freelancer
	err := p.db.WithContext(ctx).First(&freelancer, "id = ?", freelancerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return realtime.FreelancerStats{}, realtime.ErrNotFound
		}
		return realtime.FreelancerStats{}, err
	}
	return realtime.FreelancerStats{
		ViewCount:    freelancer.ViewCount,
		ProjectCount: freelancer.ProjectCount,
	}, nil
}

// Ensure Provider satisfies the realtime contract at compile time.
var _ realtime.StatsProvider = (*Provider)(nil)
