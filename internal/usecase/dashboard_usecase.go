package usecase

import (
	"context"

	"github.com/stocai/blog-admin/internal/domain/entity"
	usecasecontract "github.com/stocai/blog-admin/internal/usecase/contract"
)

const recentItemLimit = 5

// DashboardUseCase aggregates the admin landing-page numbers from the
// cached resource reads, so a dashboard render costs at most four
// upstream calls and usually none.
type DashboardUseCase struct {
	blogs    usecasecontract.IBlogUseCase
	comments usecasecontract.ICommentUseCase
	feedback usecasecontract.IFeedbackUseCase
	stories  usecasecontract.IStoryUseCase
}

// NewDashboardUseCase creates the dashboard aggregation usecase.
func NewDashboardUseCase(blogs usecasecontract.IBlogUseCase, comments usecasecontract.ICommentUseCase, feedback usecasecontract.IFeedbackUseCase, stories usecasecontract.IStoryUseCase) *DashboardUseCase {
	return &DashboardUseCase{blogs: blogs, comments: comments, feedback: feedback, stories: stories}
}

// GetStats computes blog and comment counts, the average feedback rating,
// the number of stories still awaiting approval, and the most recent
// blogs and comments.
func (uc *DashboardUseCase) GetStats(ctx context.Context) (entity.DashboardStats, error) {
	blogs, err := uc.blogs.ListBlogs(ctx)
	if err != nil {
		return entity.DashboardStats{}, err
	}
	comments, err := uc.comments.ListComments(ctx, "")
	if err != nil {
		return entity.DashboardStats{}, err
	}
	feedback, err := uc.feedback.ListFeedback(ctx, "")
	if err != nil {
		return entity.DashboardStats{}, err
	}
	stories, err := uc.stories.ListStories(ctx)
	if err != nil {
		return entity.DashboardStats{}, err
	}

	stats := entity.DashboardStats{
		BlogCount:      len(blogs),
		CommentCount:   len(comments),
		RecentBlogs:    head(blogs, recentItemLimit),
		RecentComments: head(comments, recentItemLimit),
	}
	if len(feedback) > 0 {
		sum := 0
		for _, f := range feedback {
			sum += f.Rating
		}
		stats.AverageRating = float64(sum) / float64(len(feedback))
	}
	for _, s := range stories {
		if !s.AllowPublish {
			stats.PendingStories++
		}
	}
	return stats, nil
}

func head[T any](items []T, n int) []T {
	if len(items) < n {
		n = len(items)
	}
	return items[:n]
}

var _ usecasecontract.IDashboardUseCase = (*DashboardUseCase)(nil)
