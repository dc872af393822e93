package usecase

import (
	"context"
	"time"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
	"github.com/AJEETSINGHPATEL/jobportal-backend/pkg/apperror"
)

type reviewUsecase struct {
	reviewRepo  domain.ReviewRepository
	companyRepo domain.CompanyRepository
}

func NewReviewUsecase(reviewRepo domain.ReviewRepository, companyRepo domain.CompanyRepository) domain.ReviewUsecase {
	return &reviewUsecase{
		reviewRepo:  reviewRepo,
		companyRepo: companyRepo,
	}
}

func validRatings(review *domain.Review) bool {
	for _, r := range []int{
		review.RatingWorkCulture, review.RatingSalary,
		review.RatingHR, review.RatingManagement,
	} {
		if r < 1 || r > 5 {
			return false
		}
	}
	return true
}

func (u *reviewUsecase) CreateReview(ctx context.Context, actor domain.Identity, review *domain.Review) error {
	if _, err := u.companyRepo.GetByID(ctx, review.CompanyID); err != nil {
		return apperror.NotFound("Company not found")
	}
	if !validRatings(review) {
		return apperror.BadRequest("Ratings must be between 1 and 5")
	}

	now := time.Now()
	review.UserID = actor.UserID
	review.CreatedAt = now
	review.UpdatedAt = now

	return u.reviewRepo.Create(ctx, review)
}

func (u *reviewUsecase) ListByCompany(ctx context.Context, companyID string, page, pageSize int) ([]domain.Review, *domain.ReviewAggregate, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	offset := (page - 1) * pageSize

	reviews, total, err := u.reviewRepo.GetByCompanyID(ctx, companyID, pageSize, offset)
	if err != nil {
		return nil, nil, 0, err
	}
	agg, err := u.reviewRepo.Aggregate(ctx, companyID)
	if err != nil {
		return nil, nil, 0, err
	}
	return reviews, agg, total, nil
}

func (u *reviewUsecase) UpdateReview(ctx context.Context, actor domain.Identity, review *domain.Review) error {
	existing, err := u.reviewRepo.GetByID(ctx, review.ID)
	if err != nil {
		return apperror.NotFound("Review not found")
	}
	if existing.UserID != actor.UserID && !actor.IsAdmin() {
		return apperror.Forbidden("You do not own this review")
	}
	if !validRatings(review) {
		return apperror.BadRequest("Ratings must be between 1 and 5")
	}

	review.UserID = existing.UserID
	review.CompanyID = existing.CompanyID
	review.UpdatedAt = time.Now()

	return u.reviewRepo.Update(ctx, review)
}

func (u *reviewUsecase) DeleteReview(ctx context.Context, actor domain.Identity, id string) error {
	existing, err := u.reviewRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.NotFound("Review not found")
	}
	if existing.UserID != actor.UserID && !actor.IsAdmin() {
		return apperror.Forbidden("You do not own this review")
	}
	return u.reviewRepo.Delete(ctx, id)
}
