package usecase

import (
	"context"

	"github.com/DjordjeVuckovic/news-popular/internal/apperr"
	"github.com/DjordjeVuckovic/news-popular/internal/domain"
	"github.com/DjordjeVuckovic/news-popular/internal/repository"
	"github.com/DjordjeVuckovic/news-popular/internal/resource"
)

type GetArticleDetailsParams struct {
	ArticleID int64
}

type GetArticleDetailsUseCase struct {
	repo repository.ArticlesRepository
}

func NewGetArticleDetailsUseCase(repo repository.ArticlesRepository) *GetArticleDetailsUseCase {
	return &GetArticleDetailsUseCase{repo: repo}
}

func (uc *GetArticleDetailsUseCase) Execute(ctx context.Context, params GetArticleDetailsParams) resource.Stream[domain.Article] {
	if params.ArticleID <= 0 {
		return resource.Fail[domain.Article](apperr.NewValidation("article id must be a positive number"))
	}
	return uc.repo.GetArticleByID(ctx, params.ArticleID)
}
