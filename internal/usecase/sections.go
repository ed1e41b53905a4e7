package usecase

import (
	"context"

	"github.com/DjordjeVuckovic/news-popular/internal/repository"
	"github.com/DjordjeVuckovic/news-popular/internal/resource"
)

type GetSectionsUseCase struct {
	repo repository.ArticlesRepository
}

func NewGetSectionsUseCase(repo repository.ArticlesRepository) *GetSectionsUseCase {
	return &GetSectionsUseCase{repo: repo}
}

// Execute lists the sections present in the cached article set.
func (uc *GetSectionsUseCase) Execute(ctx context.Context) resource.Stream[[]string] {
	return uc.repo.AvailableSections(ctx)
}
