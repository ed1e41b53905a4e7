package state

import (
	"context"
	"errors"
	"testing"

	"github.com/DjordjeVuckovic/news-popular/internal/apperr"
	"github.com/DjordjeVuckovic/news-popular/internal/domain"
	"github.com/DjordjeVuckovic/news-popular/internal/resource"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleArticles() []domain.Article {
	return []domain.Article{
		{ID: 1, Title: "First", URL: "u"},
		{ID: 2, Title: "Second", URL: "u"},
	}
}

func TestInitialState(t *testing.T) {
	s := InitialState()

	assert.Equal(t, domain.DefaultPeriod(), s.SelectedPeriod)
	assert.True(t, s.IsEmpty())
	assert.False(t, s.HasError())
	assert.False(t, s.ShowContent())
}

func TestReduce_LoadingWithoutContentShowsSpinner(t *testing.T) {
	s := Reduce(InitialState(), resource.Loading[[]domain.Article]())

	assert.True(t, s.IsLoading)
	assert.False(t, s.IsRefreshing)
	assert.False(t, s.ShowContent())
}

func TestReduce_LoadingWithContentIsRefresh(t *testing.T) {
	s := InitialState()
	s = Reduce(s, resource.Success(sampleArticles()))

	s = Reduce(s, resource.Loading[[]domain.Article]())

	assert.False(t, s.IsLoading)
	assert.True(t, s.IsRefreshing)
	assert.True(t, s.ShowContent(), "previous list stays visible while refreshing")
	require.Len(t, s.Articles, 2)
}

func TestReduce_SuccessReplacesArticlesAndClearsError(t *testing.T) {
	s := InitialState()
	s = Reduce(s, resource.Failure[[]domain.Article](apperr.New(apperr.KindServer, "boom")))
	require.True(t, s.HasError())

	s = Reduce(s, resource.Success(sampleArticles()))

	assert.False(t, s.HasError())
	assert.False(t, s.IsLoading)
	assert.Len(t, s.Articles, 2)
	assert.True(t, s.ShowContent())
}

func TestReduce_ErrorKeepsPreviousArticles(t *testing.T) {
	s := InitialState()
	s = Reduce(s, resource.Success(sampleArticles()))

	s = Reduce(s, resource.Loading[[]domain.Article]())
	s = Reduce(s, resource.Failure[[]domain.Article](apperr.New(apperr.KindNetwork, "dial tcp: timeout")))

	assert.True(t, s.HasError())
	assert.False(t, s.IsRefreshing)
	assert.Len(t, s.Articles, 2, "failed refresh must not blank the screen")
}

func TestReduce_ErrorMessageIsUserFacing(t *testing.T) {
	cause := apperr.New(apperr.KindNetwork, "dial tcp 10.0.0.1:443: i/o timeout")

	s := Reduce(InitialState(), resource.Failure[[]domain.Article](cause))

	assert.Equal(t, apperr.UserMessage(cause), s.ErrorMessage)
	assert.NotContains(t, s.ErrorMessage, "dial tcp")
}

func TestReduce_ValidationMessageShownVerbatim(t *testing.T) {
	cause := apperr.NewValidation("search query must be at least 2 characters")

	s := Reduce(InitialState(), resource.Failure[[]domain.Article](cause))

	assert.Equal(t, "search query must be at least 2 characters", s.ErrorMessage)
}

func TestReduce_UnclassifiedErrorGetsDefaultMessage(t *testing.T) {
	s := Reduce(InitialState(), resource.Failure[[]domain.Article](errors.New("weird")))

	assert.True(t, s.HasError())
	assert.NotEmpty(t, s.ErrorMessage)
}

func TestReduceAll_DrainsStreamToTerminalState(t *testing.T) {
	stream := resource.Go(context.Background(), func(ctx context.Context) ([]domain.Article, error) {
		return sampleArticles(), nil
	})

	s := ReduceAll(InitialState(), stream)

	assert.False(t, s.IsLoading)
	assert.Len(t, s.Articles, 2)
	assert.False(t, s.HasError())
}

func TestWithPeriodAndQuery(t *testing.T) {
	s := InitialState().WithPeriod(domain.PeriodThirtyDays).WithQuery("cats")

	assert.Equal(t, domain.PeriodThirtyDays, s.SelectedPeriod)
	assert.Equal(t, "cats", s.SearchQuery)
}
