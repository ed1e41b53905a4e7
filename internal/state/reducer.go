// Package state folds resource events into an immutable view model for
// a list screen. Each Reduce call returns a new state; callers keep
// whichever snapshot they need.
package state

import (
	"github.com/DjordjeVuckovic/news-popular/internal/apperr"
	"github.com/DjordjeVuckovic/news-popular/internal/domain"
	"github.com/DjordjeVuckovic/news-popular/internal/resource"
)

// ListState is the render-ready snapshot of the article list.
type ListState struct {
	IsLoading      bool
	IsRefreshing   bool
	Articles       []domain.Article
	ErrorMessage   string
	SelectedPeriod domain.Period
	SearchQuery    string
}

// InitialState is the state before any event arrives.
func InitialState() ListState {
	return ListState{SelectedPeriod: domain.DefaultPeriod()}
}

// IsEmpty reports whether a loaded state has nothing to show.
func (s ListState) IsEmpty() bool {
	return !s.IsLoading && !s.IsRefreshing && s.ErrorMessage == "" && len(s.Articles) == 0
}

func (s ListState) HasError() bool {
	return s.ErrorMessage != ""
}

// ShowContent reports whether the article list should be rendered.
// Refreshing keeps the previous list on screen.
func (s ListState) ShowContent() bool {
	return len(s.Articles) > 0 && !s.IsLoading
}

// Reduce folds one resource event into the state.
//
// Loading with no prior articles shows the full-screen spinner; with
// prior articles it is a refresh and the list stays visible. Success
// replaces the list and clears any error. Error keeps the previous
// list so a failed refresh does not blank the screen.
func Reduce(s ListState, r resource.Resource[[]domain.Article]) ListState {
	switch {
	case r.IsLoading():
		if len(s.Articles) > 0 {
			s.IsRefreshing = true
		} else {
			s.IsLoading = true
		}
		s.ErrorMessage = ""
	case r.IsSuccess():
		s.IsLoading = false
		s.IsRefreshing = false
		s.Articles = r.Value()
		s.ErrorMessage = ""
	case r.IsError():
		s.IsLoading = false
		s.IsRefreshing = false
		s.ErrorMessage = apperr.UserMessage(r.Err())
	}
	return s
}

// ReduceAll drains a stream into the terminal state.
func ReduceAll(s ListState, stream resource.Stream[[]domain.Article]) ListState {
	for r := range stream {
		s = Reduce(s, r)
	}
	return s
}

// WithPeriod records a period selection. The caller is expected to
// re-run the fetch and reduce the new stream.
func (s ListState) WithPeriod(p domain.Period) ListState {
	s.SelectedPeriod = p
	return s
}

// WithQuery records the active search query.
func (s ListState) WithQuery(q string) ListState {
	s.SearchQuery = q
	return s
}
