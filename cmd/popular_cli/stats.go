package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/news-popular/internal/domain"
	"github.com/DjordjeVuckovic/news-popular/internal/state"
	"github.com/DjordjeVuckovic/news-popular/internal/usecase"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show summary statistics for the fetched articles",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := buildRepository()
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		popular := usecase.NewGetMostPopularArticlesUseCase(repo)
		s := state.ReduceAll(state.InitialState(),
			popular.Execute(ctx, usecase.GetMostPopularArticlesParams{Filter: subcommandFilter()}))
		if s.HasError() {
			return fmt.Errorf("%s", s.ErrorMessage)
		}

		printStats(s.Articles)
		return nil
	},
}

func printStats(articles []domain.Article) {
	stats := domain.ComputeStatistics(articles)

	fmt.Printf("Articles:      %d\n", stats.TotalArticles)
	fmt.Printf("Total views:   %d\n", stats.TotalViews)
	fmt.Printf("Average views: %.1f\n", stats.AverageViews)
	fmt.Printf("With media:    %d\n", stats.ArticlesWithMedia)
	if stats.TopArticle != nil {
		fmt.Printf("Most viewed:   %s (%d views)\n", stats.TopArticle.Title, stats.TopArticle.Views)
	}
	if stats.MostRecentArticle != nil {
		fmt.Printf("Most recent:   %s (%s)\n", stats.MostRecentArticle.Title, stats.MostRecentArticle.PublishedDate)
	}

	grouped := domain.GroupBySection(articles)
	sections := make([]string, 0, len(grouped))
	for section := range grouped {
		sections = append(sections, section)
	}
	sort.Strings(sections)

	fmt.Println("\nBy section:")
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, section := range sections {
		fmt.Fprintf(w, "  %s\t%d\n", section, len(grouped[section]))
	}
	w.Flush()

	if top := domain.TopArticlesByViews(articles, 3); len(top) > 0 {
		fmt.Println("\nTop by views:")
		for _, a := range top {
			fmt.Printf("  %d\t%s\n", a.Views, a.Title)
		}
	}
	if recent := domain.RecentArticles(articles, 3); len(recent) > 0 {
		fmt.Println("\nMost recent:")
		for _, a := range recent {
			fmt.Printf("  %s\t%s\n", a.PublishedDate, a.Title)
		}
	}
}
