package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/DjordjeVuckovic/news-popular/internal/cache"
	"github.com/DjordjeVuckovic/news-popular/internal/domain"
	"github.com/DjordjeVuckovic/news-popular/internal/nyt"
	"github.com/DjordjeVuckovic/news-popular/internal/repository"
	"github.com/DjordjeVuckovic/news-popular/internal/state"
	"github.com/DjordjeVuckovic/news-popular/internal/usecase"
	"github.com/spf13/cobra"
)

var (
	flagPeriod   string
	flagSection  string
	flagSort     string
	flagHasMedia bool
	flagSearch   string
	flagConfig   string
	flagLimit    int
)

var rootCmd = &cobra.Command{
	Use:   "popular",
	Short: "Browse the most popular NYT articles",
	Long:  "popular fetches the most viewed New York Times articles and lets you filter, sort and search them from the terminal.",
	RunE:  runList,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPeriod, "period", "7", "time window in days: 1, 7 or 30")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file")
	rootCmd.Flags().StringVar(&flagSection, "section", "", "only show articles from this section")
	rootCmd.Flags().StringVar(&flagSort, "sort", "views_desc", "sort order: views_desc, views_asc, date_desc, date_asc, title_asc, title_desc")
	rootCmd.Flags().BoolVar(&flagHasMedia, "has-media", false, "only show articles with media renditions")
	rootCmd.Flags().StringVar(&flagSearch, "search", "", "rank cached articles against this query after fetching")
	rootCmd.Flags().IntVar(&flagLimit, "limit", 20, "maximum number of articles to print")

	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(statsCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func buildRepository() (*repository.CachedArticlesRepository, error) {
	cfg, err := LoadCliConfig(flagConfig)
	if err != nil {
		return nil, err
	}

	var opts []nyt.ClientOption
	if cfg.BaseURL != "" {
		opts = append(opts, nyt.WithBaseURL(cfg.BaseURL))
	}
	client := nyt.NewClient(cfg.ApiKey, opts...)

	return repository.NewCachedArticlesRepository(client, cache.New(cfg.TTL(), nil)), nil
}

func runList(cmd *cobra.Command, args []string) error {
	repo, err := buildRepository()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	filter := domain.ArticleFilter{
		Period:  domain.Period(flagPeriod),
		Section: flagSection,
		SortBy:  domain.SortBy(flagSort),
	}
	if cmd.Flags().Changed("has-media") {
		filter.HasMedia = &flagHasMedia
	}

	popular := usecase.NewGetMostPopularArticlesUseCase(repo)
	s := state.InitialState().WithPeriod(filter.Period)
	s = state.ReduceAll(s, popular.Execute(ctx, usecase.GetMostPopularArticlesParams{Filter: filter}))

	if flagSearch != "" {
		s = searchState(ctx, repo, s)
	}

	if s.HasError() {
		return fmt.Errorf("%s", s.ErrorMessage)
	}
	if s.IsEmpty() {
		fmt.Println("No articles found.")
		return nil
	}

	fmt.Printf("Most popular (%s)\n\n", s.SelectedPeriod.DisplayName())
	printArticles(s.Articles, flagLimit)
	return nil
}

func searchState(ctx context.Context, repo repository.ArticlesRepository, s state.ListState) state.ListState {
	search := usecase.NewSearchArticlesUseCase(repo)
	s = s.WithQuery(flagSearch)
	return state.ReduceAll(s, search.Execute(ctx, usecase.SearchArticlesParams{Query: flagSearch}))
}

func printArticles(articles []domain.Article, limit int) {
	if limit > 0 && len(articles) > limit {
		articles = articles[:limit]
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "VIEWS\tSECTION\tDATE\tTITLE")
	for _, a := range articles {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", a.Views, a.Section, a.PublishedDate, a.Title)
	}
	w.Flush()
}

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the sections present in the fetched articles",
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

		for _, section := range domain.ExtractSections(s.Articles) {
			fmt.Println(section)
		}
		return nil
	},
}

// subcommandFilter builds the default filter for display subcommands.
// The period flag is resolved leniently, falling back to the default
// window instead of erroring.
func subcommandFilter() domain.ArticleFilter {
	filter := domain.DefaultFilter()
	filter.Period = domain.PeriodFromValue(flagPeriod)
	return filter
}
