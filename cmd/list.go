package cmd

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdb-cli/config"
	"github.com/s0up4200/tmdb-cli/display"
	"github.com/s0up4200/tmdb-cli/filter"
	"github.com/s0up4200/tmdb-cli/tmdb"
)

// verb maps a CLI keyword onto a TMDB list endpoint
type verb struct {
	Name     string
	Endpoint tmdb.Endpoint
	Short    string
}

var verbs = []verb{
	{Name: "playing", Endpoint: tmdb.EndpointNowPlaying, Short: "List movies that are now playing in theatres"},
	{Name: "popular", Endpoint: tmdb.EndpointPopular, Short: "List popular movies"},
	{Name: "top", Endpoint: tmdb.EndpointTopRated, Short: "List top-rated movies"},
	{Name: "upcoming", Endpoint: tmdb.EndpointUpcoming, Short: "List upcoming movies"},
}

// EndpointFor returns the TMDB endpoint for a verb, matched case-insensitively
func EndpointFor(name string) (tmdb.Endpoint, bool) {
	for _, v := range verbs {
		if strings.EqualFold(v.Name, strings.TrimSpace(name)) {
			return v.Endpoint, true
		}
	}
	return "", false
}

// newTMDBLister builds the HTTP client used by the list commands
func newTMDBLister(cfg *config.Config, token string, logger zerolog.Logger) (tmdb.MovieLister, error) {
	client, err := tmdb.NewClient(cfg.TMDB.BaseURL, token, logger,
		tmdb.WithTimeout(cfg.TMDB.Timeout),
		tmdb.WithLanguage(cfg.TMDB.Language),
		tmdb.WithUserAgent(userAgent()),
	)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (a *app) newListCmd(v verb) *cobra.Command {
	cmd := &cobra.Command{
		Use:     v.Name,
		Short:   v.Short,
		Args:    cobra.NoArgs,
		PreRunE: a.initializeApp,
		RunE: func(cmd *cobra.Command, args []string) error {
			endpoint, ok := EndpointFor(cmd.Name())
			if !ok {
				return fmt.Errorf("no endpoint for command '%s'", cmd.Name())
			}
			return a.runList(cmd, endpoint)
		},
	}

	cmd.Flags().StringVarP(&a.filterExpr, "filter", "f", "", "filter expression, e.g. 'Rating >= 7 and Year >= 2020'")
	cmd.Flags().StringVar(&a.sortBy, "sort", "", "sort by rating, votes, title, date or popularity (default TMDB order)")
	cmd.Flags().IntVarP(&a.limit, "limit", "n", 0, "show at most N movies (0 shows all)")
	cmd.Flags().StringVarP(&a.output, "output", "o", "table", "output format: table, json or yaml")

	return cmd
}

func (a *app) runList(cmd *cobra.Command, endpoint tmdb.Endpoint) error {
	// Validate presentation flags before touching the network
	format, err := display.ParseFormat(a.output)
	if err != nil {
		return err
	}

	sortKey, err := filter.ParseSortKey(a.sortBy)
	if err != nil {
		return err
	}

	if a.limit < 0 {
		return &filter.OptionError{Option: "limit", Value: cmd.Flag("limit").Value.String(), Reason: "must not be negative"}
	}

	movieFilter, err := filter.ParseAndCreateFilter(a.filterExpr)
	if err != nil {
		return err
	}

	token, err := config.ResolveAccessToken(a.cfg.TMDB.EnvFile, a.cfg.TMDB.AccessToken)
	if err != nil {
		return err
	}

	client, err := a.newLister(a.cfg, token, a.logger)
	if err != nil {
		return err
	}

	a.logger.Info().Str("endpoint", string(endpoint)).Msg("Fetching movie list")

	list, err := client.GetMovieList(cmd.Context(), endpoint)
	if err != nil {
		return err
	}

	movies := filter.Apply(list.Results, movieFilter)
	filter.Sort(movies, sortKey)
	movies = filter.Limit(movies, a.limit)

	if movieFilter.Expression() != "" {
		a.logger.Debug().
			Str("filter", movieFilter.Expression()).
			Int("matched", len(movies)).
			Int("fetched", len(list.Results)).
			Msg("Applied filter")
	}

	return display.Render(cmd.OutOrStdout(), format, movies)
}
