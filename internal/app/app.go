package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jbeshir/set-ranker/internal/command"
	"github.com/jbeshir/set-ranker/internal/datasources"
	"github.com/jbeshir/set-ranker/internal/datasources/memory"
	"github.com/jbeshir/set-ranker/internal/datasources/mysql"
	"github.com/jbeshir/set-ranker/internal/datasources/redis"
	"github.com/jbeshir/set-ranker/internal/transport/web/router"
	"github.com/jbeshir/set-ranker/internal/transport/web/server"
)

type Component interface {
	Run(ctx context.Context) error
}

func Setup(ctx context.Context) ([]Component, error) {
	ratings, err := setupRatingRepository(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up rating repository: %w", err)
	}

	cache, err := setupRankingsCache(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up rankings cache: %w", err)
	}

	authMiddleware, err := setupAuthMiddleware(ctx)
	if err != nil {
		return nil, fmt.Errorf("setting up auth middleware: %w", err)
	}

	eloConfig := DefaultEloConfig()
	if err := eloConfig.Validate(); err != nil {
		return nil, fmt.Errorf("validating elo config: %w", err)
	}

	selectCandidatesCmd := command.NewSelectCandidates(ratings, DefaultSelectCandidatesConfig())

	httpRouter, err := router.MakeRouter(
		ratings,
		router.Commands{
			GetCandidates:    command.NewGetCandidates(ratings, selectCandidatesCmd),
			SubmitVote:       command.NewSubmitVote(ratings, cache, eloConfig),
			ListRankings:     command.NewListRankings(ratings, cache),
			SetItemSentiment: command.NewSetItemSentiment(ratings, cache),
		},
		MustGetEnvAsString(ctx, "RSS_FEED_BASE_URL"),
		authMiddleware,
	)
	if err != nil {
		return nil, fmt.Errorf("unable to create HTTP router: %w", err)
	}

	return []Component{
		&server.Server{
			TLSDisabled:       MustGetEnvAsBoolean(ctx, "HTTP_TLS_DISABLED"),
			TLSDisabledPort:   MustGetEnvAsInt(ctx, "PORT"),
			AutocertHostnames: MustGetEnvAsStrings(ctx, "HTTP_AUTOCERT_HOSTNAMES"),
			Router:            httpRouter,
		},
	}, nil
}

func setupRatingRepository(ctx context.Context) (datasources.RatingRepository, error) {
	switch driver := MustGetEnvAsString(ctx, "STORAGE_DRIVER"); driver {
	case "memory":
		return memory.New(), nil
	case "mysql":
		db, err := mysql.Connect(ctx, MustGetEnvAsString(ctx, "MYSQL_URI"))
		if err != nil {
			return nil, fmt.Errorf("connecting to MySQL: %w", err)
		}
		if err := mysql.Migrate(ctx, db); err != nil {
			return nil, fmt.Errorf("migrating MySQL schema: %w", err)
		}
		return mysql.New(db), nil
	default:
		return nil, fmt.Errorf("unknown storage driver [%s]", driver)
	}
}

func setupRankingsCache(ctx context.Context) (datasources.RankingsCache, error) {
	switch driver := MustGetEnvAsString(ctx, "CACHE_DRIVER"); driver {
	case "null":
		return datasources.NullRankingsCache{}, nil
	case "memory":
		return memory.NewRankingsCache(MustGetEnvAsDuration(ctx, "RANKINGS_CACHE_TTL"), nil), nil
	case "redis":
		rdb, err := redis.Connect(ctx, MustGetEnvAsString(ctx, "REDIS_ADDR"))
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return redis.NewRankingsCache(rdb, MustGetEnvAsDuration(ctx, "RANKINGS_CACHE_TTL")), nil
	default:
		return nil, fmt.Errorf("unknown cache driver [%s]", driver)
	}
}

func setupAuthMiddleware(ctx context.Context) (func(http.Handler) http.Handler, error) {
	var validators []router.AuthValidator

	for _, driver := range MustGetEnvAsStrings(ctx, "AUTH_DRIVERS") {
		switch driver {
		case "":
			// Skip empty strings (e.g., from splitting an empty AUTH_DRIVERS)
		case "auth0":
			v, err := router.NewAuth0Validator(
				MustGetEnvAsString(ctx, "AUTH0_DOMAIN"),
				MustGetEnvAsString(ctx, "AUTH0_AUDIENCE"),
			)
			if err != nil {
				return nil, fmt.Errorf("creating Auth0 validator: %w", err)
			}
			validators = append(validators, v)
		case "static_token":
			tokens, err := router.ParseStaticTokens(MustGetEnvAsString(ctx, "STATIC_API_TOKENS"))
			if err != nil {
				return nil, fmt.Errorf("parsing static API tokens: %w", err)
			}
			validators = append(validators, router.NewStaticTokenValidator(tokens))
		default:
			return nil, fmt.Errorf("unknown auth driver [%s]", driver)
		}
	}

	return router.NewAuthMiddleware(validators), nil
}
