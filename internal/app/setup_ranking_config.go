package app

import (
	"github.com/jbeshir/set-ranker/internal/command"
	"github.com/jbeshir/set-ranker/internal/domain"
)

// DefaultSelectCandidatesConfig returns the default config for candidate selection.
func DefaultSelectCandidatesConfig() command.SelectCandidatesConfig {
	return command.SelectCandidatesConfig{
		MinPeers: 2,
		Limit:    5,
	}
}

// DefaultEloConfig returns the default config for rating updates.
func DefaultEloConfig() domain.EloConfig {
	return domain.DefaultEloConfig()
}
