// Package main provides the entry point for the set ranker MCP server.
//
// The server lets an agent log sets and run comparison rounds against the
// set ranker API on behalf of one user.
//
// Configuration:
//
//	SET_RANKER_API_URL       - Base URL of the API (default: http://localhost:8080)
//	SET_RANKER_API_TOKEN     - API token for authentication (required, format: srk_xxx;
//	                           its sha256 hex digest goes in the API's STATIC_API_TOKENS)
//	COMPARISON_VOTE_TIMEOUT  - How long to wait for a vote to be recorded (default: 10s)
package main

import (
	"log"
	"os"
	"time"

	"github.com/jbeshir/set-ranker/cmd/mcp/client"
	"github.com/jbeshir/set-ranker/cmd/mcp/server"
	"github.com/jbeshir/set-ranker/internal/session"
)

func main() {
	apiURL := os.Getenv("SET_RANKER_API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:8080"
	}

	apiToken := os.Getenv("SET_RANKER_API_TOKEN")
	if apiToken == "" {
		log.Fatal("SET_RANKER_API_TOKEN environment variable is required")
	}

	sessionConfig := session.DefaultConfig()
	if raw := os.Getenv("COMPARISON_VOTE_TIMEOUT"); raw != "" {
		timeout, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("COMPARISON_VOTE_TIMEOUT is not a duration: %v", err)
		}
		sessionConfig.VoteTimeout = timeout
	}

	apiClient := client.NewClient(apiURL, apiToken)
	srv := server.NewServer(apiClient, sessionConfig)

	if err := srv.Run(); err != nil {
		log.Fatal(err)
	}
}
