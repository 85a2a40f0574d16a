package router

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/auth0/go-jwt-middleware/v2/jwks"
	"github.com/auth0/go-jwt-middleware/v2/validator"
	"github.com/jbeshir/set-ranker/internal/domain"
)

// StaticTokenPrefix marks bearer tokens handled by the static token validator.
const StaticTokenPrefix = "srk_"

// AuthResult represents the result of a successful authentication.
type AuthResult struct {
	UserID string
	Method domain.AuthMethod
}

// AuthValidator attempts to validate authentication from a request.
// Returns nil, nil if this validator doesn't apply (wrong auth type).
// Returns AuthResult, nil on success.
// Returns nil, error if validation was attempted but failed.
type AuthValidator func(r *http.Request) (*AuthResult, error)

// NewAuthMiddleware creates a middleware that validates requests using multiple authentication methods.
func NewAuthMiddleware(validators []AuthValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, validate := range validators {
				result, err := validate(r)
				if result == nil && err == nil {
					continue // This validator doesn't apply
				}

				if err != nil {
					logger := domain.LoggerFromContext(r.Context())
					logger.WarnContext(r.Context(), "authentication failed", "error", err)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusUnauthorized)
					_, _ = fmt.Fprintf(w, `{"message":"%s"}`, err.Error())
					return
				}

				logger := domain.LoggerFromContext(r.Context()).With("user_id", result.UserID)
				ctx := domain.ContextWithUserID(r.Context(), result.UserID)
				ctx = domain.ContextWithAuthMethod(ctx, result.Method)
				ctx = domain.ContextWithLogger(ctx, logger)
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// NewAuth0Validator creates a validator for Auth0 JWT tokens.
func NewAuth0Validator(auth0Domain, auth0Audience string) (AuthValidator, error) {
	issuerURL, err := url.Parse("https://" + auth0Domain + "/")
	if err != nil {
		return nil, fmt.Errorf("failed to parse the issuer url: %w", err)
	}

	provider := jwks.NewCachingProvider(issuerURL, 5*time.Minute)
	jwtValidator, err := validator.New(
		provider.KeyFunc,
		validator.RS256,
		issuerURL.String(),
		[]string{auth0Audience},
		validator.WithAllowedClockSkew(time.Minute),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT validator: %w", err)
	}

	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer auth0|") {
			return nil, nil
		}

		token, err := jwtValidator.ValidateToken(r.Context(), authHeader[len("Bearer auth0|"):])
		if err != nil {
			return nil, fmt.Errorf("invalid JWT token")
		}

		claims := token.(*validator.ValidatedClaims)
		return &AuthResult{
			UserID: claims.RegisteredClaims.Subject,
			Method: domain.AuthMethodAuth0,
		}, nil
	}, nil
}

// ParseStaticTokens parses "sha256hex:user_id" pairs separated by commas into
// a map from token hash to user id.
func ParseStaticTokens(raw string) (map[string]string, error) {
	tokens := make(map[string]string)
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		hash, userID, ok := strings.Cut(entry, ":")
		if !ok || userID == "" {
			return nil, fmt.Errorf("static token entry must be hash:user_id")
		}
		if raw, err := hex.DecodeString(hash); err != nil || len(raw) != sha256.Size {
			return nil, fmt.Errorf("static token hash for user [%s] is not a sha256 hex digest", userID)
		}
		tokens[strings.ToLower(hash)] = userID
	}
	return tokens, nil
}

// NewStaticTokenValidator authenticates "Bearer srk_..." tokens against a
// fixed set of sha256 token hashes.
func NewStaticTokenValidator(tokenHashes map[string]string) AuthValidator {
	return func(r *http.Request) (*AuthResult, error) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer "+StaticTokenPrefix) {
			return nil, nil
		}

		hash := sha256.Sum256([]byte(authHeader[len("Bearer "):]))
		userID, ok := tokenHashes[hex.EncodeToString(hash[:])]
		if !ok {
			return nil, fmt.Errorf("invalid API token")
		}

		return &AuthResult{
			UserID: userID,
			Method: domain.AuthMethodStaticToken,
		}, nil
	}
}
