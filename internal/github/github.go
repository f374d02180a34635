package github

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/kevinmichaelchen/gh-profile/internal/log"
	"github.com/kevinmichaelchen/gh-profile/internal/models"
)

const (
	// DefaultBaseURL is the public GitHub REST API root.
	DefaultBaseURL = "https://api.github.com"
	userAgent      = "github-api-client"
)

// Client is a thin wrapper around the GitHub REST API. It is built once per
// run and used sequentially.
type Client struct {
	baseURL    string
	header     http.Header
	httpClient *http.Client
}

// Option customizes a Client built by NewClient.
type Option func(*Client)

// WithBaseURL points the client at another API root (GHE, tests).
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimSuffix(baseURL, "/")
		}
	}
}

func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient builds a client that sends a fixed User-Agent and, when token is
// non-empty, a bearer Authorization header on every request.
func NewClient(token string, opts ...Option) (*Client, error) {
	header := http.Header{}
	header.Set("User-Agent", userAgent)

	if token != "" {
		value := "Bearer " + token
		if !validHeaderValue(value) {
			return nil, &ConfigError{Err: errors.New("token contains characters not allowed in a header value")}
		}
		header.Set("Authorization", value)
	}

	c := &Client{
		baseURL:    DefaultBaseURL,
		header:     header,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// FetchUser returns the profile for username. The profile README is fetched
// on a best-effort basis and left nil if it cannot be retrieved.
func (c *Client) FetchUser(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := c.getJSON(ctx, "/users/"+url.PathEscape(username), &user); err != nil {
		return nil, fmt.Errorf("fetching user %s: %w", username, err)
	}
	if user.Login == "" {
		return nil, fmt.Errorf("fetching user %s: %w", username, &DecodeError{Err: errors.New("missing login")})
	}

	readme, err := c.fetchProfileReadme(ctx, username)
	if err != nil {
		log.Debug("No profile README", "username", username, "error", err)
	} else {
		user.ProfileReadme = &readme
	}

	return &user, nil
}

// FetchRepositories returns the first page of username's public repositories
// in the order GitHub lists them. Further pages are not requested.
func (c *Client) FetchRepositories(ctx context.Context, username string) ([]models.Repo, error) {
	var repos []models.Repo
	if err := c.getJSON(ctx, "/users/"+url.PathEscape(username)+"/repos", &repos); err != nil {
		return nil, fmt.Errorf("fetching repositories for %s: %w", username, err)
	}
	if repos == nil {
		return nil, fmt.Errorf("fetching repositories for %s: %w", username, &DecodeError{Err: errors.New("repositories response is not an array")})
	}
	return repos, nil
}

type contentsResponse struct {
	Content *string `json:"content"`
}

// fetchProfileReadme reads README.md from the {username}/{username} repo.
func (c *Client) fetchProfileReadme(ctx context.Context, username string) (string, error) {
	escaped := url.PathEscape(username)
	path := "/repos/" + escaped + "/" + escaped + "/contents/README.md"

	var contents contentsResponse
	if err := c.getJSON(ctx, path, &contents); err != nil {
		return "", err
	}
	if contents.Content == nil {
		return "", &DecodeError{Err: errors.New("contents response has no content field")}
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(*contents.Content, "\n", ""))
	if err != nil {
		return "", &DecodeError{Err: fmt.Errorf("base64 content: %w", err)}
	}
	if !utf8.Valid(decoded) {
		return "", &DecodeError{Err: errors.New("README is not valid UTF-8")}
	}

	return string(decoded), nil
}

// --- internal ---

func (c *Client) getJSON(ctx context.Context, path string, result any) error {
	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()

	log.Debug("GitHub request", "method", req.Method, "url", endpoint)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusForbidden {
		remaining := resp.Header.Get("X-RateLimit-Remaining")
		if remaining == "" {
			remaining = "unknown"
		}
		return &RateLimitError{Remaining: remaining}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &HTTPError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading response: %w", err)
	}

	if err := json.Unmarshal(body, result); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// validHeaderValue rejects control characters other than horizontal tab.
func validHeaderValue(v string) bool {
	for i := 0; i < len(v); i++ {
		b := v[i]
		if (b < 0x20 && b != '\t') || b == 0x7f {
			return false
		}
	}
	return true
}

func httpStatusText(code int) string {
	if text := http.StatusText(code); text != "" {
		return text
	}
	return "Unknown"
}
