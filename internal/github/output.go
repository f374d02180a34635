package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/kevinmichaelchen/gh-profile/internal/log"
	"github.com/kevinmichaelchen/gh-profile/internal/models"
	"github.com/kevinmichaelchen/gh-profile/internal/report"
)

// OutputFiles returns the JSON and Markdown file names written for username.
func OutputFiles(username string) (jsonFile, mdFile string) {
	return username + ".json", username + ".md"
}

// FetchAllData fetches the user and then their repositories, writes
// {username}.json and {username}.md to the working directory (overwriting
// existing files) and returns the bundle. Nothing is written unless both
// fetches succeed.
func (c *Client) FetchAllData(ctx context.Context, username string) (*models.UserData, error) {
	user, err := c.FetchUser(ctx, username)
	if err != nil {
		return nil, err
	}

	repos, err := c.FetchRepositories(ctx, username)
	if err != nil {
		return nil, err
	}

	data := &models.UserData{User: *user, Repositories: repos}
	jsonFile, mdFile := OutputFiles(username)

	encoded, err := marshalPretty(data)
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", jsonFile, err)
	}
	if err := writeFile(jsonFile, encoded); err != nil {
		return nil, err
	}

	if err := writeFile(mdFile, []byte(report.Markdown(data))); err != nil {
		return nil, err
	}

	log.Info("Wrote profile", "username", username, "repositories", len(repos), "json", jsonFile, "markdown", mdFile)
	return data, nil
}

// marshalPretty indents with two spaces and leaves <, > and & unescaped so
// README text stays readable.
func marshalPretty(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}
