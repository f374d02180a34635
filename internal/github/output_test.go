package github

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestFetchAllData_WritesBothFiles(t *testing.T) {
	dir := t.TempDir()
	chdirT(t, dir)

	srv := (&fakeGitHub{
		user:  respond(http.StatusOK, aliceUser),
		repos: respond(http.StatusOK, aliceRepos),
	}).start(t)

	data, err := newTestClient(t, srv, "").FetchAllData(context.Background(), "alice")

	require.NoError(t, err)
	assert.Equal(t, "alice", data.User.Login)
	assert.Len(t, data.Repositories, 2)
	assert.ElementsMatch(t, []string{"alice.json", "alice.md"}, listDir(t, dir))

	md, err := os.ReadFile(filepath.Join(dir, "alice.md"))
	require.NoError(t, err)
	mdLines := strings.Split(string(md), "\n")
	assert.Contains(t, mdLines, "# Alice A Profile")
	assert.Contains(t, mdLines, "- **Followers:** 5")
	assert.Contains(t, mdLines, "### proj")
	assert.Contains(t, mdLines, "- **Stars:** 3")
	assert.Contains(t, mdLines, "- **Location:** Berlin")

	raw, err := os.ReadFile(filepath.Join(dir, "alice.json"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(raw), "{\n  \"user\": {\n"), "expected pretty-printed JSON")

	var bundle struct {
		User         map[string]any   `json:"user"`
		Repositories []map[string]any `json:"repositories"`
	}
	require.NoError(t, json.Unmarshal(raw, &bundle))
	assert.NotContains(t, bundle.User, "profile_readme")
	assert.Contains(t, bundle.User, "bio")
	assert.Nil(t, bundle.User["bio"])
	assert.Equal(t, "proj", bundle.Repositories[0]["name"])
	assert.NotContains(t, bundle.Repositories[0], "readme_content")
}

func TestFetchAllData_IncludesReadmeInJSON(t *testing.T) {
	dir := t.TempDir()
	chdirT(t, dir)

	srv := (&fakeGitHub{
		user:   respond(http.StatusOK, aliceUser),
		repos:  respond(http.StatusOK, `[]`),
		readme: respond(http.StatusOK, contentsJSON(encodeWrapped("<b>hi</b> & bye"))),
	}).start(t)

	_, err := newTestClient(t, srv, "").FetchAllData(context.Background(), "alice")
	require.NoError(t, err)

	raw, err := os.ReadFile(filepath.Join(dir, "alice.json"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"profile_readme": "<b>hi</b> & bye"`)

	md, err := os.ReadFile(filepath.Join(dir, "alice.md"))
	require.NoError(t, err)
	assert.Contains(t, string(md), "## Profile README\n\n<b>hi</b> & bye\n\n")
}

func TestFetchAllData_OverwritesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	chdirT(t, dir)
	require.NoError(t, os.WriteFile("alice.md", []byte("stale"), 0o644))

	srv := (&fakeGitHub{
		user:  respond(http.StatusOK, aliceUser),
		repos: respond(http.StatusOK, aliceRepos),
	}).start(t)

	_, err := newTestClient(t, srv, "").FetchAllData(context.Background(), "alice")
	require.NoError(t, err)

	md, err := os.ReadFile("alice.md")
	require.NoError(t, err)
	assert.NotContains(t, string(md), "stale")
}

func TestFetchAllData_NoFilesOnFailure(t *testing.T) {
	tests := map[string]*fakeGitHub{
		"user not found": {repos: respond(http.StatusOK, aliceRepos)},
		"repos fail":     {user: respond(http.StatusOK, aliceUser), repos: respond(http.StatusInternalServerError, "")},
		"repos null":     {user: respond(http.StatusOK, aliceUser), repos: respond(http.StatusOK, `null`)},
		"repos rate limited": {user: respond(http.StatusOK, aliceUser), repos: func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}},
	}

	for name, f := range tests {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			chdirT(t, dir)
			srv := f.start(t)

			data, err := newTestClient(t, srv, "").FetchAllData(context.Background(), "alice")

			require.Error(t, err)
			assert.Nil(t, data)
			assert.Empty(t, listDir(t, dir))
		})
	}
}

func TestFetchAllData_WriteFailure(t *testing.T) {
	dir := t.TempDir()
	chdirT(t, dir)
	// A directory named like the output file makes the write fail.
	require.NoError(t, os.Mkdir("alice.json", 0o755))

	srv := (&fakeGitHub{
		user:  respond(http.StatusOK, aliceUser),
		repos: respond(http.StatusOK, aliceRepos),
	}).start(t)

	_, err := newTestClient(t, srv, "").FetchAllData(context.Background(), "alice")

	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "alice.json", ioErr.Path)
	_, statErr := os.Stat("alice.md")
	assert.True(t, os.IsNotExist(statErr))
}

func TestOutputFiles(t *testing.T) {
	jsonFile, mdFile := OutputFiles("octocat")

	assert.Equal(t, "octocat.json", jsonFile)
	assert.Equal(t, "octocat.md", mdFile)
}
