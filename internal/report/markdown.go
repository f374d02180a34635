// Package report renders a fetched profile bundle as Markdown.
package report

import (
	"fmt"
	"strings"

	"github.com/kevinmichaelchen/gh-profile/internal/models"
)

// Markdown renders data as a Markdown report. It performs no I/O and the
// output depends only on data.
func Markdown(data *models.UserData) string {
	var b strings.Builder
	user := data.User

	fmt.Fprintf(&b, "# %s Profile\n\n", user.DisplayName())

	if user.Bio != nil {
		fmt.Fprintf(&b, "> %s\n\n", *user.Bio)
	}

	b.WriteString("## Overview\n\n")
	fmt.Fprintf(&b, "- **Username:** %s\n", user.Login)
	fmt.Fprintf(&b, "- **Public Repositories:** %d\n", user.PublicRepos)
	fmt.Fprintf(&b, "- **Followers:** %d\n", user.Followers)
	fmt.Fprintf(&b, "- **Following:** %d\n", user.Following)
	if user.Location != nil {
		fmt.Fprintf(&b, "- **Location:** %s\n", *user.Location)
	}
	if user.Company != nil {
		fmt.Fprintf(&b, "- **Company:** %s\n", *user.Company)
	}
	b.WriteString("\n")

	// Written verbatim so the README's own Markdown renders.
	if user.ProfileReadme != nil {
		b.WriteString("## Profile README\n\n")
		fmt.Fprintf(&b, "%s\n\n", *user.ProfileReadme)
	}

	b.WriteString("## Repositories\n\n")
	for _, repo := range data.Repositories {
		writeRepo(&b, repo)
	}

	return b.String()
}

func writeRepo(b *strings.Builder, repo models.Repo) {
	fmt.Fprintf(b, "### %s\n", repo.Name)
	if repo.Description != nil {
		fmt.Fprintf(b, "> %s\n\n", *repo.Description)
	}
	fmt.Fprintf(b, "- **Stars:** %d\n", repo.StargazersCount)
	fmt.Fprintf(b, "- **Forks:** %d\n", repo.ForksCount)
	if repo.Language != nil {
		fmt.Fprintf(b, "- **Language:** %s\n", *repo.Language)
	}
	fmt.Fprintf(b, "- **Created:** %s\n", repo.CreatedAt)
	fmt.Fprintf(b, "- **Last Updated:** %s\n\n", repo.UpdatedAt)
}
