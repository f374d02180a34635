package models

// User is a public GitHub user profile as returned by GET /users/{username}.
type User struct {
	Login       string  `json:"login"`
	ID          int64   `json:"id"`
	AvatarURL   string  `json:"avatar_url"`
	HTMLURL     string  `json:"html_url"`
	Name        *string `json:"name"`
	Company     *string `json:"company"`
	Blog        *string `json:"blog"`
	Location    *string `json:"location"`
	Email       *string `json:"email"`
	Bio         *string `json:"bio"`
	PublicRepos int     `json:"public_repos"`
	Followers   int     `json:"followers"`
	Following   int     `json:"following"`

	// ProfileReadme is only set when the {login}/{login} README could be fetched.
	ProfileReadme *string `json:"profile_readme,omitempty"`
}

// DisplayName returns the user's name, falling back to the login.
func (u User) DisplayName() string {
	if u.Name != nil {
		return *u.Name
	}
	return u.Login
}

type Repo struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	FullName        string  `json:"full_name"`
	Private         bool    `json:"private"`
	HTMLURL         string  `json:"html_url"`
	Description     *string `json:"description"`
	Fork            bool    `json:"fork"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
	PushedAt        string  `json:"pushed_at"`
	Language        *string `json:"language"`
	StargazersCount int     `json:"stargazers_count"`
	WatchersCount   int     `json:"watchers_count"`
	ForksCount      int     `json:"forks_count"`
	ReadmeContent   *string `json:"readme_content,omitempty"`
}

// UserData bundles one profile with its repositories in API order.
type UserData struct {
	User         User   `json:"user"`
	Repositories []Repo `json:"repositories"`
}
