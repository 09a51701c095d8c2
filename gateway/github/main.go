package github

import (
	"context"
	"net/http"

	"github.com/google/go-github/v57/github"
)

const (
	REPO_OWNER = "teamgen"
	REPO_NAME  = "cli"
)

type Gateway struct {
	client *github.Client
}

// New talks to api.github.com unless baseURL is set.
func New(httpClient *http.Client, baseURL string) (*Gateway, error) {
	client := github.NewClient(httpClient)
	if baseURL != "" {
		var err error
		client, err = client.WithEnterpriseURLs(baseURL, baseURL)
		if err != nil {
			return nil, err
		}
	}
	return &Gateway{client: client}, nil
}

// GetLatestVersion returns the tag of the latest published release.
func (g *Gateway) GetLatestVersion(ctx context.Context) (string, error) {
	rep, _, err := g.client.Repositories.GetLatestRelease(ctx, REPO_OWNER, REPO_NAME)
	if err != nil {
		return "", err
	}
	return rep.GetTagName(), nil
}
