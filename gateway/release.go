package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/teamgen/cli/entity"
	teamerrors "github.com/teamgen/cli/errors"
)

const (
	HOSTED_DOMAIN  = ".visualstudio.com"
	RELEASE_DOMAIN = ".vsrm.visualstudio.com"
)

// releaseAccount points hosted accounts at the release management host. On
// premises collections serve releases from the collection URL itself.
func releaseAccount(account *entity.Account) *entity.Account {
	u, err := url.Parse(account.URL)
	if err != nil || !strings.HasSuffix(u.Host, HOSTED_DOMAIN) || strings.HasSuffix(u.Host, RELEASE_DOMAIN) {
		return account
	}
	u.Host = strings.TrimSuffix(u.Host, HOSTED_DOMAIN) + RELEASE_DOMAIN
	return &entity.Account{URL: u.String(), Token: account.Token}
}

func (g *Gateway) GetReleaseDefinitions(ctx context.Context, account *entity.Account, projectName string) ([]*entity.ReleaseDefinition, error) {
	var resp struct {
		Value []*entity.ReleaseDefinition `json:"value"`
	}
	err := g.NewRequest(ctx, http.MethodGet, releaseAccount(account), fmt.Sprintf("%s/_apis/release/definitions", url.PathEscape(projectName))).
		Query("api-version", RELEASE_API_VERSION).
		Run(&resp)
	if err != nil {
		return nil, err
	}
	return resp.Value, nil
}

func (g *Gateway) CreateReleaseDefinition(ctx context.Context, account *entity.Account, projectName string, definition json.RawMessage) (*entity.ReleaseDefinition, error) {
	var resp *entity.ReleaseDefinition
	err := g.NewRequest(ctx, http.MethodPost, releaseAccount(account), fmt.Sprintf("%s/_apis/release/definitions", url.PathEscape(projectName))).
		Query("api-version", RELEASE_API_VERSION).
		Body(definition).
		Run(&resp)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, teamerrors.EmptyResponse("release definition")
	}
	return resp, nil
}
