package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/teamgen/cli/entity"
	teamerrors "github.com/teamgen/cli/errors"
)

func (g *Gateway) GetBuildDefinitions(ctx context.Context, account *entity.Account, projectID string) ([]*entity.BuildDefinition, error) {
	var resp struct {
		Value []*entity.BuildDefinition `json:"value"`
	}
	err := g.NewRequest(ctx, http.MethodGet, account, fmt.Sprintf("%s/_apis/build/definitions", projectID)).
		Query("api-version", BUILD_API_VERSION).
		Run(&resp)
	if err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// CreateBuildDefinition posts an already rendered definition document.
func (g *Gateway) CreateBuildDefinition(ctx context.Context, account *entity.Account, projectID string, definition json.RawMessage) (*entity.BuildDefinition, error) {
	var resp *entity.BuildDefinition
	err := g.NewRequest(ctx, http.MethodPost, account, fmt.Sprintf("%s/_apis/build/definitions", projectID)).
		Query("api-version", BUILD_API_VERSION).
		Body(definition).
		Run(&resp)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, teamerrors.EmptyResponse("build definition")
	}
	return resp, nil
}
