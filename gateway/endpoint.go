package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/teamgen/cli/entity"
	teamerrors "github.com/teamgen/cli/errors"
)

func (g *Gateway) GetServiceEndpoints(ctx context.Context, account *entity.Account, projectID string) ([]*entity.ServiceEndpoint, error) {
	var resp struct {
		Value []*entity.ServiceEndpoint `json:"value"`
	}
	err := g.NewRequest(ctx, http.MethodGet, account, fmt.Sprintf("%s/_apis/distributedtask/serviceendpoints", projectID)).
		Query("api-version", SERVICE_ENDPOINTS_API_VERSION).
		Run(&resp)
	if err != nil {
		return nil, err
	}
	return resp.Value, nil
}

func (g *Gateway) CreateServiceEndpoint(ctx context.Context, account *entity.Account, projectID string, endpoint *entity.ServiceEndpoint) (*entity.ServiceEndpoint, error) {
	var resp *entity.ServiceEndpoint
	err := g.NewRequest(ctx, http.MethodPost, account, fmt.Sprintf("%s/_apis/distributedtask/serviceendpoints", projectID)).
		Query("api-version", SERVICE_ENDPOINTS_API_VERSION).
		Body(endpoint).
		Run(&resp)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, teamerrors.EmptyResponse("service endpoint")
	}
	return resp, nil
}
