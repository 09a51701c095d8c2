package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/teamgen/cli/entity"
	teamerrors "github.com/teamgen/cli/errors"
)

// AGILE_TEMPLATE_ID is the process template new projects are created with.
const AGILE_TEMPLATE_ID = "adcc42ab-9882-485e-a3ed-7678f01f66bc"

func (g *Gateway) GetProject(ctx context.Context, account *entity.Account, name string) (*entity.TeamProject, error) {
	var resp *entity.TeamProject
	err := g.NewRequest(ctx, http.MethodGet, account, fmt.Sprintf("_apis/projects/%s", url.PathEscape(name))).
		Query("api-version", PROJECT_API_VERSION).
		Lookup("Project %s not found", name).
		Run(&resp)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, teamerrors.EmptyResponse("project")
	}
	return resp, nil
}

// CreateProject queues creation of a Git project. The returned operation has
// to be polled until it completes.
func (g *Gateway) CreateProject(ctx context.Context, account *entity.Account, req *entity.CreateProjectRequest) (*entity.Operation, error) {
	body := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"capabilities": map[string]interface{}{
			"versioncontrol": map[string]string{
				"sourceControlType": "Git",
			},
			"processTemplate": map[string]string{
				"templateTypeId": AGILE_TEMPLATE_ID,
			},
		},
	}

	var resp *entity.Operation
	err := g.NewRequest(ctx, http.MethodPost, account, "_apis/projects").
		Query("api-version", PROJECT_API_VERSION).
		Body(body).
		Run(&resp)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, teamerrors.EmptyResponse("operation")
	}
	return resp, nil
}

// CheckStatus fetches the current state of a long running operation.
func (g *Gateway) CheckStatus(ctx context.Context, account *entity.Account, operationURL string) (*entity.Operation, error) {
	var resp *entity.Operation
	if err := g.NewRequest(ctx, http.MethodGet, account, operationURL).Run(&resp); err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, teamerrors.EmptyResponse("operation")
	}
	return resp, nil
}
