package gateway

import (
	"context"
	"fmt"
	"net/http"

	"github.com/teamgen/cli/entity"
)

// GetQueues lists the agent queues of a project, filtered by name on the
// server.
func (g *Gateway) GetQueues(ctx context.Context, account *entity.Account, projectID string, name string) ([]*entity.AgentQueue, error) {
	var resp struct {
		Value []*entity.AgentQueue `json:"value"`
	}
	err := g.NewRequest(ctx, http.MethodGet, account, fmt.Sprintf("%s/_apis/distributedtask/queues", projectID)).
		Query("api-version", DISTRIBUTED_TASK_API_VERSION).
		Query("queueName", name).
		Run(&resp)
	if err != nil {
		return nil, err
	}
	return resp.Value, nil
}

// GetPools lists the agent pools of the whole collection.
func (g *Gateway) GetPools(ctx context.Context, account *entity.Account) ([]*entity.AgentPool, error) {
	var resp struct {
		Value []*entity.AgentPool `json:"value"`
	}
	err := g.NewRequest(ctx, http.MethodGet, account, "_apis/distributedtask/pools").
		Query("api-version", DISTRIBUTED_TASK_API_VERSION).
		Run(&resp)
	if err != nil {
		return nil, err
	}
	return resp.Value, nil
}
