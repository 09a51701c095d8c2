package controller

import (
	"context"

	"github.com/teamgen/cli/entity"
	"github.com/teamgen/cli/errors"
)

// FindQueue returns the agent queue called name in project. An empty result
// is NotFound.
func (c *Controller) FindQueue(ctx context.Context, account *entity.Account, project *entity.TeamProject, name string) (*entity.AgentQueue, error) {
	queues, err := c.gtwy.GetQueues(ctx, account, project.ID, name)
	if err != nil {
		return nil, err
	}
	if len(queues) == 0 {
		return nil, errors.NotFound("Queue %s not found", name)
	}
	return queues[0], nil
}

func (c *Controller) TryFindQueue(ctx context.Context, account *entity.Account, project *entity.TeamProject, name string) (*entity.AgentQueue, bool, error) {
	return try(c.FindQueue(ctx, account, project, name))
}

// GetPools returns every agent pool of the collection
func (c *Controller) GetPools(ctx context.Context, account *entity.Account) ([]*entity.AgentPool, error) {
	return c.gtwy.GetPools(ctx, account)
}
