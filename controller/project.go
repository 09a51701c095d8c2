package controller

import (
	"context"

	"github.com/teamgen/cli/entity"
	"github.com/teamgen/cli/errors"
	"go.uber.org/zap"
	"k8s.io/apimachinery/pkg/util/wait"
)

// FindProject returns the team project called name, NotFound otherwise
func (c *Controller) FindProject(ctx context.Context, account *entity.Account, name string) (*entity.TeamProject, error) {
	return c.gtwy.GetProject(ctx, account, name)
}

// TryFindProject returns the team project called name, if there is one
func (c *Controller) TryFindProject(ctx context.Context, account *entity.Account, name string) (*entity.TeamProject, bool, error) {
	return try(c.FindProject(ctx, account, name))
}

// FindOrCreateProject returns the team project called name, creating it and
// waiting for the creation to finish when it does not exist yet.
func (c *Controller) FindOrCreateProject(ctx context.Context, account *entity.Account, name string) (*entity.TeamProject, error) {
	project, found, err := c.TryFindProject(ctx, account, name)
	if err != nil {
		return nil, err
	}
	if found {
		c.logger.Debug("found team project", zap.String("project", project.Name), zap.String("id", project.ID))
		return project, nil
	}

	c.logger.Debug("creating team project", zap.String("project", name))
	op, err := c.gtwy.CreateProject(ctx, account, &entity.CreateProjectRequest{Name: name})
	if err != nil {
		return nil, err
	}
	if err := c.waitForOperation(ctx, account, op); err != nil {
		return nil, err
	}

	return c.FindProject(ctx, account, name)
}

func (c *Controller) waitForOperation(ctx context.Context, account *entity.Account, op *entity.Operation) error {
	if op == nil || op.URL == "" {
		return nil
	}

	err := wait.PollUntilContextTimeout(ctx, c.pollInterval, c.pollTimeout, true, func(ctx context.Context) (bool, error) {
		status, err := c.gtwy.CheckStatus(ctx, account, op.URL)
		if err != nil {
			return false, err
		}
		c.logger.Debug("operation status", zap.String("id", status.ID), zap.String("status", status.Status))
		switch status.Status {
		case entity.OperationSucceeded:
			return true, nil
		case entity.OperationFailed, entity.OperationCancelled:
			return false, errors.ProjectCreateFailed
		}
		return false, nil
	})
	if err != nil && wait.Interrupted(err) && ctx.Err() == nil {
		return errors.ProjectCreateTimeout
	}
	return err
}
