package controller

import (
	"context"

	"github.com/teamgen/cli/entity"
	"github.com/teamgen/cli/errors"
	"go.uber.org/zap"
)

// ConfigurePipeline resolves or creates, in order, the team project, the
// agent queue, the service endpoints of the target, the CI definition and the
// CD definition. The first error stops the chain.
func (c *Controller) ConfigurePipeline(ctx context.Context, req *entity.PipelineRequest) (*entity.Pipeline, error) {
	if req.Queue == "" {
		return nil, errors.QueueNotSpecified
	}
	account := req.Account

	project, err := c.FindOrCreateProject(ctx, account, req.AppName)
	if err != nil {
		return nil, err
	}

	queue, err := c.FindQueue(ctx, account, project, req.Queue)
	if err != nil {
		return nil, err
	}

	endpoints := &entity.PipelineEndpoints{}
	if req.Target == entity.TargetDocker {
		endpoints.DockerHost, err = c.FindOrCreateDockerServiceEndpoint(ctx, account, project.ID, req.DockerHost)
		if err != nil {
			return nil, err
		}
		endpoints.DockerRegistry, err = c.FindOrCreateDockerRegistryServiceEndpoint(ctx, account, project.ID, req.Registry)
		if err != nil {
			return nil, err
		}
	} else {
		endpoints.Azure, err = c.FindOrCreateAzureServiceEndpoint(ctx, account, project.ID, req.AzureSub)
		if err != nil {
			return nil, err
		}
	}

	registryID := ""
	if req.Registry != nil {
		registryID = req.Registry.ID
	}

	build, err := c.FindOrCreateBuild(ctx, account, &entity.CreateBuildRequest{
		Project:    project,
		Queue:      queue,
		Type:       req.Type,
		Target:     req.Target,
		RegistryID: registryID,
		Endpoints:  endpoints,
	})
	if err != nil {
		return nil, err
	}

	release, err := c.FindOrCreateRelease(ctx, account, &entity.CreateReleaseRequest{
		Project:    project,
		Queue:      queue,
		Build:      build,
		AppName:    req.AppName,
		Target:     req.Target,
		Ports:      req.Ports,
		RegistryID: registryID,
		Endpoints:  endpoints,
	})
	if err != nil {
		return nil, err
	}

	c.logger.Debug("pipeline configured",
		zap.String("project", project.Name),
		zap.Int("build", build.ID),
		zap.Int("release", release.ID),
	)
	return &entity.Pipeline{
		Project:   project,
		Queue:     queue,
		Endpoints: endpoints,
		Build:     build,
		Release:   release,
	}, nil
}
