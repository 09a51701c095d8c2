package controller

import (
	"context"

	"github.com/teamgen/cli/entity"
	"github.com/teamgen/cli/errors"
	"go.uber.org/zap"
)

// FindBuild returns the CI definition of project for target, NotFound otherwise
func (c *Controller) FindBuild(ctx context.Context, account *entity.Account, project *entity.TeamProject, target string) (*entity.BuildDefinition, error) {
	name := entity.BuildDefinitionName(project.Name, target)

	definitions, err := c.gtwy.GetBuildDefinitions(ctx, account, project.ID)
	if err != nil {
		return nil, err
	}
	for _, d := range definitions {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, errors.NotFound("Build %s not found", name)
}

func (c *Controller) TryFindBuild(ctx context.Context, account *entity.Account, project *entity.TeamProject, target string) (*entity.BuildDefinition, bool, error) {
	return try(c.FindBuild(ctx, account, project, target))
}

// FindOrCreateBuild returns the CI definition of the project, creating it from
// the template for the application type and target when it does not exist.
func (c *Controller) FindOrCreateBuild(ctx context.Context, account *entity.Account, req *entity.CreateBuildRequest) (*entity.BuildDefinition, error) {
	build, found, err := c.TryFindBuild(ctx, account, req.Project, req.Target)
	if err != nil || found {
		return build, err
	}

	name := entity.BuildDefinitionName(req.Project.Name, req.Target)
	values := definitionValues(account, req.Project, req.Queue)
	values["BuildDefName"] = name
	if req.Target == entity.TargetDocker {
		endpoints := req.Endpoints
		if endpoints == nil {
			endpoints = &entity.PipelineEndpoints{}
		}
		values["ImageName"] = imageName(req.RegistryID, req.Project.Name)
		values["DockerHostEndpoint"] = endpointID(endpoints.DockerHost)
		values["DockerRegistryEndpoint"] = endpointID(endpoints.DockerRegistry)
	}

	definition, err := renderDefinition(buildTemplate(req.Type, req.Target), values)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("creating build definition", zap.String("name", name))
	return c.gtwy.CreateBuildDefinition(ctx, account, req.Project.ID, definition)
}
