package controller

import (
	"context"
	"strconv"
	"strings"

	"github.com/teamgen/cli/entity"
	"github.com/teamgen/cli/errors"
	"go.uber.org/zap"
)

// FindRelease returns the CD definition of appName for target, NotFound otherwise
func (c *Controller) FindRelease(ctx context.Context, account *entity.Account, project *entity.TeamProject, appName string, target string) (*entity.ReleaseDefinition, error) {
	name := entity.ReleaseDefinitionName(appName, target)

	definitions, err := c.gtwy.GetReleaseDefinitions(ctx, account, project.Name)
	if err != nil {
		return nil, err
	}
	for _, d := range definitions {
		if d.Name == name {
			return d, nil
		}
	}
	return nil, errors.NotFound("Release %s not found", name)
}

func (c *Controller) TryFindRelease(ctx context.Context, account *entity.Account, project *entity.TeamProject, appName string, target string) (*entity.ReleaseDefinition, bool, error) {
	return try(c.FindRelease(ctx, account, project, appName, target))
}

// FindOrCreateRelease returns the CD definition of the application, creating
// it as a release of req.Build when it does not exist.
func (c *Controller) FindOrCreateRelease(ctx context.Context, account *entity.Account, req *entity.CreateReleaseRequest) (*entity.ReleaseDefinition, error) {
	release, found, err := c.TryFindRelease(ctx, account, req.Project, req.AppName, req.Target)
	if err != nil || found {
		return release, err
	}

	name := entity.ReleaseDefinitionName(req.AppName, req.Target)
	values := definitionValues(account, req.Project, req.Queue)
	values["ReleaseDefName"] = name
	values["ApplicationName"] = req.AppName
	values["BuildDefId"] = strconv.Itoa(req.Build.ID)
	values["BuildDefName"] = req.Build.Name

	endpoints := req.Endpoints
	if endpoints == nil {
		endpoints = &entity.PipelineEndpoints{}
	}
	if req.Target == entity.TargetDocker {
		values["ImageName"] = imageName(req.RegistryID, req.AppName)
		values["ContainerName"] = strings.ToLower(req.AppName)
		values["Ports"] = req.Ports
		values["DockerHostEndpoint"] = endpointID(endpoints.DockerHost)
		values["DockerRegistryEndpoint"] = endpointID(endpoints.DockerRegistry)
	} else {
		values["AzureEndpoint"] = endpointID(endpoints.Azure)
		values["WebAppName"] = strings.ToLower(req.AppName)
	}

	definition, err := renderDefinition(releaseTemplate(req.Target), values)
	if err != nil {
		return nil, err
	}

	c.logger.Debug("creating release definition", zap.String("name", name))
	return c.gtwy.CreateReleaseDefinition(ctx, account, req.Project.Name, definition)
}
