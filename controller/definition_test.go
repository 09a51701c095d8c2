package controller

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamgen/cli/entity"
	teamerrors "github.com/teamgen/cli/errors"
)

func TestRenderDefinitionTemplates(t *testing.T) {
	values := map[string]string{
		"AccountUrl":             "https://contoso.visualstudio.com",
		"ProjectId":              "1",
		"ProjectName":            `Demo "quoted"`,
		"QueueId":                "4",
		"QueueName":              "Default",
		"BuildDefName":           "Demo-CI",
		"BuildDefId":             "1",
		"ReleaseDefName":         "Demo-CD",
		"ApplicationName":        "Demo",
		"ImageName":              "contoso/demo",
		"ContainerName":          "demo",
		"Ports":                  "3000:3000",
		"DockerHostEndpoint":     "endpoint-1",
		"DockerRegistryEndpoint": "endpoint-2",
		"AzureEndpoint":          "endpoint-3",
		"WebAppName":             "demo",
	}
	names := []string{"build_asp.json", "build_node.json", "build_java.json", "build_docker.json", "release.json", "release_docker.json"}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			doc, err := renderDefinition(name, values)
			require.NoError(t, err)
			assert.NotContains(t, string(doc), "{{")

			var parsed map[string]interface{}
			require.NoError(t, json.Unmarshal(doc, &parsed))
			assert.NotEmpty(t, parsed["name"])
		})
	}
}

func TestRenderDefinitionUnknownTemplate(t *testing.T) {
	_, err := renderDefinition("missing.json", nil)
	assert.Error(t, err)
}

func TestDefinitionTemplateSelection(t *testing.T) {
	assert.Equal(t, "build_docker.json", buildTemplate(entity.TypeNode, entity.TargetDocker))
	assert.Equal(t, "build_java.json", buildTemplate(entity.TypeJava, entity.TargetPaaS))
	assert.Equal(t, "build_node.json", buildTemplate(entity.TypeNode, entity.TargetPaaS))
	assert.Equal(t, "build_asp.json", buildTemplate(entity.TypeASP, entity.TargetPaaS))
	assert.Equal(t, "release_docker.json", releaseTemplate(entity.TargetDocker))
	assert.Equal(t, "release.json", releaseTemplate(entity.TargetPaaS))
	assert.Equal(t, "contoso/demo", imageName("contoso", "Demo"))
}

func TestFindBuildMatchesTargetName(t *testing.T) {
	f := newFakeTFS(t)
	f.builds = []*entity.BuildDefinition{
		{ID: 1, Name: "Demo-CI"},
		{ID: 2, Name: "Demo-Docker-CI"},
	}
	c := f.controller()
	project := &entity.TeamProject{ID: "1", Name: "Demo"}

	build, err := c.FindBuild(context.Background(), f.account(), project, entity.TargetDocker)
	require.NoError(t, err)
	assert.Equal(t, 2, build.ID)

	build, err = c.FindBuild(context.Background(), f.account(), project, entity.TargetPaaS)
	require.NoError(t, err)
	assert.Equal(t, 1, build.ID)

	f.builds = f.builds[:1]
	_, err = c.FindBuild(context.Background(), f.account(), project, entity.TargetDocker)
	assert.True(t, teamerrors.IsNotFound(err))

	_, found, err := c.TryFindBuild(context.Background(), f.account(), project, entity.TargetDocker)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestFindReleaseListsByProjectName(t *testing.T) {
	f := newFakeTFS(t)
	f.releases = []*entity.ReleaseDefinition{{ID: 5, Name: "Demo-Docker-CD"}}
	c := f.controller()
	project := &entity.TeamProject{ID: "1", Name: "Demo"}

	release, err := c.FindRelease(context.Background(), f.account(), project, "Demo", entity.TargetDocker)
	require.NoError(t, err)
	assert.Equal(t, 5, release.ID)
	assert.Equal(t, 1, f.called("GET", "/Demo/_apis/release/definitions"))

	_, found, err := c.TryFindRelease(context.Background(), f.account(), project, "Demo", entity.TargetPaaS)
	assert.NoError(t, err)
	assert.False(t, found)
}

func TestFindOrCreateBuildExistingIsNotRecreated(t *testing.T) {
	f := newFakeTFS(t)
	f.builds = []*entity.BuildDefinition{{ID: 9, Name: "Demo-CI"}}
	c := f.controller()

	build, err := c.FindOrCreateBuild(context.Background(), f.account(), &entity.CreateBuildRequest{
		Project: &entity.TeamProject{ID: "1", Name: "Demo"},
		Queue:   &entity.AgentQueue{ID: 4, Name: "Default"},
		Type:    entity.TypeNode,
		Target:  entity.TargetPaaS,
	})
	require.NoError(t, err)
	assert.Equal(t, 9, build.ID)
	assert.Equal(t, 0, f.called("POST", "/1/_apis/build/definitions"))
}
