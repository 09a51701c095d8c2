package entity

import "fmt"

type BuildDefinition struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

type ReleaseDefinition struct {
	ID   int    `json:"id"`
	Name string `json:"name,omitempty"`
	URL  string `json:"url,omitempty"`
}

// BuildDefinitionName is the name the generator gives the CI definition of app.
func BuildDefinitionName(app string, target string) string {
	if target == TargetDocker {
		return fmt.Sprintf("%s-Docker-CI", app)
	}
	return fmt.Sprintf("%s-CI", app)
}

// ReleaseDefinitionName is the name the generator gives the CD definition of app.
func ReleaseDefinitionName(app string, target string) string {
	if target == TargetDocker {
		return fmt.Sprintf("%s-Docker-CD", app)
	}
	return fmt.Sprintf("%s-CD", app)
}

type CreateBuildRequest struct {
	Project    *TeamProject
	Queue      *AgentQueue
	Type       string
	Target     string
	RegistryID string
	Endpoints  *PipelineEndpoints
}

type CreateReleaseRequest struct {
	Project    *TeamProject
	Queue      *AgentQueue
	Build      *BuildDefinition
	AppName    string
	Target     string
	Ports      string
	RegistryID string
	Endpoints  *PipelineEndpoints
}
