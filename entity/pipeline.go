package entity

const (
	TargetDocker = "docker"
	TargetPaaS   = "paas"
)

type PipelineEndpoints struct {
	DockerHost     *ServiceEndpoint
	DockerRegistry *ServiceEndpoint
	Azure          *ServiceEndpoint
}

type PipelineRequest struct {
	Account    *Account
	AppName    string
	Type       string
	Target     string
	Queue      string
	Ports      string
	DockerHost *DockerHost
	Registry   *DockerRegistry
	AzureSub   *AzureSubscription
}

// Pipeline is everything ConfigurePipeline resolved or created.
type Pipeline struct {
	Project   *TeamProject
	Queue     *AgentQueue
	Endpoints *PipelineEndpoints
	Build     *BuildDefinition
	Release   *ReleaseDefinition
}
