package entity

import "strings"

const (
	EndpointDockerRegistry = "dockerregistry"
	EndpointDockerHost     = "dockerhost"
	EndpointAzureRM        = "azurerm"
)

// DefaultDockerRegistry is the only registry the generator configures.
const DefaultDockerRegistry = "https://index.docker.io/v1/"

type ServiceEndpoint struct {
	ID            string                 `json:"id,omitempty"`
	Name          string                 `json:"name,omitempty"`
	Type          string                 `json:"type,omitempty"`
	URL           string                 `json:"url,omitempty"`
	Data          EndpointData           `json:"data,omitempty"`
	Authorization *EndpointAuthorization `json:"authorization,omitempty"`
}

type EndpointData struct {
	SubscriptionID   string `json:"subscriptionId,omitempty"`
	SubscriptionName string `json:"subscriptionName,omitempty"`
	CreationMode     string `json:"creationMode,omitempty"`
	Registry         string `json:"registry,omitempty"`
}

type EndpointAuthorization struct {
	Scheme     string            `json:"scheme"`
	Parameters map[string]string `json:"parameters,omitempty"`
}

// EndpointPredicate selects a service endpoint out of a project's list.
type EndpointPredicate func(*ServiceEndpoint) bool

// IsDockerRegistry matches any docker registry endpoint. The registry the
// endpoint points at is not compared.
func IsDockerRegistry(ep *ServiceEndpoint) bool {
	return ep != nil && ep.Type == EndpointDockerRegistry
}

// HasURLPrefix matches endpoints whose URL starts with host. The service
// returns URLs with a trailing slash so a prefix match tolerates hosts
// given without one.
func HasURLPrefix(host string) EndpointPredicate {
	return func(ep *ServiceEndpoint) bool {
		return ep != nil && strings.HasPrefix(ep.URL, host)
	}
}

func HasSubscriptionName(name string) EndpointPredicate {
	return func(ep *ServiceEndpoint) bool {
		return ep != nil && ep.Data.SubscriptionName == name
	}
}

type DockerHost struct {
	URL      string
	CertPath string
}

type DockerRegistry struct {
	URL      string
	ID       string
	Password string
	Email    string
}

type AzureSubscription struct {
	ID                  string
	Name                string
	TenantID            string
	ServicePrincipalID  string
	ServicePrincipalKey string
}
