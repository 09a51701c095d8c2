package controller

import (
	"context"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/teamgen/cli/entity"
	teamerrors "github.com/teamgen/cli/errors"
	"go.uber.org/zap"
)

const (
	DockerHostEndpointName     = "Docker"
	DockerRegistryEndpointName = "Docker Hub"
	AzureManagementURL         = "https://management.core.windows.net/"
)

func (c *Controller) findServiceEndpoint(ctx context.Context, account *entity.Account, projectID string, match entity.EndpointPredicate, kind string) (*entity.ServiceEndpoint, error) {
	endpoints, err := c.gtwy.GetServiceEndpoints(ctx, account, projectID)
	if err != nil {
		return nil, err
	}
	for _, ep := range endpoints {
		if match(ep) {
			return ep, nil
		}
	}
	return nil, teamerrors.NotFound("Could not find %s Service Endpoint", kind)
}

// FindDockerRegistryServiceEndpoint returns the first docker registry
// endpoint of the project. Nothing is looked up when registry is empty.
func (c *Controller) FindDockerRegistryServiceEndpoint(ctx context.Context, account *entity.Account, projectID string, registry string) (*entity.ServiceEndpoint, error) {
	if registry == "" {
		return nil, nil
	}
	return c.findServiceEndpoint(ctx, account, projectID, entity.IsDockerRegistry, "Docker Registry")
}

func (c *Controller) TryFindDockerRegistryServiceEndpoint(ctx context.Context, account *entity.Account, projectID string, registry string) (*entity.ServiceEndpoint, bool, error) {
	return try(c.FindDockerRegistryServiceEndpoint(ctx, account, projectID, registry))
}

// FindDockerServiceEndpoint returns the docker host endpoint whose URL starts
// with dockerHost. Nothing is looked up when dockerHost is empty.
func (c *Controller) FindDockerServiceEndpoint(ctx context.Context, account *entity.Account, projectID string, dockerHost string) (*entity.ServiceEndpoint, error) {
	if dockerHost == "" {
		return nil, nil
	}
	return c.findServiceEndpoint(ctx, account, projectID, entity.HasURLPrefix(dockerHost), "Docker")
}

func (c *Controller) TryFindDockerServiceEndpoint(ctx context.Context, account *entity.Account, projectID string, dockerHost string) (*entity.ServiceEndpoint, bool, error) {
	return try(c.FindDockerServiceEndpoint(ctx, account, projectID, dockerHost))
}

// FindAzureServiceEndpoint returns the endpoint of the subscription with the
// same name. Nothing is looked up without a subscription name.
func (c *Controller) FindAzureServiceEndpoint(ctx context.Context, account *entity.Account, projectID string, sub *entity.AzureSubscription) (*entity.ServiceEndpoint, error) {
	if sub == nil || sub.Name == "" {
		return nil, nil
	}
	return c.findServiceEndpoint(ctx, account, projectID, entity.HasSubscriptionName(sub.Name), "Azure")
}

func (c *Controller) TryFindAzureServiceEndpoint(ctx context.Context, account *entity.Account, projectID string, sub *entity.AzureSubscription) (*entity.ServiceEndpoint, bool, error) {
	return try(c.FindAzureServiceEndpoint(ctx, account, projectID, sub))
}

// FindOrCreateDockerServiceEndpoint returns the endpoint for host, creating
// it with the certificates found in host.CertPath when it does not exist.
func (c *Controller) FindOrCreateDockerServiceEndpoint(ctx context.Context, account *entity.Account, projectID string, host *entity.DockerHost) (*entity.ServiceEndpoint, error) {
	if host == nil || host.URL == "" {
		return nil, nil
	}
	ep, found, err := c.TryFindDockerServiceEndpoint(ctx, account, projectID, host.URL)
	if err != nil || found {
		return ep, err
	}

	body, err := dockerHostEndpoint(host)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("creating docker service endpoint", zap.String("url", host.URL))
	return c.gtwy.CreateServiceEndpoint(ctx, account, projectID, body)
}

func (c *Controller) FindOrCreateDockerRegistryServiceEndpoint(ctx context.Context, account *entity.Account, projectID string, registry *entity.DockerRegistry) (*entity.ServiceEndpoint, error) {
	if registry == nil || registry.URL == "" {
		return nil, nil
	}
	ep, found, err := c.TryFindDockerRegistryServiceEndpoint(ctx, account, projectID, registry.URL)
	if err != nil || found {
		return ep, err
	}

	c.logger.Debug("creating docker registry service endpoint", zap.String("registry", registry.URL))
	return c.gtwy.CreateServiceEndpoint(ctx, account, projectID, dockerRegistryEndpoint(registry))
}

func (c *Controller) FindOrCreateAzureServiceEndpoint(ctx context.Context, account *entity.Account, projectID string, sub *entity.AzureSubscription) (*entity.ServiceEndpoint, error) {
	if sub == nil || sub.Name == "" {
		return nil, nil
	}
	ep, found, err := c.TryFindAzureServiceEndpoint(ctx, account, projectID, sub)
	if err != nil || found {
		return ep, err
	}

	c.logger.Debug("creating azure service endpoint", zap.String("subscription", sub.Name))
	return c.gtwy.CreateServiceEndpoint(ctx, account, projectID, azureEndpoint(sub))
}

func dockerHostEndpoint(host *entity.DockerHost) (*entity.ServiceEndpoint, error) {
	ep := &entity.ServiceEndpoint{
		Name:          DockerHostEndpointName,
		Type:          entity.EndpointDockerHost,
		URL:           host.URL,
		Authorization: &entity.EndpointAuthorization{Scheme: "None"},
	}
	if host.CertPath == "" {
		return ep, nil
	}

	params := map[string]string{}
	for param, file := range map[string]string{"cacert": "ca.pem", "cert": "cert.pem", "key": "key.pem"} {
		b, err := os.ReadFile(filepath.Join(host.CertPath, file))
		if err != nil {
			return nil, errors.Wrapf(err, "reading docker certificate %s", file)
		}
		params[param] = string(b)
	}
	ep.Authorization = &entity.EndpointAuthorization{
		Scheme:     "Certificate",
		Parameters: params,
	}
	return ep, nil
}

func dockerRegistryEndpoint(registry *entity.DockerRegistry) *entity.ServiceEndpoint {
	return &entity.ServiceEndpoint{
		Name: DockerRegistryEndpointName,
		Type: entity.EndpointDockerRegistry,
		URL:  registry.URL,
		Authorization: &entity.EndpointAuthorization{
			Scheme: "UsernamePassword",
			Parameters: map[string]string{
				"registry": registry.URL,
				"username": registry.ID,
				"password": registry.Password,
				"email":    registry.Email,
			},
		},
	}
}

func azureEndpoint(sub *entity.AzureSubscription) *entity.ServiceEndpoint {
	return &entity.ServiceEndpoint{
		Name: sub.Name,
		Type: entity.EndpointAzureRM,
		URL:  AzureManagementURL,
		Data: entity.EndpointData{
			SubscriptionID:   sub.ID,
			SubscriptionName: sub.Name,
			CreationMode:     "Manual",
		},
		Authorization: &entity.EndpointAuthorization{
			Scheme: "ServicePrincipal",
			Parameters: map[string]string{
				"serviceprincipalid":  sub.ServicePrincipalID,
				"serviceprincipalkey": sub.ServicePrincipalKey,
				"tenantid":            sub.TenantID,
			},
		},
	}
}
