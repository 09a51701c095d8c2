package entity

const (
	TypeASP  = "asp"
	TypeNode = "node"
	TypeJava = "java"
)

// Answers is the effective configuration of one run. Secrets and the port
// mapping carry a "-" tag so they never reach the answers file; the mapping
// defaults per application type instead.
type Answers struct {
	TFS                    string `mapstructure:"tfs" json:"tfs,omitempty" yaml:"tfs,omitempty"`
	PAT                    string `mapstructure:"-" json:"-" yaml:"-"`
	Type                   string `mapstructure:"type" json:"type,omitempty" yaml:"type,omitempty"`
	ApplicationName        string `mapstructure:"applicationName" json:"applicationName,omitempty" yaml:"applicationName,omitempty"`
	GroupID                string `mapstructure:"groupId" json:"groupId,omitempty" yaml:"groupId,omitempty"`
	InstallDep             string `mapstructure:"installDep" json:"installDep,omitempty" yaml:"installDep,omitempty"`
	Queue                  string `mapstructure:"queue" json:"queue,omitempty" yaml:"queue,omitempty"`
	Target                 string `mapstructure:"target" json:"target,omitempty" yaml:"target,omitempty"`
	AzureSub               string `mapstructure:"azureSub" json:"azureSub,omitempty" yaml:"azureSub,omitempty"`
	AzureSubID             string `mapstructure:"azureSubId" json:"azureSubId,omitempty" yaml:"azureSubId,omitempty"`
	TenantID               string `mapstructure:"tenantId" json:"tenantId,omitempty" yaml:"tenantId,omitempty"`
	ServicePrincipalID     string `mapstructure:"servicePrincipalId" json:"servicePrincipalId,omitempty" yaml:"servicePrincipalId,omitempty"`
	ServicePrincipalKey    string `mapstructure:"-" json:"-" yaml:"-"`
	DockerHost             string `mapstructure:"dockerHost" json:"dockerHost,omitempty" yaml:"dockerHost,omitempty"`
	DockerCertPath         string `mapstructure:"dockerCertPath" json:"dockerCertPath,omitempty" yaml:"dockerCertPath,omitempty"`
	DockerRegistryID       string `mapstructure:"dockerRegistryId" json:"dockerRegistryId,omitempty" yaml:"dockerRegistryId,omitempty"`
	DockerRegistryPassword string `mapstructure:"-" json:"-" yaml:"-"`
	DockerRegistryEmail    string `mapstructure:"dockerRegistryEmail" json:"dockerRegistryEmail,omitempty" yaml:"dockerRegistryEmail,omitempty"`
	DockerPorts            string `mapstructure:"-" json:"-" yaml:"-"`
}

func (a *Answers) DockerHostSpec() *DockerHost {
	return &DockerHost{URL: a.DockerHost, CertPath: a.DockerCertPath}
}

func (a *Answers) RegistrySpec() *DockerRegistry {
	if a.DockerRegistryID == "" {
		return &DockerRegistry{}
	}
	return &DockerRegistry{
		URL:      DefaultDockerRegistry,
		ID:       a.DockerRegistryID,
		Password: a.DockerRegistryPassword,
		Email:    a.DockerRegistryEmail,
	}
}

func (a *Answers) AzureSpec() *AzureSubscription {
	return &AzureSubscription{
		ID:                  a.AzureSubID,
		Name:                a.AzureSub,
		TenantID:            a.TenantID,
		ServicePrincipalID:  a.ServicePrincipalID,
		ServicePrincipalKey: a.ServicePrincipalKey,
	}
}
