package cmd

import (
	"context"

	"github.com/teamgen/cli/configs"
	"github.com/teamgen/cli/entity"
	"github.com/teamgen/cli/gateway"
	"github.com/teamgen/cli/ui"
)

// question binds a prompt to the Answers field it fills. Optional answers may
// stay empty in non-interactive runs. Env answers are not asked for when the
// environment already provides them.
type question struct {
	ui.Question
	flag      string
	field     func(a *entity.Answers) *string
	when      func(a *entity.Answers) bool
	optional  bool
	env       bool
	defaultFn func(a *entity.Answers) string
	choices   func(ctx context.Context, h *Handler, a *entity.Answers) ([]ui.Choice, error)
}

func always(*entity.Answers) bool { return true }

func targets(target string) func(a *entity.Answers) bool {
	return func(a *entity.Answers) bool { return a.Target == target }
}

func javaOnly(a *entity.Answers) bool { return a.Type == entity.TypeJava }

var questions = []*question{
	{
		Question: ui.Question{Name: "tfs", Message: "What is your TFS URL including collection (i.e. http://tfs:8080/tfs/DefaultCollection)", Validate: ui.ValidateTFS},
		field:    func(a *entity.Answers) *string { return &a.TFS },
		when:     always,
	},
	{
		Question: ui.Question{Name: "pat", Message: "What is your TFS Access Token", Secret: true, Validate: ui.ValidatePersonalAccessToken},
		flag:     "pat",
		field:    func(a *entity.Answers) *string { return &a.PAT },
		when:     always,
		env:      true,
	},
	{
		Question:  ui.Question{Name: "queue", Message: "What agent queue would you like to use"},
		field:     func(a *entity.Answers) *string { return &a.Queue },
		when:      always,
		defaultFn: func(*entity.Answers) string { return "Default" },
		choices:   poolChoices,
	},
	{
		Question: ui.Question{Name: "type", Message: "What type of application do you want to create", Choices: []ui.Choice{
			{Label: ".NET Core", Value: entity.TypeASP},
			{Label: "Node.js", Value: entity.TypeNode},
			{Label: "Java", Value: entity.TypeJava},
		}},
		field: func(a *entity.Answers) *string { return &a.Type },
		when:  always,
	},
	{
		Question: ui.Question{Name: "applicationName", Message: "What is the name of your application", Validate: ui.ValidateApplicationName},
		field:    func(a *entity.Answers) *string { return &a.ApplicationName },
		when:     always,
	},
	{
		Question: ui.Question{Name: "groupId", Message: "What is your Group ID", Validate: ui.ValidateGroupID},
		flag:     "group-id",
		field:    func(a *entity.Answers) *string { return &a.GroupID },
		when:     javaOnly,
	},
	{
		Question: ui.Question{Name: "installDep", Message: "Install dependencies", Default: "false", Choices: []ui.Choice{
			{Label: "Yes", Value: "true"},
			{Label: "No", Value: "false"},
		}},
		field:    func(a *entity.Answers) *string { return &a.InstallDep },
		when:     always,
		optional: true,
	},
	{
		Question: ui.Question{Name: "target", Message: "Where would you like to deploy", Choices: []ui.Choice{
			{Label: "Azure App Service", Value: entity.TargetPaaS},
			{Label: "Docker", Value: entity.TargetDocker},
		}},
		field: func(a *entity.Answers) *string { return &a.Target },
		when:  always,
	},
	{
		Question: ui.Question{Name: "azureSub", Message: "What is your Azure subscription name", Validate: ui.ValidateAzureSub},
		field:    func(a *entity.Answers) *string { return &a.AzureSub },
		when:     targets(entity.TargetPaaS),
	},
	{
		Question: ui.Question{Name: "azureSubId", Message: "What is your Azure subscription ID", Validate: ui.ValidateAzureSubID},
		flag:     "azure-sub-id",
		field:    func(a *entity.Answers) *string { return &a.AzureSubID },
		when:     targets(entity.TargetPaaS),
	},
	{
		Question: ui.Question{Name: "tenantId", Message: "What is your Azure Tenant ID", Validate: ui.ValidateAzureTenantID},
		flag:     "tenant-id",
		field:    func(a *entity.Answers) *string { return &a.TenantID },
		when:     targets(entity.TargetPaaS),
	},
	{
		Question: ui.Question{Name: "servicePrincipalId", Message: "What is your Service Principal ID", Validate: ui.ValidateServicePrincipalID},
		flag:     "service-principal-id",
		field:    func(a *entity.Answers) *string { return &a.ServicePrincipalID },
		when:     targets(entity.TargetPaaS),
	},
	{
		Question: ui.Question{Name: "servicePrincipalKey", Message: "What is your Service Principal Key", Secret: true, Validate: ui.ValidateServicePrincipalKey},
		flag:     "service-principal-key",
		field:    func(a *entity.Answers) *string { return &a.ServicePrincipalKey },
		when:     targets(entity.TargetPaaS),
	},
	{
		Question: ui.Question{Name: "dockerHost", Message: "What is your Docker host url and port (tcp://host:2376)", Validate: ui.ValidateDockerHost},
		field:    func(a *entity.Answers) *string { return &a.DockerHost },
		when:     targets(entity.TargetDocker),
	},
	{
		Question: ui.Question{Name: "dockerCertPath", Message: "What is your Docker Certificate Path"},
		flag:     "docker-cert-path",
		field:    func(a *entity.Answers) *string { return &a.DockerCertPath },
		when:     targets(entity.TargetDocker),
		optional: true,
	},
	{
		Question: ui.Question{Name: "dockerRegistryId", Message: "What is your Docker Hub ID (case sensitive)", Validate: ui.ValidateDockerHubID},
		field:    func(a *entity.Answers) *string { return &a.DockerRegistryID },
		when:     targets(entity.TargetDocker),
	},
	{
		Question: ui.Question{Name: "dockerRegistryPassword", Message: "What is your Docker Hub password", Secret: true, Validate: ui.ValidateDockerHubPassword},
		flag:     "docker-registry-password",
		field:    func(a *entity.Answers) *string { return &a.DockerRegistryPassword },
		when:     targets(entity.TargetDocker),
	},
	{
		Question: ui.Question{Name: "dockerRegistryEmail", Message: "What is your Docker Hub Email", Validate: ui.ValidateDockerHubEmail},
		flag:     "docker-registry-email",
		field:    func(a *entity.Answers) *string { return &a.DockerRegistryEmail },
		when:     targets(entity.TargetDocker),
		optional: true,
	},
	{
		Question:  ui.Question{Name: "dockerPorts", Message: "What should the port mapping be", Validate: ui.ValidatePortMapping},
		field:     func(a *entity.Answers) *string { return &a.DockerPorts },
		when:      targets(entity.TargetDocker),
		optional:  true,
		defaultFn: func(a *entity.Answers) string { return configs.DefaultPortMapping(a.Type) },
	},
}

func lookupQuestion(name string) *question {
	for _, q := range questions {
		if q.Name == name {
			return q
		}
	}
	return nil
}

// poolChoices offers the agent pools of the collection answered so far.
func poolChoices(ctx context.Context, h *Handler, a *entity.Answers) ([]ui.Choice, error) {
	pools, err := h.ctrl.GetPools(ctx, gateway.NewAccount(a.TFS, a.PAT))
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(pools))
	for _, p := range pools {
		names = append(names, p.Name)
	}
	return ui.Choices(names...), nil
}
