package cmd

import (
	"context"
	"fmt"

	"github.com/teamgen/cli/entity"
	"github.com/teamgen/cli/gateway"
	"github.com/teamgen/cli/ui"
)

// Docker finds or creates the Docker host endpoint of a team project.
func (h *Handler) Docker(ctx context.Context, req *entity.CommandRequest) error {
	return h.endpoint(ctx, req, &dockerForm, func(account *entity.Account, project *entity.TeamProject, a *entity.Answers) (*entity.ServiceEndpoint, error) {
		return h.ctrl.FindOrCreateDockerServiceEndpoint(ctx, account, project.ID, a.DockerHostSpec())
	})
}

func (h *Handler) Registry(ctx context.Context, req *entity.CommandRequest) error {
	return h.endpoint(ctx, req, &registryForm, func(account *entity.Account, project *entity.TeamProject, a *entity.Answers) (*entity.ServiceEndpoint, error) {
		return h.ctrl.FindOrCreateDockerRegistryServiceEndpoint(ctx, account, project.ID, a.RegistrySpec())
	})
}

func (h *Handler) Azure(ctx context.Context, req *entity.CommandRequest) error {
	return h.endpoint(ctx, req, &azureForm, func(account *entity.Account, project *entity.TeamProject, a *entity.Answers) (*entity.ServiceEndpoint, error) {
		return h.ctrl.FindOrCreateAzureServiceEndpoint(ctx, account, project.ID, a.AzureSpec())
	})
}

type endpointFunc func(account *entity.Account, project *entity.TeamProject, a *entity.Answers) (*entity.ServiceEndpoint, error)

func (h *Handler) endpoint(ctx context.Context, req *entity.CommandRequest, f *form, findOrCreate endpointFunc) error {
	answers, err := h.collect(ctx, req, f)
	if err != nil {
		return err
	}
	account := gateway.NewAccount(answers.TFS, answers.PAT)

	project, err := h.ctrl.FindOrCreateProject(ctx, account, answers.ApplicationName)
	if err != nil {
		return err
	}
	ep, err := findOrCreate(account, project, answers)
	if err != nil {
		return err
	}
	h.saveAnswers(answers)

	if ep == nil {
		fmt.Fprintln(h.out, ui.YellowText("Nothing to configure"))
		return nil
	}
	fmt.Fprint(h.out, ui.KeyValues(map[string]string{
		"Project": project.Name,
		"Name":    ep.Name,
		"Type":    ep.Type,
		"URL":     ep.URL,
		"ID":      ep.ID,
	}))
	return nil
}
