package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/teamgen/cli/controller"
	"github.com/teamgen/cli/entity"
	"github.com/teamgen/cli/gateway"
	"github.com/teamgen/cli/ui"
)

// Pipeline configures CI/CD for an application that already exists.
func (h *Handler) Pipeline(ctx context.Context, req *entity.CommandRequest) error {
	answers, err := h.collect(ctx, req, &pipelineForm)
	if err != nil {
		return err
	}
	return h.configurePipeline(ctx, req, answers)
}

func (h *Handler) configurePipeline(ctx context.Context, req *entity.CommandRequest, answers *entity.Answers) error {
	account := gateway.NewAccount(answers.TFS, answers.PAT)

	ui.StartSpinner(&ui.SpinnerCfg{Message: "Configuring CI/CD"})
	p, err := h.ctrl.ConfigurePipeline(ctx, &entity.PipelineRequest{
		Account:    account,
		AppName:    answers.ApplicationName,
		Type:       answers.Type,
		Target:     answers.Target,
		Queue:      answers.Queue,
		Ports:      answers.DockerPorts,
		DockerHost: answers.DockerHostSpec(),
		Registry:   answers.RegistrySpec(),
		AzureSub:   answers.AzureSpec(),
	})
	ui.StopSpinner("")
	if err != nil {
		return err
	}
	h.saveAnswers(answers)

	summary := map[string]string{
		"Project": fmt.Sprintf("%s (%s)", p.Project.Name, controller.ProjectURL(account, p.Project)),
		"Queue":   p.Queue.Name,
		"Build":   fmt.Sprintf("%s (%s)", p.Build.Name, controller.BuildURL(account, p.Project, p.Build)),
		"Release": fmt.Sprintf("%s (%s)", p.Release.Name, controller.ReleaseURL(account, p.Project, p.Release)),
	}
	for label, ep := range map[string]*entity.ServiceEndpoint{
		"Docker Host":     p.Endpoints.DockerHost,
		"Docker Registry": p.Endpoints.DockerRegistry,
		"Azure":           p.Endpoints.Azure,
	} {
		if ep != nil {
			summary[label] = fmt.Sprintf("%s (%s)", ep.Name, ep.ID)
		}
	}
	fmt.Fprintf(h.out, "%s\n%s", ui.GreenText("CI/CD configured for "+answers.ApplicationName), ui.KeyValues(summary))

	if boolFlag(req, "open") {
		return h.ctrl.OpenPipelineInBrowser(account, p)
	}
	return nil
}

// Pools lists the agent pools queues can be created from.
func (h *Handler) Pools(ctx context.Context, req *entity.CommandRequest) error {
	answers, err := h.collect(ctx, req, &poolsForm)
	if err != nil {
		return err
	}
	pools, err := h.ctrl.GetPools(ctx, gateway.NewAccount(answers.TFS, answers.PAT))
	if err != nil {
		return err
	}
	h.saveAnswers(answers)

	if len(pools) == 0 {
		fmt.Fprintln(h.out, ui.YellowText("No agent pools found"))
		return nil
	}
	items := make([]string, 0, len(pools))
	for _, p := range pools {
		items = append(items, p.Name+" "+ui.GrayText("("+strconv.Itoa(p.Size)+" agents)"))
	}
	fmt.Fprint(h.out, ui.UnorderedList(items))
	return nil
}
