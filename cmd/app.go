package cmd

import (
	"context"
	"fmt"

	"github.com/teamgen/cli/entity"
	"github.com/teamgen/cli/ui"
)

// App generates the application and configures its CI/CD pipeline.
func (h *Handler) App(ctx context.Context, req *entity.CommandRequest) error {
	answers, err := h.collect(ctx, req, &appForm)
	if err != nil {
		return err
	}
	if err := h.generate(ctx, req, answers); err != nil {
		return err
	}
	return h.configurePipeline(ctx, req, answers)
}

func (h *Handler) Java(ctx context.Context, req *entity.CommandRequest) error {
	return h.generateOnly(ctx, req, &javaForm)
}

func (h *Handler) Node(ctx context.Context, req *entity.CommandRequest) error {
	return h.generateOnly(ctx, req, &nodeForm)
}

func (h *Handler) ASP(ctx context.Context, req *entity.CommandRequest) error {
	return h.generateOnly(ctx, req, &aspForm)
}

func (h *Handler) generateOnly(ctx context.Context, req *entity.CommandRequest, f *form) error {
	answers, err := h.collect(ctx, req, f)
	if err != nil {
		return err
	}
	return h.generate(ctx, req, answers)
}

func (h *Handler) generate(ctx context.Context, req *entity.CommandRequest, answers *entity.Answers) error {
	if answers.InstallDep == "true" {
		ui.StartSpinner(&ui.SpinnerCfg{Message: "Installing dependencies"})
	}
	result, err := h.ctrl.Scaffold(ctx, h.dir, answers, boolFlag(req, "force"))
	ui.StopSpinner("")
	if err != nil {
		return err
	}
	h.saveAnswers(answers)

	fmt.Fprintf(h.out, "%s %s\n", ui.GreenText("Created"), ui.Bold(result.Dir))
	if len(result.Skipped) > 0 {
		fmt.Fprintf(h.out, "%s\n%s", ui.YellowText("Kept existing files, use --force to overwrite them:"), ui.UnorderedList(result.Skipped))
	}
	return nil
}

func boolFlag(req *entity.CommandRequest, name string) bool {
	if req.Cmd == nil || req.Cmd.Flags().Lookup(name) == nil {
		return false
	}
	v, err := req.Cmd.Flags().GetBool(name)
	return err == nil && v
}
