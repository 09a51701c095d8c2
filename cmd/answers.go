package cmd

import (
	"context"

	"github.com/teamgen/cli/configs"
	"github.com/teamgen/cli/entity"
	"github.com/teamgen/cli/errors"
	"go.uber.org/zap"
)

// form is what one command asks for: the questions in prompt order, the
// positional arguments in the order they are accepted, and the answers the
// command itself implies.
type form struct {
	questions []string
	args      []string
	fixed     entity.Answers
}

var pipelineQuestions = []string{
	"tfs", "pat", "queue", "type", "applicationName", "target",
	"azureSub", "azureSubId", "tenantId", "servicePrincipalId", "servicePrincipalKey",
	"dockerHost", "dockerCertPath", "dockerRegistryId", "dockerRegistryPassword", "dockerRegistryEmail", "dockerPorts",
}

var pipelineArgs = []string{"type", "applicationName", "tfs", "queue", "target", "azureSub", "dockerHost", "dockerRegistryId", "dockerPorts", "pat"}

var (
	appForm = form{
		questions: []string{
			"tfs", "pat", "queue", "type", "applicationName", "groupId", "installDep", "target",
			"azureSub", "azureSubId", "tenantId", "servicePrincipalId", "servicePrincipalKey",
			"dockerHost", "dockerCertPath", "dockerRegistryId", "dockerRegistryPassword", "dockerRegistryEmail", "dockerPorts",
		},
		args: pipelineArgs,
	}
	pipelineForm = form{
		questions: pipelineQuestions,
		args:      pipelineArgs,
	}
	javaForm = form{
		questions: []string{"applicationName", "groupId", "installDep"},
		args:      []string{"applicationName", "groupId", "installDep"},
		fixed:     entity.Answers{Type: entity.TypeJava},
	}
	nodeForm = form{
		questions: []string{"applicationName", "installDep"},
		args:      []string{"applicationName", "installDep"},
		fixed:     entity.Answers{Type: entity.TypeNode},
	}
	aspForm = form{
		questions: []string{"applicationName", "installDep"},
		args:      []string{"applicationName", "installDep"},
		fixed:     entity.Answers{Type: entity.TypeASP},
	}
	dockerForm = form{
		questions: []string{"tfs", "pat", "applicationName", "dockerHost", "dockerCertPath"},
		args:      []string{"applicationName", "tfs", "dockerHost", "dockerCertPath", "pat"},
		fixed:     entity.Answers{Target: entity.TargetDocker},
	}
	registryForm = form{
		questions: []string{"tfs", "pat", "applicationName", "dockerRegistryId", "dockerRegistryPassword", "dockerRegistryEmail"},
		args:      []string{"applicationName", "tfs", "dockerRegistryId", "dockerRegistryPassword", "dockerRegistryEmail", "pat"},
		fixed:     entity.Answers{Target: entity.TargetDocker},
	}
	azureForm = form{
		questions: []string{"tfs", "pat", "applicationName", "azureSub", "azureSubId", "tenantId", "servicePrincipalId", "servicePrincipalKey"},
		args:      []string{"applicationName", "tfs", "azureSub", "azureSubId", "tenantId", "servicePrincipalId", "servicePrincipalKey", "pat"},
		fixed:     entity.Answers{Target: entity.TargetPaaS},
	}
	poolsForm = form{
		questions: []string{"tfs", "pat"},
		args:      []string{"tfs", "pat"},
	}
)

// owned keeps only the answers to the questions f asks, so values stored by
// other commands do not leak into this one.
func (f *form) owned(a *entity.Answers) *entity.Answers {
	kept := &entity.Answers{}
	for _, name := range f.questions {
		q := lookupQuestion(name)
		*q.field(kept) = *q.field(a)
	}
	return kept
}

// cmdLineAnswers reads positional arguments in form order, then the answer
// flags registered on the command.
func cmdLineAnswers(req *entity.CommandRequest, f *form) (*entity.Answers, error) {
	answers := f.fixed
	for i, arg := range req.Args {
		if i >= len(f.args) {
			break
		}
		*lookupQuestion(f.args[i]).field(&answers) = arg
	}
	if req.Cmd == nil {
		return &answers, nil
	}
	for _, name := range f.questions {
		q := lookupQuestion(name)
		if q.flag == "" || req.Cmd.Flags().Lookup(q.flag) == nil {
			continue
		}
		value, err := req.Cmd.Flags().GetString(q.flag)
		if err != nil {
			return nil, err
		}
		if value != "" {
			*q.field(&answers) = value
		}
	}
	return &answers, nil
}

// collect builds the effective answers of a run. Questions are asked only
// for what the command line left out; without a terminal the stored answers
// have to cover the rest.
func (h *Handler) collect(ctx context.Context, req *entity.CommandRequest, f *form) (*entity.Answers, error) {
	cmdLine, err := cmdLineAnswers(req, f)
	if err != nil {
		return nil, err
	}
	stored, err := h.cfg.GetAnswersOrEmpty()
	if err != nil {
		return nil, err
	}
	stored = f.owned(stored)
	prompted := &entity.Answers{}

	for _, name := range f.questions {
		q := lookupQuestion(name)
		current := configs.MergeAnswers(prompted, cmdLine, stored)
		if !q.when(current) || *q.field(cmdLine) != "" {
			continue
		}
		if q.env && *q.field(stored) != "" {
			continue
		}
		if !h.interactive {
			if *q.field(current) == "" && !q.optional {
				return nil, errors.MissingAnswer(q.Name)
			}
			continue
		}

		answer, err := h.ask(ctx, q, current)
		if err != nil {
			return nil, err
		}
		*q.field(prompted) = answer
	}

	answers := configs.MergeAnswers(prompted, cmdLine, stored)
	if err := checkAnswers(answers); err != nil {
		return nil, err
	}
	return answers, nil
}

func (h *Handler) ask(ctx context.Context, q *question, current *entity.Answers) (string, error) {
	prompt := q.Question
	if !q.Secret {
		prompt.Default = configs.Reconcile(*q.field(current), q.Default)
		if q.defaultFn != nil {
			prompt.Default = configs.Reconcile(prompt.Default, q.defaultFn(current))
		}
	}
	if q.choices != nil {
		choices, err := q.choices(ctx, h, current)
		if err != nil {
			return "", err
		}
		prompt.Choices = choices
	}
	return h.prompter.Ask(&prompt)
}

func checkAnswers(a *entity.Answers) error {
	switch a.Type {
	case "", entity.TypeASP, entity.TypeNode, entity.TypeJava:
	default:
		return errors.UnknownApplicationType
	}
	switch a.Target {
	case "", entity.TargetDocker, entity.TargetPaaS:
	default:
		return errors.UnknownTarget
	}
	return nil
}

// saveAnswers keeps the answers as defaults for the next run, on top of what
// other commands stored. Failing to write them does not fail the command.
func (h *Handler) saveAnswers(a *entity.Answers) {
	stored, err := h.cfg.GetAnswersOrEmpty()
	if err != nil {
		h.logger.Warn("could not read stored answers", zap.String("path", h.cfg.AnswersPath()), zap.Error(err))
		return
	}
	if err := h.cfg.SetAnswers(configs.MergeAnswers(a, nil, stored)); err != nil {
		h.logger.Warn("could not store answers", zap.String("path", h.cfg.AnswersPath()), zap.Error(err))
	}
}
