package controller

import (
	"context"

	"github.com/teamgen/cli/entity"
	"github.com/teamgen/cli/lib/install"
	"github.com/teamgen/cli/scaffold"
	"go.uber.org/zap"
)

// Scaffold generates the application described by answers under dst and,
// when InstallDep is "true", installs its dependencies.
func (c *Controller) Scaffold(ctx context.Context, dst string, answers *entity.Answers, force bool) (*scaffold.Result, error) {
	result, err := scaffold.Generate(dst, &scaffold.Request{
		Type:        answers.Type,
		Name:        answers.ApplicationName,
		GroupID:     answers.GroupID,
		Target:      answers.Target,
		DockerPorts: answers.DockerPorts,
		Force:       force,
	})
	if err != nil {
		return nil, err
	}
	c.logger.Debug("generated application",
		zap.String("dir", result.Dir),
		zap.Int("written", len(result.Written)),
		zap.Strings("skipped", result.Skipped),
	)

	if answers.InstallDep != "true" {
		return result, nil
	}
	if err := install.Dependencies(ctx, c.installer, answers.Type, result.Dir); err != nil {
		return nil, err
	}
	return result, nil
}
