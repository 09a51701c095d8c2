package install

import (
	"context"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
	"github.com/teamgen/cli/entity"
)

type Command struct {
	Dir  string
	Name string
	Args []string
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Runner runs one package manager command to completion.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ExecRunner discards the output of the command and forwards its errors to
// Stderr.
type ExecRunner struct {
	Stderr io.Writer
}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stderr: os.Stderr}
}

func (r *ExecRunner) Run(ctx context.Context, c Command) error {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdout = io.Discard
	cmd.Stderr = r.Stderr
	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running %s", c)
	}
	return nil
}

// Commands lists what installs the dependencies of a generated application.
func Commands(appType string, dir string) []Command {
	switch appType {
	case entity.TypeNode:
		return []Command{
			{Dir: dir, Name: "bower", Args: []string{"install"}},
			{Dir: dir, Name: "npm", Args: []string{"install"}},
		}
	case entity.TypeJava:
		return []Command{
			{Dir: dir, Name: "bower", Args: []string{"install"}},
		}
	case entity.TypeASP:
		return []Command{
			{Dir: dir, Name: "dotnet", Args: []string{"restore"}},
		}
	}
	return nil
}

// Dependencies runs Commands for appType in dir, stopping at the first failure.
func Dependencies(ctx context.Context, runner Runner, appType string, dir string) error {
	for _, c := range Commands(appType, dir) {
		if err := runner.Run(ctx, c); err != nil {
			return err
		}
	}
	return nil
}
