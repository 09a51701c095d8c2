package cmd

import (
	"io"
	"os"
	"time"

	"github.com/teamgen/cli/configs"
	"github.com/teamgen/cli/controller"
	"github.com/teamgen/cli/gateway"
	"github.com/teamgen/cli/gateway/github"
	"github.com/teamgen/cli/ui"
	"go.uber.org/zap"
)

type Options struct {
	Configs     *configs.Configs
	Controller  *controller.Controller
	Releases    *github.Gateway
	Prompter    ui.Prompter
	Logger      *zap.Logger
	Out         io.Writer
	Dir         string
	Interactive bool
}

type Handler struct {
	ctrl        *controller.Controller
	cfg         *configs.Configs
	releases    *github.Gateway
	prompter    ui.Prompter
	logger      *zap.Logger
	out         io.Writer
	dir         string
	interactive bool
}

func New() *Handler {
	return NewWithOptions(Options{
		Prompter:    &ui.TerminalPrompter{},
		Out:         os.Stdout,
		Interactive: ui.IsInteractive(),
	})
}

func NewWithOptions(opts Options) *Handler {
	if opts.Configs == nil {
		opts.Configs = configs.New()
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Controller == nil {
		opts.Controller = newController(opts.Logger, opts.Configs.Timeout())
	}
	if opts.Releases == nil {
		opts.Releases, _ = github.New(nil, "")
	}
	if opts.Prompter == nil {
		opts.Prompter = &ui.TerminalPrompter{}
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Dir == "" {
		opts.Dir = "."
	}
	return &Handler{
		ctrl:        opts.Controller,
		cfg:         opts.Configs,
		releases:    opts.Releases,
		prompter:    opts.Prompter,
		logger:      opts.Logger,
		out:         opts.Out,
		dir:         opts.Dir,
		interactive: opts.Interactive,
	}
}

// Setup rebuilds the controller once the global flags are parsed. A zero
// timeout keeps the configured one.
func (h *Handler) Setup(logger *zap.Logger, timeout time.Duration) {
	if timeout <= 0 {
		timeout = h.cfg.Timeout()
	}
	h.logger = logger
	h.ctrl = newController(logger, timeout)
}

func newController(logger *zap.Logger, timeout time.Duration) *controller.Controller {
	return controller.New(controller.Options{
		Gateway: gateway.New(gateway.Options{Timeout: timeout, Logger: logger}),
		Logger:  logger,
	})
}
