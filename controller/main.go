package controller

import (
	"time"

	"github.com/pkg/browser"
	"github.com/teamgen/cli/gateway"
	"github.com/teamgen/cli/lib/install"
	"go.uber.org/zap"
)

const (
	DefaultPollInterval = 2 * time.Second
	DefaultPollTimeout  = 2 * time.Minute
)

type Options struct {
	Gateway      *gateway.Gateway
	Installer    install.Runner
	Logger       *zap.Logger
	PollInterval time.Duration
	PollTimeout  time.Duration
	OpenURL      func(url string) error
}

type Controller struct {
	gtwy         *gateway.Gateway
	installer    install.Runner
	logger       *zap.Logger
	pollInterval time.Duration
	pollTimeout  time.Duration
	openURL      func(url string) error
}

func New(opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Gateway == nil {
		opts.Gateway = gateway.New(gateway.Options{Logger: opts.Logger})
	}
	if opts.Installer == nil {
		opts.Installer = install.NewExecRunner()
	}
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = DefaultPollTimeout
	}
	if opts.OpenURL == nil {
		opts.OpenURL = browser.OpenURL
	}
	return &Controller{
		gtwy:         opts.Gateway,
		installer:    opts.Installer,
		logger:       opts.Logger,
		pollInterval: opts.PollInterval,
		pollTimeout:  opts.PollTimeout,
		openURL:      opts.OpenURL,
	}
}
