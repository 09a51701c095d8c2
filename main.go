package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/teamgen/cli/cmd"
	"github.com/teamgen/cli/constants"
	"github.com/teamgen/cli/entity"
	"github.com/teamgen/cli/ui"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:           "teamgen",
	SilenceUsage:  true,
	SilenceErrors: true,
	Version:       constants.Version,
	Short:         "Scaffold applications and their CI/CD in Team Services",
	Long:          "Generate Java, Node.js and .NET Core starter applications and create\nthe team project, service endpoints, build and release definitions they deploy with.",
}

/* contextualize converts a HandlerFunction to a cobra function
 */
func contextualize(fn entity.HandlerFunction, panicFn entity.PanicFunction) entity.CobraFunction {
	return func(cmd *cobra.Command, args []string) (err error) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		defer func() {
			if r := recover(); r != nil {
				panicFn(ctx, r, string(debug.Stack()), cmd.Name())
				err = fmt.Errorf("%s", ui.RedText("teamgen exited after an unexpected error"))
			}
		}()

		req := &entity.CommandRequest{
			Cmd:  cmd,
			Args: args,
		}
		return fn(ctx, req)
	}
}

// newConsoleLogger logs warnings and errors to stderr, everything with verbose.
func newConsoleLogger(verbose bool) *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// answerFlags registers a string flag per answer that has no positional slot.
func answerFlags(c *cobra.Command, flags map[string]string) *cobra.Command {
	for name, usage := range flags {
		c.Flags().String(name, "", usage)
	}
	return c
}

func init() {
	// Initializes all commands
	handler := cmd.New()

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every request made to Team Services")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Timeout of each request to Team Services (default $TEAMGEN_TIMEOUT or 30s)")
	rootCmd.PersistentFlags().Bool("force", false, "Overwrite files that already exist")
	rootCmd.PersistentFlags().Bool("open", false, "Open the build and release definitions in the browser")
	rootCmd.PersistentPreRun = func(c *cobra.Command, args []string) {
		verbose, _ := c.Flags().GetBool("verbose")
		timeout, _ := c.Flags().GetDuration("timeout")
		handler.Setup(newConsoleLogger(verbose), timeout)
	}

	patFlag := map[string]string{
		"pat": "Personal access token (default $TEAMGEN_PAT)",
	}
	paasFlags := map[string]string{
		"azure-sub-id":          "Azure subscription ID",
		"tenant-id":             "Azure tenant ID",
		"service-principal-id":  "Service principal ID",
		"service-principal-key": "Service principal key",
	}
	dockerFlags := map[string]string{
		"docker-cert-path":         "Directory holding ca.pem, cert.pem and key.pem",
		"docker-registry-password": "Docker Hub password",
		"docker-registry-email":    "Docker Hub email",
	}

	appCmd := &cobra.Command{
		Use:   "app [type] [applicationName] [tfs] [queue] [target] [azureSub] [dockerHost] [dockerRegistryId] [dockerPorts] [pat]",
		Short: "Generate an application and configure its CI/CD pipeline",
		Args:  cobra.MaximumNArgs(10),
		RunE:  contextualize(handler.App, handler.Panic),
	}
	answerFlags(appCmd, patFlag)
	answerFlags(appCmd, paasFlags)
	answerFlags(appCmd, dockerFlags)
	appCmd.Flags().String("group-id", "", "Group ID of a Java application")
	rootCmd.AddCommand(appCmd)

	pipelineCmd := &cobra.Command{
		Use:   "pipeline [type] [applicationName] [tfs] [queue] [target] [azureSub] [dockerHost] [dockerRegistryId] [dockerPorts] [pat]",
		Short: "Configure the CI/CD pipeline of an existing application",
		Args:  cobra.MaximumNArgs(10),
		RunE:  contextualize(handler.Pipeline, handler.Panic),
	}
	answerFlags(pipelineCmd, patFlag)
	answerFlags(pipelineCmd, paasFlags)
	answerFlags(pipelineCmd, dockerFlags)
	rootCmd.AddCommand(pipelineCmd)

	rootCmd.AddCommand(&cobra.Command{
		Use:   "java [applicationName] [groupId] [installDep]",
		Short: "Generate a Java application",
		Args:  cobra.MaximumNArgs(3),
		RunE:  contextualize(handler.Java, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "node [applicationName] [installDep]",
		Short: "Generate a Node.js application",
		Args:  cobra.MaximumNArgs(2),
		RunE:  contextualize(handler.Node, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "asp [applicationName] [installDep]",
		Short: "Generate a .NET Core application",
		Args:  cobra.MaximumNArgs(2),
		RunE:  contextualize(handler.ASP, handler.Panic),
	})
	rootCmd.AddCommand(answerFlags(&cobra.Command{
		Use:   "docker [applicationName] [tfs] [dockerHost] [dockerCertPath] [pat]",
		Short: "Find or create the Docker host service endpoint",
		Args:  cobra.MaximumNArgs(5),
		RunE:  contextualize(handler.Docker, handler.Panic),
	}, patFlag))
	rootCmd.AddCommand(answerFlags(&cobra.Command{
		Use:   "registry [applicationName] [tfs] [dockerRegistryId] [dockerRegistryPassword] [dockerRegistryEmail] [pat]",
		Short: "Find or create the Docker Hub service endpoint",
		Args:  cobra.MaximumNArgs(6),
		RunE:  contextualize(handler.Registry, handler.Panic),
	}, patFlag))
	rootCmd.AddCommand(answerFlags(&cobra.Command{
		Use:   "azure [applicationName] [tfs] [azureSub] [azureSubId] [tenantId] [servicePrincipalId] [servicePrincipalKey] [pat]",
		Short: "Find or create the Azure service endpoint",
		Args:  cobra.MaximumNArgs(8),
		RunE:  contextualize(handler.Azure, handler.Panic),
	}, patFlag))
	rootCmd.AddCommand(answerFlags(&cobra.Command{
		Use:   "pools [tfs] [pat]",
		Short: "List the agent pools of a collection",
		Args:  cobra.MaximumNArgs(2),
		RunE:  contextualize(handler.Pools, handler.Panic),
	}, patFlag))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "config",
		Short: "Show the stored answers",
		RunE:  contextualize(handler.Config, handler.Panic),
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Get version of the teamgen CLI",
		RunE:  contextualize(handler.Version, handler.Panic),
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if strings.Contains(err.Error(), "unknown command") {
			suggStr := "\nS"

			suggestions := rootCmd.SuggestionsFor(os.Args[1])
			if len(suggestions) > 0 {
				suggStr = fmt.Sprintf(" Did you mean \"%s\"?\nIf not, s", suggestions[0])
			}

			fmt.Println(fmt.Sprintf("Unknown command \"%s\" for \"%s\".%s"+
				"ee \"teamgen --help\" for available commands.",
				os.Args[1], rootCmd.CommandPath(), suggStr))
		} else {
			fmt.Println(ui.ErrorText(err))
		}
		os.Exit(1)
	}
}
