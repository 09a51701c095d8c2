package cmd

import (
	"context"
	"fmt"

	"github.com/teamgen/cli/ui"
	"go.uber.org/zap"
)

// Panic reports a recovered panic. The stack is only logged with --verbose.
func (h *Handler) Panic(ctx context.Context, recovered interface{}, stack string, command string) error {
	h.logger.Debug("recovered panic", zap.String("command", command), zap.String("stack", stack))
	fmt.Fprintf(h.out, "%s %v\n", ui.RedText(fmt.Sprintf("teamgen %s stopped unexpectedly:", command)), recovered)
	return nil
}
