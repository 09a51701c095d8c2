package cmd

import (
	"context"
	"fmt"

	"github.com/teamgen/cli/constants"
	"github.com/teamgen/cli/entity"
	"github.com/teamgen/cli/ui"
	"go.uber.org/zap"
)

func (h *Handler) Version(ctx context.Context, req *entity.CommandRequest) error {
	fmt.Fprintf(h.out, "teamgen version %s\n", constants.Version)
	if constants.Version == "source" || h.releases == nil {
		return nil
	}
	latest, err := h.releases.GetLatestVersion(ctx)
	if err != nil {
		h.logger.Debug("checking latest release", zap.Error(err))
		return nil
	}
	if latest != "" && latest != constants.Version {
		fmt.Fprintln(h.out, "A newer version of teamgen is available, please update to:", ui.Bold(latest))
	}
	return nil
}
