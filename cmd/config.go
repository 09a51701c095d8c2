package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/teamgen/cli/entity"
	"github.com/teamgen/cli/ui"
	"gopkg.in/yaml.v3"
)

// Config prints the stored answers. Secrets are never stored.
func (h *Handler) Config(ctx context.Context, req *entity.CommandRequest) error {
	answers, err := h.cfg.GetAnswers()
	if err != nil {
		return err
	}
	b, err := yaml.Marshal(answers)
	if err != nil {
		return errors.Wrap(err, "encoding answers")
	}
	fmt.Fprintln(h.out, ui.GrayText("# "+h.cfg.AnswersPath()))
	fmt.Fprint(h.out, string(b))
	return nil
}
