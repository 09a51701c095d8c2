package configs

import (
	"os"

	"github.com/pkg/errors"
	"github.com/teamgen/cli/entity"
	teamerrors "github.com/teamgen/cli/errors"
)

// GetAnswers returns the stored answers with the PAT taken from the
// environment.
func (c *Configs) GetAnswers() (*entity.Answers, error) {
	var cfg entity.Answers

	if _, err := os.Stat(c.answerConfigs.configPath); os.IsNotExist(err) {
		return nil, teamerrors.AnswersFileNotFound
	}
	if err := c.unmarshalConfig(c.answerConfigs, &cfg); err != nil {
		return nil, errors.Wrapf(err, "reading %s", c.answerConfigs.configPath)
	}
	cfg.PAT = c.PAT()
	return &cfg, nil
}

// GetAnswersOrEmpty is GetAnswers for callers that only use stored answers
// as defaults. A missing file is empty, an unreadable one is an error.
func (c *Configs) GetAnswersOrEmpty() (*entity.Answers, error) {
	cfg, err := c.GetAnswers()
	if errors.Is(err, teamerrors.AnswersFileNotFound) {
		return &entity.Answers{PAT: c.PAT()}, nil
	}
	return cfg, err
}

func (c *Configs) SetAnswers(cfg *entity.Answers) error {
	return c.marshalConfig(c.answerConfigs, *cfg)
}
