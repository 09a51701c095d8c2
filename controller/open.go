package controller

import (
	"fmt"

	"github.com/teamgen/cli/constants"
	"github.com/teamgen/cli/entity"
)

func ProjectURL(account *entity.Account, project *entity.TeamProject) string {
	return fmt.Sprintf(constants.WebURLMap["project"], account.URL, project.Name)
}

func BuildURL(account *entity.Account, project *entity.TeamProject, build *entity.BuildDefinition) string {
	return fmt.Sprintf(constants.WebURLMap["build"], account.URL, project.Name, build.ID)
}

func ReleaseURL(account *entity.Account, project *entity.TeamProject, release *entity.ReleaseDefinition) string {
	return fmt.Sprintf(constants.WebURLMap["release"], account.URL, project.Name, release.ID)
}

func TokensURL(account *entity.Account) string {
	return fmt.Sprintf(constants.WebURLMap["tokens"], account.URL)
}

// OpenInBrowser opens the provided url in the browser
func (c *Controller) OpenInBrowser(url string) error {
	return c.openURL(url)
}

// OpenPipelineInBrowser opens the CI and CD definitions of p.
func (c *Controller) OpenPipelineInBrowser(account *entity.Account, p *entity.Pipeline) error {
	if err := c.openURL(BuildURL(account, p.Project, p.Build)); err != nil {
		return err
	}
	return c.openURL(ReleaseURL(account, p.Project, p.Release))
}
