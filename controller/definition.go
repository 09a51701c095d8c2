package controller

import (
	"embed"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/teamgen/cli/entity"
	"github.com/teamgen/cli/lib/tokens"
)

//go:embed templates/*.json
var definitionTemplates embed.FS

func buildTemplate(appType string, target string) string {
	if target == entity.TargetDocker {
		return "build_docker.json"
	}
	switch appType {
	case entity.TypeJava:
		return "build_java.json"
	case entity.TypeNode:
		return "build_node.json"
	default:
		return "build_asp.json"
	}
}

func releaseTemplate(target string) string {
	if target == entity.TargetDocker {
		return "release_docker.json"
	}
	return "release.json"
}

// renderDefinition fills the {{Token}} placeholders of an embedded
// definition template. Values are JSON escaped.
func renderDefinition(name string, values map[string]string) (json.RawMessage, error) {
	b, err := definitionTemplates.ReadFile("templates/" + name)
	if err != nil {
		return nil, errors.Wrapf(err, "reading definition template %s", name)
	}
	placeholders := make(map[string]string, len(values))
	for k, v := range values {
		placeholders[fmt.Sprintf("{{%s}}", k)] = v
	}
	doc := tokens.Tokenize(string(b), tokens.JSONEscape(placeholders))
	if !json.Valid([]byte(doc)) {
		return nil, fmt.Errorf("definition template %s did not render to valid JSON", name)
	}
	return json.RawMessage(doc), nil
}

func imageName(registryID string, appName string) string {
	return fmt.Sprintf("%s/%s", registryID, strings.ToLower(appName))
}

func endpointID(ep *entity.ServiceEndpoint) string {
	if ep == nil {
		return ""
	}
	return ep.ID
}

func definitionValues(account *entity.Account, project *entity.TeamProject, queue *entity.AgentQueue) map[string]string {
	return map[string]string{
		"AccountUrl":  account.URL,
		"ProjectId":   project.ID,
		"ProjectName": project.Name,
		"QueueId":     strconv.Itoa(queue.ID),
		"QueueName":   queue.Name,
	}
}
