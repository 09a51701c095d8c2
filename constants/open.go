package constants

// WebURLMap holds the web pages of a team project, relative to the account
// URL. The first verb is the project name, the second a definition id.
var WebURLMap = map[string]string{
	"project": "%s/%s",
	"build":   "%s/%s/_build?definitionId=%d",
	"release": "%s/%s/_release?definitionId=%d",
	"queues":  "%s/%s/_admin/_AgentQueue",
	"tokens":  "%s/_details/security/tokens",
}
