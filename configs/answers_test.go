package configs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teamgen/cli/configs"
	"github.com/teamgen/cli/entity"
	"github.com/teamgen/cli/errors"
)

func TestAnswersRoundTripWithoutSecrets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	cfg := configs.NewWithPath(path)

	err := cfg.SetAnswers(&entity.Answers{
		TFS:                    "http://tfs:8080/tfs/DefaultCollection",
		PAT:                    "secret-pat",
		Type:                   entity.TypeJava,
		ApplicationName:        "Demo",
		GroupID:                "com.contoso",
		Queue:                  "Default",
		Target:                 entity.TargetPaaS,
		AzureSub:               "Pay-As-You-Go",
		ServicePrincipalKey:    "secret-key",
		DockerRegistryPassword: "secret-password",
		DockerPorts:            "8080:8080",
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "secret")
	assert.NotContains(t, string(raw), "8080:8080")

	got, err := configs.NewWithPath(path).GetAnswers()
	require.NoError(t, err)
	assert.Equal(t, "http://tfs:8080/tfs/DefaultCollection", got.TFS)
	assert.Equal(t, entity.TypeJava, got.Type)
	assert.Equal(t, "Demo", got.ApplicationName)
	assert.Equal(t, "com.contoso", got.GroupID)
	assert.Equal(t, "Pay-As-You-Go", got.AzureSub)
	assert.Empty(t, got.ServicePrincipalKey)
	assert.Empty(t, got.DockerRegistryPassword)
	assert.Empty(t, got.DockerPorts)
}

func TestGetAnswersTakesPATFromEnvironment(t *testing.T) {
	t.Setenv("TEAMGEN_PAT", "env-pat")
	path := filepath.Join(t.TempDir(), "config.json")
	cfg := configs.NewWithPath(path)
	require.NoError(t, cfg.SetAnswers(&entity.Answers{TFS: "https://demo.visualstudio.com"}))

	got, err := cfg.GetAnswers()
	require.NoError(t, err)
	assert.Equal(t, "env-pat", got.PAT)
}

func TestGetAnswersWithoutFile(t *testing.T) {
	t.Setenv("TEAMGEN_PAT", "")
	cfg := configs.NewWithPath(filepath.Join(t.TempDir(), "missing.json"))

	_, err := cfg.GetAnswers()
	assert.ErrorIs(t, err, errors.AnswersFileNotFound)

	answers, err := cfg.GetAnswersOrEmpty()
	require.NoError(t, err)
	assert.Equal(t, &entity.Answers{}, answers)
}

func TestGetAnswersOrEmptyReportsCorruptFile(t *testing.T) {
	t.Setenv("TEAMGEN_PAT", "")
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	answers, err := configs.NewWithPath(path).GetAnswersOrEmpty()
	assert.Nil(t, answers)
	require.Error(t, err)
	assert.NotErrorIs(t, err, errors.AnswersFileNotFound)
	assert.Contains(t, err.Error(), path)
}

func TestTimeout(t *testing.T) {
	cfg := configs.NewWithPath(filepath.Join(t.TempDir(), "config.json"))
	assert.Equal(t, 30*time.Second, cfg.Timeout())

	t.Setenv("TEAMGEN_TIMEOUT", "45s")
	assert.Equal(t, 45*time.Second, configs.NewWithPath(filepath.Join(t.TempDir(), "config.json")).Timeout())
}

func TestHomeFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TEAMGEN_HOME", dir)

	assert.Equal(t, filepath.Join(dir, "config.json"), configs.New().AnswersPath())
}
