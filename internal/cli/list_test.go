package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/runoshun/git-issue-flow/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleIssues() []domain.Issue {
	return []domain.Issue{
		{Number: 7, Title: "Fix crash", URL: "https://github.com/acme/widgets/issues/7", Labels: []domain.Label{{Name: "bug", Color: "d73a4a"}}},
		{Number: 9, Title: "Docs", URL: "https://github.com/acme/widgets/issues/9"},
	}
}

func TestListCommand_Text(t *testing.T) {
	// Setup
	c, deps := newTestContainer(sampleIssues()...)

	// Execute
	stdout, _, err := runCommand(t, c, "list")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "Open issues in acme/widgets - #2\n#7 Fix crash [bug]\n#9 Docs\n", stdout)
	assert.Equal(t, []string{"list"}, deps.tracker.Calls)
}

func TestListCommand_Empty(t *testing.T) {
	c, _ := newTestContainer()

	stdout, _, err := runCommand(t, c, "list")

	require.NoError(t, err)
	assert.Equal(t, "No open issues found\n", stdout)
}

func TestListCommand_JSON(t *testing.T) {
	c, _ := newTestContainer(sampleIssues()...)

	stdout, _, err := runCommand(t, c, "list", "--format", "json")

	require.NoError(t, err)
	var got []domain.Issue
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.Equal(t, sampleIssues(), got)
}

func TestListCommand_YAML(t *testing.T) {
	c, _ := newTestContainer(sampleIssues()...)

	stdout, _, err := runCommand(t, c, "list", "-f", "yaml")

	require.NoError(t, err)
	assert.Contains(t, stdout, "number: 7")
	assert.Contains(t, stdout, "title: Fix crash")
	var got []domain.Issue
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &got))
	assert.Len(t, got, 2)
}

func TestListCommand_EmptyStructured(t *testing.T) {
	c, _ := newTestContainer()

	stdout, _, err := runCommand(t, c, "list", "--format", "json")

	require.NoError(t, err)
	assert.Equal(t, "[]\n", stdout)
}

func TestListCommand_Table(t *testing.T) {
	c, _ := newTestContainer(sampleIssues()...)

	stdout, _, err := runCommand(t, c, "list", "--format", "table")

	require.NoError(t, err)
	assert.Contains(t, stdout, "Open issues in acme/widgets - #2")
	assert.Contains(t, stdout, "Issue")
	assert.Contains(t, stdout, "#7")
	assert.Contains(t, stdout, "Fix crash")
	assert.Contains(t, stdout, "bug")
	assert.Contains(t, stdout, "https://github.com/acme/widgets/issues/9")
}

func TestListCommand_UnknownFormat(t *testing.T) {
	c, deps := newTestContainer(sampleIssues()...)

	_, _, err := runCommand(t, c, "list", "--format", "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
	assert.Empty(t, deps.tracker.Calls, "format is validated before fetching")
}

func TestListCommand_MissingToken(t *testing.T) {
	c, deps := newTestContainer(sampleIssues()...)
	deps.settings.Settings.Token = ""

	_, _, err := runCommand(t, c, "list")

	assert.ErrorIs(t, err, domain.ErrMissingCredential)
}

func TestRenderIssueLine_LabelsInOrder(t *testing.T) {
	var buf bytes.Buffer
	issues := []domain.Issue{{Number: 3, Title: "T", Labels: []domain.Label{{Name: "a"}, {Name: "b"}}}}

	require.NoError(t, renderIssues(&buf, formatText, domain.RepositoryIdentity{Owner: "o", Name: "r"}, issues))

	assert.Contains(t, buf.String(), "#3 T [a] [b]")
}
