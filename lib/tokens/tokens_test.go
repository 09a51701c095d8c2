package tokens_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/teamgen/cli/lib/tokens"
)

var tokenizeTest = []struct {
	name   string
	input  string
	values map[string]string
	out    string
}{
	{
		name:   "Nil values leave input untouched",
		input:  `{"name": "{{BuildDefName}}"}`,
		values: nil,
		out:    `{"name": "{{BuildDefName}}"}`,
	},
	{
		name:   "Every occurrence is replaced",
		input:  "{{App}}-CI uses {{App}}",
		values: map[string]string{"{{App}}": "Demo"},
		out:    "Demo-CI uses Demo",
	},
	{
		name:  "Longer keys win over their prefixes",
		input: "{{Project}} {{ProjectId}}",
		values: map[string]string{
			"{{Project":    "broken",
			"{{Project}}":   "Demo",
			"{{ProjectId}}": "42",
		},
		out: "Demo 42",
	},
	{
		name:   "Replacement values are not re-scanned",
		input:  "{{A}}",
		values: map[string]string{"{{A}}": "{{B}}", "{{B}}": "b"},
		out:    "{{B}}",
	},
}

func TestTokenize(t *testing.T) {
	for _, tt := range tokenizeTest {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.out, tokens.Tokenize(tt.input, tt.values))
		})
	}
}

func TestJSONEscapeKeepsDocumentValid(t *testing.T) {
	values := tokens.JSONEscape(map[string]string{
		"{{Name}}": `quote " and back\slash`,
	})
	doc := tokens.Tokenize(`{"name": "{{Name}}"}`, values)

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &out))
	require.Equal(t, `quote " and back\slash`, out.Name)
}
