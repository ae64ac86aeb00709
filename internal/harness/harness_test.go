package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	scenarios, err := LoadScenarios(filepath.Join("testdata", "scenarios.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, scenarios)

	for _, s := range scenarios {
		s := s
		t.Run(s.Name, func(t *testing.T) {
			lines, err := Run(&s)

			if s.ExpectError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), s.ExpectError)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, s.Expect, lines)
		})
	}
}

func TestLoadScenarios_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadScenarios(filepath.Join(t.TempDir(), "absent.yaml"))
		require.Error(t, err)
	})

	t.Run("unnamed scenario", func(t *testing.T) {
		path := writeScenarioFile(t, "scenarios:\n  - from: \"2015-01-01\"\n")
		_, err := LoadScenarios(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no name")
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := writeScenarioFile(t, "scenarios: [unterminated\n")
		_, err := LoadScenarios(path)
		require.Error(t, err)
	})
}

func TestScenario_RequestParsing(t *testing.T) {
	s := &Scenario{
		Name:      "parse",
		From:      "2015-01-01",
		To:        "2015-02-01",
		Increment: "2 weeks",
		Filter:    "business6",
		Header:    "dt",
		Limit:     4,
		Reverse:   true,
	}
	req, err := s.Request()
	require.NoError(t, err)

	assert.Equal(t, 2015, req.From.Year())
	require.NotNil(t, req.To)
	assert.Equal(t, 2, req.Increment.Weeks)
	assert.Equal(t, "business6", req.Filter.String())
	assert.Equal(t, "dt", req.Header)
	assert.Equal(t, 4, req.Limit)
	assert.True(t, req.Reverse)
}
