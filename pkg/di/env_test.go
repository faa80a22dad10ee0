package di_test

import (
	"testing"

	"github.com/jdfalk/update-docker-ref/pkg/di"
)

func TestSetEnv(t *testing.T) {
	t.Parallel()
	data := []struct {
		name               string
		env                map[string]string
		expGitHubOutput    string
		expIsGitHubActions bool
	}{
		{
			name:               "empty",
			env:                map[string]string{},
			expGitHubOutput:    "",
			expIsGitHubActions: false,
		},
		{
			name: "all values set",
			env: map[string]string{
				"GITHUB_OUTPUT":  "/tmp/github_output",
				"GITHUB_ACTIONS": "true",
			},
			expGitHubOutput:    "/tmp/github_output",
			expIsGitHubActions: true,
		},
		{
			name: "not true",
			env: map[string]string{
				"GITHUB_ACTIONS": "1",
			},
			expIsGitHubActions: false,
		},
	}
	for _, d := range data {
		t.Run(d.name, func(t *testing.T) {
			t.Parallel()
			flags := &di.Flags{}
			di.SetEnv(flags, func(key string) string {
				return d.env[key]
			})
			if flags.GitHubOutput != d.expGitHubOutput {
				t.Errorf("GitHubOutput: wanted %q, got %q", d.expGitHubOutput, flags.GitHubOutput)
			}
			if flags.IsGitHubActions != d.expIsGitHubActions {
				t.Errorf("IsGitHubActions: wanted %v, got %v", d.expIsGitHubActions, flags.IsGitHubActions)
			}
		})
	}
}
