package di

// SetEnv populates flags from GitHub Actions environment variables.
func SetEnv(flags *Flags, getEnv func(string) string) {
	flags.IsGitHubActions = getEnv("GITHUB_ACTIONS") == "true"
	flags.GitHubOutput = getEnv("GITHUB_OUTPUT")
}
