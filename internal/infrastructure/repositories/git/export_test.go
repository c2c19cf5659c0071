//go:build unit

package git

// AuthenticatedURL exposes authenticatedURL to external tests.
func AuthenticatedURL(credential, repo string) string {
	return authenticatedURL(credential, repo)
}

// RedactArgs exposes redactArgs to external tests.
func RedactArgs(args []string) []string {
	return redactArgs(args)
}

// IsDubiousOwnership exposes isDubiousOwnership to external tests.
func IsDubiousOwnership(err *CommandError) bool {
	return isDubiousOwnership(err)
}
