package entities

// Artifact is the generated content a run commits into the workspace.
type Artifact struct {
	// Path is relative to the workspace root.
	Path    string
	Content []byte
}
