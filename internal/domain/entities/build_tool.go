package entities

// BuildTool describes how to invoke the external build tool.
type BuildTool struct {
	Binary string
	Dir    string // working directory; empty means the current directory
}
