// Package assets embeds the static runner files the pipeline pushes into a
// fork on first push.
package assets

import (
	"embed"
)

//go:embed files
var files embed.FS

// Asset is a static file pushed into a fork, addressed by its in-repo path.
type Asset struct {
	RepoPath string
	Content  []byte
}

// staticPaths is the push order; the runner entry point goes first so a fork
// that only partially bootstraps still has the main script.
var staticPaths = []string{
	"test-runner.js",
	"schema/jsonSchemaValidator.js",
	"schema/schema.json",
}

// StaticRunnerFiles returns the static assets in push order.
func StaticRunnerFiles() []Asset {
	runners := make([]Asset, 0, len(staticPaths))
	for _, path := range staticPaths {
		content, err := files.ReadFile("files/" + path)
		if err != nil {
			// embed guarantees the files exist; a miss is a packaging bug
			panic("missing embedded asset: " + path)
		}
		runners = append(runners, Asset{
			RepoPath: path,
			Content:  content,
		})
	}
	return runners
}
