package walker

import (
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// ignoreTree tracks the .gitignore rules in effect for each visited directory.
// A directory's layers are its parent's layers plus its own .gitignore, so
// rules from outer directories keep applying further down.
type ignoreTree struct {
	layers map[string][]ignoreLayer
}

type ignoreLayer struct {
	dir    string
	parser *ignore.GitIgnore
}

func newIgnoreTree() *ignoreTree {
	return &ignoreTree{layers: make(map[string][]ignoreLayer)}
}

// enter loads .gitignore from dir and records the combined layers for it.
// Parents must be entered before their children.
func (t *ignoreTree) enter(dir string) {
	parent := t.layers[filepath.Dir(dir)]
	layer := loadIgnoreLayer(dir)
	if layer.parser == nil {
		t.layers[dir] = parent
		return
	}
	layers := make([]ignoreLayer, len(parent)+1)
	copy(layers, parent)
	layers[len(parent)] = layer
	t.layers[dir] = layers
}

// layersFor returns the rules in effect for entries directly inside dir.
func (t *ignoreTree) layersFor(dir string) []ignoreLayer {
	return t.layers[dir]
}

// loadIgnoreLayer loads and compiles a .gitignore from the given directory.
// Returns a layer with nil parser if no .gitignore exists or on parse error.
func loadIgnoreLayer(dir string) ignoreLayer {
	parser, err := ignore.CompileIgnoreFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return ignoreLayer{dir: dir, parser: nil}
	}
	return ignoreLayer{dir: dir, parser: parser}
}

// isIgnoredByLayers checks if a path should be ignored by any layer in the slice.
func isIgnoredByLayers(layers []ignoreLayer, fullPath string, isDir bool) bool {
	for _, layer := range layers {
		if layer.parser == nil {
			continue
		}
		rel, err := filepath.Rel(layer.dir, fullPath)
		if err != nil {
			continue
		}
		checkPath := rel
		if isDir {
			checkPath = rel + "/"
		}
		if layer.parser.MatchesPath(checkPath) {
			return true
		}
	}
	return false
}
