package walker

import (
	"io/fs"
	"os"
	"path/filepath"
)

// WalkOptions configures directory traversal behavior.
type WalkOptions struct {
	NoIgnore bool // skip .gitignore processing
	Hidden   bool // include hidden files and directories
	// Globs are doublestar patterns matched against the slash-separated path
	// relative to the root. A "!" prefix excludes.
	Globs []string
}

// Walk enumerates the regular files under root in lexical order.
// A root that is itself a file yields just that file, unfiltered.
// Hidden entries, VCS directories and .gitignore'd paths are skipped unless
// opts say otherwise. Errors on individual entries go to onErr and the walk
// continues; only a failure to stat root is returned.
func Walk(root string, opts WalkOptions, onErr func(error)) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, &WalkError{Path: root, Err: err}
	}
	if !info.IsDir() {
		return []string{root}, nil
	}
	root = filepath.Clean(root)

	globs, err := newGlobFilter(opts.Globs)
	if err != nil {
		return nil, err
	}

	w := &treeWalker{
		root:    root,
		opts:    opts,
		globs:   globs,
		ignores: newIgnoreTree(),
		onErr:   onErr,
	}
	if err := filepath.WalkDir(root, w.visit); err != nil {
		return nil, err
	}
	return w.files, nil
}

// treeWalker holds the state of one Walk call.
type treeWalker struct {
	root    string
	opts    WalkOptions
	globs   globFilter
	ignores *ignoreTree
	onErr   func(error)
	files   []string
}

func (w *treeWalker) visit(path string, d fs.DirEntry, err error) error {
	if err != nil {
		w.report(&WalkError{Path: path, Err: err})
		if d != nil && d.IsDir() && path != w.root {
			return fs.SkipDir
		}
		return nil
	}

	if path == w.root {
		if !w.opts.NoIgnore {
			w.ignores.enter(path)
		}
		return nil
	}

	isDir := d.IsDir()
	if d.Type()&fs.ModeSymlink != 0 {
		// Follow symlinks to files; symlinked directories are not descended
		// into, which also rules out cycles.
		info, err := os.Stat(path)
		if err != nil {
			return nil // silently skip broken symlinks
		}
		if !info.Mode().IsRegular() {
			return nil
		}
	} else if !isDir && !d.Type().IsRegular() {
		return nil
	}

	name := d.Name()
	if isDir {
		if skipDir(name, w.opts.Hidden) || w.ignored(path, true) {
			return fs.SkipDir
		}
		if !w.opts.NoIgnore {
			w.ignores.enter(path)
		}
		return nil
	}

	if !w.opts.Hidden && len(name) > 0 && name[0] == '.' {
		return nil
	}
	if w.ignored(path, false) {
		return nil
	}
	if !w.globs.empty() {
		rel, err := filepath.Rel(w.root, path)
		if err != nil || !w.globs.allow(filepath.ToSlash(rel)) {
			return nil
		}
	}
	w.files = append(w.files, path)
	return nil
}

func (w *treeWalker) ignored(path string, isDir bool) bool {
	if w.opts.NoIgnore {
		return false
	}
	return isIgnoredByLayers(w.ignores.layersFor(filepath.Dir(path)), path, isDir)
}

func (w *treeWalker) report(err error) {
	if w.onErr != nil {
		w.onErr(err)
	}
}

// skipDir returns true for directories that should be skipped.
// VCS directories (.git, .svn, .hg) are always skipped.
// Other hidden directories are skipped unless hidden is true.
func skipDir(name string, hidden bool) bool {
	switch name {
	case ".git", ".svn", ".hg":
		return true
	}
	if !hidden && len(name) > 0 && name[0] == '.' {
		return true
	}
	return false
}

// WalkError represents an error during directory traversal.
type WalkError struct {
	Path string
	Err  error
}

func (e *WalkError) Error() string {
	return "walk " + e.Path + ": " + e.Err.Error()
}

func (e *WalkError) Unwrap() error {
	return e.Err
}
