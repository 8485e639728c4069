package check

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// swiftExt is the source extension the directory census collects.
const swiftExt = ".swift"

// File is one BUILD.bazel file under repair. It owns its raw text for
// the duration of a single pass and carries an immutable census of the
// Swift sources under its directory, taken lazily and at most once.
// Detection and fixing both read the same census, so rewrites stay
// deterministic for a given (text, census) pair.
type File struct {
	// Path is the filesystem path of the BUILD.bazel file.
	Path string

	// Dir is the directory containing the file.
	Dir string

	// Text is the raw file content at the start of the pass.
	Text string

	censusOnce sync.Once
	census     []string
}

// NewFile creates a File for the given path and content.
func NewFile(path, text string) *File {
	return &File{
		Path: path,
		Dir:  filepath.Dir(path),
		Text: text,
	}
}

// SwiftSources returns the relative, slash-separated paths of all
// Swift files under the file's directory. Symbolic links are not
// followed. Walk errors degrade to an empty census: a directory we
// cannot read is treated as having no sources.
func (f *File) SwiftSources() []string {
	f.censusOnce.Do(func() {
		_ = filepath.WalkDir(f.Dir, func(path string, entry fs.DirEntry, walkErr error) error {
			if walkErr != nil {
				if os.IsPermission(walkErr) {
					return nil
				}
				return walkErr
			}
			if entry.IsDir() || entry.Type()&fs.ModeSymlink != 0 {
				return nil
			}
			if filepath.Ext(path) != swiftExt {
				return nil
			}
			rel, relErr := filepath.Rel(f.Dir, path)
			if relErr != nil {
				return nil
			}
			f.census = append(f.census, filepath.ToSlash(rel))
			return nil
		})
	})
	return f.census
}

// HasSwiftSources reports whether any Swift file exists under the
// file's directory.
func (f *File) HasSwiftSources() bool {
	return len(f.SwiftSources()) > 0
}

// HasSourcesDir reports whether a Sources subdirectory exists next to
// the BUILD.bazel file.
func (f *File) HasSourcesDir() bool {
	stat, err := os.Stat(filepath.Join(f.Dir, "Sources"))
	return err == nil && stat.IsDir()
}

// AllSwiftInRoot reports whether every Swift file sits directly in the
// file's directory (no subdirectory component).
func (f *File) AllSwiftInRoot() bool {
	sources := f.SwiftSources()
	if len(sources) == 0 {
		return false
	}
	for _, src := range sources {
		if strings.Contains(src, "/") {
			return false
		}
	}
	return true
}

// AllSwiftUnderSources reports whether every Swift file sits under the
// Sources subdirectory.
func (f *File) AllSwiftUnderSources() bool {
	sources := f.SwiftSources()
	if len(sources) == 0 {
		return false
	}
	for _, src := range sources {
		if !strings.HasPrefix(src, "Sources/") {
			return false
		}
	}
	return true
}
