package directories

import (
	"os"
	"path/filepath"
	"slices"

	"thicket/app/debug"
	"thicket/app/utils"
)

// Entry is a single child of a listed directory
type Entry struct {
	name  string
	Path  string
	IsDir bool
}

func (e Entry) Name() string {
	return e.name
}

// IsHidden reports whether the entry is a dot file
func (e Entry) IsHidden() bool {
	return isHidden(e.name)
}

// List reads the children of dirPath.
// Directories come first, both groups sorted alphabetically.
// Dot files are skipped unless showHidden is set and files are skipped
// if onlyFolders is set.
func List(dirPath string, showHidden bool, onlyFolders bool) ([]Entry, error) {
	children, err := os.ReadDir(dirPath)
	if err != nil {
		debug.LogErr(err)
		return nil, err
	}

	var dirs, files []Entry

	for _, child := range children {
		if !showHidden && isHidden(child.Name()) {
			continue
		}

		entry := Entry{
			name:  child.Name(),
			Path:  filepath.Join(dirPath, child.Name()),
			IsDir: isDir(dirPath, child),
		}

		if entry.IsDir {
			dirs = append(dirs, entry)
		} else if !onlyFolders {
			files = append(files, entry)
		}
	}

	utils.SortSliceAsc(dirs)
	utils.SortSliceAsc(files)

	return slices.Concat(dirs, files), nil
}

// ContainsEntry returns whether path has a direct child called name
func ContainsEntry(path string, name string) (bool, error) {
	entries, err := List(path, true, false)
	if err != nil {
		return false, err
	}

	for _, entry := range entries {
		if entry.name == name {
			return true, nil
		}
	}
	return false, nil
}

// isDir resolves symlinks so that linked directories can be expanded
func isDir(parent string, child os.DirEntry) bool {
	if child.Type()&os.ModeSymlink == 0 {
		return child.IsDir()
	}

	info, err := os.Stat(filepath.Join(parent, child.Name()))
	if err != nil {
		return false
	}
	return info.IsDir()
}

func isHidden(name string) bool {
	return len(name) > 0 && name[0] == '.'
}
