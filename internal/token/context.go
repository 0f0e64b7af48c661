package token

import (
	"path"
	"strings"
)

// Substitution is the immutable bundle of naming facts a template fill
// draws from. It is built once per Fill call and discarded afterwards.
type Substitution struct {
	// FilePath is the target file's full vault path.
	FilePath string

	// FileName is the target file's name without extension.
	FileName string

	// FolderName is the name of the folder containing the target file.
	FolderName string

	// FolderPath is the full vault path of that folder.
	FolderPath string

	// OriginalName is the base name (no extension) of the file being
	// copied or moved, when one exists. Empty otherwise.
	OriginalName string

	// OriginalExtension is the extension (without dot) of the file
	// being copied or moved. Empty when not supplied.
	OriginalExtension string
}

// NewSubstitution derives a Substitution from the target path and the
// original file's name. originalName may be empty when no source file
// is involved (for example when creating a fresh note).
func NewSubstitution(targetPath, originalName string) Substitution {
	dir := path.Dir(targetPath)
	if dir == "." {
		dir = ""
	}

	base := path.Base(targetPath)
	name := strings.TrimSuffix(base, path.Ext(base))

	folderName := ""
	if dir != "" {
		folderName = path.Base(dir)
	}

	origExt := strings.TrimPrefix(path.Ext(originalName), ".")
	origName := strings.TrimSuffix(originalName, path.Ext(originalName))

	return Substitution{
		FilePath:          targetPath,
		FileName:          name,
		FolderName:        folderName,
		FolderPath:        dir,
		OriginalName:      origName,
		OriginalExtension: origExt,
	}
}
