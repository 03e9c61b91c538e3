package main

import (
	"archive/zip"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/nwaples/rardecode"
)

// ImagePath locates one image, either a plain file or an archive entry
type ImagePath struct {
	Path        string // Local file path or archive:entry format
	ArchivePath string // Empty for regular files
	EntryPath   string // Empty for regular files
}

func isArchiveExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".zip", ".rar", ".7z":
		return true
	default:
		return false
	}
}

func isSupportedExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".png", ".jpg", ".jpeg", ".webp", ".bmp", ".gif":
		return true
	default:
		return false
	}
}

func archiveEntry(archivePath, entryPath string) ImagePath {
	return ImagePath{
		Path:        archivePath + ":" + entryPath,
		ArchivePath: archivePath,
		EntryPath:   entryPath,
	}
}

func extractImagesFromZip(archivePath string) ([]ImagePath, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var images []ImagePath
	for _, f := range r.File {
		if !f.FileInfo().IsDir() && isSupportedExt(f.Name) {
			images = append(images, archiveEntry(archivePath, f.Name))
		}
	}
	return images, nil
}

func extractImagesFromRar(archivePath string) ([]ImagePath, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	var images []ImagePath
	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if !header.IsDir && isSupportedExt(header.Name) {
			images = append(images, archiveEntry(archivePath, header.Name))
		}
	}
	return images, nil
}

func extractImagesFrom7z(archivePath string) ([]ImagePath, error) {
	r, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var images []ImagePath
	for _, f := range r.File {
		if !f.FileInfo().IsDir() && isSupportedExt(f.Name) {
			images = append(images, archiveEntry(archivePath, f.Name))
		}
	}
	return images, nil
}

func processArchive(archivePath string) ([]ImagePath, error) {
	var images []ImagePath
	var err error

	ext := strings.ToLower(filepath.Ext(archivePath))
	switch ext {
	case ".zip":
		images, err = extractImagesFromZip(archivePath)
	case ".rar":
		images, err = extractImagesFromRar(archivePath)
	case ".7z":
		images, err = extractImagesFrom7z(archivePath)
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("reading archive %s: %w", archivePath, err)
	}
	return images, nil
}

// sortImagePaths returns a sorted copy of images using the given sort method
func sortImagePaths(images []ImagePath, sortMethod int) []ImagePath {
	return GetSortStrategy(sortMethod).Sort(images)
}

// collectImages expands files, directories and archives into an ordered list
// of images. Directories are walked recursively; each archive and each
// directory is sorted on its own so archive entries stay grouped.
func collectImages(args []string, sortMethod int) ([]ImagePath, error) {
	var list []ImagePath
	for _, p := range args {
		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}

		if !info.IsDir() {
			list = append(list, collectFile(p, sortMethod)...)
			continue
		}

		var dirImages []ImagePath
		err = filepath.Walk(p, func(path string, fi os.FileInfo, err error) error {
			if err != nil {
				return err
			}
			if !fi.IsDir() {
				dirImages = append(dirImages, collectFile(path, sortMethod)...)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		list = append(list, sortImagePaths(dirImages, sortMethod)...)
	}
	return list, nil
}

func collectFile(path string, sortMethod int) []ImagePath {
	switch {
	case isSupportedExt(path):
		return []ImagePath{{Path: path}}
	case isArchiveExt(path):
		images, err := processArchive(path)
		if err != nil {
			log.Printf("Warning: Skipping problematic archive %s: %v", path, err)
			return nil
		}
		return sortImagePaths(images, sortMethod)
	default:
		return nil
	}
}

// slidesFromPaths assigns ids in discovery order and derives title and link
// from each path
func slidesFromPaths(paths []ImagePath) []Slide {
	slides := make([]Slide, len(paths))
	for i, p := range paths {
		s := Slide{ID: i, Src: p.Path}
		if p.ArchivePath != "" {
			s.Title = filepath.Base(p.EntryPath)
			s.Link = p.ArchivePath
		} else {
			s.Title = filepath.Base(p.Path)
			s.Link = filepath.Dir(p.Path)
		}
		slides[i] = s
	}
	return slides
}

// indexOfPath returns the position of path in paths, or 0 when absent
func indexOfPath(paths []ImagePath, path string) int {
	if path == "" {
		return 0
	}
	clean := filepath.Clean(path)
	for i, p := range paths {
		if p.Path == path || filepath.Clean(p.Path) == clean {
			return i
		}
	}
	log.Printf("Warning: Start image %s not found, starting at the first image", path)
	return 0
}
