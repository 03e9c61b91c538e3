package main

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bodgit/sevenzip"
	"github.com/hajimehoshi/ebiten/v2"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/nwaples/rardecode"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// Image loading functions

func readZipEntry(archivePath, entryPath string) ([]byte, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == entryPath {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("entry %s not found in %s", entryPath, archivePath)
}

func readRarEntry(archivePath, entryPath string) ([]byte, error) {
	f, err := os.Open(archivePath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := rardecode.NewReader(f, "")
	if err != nil {
		return nil, err
	}

	for {
		header, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if header.Name == entryPath {
			return io.ReadAll(r)
		}
	}
	return nil, fmt.Errorf("entry %s not found in %s", entryPath, archivePath)
}

func read7zEntry(archivePath, entryPath string) ([]byte, error) {
	r, err := sevenzip.OpenReader(archivePath)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	for _, f := range r.File {
		if f.Name == entryPath {
			rc, err := f.Open()
			if err != nil {
				return nil, err
			}
			defer rc.Close()
			return io.ReadAll(rc)
		}
	}
	return nil, fmt.Errorf("entry %s not found in %s", entryPath, archivePath)
}

// readImageBytes returns the encoded bytes of a file or archive entry
func readImageBytes(imagePath ImagePath) ([]byte, error) {
	if imagePath.ArchivePath == "" {
		return os.ReadFile(imagePath.Path)
	}

	ext := strings.ToLower(filepath.Ext(imagePath.ArchivePath))
	switch ext {
	case ".zip":
		return readZipEntry(imagePath.ArchivePath, imagePath.EntryPath)
	case ".rar":
		return readRarEntry(imagePath.ArchivePath, imagePath.EntryPath)
	case ".7z":
		return read7zEntry(imagePath.ArchivePath, imagePath.EntryPath)
	default:
		return nil, fmt.Errorf("unsupported archive format: %s", ext)
	}
}

// decodeImage reads and decodes one image
func decodeImage(imagePath ImagePath) (image.Image, error) {
	data, err := readImageBytes(imagePath)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", imagePath.Path, err)
	}
	return img, nil
}

// ImageStore resolves slide sources to images and keeps the most recently
// used ones decoded. It is the Decoder behind every fit request.
type ImageStore struct {
	mu     sync.RWMutex
	paths  map[string]ImagePath
	failed map[string]error
	cache  *lru.Cache[string, *ebiten.Image]
	decode func(ImagePath) (image.Image, error)
	toGPU  func(image.Image) *ebiten.Image
}

// NewImageStore creates a store holding at most cacheSize decoded images
func NewImageStore(cacheSize int) *ImageStore {
	cache, err := lru.NewWithEvict[string, *ebiten.Image](cacheSize, func(_ string, img *ebiten.Image) {
		if img != nil {
			img.Deallocate()
		}
	})
	if err != nil {
		log.Printf("Error: Failed to create LRU cache: %v", err)
		cache, _ = lru.NewWithEvict[string, *ebiten.Image](16, func(_ string, img *ebiten.Image) {
			if img != nil {
				img.Deallocate()
			}
		})
	}

	return &ImageStore{
		paths:  make(map[string]ImagePath),
		failed: make(map[string]error),
		cache:  cache,
		decode: decodeImage,
		toGPU:  ebiten.NewImageFromImage,
	}
}

// AddPaths registers image locations so their sources can be resolved
func (s *ImageStore) AddPaths(paths []ImagePath) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range paths {
		s.paths[p.Path] = p
	}
}

func (s *ImageStore) resolve(src string) ImagePath {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.paths[src]; ok {
		return p
	}
	return ImagePath{Path: src}
}

// DecodeSize loads src into the cache if needed and returns its size
func (s *ImageStore) DecodeSize(ctx context.Context, src string) (int, int, error) {
	if img, ok := s.cache.Get(src); ok {
		debugLog("Cache HIT: %s (cache: %d items)", src, s.cache.Len())
		b := img.Bounds()
		return b.Dx(), b.Dy(), nil
	}
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}

	decoded, err := s.decode(s.resolve(src))
	if err != nil {
		s.mu.Lock()
		s.failed[src] = err
		s.mu.Unlock()
		return 0, 0, err
	}

	s.mu.Lock()
	delete(s.failed, src)
	s.mu.Unlock()

	b := decoded.Bounds()
	s.cache.Add(src, s.toGPU(decoded))
	debugLog("Cache MISS: %s, loaded and cached (cache: %d items)", src, s.cache.Len())
	return b.Dx(), b.Dy(), nil
}

// Image returns the decoded image for src if it is cached
func (s *ImageStore) Image(src string) (*ebiten.Image, bool) {
	return s.cache.Peek(src)
}

// Failure returns the last decode error recorded for src
func (s *ImageStore) Failure(src string) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.failed[src]
}

// Cached reports whether src is already decoded
func (s *ImageStore) Cached(src string) bool {
	return s.cache.Contains(src)
}

func (s *ImageStore) Len() int {
	return s.cache.Len()
}

// PreloadStats provides statistics about preloading
type PreloadStats struct {
	LoadedCount int
	FailedCount int
}

// PreloadManager decodes the neighbors of the current slide in the background
type PreloadManager struct {
	requestChan chan []string
	ctx         context.Context
	cancel      context.CancelFunc
	store       *ImageStore
	mu          sync.RWMutex
	stats       PreloadStats
	enabled     bool
}

// NewPreloadManager creates a PreloadManager and starts its worker
func NewPreloadManager(store *ImageStore, enabled bool) *PreloadManager {
	ctx, cancel := context.WithCancel(context.Background())
	pm := &PreloadManager{
		requestChan: make(chan []string, 8),
		ctx:         ctx,
		cancel:      cancel,
		store:       store,
		enabled:     enabled,
	}

	go pm.worker()

	return pm
}

func (pm *PreloadManager) IsEnabled() bool {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return pm.enabled
}

func (pm *PreloadManager) GetStats() PreloadStats {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return pm.stats
}

func (pm *PreloadManager) Stop() {
	pm.cancel()
}

// StartPreload replaces any pending request with srcs
func (pm *PreloadManager) StartPreload(srcs []string) {
	if !pm.IsEnabled() || len(srcs) == 0 {
		return
	}

drain:
	for {
		select {
		case <-pm.requestChan:
		default:
			break drain
		}
	}

	select {
	case pm.requestChan <- srcs:
	default:
		debugLog("Preload request channel full, skipping preload request")
	}
}

func (pm *PreloadManager) worker() {
	for {
		select {
		case <-pm.ctx.Done():
			return
		case srcs := <-pm.requestChan:
			for _, src := range srcs {
				if pm.ctx.Err() != nil {
					return
				}
				pm.preload(src)
			}
		}
	}
}

func (pm *PreloadManager) preload(src string) {
	if pm.store.Cached(src) {
		return
	}
	_, _, err := pm.store.DecodeSize(pm.ctx, src)

	pm.mu.Lock()
	defer pm.mu.Unlock()
	if err != nil {
		pm.stats.FailedCount++
		debugLog("Preload failed for %s: %v", src, err)
		return
	}
	pm.stats.LoadedCount++
}

// neighborSources returns the sources of up to count slides on each side of
// the cursor, nearest first
func neighborSources(list *SlideList, count int) []string {
	slides := list.Slides()
	current, ok := list.Current()
	if !ok {
		return nil
	}
	pos := 0
	for i, s := range slides {
		if s.ID == current.ID {
			pos = i
			break
		}
	}

	var srcs []string
	for d := 1; d <= count; d++ {
		if pos+d < len(slides) {
			srcs = append(srcs, slides[pos+d].Src)
		}
		if pos-d >= 0 {
			srcs = append(srcs, slides[pos-d].Src)
		}
	}
	return srcs
}
