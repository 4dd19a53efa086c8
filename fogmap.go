/*
Package fogmap is a read-only decoder for the explored-map state synced
by the Fog of World application.

The application persists the map as a flat directory of compressed tile
files under <root>/Sync. Loading walks that directory, decodes every
tile file it can and assembles the results into a Map; individual files
that fail to decode are logged and skipped.
*/
package fogmap

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"

	"github.com/bodgit/fogmap/tile"
)

// SyncDir is the subdirectory under the map root that holds the tile
// files.
const SyncDir = "Sync"

// Loader decodes explored-map directories.
type Loader struct {
	logger  *log.Logger
	workers int
}

// New returns a Loader reporting progress and per-file warnings to
// logger. Up to workers tile files are decoded concurrently; zero or
// negative means one per available CPU. A nil logger discards all
// messages.
func New(logger *log.Logger, workers int) *Loader {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Loader{
		logger:  logger,
		workers: workers,
	}
}

// Map is the decoded explored-world state. It is immutable once loaded.
type Map struct {
	path    string
	tiles   map[tile.Coord]*tile.Tile
	regions map[string]struct{}
}

// Path returns the root directory the map was loaded from.
func (m *Map) Path() string {
	return m.path
}

// Tile returns the tile at global grid position (x, y), if any file for
// it decoded successfully.
func (m *Map) Tile(x, y int) (*tile.Tile, bool) {
	t, ok := m.tiles[tile.Coord{X: x, Y: y}]
	return t, ok
}

// Tiles returns the decoded tiles keyed by global grid position. The
// returned map must not be modified.
func (m *Map) Tiles() map[tile.Coord]*tile.Tile {
	return m.tiles
}

// Regions returns the sorted union of region codes across all tiles.
func (m *Map) Regions() []string {
	regions := make([]string, 0, len(m.regions))
	for r := range m.regions {
		regions = append(regions, r)
	}
	sort.Strings(regions)
	return regions
}

// Load decodes the explored map rooted at path. See LoadContext.
func (l *Loader) Load(path string) (*Map, error) {
	return l.LoadContext(context.Background(), path)
}

// LoadContext decodes the explored map rooted at path. Tile files that
// fail to decode are logged and skipped; a missing Sync directory under
// path is an error satisfying errors.Is with fs.ErrNotExist. Cancelling
// ctx abandons the load.
func (l *Loader) LoadContext(ctx context.Context, path string) (*Map, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := filepath.Join(path, SyncDir)

	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("fogmap: sync directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("fogmap: %s: not a directory", dir)
	}

	loaded, err := l.decodeAll(ctx, dir)
	if err != nil {
		return nil, err
	}

	// Later filenames win on colliding tile coordinates; sorting makes
	// that deterministic regardless of directory listing order or
	// worker scheduling.
	sort.Slice(loaded, func(i, j int) bool { return loaded[i].name < loaded[j].name })

	m := &Map{
		path:    path,
		tiles:   make(map[tile.Coord]*tile.Tile, len(loaded)),
		regions: make(map[string]struct{}),
	}
	for _, r := range loaded {
		m.tiles[tile.Coord{X: r.tile.X, Y: r.tile.Y}] = r.tile
		for _, region := range r.tile.Regions() {
			m.regions[region] = struct{}{}
		}
	}

	l.logf("traversed regions: %v", m.Regions())

	return m, nil
}

func (l *Loader) logf(format string, v ...interface{}) {
	if l.logger != nil {
		l.logger.Printf(format, v...)
	}
}
