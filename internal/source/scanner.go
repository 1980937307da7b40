// Package source reads exported Copilot metrics payloads from local JSON
// files, so every usage command can run without network access.
package source

import (
	"os"
	"path/filepath"
	"sort"
	"time"
)

// DiscoveredFile is a metrics export found during directory scanning.
type DiscoveredFile struct {
	Path    string
	Size    int64
	ModTime time.Time
}

// ScanDir discovers metrics export files (*.json) directly under dir.
// Files are returned oldest first, so later files win when merging by date.
func ScanDir(dir string) ([]DiscoveredFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []DiscoveredFile
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		fi, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, DiscoveredFile{
			Path:    filepath.Join(dir, e.Name()),
			Size:    fi.Size(),
			ModTime: fi.ModTime(),
		})
	}

	sort.Slice(files, func(i, j int) bool {
		if !files[i].ModTime.Equal(files[j].ModTime) {
			return files[i].ModTime.Before(files[j].ModTime)
		}
		return files[i].Path < files[j].Path
	})

	return files, nil
}
