package scene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/df07/go-prism-raycaster/pkg/core"
)

// ErrUnknownScene is returned when a name matches neither a built-in scene nor a scene file
var ErrUnknownScene = errors.New("unknown scene")

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier, accepted by Resolve
	Name        string `json:"name"`        // Display name
	Description string `json:"description"` // Optional description
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to the scene file (file type only)
}

type builtinScene struct {
	info  SceneInfo
	build func() (*Scene, error)
}

var builtinScenes = []builtinScene{
	{
		info: SceneInfo{
			ID:          "default",
			Name:        "Default Scene",
			Description: "Four spheres on a checkered ground plane",
			Type:        "builtin",
		},
		build: NewDefaultScene,
	},
	{
		info: SceneInfo{
			ID:          "triangles",
			Name:        "Triangle Pyramid",
			Description: "Square pyramid of triangles on a ground quad",
			Type:        "builtin",
		},
		build: NewTriangleScene,
	},
}

// ListBuiltinScenes returns the scenes compiled into the binary
func ListBuiltinScenes() []SceneInfo {
	scenes := make([]SceneInfo, len(builtinScenes))
	for i, b := range builtinScenes {
		scenes[i] = b.info
	}
	return scenes
}

// ListSceneFiles scans dir for .toml and .json scene files.
// Files that fail to parse are reported to logger and skipped. A missing directory yields no scenes.
func ListSceneFiles(dir string, logger core.Logger) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return []SceneInfo{}, nil
		}
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	var files []string
	for _, pattern := range []string{"*.toml", "*.json"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
		}
		files = append(files, matches...)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		cfg, err := LoadConfig(filePath)
		if err != nil {
			if logger != nil {
				logger.Printf("Warning: failed to read scene %s: %v\n", filePath, err)
			}
			continue
		}

		id := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))
		name := cfg.Name
		if name == id {
			name = titleCase(id)
		}
		scenes = append(scenes, SceneInfo{
			ID:          id,
			Name:        name,
			Description: cfg.Description,
			Type:        "file",
			FilePath:    filePath,
		})
	}

	// Sort scenes by display name
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ListAllScenes returns the built-in scenes followed by the scene files in dir
func ListAllScenes(dir string, logger core.Logger) ([]SceneInfo, error) {
	files, err := ListSceneFiles(dir, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to list scene files: %w", err)
	}
	return append(ListBuiltinScenes(), files...), nil
}

// Resolve builds a scene from a built-in name, a scene file path, or the ID of a file in dir
func Resolve(name, dir string) (*Scene, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty scene name", ErrUnknownScene)
	}

	for _, b := range builtinScenes {
		if b.info.ID == name {
			return b.build()
		}
	}

	path, err := LocateFile(name, dir)
	if err != nil {
		return nil, err
	}
	return LoadFile(path)
}

// LocateFile maps a scene name to a file path: names with a scene extension are used as-is,
// otherwise dir is searched for name.toml then name.json
func LocateFile(name, dir string) (string, error) {
	if _, err := formatFromPath(name); err == nil {
		return name, nil
	}

	for _, ext := range []string{".toml", ".json"} {
		candidate := filepath.Join(dir, name+ext)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrUnknownScene, name)
}

// titleCase converts a filename-style string to title case
// e.g., "two-spheres" -> "Two Spheres"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
