package world

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// SpawnMarker marks the empty tile the camera starts on.
const SpawnMarker = '+'

// MapLoader reads text maps: one row per line, digits are materials, '.' is
// empty and '+' is an empty spawn tile. Blank lines and '#' comments are
// skipped.
type MapLoader struct {
	log *zap.Logger
}

// MapData is a loaded map plus its optional spawn point.
type MapData struct {
	Grid     *Grid
	Spawn    Point
	HasSpawn bool
}

// NewMapLoader creates a map loader. A nil logger discards output.
func NewMapLoader(log *zap.Logger) *MapLoader {
	if log == nil {
		log = zap.NewNop()
	}
	return &MapLoader{log: log}
}

// LoadMap loads a map from the specified file path.
func (ml *MapLoader) LoadMap(mapPath string) (*MapData, error) {
	file, err := os.Open(mapPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file %s: %w", mapPath, err)
	}
	defer file.Close()

	data, err := ml.ReadMap(file)
	if err != nil {
		return nil, fmt.Errorf("map file %s: %w", mapPath, err)
	}
	ml.log.Info("map loaded",
		zap.String("path", mapPath),
		zap.Int("width", data.Grid.Width()),
		zap.Int("height", data.Grid.Height()),
		zap.Bool("spawn", data.HasSpawn),
	)
	return data, nil
}

// ReadMap parses map text from r.
func (ml *MapLoader) ReadMap(r io.Reader) (*MapData, error) {
	var rows [][]Material
	data := &MapData{}
	scanner := bufio.NewScanner(r)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), " \t\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		row := make([]Material, 0, len(line))
		for x, char := range line {
			switch {
			case char >= '0' && char <= '9':
				row = append(row, Material(char-'0'))
			case char == '.':
				row = append(row, Empty)
			case char == SpawnMarker:
				data.Spawn = Center(x, len(rows))
				data.HasSpawn = true
				row = append(row, Empty)
			default:
				return nil, fmt.Errorf("line %d: unexpected map character %q", lineNo, char)
			}
		}

		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d has inconsistent width: expected %d, got %d: %w", lineNo, len(rows[0]), len(row), ErrRaggedRow)
		}
		ml.log.Debug("map row", zap.Int("line", lineNo), zap.String("cells", line))
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading map: %w", err)
	}

	grid, err := NewGrid(rows)
	if err != nil {
		return nil, err
	}
	data.Grid = grid
	return data, nil
}

// Open returns the grid and start point for mapFile. An empty mapFile selects
// DefaultGrid. The map's spawn tile, when it has one, overrides fallback.
func (ml *MapLoader) Open(mapFile string, fallback Point) (*Grid, Point, error) {
	if mapFile == "" {
		ml.log.Info("using built-in map")
		return DefaultGrid(), fallback, nil
	}
	data, err := ml.LoadMap(mapFile)
	if err != nil {
		return nil, Point{}, err
	}
	if data.HasSpawn {
		return data.Grid, data.Spawn, nil
	}
	return data.Grid, fallback, nil
}
