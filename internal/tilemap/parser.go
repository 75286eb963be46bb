package tilemap

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/ini.v1"
)

// ErrMalformedLevel is wrapped by every content error the parser
// reports. Content errors are fatal at load time; nothing downstream
// can recover a broken grid.
var ErrMalformedLevel = errors.New("malformed level")

// Parse parses level source text into a Level.
//
// Required entries are level.tileset and level.map; the map body must
// be rectangular with at least one row and one column. Every section
// whose name is a single character defines the attributes of that map
// symbol. At most one placed item may carry player=true.
func Parse(source []byte) (*Level, error) {
	// Map rows routinely start with the wall symbol '#', so inline
	// comment stripping must stay off.
	cfg, err := ini.LoadSources(ini.LoadOptions{
		AllowPythonMultilineValues: true,
		IgnoreInlineComment:        true,
	}, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedLevel, err)
	}

	section := cfg.Section("level")
	tileset := section.Key("tileset").String()
	if tileset == "" {
		return nil, fmt.Errorf("%w: missing level.tileset", ErrMalformedLevel)
	}
	body := section.Key("map").String()
	if body == "" {
		return nil, fmt.Errorf("%w: missing level.map", ErrMalformedLevel)
	}

	// Continuation lines keep their indentation depending on the INI
	// loader; map symbols never include whitespace, so each row is
	// trimmed and blank rows are dropped before validation.
	var rows []string
	for _, row := range strings.Split(body, "\n") {
		row = strings.TrimSpace(row)
		if row != "" {
			rows = append(rows, row)
		}
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: missing level.map", ErrMalformedLevel)
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: map row %d is %d cells wide, expected %d",
				ErrMalformedLevel, y, len(row), width)
		}
	}

	level := &Level{
		Tileset: tileset,
		Width:   width,
		Height:  len(rows),
		Items:   make(map[Coord]TileAttributes),
		rows:    rows,
		key:     make(map[byte]TileAttributes),
	}

	// Every single-character section is a symbol attribute table.
	for _, sec := range cfg.Sections() {
		name := sec.Name()
		if len(name) != 1 {
			continue
		}
		level.key[name[0]] = parseAttributes(sec)
	}

	// Item placements: non-wall cells whose symbol places a sprite.
	// ItemOrder records the row-major scan order, so zone registration
	// stays deterministic.
	for y := 0; y < level.Height; y++ {
		for x := 0; x < level.Width; x++ {
			attrs := level.Attributes(x, y)
			if attrs.Wall || attrs.Sprite == "" {
				continue
			}
			pos := Coord{x, y}
			level.Items[pos] = attrs
			level.ItemOrder = append(level.ItemOrder, pos)
			if attrs.IsPlayer {
				if level.HasPlayer {
					return nil, fmt.Errorf("%w: multiple player spawn markers (at %v and %v)",
						ErrMalformedLevel, level.PlayerSpawn, pos)
				}
				level.PlayerSpawn = pos
				level.HasPlayer = true
			}
		}
	}

	return level, nil
}

// ParseFile reads and parses the level file at path.
func ParseFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level file '%s': %w", path, err)
	}
	level, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level file '%s': %w", path, err)
	}
	return level, nil
}

// parseAttributes builds the tagged attribute record of one symbol
// section. Keys are parsed leniently: unknown keys are ignored,
// malformed tile coordinates fall back to the renderer default.
func parseAttributes(sec *ini.Section) TileAttributes {
	attrs := TileAttributes{
		Wall:     coerceBool(sec.Key("wall").String()),
		Block:    coerceBool(sec.Key("block").String()),
		Sprite:   sec.Key("sprite").String(),
		Name:     sec.Key("name").String(),
		IsPlayer: coerceBool(sec.Key("player").String()),
	}
	if tc, ok := parseTileCoord(sec.Key("tile").String()); ok {
		attrs.Tile = &tc
	}
	return attrs
}

// parseTileCoord parses a "col,row" tileset coordinate.
func parseTileCoord(value string) (TileCoord, bool) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return TileCoord{}, false
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return TileCoord{}, false
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return TileCoord{}, false
	}
	return TileCoord{Col: col, Row: row}, true
}

// coerceBool maps the accepted boolean literals to true. Anything
// else, including the empty string, is false.
func coerceBool(value string) bool {
	switch value {
	case "true", "True", "1", "yes", "Yes", "on", "On":
		return true
	}
	return false
}
