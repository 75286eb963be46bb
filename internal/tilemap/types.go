// Package tilemap provides data structures and parsers for level map files.
// A level file is an INI document: a [level] section naming the tileset
// image and holding the multi-line map body, plus one single-character
// section per map symbol describing that symbol's tile attributes.
package tilemap

// Coord is a cell position on the map grid.
type Coord struct {
	X int
	Y int
}

// Neighbors4 returns the four orthogonally adjacent cells.
func (c Coord) Neighbors4() [4]Coord {
	return [4]Coord{
		{c.X + 1, c.Y},
		{c.X - 1, c.Y},
		{c.X, c.Y + 1},
		{c.X, c.Y - 1},
	}
}

// TileCoord addresses a sub-tile inside a tileset image by column and row.
type TileCoord struct {
	Col int
	Row int
}

// TileAttributes is the parsed attribute record of a single map symbol.
// Unknown symbols and cells outside the map yield the zero record:
// non-wall, non-blocking ground with no sprite.
type TileAttributes struct {
	// Wall marks the cell as part of the wall auto-tiling pass.
	Wall bool

	// Block makes the cell impassable for the player.
	Block bool

	// Tile is the tileset coordinate for non-wall cells. Nil means the
	// "tile" key was absent or malformed; the renderer substitutes the
	// default ground tile.
	Tile *TileCoord

	// Sprite is the image filename of the item standing on this cell,
	// empty if the symbol places no item.
	Sprite string

	// Name is the feature tag of the item, e.g. "bush" or "crate".
	Name string

	// IsPlayer marks the player spawn item.
	IsPlayer bool
}

// Level is a fully parsed level: the symbol grid, the per-symbol
// attribute table and the derived item placements. Immutable after
// parsing; the renderer and the game session only read from it.
type Level struct {
	// Tileset is the tileset image path from the [level] section.
	Tileset string

	// Width and Height are the grid dimensions in cells, both > 0.
	Width  int
	Height int

	// Items maps cell coordinates to the attributes of the item placed
	// there. Populated for every non-wall cell whose symbol carries a
	// sprite attribute.
	Items map[Coord]TileAttributes

	// ItemOrder lists the item coordinates in row-major scan order.
	// Items preserves no order; iterate ItemOrder wherever placement
	// order matters, such as zone registration.
	ItemOrder []Coord

	// PlayerSpawn is the coordinate of the single player=true item.
	PlayerSpawn Coord

	// HasPlayer reports whether any item carried the player marker.
	HasPlayer bool

	rows []string
	key  map[byte]TileAttributes
}

// Symbol returns the map symbol at (x, y) and whether the coordinate
// lies inside the grid.
func (l *Level) Symbol(x, y int) (byte, bool) {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return 0, false
	}
	return l.rows[y][x], true
}

// Attributes returns the attribute record of the cell at (x, y).
// Cells outside the grid and symbols without a section yield the zero
// record.
func (l *Level) Attributes(x, y int) TileAttributes {
	sym, ok := l.Symbol(x, y)
	if !ok {
		return TileAttributes{}
	}
	return l.key[sym]
}

// IsWall reports whether the cell at (x, y) is a wall. Cells outside
// the grid are not walls, so map edges render as open boundaries.
func (l *Level) IsWall(x, y int) bool {
	return l.Attributes(x, y).Wall
}

// IsBlocking reports whether the player may not enter (x, y). Cells
// outside the grid always block.
func (l *Level) IsBlocking(x, y int) bool {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return true
	}
	return l.Attributes(x, y).Block
}
