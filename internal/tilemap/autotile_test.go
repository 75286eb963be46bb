package tilemap

import "testing"

// parseTestLevel builds a level from a raw map body with '#' walls and
// '.' floor tiles at (5,0).
func parseTestLevel(t *testing.T, body string) *Level {
	t.Helper()
	source := `
[level]
tileset = tileset.png
map = ` + body + `

[#]
wall = true
block = true

[.]
tile = 5,0
`
	level, err := Parse([]byte(source))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	return level
}

// TestBuildRenderPlan_Dimensions checks that the plan covers every
// grid cell.
func TestBuildRenderPlan_Dimensions(t *testing.T) {
	level := parseTestLevel(t, `####
      #..#
      ####`)
	plan := BuildRenderPlan(level)

	if plan.Width != 4 || plan.Height != 3 {
		t.Errorf("Expected 4x3 plan, got %dx%d", plan.Width, plan.Height)
	}
	if len(plan.Ground) != 3 {
		t.Fatalf("Expected 3 ground rows, got %d", len(plan.Ground))
	}
	for y, row := range plan.Ground {
		if len(row) != 4 {
			t.Errorf("Expected ground row %d to have 4 cells, got %d", y, len(row))
		}
	}
}

// TestFaceColumn_AllCombinations verifies that the four east/west
// neighborhoods map to four distinct, fixed columns.
func TestFaceColumn_AllCombinations(t *testing.T) {
	cases := []struct {
		east, west bool
		column     int
	}{
		{true, true, 1},
		{true, false, 0},
		{false, true, 2},
		{false, false, 3},
	}
	seen := make(map[int]bool)
	for _, tc := range cases {
		got := faceColumn(tc.east, tc.west)
		if got != tc.column {
			t.Errorf("Expected column %d for east=%v west=%v, got %d",
				tc.column, tc.east, tc.west, got)
		}
		if seen[got] {
			t.Errorf("Column %d selected by more than one combination", got)
		}
		seen[got] = true
	}
}

// TestBuildRenderPlan_WallTopRow: a horizontal wall run over open
// ground uses the wall-top row with end caps on both sides.
func TestBuildRenderPlan_WallTopRow(t *testing.T) {
	level := parseTestLevel(t, `###
      ...`)
	plan := BuildRenderPlan(level)

	expected := []TileCoord{
		{Col: 0, Row: wallTopRow}, // open to the west only
		{Col: 1, Row: wallTopRow}, // walls on both sides
		{Col: 2, Row: wallTopRow}, // open to the east only
	}
	for x, want := range expected {
		if got := plan.Ground[0][x]; got != want {
			t.Errorf("Expected wall tile %v at (%d,0), got %v", want, x, got)
		}
	}

	// A lone wall cell uses the no-opening variant.
	lone := parseTestLevel(t, `.#.
      ...`)
	lonePlan := BuildRenderPlan(lone)
	if got := lonePlan.Ground[0][1]; got != (TileCoord{Col: 3, Row: wallTopRow}) {
		t.Errorf("Expected lone wall tile (3,%d), got %v", wallTopRow, got)
	}
}

// TestBuildRenderPlan_WallBodyRow: a wall cell with another wall to
// the south reads the east/west neighborhood of the southern row.
func TestBuildRenderPlan_WallBodyRow(t *testing.T) {
	level := parseTestLevel(t, `.#.
      ###
      ...`)
	plan := BuildRenderPlan(level)

	// (1,0) sits on top of the run below, which continues both ways.
	if got := plan.Ground[0][1]; got != (TileCoord{Col: 1, Row: wallBodyRow}) {
		t.Errorf("Expected wall body tile (1,%d), got %v", wallBodyRow, got)
	}
	// The run itself faces open ground to the south.
	if got := plan.Ground[1][1]; got != (TileCoord{Col: 1, Row: wallTopRow}) {
		t.Errorf("Expected wall top tile (1,%d), got %v", wallTopRow, got)
	}
}

// TestBuildRenderPlan_Overlays: caps are emitted exactly for wall
// cells with open ground to the north.
func TestBuildRenderPlan_Overlays(t *testing.T) {
	level := parseTestLevel(t, `...
      ###
      ...`)
	plan := BuildRenderPlan(level)

	if len(plan.Overlays) != 3 {
		t.Fatalf("Expected 3 overlay tiles, got %d", len(plan.Overlays))
	}
	expected := map[Coord]TileCoord{
		{0, 1}: {Col: 0, Row: overlayRow},
		{1, 1}: {Col: 1, Row: overlayRow},
		{2, 1}: {Col: 2, Row: overlayRow},
	}
	for pos, want := range expected {
		got, ok := plan.Overlays[pos]
		if !ok {
			t.Errorf("Expected an overlay at %v", pos)
			continue
		}
		if got != want {
			t.Errorf("Expected overlay %v at %v, got %v", want, pos, got)
		}
	}

	// Stacked walls emit no overlay for the lower cell.
	stacked := parseTestLevel(t, `...
      .#.
      .#.`)
	stackedPlan := BuildRenderPlan(stacked)
	if _, ok := stackedPlan.Overlays[Coord{1, 2}]; ok {
		t.Errorf("Expected no overlay below another wall")
	}
	if _, ok := stackedPlan.Overlays[Coord{1, 1}]; !ok {
		t.Errorf("Expected an overlay on the top wall cell")
	}
}

// TestBuildRenderPlan_GroundTiles: non-wall cells use their symbol's
// tile coordinate, unknown symbols fall back to the default ground
// tile.
func TestBuildRenderPlan_GroundTiles(t *testing.T) {
	level := parseTestLevel(t, `.?
      ..`)
	plan := BuildRenderPlan(level)

	if got := plan.Ground[0][0]; got != (TileCoord{Col: 5, Row: 0}) {
		t.Errorf("Expected floor tile (5,0), got %v", got)
	}
	if got := plan.Ground[0][1]; got != DefaultGroundTile {
		t.Errorf("Expected default ground tile %v, got %v", DefaultGroundTile, got)
	}
}
