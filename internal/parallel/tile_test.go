package parallel

import "testing"

func TestTileSizeConstants(t *testing.T) {
	if TileWidth != 64 || TileHeight != 64 {
		t.Fatalf("TileWidth/TileHeight = %d/%d, want 64/64", TileWidth, TileHeight)
	}
	if TilePixels != TileWidth*TileHeight {
		t.Errorf("TilePixels = %d, want %d", TilePixels, TileWidth*TileHeight)
	}
	if TileBytes != TilePixels*4 {
		t.Errorf("TileBytes = %d, want %d", TileBytes, TilePixels*4)
	}
}

func TestTileReset(t *testing.T) {
	tile := &Tile{Width: 4, Height: 4, Data: make([]byte, 64)}
	for i := range tile.Data {
		tile.Data[i] = 0xFF
	}
	tile.Reset()
	for i, b := range tile.Data {
		if b != 0 {
			t.Fatalf("Data[%d] = %d after Reset, want 0", i, b)
		}
	}
}

func TestTilePixelOffset(t *testing.T) {
	tile := &Tile{Width: 4, Height: 4, Data: make([]byte, 64)}
	tests := []struct {
		px, py int
		want   int
	}{
		{0, 0, 0},
		{1, 0, 4},
		{0, 1, 16},
		{3, 3, 60},
		{-1, 0, -1},
		{4, 0, -1},
		{0, 4, -1},
	}
	for _, tt := range tests {
		if got := tile.PixelOffset(tt.px, tt.py); got != tt.want {
			t.Errorf("PixelOffset(%d,%d) = %d, want %d", tt.px, tt.py, got, tt.want)
		}
	}
}

func TestTileStride(t *testing.T) {
	tile := &Tile{Width: 17, Height: 1}
	if got := tile.Stride(); got != 68 {
		t.Errorf("Stride() = %d, want 68", got)
	}
}

func TestNewTileGridCoversWholeCanvas(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantCount     int
	}{
		{"exact multiple", 128, 128, 4},
		{"sub-tile canvas", 10, 10, 1},
		{"wide remainder", 130, 64, 3 * 1},
		{"tall remainder", 64, 130, 1 * 3},
		{"empty", 0, 0, 0},
		{"negative", -5, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := NewTileGrid(tt.width, tt.height)
			defer grid.Close()
			if got := grid.TileCount(); got != tt.wantCount {
				t.Errorf("TileCount() = %d, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestNewTileGridEdgeTilesAreClipped(t *testing.T) {
	grid := NewTileGrid(100, 70)
	defer grid.Close()

	var widths []int
	grid.ForEach(func(tile *Tile) {
		widths = append(widths, tile.Width)
	})

	if len(widths) != 4 {
		t.Fatalf("expected 4 tiles (2 across x 2 down) on a 100x70 canvas, got %d", len(widths))
	}
	// One full 64px column, one 36px remainder column.
	sawFullWidth, sawEdgeWidth := false, false
	for _, w := range widths {
		switch w {
		case 64:
			sawFullWidth = true
		case 36:
			sawEdgeWidth = true
		}
	}
	if !sawFullWidth || !sawEdgeWidth {
		t.Errorf("tile widths = %v, want both a 64px and a 36px tile", widths)
	}
}

func TestTileGridForEachVisitsEveryTileOnce(t *testing.T) {
	grid := NewTileGrid(200, 150)
	defer grid.Close()

	seen := make(map[[2]int]bool)
	grid.ForEach(func(tile *Tile) {
		key := [2]int{tile.X, tile.Y}
		if seen[key] {
			t.Fatalf("tile (%d,%d) visited more than once", tile.X, tile.Y)
		}
		seen[key] = true
	})
	if len(seen) != grid.TileCount() {
		t.Errorf("ForEach visited %d tiles, want %d", len(seen), grid.TileCount())
	}
}

func TestTileGridCloseReturnsTilesToPool(t *testing.T) {
	grid := NewTileGrid(128, 128)
	count := grid.TileCount()
	grid.Close()
	if grid.TileCount() != count {
		t.Errorf("TileCount() after Close = %d, want unchanged %d", grid.TileCount(), count)
	}
	visited := 0
	grid.ForEach(func(*Tile) { visited++ })
	if visited != 0 {
		t.Errorf("ForEach after Close visited %d tiles, want 0 (all nil)", visited)
	}
}

func TestTilePoolGetReturnsZeroedRightSizedTile(t *testing.T) {
	pool := NewTilePool()
	tile := pool.Get(TileWidth, TileHeight)
	if tile.Width != TileWidth || tile.Height != TileHeight {
		t.Fatalf("Get(%d,%d) = %dx%d", TileWidth, TileHeight, tile.Width, tile.Height)
	}
	if len(tile.Data) != TileBytes {
		t.Errorf("len(Data) = %d, want %d", len(tile.Data), TileBytes)
	}
	for i := range tile.Data {
		tile.Data[i] = 1
	}
	pool.Put(tile)

	reused := pool.Get(TileWidth, TileHeight)
	for i, b := range reused.Data {
		if b != 0 {
			t.Fatalf("Data[%d] = %d on reused tile, want 0 (Put must Reset)", i, b)
		}
	}
}

func TestTilePoolGetEdgeSize(t *testing.T) {
	pool := NewTilePool()
	tile := pool.Get(10, 20)
	if tile.Width != 10 || tile.Height != 20 || len(tile.Data) != 10*20*4 {
		t.Errorf("Get(10,20) = %+v, want 10x20 tile", tile)
	}
}

func TestTilePoolGetNonPositiveDimensions(t *testing.T) {
	pool := NewTilePool()
	if got := pool.Get(0, 5); got != nil {
		t.Errorf("Get(0,5) = %v, want nil", got)
	}
	if got := pool.Get(5, -1); got != nil {
		t.Errorf("Get(5,-1) = %v, want nil", got)
	}
}

func TestTilePoolPutNilIsNoop(t *testing.T) {
	pool := NewTilePool()
	pool.Put(nil) // must not panic
}

func TestGetTilePutTileDefaultPool(t *testing.T) {
	tile := GetTile(TileWidth, TileHeight)
	if tile == nil {
		t.Fatal("GetTile returned nil")
	}
	PutTile(tile)
}
