package parallel

// TileGrid partitions a canvas into TileWidth x TileHeight tiles, row-major
// in a flat slice (index = ty*tilesX + tx). Edge tiles along the right and
// bottom borders are narrower/shorter when the canvas doesn't divide evenly.
//
// TileGrid is not safe for concurrent use; callers synchronize externally
// (the CPU backend's WorkerPool dispatches one task per tile and each task
// only touches its own tile).
type TileGrid struct {
	tiles  []*Tile
	tilesX int
	tilesY int
	width  int
	height int
	pool   *TilePool
}

// NewTileGrid creates a grid covering a width x height canvas. Non-positive
// dimensions produce an empty grid (TileCount() == 0).
func NewTileGrid(width, height int) *TileGrid {
	g := &TileGrid{pool: NewTilePool()}
	if width <= 0 || height <= 0 {
		return g
	}

	g.width = width
	g.height = height
	g.tilesX = (width + TileWidth - 1) / TileWidth
	g.tilesY = (height + TileHeight - 1) / TileHeight
	g.tiles = make([]*Tile, g.tilesX*g.tilesY)
	g.allocate()
	return g
}

func (g *TileGrid) allocate() {
	for ty := 0; ty < g.tilesY; ty++ {
		for tx := 0; tx < g.tilesX; tx++ {
			w := TileWidth
			h := TileHeight
			if (tx+1)*TileWidth > g.width {
				w = g.width - tx*TileWidth
			}
			if (ty+1)*TileHeight > g.height {
				h = g.height - ty*TileHeight
			}
			t := g.pool.Get(w, h)
			t.X, t.Y = tx, ty
			g.tiles[ty*g.tilesX+tx] = t
		}
	}
}

// TileCount returns the total number of tiles in the grid.
func (g *TileGrid) TileCount() int { return len(g.tiles) }

// ForEach visits every tile in row-major order.
func (g *TileGrid) ForEach(fn func(tile *Tile)) {
	for _, t := range g.tiles {
		if t != nil {
			fn(t)
		}
	}
}

// Close returns every tile to the grid's pool.
func (g *TileGrid) Close() {
	for i, t := range g.tiles {
		if t != nil {
			g.pool.Put(t)
			g.tiles[i] = nil
		}
	}
}
