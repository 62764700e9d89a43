package parallel

import "sync"

// TilePool reuses Tile scratch buffers across frames via sync.Pool, keyed
// by (width,height) so a CPU backend dispatching one render task per tile
// doesn't allocate a fresh pixel buffer every frame. Safe for concurrent
// use.
type TilePool struct {
	full  sync.Pool // dedicated fast path for full TileWidth x TileHeight tiles
	edges sync.Map  // poolKey(w,h) -> *sync.Pool, for edge-size tiles
}

// NewTilePool creates an empty tile pool.
func NewTilePool() *TilePool {
	p := &TilePool{}
	p.full.New = func() any {
		return &Tile{Width: TileWidth, Height: TileHeight, Data: make([]byte, TileBytes)}
	}
	return p
}

// Get returns a tile of exactly width x height, zeroed and ready for use.
// Returns nil for non-positive dimensions.
func (p *TilePool) Get(width, height int) *Tile {
	if width <= 0 || height <= 0 {
		return nil
	}
	if width == TileWidth && height == TileHeight {
		t := p.full.Get().(*Tile)
		t.Reset()
		t.X, t.Y = 0, 0
		return t
	}

	key := poolKey(width, height)
	sp := p.edgePool(key, width, height)
	t := sp.Get().(*Tile)
	t.Reset()
	t.X, t.Y, t.Width, t.Height = 0, 0, width, height
	return t
}

// Put returns a tile to the pool, clearing its data. A nil tile is a no-op.
func (p *TilePool) Put(t *Tile) {
	if t == nil {
		return
	}
	t.Reset()
	if t.Width == TileWidth && t.Height == TileHeight {
		p.full.Put(t)
		return
	}
	if sp, ok := p.edges.Load(poolKey(t.Width, t.Height)); ok {
		sp.(*sync.Pool).Put(t)
	}
}

func poolKey(width, height int) uint32 {
	w, h := width, height
	if w > 0xFFFF {
		w = 0xFFFF
	}
	if h > 0xFFFF {
		h = 0xFFFF
	}
	return uint32(w)<<16 | uint32(h) //nolint:gosec // clamped above
}

func (p *TilePool) edgePool(key uint32, width, height int) *sync.Pool {
	if sp, ok := p.edges.Load(key); ok {
		return sp.(*sync.Pool)
	}
	sp := &sync.Pool{New: func() any {
		return &Tile{Width: width, Height: height, Data: make([]byte, width*height*4)}
	}}
	actual, _ := p.edges.LoadOrStore(key, sp)
	return actual.(*sync.Pool)
}

// defaultPool backs the package-level GetTile/PutTile convenience
// functions, for call sites that don't own a dedicated pool.
var defaultPool = NewTilePool()

// GetTile gets a tile from the default pool.
func GetTile(width, height int) *Tile { return defaultPool.Get(width, height) }

// PutTile returns a tile to the default pool.
func PutTile(t *Tile) { defaultPool.Put(t) }
