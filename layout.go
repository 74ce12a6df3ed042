package geotrellis

// DefaultTileSize is used when a request does not set a tile size.
const DefaultTileSize = 256

// Layout describes the tile grid a layer is cut into.
type Layout struct {
	Scheme   LayoutScheme
	TileSize int
	CRS      string
}

type auxLayout struct {
	Scheme   string `yaml:"scheme" toml:"scheme"`
	TileSize int    `yaml:"tile_size" toml:"tile_size"`
	CRS      string `yaml:"crs" toml:"crs"`
}

func newLayout(l auxLayout) (Layout, error) {
	layout := Layout{TileSize: l.TileSize, CRS: l.CRS}
	if layout.TileSize == 0 {
		layout.TileSize = DefaultTileSize
	}
	if l.Scheme != "" {
		s, err := ParseLayoutScheme(l.Scheme)
		if err != nil {
			return Layout{}, err
		}
		layout.Scheme = s
	}
	return layout, nil
}
