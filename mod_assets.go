package spincube

import (
	"fmt"

	"github.com/google/uuid"
)

type AssetId string

type ShadingModel uint32

const (
	// ShadingStandard reacts to lights.
	ShadingStandard ShadingModel = iota
	// ShadingUnlit ignores lights.
	ShadingUnlit
)

// GeometryAsset is an immutable tessellated mesh.
type GeometryAsset struct {
	Width, Height, Depth float32
	Vertices             []meshVertex
	Indices              []uint16
}

// MaterialAsset is an immutable surface description.
type MaterialAsset struct {
	Shading   ShadingModel
	Color     [3]float32
	Roughness float32
	Metalness float32
}

type AssetServer struct {
	geometries map[AssetId]GeometryAsset
	materials  map[AssetId]MaterialAsset
}

type AssetServerModule struct{}

func (AssetServerModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(NewAssetServer())
}

func NewAssetServer() *AssetServer {
	return &AssetServer{
		geometries: make(map[AssetId]GeometryAsset),
		materials:  make(map[AssetId]MaterialAsset),
	}
}

func (server *AssetServer) CreateBoxGeometry(width, height, depth float32) AssetId {
	id := makeAssetId()
	vertices, indices := buildBox(width, height, depth)
	server.geometries[id] = GeometryAsset{
		Width:    width,
		Height:   height,
		Depth:    depth,
		Vertices: vertices,
		Indices:  indices,
	}
	return id
}

// CreateStandardMaterial uses the defaults of a rough dielectric: roughness 1, metalness 0.
func (server *AssetServer) CreateStandardMaterial(hexColor uint32) AssetId {
	id := makeAssetId()
	server.materials[id] = MaterialAsset{
		Shading:   ShadingStandard,
		Color:     ColorFromHex(hexColor),
		Roughness: 1,
		Metalness: 0,
	}
	return id
}

func (server *AssetServer) Geometry(id AssetId) (GeometryAsset, error) {
	g, ok := server.geometries[id]
	if !ok {
		return GeometryAsset{}, fmt.Errorf("%w: %s", ErrUnknownGeometry, id)
	}
	return g, nil
}

func (server *AssetServer) Material(id AssetId) (MaterialAsset, error) {
	m, ok := server.materials[id]
	if !ok {
		return MaterialAsset{}, fmt.Errorf("%w: %s", ErrUnknownMaterial, id)
	}
	return m, nil
}

func makeAssetId() AssetId {
	return AssetId(uuid.NewString())
}
