package export

import (
	"bytes"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"math"
	"os"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/brepfeat/aag/pkg/mesh"
)

// glTF-binary (.glb) is a minimal container format: a 12-byte header
// followed by a JSON chunk and a binary chunk. This writer covers
// exactly the one mesh / one primitive / POSITION+NORMAL+indices shape
// the viewer consumes and nothing more.

const (
	glbMagic       = 0x46546C67
	glbVersion     = 2
	chunkTypeJSON  = 0x4E4F534A
	chunkTypeBIN   = 0x004E4942
	componentFloat = 5126
	componentUint  = 5125
)

type gltfAsset struct {
	Version string `json:"version"`
}

type gltfBuffer struct {
	ByteLength int `json:"byteLength"`
}

type gltfBufferView struct {
	Buffer     int `json:"buffer"`
	ByteOffset int `json:"byteOffset"`
	ByteLength int `json:"byteLength"`
	Target     int `json:"target,omitempty"`
}

type gltfAccessor struct {
	BufferView    int       `json:"bufferView"`
	ComponentType int       `json:"componentType"`
	Count         int       `json:"count"`
	Type          string    `json:"type"`
	Max           []float64 `json:"max,omitempty"`
	Min           []float64 `json:"min,omitempty"`
}

type gltfPrimitive struct {
	Attributes map[string]int `json:"attributes"`
	Indices    int            `json:"indices"`
	Mode       int            `json:"mode"`
}

type gltfMesh struct {
	Primitives []gltfPrimitive `json:"primitives"`
}

type gltfNode struct {
	Mesh int `json:"mesh"`
}

type gltfScene struct {
	Nodes []int `json:"nodes"`
}

type gltfDocument struct {
	Asset       gltfAsset        `json:"asset"`
	Buffers     []gltfBuffer     `json:"buffers"`
	BufferViews []gltfBufferView `json:"bufferViews"`
	Accessors   []gltfAccessor   `json:"accessors"`
	Meshes      []gltfMesh       `json:"meshes"`
	Nodes       []gltfNode       `json:"nodes"`
	Scene       int              `json:"scene"`
	Scenes      []gltfScene      `json:"scenes"`
}

// WriteGLTF writes m to path as a single-mesh, single-primitive
// glTF-binary (.glb) container with POSITION and NORMAL attributes and
// unsigned-int indices. Vertex ordering follows m exactly, so output is
// deterministic given the same mesh.
func WriteGLTF(m *mesh.Mesh, path string) error {
	posBytes := encodeVec3(m.Positions)
	normBytes := encodeVec3(m.Normals)
	idxBytes := encodeUint32(m.Indices)

	var bin bytes.Buffer
	bin.Write(posBytes)
	bin.Write(normBytes)
	bin.Write(idxBytes)

	posMin, posMax := vec3Bounds(m.Positions)

	doc := gltfDocument{
		Asset:   gltfAsset{Version: "2.0"},
		Buffers: []gltfBuffer{{ByteLength: bin.Len()}},
		BufferViews: []gltfBufferView{
			{Buffer: 0, ByteOffset: 0, ByteLength: len(posBytes), Target: 34962},
			{Buffer: 0, ByteOffset: len(posBytes), ByteLength: len(normBytes), Target: 34962},
			{Buffer: 0, ByteOffset: len(posBytes) + len(normBytes), ByteLength: len(idxBytes), Target: 34963},
		},
		Accessors: []gltfAccessor{
			{BufferView: 0, ComponentType: componentFloat, Count: len(m.Positions), Type: "VEC3", Min: posMin, Max: posMax},
			{BufferView: 1, ComponentType: componentFloat, Count: len(m.Normals), Type: "VEC3"},
			{BufferView: 2, ComponentType: componentUint, Count: len(m.Indices), Type: "SCALAR"},
		},
		Meshes: []gltfMesh{{
			Primitives: []gltfPrimitive{{
				Attributes: map[string]int{"POSITION": 0, "NORMAL": 1},
				Indices:    2,
				Mode:       4, // TRIANGLES
			}},
		}},
		Nodes:  []gltfNode{{Mesh: 0}},
		Scene:  0,
		Scenes: []gltfScene{{Nodes: []int{0}}},
	}

	jsonBytes, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("export: marshaling glTF JSON chunk: %w", err)
	}
	jsonBytes = padTo4(jsonBytes, ' ')
	binBytes := padTo4(bin.Bytes(), 0)

	var out bytes.Buffer
	totalLen := uint32(12 + 8 + len(jsonBytes) + 8 + len(binBytes))
	binary.Write(&out, binary.LittleEndian, uint32(glbMagic))
	binary.Write(&out, binary.LittleEndian, uint32(glbVersion))
	binary.Write(&out, binary.LittleEndian, totalLen)

	binary.Write(&out, binary.LittleEndian, uint32(len(jsonBytes)))
	binary.Write(&out, binary.LittleEndian, uint32(chunkTypeJSON))
	out.Write(jsonBytes)

	binary.Write(&out, binary.LittleEndian, uint32(len(binBytes)))
	binary.Write(&out, binary.LittleEndian, uint32(chunkTypeBIN))
	out.Write(binBytes)

	return os.WriteFile(path, out.Bytes(), 0644)
}

func padTo4(b []byte, fill byte) []byte {
	for len(b)%4 != 0 {
		b = append(b, fill)
	}
	return b
}

func encodeVec3(vs []v3.Vec) []byte {
	buf := make([]byte, 0, 12*len(vs))
	for _, v := range vs {
		buf = appendFloat32(buf, float32(v.X))
		buf = appendFloat32(buf, float32(v.Y))
		buf = appendFloat32(buf, float32(v.Z))
	}
	return buf
}

func appendFloat32(buf []byte, f float32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], math.Float32bits(f))
	return append(buf, tmp[:]...)
}

func encodeUint32(idx []uint32) []byte {
	buf := make([]byte, 4*len(idx))
	for i, v := range idx {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	return buf
}

func vec3Bounds(vs []v3.Vec) ([]float64, []float64) {
	if len(vs) == 0 {
		return nil, nil
	}
	min := []float64{vs[0].X, vs[0].Y, vs[0].Z}
	max := []float64{vs[0].X, vs[0].Y, vs[0].Z}
	for _, v := range vs[1:] {
		if v.X < min[0] {
			min[0] = v.X
		}
		if v.Y < min[1] {
			min[1] = v.Y
		}
		if v.Z < min[2] {
			min[2] = v.Z
		}
		if v.X > max[0] {
			max[0] = v.X
		}
		if v.Y > max[1] {
			max[1] = v.Y
		}
		if v.Z > max[2] {
			max[2] = v.Z
		}
	}
	return min, max
}
