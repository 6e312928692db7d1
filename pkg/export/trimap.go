package export

import (
	"encoding/binary"
	"os"

	"github.com/brepfeat/aag/pkg/mesh"
)

// WriteTriFaceMap packs m.TriFaceIDs into path as a tight sequence of
// little-endian uint32s, one per triangle, in mesh index order: file
// length in bytes is 4 times the triangle count.
func WriteTriFaceMap(m *mesh.Mesh, path string) error {
	buf := make([]byte, 4*len(m.TriFaceIDs))
	for i, fid := range m.TriFaceIDs {
		binary.LittleEndian.PutUint32(buf[i*4:], fid)
	}
	return os.WriteFile(path, buf, 0644)
}
