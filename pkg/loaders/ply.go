package loaders

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/kjbrandt/raydiant/pkg/core"
	"github.com/kjbrandt/raydiant/pkg/shape"
)

// plyProperty is a single "property <type> <name>" or
// "property list <countType> <dataType> <name>" header line.
type plyProperty struct {
	name               string
	typ                string
	isList             bool
	listType, dataType string
}

// plyHeader is the parsed ASCII header shared by both ASCII and
// binary PLY bodies, grounded on the teacher's PLYHeader.
type plyHeader struct {
	format      string // "ascii", "binary_little_endian", "binary_big_endian"
	vertexCount int
	faceCount   int
	vertexProps []plyProperty
	faceProps   []plyProperty
}

// ParsePLY reads a PLY file (ASCII or binary_little_endian), a format
// SPEC_FULL.md supplements beyond spec.md §6's OBJ/STL pair. Only
// triangular faces are supported; only vertex position (x,y,z) is
// extracted, other per-vertex properties are read and discarded.
func ParsePLY(path string) (*shape.IndexedMesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open ply %s: %w", path, err)
	}
	defer f.Close()

	header, bodyOffset, err := parsePLYHeader(f)
	if err != nil {
		return nil, fmt.Errorf("loaders: ply header %s: %w", path, err)
	}
	if _, err := f.Seek(int64(bodyOffset), io.SeekStart); err != nil {
		return nil, fmt.Errorf("loaders: seek ply body %s: %w", path, err)
	}

	switch header.format {
	case "ascii":
		return parsePLYASCIIBody(f, header)
	case "binary_little_endian":
		return parsePLYBinaryBody(f, header)
	default:
		return nil, fmt.Errorf("loaders: unsupported ply format %q", header.format)
	}
}

func parsePLYHeader(r io.Reader) (*plyHeader, int, error) {
	header := &plyHeader{}
	scanner := bufio.NewScanner(r)

	bytesRead := 0
	var current string
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		bytesRead += len(scanner.Bytes()) + 1
		if line == "end_header" {
			break
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "format":
			if len(fields) >= 2 {
				header.format = fields[1]
			}
		case "element":
			if len(fields) >= 3 {
				count, err := strconv.Atoi(fields[2])
				if err != nil {
					return nil, 0, fmt.Errorf("bad element count: %s", fields[2])
				}
				current = fields[1]
				switch current {
				case "vertex":
					header.vertexCount = count
				case "face":
					header.faceCount = count
				}
			}
		case "property":
			prop, err := parsePLYProperty(fields[1:])
			if err != nil {
				return nil, 0, err
			}
			switch current {
			case "vertex":
				header.vertexProps = append(header.vertexProps, prop)
			case "face":
				header.faceProps = append(header.faceProps, prop)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, 0, err
	}
	return header, bytesRead, nil
}

func parsePLYProperty(fields []string) (plyProperty, error) {
	if len(fields) < 2 {
		return plyProperty{}, fmt.Errorf("malformed property line")
	}
	if fields[0] == "list" {
		if len(fields) < 4 {
			return plyProperty{}, fmt.Errorf("malformed list property line")
		}
		return plyProperty{isList: true, listType: fields[1], dataType: fields[2], name: fields[3]}, nil
	}
	return plyProperty{typ: fields[0], name: fields[1]}, nil
}

func plyTypeSize(t string) int {
	switch t {
	case "float", "float32", "int", "int32", "uint", "uint32":
		return 4
	case "double", "float64":
		return 8
	case "short", "int16", "ushort", "uint16":
		return 2
	case "char", "int8", "uchar", "uint8":
		return 1
	default:
		return 4
	}
}

func parsePLYASCIIBody(r io.Reader, header *plyHeader) (*shape.IndexedMesh, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	vertices := make([]core.Vec3, 0, header.vertexCount)
	xIdx, yIdx, zIdx := plyPositionIndices(header.vertexProps)

	for i := 0; i < header.vertexCount && scanner.Scan(); i++ {
		fields := strings.Fields(scanner.Text())
		if xIdx < 0 || yIdx < 0 || zIdx < 0 || len(fields) <= zIdx {
			continue
		}
		x, _ := strconv.ParseFloat(fields[xIdx], 64)
		y, _ := strconv.ParseFloat(fields[yIdx], 64)
		z, _ := strconv.ParseFloat(fields[zIdx], 64)
		vertices = append(vertices, core.NewVec3(x, y, z))
	}

	var faces []shape.Face
	for i := 0; i < header.faceCount && scanner.Scan(); i++ {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			continue
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || n != 3 || len(fields) < 1+n {
			continue
		}
		idx := [3]int{}
		ok := true
		for k := 0; k < 3; k++ {
			v, err := strconv.Atoi(fields[1+k])
			if err != nil {
				ok = false
				break
			}
			idx[k] = v
		}
		if ok {
			faces = append(faces, shape.Face{VertexIdx: idx, NormalIdx: [3]int{-1, -1, -1}, TexIdx: [3]int{-1, -1, -1}})
		}
	}

	return shape.NewIndexedMesh(vertices, nil, nil, faces)
}

func parsePLYBinaryBody(r io.Reader, header *plyHeader) (*shape.IndexedMesh, error) {
	vertexSize := 0
	for _, p := range header.vertexProps {
		if !p.isList {
			vertexSize += plyTypeSize(p.typ)
		}
	}
	xIdx, yIdx, zIdx := plyPositionIndices(header.vertexProps)

	vertices := make([]core.Vec3, 0, header.vertexCount)
	buf := make([]byte, vertexSize)
	for i := 0; i < header.vertexCount; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("read vertex %d: %w", i, err)
		}
		x := plyFieldAt(buf, header.vertexProps, xIdx)
		y := plyFieldAt(buf, header.vertexProps, yIdx)
		z := plyFieldAt(buf, header.vertexProps, zIdx)
		vertices = append(vertices, core.NewVec3(x, y, z))
	}

	bufReader := bufio.NewReaderSize(r, 1<<20)
	var faces []shape.Face
	for i := 0; i < header.faceCount; i++ {
		for _, prop := range header.faceProps {
			if prop.isList && prop.name == "vertex_indices" {
				count, err := plyReadListCount(bufReader, prop.listType)
				if err != nil {
					return nil, fmt.Errorf("face %d count: %w", i, err)
				}
				if count != 3 {
					return nil, fmt.Errorf("loaders: only triangular ply faces supported, got %d at face %d", count, i)
				}
				var idx [3]int
				for k := 0; k < 3; k++ {
					v, err := plyReadIndex(bufReader, prop.dataType)
					if err != nil {
						return nil, fmt.Errorf("face %d index %d: %w", i, k, err)
					}
					idx[k] = v
				}
				faces = append(faces, shape.Face{VertexIdx: idx, NormalIdx: [3]int{-1, -1, -1}, TexIdx: [3]int{-1, -1, -1}})
			} else if err := plySkipProperty(bufReader, prop); err != nil {
				return nil, fmt.Errorf("face %d skip %s: %w", i, prop.name, err)
			}
		}
	}

	return shape.NewIndexedMesh(vertices, nil, nil, faces)
}

func plyPositionIndices(props []plyProperty) (x, y, z int) {
	x, y, z = -1, -1, -1
	for i, p := range props {
		switch p.name {
		case "x":
			x = i
		case "y":
			y = i
		case "z":
			z = i
		}
	}
	return
}

func plyFieldAt(data []byte, props []plyProperty, idx int) float64 {
	if idx < 0 {
		return 0
	}
	offset := 0
	for i := 0; i < idx; i++ {
		offset += plyTypeSize(props[i].typ)
	}
	return plyReadFloatField(data[offset:], props[idx].typ)
}

func plyReadFloatField(data []byte, typ string) float64 {
	switch typ {
	case "float", "float32":
		return float64(math.Float32frombits(binary.LittleEndian.Uint32(data)))
	case "double", "float64":
		return math.Float64frombits(binary.LittleEndian.Uint64(data))
	default:
		return 0
	}
}

func plyReadListCount(r *bufio.Reader, listType string) (int, error) {
	switch listType {
	case "uchar", "uint8":
		b, err := r.ReadByte()
		return int(b), err
	case "int", "int32":
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		return int(int32(binary.LittleEndian.Uint32(buf[:]))), nil
	default:
		return 0, fmt.Errorf("unsupported list count type: %s", listType)
	}
}

func plyReadIndex(r *bufio.Reader, dataType string) (int, error) {
	switch dataType {
	case "int", "int32":
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		return int(int32(binary.LittleEndian.Uint32(buf[:]))), nil
	case "uint", "uint32":
		var buf [4]byte
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			return 0, err
		}
		return int(binary.LittleEndian.Uint32(buf[:])), nil
	default:
		return 0, fmt.Errorf("unsupported face index type: %s", dataType)
	}
}

func plySkipProperty(r *bufio.Reader, prop plyProperty) error {
	if !prop.isList {
		_, err := io.CopyN(io.Discard, r, int64(plyTypeSize(prop.typ)))
		return err
	}
	count, err := plyReadListCount(r, prop.listType)
	if err != nil {
		return err
	}
	_, err = io.CopyN(io.Discard, r, int64(count*plyTypeSize(prop.dataType)))
	return err
}

