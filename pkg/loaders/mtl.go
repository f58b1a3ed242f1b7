package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/kjbrandt/raydiant/pkg/bsdf"
	"github.com/kjbrandt/raydiant/pkg/core"
)

// ParseMTL reads a Wavefront MTL file, recognizing newmtl, Ns, Ni, d,
// Tr, Tf, illum, Ka, Kd, Ks, Ke, map_Ka, map_Kd, map_bump, bump
// (spec.md §6). map_Kd is carried through as MTLMaterial.MapKd for the
// scene builder to load via pkg/texture; the remaining map_*/bump
// directives are recognized but not applied. illum interpretation is
// fixed by bsdf.NewMTL.
func ParseMTL(path string) ([]bsdf.MTLMaterial, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open mtl %s: %w", path, err)
	}
	defer f.Close()

	var mats []bsdf.MTLMaterial
	var cur *bsdf.MTLMaterial

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		key := fields[0]
		rest := fields[1:]

		if key == "newmtl" {
			if cur != nil {
				mats = append(mats, *cur)
			}
			name := ""
			if len(rest) > 0 {
				name = rest[0]
			}
			cur = &bsdf.MTLMaterial{Name: name, Ni: 1.0, D: 1.0}
			continue
		}
		if cur == nil {
			continue
		}

		switch key {
		case "Ka":
			cur.Ka = parseSpectrumFields(rest)
		case "Kd":
			cur.Kd = parseSpectrumFields(rest)
		case "Ks":
			cur.Ks = parseSpectrumFields(rest)
		case "Ke":
			cur.Ke = parseSpectrumFields(rest)
		case "Ns":
			cur.Ns = parseFloatField(rest)
		case "Ni":
			cur.Ni = parseFloatField(rest)
		case "d":
			cur.D = parseFloatField(rest)
		case "Tr":
			cur.D = 1 - parseFloatField(rest)
		case "illum":
			if len(rest) > 0 {
				n, err := strconv.Atoi(rest[0])
				if err == nil {
					cur.Illum = n
				}
			}
		case "map_Kd":
			if len(rest) > 0 {
				cur.MapKd = rest[len(rest)-1]
			}
		case "Tf", "map_Ka", "map_bump", "bump":
			// recognized but not applied: no texture for these channels
		}
	}
	if cur != nil {
		mats = append(mats, *cur)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("loaders: read mtl %s: %w", path, err)
	}
	return mats, nil
}

func parseSpectrumFields(fields []string) core.Spectrum {
	v, ok := parseVec3Fields(fields)
	if !ok {
		return core.SpectrumZero
	}
	return core.NewSpectrumRGB(v.X, v.Y, v.Z)
}

func parseFloatField(fields []string) float64 {
	if len(fields) == 0 {
		return 0
	}
	v, _ := strconv.ParseFloat(fields[0], 64)
	return v
}
