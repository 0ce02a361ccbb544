// Package table builds and persists the four Thistlethwaite phase
// tables: dense maps from a phase's packed coordinate to the BFS
// distance from the solved state under that phase's move set.
package table

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
)

// Format selects the on-disk width of a stored coordinate. Every
// coordinate this module computes fits comfortably in a uint32, but the
// file format is self-describing so a future, larger cube's wider
// coordinates could be read by the same reader without a version bump.
type Format byte

const (
	FormatU32 Format = 0
	FormatU64 Format = 1
)

func (f Format) String() string {
	switch f {
	case FormatU32:
		return "u32"
	case FormatU64:
		return "u64"
	default:
		return "unknown"
	}
}

// unreached marks a depth slot the BFS never filled.
const unreached = 0xFF

// Write encodes depths (indexed by coordinate) to w as: one format byte,
// a little-endian uint32 record count, then that many
// {coordinate, depth} records with the coordinate stored at the given
// width and the depth as a single byte.
func Write(w io.Writer, format Format, depths []uint8) error {
	bw := bufio.NewWriter(w)
	if err := bw.WriteByte(byte(format)); err != nil {
		return err
	}
	var count uint32
	for _, depth := range depths {
		if depth != unreached {
			count++
		}
	}
	if err := binary.Write(bw, binary.LittleEndian, count); err != nil {
		return err
	}
	for coord, depth := range depths {
		if depth == unreached {
			continue
		}
		switch format {
		case FormatU32:
			if err := binary.Write(bw, binary.LittleEndian, uint32(coord)); err != nil {
				return err
			}
		case FormatU64:
			if err := binary.Write(bw, binary.LittleEndian, uint64(coord)); err != nil {
				return err
			}
		default:
			return fmt.Errorf("table: unknown format %v", format)
		}
		if err := bw.WriteByte(depth); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Read decodes a table written by Write. The returned slice is sized to
// the largest coordinate seen plus one; any coordinate not present in
// the file (which should not happen for a table this package generated
// itself, but can for a hand-edited or truncated file) is left at the
// unreached sentinel.
func Read(r io.Reader) (Format, []uint8, error) {
	br := bufio.NewReader(r)

	formatByte, err := br.ReadByte()
	if err != nil {
		return 0, nil, fmt.Errorf("table: read format: %w", ErrTableFileCorrupt)
	}
	format := Format(formatByte)
	if format != FormatU32 && format != FormatU64 {
		return 0, nil, fmt.Errorf("table: unknown format byte %d: %w", formatByte, ErrTableFileCorrupt)
	}

	var count uint32
	if err := binary.Read(br, binary.LittleEndian, &count); err != nil {
		return 0, nil, fmt.Errorf("table: read count: %w", ErrTableFileCorrupt)
	}

	coords := make([]uint64, count)
	recDepths := make([]uint8, count)
	maxCoord := uint64(0)
	for i := uint32(0); i < count; i++ {
		var coord uint64
		switch format {
		case FormatU32:
			var v uint32
			if err := binary.Read(br, binary.LittleEndian, &v); err != nil {
				return 0, nil, fmt.Errorf("table: read coord %d: %w", i, ErrTableFileCorrupt)
			}
			coord = uint64(v)
		case FormatU64:
			if err := binary.Read(br, binary.LittleEndian, &coord); err != nil {
				return 0, nil, fmt.Errorf("table: read coord %d: %w", i, ErrTableFileCorrupt)
			}
		}
		depth, err := br.ReadByte()
		if err != nil {
			return 0, nil, fmt.Errorf("table: read depth %d: %w", i, ErrTableFileCorrupt)
		}
		coords[i] = coord
		recDepths[i] = depth
		if coord > maxCoord {
			maxCoord = coord
		}
	}

	depths := make([]uint8, maxCoord+1)
	for i := range depths {
		depths[i] = unreached
	}
	for i, coord := range coords {
		depths[coord] = recDepths[i]
	}
	return format, depths, nil
}
