package table

import (
	"bytes"
	"testing"

	"github.com/rkessler/thistlecube/internal/coordinate"
)

func TestGeneratePhase0MatchesDocumentedSize(t *testing.T) {
	depths, err := Generate(0)
	if err != nil {
		t.Fatal(err)
	}
	entries, maxDepth := summarize(depths)
	if entries != coordinate.PhaseTableSize[0] {
		t.Fatalf("phase 0 entries = %d, want %d", entries, coordinate.PhaseTableSize[0])
	}
	if maxDepth != coordinate.PhaseMaxDepth[0] {
		t.Fatalf("phase 0 max depth = %d, want %d", maxDepth, coordinate.PhaseMaxDepth[0])
	}
}

func TestGeneratePhase1MatchesDocumentedSize(t *testing.T) {
	depths, err := Generate(1)
	if err != nil {
		t.Fatal(err)
	}
	entries, maxDepth := summarize(depths)
	if entries != coordinate.PhaseTableSize[1] {
		t.Fatalf("phase 1 entries = %d, want %d", entries, coordinate.PhaseTableSize[1])
	}
	if maxDepth != coordinate.PhaseMaxDepth[1] {
		t.Fatalf("phase 1 max depth = %d, want %d", maxDepth, coordinate.PhaseMaxDepth[1])
	}
}

func TestGeneratePhase2And3AreFullyDense(t *testing.T) {
	for _, phase := range []int{2, 3} {
		depths, err := Generate(phase)
		if err != nil {
			t.Fatal(err)
		}
		entries, maxDepth := summarize(depths)
		if entries != coordinate.PhaseTableSize[phase] {
			t.Fatalf("phase %d entries = %d, want %d (table is not fully reached)", phase, entries, coordinate.PhaseTableSize[phase])
		}
		if maxDepth > coordinate.PhaseMaxDepth[phase] {
			t.Fatalf("phase %d max depth = %d, exceeds documented max %d", phase, maxDepth, coordinate.PhaseMaxDepth[phase])
		}
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	depths := []uint8{0, 1, 2, unreached, 3}
	var buf bytes.Buffer
	if err := Write(&buf, FormatU32, depths); err != nil {
		t.Fatal(err)
	}
	format, got, err := Read(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if format != FormatU32 {
		t.Fatalf("format = %v, want u32", format)
	}
	if len(got) != len(depths) {
		t.Fatalf("len(got) = %d, want %d", len(got), len(depths))
	}
	for i, want := range depths {
		if got[i] != want {
			t.Fatalf("depths[%d] = %d, want %d", i, got[i], want)
		}
	}
}

func TestReadCorruptFile(t *testing.T) {
	if _, _, err := Read(bytes.NewReader([]byte{0xFF})); err == nil {
		t.Fatal("expected error reading truncated file with bad format byte")
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(t.TempDir(), 0)
	if err == nil {
		t.Fatal("expected error loading table from empty directory")
	}
}

func summarize(depths []uint8) (entries, maxDepth int) {
	for _, d := range depths {
		if d == unreached {
			continue
		}
		entries++
		if int(d) > maxDepth {
			maxDepth = int(d)
		}
	}
	return
}
