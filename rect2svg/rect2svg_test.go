package rect2svg

import (
	"bytes"
	"io"
	"strings"
	"testing"

	i2stypes "image2svg/type"

	"github.com/klauspost/compress/gzip"
)

var redGroup = []i2stypes.ColorGroup{
	{
		Key:   i2stypes.ColorKey{R: 254, G: 0, B: 0, A: 1},
		Rects: []i2stypes.Rect{{X: 0, Y: 0, Width: 2, Height: 1}},
	},
}

func TestDocumentShape(t *testing.T) {
	doc := Document(10, 10, nil)
	for _, want := range []string{
		`<?xml version="1.0"?>`,
		`width="10"`,
		`height="10"`,
		`viewBox="0 0 10 10"`,
		`xmlns="http://www.w3.org/2000/svg"`,
		`</svg>`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing %q:\n%s", want, doc)
		}
	}
}

func TestDocumentRect(t *testing.T) {
	doc := Document(2, 1, redGroup)
	want := `<rect x="0" y="0" width="2" height="1" fill="rgba(254,0,0,1)" />`
	if !strings.Contains(doc, want) {
		t.Errorf("document missing %q:\n%s", want, doc)
	}
}

func TestDocumentEmptyGroups(t *testing.T) {
	doc := Document(4, 4, nil)
	if strings.Contains(doc, "<rect") {
		t.Errorf("empty groups produced rects:\n%s", doc)
	}
}

func TestDocumentColorOrder(t *testing.T) {
	groups := []i2stypes.ColorGroup{
		{
			Key:   i2stypes.ColorKey{R: 254, G: 0, B: 0, A: 1},
			Rects: []i2stypes.Rect{{X: 0, Y: 0, Width: 1, Height: 1}},
		},
		{
			Key:   i2stypes.ColorKey{R: 0, G: 0, B: 254, A: 1},
			Rects: []i2stypes.Rect{{X: 1, Y: 0, Width: 1, Height: 1}},
		},
	}
	doc := Document(2, 1, groups)
	redAt := strings.Index(doc, "rgba(254,0,0,1)")
	blueAt := strings.Index(doc, "rgba(0,0,254,1)")
	if redAt < 0 || blueAt < 0 || redAt > blueAt {
		t.Errorf("color order wrong (red %d, blue %d):\n%s", redAt, blueAt, doc)
	}
}

func TestDocumentDeterministic(t *testing.T) {
	a := Document(2, 1, redGroup)
	b := Document(2, 1, redGroup)
	if a != b {
		t.Errorf("documents differ:\n%s\n---\n%s", a, b)
	}
}

func TestWriteGzipRoundtrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteGzip(&buf, 2, 1, redGroup); err != nil {
		t.Fatal(err)
	}
	zr, err := gzip.NewReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := io.ReadAll(zr)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(raw), Document(2, 1, redGroup); got != want {
		t.Errorf("gzip roundtrip mismatch:\n%s\n---\n%s", got, want)
	}
}
