package assets

import (
	"io"
	"testing"
	"testing/fstest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/mogaika/legacy_scene_loader/convert"
	"github.com/mogaika/legacy_scene_loader/legacy"
	"github.com/mogaika/legacy_scene_loader/scene"
)

// recordingImporter returns a fresh legacy tree named after the file content.
type recordingImporter struct {
	calls int
}

func (ri *recordingImporter) Load(r io.Reader) (interface{}, error) {
	ri.calls++
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	root := legacy.NewNode(string(data))
	tm := legacy.NewTriMesh("mesh")
	tm.Vertices = []float32{0, 0, 0, 1, 0, 0, 0, 1, 0}
	tm.Indices = []int32{0, 1, 2}
	root.AttachChild(tm)
	return root, nil
}

func newTestManager(t *testing.T, xml, binary Importer) (*Manager, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	m := NewManager(fstest.MapFS{
		"models/house.xml":  {Data: []byte("house")},
		"models/tree.JME":   {Data: []byte("tree")},
		"models/notes.txt":  {Data: []byte("notes")},
		"models/broken.jme": {Data: []byte("broken")},
	}, logger)

	m.RegisterLoader(NewLegacyLoader(xml, binary, convert.Options{Logger: logger}), "xml", "jme", "txt")
	return m, logs
}

func TestLegacyLoaderDispatch(t *testing.T) {
	xml := &recordingImporter{}
	binary := &recordingImporter{}
	m, logs := newTestManager(t, xml, binary)

	s, err := m.LoadModel("models/house.xml")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "house", s.Name())
	assert.Equal(t, 1, xml.calls)
	assert.Equal(t, 0, binary.calls)

	s, err = m.LoadModel("models/tree.JME")
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "tree", s.Name())
	assert.Equal(t, 1, binary.calls)

	node := s.(*scene.Node)
	require.Equal(t, 1, node.Quantity())
	geom, ok := node.Children()[0].(*scene.Geometry)
	require.True(t, ok)
	color, _ := geom.Material().Color("Color")
	assert.Equal(t, scene.ColorBlue, color)

	timings := logs.FilterMessage("conversion took").All()
	require.Len(t, timings, 2)
	assert.Contains(t, timings[0].ContextMap(), "duration_ms")
	assert.Equal(t, 2, logs.FilterMessage("converted tree").Len())
}

func TestLegacyLoaderIgnoresOtherExtensions(t *testing.T) {
	xml := &recordingImporter{}
	binary := &recordingImporter{}
	m, _ := newTestManager(t, xml, binary)

	obj, err := m.LoadAsset("models/notes.txt")
	require.NoError(t, err)
	assert.Nil(t, obj)
	assert.Equal(t, 0, xml.calls+binary.calls)
}

func TestLegacyLoaderNonSpatialResult(t *testing.T) {
	notTree := ImporterFunc(func(r io.Reader) (interface{}, error) {
		return map[string]int{"savable": 1}, nil
	})
	m, logs := newTestManager(t, notTree, notTree)

	s, err := m.LoadModel("models/house.xml")
	require.NoError(t, err)
	assert.Nil(t, s)

	entries := logs.FilterMessage("imported object is not a scene graph").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "map[string]int", entries[0].ContextMap()["type"])
	assert.Equal(t, 0, logs.FilterMessage("conversion took").Len())
}

func TestLegacyLoaderImportError(t *testing.T) {
	failing := ImporterFunc(func(r io.Reader) (interface{}, error) {
		return nil, errors.New("bad magic")
	})
	m, _ := newTestManager(t, &recordingImporter{}, failing)

	_, err := m.LoadModel("models/broken.jme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad magic")
	assert.Contains(t, err.Error(), "models/broken.jme")
}

func TestLegacyLoaderMissingFile(t *testing.T) {
	m, _ := newTestManager(t, &recordingImporter{}, &recordingImporter{})
	_, err := m.LoadModel("models/missing.xml")
	assert.Error(t, err)
}

func TestLegacyLoaderUnknownRoot(t *testing.T) {
	type opaque struct{ legacy.SpatialBase }
	imp := ImporterFunc(func(r io.Reader) (interface{}, error) {
		return &opaque{}, nil
	})
	m, _ := newTestManager(t, imp, imp)

	s, err := m.LoadModel("models/house.xml")
	require.NoError(t, err)
	assert.Nil(t, s)
}
