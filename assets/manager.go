package assets

import (
	"io"
	"io/fs"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mogaika/legacy_scene_loader/scene"
)

// Manager locates assets in a file system and dispatches them to loaders by
// extension. It also serves the material definitions used by converters.
type Manager struct {
	root fs.FS
	log  *zap.Logger

	mu      sync.RWMutex
	loaders map[string]AssetLoader
	defs    map[string]*scene.MaterialDef
}

func NewManager(root fs.FS, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	m := &Manager{
		root:    root,
		log:     logger.Named("assets"),
		loaders: make(map[string]AssetLoader),
		defs:    make(map[string]*scene.MaterialDef),
	}
	m.RegisterMaterialDef(scene.LightingMaterialDef())
	m.RegisterMaterialDef(scene.UnshadedMaterialDef())
	return m
}

// RegisterLoader binds l to every listed extension, replacing earlier bindings.
func (m *Manager) RegisterLoader(l AssetLoader, extensions ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ext := range extensions {
		m.loaders[AssetKey("."+ext).Extension()] = l
	}
}

func (m *Manager) RegisterMaterialDef(def *scene.MaterialDef) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defs[def.AssetName] = def
}

func (m *Manager) LoadMaterialDef(name string) (*scene.MaterialDef, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if def, ok := m.defs[name]; ok {
		return def, nil
	}
	return nil, errors.Errorf("[assets] Material definition %q not registered", name)
}

// LoadAsset opens key from the root and hands it to the loader of its extension.
func (m *Manager) LoadAsset(key AssetKey) (interface{}, error) {
	m.mu.RLock()
	l, found := m.loaders[key.Extension()]
	m.mu.RUnlock()
	if !found {
		return nil, errors.Errorf("[assets] Cannot find loader for '%s' extension", key.Extension())
	}

	info := NewAssetInfo(key, m, func() (io.ReadCloser, error) {
		f, err := m.root.Open(key.Name())
		if err != nil {
			return nil, errors.Wrapf(err, "[assets] Cannot open '%s'", key.Name())
		}
		return f, nil
	})

	obj, err := l.Load(info)
	if err != nil {
		return nil, errors.Wrapf(err, "[assets] Loader error for '%s'", key.Name())
	}
	return obj, nil
}

// LoadModel is LoadAsset for scene graphs. A nil spatial with nil error
// means the loader produced nothing usable.
func (m *Manager) LoadModel(key AssetKey) (scene.Spatial, error) {
	obj, err := m.LoadAsset(key)
	if err != nil {
		return nil, err
	}
	if obj == nil {
		return nil, nil
	}
	s, ok := obj.(scene.Spatial)
	if !ok {
		m.log.Warn("asset is not a model", zap.String("key", key.Name()))
		return nil, nil
	}
	return s, nil
}
