package assets

import (
	"io"
	"path"
	"strings"

	"github.com/mogaika/legacy_scene_loader/convert"
)

// AssetKey is a slash separated asset path relative to the manager root.
type AssetKey string

func (k AssetKey) Name() string { return string(k) }

// Extension is lower case and without the leading dot.
func (k AssetKey) Extension() string {
	return strings.ToLower(strings.TrimPrefix(path.Ext(string(k)), "."))
}

type AssetInfo struct {
	Key     AssetKey
	Manager convert.AssetManager
	open    func() (io.ReadCloser, error)
}

func NewAssetInfo(key AssetKey, manager convert.AssetManager, open func() (io.ReadCloser, error)) AssetInfo {
	return AssetInfo{Key: key, Manager: manager, open: open}
}

func (ai AssetInfo) OpenStream() (io.ReadCloser, error) {
	return ai.open()
}

type AssetLoader interface {
	Load(info AssetInfo) (interface{}, error)
}
