package assets

import (
	"fmt"
	"io"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/mogaika/legacy_scene_loader/convert"
	"github.com/mogaika/legacy_scene_loader/legacy"
	"github.com/mogaika/legacy_scene_loader/utils"
)

// Importer deserializes one legacy file. The result is a legacy.Spatial for
// scene graphs; any other object is ignored by LegacyLoader.
type Importer interface {
	Load(r io.Reader) (interface{}, error)
}

type ImporterFunc func(r io.Reader) (interface{}, error)

func (f ImporterFunc) Load(r io.Reader) (interface{}, error) { return f(r) }

// LegacyExtensions are the extensions LegacyLoader understands.
var LegacyExtensions = []string{"xml", "jme"}

// LegacyLoader imports old engine scene graphs and converts them on load.
type LegacyLoader struct {
	xml    Importer
	binary Importer
	opts   convert.Options
	log    *zap.Logger
}

// NewLegacyLoader routes .xml assets to xml and .jme assets to binary.
func NewLegacyLoader(xml, binary Importer, opts convert.Options) *LegacyLoader {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LegacyLoader{
		xml:    xml,
		binary: binary,
		opts:   opts,
		log:    logger.Named("loader"),
	}
}

func (l *LegacyLoader) importerFor(key AssetKey) Importer {
	switch key.Extension() {
	case "xml":
		return l.xml
	case "jme":
		return l.binary
	}
	return nil
}

// Load returns a scene.Spatial, or nil when the asset is not a legacy scene graph.
func (l *LegacyLoader) Load(info AssetInfo) (interface{}, error) {
	imp := l.importerFor(info.Key)
	if imp == nil {
		return nil, nil
	}

	r, err := info.OpenStream()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	obj, err := imp.Load(r)
	if err != nil {
		return nil, errors.Wrapf(err, "[loader] Import of '%s' failed", info.Key.Name())
	}

	root, ok := obj.(legacy.Spatial)
	if !ok || root == nil {
		l.log.Info("imported object is not a scene graph",
			zap.String("key", info.Key.Name()), zap.String("type", typeName(obj)))
		if ce := l.log.Check(zap.DebugLevel, "imported object"); ce != nil {
			ce.Write(zap.String("dump", utils.SDump(obj)))
		}
		return nil, nil
	}

	start := time.Now()
	converted := convert.New(info.Manager, l.opts).Convert(root)
	l.log.Info("conversion took",
		zap.String("key", info.Key.Name()),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()))

	if converted == nil {
		return nil, nil
	}
	if ce := l.log.Check(zap.DebugLevel, "converted tree"); ce != nil {
		if summary, err := utils.SummaryYAML(converted); err == nil {
			ce.Write(zap.String("summary", string(summary)))
		}
	}
	return converted, nil
}

func typeName(v interface{}) string {
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
