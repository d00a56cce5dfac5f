// Package manifest pins dependency versions inside a package.json manifest.
//
// Edits are applied in place with JSON path writes, so unrelated keys and the
// existing key order survive; new keys are appended to their object.
package manifest

import (
	"errors"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"go.trai.ch/depfix/internal/core/domain"
	"go.trai.ch/depfix/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ManifestPatcher = (*Patcher)(nil)

// prettyOptions matches two-space indented output with one element per line.
var prettyOptions = &pretty.Options{
	Width:    0,
	Prefix:   "",
	Indent:   "  ",
	SortKeys: false,
}

// Patcher implements ports.ManifestPatcher for package.json files.
type Patcher struct{}

// NewPatcher creates a new Patcher.
func NewPatcher() *Patcher {
	return &Patcher{}
}

// Patch applies pins to the manifest at path and rewrites it when the content changed.
func (p *Patcher) Patch(path string, pins []domain.Pin) (bool, error) {
	//nolint:gosec // path is the fixed manifest location below the project root
	data, err := os.ReadFile(path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrManifestReadFailed.Error()), "path", path)
	}

	patched, err := Apply(data, pins)
	if err != nil {
		return false, zerr.With(err, "path", path)
	}

	if xxhash.Sum64(patched) == xxhash.Sum64(data) {
		return false, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}

	if err := os.WriteFile(path, patched, info.Mode().Perm()); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrManifestWriteFailed.Error()), "path", path)
	}

	return true, nil
}

// Apply returns data with every pin set, formatted with two-space indentation.
// The document must be a JSON object with a dependencies object.
func Apply(data []byte, pins []domain.Pin) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, zerr.Wrap(errors.New("invalid JSON"), domain.ErrManifestParseFailed.Error())
	}

	doc := gjson.ParseBytes(data)
	if !doc.IsObject() {
		return nil, zerr.Wrap(errors.New("top-level value is not an object"), domain.ErrManifestParseFailed.Error())
	}

	if !doc.Get(gjson.Escape(domain.FieldDependencies)).IsObject() {
		return nil, domain.ErrManifestMissingDependencies
	}

	out := data
	seen := make(map[string]bool)

	for _, pin := range pins {
		field := gjson.Escape(pin.Field)

		if !seen[pin.Field] {
			seen[pin.Field] = true
			// A scalar where an object belongs cannot hold pins; start it over.
			if existing := gjson.GetBytes(out, field); existing.Exists() && !existing.IsObject() {
				var err error
				out, err = sjson.SetRawBytes(out, field, []byte("{}"))
				if err != nil {
					return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestPatchFailed.Error()), "field", pin.Field)
				}
			}
		}

		path := field + "." + gjson.Escape(pin.Package)

		// Readers take the last of repeated keys while sjson sets the first.
		for countKeys(out, field, pin.Package) > 1 {
			var err error
			out, err = sjson.DeleteBytes(out, path)
			if err != nil {
				return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestPatchFailed.Error()), "package", pin.Package)
			}
		}

		var err error
		out, err = sjson.SetBytes(out, path, pin.Version)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrManifestPatchFailed.Error()), "package", pin.Package)
		}
	}

	return pretty.PrettyOptions(out, prettyOptions), nil
}

func countKeys(data []byte, field, key string) int {
	n := 0
	gjson.GetBytes(data, field).ForEach(func(k, _ gjson.Result) bool {
		if k.String() == key {
			n++
		}
		return true
	})
	return n
}
