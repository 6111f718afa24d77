// Package dataset loads the inputs of the protresolver command: the
// theoretical protein database, identification lists and consensus maps.
// Files are YAML; JSON files are accepted because the decoder reads JSON as
// YAML flow syntax.
package dataset

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/proteinresolver/core"
	"github.com/katalvlaran/proteinresolver/evidence"
)

// ErrUnsupportedFormat is returned for a file extension other than
// .yaml, .yml or .json.
var ErrUnsupportedFormat = errors.New("dataset: unsupported file format")

// DatabaseFile is the on-disk form of the theoretical database.
type DatabaseFile struct {
	Proteins []core.ProteinEntry `yaml:"proteins"`
}

// IdentificationFile is the on-disk form of an identification list.
type IdentificationFile struct {
	Identifier      string                    `yaml:"identifier,omitempty"`
	Identifications []evidence.Identification `yaml:"identifications"`
}

// LoadDatabase decodes a DatabaseFile from r.
func LoadDatabase(r io.Reader) ([]core.ProteinEntry, error) {
	var f DatabaseFile
	if err := decode(r, &f); err != nil {
		return nil, errors.Wrap(err, "dataset: database")
	}

	return f.Proteins, nil
}

// LoadIdentifications decodes an IdentificationFile from r. A file-level
// identifier is copied to the first identification that lacks one.
func LoadIdentifications(r io.Reader) ([]evidence.Identification, error) {
	var f IdentificationFile
	if err := decode(r, &f); err != nil {
		return nil, errors.Wrap(err, "dataset: identifications")
	}
	if f.Identifier != "" && len(f.Identifications) > 0 && f.Identifications[0].Identifier == "" {
		f.Identifications[0].Identifier = f.Identifier
	}

	return f.Identifications, nil
}

// LoadConsensus decodes a consensus map from r.
func LoadConsensus(r io.Reader) (*evidence.ConsensusMap, error) {
	var cm evidence.ConsensusMap
	if err := decode(r, &cm); err != nil {
		return nil, errors.Wrap(err, "dataset: consensus")
	}

	return &cm, nil
}

// LoadDatabaseFile reads a database from path.
func LoadDatabaseFile(path string) ([]core.ProteinEntry, error) {
	var out []core.ProteinEntry
	err := withFile(path, func(r io.Reader) (err error) {
		out, err = LoadDatabase(r)
		return err
	})

	return out, err
}

// LoadIdentificationsFile reads an identification list from path. Records
// without an origin get the file's base name.
func LoadIdentificationsFile(path string) ([]evidence.Identification, error) {
	var out []evidence.Identification
	err := withFile(path, func(r io.Reader) (err error) {
		out, err = LoadIdentifications(r)
		return err
	})
	for i := range out {
		if out[i].Origin == "" {
			out[i].Origin = filepath.Base(path)
		}
	}

	return out, err
}

// LoadConsensusFile reads a consensus map from path. A map without an
// identifier is named after the file.
func LoadConsensusFile(path string) (*evidence.ConsensusMap, error) {
	var out *evidence.ConsensusMap
	err := withFile(path, func(r io.Reader) (err error) {
		out, err = LoadConsensus(r)
		return err
	})
	if out != nil && out.Identifier == "" {
		out.Identifier = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return out, err
}

func withFile(path string, fn func(io.Reader) error) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return errors.Wrapf(ErrUnsupportedFormat, "%s", path)
	}
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "dataset: open %s", path)
	}
	defer f.Close()

	return errors.Wrapf(fn(f), "dataset: %s", path)
}

func decode(r io.Reader, v any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(v); err != nil && err != io.EOF {
		return err
	}

	return nil
}
