package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"gopkg.in/yaml.v3"

	"github.com/jeepies/leagues/internal/ir"
)

// Format identifies a dataset encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCUE  Format = "cue"
)

// FormatFromPath picks a Format by file extension.
func FormatFromPath(path string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, true
	case ".yaml", ".yml":
		return FormatYAML, true
	case ".cue":
		return FormatCUE, true
	}
	return "", false
}

// Load reads and decodes the dataset document at path.
func Load(path string) (ir.Value, error) {
	format, ok := FormatFromPath(path)
	if !ok {
		return nil, &LoadError{
			Code:    ErrCodeUnsupported,
			Message: fmt.Sprintf("unsupported dataset extension %q (want .json, .yaml, .yml or .cue)", filepath.Ext(path)),
			Path:    path,
		}
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: "dataset file not found", Path: path, Err: err}
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	return Decode(data, format, path)
}

// Decode decodes a dataset document. filename is used in error positions.
func Decode(data []byte, format Format, filename string) (ir.Value, error) {
	switch format {
	case FormatJSON:
		v, err := ir.DecodeJSON(data)
		if err != nil {
			return nil, &LoadError{Code: ErrCodeParse, Message: err.Error(), Path: filename, Err: err}
		}
		return v, nil
	case FormatYAML:
		return decodeYAML(data, filename)
	case FormatCUE:
		return decodeCUE(data, filename)
	default:
		return nil, &LoadError{Code: ErrCodeUnsupported, Message: fmt.Sprintf("unknown format %q", format), Path: filename}
	}
}

func decodeYAML(data []byte, filename string) (ir.Value, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(bytes.NewReader(data)).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return ir.Null{}, nil
		}
		return nil, &LoadError{Code: ErrCodeParse, Message: err.Error(), Path: filename, Err: err}
	}

	v, err := FromYAML(&doc)
	if err != nil {
		return nil, &LoadError{Code: ErrCodeParse, Message: err.Error(), Path: filename, Err: err}
	}
	return v, nil
}

func decodeCUE(data []byte, filename string) (ir.Value, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(data, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, cueLoadError(ErrCodeParse, filename, err)
	}
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return nil, cueLoadError(ErrCodeNotConcrete, filename, err)
	}

	out, err := FromCUE(v)
	if err != nil {
		return nil, cueLoadError(ErrCodeNotConcrete, filename, err)
	}
	return out, nil
}

// cueLoadError keeps the first CUE error position for the message.
func cueLoadError(code, filename string, err error) *LoadError {
	loadErr := &LoadError{Code: code, Message: err.Error(), Path: filename, Err: err}
	var cueErr cueerrors.Error
	if errors.As(err, &cueErr) {
		loadErr.Message = cueErr.Error()
		if positions := cueerrors.Positions(cueErr); len(positions) > 0 {
			loadErr.Pos = positions[0]
		}
	}
	return loadErr
}

// LoadItems loads the dataset at path and normalizes its records.
func LoadItems(path string) ([]ir.Item, error) {
	doc, err := Load(path)
	if err != nil {
		return nil, err
	}

	records := Rows(doc)
	items, err := Normalize(records)
	if err != nil {
		return nil, fmt.Errorf("normalize %s: %w", path, err)
	}

	slog.Debug("dataset loaded", "path", path, "records", len(records), "items", len(items))
	return items, nil
}
