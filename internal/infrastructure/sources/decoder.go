package sources

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"

	"github.com/strataconf/strata/internal/core/domain"
	"github.com/strataconf/strata/internal/core/value"
)

// Decoder reads one configuration file into a Value tree. It implements
// ports.FileDecoder. Files with a .jsonc extension have comments stripped
// before decoding.
type Decoder struct{}

// NewDecoder returns a file decoder.
func NewDecoder() *Decoder { return &Decoder{} }

// DecodeFile reads and decodes the file at path. Unreadable files map to
// domain.ErrConfigFilePermission and undecodable content to
// domain.ErrConfigFileSyntax; both are fatal to the enclosing load.
func (d *Decoder) DecodeFile(path string) (value.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return value.Value{}, fmt.Errorf("%w: %s", domain.ErrConfigFilePermission, path)
		}
		return value.Value{}, fmt.Errorf("reading %s: %w", path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".jsonc") {
		data = jsonc.ToJSON(data)
	}

	v, err := value.FromJSON(data)
	if err != nil {
		return value.Value{}, fmt.Errorf("%w: %s: %v", domain.ErrConfigFileSyntax, path, err)
	}
	return v, nil
}
