// Package envconf turns flat environment-variable strings into structured
// values and overlays them onto a base configuration tree.
package envconf

import (
	"os"
	"strconv"
	"strings"

	"github.com/strataconf/strata/internal/core/ports"
	"github.com/strataconf/strata/internal/core/value"
)

// Decode infers a typed Value from a raw environment string. Inference
// order, first match wins: boolean literal, base-10 integer, float,
// JSON-looking text (falling back to the raw string if it does not parse),
// comma-separated list of strings, raw string. Environment input is never
// rejected; malformed text just stays a string.
func Decode(raw string) value.Value {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return value.Bool(true)
	case "false", "0", "no":
		return value.Bool(false)
	}

	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return value.Int(i)
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return value.Float(f)
	}

	if strings.HasPrefix(raw, "[") || strings.HasPrefix(raw, "{") {
		if v, err := value.FromJSON([]byte(raw)); err == nil {
			return v
		}
		return value.String(raw)
	}

	if strings.Contains(raw, ",") {
		parts := strings.Split(raw, ",")
		elems := make([]value.Value, len(parts))
		for i, p := range parts {
			// Elements stay strings even when they look numeric; typed
			// coercion belongs to whoever consumes the resolved tree.
			elems[i] = value.String(strings.TrimSpace(p))
		}
		return value.Array(elems...)
	}

	return value.String(raw)
}

// DeriveEnvName builds the environment variable name for a key path:
// uppercased prefix, then each component uppercased with dashes folded to
// underscores, joined by underscores.
//
//	DeriveEnvName("myapp", "database", "host") == "MYAPP_DATABASE_HOST"
func DeriveEnvName(prefix string, components ...string) string {
	var b strings.Builder
	b.WriteString(strings.ToUpper(prefix))
	for _, c := range components {
		b.WriteByte('_')
		b.WriteString(strings.ToUpper(strings.ReplaceAll(c, "-", "_")))
	}
	return b.String()
}

// Overlay applies environment-derived overrides onto base configuration
// trees. The zero Overlay is not usable; construct with New.
type Overlay struct {
	env ports.EnvReader
}

// New returns an Overlay reading from env, or from the process environment
// when env is nil.
func New(env ports.EnvReader) *Overlay {
	if env == nil {
		env = ports.EnvReaderFunc(os.LookupEnv)
	}
	return &Overlay{env: env}
}

// Apply walks base and replaces every key for which a derived environment
// variable exists. An override is terminal: the decoded value replaces the
// key wholesale, with no further merging underneath it. Keys without an
// override recurse when they hold objects (extending the prefix) and are
// copied unchanged otherwise.
//
// Only objects are walked, so overrides can never introduce keys whose
// parent object does not already exist in base. Non-object bases pass
// through as clones.
func (o *Overlay) Apply(base value.Value, prefix string) value.Value {
	if base.Kind() != value.KindObject {
		return value.Clone(base)
	}

	out := make(map[string]value.Value, base.Len())
	for _, key := range base.Fields() {
		field, _ := base.Field(key)
		name := DeriveEnvName(prefix, key)

		if raw, ok := o.env.LookupEnv(name); ok {
			out[key] = Decode(raw)
			continue
		}
		if field.Kind() == value.KindObject {
			out[key] = o.Apply(field, name)
			continue
		}
		out[key] = value.Clone(field)
	}
	return value.Object(out)
}
