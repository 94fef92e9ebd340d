package domain

// SourceKind names one of the ranked places a configuration value can come
// from.
type SourceKind string

const (
	SourceLocalFile SourceKind = "local_file"
	SourceHomeFile  SourceKind = "home_file"
	SourceEnvVars   SourceKind = "env_vars"
	SourceDefaults  SourceKind = "defaults"
)

// Fixed priority weights per source kind; higher wins. The environment sits
// between the file sources and defaults because it overlays rather than
// supplies the base.
const (
	PriorityLocalFile = 3
	PriorityHomeFile  = 2
	PriorityEnvVars   = 1
	PriorityDefaults  = 0
)

// SourceInfo records the provenance of one contributing source. Created
// once during orchestration and never mutated afterwards.
type SourceInfo struct {
	Kind     SourceKind `json:"kind"`
	Path     string     `json:"path,omitempty"`
	Priority int        `json:"priority"`
}
