package trace

// Level controls the verbosity of event tracing.
type Level string

const (
	// LevelNone disables tracing (zero overhead).
	LevelNone Level = "none"
	// LevelEvents captures every customer lifecycle transition.
	LevelEvents Level = "events"
)

// validLevels maps accepted trace level strings.
var validLevels = map[Level]bool{
	LevelNone:   true,
	LevelEvents: true,
	"":          true, // empty defaults to none
}

// ValidLevel reports whether l is an accepted trace level.
func ValidLevel(l Level) bool {
	return validLevels[l]
}

// Trace accumulates customer lifecycle records for one simulation run.
// A nil *Trace is safe to append to (no-op), as is a LevelNone trace.
type Trace struct {
	Level   Level
	Records []Record
}

// New creates a Trace at the given level. Unknown levels record nothing.
func New(level Level) *Trace {
	if level == "" {
		level = LevelNone
	}
	return &Trace{Level: level}
}

// Append records r if tracing is enabled.
func (t *Trace) Append(r Record) {
	if t == nil || t.Level != LevelEvents {
		return
	}
	t.Records = append(t.Records, r)
}

// Enabled reports whether this trace is recording.
func (t *Trace) Enabled() bool {
	return t != nil && t.Level == LevelEvents
}
