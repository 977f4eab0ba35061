package markup

import "github.com/rs/zerolog"

// OrphanReason explains why a tag token was dropped
type OrphanReason int

const (
	// ReasonNoOpen marks a close tag with no matching open tag on the stack
	ReasonNoOpen OrphanReason = iota
	// ReasonCrossed marks an open tag discarded because a close tag for an
	// enclosing tag of another name arrived first
	ReasonCrossed
	// ReasonUnclosed marks an open tag still pending at the end of input
	ReasonUnclosed
	// ReasonUnwound marks an open tag discarded by a close tag that matched
	// nothing on the stack
	ReasonUnwound
)

// String returns the string representation of the reason
func (r OrphanReason) String() string {
	switch r {
	case ReasonNoOpen:
		return "no-open"
	case ReasonCrossed:
		return "crossed"
	case ReasonUnclosed:
		return "unclosed"
	case ReasonUnwound:
		return "unwound"
	default:
		return "unknown"
	}
}

// Tracer observes orphan resolution. Indices refer to positions in the
// token slice passed to RemoveOrphanTokens.
type Tracer interface {
	TagMatched(tag string, openAt, closeAt int)
	TagOrphaned(tok Token, index int, reason OrphanReason)
}

type nopTracer struct{}

func (nopTracer) TagMatched(string, int, int)          {}
func (nopTracer) TagOrphaned(Token, int, OrphanReason) {}

type logTracer struct {
	logger zerolog.Logger
}

// LogTracer returns a Tracer that emits trace level events on logger
func LogTracer(logger zerolog.Logger) Tracer {
	return logTracer{logger: logger}
}

func (t logTracer) TagMatched(tag string, openAt, closeAt int) {
	t.logger.Trace().
		Str("tag", tag).
		Int("open", openAt).
		Int("close", closeAt).
		Msg("Tag pair matched")
}

func (t logTracer) TagOrphaned(tok Token, index int, reason OrphanReason) {
	t.logger.Trace().
		Str("tag", tok.Value).
		Str("kind", tok.Type.String()).
		Int("index", index).
		Str("reason", reason.String()).
		Msg("Orphan tag dropped")
}
