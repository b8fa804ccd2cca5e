package types

// Options is the validated set of edits requested for one invocation.
// Optional values are nil when the flag was not given.
type Options struct {
	Input  string
	Output string

	Speed float64
	Mute  bool

	TrimStart *float64
	TrimTo    *float64
	TrimEnd   *float64

	PitchUp   *float64
	PitchDown *float64
}

// Float returns a pointer to v, for filling optional fields.
func Float(v float64) *float64 { return &v }
