package optkit

import "fmt"

// Flags is a bit set of option attributes. Membership is tested with
// Has, never by truthiness of a combined value.
type Flags uint8

const (
	// FlagTakesArg marks an option that must be given a value.
	FlagTakesArg Flags = 1 << iota

	// FlagSeen is set by the scanner when the option matched a token.
	// It is cleared again at the start of every scan.
	FlagSeen
)

func (f Flags) Has(flag Flags) bool {
	return f&flag != 0
}

// Option is a single registered option. Options are created through
// Registry.Register and stay valid until the registry is discarded.
type Option struct {
	ShortName   byte   // 0 when the option has no short form
	LongName    string // "" when the option has no long form
	Description string

	// Conflicts lists options that must not co-occur with this one.
	// The scanner checks the set after a successful pass.
	Conflicts []*Option

	// Flags holds FlagTakesArg from registration; the scanner maintains
	// FlagSeen in it across scans.
	Flags Flags

	// Value is the argument bound during the last scan. Use Arg to
	// distinguish an empty value from no value at all.
	Value string
}

func (o *Option) String() string {
	if o.LongName != "" {
		return fmt.Sprintf("--%s", o.LongName)
	}

	return fmt.Sprintf("-%c", o.ShortName)
}

// Seen reports whether the option matched during the last scan.
func (o *Option) Seen() bool {
	return o.Flags.Has(FlagSeen)
}

// Arg returns the value bound during the last scan. The second return
// is false when the option was not seen or takes no argument.
func (o *Option) Arg() (string, bool) {
	if !o.Flags.Has(FlagSeen) || !o.Flags.Has(FlagTakesArg) {
		return "", false
	}

	return o.Value, true
}

func (o *Option) reset() {
	o.Flags &^= FlagSeen
	o.Value = ""
}
