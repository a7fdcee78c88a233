package optkit

import (
	"fmt"

	"github.com/jinzhu/copier"
)

// Registry holds the options known to a scan, in registration order.
// All registration must complete before the first scan; a registry is
// not safe for concurrent use.
type Registry struct {
	options []*Option
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a new option. At least one of short and long must be
// set, and neither may collide with an already registered option.
func (r *Registry) Register(short byte, long string, flags Flags, conflicts []*Option, description string) (*Option, error) {
	if short == 0 && long == "" {
		return nil, fmt.Errorf("option must have a short or long name")
	}

	if short != 0 {
		if r.LookupShort(short) != nil {
			return nil, fmt.Errorf("option -%c already registered", short)
		}
	}
	if long != "" {
		if r.LookupLong(long) != nil {
			return nil, fmt.Errorf("option --%s already registered", long)
		}
	}

	opt := &Option{
		ShortName:   short,
		LongName:    long,
		Description: description,
		Flags:       flags & FlagTakesArg,
	}
	if len(conflicts) > 0 {
		opt.Conflicts = append([]*Option{}, conflicts...)
	}

	r.options = append(r.options, opt)

	return opt, nil
}

// LookupShort scans the registered options in registration order and
// returns the first one with the given short name, or nil.
func (r *Registry) LookupShort(short byte) *Option {
	if short == 0 {
		return nil
	}

	for _, opt := range r.options {
		if opt.ShortName == short {
			return opt
		}
	}

	return nil
}

// LookupLong returns the first registered option with the given long
// name, or nil.
func (r *Registry) LookupLong(long string) *Option {
	if long == "" {
		return nil
	}

	for _, opt := range r.options {
		if opt.LongName == long {
			return opt
		}
	}

	return nil
}

func (r *Registry) Len() int {
	return len(r.options)
}

// Snapshot returns copies of the registered options in registration
// order. Renderers and inspection tools read these instead of the live
// table.
func (r *Registry) Snapshot() []Option {
	snap := make([]Option, len(r.options))
	for i, opt := range r.options {
		if err := copier.Copy(&snap[i], opt); err != nil {
			snap[i] = *opt
		}
	}

	return snap
}

func (r *Registry) reset() {
	for _, opt := range r.options {
		opt.reset()
	}
}
