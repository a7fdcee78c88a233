package optkit

import "strings"

// Mode selects how the scanner treats short options. It is fixed when
// the scanner is constructed.
type Mode int

const (
	// ModeShortArg recognizes one short option per dash token; trailing
	// characters in the token are that option's argument.
	ModeShortArg Mode = iota
	// ModeMultiFlag allows several boolean short options bundled behind
	// one dash, e.g. "-abc" for "-a -b -c".
	ModeMultiFlag
)

// Result is the outcome of a successful scan. The positional slice is
// owned by the scanner and recycled by its next scan.
type Result struct {
	positionals []string

	helpShown    bool
	versionShown bool
}

// Args returns the positional arguments in encounter order.
func (r *Result) Args() []string {
	return r.positionals
}

// HelpShown reports that the scan was short-circuited by --help.
func (r *Result) HelpShown() bool {
	return r.helpShown
}

// VersionShown reports that the scan was short-circuited by --version.
func (r *Result) VersionShown() bool {
	return r.versionShown
}

// Scanner walks an argument vector once, left to right, and classifies
// every token against a registry. Scans may be repeated against the
// same registry; each scan resets the per-option runtime state first.
type Scanner struct {
	// OnHelp and OnVersion run when a bare --help or --version is seen
	// and no registered option shadows that long name. The scan then
	// terminates successfully without touching the remaining tokens.
	OnHelp    func()
	OnVersion func()

	registry *Registry
	mode     Mode

	args   []string
	result Result
}

func NewScanner(registry *Registry, mode Mode) *Scanner {
	return &Scanner{
		registry: registry,
		mode:     mode,
	}
}

// Scan classifies argv against the registry. argv[0] is the program
// name and is never classified. The first unclassifiable token aborts
// the pass; no partial result is returned.
func (s *Scanner) Scan(argv []string) (*Result, error) {
	s.registry.reset()
	s.args = s.args[:0]
	s.result = Result{}

	if len(argv) > 0 {
		argv = argv[1:]
	}

	onlyArgs := false
	for i := 0; i < len(argv); i++ {
		current := argv[i]

		if onlyArgs {
			s.args = append(s.args, current)
			continue
		}

		if current == "--" {
			onlyArgs = true
			continue
		}

		switch {
		case strings.HasPrefix(current, "--"):
			if err := s.scanLong(current); err != nil {
				return nil, err
			}

			if s.result.helpShown || s.result.versionShown {
				s.result.positionals = s.args
				return &s.result, nil
			}
		case len(current) > 1 && current[0] == '-':
			next := ""
			if i+1 < len(argv) {
				next = argv[i+1]
			}

			consumed, err := s.scanShort(current, next)
			if err != nil {
				return nil, err
			}

			i += consumed
		default:
			// a bare "-" lands here as well
			s.args = append(s.args, current)
		}
	}

	if err := s.checkConflicts(); err != nil {
		return nil, err
	}

	s.result.positionals = s.args

	return &s.result, nil
}

func (s *Scanner) scanLong(token string) error {
	parts := strings.SplitN(token[2:], "=", 2)
	name := parts[0]
	flagToken := "--" + name

	opt := s.registry.LookupLong(name)
	if opt == nil {
		switch name {
		case "help":
			if s.OnHelp != nil {
				s.OnHelp()
			}
			s.result.helpShown = true
			return nil
		case "version":
			if s.OnVersion != nil {
				s.OnVersion()
			}
			s.result.versionShown = true
			return nil
		}

		return &ScanError{Kind: ErrUnrecognizedOption, Token: flagToken}
	}

	if opt.Flags.Has(FlagTakesArg) {
		// long options only take inline values
		if len(parts) < 2 {
			return &ScanError{Kind: ErrMissingArgument, Token: flagToken}
		}
		opt.Value = parts[1]
	} else if len(parts) > 1 {
		return &ScanError{Kind: ErrUnexpectedArgument, Token: flagToken}
	}

	opt.Flags |= FlagSeen

	return nil
}

func (s *Scanner) scanShort(token string, next string) (int, error) {
	if s.mode == ModeMultiFlag {
		return s.scanCluster(token, next)
	}

	flagToken := token[:2]

	opt := s.registry.LookupShort(token[1])
	if opt == nil {
		return 0, &ScanError{Kind: ErrUnrecognizedOption, Token: flagToken}
	}

	consumed := 0
	rest := token[2:]

	if opt.Flags.Has(FlagTakesArg) {
		switch {
		case rest != "":
			opt.Value = rest
		case next != "" && next[0] != '-':
			opt.Value = next
			consumed = 1
		default:
			return 0, &ScanError{Kind: ErrMissingArgument, Token: flagToken}
		}
	} else if rest != "" || (next != "" && next[0] != '-') {
		// boolean short options must appear alone in this mode
		return 0, &ScanError{Kind: ErrUnexpectedArgument, Token: flagToken}
	}

	opt.Flags |= FlagSeen

	return consumed, nil
}

func (s *Scanner) scanCluster(token string, next string) (int, error) {
	for j := 1; j < len(token); j++ {
		flagToken := "-" + string(token[j])

		opt := s.registry.LookupShort(token[j])
		if opt == nil {
			return 0, &ScanError{Kind: ErrUnrecognizedOption, Token: flagToken}
		}

		if !opt.Flags.Has(FlagTakesArg) {
			opt.Flags |= FlagSeen
			continue
		}

		// an argument-taking option ends the cluster: the remainder of
		// the token, or the following non-flag token, is its value
		consumed := 0
		switch {
		case j+1 < len(token):
			opt.Value = token[j+1:]
		case next != "" && next[0] != '-':
			opt.Value = next
			consumed = 1
		default:
			return 0, &ScanError{Kind: ErrMissingArgument, Token: flagToken}
		}

		opt.Flags |= FlagSeen

		return consumed, nil
	}

	return 0, nil
}

func (s *Scanner) checkConflicts() error {
	for _, opt := range s.registry.options {
		if !opt.Flags.Has(FlagSeen) {
			continue
		}

		for _, other := range opt.Conflicts {
			if other.Flags.Has(FlagSeen) {
				return &ScanError{
					Kind:     ErrConflictingOptions,
					Token:    opt.String(),
					Conflict: other.String(),
				}
			}
		}
	}

	return nil
}
