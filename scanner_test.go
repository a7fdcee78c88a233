package optkit

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func requireScanError(t *testing.T, err error, kind ErrorKind, token string) {
	t.Helper()

	var scanErr *ScanError
	require.ErrorAs(t, err, &scanErr)
	require.Equal(t, kind, scanErr.Kind)
	require.Equal(t, token, scanErr.Token)
}

// verbose (bool), out (takes arg), all (bool), quiet (bool)
func newTestRegistry(t *testing.T) (*Registry, map[string]*Option) {
	t.Helper()

	r := NewRegistry()
	opts := map[string]*Option{}

	var err error
	opts["verbose"], err = r.Register('v', "verbose", 0, nil, "enable verbose output")
	require.NoError(t, err)
	opts["out"], err = r.Register('o', "out", FlagTakesArg, nil, "output file")
	require.NoError(t, err)
	opts["all"], err = r.Register('a', "all", 0, nil, "include everything")
	require.NoError(t, err)
	opts["quiet"], err = r.Register('q', "quiet", 0, []*Option{opts["verbose"]}, "suppress output")
	require.NoError(t, err)

	return r, opts
}

func TestScanPositionals(t *testing.T) {
	t.Parallel()

	t.Run("passthrough", func(t *testing.T) {
		r, _ := newTestRegistry(t)

		res, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "one", "two", "three"})
		require.NoError(t, err)
		require.Equal(t, []string{"one", "two", "three"}, res.Args())
	})

	t.Run("program name is never classified", func(t *testing.T) {
		r, _ := newTestRegistry(t)

		res, err := NewScanner(r, ModeShortArg).Scan([]string{"--bogus"})
		require.NoError(t, err)
		require.Empty(t, res.Args())
	})

	t.Run("terminator", func(t *testing.T) {
		r, opts := newTestRegistry(t)

		res, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "--verbose", "--", "-x", "--bogus", "plain"})
		require.NoError(t, err)
		require.Equal(t, []string{"-x", "--bogus", "plain"}, res.Args())
		require.True(t, opts["verbose"].Seen())
	})

	t.Run("terminator token is dropped", func(t *testing.T) {
		r, _ := newTestRegistry(t)

		res, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "--", "--"})
		require.NoError(t, err)
		require.Equal(t, []string{"--"}, res.Args())
	})

	t.Run("single dash is positional", func(t *testing.T) {
		r, _ := newTestRegistry(t)

		res, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "-"})
		require.NoError(t, err)
		require.Equal(t, []string{"-"}, res.Args())
	})
}

func TestScanLong(t *testing.T) {
	t.Parallel()

	t.Run("bool round trip", func(t *testing.T) {
		r, opts := newTestRegistry(t)
		s := NewScanner(r, ModeShortArg)

		_, err := s.Scan([]string{"prog", "-v"})
		require.NoError(t, err)
		require.True(t, opts["verbose"].Seen())
		_, bound := opts["verbose"].Arg()
		require.False(t, bound)

		_, err = s.Scan([]string{"prog", "--verbose"})
		require.NoError(t, err)
		require.True(t, opts["verbose"].Seen())
		_, bound = opts["verbose"].Arg()
		require.False(t, bound)
	})

	t.Run("inline value", func(t *testing.T) {
		r, opts := newTestRegistry(t)

		_, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "--out=file.txt"})
		require.NoError(t, err)

		value, bound := opts["out"].Arg()
		require.True(t, bound)
		require.Equal(t, "file.txt", value)
	})

	t.Run("inline value keeps later equal signs", func(t *testing.T) {
		r, opts := newTestRegistry(t)

		_, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "--out=a=b"})
		require.NoError(t, err)

		value, _ := opts["out"].Arg()
		require.Equal(t, "a=b", value)
	})

	t.Run("empty inline value still binds", func(t *testing.T) {
		r, opts := newTestRegistry(t)

		_, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "--out="})
		require.NoError(t, err)

		value, bound := opts["out"].Arg()
		require.True(t, bound)
		require.Equal(t, "", value)
	})

	t.Run("missing value", func(t *testing.T) {
		r, _ := newTestRegistry(t)

		_, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "--out"})
		requireScanError(t, err, ErrMissingArgument, "--out")
	})

	t.Run("long options never consume the next token", func(t *testing.T) {
		r, _ := newTestRegistry(t)

		_, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "--out", "file.txt"})
		requireScanError(t, err, ErrMissingArgument, "--out")
	})

	t.Run("unexpected value", func(t *testing.T) {
		r, _ := newTestRegistry(t)

		_, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "--verbose=1"})
		requireScanError(t, err, ErrUnexpectedArgument, "--verbose")
	})

	t.Run("unrecognized", func(t *testing.T) {
		r := NewRegistry()

		_, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "--bogus"})
		requireScanError(t, err, ErrUnrecognizedOption, "--bogus")
	})
}

func TestScanShortArgMode(t *testing.T) {
	t.Parallel()

	t.Run("inline value", func(t *testing.T) {
		r, opts := newTestRegistry(t)

		_, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "-ofile.txt"})
		require.NoError(t, err)

		value, bound := opts["out"].Arg()
		require.True(t, bound)
		require.Equal(t, "file.txt", value)
	})

	t.Run("next token value", func(t *testing.T) {
		r, opts := newTestRegistry(t)

		res, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "-o", "file.txt"})
		require.NoError(t, err)
		require.Empty(t, res.Args())

		value, _ := opts["out"].Arg()
		require.Equal(t, "file.txt", value)
	})

	t.Run("missing value at end", func(t *testing.T) {
		r, _ := newTestRegistry(t)

		_, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "-o"})
		requireScanError(t, err, ErrMissingArgument, "-o")
	})

	t.Run("flag-like next token is not a value", func(t *testing.T) {
		r, _ := newTestRegistry(t)

		_, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "-o", "-v"})
		requireScanError(t, err, ErrMissingArgument, "-o")
	})

	t.Run("bool with trailing text", func(t *testing.T) {
		r, _ := newTestRegistry(t)

		_, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "-ax"})
		requireScanError(t, err, ErrUnexpectedArgument, "-a")
	})

	t.Run("bool followed by non-flag token", func(t *testing.T) {
		r, _ := newTestRegistry(t)

		_, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "-a", "x"})
		requireScanError(t, err, ErrUnexpectedArgument, "-a")
	})

	t.Run("bool followed by flag is fine", func(t *testing.T) {
		r, opts := newTestRegistry(t)

		_, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "-a", "-v"})
		require.NoError(t, err)
		require.True(t, opts["all"].Seen())
		require.True(t, opts["verbose"].Seen())
	})

	t.Run("unrecognized", func(t *testing.T) {
		r, _ := newTestRegistry(t)

		_, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "-z"})
		requireScanError(t, err, ErrUnrecognizedOption, "-z")
	})
}

func TestScanMultiFlagMode(t *testing.T) {
	t.Parallel()

	t.Run("bundled bools", func(t *testing.T) {
		r, opts := newTestRegistry(t)

		_, err := NewScanner(r, ModeMultiFlag).Scan([]string{"prog", "-va"})
		require.NoError(t, err)
		require.True(t, opts["verbose"].Seen())
		require.True(t, opts["all"].Seen())
	})

	t.Run("argument option ends the cluster", func(t *testing.T) {
		r, opts := newTestRegistry(t)

		_, err := NewScanner(r, ModeMultiFlag).Scan([]string{"prog", "-vaofile.txt"})
		require.NoError(t, err)
		require.True(t, opts["verbose"].Seen())
		require.True(t, opts["all"].Seen())

		value, _ := opts["out"].Arg()
		require.Equal(t, "file.txt", value)
	})

	t.Run("argument from next token", func(t *testing.T) {
		r, opts := newTestRegistry(t)

		res, err := NewScanner(r, ModeMultiFlag).Scan([]string{"prog", "-vao", "file.txt", "rest"})
		require.NoError(t, err)
		require.Equal(t, []string{"rest"}, res.Args())

		value, _ := opts["out"].Arg()
		require.Equal(t, "file.txt", value)
	})

	t.Run("missing argument", func(t *testing.T) {
		r, _ := newTestRegistry(t)

		_, err := NewScanner(r, ModeMultiFlag).Scan([]string{"prog", "-vao", "-q"})
		requireScanError(t, err, ErrMissingArgument, "-o")
	})

	t.Run("unknown character", func(t *testing.T) {
		r, _ := newTestRegistry(t)

		_, err := NewScanner(r, ModeMultiFlag).Scan([]string{"prog", "-vza"})
		requireScanError(t, err, ErrUnrecognizedOption, "-z")
	})
}

func TestScanConflicts(t *testing.T) {
	t.Parallel()

	t.Run("both seen", func(t *testing.T) {
		r, _ := newTestRegistry(t)

		_, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "-q", "-v"})

		var scanErr *ScanError
		require.ErrorAs(t, err, &scanErr)
		require.Equal(t, ErrConflictingOptions, scanErr.Kind)
		require.Equal(t, "--quiet", scanErr.Token)
		require.Equal(t, "--verbose", scanErr.Conflict)
	})

	t.Run("one seen is fine", func(t *testing.T) {
		r, opts := newTestRegistry(t)

		_, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "-q"})
		require.NoError(t, err)
		require.True(t, opts["quiet"].Seen())
	})
}

func TestScanHelpVersion(t *testing.T) {
	t.Parallel()

	t.Run("help short-circuits", func(t *testing.T) {
		r, _ := newTestRegistry(t)
		s := NewScanner(r, ModeShortArg)

		called := 0
		s.OnHelp = func() { called++ }

		res, err := s.Scan([]string{"prog", "first", "--help", "--bogus"})
		require.NoError(t, err)
		require.Equal(t, 1, called)
		require.True(t, res.HelpShown())
		require.False(t, res.VersionShown())
		// everything after the trigger is left untouched
		require.Equal(t, []string{"first"}, res.Args())
	})

	t.Run("version short-circuits", func(t *testing.T) {
		r, _ := newTestRegistry(t)
		s := NewScanner(r, ModeShortArg)

		called := 0
		s.OnVersion = func() { called++ }

		res, err := s.Scan([]string{"prog", "--version"})
		require.NoError(t, err)
		require.Equal(t, 1, called)
		require.True(t, res.VersionShown())
	})

	t.Run("registered option shadows help", func(t *testing.T) {
		r := NewRegistry()
		opt, err := r.Register(0, "help", 0, nil, "custom help")
		require.NoError(t, err)

		s := NewScanner(r, ModeShortArg)
		s.OnHelp = func() { t.Fatal("hook must not run") }

		res, err := s.Scan([]string{"prog", "--help"})
		require.NoError(t, err)
		require.False(t, res.HelpShown())
		require.True(t, opt.Seen())
	})

	t.Run("no hook still short-circuits", func(t *testing.T) {
		r := NewRegistry()

		res, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "--version", "tail"})
		require.NoError(t, err)
		require.True(t, res.VersionShown())
		require.Empty(t, res.Args())
	})

	t.Run("terminator disables the shortcut", func(t *testing.T) {
		r := NewRegistry()

		res, err := NewScanner(r, ModeShortArg).Scan([]string{"prog", "--", "--help"})
		require.NoError(t, err)
		require.False(t, res.HelpShown())
		require.Equal(t, []string{"--help"}, res.Args())
	})
}

func TestScanReuse(t *testing.T) {
	t.Parallel()

	r, opts := newTestRegistry(t)
	s := NewScanner(r, ModeShortArg)

	res, err := s.Scan([]string{"prog", "--out=file.txt", "-v", "pos"})
	require.NoError(t, err)
	require.Equal(t, []string{"pos"}, res.Args())
	require.True(t, opts["verbose"].Seen())

	res, err = s.Scan([]string{"prog", "--all"})
	require.NoError(t, err)
	require.Empty(t, res.Args())

	// nothing leaks from the first scan
	require.False(t, opts["verbose"].Seen())
	require.False(t, opts["out"].Seen())
	_, bound := opts["out"].Arg()
	require.False(t, bound)
	require.True(t, opts["all"].Seen())
}

func TestScanErrorMessages(t *testing.T) {
	t.Parallel()

	require.Equal(t,
		"unrecognized command line option --bogus",
		(&ScanError{Kind: ErrUnrecognizedOption, Token: "--bogus"}).Error())
	require.Equal(t,
		"--out expects an argument",
		(&ScanError{Kind: ErrMissingArgument, Token: "--out"}).Error())
	require.Equal(t,
		"-a does not take arguments",
		(&ScanError{Kind: ErrUnexpectedArgument, Token: "-a"}).Error())
	require.Equal(t,
		"--quiet cannot be used together with --verbose",
		(&ScanError{Kind: ErrConflictingOptions, Token: "--quiet", Conflict: "--verbose"}).Error())
}
