package logger

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uilive"
	"github.com/optkit/optkit/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Out is the sink all log output goes through. When stdout is a
// terminal it wraps a uilive writer so output is flushed line by line.
var Out io.Writer

type liveWriter struct {
	out *uilive.Writer
}

func (w *liveWriter) Write(msg []byte) (int, error) {
	defer w.out.Flush()

	return w.out.Bypass().Write(msg)
}

func init() {
	setup(false)
}

func setup(debug bool) {
	cfg := zap.NewProductionConfig()

	cfg.Encoding = "console"
	cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	cfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05,000")
	cfg.EncoderConfig.ConsoleSeparator = " "
	cfg.EncoderConfig.StacktraceKey = ""
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	lvl := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if debug {
		lvl = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else {
		cfg.EncoderConfig.CallerKey = ""
		cfg.EncoderConfig.LevelKey = ""
		cfg.EncoderConfig.TimeKey = ""
	}

	Out = color.Output
	if constants.InTerm() {
		uilive.Out = Out
		Out = &liveWriter{out: uilive.New()}
	}

	logger := zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg.EncoderConfig),
		zapcore.AddSync(Out),
		lvl,
	))

	zap.ReplaceGlobals(logger)
}

func SetDebug(debug bool) {
	setup(debug)
}

var prefixColor = color.New(color.Bold, color.FgBlack)

func Debug(args ...any) {
	zap.S().Debugf("%s %s", prefixColor.Sprint(": "), color.MagentaString(fmt.Sprint(args...)))
}

func Debugf(format string, args ...any) {
	zap.S().Debugf("%s %s", prefixColor.Sprint(": "), color.MagentaString(format, args...))
}

func Info(args ...any) {
	zap.S().Infof("%s %s", prefixColor.Sprint(">"), color.WhiteString(fmt.Sprint(args...)))
}

func Infof(format string, args ...any) {
	zap.S().Infof("%s %s", prefixColor.Sprint(">"), color.WhiteString(format, args...))
}

func Warn(args ...any) {
	zap.S().Warnf("%s %s", prefixColor.Sprint("->"), color.YellowString(fmt.Sprint(args...)))
}

func Warnf(format string, args ...any) {
	zap.S().Warnf("%s %s", prefixColor.Sprint("->"), color.YellowString(format, args...))
}

func Error(args ...any) {
	zap.S().Errorf("%s %s", prefixColor.Sprint("=>"), color.RedString(fmt.Sprint(args...)))
}

func Errorf(format string, args ...any) {
	zap.S().Errorf("%s %s", prefixColor.Sprint("=>"), color.RedString(format, args...))
}

func Fatal(args ...any) {
	zap.S().Fatalf("%s %s", prefixColor.Sprint("=>"), color.RedString(fmt.Sprint(args...)))
}

func Fatalf(format string, args ...any) {
	zap.S().Fatalf("%s %s", prefixColor.Sprint("=>"), color.RedString(format, args...))
}
