package logging

import (
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New membuat logger yang menulis ke w (biasanya stderr); stdout tetap bersih untuk output utama.
// Verbose: console encoder level debug, selain itu JSON level info.
func New(w io.Writer, verbose bool) *zap.Logger {
	sink := zapcore.AddSync(w)
	if verbose {
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		core := zapcore.NewCore(enc, sink, zapcore.DebugLevel)
		return zap.New(core, zap.Development(), zap.AddCaller())
	}
	enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	return zap.New(zapcore.NewCore(enc, sink, zapcore.InfoLevel))
}
