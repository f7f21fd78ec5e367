// Package logging wraps uber/zap for the server and the command line tool.
//
// Production mode writes JSON lines; development mode writes colored console
// lines with stack traces on errors. Both start from zap's own presets.
//
//	logger := logging.NewFromSettings("info", false)
//	execLog := logger.Named("registry").With(zap.String("tool", "umath.divide"))
//	execLog.Debug("executed")
package logging
