package applog

// NoneLogger discards everything. It is the safe zero-value logger used in
// tests and anywhere a caller hasn't wired a real sink.
type NoneLogger struct{}

func (NoneLogger) Info(args ...any)                  {}
func (NoneLogger) Infof(format string, args ...any)  {}
func (NoneLogger) Warn(args ...any)                  {}
func (NoneLogger) Warnf(format string, args ...any)  {}
func (NoneLogger) Error(args ...any)                 {}
func (NoneLogger) Errorf(format string, args ...any) {}
func (NoneLogger) Sync() error                       { return nil }
