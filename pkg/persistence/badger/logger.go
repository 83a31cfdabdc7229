package badger

import (
	"strings"

	badgerdb "github.com/dgraph-io/badger/v3"
	"go.uber.org/zap"
)

// commitmentStoreLogger routes badger's printf-style output into zap.
// Badger info lines (compactions, value log replay) are logged at debug.
type commitmentStoreLogger struct {
	sugar *zap.SugaredLogger
}

var _ badgerdb.Logger = (*commitmentStoreLogger)(nil)

func newCommitmentStoreLogger(l *zap.Logger) *commitmentStoreLogger {
	return &commitmentStoreLogger{sugar: l.Named("badger").Sugar()}
}

func (b *commitmentStoreLogger) Errorf(format string, args ...interface{}) {
	b.sugar.Errorf(trimNewline(format), args...)
}

func (b *commitmentStoreLogger) Warningf(format string, args ...interface{}) {
	b.sugar.Warnf(trimNewline(format), args...)
}

func (b *commitmentStoreLogger) Infof(format string, args ...interface{}) {
	b.sugar.Debugf(trimNewline(format), args...)
}

func (b *commitmentStoreLogger) Debugf(format string, args ...interface{}) {
	b.sugar.Debugf(trimNewline(format), args...)
}

// badger terminates most formats with a newline
func trimNewline(format string) string {
	return strings.TrimSuffix(format, "\n")
}
