package jpeg

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Option configures a Decoder constructed by NewDecoder.
type Option func(*Decoder)

// WithLogger attaches a logrus.Logger the Decoder uses for debug-level
// diagnostic output (start of image, a summary of the parsed headers,
// end of image). If not supplied, the Decoder logs nothing.
func WithLogger(log *logrus.Logger) Option {
	return func(d *Decoder) {
		d.log = log
	}
}

func nopLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
