package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"
)

// newLogger builds the command logger. Verbose runs log at debug level to
// stderr; otherwise logging is off entirely.
func newLogger() hclog.Logger {
	if rootVerbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "chromat",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "chromat",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// logFlags dumps the effective flag values of fs at debug level.
func logFlags(log hclog.Logger, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			log.Debug("flag", "name", f.Name, "value", f.Value.String())
		}
	})
}
