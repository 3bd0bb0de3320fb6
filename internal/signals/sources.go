package signals

import "github.com/charliek/sigtab/internal/domain"

// LinuxSymbols follows /usr/include/bits/signum.h
var LinuxSymbols = []string{
	"SIGHUP",
	"SIGINT",
	"SIGQUIT",
	"SIGILL",
	"SIGTRAP",
	"SIGABRT",
	"SIGIOT",
	"SIGBUS",
	"SIGFPE",
	"SIGKILL",
	"SIGUSR1",
	"SIGSEGV",
	"SIGUSR2",
	"SIGPIPE",
	"SIGALRM",
	"SIGTERM",
	"SIGSTKFLT",
	"SIGCLD",
	"SIGCHLD",
	"SIGCONT",
	"SIGSTOP",
	"SIGTSTP",
	"SIGTTIN",
	"SIGTTOU",
	"SIGURG",
	"SIGXCPU",
	"SIGXFSZ",
	"SIGVTALRM",
	"SIGPROF",
	"SIGWINCH",
	"SIGPOLL",
	"SIGIO",
	"SIGPWR",
	"SIGSYS",
}

// DarwinSymbols follows /include/sys/signal.h on macOS
var DarwinSymbols = []string{
	"SIGHUP",
	"SIGINT",
	"SIGQUIT",
	"SIGILL",
	"SIGTRAP",
	"SIGABRT",
	"SIGPOLL",
	"SIGIOT",
	"SIGEMT",
	"SIGFPE",
	"SIGKILL",
	"SIGBUS",
	"SIGSEGV",
	"SIGSYS",
	"SIGPIPE",
	"SIGALRM",
	"SIGTERM",
	"SIGURG",
	"SIGSTOP",
	"SIGTSTP",
	"SIGCONT",
	"SIGCHLD",
	"SIGTTIN",
	"SIGTTOU",
	"SIGIO",
	"SIGXCPU",
	"SIGXFSZ",
	"SIGVTALRM",
	"SIGPROF",
	"SIGWINCH",
	"SIGINFO",
	"SIGUSR1",
	"SIGUSR2",
}

// DefaultSources returns the built-in platform lists in concatenation order.
// The slices are copies so callers may modify them.
func DefaultSources() []domain.Source {
	return []domain.Source{
		{
			Name:    "linux",
			Header:  "/usr/include/bits/signum.h",
			Symbols: append([]string(nil), LinuxSymbols...),
		},
		{
			Name:    "darwin",
			Header:  "/include/sys/signal.h",
			Symbols: append([]string(nil), DarwinSymbols...),
		},
	}
}
