// Package dirs provides platform-aware folder resolution for applications.
// Each platform (darwin, linux, windows) has its own implementation that
// follows the platform's conventions for configuration, data, cache, and
// log storage.
package dirs

// Dirs holds the resolved per-application directories. Resolution is pure
// path construction; none of the directories are created.
type Dirs struct {
	Home   string // user home directory
	Config string // configuration files
	Data   string // application data
	Cache  string // disposable cached state
	Logs   string // log files
	Temp   string // scratch space
}
