package driver

// DefaultMaxDiagnostics is used when Options.MaxDiagnostics is not positive.
const DefaultMaxDiagnostics = 100

// SourceExt is the extension ParseDir looks for.
const SourceExt = ".fx"

// Options configure Tokenize, Parse and ParseDir.
type Options struct {
	MaxDiagnostics int
	// Jobs ограничивает число параллельных разборов в ParseDir; 0 - GOMAXPROCS.
	Jobs int
	// Cache - необязательный дисковый кэш результатов разбора.
	Cache *DiskCache
	// Timings включает сбор фаз в observ.Timer.
	Timings  bool
	Progress ProgressSink
}

func (o Options) maxDiagnostics() int {
	if o.MaxDiagnostics <= 0 {
		return DefaultMaxDiagnostics
	}
	return o.MaxDiagnostics
}
