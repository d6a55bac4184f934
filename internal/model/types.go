package model

// Config is the resolved run configuration. It is built once in main and
// passed down explicitly.
type Config struct {
	URL          string   `json:"-"`
	LogLevel     LogLevel `json:"logLevel,omitempty"`
	DownloadSubs bool     `json:"dlSubs,omitempty"`
	DryRun       bool     `json:"-"`
	HLSInfo      bool     `json:"hlsInfo,omitempty"`
	APILogPath   string   `json:"apiLogPath,omitempty"`
}

// Args holds CLI arguments parsed by go-arg.
type Args struct {
	URL     string `arg:"positional,required" placeholder:"URL" help:"jupiter.err.ee URL to download from"`
	Verbose bool   `arg:"-v,--verbose" help:"enable verbose (debug) logging"`
	Quiet   bool   `arg:"-q,--quiet" help:"enable silent mode (log only warnings)"`
	DlSubs  bool   `arg:"--dl-subs" help:"download subtitles as well"`
	DryRun  bool   `arg:"--dry-run" help:"do not download media and do not write anything to disk (no-op mode)"`
	HLSInfo bool   `arg:"--hls-info" help:"log the renditions advertised by each media's HLS manifest"`
	APILog  string `arg:"--api-log" placeholder:"PATH" help:"append a JSON line per HTTP request to PATH"`
}

// Description provides the help header for go-arg.
func (Args) Description() string {
	return "download media from ERR's online streaming service Jupiter\n"
}

// Version is reported by --version.
func (Args) Version() string {
	return "jupiter-dl " + Version
}

// Version is overridden at build time with -ldflags "-X".
var Version = "dev"
