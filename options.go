package fsstat

// Options configures a stat query.
type Options struct {
	// BigInt requests arbitrary-precision numeric fields. It is not
	// supported: setting it makes the query fail before any I/O.
	BigInt bool `json:"bigint" yaml:"bigint" mapstructure:"bigint"`
}

// Callback receives the outcome of an asynchronous query. On success err is
// nil and stats is set; on failure stats is nil.
type Callback func(err error, stats *Stats)

func checkOptions(opts ...Options) error {
	for _, o := range opts {
		if o.BigInt {
			return notImplemented("stat with options `{ bigint: true }` is not supported")
		}
	}
	return nil
}
