package config

type (
	RequestLine struct {
		// BufferPrealloc is the initial size of the buffer stashing an
		// incomplete request line between feedings.
		BufferPrealloc int
		// MaxLength bounds the request line (excluding the trailing LF).
		// Exceeding it before the line terminator arrives is fatal, as an
		// unbounded search for it enables memory-exhaustion attacks.
		MaxLength int
	}

	Headers struct {
		// NumberPrealloc is the number of preallocated seats in the headers
		// storage.
		NumberPrealloc int
		// MaxNumber limits how many header fields a single request may
		// carry. Trailer fields of a chunked body count against the same
		// limit.
		MaxNumber int
		// MaxFieldLength limits a single field line (name, colon and value,
		// excluding the trailing LF).
		MaxFieldLength int
		// MaxSectionLength limits the cumulative size of all field lines,
		// trailers included.
		MaxSectionLength int
		// BufferPrealloc is the initial size of the headers section buffer.
		BufferPrealloc int
	}

	Body struct {
		// MaxSize limits the body length: the Content-Length value for
		// plain bodies, the cumulative decoded length for chunked ones.
		MaxSize int64
	}
)

// Config holds restrictions and pre-allocations of a single parser instance.
// Every limit is enforced incrementally, before the offending bytes are
// buffered, never by truncation after the fact.
type Config struct {
	RequestLine RequestLine
	Headers     Headers
	Body        Body
}

// Default returns a well-balanced default config. Modify the returned value
// instead of constructing Config manually, or use Fill to complete a
// partially specified one.
func Default() *Config {
	return &Config{
		RequestLine: RequestLine{
			BufferPrealloc: 1 * 1024,
			// most web-entities limit the request line to 4-8kb, so being
			// a bit more tolerant here costs nothing.
			MaxLength: 16 * 1024,
		},
		Headers: Headers{
			NumberPrealloc:   10,
			MaxNumber:        50,
			MaxFieldLength:   8 * 1024, // there might be extremely long cookies
			MaxSectionLength: 16 * 1024,
			BufferPrealloc:   1 * 1024,
		},
		Body: Body{
			MaxSize: 512 * 1024 * 1024, // 512 megabytes
		},
	}
}

// Fill completes cfg by inheriting every unset (zero) field from Default.
func Fill(cfg Config) *Config {
	defaults := Default()

	if cfg.RequestLine.BufferPrealloc == 0 {
		cfg.RequestLine.BufferPrealloc = defaults.RequestLine.BufferPrealloc
	}
	if cfg.RequestLine.MaxLength == 0 {
		cfg.RequestLine.MaxLength = defaults.RequestLine.MaxLength
	}
	if cfg.Headers.NumberPrealloc == 0 {
		cfg.Headers.NumberPrealloc = defaults.Headers.NumberPrealloc
	}
	if cfg.Headers.MaxNumber == 0 {
		cfg.Headers.MaxNumber = defaults.Headers.MaxNumber
	}
	if cfg.Headers.MaxFieldLength == 0 {
		cfg.Headers.MaxFieldLength = defaults.Headers.MaxFieldLength
	}
	if cfg.Headers.MaxSectionLength == 0 {
		cfg.Headers.MaxSectionLength = defaults.Headers.MaxSectionLength
	}
	if cfg.Headers.BufferPrealloc == 0 {
		cfg.Headers.BufferPrealloc = defaults.Headers.BufferPrealloc
	}
	if cfg.Body.MaxSize == 0 {
		cfg.Body.MaxSize = defaults.Body.MaxSize
	}

	// preallocating beyond the limit makes no sense
	if cfg.RequestLine.BufferPrealloc > cfg.RequestLine.MaxLength {
		cfg.RequestLine.BufferPrealloc = cfg.RequestLine.MaxLength
	}
	if cfg.Headers.BufferPrealloc > cfg.Headers.MaxSectionLength {
		cfg.Headers.BufferPrealloc = cfg.Headers.MaxSectionLength
	}

	return &cfg
}
