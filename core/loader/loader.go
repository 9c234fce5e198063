package loader

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"csv-differ/core/record"
	"csv-differ/core/source"

	"go.uber.org/zap"
)

// 1 MB
const maxLineLength = 1 << 20

// cancellation is checked once per this many lines
const ctxCheckInterval = 4096

// DuplicatePolicy decides what happens when a key appears more than once.
type DuplicatePolicy string

const (
	// KeepLast replaces the earlier row with the later one.
	KeepLast DuplicatePolicy = "last"
	// KeepFirst ignores later rows with an already seen key.
	KeepFirst DuplicatePolicy = "first"
	// Reject fails the load on the first repeated key.
	Reject DuplicatePolicy = "error"
)

// ParseDuplicatePolicy validates a policy name. The empty string selects KeepLast.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	switch DuplicatePolicy(s) {
	case "", KeepLast:
		return KeepLast, nil
	case KeepFirst, Reject:
		return DuplicatePolicy(s), nil
	default:
		return "", fmt.Errorf("unknown duplicate policy %q (want %s, %s or %s)", s, KeepLast, KeepFirst, Reject)
	}
}

// Options controls how an input is indexed.
type Options struct {
	// Source names the input in errors and logs.
	Source string
	// KeyColumn is the 0-based position of the key field.
	KeyColumn int
	// Delimiter separates fields. Defaults to ",".
	Delimiter string
	// Duplicates selects the repeated-key policy. Defaults to KeepLast.
	Duplicates DuplicatePolicy
	// Logger receives skip warnings. May be nil.
	Logger *zap.Logger
}

// Stats counts what happened to the lines of one input.
type Stats struct {
	Lines      int `json:"lines"`
	Records    int `json:"records"`
	Undecoded  int `json:"undecoded"`
	Blank      int `json:"blank"`
	Duplicates int `json:"duplicates"`
}

// Load reads r to the end and indexes every row by its key column.
func Load(ctx context.Context, r io.Reader, opts Options) (record.Index, Stats, error) {
	if opts.Delimiter == "" {
		opts.Delimiter = ","
	}
	if opts.Duplicates == "" {
		opts.Duplicates = KeepLast
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.With(zap.String("source", opts.Source))

	var (
		stats     Stats
		index     = make(record.Index)
		firstSeen map[string]int
	)
	if opts.Duplicates == Reject {
		firstSeen = make(map[string]int)
	}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), maxLineLength)

	for s.Scan() {
		stats.Lines++
		if stats.Lines%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, stats, err
			}
		}

		raw := s.Bytes()
		if !utf8.Valid(raw) {
			stats.Undecoded++
			log.Warn("Skipping line that is not valid UTF-8", zap.Int("line", stats.Lines))
			continue
		}

		rec := record.Split(string(raw), opts.Delimiter)
		if len(rec) == 1 && rec[0] == "" {
			stats.Blank++
			continue
		}

		if opts.KeyColumn < 0 || opts.KeyColumn >= len(rec) {
			return nil, stats, &record.RecordError{
				Source: opts.Source,
				Line:   stats.Lines,
				Column: opts.KeyColumn + 1,
				Fields: len(rec),
			}
		}
		key := rec[opts.KeyColumn]

		if _, exists := index[key]; exists {
			stats.Duplicates++
			switch opts.Duplicates {
			case KeepFirst:
				continue
			case Reject:
				return nil, stats, &record.DuplicateKeyError{
					Source:    opts.Source,
					Key:       key,
					Line:      stats.Lines,
					FirstLine: firstSeen[key],
				}
			}
		} else if firstSeen != nil {
			firstSeen[key] = stats.Lines
		}

		index[key] = rec
	}
	if err := s.Err(); err != nil {
		return nil, stats, fmt.Errorf("failed to read %s at line %d: %w", opts.Source, stats.Lines+1, err)
	}

	stats.Records = len(index)
	if stats.Duplicates > 0 {
		log.Warn("Input contains repeated keys",
			zap.Int("duplicates", stats.Duplicates),
			zap.String("policy", string(opts.Duplicates)),
		)
	}

	return index, stats, nil
}

// LoadPath opens location through opener and indexes it with Load.
// opts.Source defaults to location.
func LoadPath(ctx context.Context, opener source.Opener, location string, opts Options) (record.Index, Stats, error) {
	rc, err := opener.Open(ctx, location)
	if err != nil {
		return nil, Stats{}, err
	}
	defer rc.Close()

	if opts.Source == "" {
		opts.Source = location
	}
	return Load(ctx, rc, opts)
}
