package dataset

import (
	"bytes"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"io"
	"os"
	"strings"
	"time"

	"skill-insight/internal/domain/posting"

	"github.com/araddon/dateparse"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	ColumnJobTitle       = "job_title"
	ColumnPostingDate    = "posting_date"
	ColumnRequiredSkills = "required_skills"
)

var (
	ErrMissingColumn = errors.New("dataset: missing required column")
	ErrMalformedRow  = errors.New("dataset: malformed row")
	ErrEmpty         = errors.New("dataset: no header row")
)

type Loader struct {
	logger *zap.Logger
}

func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{logger: logger}
}

// Load reads the CSV file at path into a Table. Any failure is fatal for the
// caller: there is no partial table.
func (l *Loader) Load(path string) (*Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read dataset %q", path)
	}

	postings, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Wrapf(err, "parse dataset %q", path)
	}

	sum := sha256.Sum256(raw)
	t := NewTable(path, hex.EncodeToString(sum[:]), postings)

	l.logger.Info("dataset loaded",
		zap.String("path", path),
		zap.Int("postings", t.Len()),
		zap.String("fingerprint", t.Fingerprint[:12]),
	)
	return t, nil
}

// Parse decodes CSV postings. Columns are located by header name; extra
// columns are ignored.
func Parse(r io.Reader) ([]posting.Posting, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, errors.Wrap(err, "read header")
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	out := make([]posting.Posting, 0)
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedRow, "line %d: %v", line, err)
		}

		date, err := parseDate(rec[idx[ColumnPostingDate]])
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedRow, "line %d: posting_date: %v", line, err)
		}

		out = append(out, posting.New(
			strings.TrimSpace(rec[idx[ColumnJobTitle]]),
			date,
			rec[idx[ColumnRequiredSkills]],
		))
	}
	return out, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if _, ok := idx[h]; !ok {
			idx[h] = i
		}
	}

	var missing []string
	for _, c := range []string{ColumnJobTitle, ColumnPostingDate, ColumnRequiredSkills} {
		if _, ok := idx[c]; !ok {
			missing = append(missing, c)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Wrap(ErrMissingColumn, strings.Join(missing, ", "))
	}
	return idx, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("empty date")
	}
	return dateparse.ParseIn(s, time.UTC)
}
