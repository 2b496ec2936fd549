package datesort

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

var (
	parsers map[string]FrontMatterParser
)

// DateList is the content of a date file.
type DateList struct {
	Title string
	Dates CalendarDateList
}

type FrontMatter struct {
	Title string         `yaml:"title"`
	Dates []CalendarDate `yaml:"dates"`
}

type FrontMatterParser interface {
	Parse(raw []byte) (*FrontMatter, error)
}

type YAMLFrontMatterParser struct{}

func (p *YAMLFrontMatterParser) Parse(raw []byte) (*FrontMatter, error) {
	meta := new(FrontMatter)
	err := yaml.Unmarshal(raw, meta)
	if err != nil {
		return nil, err
	}

	return meta, nil
}

func ReadDateList(filename string) (*DateList, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	dl, err := ParseDateList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return dl, nil
}

// ParseDateList reads an optional front matter block followed by one
// YYYY-MM-DD date per line. Blank lines and lines starting with '#' are
// skipped.
func ParseDateList(r io.Reader) (*DateList, error) {
	s := bufio.NewScanner(r)
	dl := &DateList{}
	lineno := 0

	next := func() (string, bool) {
		if !s.Scan() {
			return "", false
		}
		lineno++
		return strings.TrimRight(s.Text(), "\r"), true
	}

	line, ok := next()
	if !ok {
		return dl, s.Err()
	}

	delimiter := strings.TrimSpace(line)
	if parser, found := parsers[delimiter]; found {
		var buf bytes.Buffer
		start := lineno
		closed := false
		for {
			line, ok = next()
			if !ok {
				break
			}

			if strings.TrimSpace(line) == delimiter {
				closed = true
				break
			}

			buf.WriteString(line)
			buf.WriteByte('\n')
		}

		if err := s.Err(); err != nil {
			return nil, err
		}

		if !closed {
			return nil, fmt.Errorf("line %d: unterminated front matter", start)
		}

		fm, err := parser.Parse(buf.Bytes())
		if err != nil {
			return nil, fmt.Errorf("front matter: %w", err)
		}

		dl.Title = fm.Title
		dl.Dates = append(dl.Dates, fm.Dates...)
		line, ok = next()
	}

	for ; ok; line, ok = next() {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		d, err := ParseCalendarDate(line)
		if err != nil {
			// A failed read ends the input mid-line.
			if rerr := s.Err(); rerr != nil {
				return nil, rerr
			}
			return nil, fmt.Errorf("line %d: %w", lineno, err)
		}

		dl.Dates = append(dl.Dates, d)
	}

	return dl, s.Err()
}

func init() {
	parsers = map[string]FrontMatterParser{
		"---": &YAMLFrontMatterParser{},
	}
}
