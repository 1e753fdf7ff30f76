package authorsfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	clog "github.com/charmbracelet/log"
	"github.com/jmcampanini/authorcheck/internal/authorset"
	"github.com/jmcampanini/authorcheck/internal/people"
)

// DefaultFileName is the conventional name of the file listing credited contributors.
const DefaultFileName = "AUTHORS"

// ErrUnreadable matches any UnreadableError via errors.Is.
var ErrUnreadable = errors.New("authors file unreadable")

// UnreadableError reports that the authors file is missing or cannot be opened.
type UnreadableError struct {
	Path string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("Cannot read %s.", e.Path)
}

func (e *UnreadableError) Unwrap() error { return e.Err }

func (e *UnreadableError) Is(target error) bool { return target == ErrUnreadable }

// Reader reads the authors file from a directory.
type Reader struct {
	fileName string
	log      *clog.Logger
}

// NewReader creates a Reader for the given file name.
// An empty name falls back to DefaultFileName.
func NewReader(fileName string) *Reader {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return &Reader{
		fileName: fileName,
		log:      clog.Default().WithPrefix("authors"),
	}
}

// Path returns the location of the authors file inside dir.
func (r *Reader) Path(dir string) string {
	return filepath.Join(dir, r.fileName)
}

// Read returns the unique author names declared in dir's authors file,
// in order of first appearance.
func (r *Reader) Read(dir string) ([]string, error) {
	entries, err := r.ReadEntries(dir)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(entries))
	for i, entry := range entries {
		names[i] = entry.Name
	}
	return names, nil
}

// ReadEntries returns the parsed entries of dir's authors file, one per unique name.
// Comment lines, unparseable lines and entries without a name are skipped.
func (r *Reader) ReadEntries(dir string) ([]people.Person, error) {
	path := r.Path(dir)

	content, err := r.readFile(path)
	if err != nil {
		return nil, err
	}

	entries := parseEntries(content)
	r.log.Debug("Read authors file", "path", path, "authors", len(entries))
	return entries, nil
}

func (r *Reader) readFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		r.log.Debug("Authors file not readable", "path", path, "error", err)
		return "", &UnreadableError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return "", &UnreadableError{Path: path, Err: err}
	}
	if info.IsDir() {
		return "", &UnreadableError{Path: path, Err: fmt.Errorf("%s is a directory", path)}
	}

	data, err := io.ReadAll(f)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

func parseEntries(content string) []people.Person {
	var seen authorset.Set
	entries := []people.Person{}

	for _, line := range strings.Split(content, "\n") {
		if isComment(line) {
			continue
		}
		person, ok := people.Parse(line)
		if !ok || person.Name == "" {
			continue
		}
		if seen.Add(person.Name) {
			entries = append(entries, person)
		}
	}

	return entries
}

// isComment reports whether the first non-whitespace character of line is '#'.
func isComment(line string) bool {
	return strings.HasPrefix(strings.TrimLeftFunc(line, unicode.IsSpace), "#")
}
