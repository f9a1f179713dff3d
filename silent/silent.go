// Package silent reads Rosetta silent files.
//
// A silent file is a line-oriented text container for the decoys of a
// design or sampling run. The package only interprets the record
// structure (score table, decoy names, annotated sequences); everything
// else is carried as opaque text.
package silent

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/TuftsBCB/seq"
)

// ErrFormat reports silent-file content that could not be interpreted
// as a record table. I/O failures are returned unwrapped from it.
var ErrFormat = errors.New("malformed silent file")

// DescriptionColumn is the score column carrying the decoy name.
const DescriptionColumn = "description"

// A Decoy is one candidate design read from a silent file.
type Decoy struct {
	// Name is the decoy identifier from the description column,
	// assigned by the simulation tool. Unique within a file under
	// normal inputs, but duplicates are preserved as found.
	Name string

	// Scores holds the selected score columns, as written.
	Scores map[string]string

	// Sequence is the decoy's amino acid sequence from its
	// ANNOTATED_SEQUENCE line, with the bracketed residue
	// annotations stripped. Zero length when the file carries none.
	Sequence seq.Sequence
}

// A File is the record structure of one silent file, in file order.
type File struct {
	// Decoys in the order their SCORE: rows appear.
	Decoys []Decoy

	// ScoreColumns are the column names of the score table header,
	// without the leading "SCORE:" tag.
	ScoreColumns []string

	// Sequence is the file-level SEQUENCE: header, usually the
	// reference the run was started from.
	Sequence seq.Sequence
}

// Names returns the decoy identifiers in file order.
func (f *File) Names() []string {
	names := make([]string, len(f.Decoys))
	for i, d := range f.Decoys {
		names[i] = d.Name
	}
	return names
}

// A Selection restricts which score columns Read keeps per decoy.
// A nil or empty Scores keeps all of them. The description column is
// always read; it is where decoy names come from.
type Selection struct {
	Scores []string
}

func (s Selection) wants(column string) bool {
	if len(s.Scores) == 0 {
		return true
	}
	for _, want := range s.Scores {
		if want == column {
			return true
		}
	}
	return false
}

// Names returns the ordered decoy identifiers of the silent file at
// path. It is the minimal use of the parser: only the description
// column is materialized.
func Names(path string) ([]string, error) {
	f, err := Read(path, Selection{Scores: []string{DescriptionColumn}})
	if err != nil {
		return nil, err
	}
	return f.Names(), nil
}

// Read parses the silent file at path. Decoys are yielded in file
// order; no sorting is applied. A file with no SCORE: rows parses to
// zero decoys.
func Read(path string, sel Selection) (*File, error) {
	r, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	file := &File{}
	byName := make(map[string]int)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 1<<16), 1<<22)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.HasPrefix(line, "SEQUENCE:"):
			if file.Sequence.Len() == 0 {
				fields := strings.Fields(line[len("SEQUENCE:"):])
				if len(fields) > 0 {
					file.Sequence = newSequence("reference", fields[0])
				}
			}
		case strings.HasPrefix(line, "SCORE:"):
			fields := strings.Fields(line[len("SCORE:"):])
			if len(fields) == 0 {
				return nil, fmt.Errorf("%w: empty SCORE line in %s",
					ErrFormat, path)
			}
			if isHeader(fields) {
				if file.ScoreColumns == nil {
					file.ScoreColumns = fields
				}
				continue
			}
			if file.ScoreColumns == nil {
				return nil, fmt.Errorf(
					"%w: SCORE data before header in %s", ErrFormat, path)
			}
			d, err := readDecoy(file.ScoreColumns, fields, sel)
			if err != nil {
				return nil, fmt.Errorf("%w in %s", err, path)
			}
			byName[d.Name] = len(file.Decoys)
			file.Decoys = append(file.Decoys, d)
		case strings.HasPrefix(line, "ANNOTATED_SEQUENCE:"):
			fields := strings.Fields(line[len("ANNOTATED_SEQUENCE:"):])
			if len(fields) < 2 {
				continue
			}
			name := fields[len(fields)-1]
			if i, ok := byName[name]; ok {
				file.Decoys[i].Sequence = newSequence(
					name, stripAnnotations(fields[0]))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return file, nil
}

// isHeader distinguishes the score table header from data rows. Header
// rows repeat in concatenated silent files; any SCORE: row whose first
// field is not numeric is treated as one.
func isHeader(fields []string) bool {
	_, err := strconv.ParseFloat(fields[0], 64)
	return err != nil
}

func readDecoy(columns, fields []string, sel Selection) (Decoy, error) {
	descIdx := -1
	for i, col := range columns {
		if col == DescriptionColumn {
			descIdx = i
		}
	}
	if descIdx == -1 {
		return Decoy{}, fmt.Errorf("%w: no %s column",
			ErrFormat, DescriptionColumn)
	}
	if len(fields) != len(columns) {
		return Decoy{}, fmt.Errorf("%w: SCORE row has %d fields, header %d",
			ErrFormat, len(fields), len(columns))
	}

	d := Decoy{Name: fields[descIdx], Scores: make(map[string]string)}
	for i, col := range columns {
		if sel.wants(col) {
			d.Scores[col] = fields[i]
		}
	}
	return d, nil
}

// stripAnnotations removes the bracketed residue annotations from an
// annotated sequence, e.g. "M[MET:NtermProteinFull]KV" -> "MKV".
func stripAnnotations(annotated string) string {
	var b strings.Builder
	b.Grow(len(annotated))
	depth := 0
	for i := 0; i < len(annotated); i++ {
		switch annotated[i] {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		default:
			if depth == 0 {
				b.WriteByte(annotated[i])
			}
		}
	}
	return b.String()
}

func newSequence(name, residues string) seq.Sequence {
	rs := make([]seq.Residue, len(residues))
	for i := 0; i < len(residues); i++ {
		rs[i] = seq.Residue(residues[i])
	}
	return seq.Sequence{Name: name, Residues: rs}
}
