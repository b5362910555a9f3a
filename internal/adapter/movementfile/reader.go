// Package movementfile reads movement histories from CSV files with the
// columns operation,amount,label.
package movementfile

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/iho/walletledger/internal/usecase"
)

// ErrMalformedRow is returned for rows that do not have two or three columns.
var ErrMalformedRow = errors.New("malformed movement row")

var header = []string{"operation", "amount", "label"}

// Read parses every movement in r, preserving file order. A first row equal
// to the header is skipped; lines starting with '#' are comments.
func Read(r io.Reader) ([]usecase.MovementInput, error) {
	reader := csv.NewReader(r)
	reader.Comment = '#'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	var movements []usecase.MovementInput
	for row := 0; ; row++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading movements: %w", err)
		}

		if row == 0 && isHeader(record) {
			continue
		}

		if len(record) < 2 || len(record) > 3 {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("%w: line %d has %d columns", ErrMalformedRow, line, len(record))
		}

		m := usecase.MovementInput{
			Operation: strings.TrimSpace(record[0]),
			Amount:    strings.TrimSpace(record[1]),
		}
		if len(record) == 3 {
			m.Label = strings.TrimSpace(record[2])
		}
		movements = append(movements, m)
	}

	return movements, nil
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string) ([]usecase.MovementInput, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Read(f)
}

func isHeader(record []string) bool {
	if len(record) > len(header) {
		return false
	}
	for i, field := range record {
		if !strings.EqualFold(strings.TrimSpace(field), header[i]) {
			return false
		}
	}
	return true
}
