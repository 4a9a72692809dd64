package blocksource

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/chunklink/internal/document"
)

// csvBatchRows groups data rows into manageable table blocks.
const csvBatchRows = 20

// CSVSource handles CSV files: the header is repeated into each row batch so
// every table block stands alone.
type CSVSource struct{}

func (s *CSVSource) Blocks(r io.Reader, filename string) ([]document.RawBlock, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	headers := records[0]
	dataRows := records[1:]

	out := newBlockList()
	for start := 0; start < len(dataRows); start += csvBatchRows {
		end := start + csvBatchRows
		if end > len(dataRows) {
			end = len(dataRows)
		}

		var text strings.Builder
		text.WriteString("Headers: " + strings.Join(headers, ", ") + "\n")
		for _, row := range dataRows[start:end] {
			for j, cell := range row {
				if j < len(headers) {
					text.WriteString(headers[j] + ": " + cell)
				} else {
					text.WriteString(cell)
				}
				if j < len(row)-1 {
					text.WriteString(", ")
				}
			}
			text.WriteString("\n")
		}
		out.add(text.String(), "table", 0)
	}
	return out.blocks, nil
}
