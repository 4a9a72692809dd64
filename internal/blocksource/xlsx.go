package blocksource

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dgallion1/chunklink/internal/document"
)

// xlsxBatchRows bounds how many rows land in one table block.
const xlsxBatchRows = 20

// XLSXSource handles .xlsx workbooks: each sheet becomes a heading block
// followed by row-batch table blocks.
type XLSXSource struct{}

func (s *XLSXSource) Blocks(r io.Reader, filename string) ([]document.RawBlock, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	out := newBlockList()
	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil || len(rows) == 0 {
			continue
		}

		out.add(sheet, "heading", 1)
		for start := 0; start < len(rows); start += xlsxBatchRows {
			end := start + xlsxBatchRows
			if end > len(rows) {
				end = len(rows)
			}
			var text strings.Builder
			for _, row := range rows[start:end] {
				text.WriteString("| " + strings.Join(row, " | ") + " |\n")
			}
			out.add(text.String(), "table", 0)
		}
	}
	return out.blocks, nil
}
