package ports

import "goexchange/domain/university"

// Row is one spreadsheet row keyed by normalized column name. Values are
// raw cell text; parsing happens downstream.
type Row map[string]string

// Sheet is an extracted workbook: normalized headers, raw rows with
// merged cells already resolved, and filename-derived metadata.
type Sheet struct {
	Headers  []string
	Rows     []Row
	Metadata university.FileMetadata
}

// SheetReader extracts tabular data from a recruitment workbook.
type SheetReader interface {
	Read() (*Sheet, error)
}
