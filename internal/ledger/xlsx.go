package ledger

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

type xlsxRecords struct {
	f    *excelize.File
	rows *excelize.Rows
}

func openXLSX(path, sheet string) (*xlsxRecords, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			f.Close()
			return nil, fmt.Errorf("workbook %s has no sheets", path)
		}
		sheet = sheets[0]
	}
	rows, err := f.Rows(sheet)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("read sheet %q of %s: %w", sheet, path, err)
	}
	return &xlsxRecords{f: f, rows: rows}, nil
}

func (x *xlsxRecords) Next() ([]string, error) {
	if !x.rows.Next() {
		if err := x.rows.Error(); err != nil {
			return nil, err
		}
		return nil, io.EOF
	}
	return x.rows.Columns()
}

func (x *xlsxRecords) Close() error {
	x.rows.Close()
	return x.f.Close()
}
