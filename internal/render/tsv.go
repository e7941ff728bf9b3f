package render

import (
	"bufio"
	"fmt"
	"io"

	"github.com/joe/etree/internal/tree"
)

const (
	// utf8BOM signals UTF-8 encoding to spreadsheet applications.
	utf8BOM = "\xEF\xBB\xBF"

	tsvHeader = "Relative Path\tName\tType\tSize (bytes)\tCreated\tModified\tPermissions\n"
)

// WriteTSV serializes export records as a tab-separated table: a UTF-8
// byte-order mark, the fixed seven-column header, then one row per
// record in visit order.
//
// Fields are written as-is; records containing raw tabs or newlines
// would corrupt the table. Filesystems that allow such names are the
// caller's problem; quoting is skipped for spreadsheet compatibility.
func WriteTSV(w io.Writer, records []tree.ExportRecord) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString(utf8BOM); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	if _, err := bw.WriteString(tsvHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}

	for _, record := range records {
		_, err := fmt.Fprintf(bw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\n",
			record.RelPath, record.Name, record.Kind, record.Size,
			record.Created, record.Modified, record.Perms)
		if err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to flush export: %w", err)
	}

	return nil
}
