package builder

import "fmt"

// User-facing notification texts.
const (
	MsgCannotRemoveLast = "Cannot remove last row"
	MsgChartUpdated     = "Chart updated successfully!"
	MsgNeedData         = "Please add at least one complete data entry"
	MsgCompleteEntries  = "Please complete all data entries"
	MsgNoDataToApply    = "No data to apply"
	MsgCSVImported      = "CSV file imported"
	MsgDataReset        = "Data has been reset"
	MsgPNGDownloaded    = "Chart downloaded as PNG"
	MsgCSVDownloaded    = "Data downloaded as CSV"
)

func rowsImported(n int) string {
	return fmt.Sprintf("%d rows imported successfully", n)
}
