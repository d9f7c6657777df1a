package model

// Table is a full snapshot of one store table: column names in table
// definition order plus every row as an ordered cell slice. Views render
// it as-is; search filters it in memory.
type Table struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// AttendanceStatus values accepted by the mark action's dropdown. The store
// itself accepts any text for status.
const (
	AttendancePresent = "Present"
	AttendanceAbsent  = "Absent"
)

// MarkAttendanceRequest is the payload for the specialized mark action.
// Values are free text on purpose; nothing checks that student_id exists.
type MarkAttendanceRequest struct {
	StudentID string `json:"student_id"`
	Status    string `json:"status"`
}
