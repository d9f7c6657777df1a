package model

// Field is one editable column of an entity. Label is what the console
// shows next to the input; Name is the column in the store.
type Field struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// Entity describes one record module: its path segment, backing table and
// the editable fields (id is always store-assigned and never listed here).
// The whole CRUD surface is driven by these descriptions — there is no
// per-entity handler code.
type Entity struct {
	Name   string  `json:"name"`
	Table  string  `json:"-"`
	Title  string  `json:"title"`
	Fields []Field `json:"fields"`
}

// Columns returns the field names in declaration order.
func (e Entity) Columns() []string {
	cols := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		cols[i] = f.Name
	}
	return cols
}

// HasField reports whether name is one of the entity's editable columns.
func (e Entity) HasField(name string) bool {
	for _, f := range e.Fields {
		if f.Name == name {
			return true
		}
	}
	return false
}

// registry lists the seven record modules in sidebar order.
var registry = []Entity{
	{
		Name:  "students",
		Table: "students",
		Title: "Students Management",
		Fields: []Field{
			{Name: "name", Label: "Name"},
			{Name: "class", Label: "Class"},
			{Name: "age", Label: "Age"},
		},
	},
	{
		Name:  "teachers",
		Table: "teachers",
		Title: "Teachers Management",
		Fields: []Field{
			{Name: "name", Label: "Name"},
			{Name: "subject", Label: "Subject"},
		},
	},
	{
		Name:  "attendance",
		Table: "attendance",
		Title: "Attendance Management",
		Fields: []Field{
			{Name: "student_id", Label: "Student ID"},
			{Name: "date", Label: "Date"},
			{Name: "status", Label: "Status"},
		},
	},
	{
		Name:  "fees",
		Table: "fees",
		Title: "Fees Management",
		Fields: []Field{
			{Name: "student_id", Label: "Student ID"},
			{Name: "amount", Label: "Amount"},
			{Name: "paid", Label: "Paid (1=Yes, 0=No)"},
		},
	},
	{
		Name:  "exams",
		Table: "exams",
		Title: "Exams & Marks",
		Fields: []Field{
			{Name: "student_id", Label: "Student ID"},
			{Name: "subject", Label: "Subject"},
			{Name: "marks", Label: "Marks"},
		},
	},
	{
		Name:  "library",
		Table: "library",
		Title: "Library Management",
		Fields: []Field{
			{Name: "book", Label: "Book Title"},
			{Name: "student_id", Label: "Student ID"},
			{Name: "issue_date", Label: "Issue Date (YYYY-MM-DD)"},
		},
	},
	{
		Name:  "timetable",
		Table: "timetable",
		Title: "Timetable Management",
		Fields: []Field{
			{Name: "class", Label: "Class"},
			{Name: "day", Label: "Day"},
			{Name: "subject", Label: "Subject"},
			{Name: "teacher", Label: "Teacher"},
		},
	},
}

// Entities returns the record modules in sidebar order.
func Entities() []Entity {
	return registry
}

// EntityByName resolves a module path segment to its entity description.
func EntityByName(name string) (Entity, bool) {
	for _, e := range registry {
		if e.Name == name {
			return e, true
		}
	}
	return Entity{}, false
}
