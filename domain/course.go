package domain

// CREATE TABLE courses (
//     course_id    VARCHAR(64) PRIMARY KEY,
//     title        TEXT,
//     course_title TEXT,
//     category     TEXT,
//     price        NUMERIC,
//     level        TEXT,
//     language     TEXT,
//     source       TEXT,
//     data_source  TEXT
// );

// Course is one catalog row. Title and CourseTitle coexist because the
// catalog was merged from two exports that disagree on the column name;
// Price is a pointer so a missing value survives the round trip.
type Course struct {
	CourseID    string   `gorm:"column:course_id;primaryKey" json:"course_id"`
	Title       string   `gorm:"column:title;type:text" json:"title,omitempty"`
	CourseTitle string   `gorm:"column:course_title;type:text" json:"course_title,omitempty"`
	Category    string   `gorm:"column:category;type:text" json:"category,omitempty"`
	Price       *float64 `gorm:"column:price;type:numeric" json:"price,omitempty"`
	Level       string   `gorm:"column:level;type:text" json:"level,omitempty"`
	Language    string   `gorm:"column:language;type:text" json:"language,omitempty"`
	Source      string   `gorm:"column:source;type:text" json:"source,omitempty"`
	DataSource  string   `gorm:"column:data_source;type:text" json:"data_source,omitempty"`
}

func (Course) TableName() string {
	return "courses"
}

// DisplayTitle resolves the title column fallback chain.
func (c Course) DisplayTitle() string {
	if c.Title != "" {
		return c.Title
	}
	if c.CourseTitle != "" {
		return c.CourseTitle
	}
	return "Course " + c.CourseID
}
