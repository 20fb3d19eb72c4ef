package domain

// Review is one user/course interaction from the sampled review log.
// Identifiers are kept as strings; comparison against mapped keys is
// string-compared on purpose.
type Review struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	UserID   string `gorm:"column:user_id;not null" json:"user_id"`
	CourseID string `gorm:"column:course_id;not null" json:"course_id"`
	Rating   float64 `gorm:"column:rating" json:"rating,omitempty"`
}

func (Review) TableName() string {
	return "reviews"
}
