package domain

// Course is a catalog course. It exists as a relation target for enrollments
// and marks; course administration itself is handled elsewhere.
type Course struct {
	BaseModel
	Title   string `gorm:"size:200;not null" json:"title"`
	Code    string `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Credits int    `gorm:"default:0" json:"credits"`
}
