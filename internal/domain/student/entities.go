package student

import "time"

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// Student is linked 1:1 to a student-role user account. Workflow operations
// reference students by id, never by a held object, so concurrent requests
// always re-read current state.
type Student struct {
	ID         uint      `gorm:"primaryKey;column:studentid" json:"student_id"`
	UserID     uint      `gorm:"column:userid;not null;uniqueIndex" json:"user_id"`
	RollNumber string    `gorm:"size:20;not null;uniqueIndex" json:"roll_number"`
	FullName   string    `gorm:"size:100;not null" json:"full_name"`
	Phone      string    `gorm:"size:15" json:"phone"`
	Gender     Gender    `gorm:"size:10" json:"gender"`
	Year       int       `json:"year"`
	Course     string    `gorm:"size:100" json:"course"`
	EnrolledAt time.Time `gorm:"column:enrollmentdate;autoCreateTime" json:"enrolled_at"`
}

func (Student) TableName() string { return "students" }
