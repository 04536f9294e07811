package room

type GenderRestriction string

const (
	GenderMale   GenderRestriction = "male"
	GenderFemale GenderRestriction = "female"
	GenderMixed  GenderRestriction = "mixed"
)

type Status string

const (
	StatusVacant      Status = "vacant"
	StatusOccupied    Status = "occupied"
	StatusMaintenance Status = "maintenance"
)

type Room struct {
	ID               uint              `gorm:"primaryKey;column:roomid" json:"room_id"`
	Block            string            `gorm:"size:10;not null;index:idx_rooms_block_number" json:"block"`
	Number           string            `gorm:"column:roomnumber;size:10;not null;index:idx_rooms_block_number" json:"number"`
	Floor            int               `json:"floor"`
	Capacity         int               `gorm:"not null" json:"capacity"`
	CurrentOccupancy int               `gorm:"not null;default:0" json:"current_occupancy"`
	MonthlyRent      float64           `gorm:"not null" json:"monthly_rent"`
	Gender           GenderRestriction `gorm:"size:10;default:'mixed'" json:"gender"`
	Status           Status            `gorm:"size:20;default:'vacant'" json:"status"`
	Amenities        string            `gorm:"type:text" json:"amenities"`
}

func (Room) TableName() string { return "rooms" }

// Available reports whether the room can take a new allocation request.
// Occupancy itself only changes through a committed allocation transition.
func (r *Room) Available() bool {
	return r.CurrentOccupancy < r.Capacity && r.Status != StatusMaintenance
}

// Accepts reports whether a resident of the given gender may live here.
func (r *Room) Accepts(gender string) bool {
	return r.Gender == GenderMixed || string(r.Gender) == gender
}

// Label is the human-readable room name used in notifications, e.g. "A-101".
func (r *Room) Label() string { return r.Block + "-" + r.Number }
