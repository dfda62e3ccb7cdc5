package models

// Status is the completion state of a to-do item. Any value may follow any
// other; the known values below are what clients are expected to send.
type Status string

const (
	StatusNew        Status = "NEW"
	StatusInProgress Status = "IN_PROGRESS"
	StatusDone       Status = "DONE"
)

// DefaultStatus is assigned to every item on creation.
const DefaultStatus = StatusNew

type ToDoItem struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Description string `gorm:"not null" json:"description"`
	Status      Status `gorm:"column:to_do_status;not null;default:NEW" json:"to_do_status"`
}

func (ToDoItem) TableName() string {
	return "to_do_items"
}
