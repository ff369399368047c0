package models

// TicketModel is the row shape of a ticket. The assignee column is only
// meaningful when status is "assigned".
type TicketModel struct {
	ID          string  `gorm:"primaryKey;size:36"`
	Title       string  `gorm:"size:100;not null"`
	Description string  `gorm:"size:200;not null"`
	Status      string  `gorm:"size:20;not null;index"`
	Assignee    *string `gorm:"size:36;index"`
	Version     int64   `gorm:"not null;default:0"`
	CreatedAt   int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt   int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketModel) TableName() string {
	return "tickets"
}
