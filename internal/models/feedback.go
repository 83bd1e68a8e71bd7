package models

import "time"

type Feedback struct {
	ID        string
	Email     string
	Comment   string
	Rating    int // 1-5
	Category  string
	CreatedAt time.Time
}
