package repository

import "time"

// TapeEntry represents one recorded evaluation.
type TapeEntry struct {
	Seq       int64
	ID        string
	Left      string
	Operator  string
	Right     string
	Result    string
	Failed    bool
	CreatedAt time.Time
}
