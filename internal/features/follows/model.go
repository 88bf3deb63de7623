package follows

import (
	"time"

	"github.com/google/uuid"
)

// Follow is one edge in the follow graph. The composite primary key
// doubles as the uniqueness guard for the toggle transaction.
type Follow struct {
	FollowerID  uuid.UUID `json:"followerId"  gorm:"type:uuid;primaryKey"`
	FollowingID uuid.UUID `json:"followingId" gorm:"type:uuid;primaryKey"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"not null"`
}

func (Follow) TableName() string {
	return "follows"
}
