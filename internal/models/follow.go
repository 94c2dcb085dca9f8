package models

import "time"

// Follow is a directed edge between two users: the follower receives the
// followee's messages in their feed. The pair forms the composite identity,
// so a given (follower, followee) edge cannot be duplicated. Self-follows
// are rejected by the service layer, not by the schema.
type Follow struct {
	FolloweeID uint      `gorm:"column:user_being_followed_id;primaryKey" json:"user_being_followed_id"`
	FollowerID uint      `gorm:"column:user_following_id;primaryKey" json:"user_following_id"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Followee User `gorm:"foreignKey:FolloweeID;constraint:OnDelete:CASCADE" json:"-"`
	Follower User `gorm:"foreignKey:FollowerID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName keeps the historical table name for the follow edge.
func (Follow) TableName() string {
	return "follows"
}
