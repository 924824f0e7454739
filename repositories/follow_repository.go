package repositories

import (
	"conduit-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository interface {
	Create(follow *models.Follow) error
	Delete(followerID, followeeID uint) error
	Exists(followerID, followeeID uint) (bool, error)
	FolloweeIDs(followerID uint) ([]uint, error)
	FollowedSet(followerID uint, followeeIDs []uint) ([]uint, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts the edge; a concurrent duplicate insert is absorbed by the
// composite unique index rather than raised as an error.
func (r *followRepository) Create(follow *models.Follow) error {
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(follow).Error
}

func (r *followRepository) Delete(followerID, followeeID uint) error {
	return r.db.Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error
}

func (r *followRepository) Exists(followerID, followeeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *followRepository) FolloweeIDs(followerID uint) ([]uint, error) {
	var ids []uint
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("followee_id", &ids).Error
	return ids, err
}

// FollowedSet returns which of the given users the follower follows, as a
// single batched query over the candidate set.
func (r *followRepository) FollowedSet(followerID uint, followeeIDs []uint) ([]uint, error) {
	if followerID == 0 || len(followeeIDs) == 0 {
		return nil, nil
	}

	var ids []uint
	err := r.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id IN ?", followerID, followeeIDs).
		Pluck("followee_id", &ids).Error
	return ids, err
}
