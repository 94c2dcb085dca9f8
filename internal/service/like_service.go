package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/repository"
)

// LikeService provides like-toggle business logic.
type LikeService struct {
	messageRepo repository.MessageRepository
}

// NewLikeService returns a new LikeService.
func NewLikeService(messageRepo repository.MessageRepository) *LikeService {
	return &LikeService{messageRepo: messageRepo}
}

// Toggle flips the like state of a message for the user and reports the
// resulting state. Toggling twice restores the original state.
func (s *LikeService) Toggle(ctx context.Context, userID, messageID uint) (liked bool, err error) {
	if _, err := s.messageRepo.GetByID(ctx, messageID, 0); err != nil {
		if models.ErrorCode(err) == models.CodeNotFound {
			return false, models.NewReferentialError("Message does not exist")
		}
		return false, err
	}

	isLiked, err := s.messageRepo.IsLiked(ctx, userID, messageID)
	if err != nil {
		return false, err
	}

	if isLiked {
		if err := s.messageRepo.Unlike(ctx, userID, messageID); err != nil {
			return false, err
		}
		return false, nil
	}

	if err := s.messageRepo.Like(ctx, userID, messageID); err != nil {
		return false, err
	}
	return true, nil
}

// IsLiked reports whether the user currently likes the message.
func (s *LikeService) IsLiked(ctx context.Context, userID, messageID uint) (bool, error) {
	return s.messageRepo.IsLiked(ctx, userID, messageID)
}

// CountLikes returns how many users like the message.
func (s *LikeService) CountLikes(ctx context.Context, messageID uint) (int64, error) {
	return s.messageRepo.CountLikes(ctx, messageID)
}
