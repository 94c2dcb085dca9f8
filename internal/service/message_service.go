package service

import (
	"context"

	"warbler/internal/models"
	"warbler/internal/observability"
	"warbler/internal/repository"
	"warbler/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

// MessageService provides message business logic.
type MessageService struct {
	messageRepo repository.MessageRepository
}

// NewMessageService returns a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository) *MessageService {
	return &MessageService{messageRepo: messageRepo}
}

// Create posts a new message owned by ownerID.
func (s *MessageService) Create(ctx context.Context, ownerID uint, text string) (*models.Message, error) {
	span, ctx := observability.NewSpan(ctx, "MessageService.Create")
	defer span.End()
	span.AddAttributes(attribute.Int("message.owner_id", int(ownerID)))

	if err := validation.ValidateMessageText(text); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	message := &models.Message{Text: text, UserID: ownerID}
	if err := s.messageRepo.Create(ctx, message); err != nil {
		span.SetError(err)
		return nil, err
	}

	// Reload so the response carries the owner and like details.
	return s.messageRepo.GetByID(ctx, message.ID, ownerID)
}

// Delete removes a message. Only the owner may delete it; a refusal leaves
// the message untouched.
func (s *MessageService) Delete(ctx context.Context, requesterID, messageID uint) error {
	message, err := s.messageRepo.GetByID(ctx, messageID, 0)
	if err != nil {
		return err
	}
	if message.UserID != requesterID {
		return models.NewUnauthorizedError()
	}
	return s.messageRepo.Delete(ctx, messageID)
}

func (s *MessageService) GetMessage(ctx context.Context, id, currentUserID uint) (*models.Message, error) {
	return s.messageRepo.GetByID(ctx, id, currentUserID)
}

func (s *MessageService) GetUserMessages(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]*models.Message, error) {
	return s.messageRepo.GetByUserID(ctx, userID, limit, offset, currentUserID)
}

// HomeFeed returns the newest messages from the user and everyone they follow.
func (s *MessageService) HomeFeed(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	span, ctx := observability.NewSpan(ctx, "MessageService.HomeFeed")
	defer span.End()
	span.AddAttributes(attribute.Int("feed.user_id", int(userID)))

	messages, err := s.messageRepo.HomeFeed(ctx, userID, limit, offset)
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	span.AddAttributes(attribute.Int("feed.size", len(messages)))
	return messages, nil
}

// LikedMessages returns the messages the user has liked, newest like first.
func (s *MessageService) LikedMessages(ctx context.Context, userID uint, limit, offset int) ([]*models.Message, error) {
	return s.messageRepo.LikedByUser(ctx, userID, limit, offset)
}
