package impl

import (
	"context"
	"time"

	"medremind/internal/domain/entity"
	"medremind/internal/domain/repository"
	"medremind/internal/domain/service"
	"medremind/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Firebase batch size limit
const pushBatchSize = 500

const reminderTitle = "Time for your medication"

type notificationService struct {
	deviceRepo repository.DeviceRepository
	pushSvc    service.PushService
}

// NewNotificationService creates a new notification dispatcher instance.
func NewNotificationService(
	deviceRepo repository.DeviceRepository,
	pushSvc service.PushService,
) usecase.NotificationUsecase {
	return &notificationService{
		deviceRepo: deviceRepo,
		pushSvc:    pushSvc,
	}
}

// SendMedicationReminder pushes a dose reminder to every device the user has
// registered. The returned result carries the tokens the gateway rejected as
// permanently invalid; deleting them is the caller's responsibility.
func (s *notificationService) SendMedicationReminder(
	ctx context.Context,
	userID uuid.UUID,
	medication *entity.Medication,
	scheduleID uuid.UUID,
	scheduledAt time.Time,
) (*usecase.DispatchResult, error) {
	data := map[string]string{
		"type":          "medication_reminder",
		"medication_id": medication.ID.String(),
		"schedule_id":   scheduleID.String(),
		"scheduled_at":  scheduledAt.Format(time.RFC3339),
	}

	return s.sendToUser(ctx, userID, reminderTitle, medication.ReminderBody(), data)
}

// SendTestNotification pushes a test message to the user's devices.
func (s *notificationService) SendTestNotification(ctx context.Context, userID uuid.UUID) (*usecase.DispatchResult, error) {
	data := map[string]string{"type": "test"}

	return s.sendToUser(ctx, userID, "Test Notification", "Push notifications are working correctly!", data)
}

func (s *notificationService) sendToUser(ctx context.Context, userID uuid.UUID, title, body string, data map[string]string) (*usecase.DispatchResult, error) {
	devices, err := s.deviceRepo.FindTokensByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve device tokens")
	}

	result := &usecase.DispatchResult{}

	// No registered devices means push is disabled for this user; a normal
	// zero-count outcome, not an error.
	if len(devices) == 0 {
		return result, nil
	}

	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		tokens = append(tokens, device.Token)
	}

	for i := 0; i < len(tokens); i += pushBatchSize {
		end := min(i+pushBatchSize, len(tokens))
		batch := tokens[i:end]

		successCount, failureCount, invalidTokens, err := s.pushSvc.SendMulticast(ctx, batch, title, body, data)
		if err != nil {
			// Whole-batch failure: outcome per token is unknown, so none of
			// them may be treated as invalid.
			return nil, errors.Wrap(err, "failed to send multicast")
		}

		result.SuccessCount += successCount
		result.FailureCount += failureCount
		result.InvalidTokens = append(result.InvalidTokens, invalidTokens...)
	}

	return result, nil
}
