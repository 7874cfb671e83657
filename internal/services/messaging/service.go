package messaging

import (
	"context"
	"errors"
	"fmt"
)

// ErrUnknownMessageType is returned for a message type the catalog does not know
var ErrUnknownMessageType = errors.New("unknown message type")

// service implements the Service interface
type service struct{}

// New creates a new messaging service
func New() *service {
	return &service{}
}

// GetLocationMessage returns the text sent to a worker about location tracking
func (s *service) GetLocationMessage(ctx context.Context, input *GetLocationMessageInput) (*GetLocationMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string
	withTask := input.TaskTitle != ""

	switch input.Type {
	case MessageTypeNotRegistered:
		message = "Вы не зарегистрированы в системе. Попросите администратора выдать код приглашения."
	case MessageTypeEnableLiveSharing:
		message = "Пожалуйста, включите трансляцию геопозиции: нажмите 📎 → Геопозиция → «Транслировать геопозицию» и выберите срок."
	case MessageTypeTrackingStarted:
		message = "📍 Отслеживание местоположения начато. Ожидаем назначения задачи."
	case MessageTypeTaskBound:
		message = fmt.Sprintf("📋 Ваше местоположение привязано к задаче «%s».", input.TaskTitle)
	case MessageTypeTrackingStopped:
		if withTask {
			message = fmt.Sprintf("⚠️ Вы остановили трансляцию геопозиции, но задача «%s» ещё в работе. Пожалуйста, снова включите трансляцию.", input.TaskTitle)
		} else {
			message = "Отслеживание местоположения остановлено."
		}
	case MessageTypeConnectionRestored:
		if withTask {
			message = fmt.Sprintf("✅ Связь восстановлена. Продолжаем отслеживание по задаче «%s».", input.TaskTitle)
		} else {
			message = "✅ Связь восстановлена. Отслеживание местоположения продолжено."
		}
	case MessageTypeConnectionLost:
		if withTask {
			message = fmt.Sprintf("🚨 У вас задача «%s» в работе, но мы потеряли ваше местоположение. Проверьте интернет и трансляцию геопозиции.", input.TaskTitle)
		} else {
			message = "Отслеживание местоположения деактивировано: давно не было обновлений."
		}
	case MessageTypeError:
		message = "Произошла ошибка. Попробуйте позже или обратитесь к администратору."
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMessageType, input.Type)
	}

	return &GetLocationMessageOutput{
		Message: message,
	}, nil
}

// GetTaskMessage returns the text sent to a worker about a task command
func (s *service) GetTaskMessage(ctx context.Context, input *GetTaskMessageInput) (*GetTaskMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	var message string

	switch input.Type {
	case MessageTypeHelp:
		message = "Я отслеживаю ваше местоположение во время работы.\n" +
			"1. Включите трансляцию геопозиции в этом чате.\n" +
			"2. /begin <id> — начать задачу\n" +
			"3. /complete <id> — завершить задачу\n" +
			"4. /cancel <id> — отменить задачу"
	case MessageTypeTaskStarted:
		message = fmt.Sprintf("▶️ Задача «%s» начата. Не выключайте трансляцию геопозиции.", input.TaskTitle)
	case MessageTypeTaskCompleted:
		message = fmt.Sprintf("🏁 Задача «%s» завершена. Отслеживание по задаче остановлено.", input.TaskTitle)
	case MessageTypeTaskCancelled:
		message = fmt.Sprintf("Задача «%s» отменена. Отслеживание по задаче остановлено.", input.TaskTitle)
	case MessageTypeTaskNotFound:
		message = "Задача не найдена или назначена не вам."
	case MessageTypeTaskAlreadyInProgress:
		message = "У вас уже есть задача в работе. Сначала завершите её."
	case MessageTypeTaskInvalidStatus:
		message = "Эту задачу нельзя перевести в запрошенный статус."
	case MessageTypeUsage:
		message = fmt.Sprintf("Укажите идентификатор задачи: /%s <id>", input.Command)
	case MessageTypeError:
		message = "Произошла ошибка. Попробуйте позже или обратитесь к администратору."
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMessageType, input.Type)
	}

	return &GetTaskMessageOutput{
		Message: message,
	}, nil
}

// GetDispatchMessage returns the alert posted to the dispatch channel
func (s *service) GetDispatchMessage(ctx context.Context, input *GetDispatchMessageInput) (*GetDispatchMessageOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	switch input.Type {
	case MessageTypeConnectionLost:
		return &GetDispatchMessageOutput{
			Message: fmt.Sprintf("🚨 Потеряна связь с сотрудником %s во время задачи «%s».", input.WorkerName, input.TaskTitle),
		}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownMessageType, input.Type)
	}
}
