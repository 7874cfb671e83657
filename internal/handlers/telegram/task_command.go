package telegram

import (
	"context"
	"errors"
	"strings"

	"github.com/fieldtrack/fieldtrack/internal/services/messaging"
	taskService "github.com/fieldtrack/fieldtrack/internal/services/task"
	"github.com/fieldtrack/fieldtrack/internal/services/tracking"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const (
	commandStart    = "start"
	commandBegin    = "begin"
	commandComplete = "complete"
	commandCancel   = "cancel"
)

// StartCommand explains how to use the bot
type StartCommand struct {
	BaseCommand
	messaging messaging.Service
}

// NewStartCommand creates the /start command
func NewStartCommand(messagingService messaging.Service) *StartCommand {
	return &StartCommand{
		BaseCommand: BaseCommand{
			Name:        commandStart,
			Description: "Как пользоваться ботом",
		},
		messaging: messagingService,
	}
}

// Handle replies with the help text
func (c *StartCommand) Handle(ctx context.Context, msg *tgbotapi.Message) (string, error) {
	output, err := c.messaging.GetTaskMessage(ctx, &messaging.GetTaskMessageInput{
		Type: messaging.MessageTypeHelp,
	})
	if err != nil {
		return "", err
	}

	return output.Message, nil
}

type taskAction int

const (
	taskActionBegin taskAction = iota
	taskActionComplete
	taskActionCancel
)

// TaskCommand moves one of the worker's tasks through its lifecycle
type TaskCommand struct {
	BaseCommand
	action      taskAction
	tracker     tracking.Service
	taskService taskService.Service
	messaging   messaging.Service
}

// NewTaskCommand creates the /begin, /complete or /cancel command
func NewTaskCommand(action taskAction, tracker tracking.Service, tasks taskService.Service, messagingService messaging.Service) *TaskCommand {
	base := BaseCommand{}
	switch action {
	case taskActionBegin:
		base.Name, base.Description = commandBegin, "Начать задачу: /begin <id>"
	case taskActionComplete:
		base.Name, base.Description = commandComplete, "Завершить задачу: /complete <id>"
	case taskActionCancel:
		base.Name, base.Description = commandCancel, "Отменить задачу: /cancel <id>"
	}

	return &TaskCommand{
		BaseCommand: base,
		action:      action,
		tracker:     tracker,
		taskService: tasks,
		messaging:   messagingService,
	}
}

// Handle runs the task transition for the sender
func (c *TaskCommand) Handle(ctx context.Context, msg *tgbotapi.Message) (string, error) {
	if msg.From == nil {
		return "", nil
	}

	taskID := strings.TrimSpace(msg.CommandArguments())
	if taskID == "" {
		return c.taskMessage(ctx, messaging.MessageTypeUsage, "")
	}

	resolved, err := c.tracker.ResolveUser(ctx, &tracking.ResolveUserInput{
		TelegramID: msg.From.ID,
	})
	if err != nil {
		return "", err
	}

	if resolved.User == nil {
		output, err := c.messaging.GetLocationMessage(ctx, &messaging.GetLocationMessageInput{
			Type: messaging.MessageTypeNotRegistered,
		})
		if err != nil {
			return "", err
		}
		return output.Message, nil
	}

	userID := resolved.User.ID

	switch c.action {
	case taskActionBegin:
		output, err := c.taskService.StartTask(ctx, &taskService.StartTaskInput{
			UserID: userID,
			TaskID: taskID,
		})
		if err != nil {
			return c.failure(ctx, err)
		}
		return c.taskMessage(ctx, messaging.MessageTypeTaskStarted, output.Task.Title)
	case taskActionComplete:
		output, err := c.taskService.CompleteTask(ctx, &taskService.FinishTaskInput{
			UserID:     userID,
			TaskID:     taskID,
			TelegramID: msg.From.ID,
		})
		if err != nil {
			return c.failure(ctx, err)
		}
		return c.taskMessage(ctx, messaging.MessageTypeTaskCompleted, output.Task.Title)
	default:
		output, err := c.taskService.CancelTask(ctx, &taskService.FinishTaskInput{
			UserID:     userID,
			TaskID:     taskID,
			TelegramID: msg.From.ID,
		})
		if err != nil {
			return c.failure(ctx, err)
		}
		return c.taskMessage(ctx, messaging.MessageTypeTaskCancelled, output.Task.Title)
	}
}

// failure turns worker mistakes into replies and passes infrastructure errors up
func (c *TaskCommand) failure(ctx context.Context, err error) (string, error) {
	switch {
	case errors.Is(err, taskService.ErrTaskNotFound), errors.Is(err, taskService.ErrTaskNotAssigned):
		return c.taskMessage(ctx, messaging.MessageTypeTaskNotFound, "")
	case errors.Is(err, taskService.ErrTaskAlreadyInProgress):
		return c.taskMessage(ctx, messaging.MessageTypeTaskAlreadyInProgress, "")
	case errors.Is(err, taskService.ErrInvalidStatus):
		return c.taskMessage(ctx, messaging.MessageTypeTaskInvalidStatus, "")
	default:
		return "", err
	}
}

func (c *TaskCommand) taskMessage(ctx context.Context, messageType messaging.MessageType, title string) (string, error) {
	output, err := c.messaging.GetTaskMessage(ctx, &messaging.GetTaskMessageInput{
		Type:      messageType,
		TaskTitle: title,
		Command:   c.Name,
	})
	if err != nil {
		return "", err
	}

	return output.Message, nil
}
