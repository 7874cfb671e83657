package messaging

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MessagingServiceTestSuite struct {
	suite.Suite
	svc Service
	ctx context.Context
}

func (s *MessagingServiceTestSuite) SetupTest() {
	s.svc = New()
	s.ctx = context.Background()
}

func TestMessagingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MessagingServiceTestSuite))
}

func (s *MessagingServiceTestSuite) TestTrackingStarted_AwaitsTask() {
	output, err := s.svc.GetLocationMessage(s.ctx, &GetLocationMessageInput{
		Type: MessageTypeTrackingStarted,
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "Ожидаем назначения задачи")
}

func (s *MessagingServiceTestSuite) TestTaskSpecificWording() {
	neutral, err := s.svc.GetLocationMessage(s.ctx, &GetLocationMessageInput{
		Type: MessageTypeConnectionLost,
	})
	s.Require().NoError(err)

	urgent, err := s.svc.GetLocationMessage(s.ctx, &GetLocationMessageInput{
		Type:      MessageTypeConnectionLost,
		TaskTitle: "Fix the pump",
	})
	s.Require().NoError(err)

	s.NotEqual(neutral.Message, urgent.Message)
	s.Contains(urgent.Message, "Fix the pump")
	s.NotContains(neutral.Message, "«")
}

func (s *MessagingServiceTestSuite) TestUnknownType() {
	_, err := s.svc.GetLocationMessage(s.ctx, &GetLocationMessageInput{
		Type: MessageType("nope"),
	})
	s.Require().Error(err)
	s.True(errors.Is(err, ErrUnknownMessageType))

	_, err = s.svc.GetDispatchMessage(s.ctx, &GetDispatchMessageInput{
		Type: MessageTypeTrackingStarted,
	})
	s.True(errors.Is(err, ErrUnknownMessageType))
}

func (s *MessagingServiceTestSuite) TestUsageNamesCommand() {
	output, err := s.svc.GetTaskMessage(s.ctx, &GetTaskMessageInput{
		Type:    MessageTypeUsage,
		Command: "complete",
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "/complete <id>")
}

func (s *MessagingServiceTestSuite) TestDispatchNamesWorkerAndTask() {
	output, err := s.svc.GetDispatchMessage(s.ctx, &GetDispatchMessageInput{
		Type:       MessageTypeConnectionLost,
		WorkerName: "Ivan",
		TaskTitle:  "Fix the pump",
	})
	s.Require().NoError(err)
	s.Contains(output.Message, "Ivan")
	s.Contains(output.Message, "Fix the pump")
}
