package service

import (
	"context"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"camclub-backend/internal/domain"
)

// sendgridEmailService notifies the shared staff inbox. Members are reached
// by phone, so outbound mail goes to staff only.
type sendgridEmailService struct {
	apiKey     string
	from       string
	fromName   string
	staffInbox string
}

func NewEmailService(apiKey, from, fromName, staffInbox string) EmailService {
	return &sendgridEmailService{
		apiKey:     apiKey,
		from:       from,
		fromName:   fromName,
		staffInbox: staffInbox,
	}
}

func (s *sendgridEmailService) SendRequestSubmitted(ctx context.Context, rec *domain.RentalRecord) error {
	subject := fmt.Sprintf("새 대여 신청: %s", rec.Applicant)
	body := fmt.Sprintf(
		"신청자: %s (%s)\n장비: %s\n기간: %s ~ %s\n대면 시간: %s",
		rec.Applicant, rec.Contact, rec.Equipment,
		rec.StartDate.Format("2006-01-02"), rec.DueDate.Format("2006-01-02"),
		rec.MeetingTime,
	)
	return s.send(subject, body)
}

func (s *sendgridEmailService) SendReturnReminder(ctx context.Context, rec *domain.RentalRecord) error {
	subject := fmt.Sprintf("반납 확인 필요: %s", rec.Applicant)
	body := fmt.Sprintf(
		"대여 #%d (%s)의 반납예정일은 %s입니다.\n장비: %s\n담당자: %s",
		rec.ID, rec.Applicant, rec.DueDate.Format("2006-01-02"),
		rec.Equipment, rec.Staff,
	)
	return s.send(subject, body)
}

func (s *sendgridEmailService) send(subject, plainText string) error {
	from := mail.NewEmail(s.fromName, s.from)
	to := mail.NewEmail("", s.staffInbox)
	message := mail.NewSingleEmail(from, subject, to, plainText, "")

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.Send(message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

// noopEmailService is used when email is disabled in config.
type noopEmailService struct{}

func NewNoopEmailService() EmailService {
	return noopEmailService{}
}

func (noopEmailService) SendRequestSubmitted(context.Context, *domain.RentalRecord) error {
	return nil
}

func (noopEmailService) SendReturnReminder(context.Context, *domain.RentalRecord) error {
	return nil
}
