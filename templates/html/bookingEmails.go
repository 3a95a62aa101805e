package templates

import (
	"fmt"
	"strings"

	"github.com/codementee/codementee-api/models"
)

// RenderBookingRequestedEmail notifies a mentor that a mentee submitted a new
// booking request with their preferred slots.
func RenderBookingRequestedEmail(menteeName, companyName string, slots []models.SlotSnapshot) string {
	var lines []string
	for _, s := range slots {
		lines = append(lines, fmt.Sprintf("%s  %s - %s", s.Date, s.StartTime, s.EndTime))
	}
	body := fmt.Sprintf(`Hi,

%s has requested a mock interview for %s.

Preferred slots:
%s

Log in to confirm one of the slots.`, menteeName, companyName, strings.Join(lines, "\n"))
	return RenderGenericEmail("New Mock Interview Request", body)
}

// RenderBookingConfirmedEmail notifies a mentee that their booking was
// confirmed, including the scheduled slot and the meeting link.
func RenderBookingConfirmedEmail(mentorName string, slot models.SlotSnapshot, meetLink string) string {
	body := fmt.Sprintf(`Hi,

Your mock interview has been confirmed by %s.

When: %s  %s - %s
Meeting link: %s

Good luck!`, mentorName, slot.Date, slot.StartTime, slot.EndTime, meetLink)
	return RenderGenericEmail("Mock Interview Confirmed", body)
}

// RenderInterviewReminderEmail reminds a participant about a mock interview
// scheduled for the next day.
func RenderInterviewReminderEmail(scheduledAt, meetLink string) string {
	body := fmt.Sprintf(`Hi,

This is a reminder that you have a mock interview coming up.

When: %s
Meeting link: %s

See you there!`, scheduledAt, meetLink)
	return RenderGenericEmail("Mock Interview Reminder", body)
}

// RenderPaymentReceiptEmail confirms a successful pricing plan purchase.
func RenderPaymentReceiptEmail(planName string, amountPaise int64) string {
	body := fmt.Sprintf(`Hi,

Your payment for the %s plan was successful.

Amount: Rs. %.2f

Your plan is now active.`, planName, float64(amountPaise)/100)
	return RenderGenericEmail("Payment Successful", body)
}
