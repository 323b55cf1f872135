package models

// PaymentReminderPayload is the body of the delayed unpaid-booking reminder task.
type PaymentReminderPayload struct {
	BookingID       string `json:"bookingId"`
	Email           string `json:"email"`
	TreatmentName   string `json:"treatmentName"`
	AppointmentDate string `json:"appointmentDate"`
}
