package run_reminders

import sendReminders "github.com/santilopez19/TurneroPremium/internal/usecase/send_reminders"

// RunRemindersResponse HTTP response model
type RunRemindersResponse struct {
	Found  int `json:"found"`
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

func FromUseCaseResponse(resp *sendReminders.Response) *RunRemindersResponse {
	return &RunRemindersResponse{
		Found:  resp.Found,
		Sent:   resp.Sent,
		Failed: resp.Failed,
	}
}
