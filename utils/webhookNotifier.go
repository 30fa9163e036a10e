package utils

import (
	"log"
	"time"

	"messfeed/config"
	"messfeed/models"

	"github.com/go-resty/resty/v2"
)

// NotifyComplaintWebhook pushes a new complaint to the mess committee's
// webhook, when one is configured. The payload carries no user identity and
// no free text, only the routable facts. Fire-and-forget: a dead endpoint
// must never fail the submission.
func NotifyComplaintWebhook(complaint models.Complaint) {
	webhookURL := config.AppConfig.MessWebhookURL
	if webhookURL == "" {
		return
	}

	go func() {
		client := resty.New().SetTimeout(10 * time.Second)
		resp, err := client.R().
			SetHeader("Content-Type", "application/json").
			SetBody(map[string]string{
				"hallCode":      complaint.HallCode,
				"mealType":      complaint.MealType,
				"category":      complaint.Category,
				"complaintDate": complaint.ComplaintDate,
			}).
			Post(webhookURL)
		if err != nil {
			log.Printf("[WEBHOOK] Error notifying complaint webhook: %v", err)
			return
		}
		if resp.StatusCode() >= 300 {
			log.Printf("[WEBHOOK] Complaint webhook returned %d: %s", resp.StatusCode(), resp.String())
		}
	}()
}
