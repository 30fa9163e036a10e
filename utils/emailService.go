package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"messfeed/config"
)

// Generic Send Email
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	// MIME basics
	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Mess Feedback <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg))
	if err != nil {
		fmt.Println("Error sending email:", err)
		return err
	}
	return nil
}

// HTML wrapper shared by all outgoing mail
func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #F6F6F6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; box-shadow: 0 4px 15px rgba(0,0,0,0.05); }
			.header { background-color: #1B4332; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B4332; line-height: 1.6; }
			.content h2 { color: #1B4332; margin-top: 0; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; border-top: 1px solid #E0E0E0; }
			table.stats { width: 100%%; border-collapse: collapse; margin: 20px 0; }
			table.stats th, table.stats td { padding: 10px; border-bottom: 1px solid #E0E0E0; text-align: left; }
			table.stats th { background: #E8F5E9; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>MESS FEEDBACK</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				This is an automated report from the hall mess feedback system.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

func formatMean(v *float64) string {
	if v == nil {
		return "&mdash;"
	}
	return fmt.Sprintf("%.2f", *v)
}

// SendDailyDigestEmail mails one hall's stats for a day to the mess admin.
func SendDailyDigestEmail(to, hallCode, hallName, date string, breakfast, lunch, snacks, dinner *float64, totalReviews int) {
	subject := fmt.Sprintf("Mess ratings for %s (%s) on %s", hallName, hallCode, date)
	body := fmt.Sprintf(`
		<p>Ratings submitted for <strong>%s</strong> on <strong>%s</strong>:</p>
		<table class="stats">
			<tr><th>Meal</th><th>Average rating</th></tr>
			<tr><td>Breakfast</td><td>%s</td></tr>
			<tr><td>Lunch</td><td>%s</td></tr>
			<tr><td>Snacks</td><td>%s</td></tr>
			<tr><td>Dinner</td><td>%s</td></tr>
		</table>
		<p>Total reviews: <strong>%d</strong></p>
	`, hallName, date,
		formatMean(breakfast), formatMean(lunch), formatMean(snacks), formatMean(dinner),
		totalReviews)

	go SendEmail([]string{to}, subject, getEmailTemplate("Daily Mess Digest", body))
}
