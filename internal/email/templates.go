package email

import "fmt"

// Notification bodies. Kept as plain formatted HTML; there are few
// enough that a template directory is not worth carrying.

func ApplicationApproved(to, fullName string) *Message {
	return &Message{
		To:      []string{to},
		Subject: "Your tutor application has been approved",
		Body: fmt.Sprintf(
			"<p>Hi %s,</p><p>Congratulations! Your tutor application has been approved. "+
				"Your account now has tutor access and learners can book sessions with you.</p>",
			fullName),
	}
}

func ApplicationRejected(to, fullName string) *Message {
	return &Message{
		To:      []string{to},
		Subject: "Your tutor application was not approved",
		Body: fmt.Sprintf(
			"<p>Hi %s,</p><p>Unfortunately your tutor application was not approved this time. "+
				"You may submit a new application at any point.</p>",
			fullName),
	}
}

func PasswordReset(to, fullName, tempPassword string) *Message {
	return &Message{
		To:      []string{to},
		Subject: "Your TutaLink password has been reset",
		Body: fmt.Sprintf(
			"<p>Hi %s,</p><p>An administrator reset your password. Your temporary password is "+
				"<strong>%s</strong>. Please log in and change it.</p>",
			fullName, tempPassword),
	}
}
