package countdown

import (
	"fmt"
	"time"
)

// Welcome is the onboarding message sent when the bot joins a group.
func Welcome() string {
	return Escape("🎉 Welcome to Deadline Countdown Bot! 🎉\n\n" +
		"📅 To get started, send me your deadline in this format:\n" +
		"`YYYY-MM-DD`\n\n" +
		"Example: `2025-12-31`\n\n" +
		"⏳ I'll send daily reminders to keep everyone on track! 🚀")
}

// Confirmation acknowledges a newly set deadline. The clock and zone
// describe when the daily reminders actually fire.
func Confirmation(due time.Time, days int, clock, zone string) string {
	return Escape(fmt.Sprintf("✅ Deadline Set! ✅\n\n"+
		"🗓 Date: `%s`\n"+
		"⏳ Days Left: `%d`\n\n"+
		"📢 Daily reminders will arrive at %s (%s)! ⏰",
		due.Format(DateLayout), days, clock, zone))
}

// PastDate rejects a deadline that is already behind us.
func PastDate() string {
	return Escape("❌ That date has already passed!\n" +
		"Set a future date like `2025-12-31`. ")
}

// InvalidFormat rejects input that does not parse as a YYYY-MM-DD date.
func InvalidFormat() string {
	return Escape("❌ Invalid Format!\n" +
		"Please use `YYYY-MM-DD` (e.g., `2025-12-31`).")
}
