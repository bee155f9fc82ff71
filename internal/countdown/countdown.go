// Package countdown produces the bot's MarkdownV2 messages and the day
// arithmetic behind them.
package countdown

import (
	"fmt"
	"time"
)

// DateLayout is the only deadline format the bot accepts.
const DateLayout = "2006-01-02"

// ParseDate parses strict YYYY-MM-DD input. Anything else, including
// surrounding whitespace, is an error.
func ParseDate(text string) (time.Time, error) {
	return time.Parse(DateLayout, text)
}

// DaysUntil counts whole calendar days from now's date until due's date.
// The current day is read in now's location, so callers pick the zone the
// countdown runs in. Due today is 0; past dates are negative.
func DaysUntil(due, now time.Time) int {
	year, month, day := now.Date()
	today := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	year, month, day = due.Date()
	target := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)

	return int(target.Sub(today).Hours() / 24)
}

// Format renders the countdown message for the given number of days
// left. The urgency escalates as the deadline approaches.
func Format(days int) string {
	var msg string
	switch {
	case days == 0:
		msg = "🚨🚨🚨 TODAY IS THE DEADLINE! 🚨🚨🚨\n\n" +
			"🔥 DROP EVERYTHING AND FINISH! 🔥\n" +
			"▪️ No procrastination!\n" +
			"▪️ No excuses!\n" +
			"▪️ Just GET IT DONE! ✅"
	case days == 1:
		msg = "⚠️⚠️ ONE DAY LEFT! ⚠️⚠️\n\n" +
			"⏰ FINAL PUSH! ⏰\n" +
			"▪️ Review everything!\n" +
			"▪️ Fix last-minute issues!\n" +
			"▪️ You're almost there! 💪"
	case days <= 3:
		msg = fmt.Sprintf("🔔 %d DAYS LEFT! 🔔\n\n"+
			"❗ Urgent Action Needed! ❗\n"+
			"▪️ Prioritize critical tasks!\n"+
			"▪️ No distractions!\n"+
			"▪️ Stay focused! 🎯", days)
	case days <= 7:
		msg = fmt.Sprintf("🔥🔥🔥 **%d DAYS LEFT!** 🔥🔥🔥\n\n"+
			"🚨🚨 **TIME IS RUNNING OUT!** 🚨🚨\n"+
			"⚠️ **NO ROOM FOR MISTAKES!** ⚠️\n"+
			"🛑 **FINAL PUSH!** 🛑\n"+
			"🔥 **WORK FAST!** 🔥 **WORK SMART!** 🔥 **NO EXCUSES!** 🚀\n"+
			"⏳ **EVERY SECOND COUNTS!** ⏳", days)
	case days <= 14:
		msg = fmt.Sprintf("⚠️⚠️⚠️ **%d DAYS REMAINING!** ⚠️⚠️⚠️\n\n"+
			"🚨 **DANGER ZONE!** 🚨\n"+
			"🔥 **DON'T GET COMPLACENT!** 🔥\n"+
			"⏳ **THE CLOCK IS MERCILESS!** ⏳\n"+
			"💀 **WASTE A DAY, REGRET IT FOREVER!** 💀\n"+
			"🚀 **FULL SPEED AHEAD!** 🚀", days)
	default:
		msg = fmt.Sprintf("🟥🟥🟥 **%d DAYS LEFT!** 🟥🟥🟥\n\n"+
			"🚨 **RED ALERT!** 🚨\n"+
			"🔥 **THE DEADLINE IS WATCHING YOU!** 🔥\n"+
			"💀 **EVERY HOUR YOU WASTE BRINGS DOOM!** 💀\n"+
			"⏳ **NO SECOND CHANCES!** ⏳\n"+
			"🛑 **START WORKING NOW OR SUFFER LATER!** 🛑", days)
	}
	return Escape(msg)
}
