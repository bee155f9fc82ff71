package countdown

import (
	"strings"
	"testing"
	"time"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"emoji untouched", "🚨 on fire 🚨", "🚨 on fire 🚨"},
		{"bang", "done!", "done\\!"},
		{"period and dash", "e.g. 2025-12-31", "e\\.g\\. 2025\\-12\\-31"},
		{"asterisks", "**BOLD**", "\\*\\*BOLD\\*\\*"},
		{"backticks", "`code`", "\\`code\\`"},
		{"already escaped", "done\\! now", "done\\! now"},
		{"mixed escapes", "a\\!b!", "a\\!b\\!"},
		{"brackets", "[link](url)", "\\[link\\]\\(url\\)"},
		{"all specials", "_*[]()~`>#+-=|{}.!", "\\_\\*\\[\\]\\(\\)\\~\\`\\>\\#\\+\\-\\=\\|\\{\\}\\.\\!"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDaysUntil(t *testing.T) {
	due := time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC)

	t.Run("due today", func(t *testing.T) {
		now := time.Date(2025, time.June, 10, 15, 30, 0, 0, time.UTC)
		if got := DaysUntil(due, now); got != 0 {
			t.Errorf("DaysUntil() = %d, want 0", got)
		}
	})

	t.Run("due tomorrow", func(t *testing.T) {
		now := time.Date(2025, time.June, 9, 23, 59, 0, 0, time.UTC)
		if got := DaysUntil(due, now); got != 1 {
			t.Errorf("DaysUntil() = %d, want 1", got)
		}
	})

	t.Run("past due", func(t *testing.T) {
		now := time.Date(2025, time.June, 11, 0, 1, 0, 0, time.UTC)
		if got := DaysUntil(due, now); got != -1 {
			t.Errorf("DaysUntil() = %d, want -1", got)
		}
	})

	t.Run("across month boundary", func(t *testing.T) {
		now := time.Date(2025, time.May, 28, 12, 0, 0, 0, time.UTC)
		if got := DaysUntil(due, now); got != 13 {
			t.Errorf("DaysUntil() = %d, want 13", got)
		}
	})

	t.Run("reads the day in now's zone", func(t *testing.T) {
		addis := time.FixedZone("EAT", 3*3600)
		// 01:00 June 10 in Addis is still June 9 in UTC; the countdown
		// must follow the local calendar.
		now := time.Date(2025, time.June, 10, 1, 0, 0, 0, addis)
		if got := DaysUntil(due, now); got != 0 {
			t.Errorf("DaysUntil() = %d, want 0", got)
		}
	})
}

func TestParseDate(t *testing.T) {
	due, err := ParseDate("2025-12-31")
	if err != nil {
		t.Fatalf("ParseDate() error = %v", err)
	}
	want := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
	if !due.Equal(want) {
		t.Errorf("ParseDate() = %v, want %v", due, want)
	}

	for _, bad := range []string{
		"31-12-2025",
		"2025/12/31",
		"2025-13-01",
		"not a date",
		" 2025-12-31",
		"2025-12-31 extra",
		"",
	} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) expected error", bad)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{0, "TODAY IS THE DEADLINE\\!"},
		{1, "ONE DAY LEFT\\!"},
		{2, "🔔 2 DAYS LEFT\\! 🔔"},
		{3, "🔔 3 DAYS LEFT\\! 🔔"},
		{5, "\\*\\*5 DAYS LEFT\\!\\*\\*"},
		{10, "\\*\\*10 DAYS REMAINING\\!\\*\\*"},
		{14, "\\*\\*14 DAYS REMAINING\\!\\*\\*"},
		{30, "RED ALERT\\!"},
	}

	for _, tt := range tests {
		msg := Format(tt.days)
		if !strings.Contains(msg, tt.want) {
			t.Errorf("Format(%d) = %q, want it to contain %q", tt.days, msg, tt.want)
		}
	}

	// Every message must come out fully escaped; a bare special char
	// would make Telegram reject the whole send.
	for _, days := range []int{0, 1, 2, 5, 10, 30} {
		msg := Format(days)
		for i, r := range msg {
			if strings.ContainsRune(markdownV2Specials, r) {
				if i == 0 || msg[i-1] != '\\' {
					t.Errorf("Format(%d) has unescaped %q at %d: %q", days, r, i, msg)
				}
			}
		}
	}
}

func TestMessages(t *testing.T) {
	t.Run("welcome", func(t *testing.T) {
		msg := Welcome()
		if !strings.Contains(msg, "Welcome to Deadline Countdown Bot\\!") {
			t.Errorf("Welcome() = %q", msg)
		}
		if !strings.Contains(msg, "\\`YYYY\\-MM\\-DD\\`") {
			t.Errorf("Welcome() missing escaped format hint: %q", msg)
		}
	})

	t.Run("confirmation", func(t *testing.T) {
		due := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)
		msg := Confirmation(due, 42, "07:00", "Africa/Addis_Ababa")
		if !strings.Contains(msg, "\\`2025\\-12\\-31\\`") {
			t.Errorf("Confirmation() missing date: %q", msg)
		}
		if !strings.Contains(msg, "Days Left: \\`42\\`") {
			t.Errorf("Confirmation() missing days: %q", msg)
		}
		if !strings.Contains(msg, "07:00 \\(Africa/Addis\\_Ababa\\)\\!") {
			t.Errorf("Confirmation() missing schedule: %q", msg)
		}
	})

	t.Run("past date", func(t *testing.T) {
		if msg := PastDate(); !strings.Contains(msg, "already passed\\!") {
			t.Errorf("PastDate() = %q", msg)
		}
	})

	t.Run("invalid format", func(t *testing.T) {
		msg := InvalidFormat()
		if !strings.Contains(msg, "Invalid Format\\!") {
			t.Errorf("InvalidFormat() = %q", msg)
		}
		if !strings.Contains(msg, "\\`YYYY\\-MM\\-DD\\`") {
			t.Errorf("InvalidFormat() missing format hint: %q", msg)
		}
	})
}
