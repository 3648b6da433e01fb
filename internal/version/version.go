package version

import (
	"fmt"
	"strings"
	"time"
)

// Name - имя игры в логах и ответе /version
const Name = "Harvest Sun"

// Заполняются через -ldflags "-X harvest-sun/internal/version.Release=..."
var (
	Release     = "dev"
	BuildDate   string // YYYY-MM-DD (UTC)
	BuildCommit string
	BuildBranch string
)

// seasonStart - первый день сезона, от него считается номер сборки
var seasonStart = time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)

// Build - сведения о сборке игры
type Build struct {
	Game    string `json:"game"`
	Release string `json:"release"`
	Day     int    `json:"day,omitempty"`
	Date    string `json:"date,omitempty"`
	Commit  string `json:"commit,omitempty"`
	Branch  string `json:"branch,omitempty"`
	Problem string `json:"problem,omitempty"`
}

// SeasonDay - какой по счету день сезона пришелся на BuildDate. Первый день - 1.
func SeasonDay(date string) (int, error) {
	if date == "" {
		return 0, fmt.Errorf("build date not set")
	}
	t, err := time.ParseInLocation(time.DateOnly, date, time.UTC)
	if err != nil {
		return 0, fmt.Errorf("build date %q: %w", date, err)
	}
	if t.Before(seasonStart) {
		return 0, fmt.Errorf("build date %s is before the season started", date)
	}
	return int(t.Sub(seasonStart).Hours()/24) + 1, nil
}

// Info собирает сведения о текущей сборке
func Info() Build {
	b := Build{
		Game:    Name,
		Release: Release,
		Date:    BuildDate,
		Commit:  shortCommit(BuildCommit),
		Branch:  BuildBranch,
	}
	day, err := SeasonDay(BuildDate)
	if err != nil {
		b.Problem = err.Error()
		return b
	}
	b.Day = day
	return b
}

// String - строка для лога при запуске
func String() string {
	b := Info()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s %s", b.Game, b.Release)
	if b.Day > 0 {
		fmt.Fprintf(&sb, ", season day %d (%s)", b.Day, b.Date)
	}
	if b.Commit != "" {
		sb.WriteString(" @" + b.Commit)
		if b.Branch != "" {
			sb.WriteString(" on " + b.Branch)
		}
	}
	return sb.String()
}

func shortCommit(c string) string {
	if len(c) > 7 {
		return c[:7]
	}
	return c
}
