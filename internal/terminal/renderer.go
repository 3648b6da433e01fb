package terminal

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"harvest-sun/internal/engine"
	"harvest-sun/pkg/api"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

const clearScreen = "\033[H\033[2J"

var guideText = []string{
	"Grow crops on your farm and sell them at the shop to make a living.",
	"",
	"  till     turns an empty plot into a tilled one",
	"  sow      plants a seed in a tilled plot",
	"  water    once per day per plot; enough water makes the crop ripe",
	"  harvest  collects a ripe crop into your inventory",
	"",
	"Every farm action costs 1 energy per plot. Going home starts a new day,",
	"restores your energy and charges you for breakfast. If you cannot pay",
	"for too many days in a row, you starve.",
}

var controlsText = []string{
	"  X / C    previous / next option",
	"  Enter    confirm",
	"  W A S D  move the cursor on the farm",
	"  E        select or unselect a plot",
	"  Q        pause (back on information screens)",
	"  H        help",
	"  I        inventory",
	"  Space    next tutorial line, Z skips the tutorial",
}

var authorText = []string{
	"Harvest Sun, a tiny farming game for the terminal.",
}

// Renderer выводит снимок игры простым текстом
type Renderer struct {
	w      io.Writer
	Width  int
	Height int
	// Clear - очищать экран перед каждым кадром
	Clear bool
	// Gate - проверять размер консоли
	Gate bool
	// Color - раскрашивать клетки фермы
	Color bool

	// measure перечитывает размер консоли перед каждым кадром
	measure func() (int, int)
}

// NewRenderer создает рендерер. Очистка экрана и проверка размера включаются только для терминала.
func NewRenderer(w io.Writer) *Renderer {
	r := &Renderer{w: w}
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		fd := int(f.Fd())
		r.Clear = true
		r.Color = true
		r.Gate = true
		r.measure = func() (int, int) { return consoleSize(fd) }
	}
	return r
}

// consoleSize спрашивает размер у терминала. Если не вышло - COLUMNS и LINES. 0 - неизвестно.
func consoleSize(fd int) (int, int) {
	if w, h, err := term.GetSize(fd); err == nil && w > 0 && h > 0 {
		return w, h
	}
	w, _ := strconv.Atoi(os.Getenv("COLUMNS"))
	h, _ := strconv.Atoi(os.Getenv("LINES"))
	return w, h
}

// Render реализует engine.Renderer
func (r *Renderer) Render(snap *api.Snapshot) error {
	var b strings.Builder
	if r.Clear {
		b.WriteString(clearScreen)
	}
	if r.measure != nil {
		r.Width, r.Height = r.measure()
	}

	if r.Gate && r.Width > 0 && r.Height > 0 && !engine.CanProceed(r.Width, r.Height, snap.Minified) {
		w, h := engine.MinConsoleSize(snap.Minified)
		fmt.Fprintf(&b, "Please resize your console to at least %dx%d (currently %dx%d).\n", w, h, r.Width, r.Height)
		_, err := io.WriteString(r.w, b.String())
		return err
	}

	writeFrame(&b, snap, r.Color)
	_, err := io.WriteString(r.w, b.String())
	return err
}

func writeFrame(b *strings.Builder, s *api.Snapshot, color bool) {
	b.WriteString("=== HARVEST SUN ===\n")

	switch s.Scene {
	case "MENU":
		writeSelector(b, s.Selector)
	case "GUIDE":
		writeLines(b, guideText)
		b.WriteString("\n[Q] back\n")
	case "CONTROLS":
		writeLines(b, controlsText)
		b.WriteString("\n[Q] back\n")
	case "AUTHOR":
		writeLines(b, authorText)
		b.WriteString("\n[Q] back\n")
	case "PLAY":
		writeStatus(b, s.Player)
		writePlay(b, s, color)
	case "DIALOG":
		writeDialog(b, s)
	case "QUIT":
		b.WriteString("Goodbye.\n")
	}

	if s.Message != "" {
		fmt.Fprintf(b, "\n> %s\n", s.Message)
	}
}

func writeLines(b *strings.Builder, lines []string) {
	for _, l := range lines {
		b.WriteString(l)
		b.WriteByte('\n')
	}
}

func writeStatus(b *strings.Builder, p api.PlayerView) {
	fmt.Fprintf(b, "%s | Day %d | Gold %d | Energy %d/%d", p.Name, p.Day, p.Gold, p.Energy, p.MaxEnergy)
	if p.StarvingToday {
		fmt.Fprintf(b, " | Starving (%d)", p.StarvedDays)
	}
	b.WriteString("\n\n")
}

func writePlay(b *strings.Builder, s *api.Snapshot, color bool) {
	if s.Prompt == "NAME" {
		b.WriteString("What is your name?\n")
		return
	}

	switch s.Play {
	case "SELECTING":
		if s.Tutorial != "" {
			fmt.Fprintf(b, "%s\n\n[Space] next  [Z] skip\n", s.Tutorial)
			return
		}
		b.WriteString("Where do you want to go?\n")
		writeSelector(b, s.Selector)
	case "HOME":
		b.WriteString("You slept at home.\n\n[Enter] continue\n")
	case "FARM":
		writeFarm(b, s, color)
	case "SHOP":
		writeShop(b, s)
	}
}

func writeFarm(b *strings.Builder, s *api.Snapshot, color bool) {
	f := s.Farm
	if !s.Minified || f.Selecting {
		writeGrid(b, f, color)
	}
	fmt.Fprintf(b, "till %d | sow %d | water %d | harvest %d\n\n",
		f.Available["TILL"], f.Available["SOW"], f.Available["WATER"], f.Available["HARVEST"])

	switch {
	case s.Prompt == "AMOUNT":
		fmt.Fprintf(b, "How many plots? (%s%s) [0] cancel\n", strings.ToLower(f.Action), cropSuffix(f.Crop))
		fmt.Fprintf(b, ": %s\n", s.Input)
	case f.Selecting:
		fmt.Fprintf(b, "%s%s: %d selected\n", strings.ToLower(f.Action), cropSuffix(f.Crop), f.Pending)
		b.WriteString("[WASD] move  [E] select  [Enter] confirm\n")
	case s.Selector != nil:
		writeSelector(b, s.Selector)
	default:
		b.WriteString("[Enter] continue\n")
	}
}

func cropSuffix(crop string) string {
	if crop == "" {
		return ""
	}
	return " " + strings.ToLower(crop)
}

// writeGrid рисует ферму: [x] - выбранная клетка, <x> - курсор
func writeGrid(b *strings.Builder, f api.FarmView, color bool) {
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.Cells[y*f.Width+x]
			cursor := f.Selecting && x == f.CursorX && y == f.CursorY
			left, right := " ", " "
			switch {
			case cursor && c.Pending:
				left, right = "{", "}"
			case cursor:
				left, right = "<", ">"
			case c.Pending:
				left, right = "[", "]"
			}
			b.WriteString(left + cellGlyph(c).Render(color) + right)
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
}

func cellGlyph(c api.CellView) Glyph {
	switch c.State {
	case "TILLED":
		return MakeGlyph(colorTilled, '#')
	case "PLANTED":
		code := byte('?')
		if c.Code != "" {
			code = c.Code[0]
		}
		switch c.Stage {
		case 0:
			return MakeGlyph(colorSeedling, ',')
		case 1:
			return MakeGlyph(colorGrowing, toLower(code))
		default:
			return MakeGlyph(colorRipe, toUpper(code))
		}
	}
	return MakeGlyph(colorSoil, '.')
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

func writeShop(b *strings.Builder, s *api.Snapshot) {
	b.WriteString("PRODUCT   BUY  SELL  SEEDS  CROPS\n")
	for i, st := range s.Shop.Stock {
		var seeds, crops int
		if i < len(s.Player.Seeds) {
			seeds = s.Player.Seeds[i].Amount
		}
		if i < len(s.Player.Crops) {
			crops = s.Player.Crops[i].Amount
		}
		fmt.Fprintf(b, "%-8s %4d %5d %6d %6d\n", st.Name, st.BuyPrice, st.SellPrice, seeds, crops)
	}
	b.WriteByte('\n')

	if s.Prompt == "AMOUNT" {
		fmt.Fprintf(b, "How many %s? (%s) [0] cancel\n: %s\n", strings.ToLower(s.Shop.Crop), strings.ToLower(s.Shop.Action), s.Input)
		return
	}
	writeSelector(b, s.Selector)
}

func writeDialog(b *strings.Builder, s *api.Snapshot) {
	switch s.Dialog {
	case "PAUSED":
		fmt.Fprintf(b, "%s\n", s.DialogMessage)
		writeSelector(b, s.Selector)
	case "HELP":
		writeLines(b, controlsText)
		b.WriteString("\n[Q] close\n")
	case "INVENTORY":
		b.WriteString("INVENTORY\n")
		for i, seed := range s.Player.Seeds {
			crops := 0
			if i < len(s.Player.Crops) {
				crops = s.Player.Crops[i].Amount
			}
			fmt.Fprintf(b, "  %-8s seeds %3d  crops %3d\n", seed.Name, seed.Amount, crops)
		}
		b.WriteString("\n[Q] close\n")
	case "GAMEOVER":
		fmt.Fprintf(b, "GAME OVER\n%s\n\n[Enter] main menu\n", s.DialogMessage)
	}
}

func writeSelector(b *strings.Builder, sel *api.SelectorView) {
	if sel == nil {
		return
	}
	for i, o := range sel.Options {
		marker := "  "
		if i == sel.Index {
			marker = "> "
		}
		label := o.Label
		if !o.Enabled {
			label = "(" + label + ")"
		}
		fmt.Fprintf(b, "%s%s\n", marker, label)
	}
	b.WriteString("[X/C] choose  [Enter] confirm\n")
}
