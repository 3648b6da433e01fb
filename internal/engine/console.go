package engine

// Минимальные размеры консоли
const (
	MinConsoleWidth          = 128
	MinConsoleHeight         = 38
	MinMinifiedConsoleWidth  = 80
	MinMinifiedConsoleHeight = 32
)

// CanProceed - помещается ли интерфейс в консоль заданного размера
func CanProceed(width, height int, minified bool) bool {
	if minified {
		return width >= MinMinifiedConsoleWidth && height >= MinMinifiedConsoleHeight
	}
	return width >= MinConsoleWidth && height >= MinConsoleHeight
}

// MinConsoleSize возвращает требуемые размеры для режима
func MinConsoleSize(minified bool) (int, int) {
	if minified {
		return MinMinifiedConsoleWidth, MinMinifiedConsoleHeight
	}
	return MinConsoleWidth, MinConsoleHeight
}
