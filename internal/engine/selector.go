package engine

// Option - пункт селектора
type Option struct {
	Label   string
	Value   int
	Enabled bool
}

// Selector - циклический выбор из списка (клавиши X/C).
// Недоступные пункты пропускаются, индекс заворачивается по модулю.
type Selector struct {
	options []Option
	index   int
}

// NewSelector создает селектор, в котором все пункты доступны
func NewSelector(options ...Option) *Selector {
	s := &Selector{options: options}
	for i := range s.options {
		s.options[i].Enabled = true
	}
	return s
}

// Len - количество пунктов
func (s *Selector) Len() int {
	return len(s.options)
}

// Index - текущий индекс
func (s *Selector) Index() int {
	return s.index
}

// Current возвращает текущий пункт
func (s *Selector) Current() Option {
	if len(s.options) == 0 {
		return Option{}
	}
	return s.options[s.index]
}

// Options возвращает копию пунктов
func (s *Selector) Options() []Option {
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

// Set переводит селектор на пункт i (по модулю)
func (s *Selector) Set(i int) {
	if len(s.options) == 0 {
		return
	}
	s.index = ((i % len(s.options)) + len(s.options)) % len(s.options)
}

// SetEnabled включает или выключает пункт i
func (s *Selector) SetEnabled(i int, enabled bool) {
	if len(s.options) == 0 {
		return
	}
	i = ((i % len(s.options)) + len(s.options)) % len(s.options)
	s.options[i].Enabled = enabled
}

// AnyEnabled - есть ли хоть один доступный пункт
func (s *Selector) AnyEnabled() bool {
	for _, o := range s.options {
		if o.Enabled {
			return true
		}
	}
	return false
}

// Next переходит к следующему доступному пункту
func (s *Selector) Next() {
	s.step(1)
}

// Prev переходит к предыдущему доступному пункту
func (s *Selector) Prev() {
	s.step(-1)
}

func (s *Selector) step(dir int) {
	n := len(s.options)
	for i := 1; i <= n; i++ {
		next := ((s.index+dir*i)%n + n) % n
		if s.options[next].Enabled {
			s.index = next
			return
		}
	}
}

// Reset переходит на первый доступный пункт
func (s *Selector) Reset() {
	s.index = 0
	if len(s.options) > 0 && !s.options[0].Enabled {
		s.step(1)
	}
}

// Cycle обрабатывает клавиши X (назад) и C (вперёд). Возвращает true, если клавиша распознана.
func (s *Selector) Cycle(in Input) bool {
	if in.IsText {
		return false
	}
	switch in.Key {
	case 'X':
		s.Prev()
	case 'C':
		s.Next()
	default:
		return false
	}
	return true
}
