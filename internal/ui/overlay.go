package ui

// Overlay draws the select over base content, with its anchor at (x, y),
// so an open popup floats over whatever is rendered beneath it instead of
// pushing it down. The select's origin is updated so mouse events line up.
func Overlay(base string, s *Select, x, y, width, height int) string {
	s.SetOrigin(x, y)
	c := NewCanvas(width, height)
	c.DrawStringAt(0, 0, base)
	c.DrawStringAt(x, y, s.View())
	return c.Render()
}
