package app

import (
	"fmt"
	"image/color"

	"orrery/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var hudColor = color.RGBA{R: 0xC0, G: 0xC8, B: 0xD8, A: 0xFF}

const hudLineHeight = 10

func (s *system) hudLines() []string {
	st := s.renderer.Stats
	return []string{
		s.state.Status().String(),
		fmt.Sprintf("tick %d  tris %d  px %d", s.state.Tick, st.Triangles, st.Points),
	}
}

func (s *system) drawHUD() {
	d := hal.Displayer(s.fb)
	y := int16(hudLineHeight)
	for _, line := range s.hudLines() {
		tinyfont.WriteLine(d, &proggy.TinySZ8pt7b, 4, y, line, hudColor)
		y += hudLineHeight
	}
}
