// seehuhn.de/go/lines - clipped digital line drawing
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.


package scene

import "seehuhn.de/go/geom/vec"

// Pan tracks a pointer drag which moves the scene around.
// While the pointer is held down, every movement adds the distance since
// the previous position to Offset.
type Pan struct {
	Offset vec.Vec2

	last     vec.Vec2
	dragging bool
}

// Begin starts a drag at pointer position pos.
func (p *Pan) Begin(pos vec.Vec2) {
	p.last = pos
	p.dragging = true
}

// Move updates the offset for a new pointer position.  It reports whether
// the offset changed.  Outside a drag, Move does nothing.
func (p *Pan) Move(pos vec.Vec2) bool {
	if !p.dragging || pos == p.last {
		return false
	}
	p.Offset = p.Offset.Add(pos.Sub(p.last))
	p.last = pos
	return true
}

// End finishes the current drag.
func (p *Pan) End() {
	p.dragging = false
}

// Dragging reports whether a drag is in progress.
func (p *Pan) Dragging() bool {
	return p.dragging
}
