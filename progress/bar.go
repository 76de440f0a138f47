// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package progress implements a terminal progress indicator, grounded on
// the original simulator's ProgressBar. It carries no algorithmic weight
// and is never required for correctness.
package progress

import "fmt"

// Bar renders a fill/empty terminal progress bar as Update is called.
type Bar struct {
	total   int
	width   int
	current int
}

// New returns a Bar for total iterations rendered across width columns.
func New(total, width int) *Bar {
	return &Bar{total: total, width: width}
}

// Reset restarts the bar, optionally changing the total iteration count.
func (b *Bar) Reset(total int) {
	b.current = 0
	if total > 0 {
		b.total = total
	}
}

// Update advances the bar by one iteration and renders it.
func (b *Bar) Update() {
	b.current++
	b.render()
}

func (b *Bar) render() {
	if b.total <= 0 {
		return
	}
	progress := float64(b.current) / float64(b.total)
	filled := int(progress * float64(b.width))
	if filled > b.width {
		filled = b.width
	}
	bar := make([]byte, b.width)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '.'
		}
	}
	fmt.Printf("\rProgress: [%s] %d%%", bar, int(progress*100))
	if b.current >= b.total {
		fmt.Println()
	}
}
