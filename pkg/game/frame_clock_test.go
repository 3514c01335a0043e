package game

import "testing"

func TestFrameClockAdvance(t *testing.T) {
	tests := []struct {
		name      string
		fixedStep float64
		frames    []float64
		wantSteps []int
	}{
		{"exact step", 0.25, []float64{0.25}, []int{1}},
		{"accumulates remainder", 0.25, []float64{0.125, 0.125, 0.125}, []int{0, 1, 0}},
		{"multiple steps", 0.125, []float64{0.25}, []int{2}},
		{"negative frame ignored", 0.25, []float64{-1}, []int{0}},
		{"capped frame", 0.0625, []float64{10}, []int{4}}, // 上限 0.25
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewFrameClock(tt.fixedStep, 0.25)
			for i, f := range tt.frames {
				if got := c.Advance(f); got != tt.wantSteps[i] {
					t.Errorf("frame %d: steps = %d, want %d", i, got, tt.wantSteps[i])
				}
			}
		})
	}
}

func TestFrameClockDefaults(t *testing.T) {
	c := NewFrameClock(0, 0)
	if c.FixedStep() != DefaultFixedTimestep {
		t.Errorf("FixedStep() = %v, want %v", c.FixedStep(), DefaultFixedTimestep)
	}
}

func TestFrameClockAlpha(t *testing.T) {
	c := NewFrameClock(0.25, 1)
	c.Advance(0.375)
	if got := c.Alpha(); got != 0.5 {
		t.Errorf("Alpha() = %v, want 0.5", got)
	}
}
