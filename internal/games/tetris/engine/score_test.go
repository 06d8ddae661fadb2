package engine

import "testing"

func TestClearPoints(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		level int
		want  int
	}{
		{"zero lines", 0, 1, 0},
		{"single level 1", 1, 1, 100},
		{"double level 1", 2, 1, 300},
		{"triple level 1", 3, 1, 500},
		{"tetris level 1", 4, 1, 800},
		{"tetris level 3", 4, 3, 2400},
		{"double level 5", 2, 5, 1500},
		{"negative count", -1, 1, 0},
		{"over four", 5, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClearPoints(tt.n, tt.level); got != tt.want {
				t.Errorf("ClearPoints(%d, %d) = %d, want %d", tt.n, tt.level, got, tt.want)
			}
		})
	}
}

func TestProgressLevelFromLines(t *testing.T) {
	p := NewProgress(1)

	// 29 lines keeps level 3, the 30th reaches level 4.
	for p.Lines < 28 {
		p.Apply(1)
	}
	p.Apply(1) // 29
	if p.Level != 3 {
		t.Fatalf("level at 29 lines = %d, want 3", p.Level)
	}
	if leveled := p.Apply(1); !leveled {
		t.Error("30th line should report a level up")
	}
	if p.Level != 4 {
		t.Errorf("level at 30 lines = %d, want 4", p.Level)
	}
}

func TestProgressStartLevelFloor(t *testing.T) {
	p := NewProgress(5)
	if p.Level != 5 {
		t.Fatalf("fresh progress level = %d, want 5", p.Level)
	}
	if leveled := p.Apply(4); leveled {
		t.Error("4 lines must not level up a start-level-5 run")
	}
	if p.Level != 5 {
		t.Errorf("level after 4 lines = %d, want 5", p.Level)
	}
	if p.Score != ClearPoints(4, 5) {
		t.Errorf("score = %d, want %d", p.Score, ClearPoints(4, 5))
	}
}

func TestProgressScoresAtPreClearLevel(t *testing.T) {
	p := NewProgress(1)
	p.Lines = 9
	p.Apply(1) // crosses into level 2; the clear itself pays level 1 rates
	if p.Score != 100 {
		t.Errorf("score = %d, want 100", p.Score)
	}
	if p.Level != 2 {
		t.Errorf("level = %d, want 2", p.Level)
	}
}

func TestFallInterval(t *testing.T) {
	tests := []struct {
		name  string
		level int
		want  int
	}{
		{"level 1", 1, 800},
		{"level 2", 2, 640},
		{"level 3", 3, 512},
		{"level 4", 4, 409},
		{"deep level clamps", 30, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallInterval(tt.level, BaseFallMs, MinFallMs, SpeedFactor)
			if got != tt.want {
				t.Errorf("FallInterval(%d) = %d, want %d", tt.level, got, tt.want)
			}
		})
	}
}
