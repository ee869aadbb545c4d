package neonvoid

import (
	"math"
	"strings"
	"testing"

	"github.com/vovakirdan/neon-void/internal/config"
	"github.com/vovakirdan/neon-void/internal/core"
)

func TestNewMatchState(t *testing.T) {
	g := newTestGame(t, NewRand(1))
	st := g.State()

	if st.Wave != 1 || st.HP != 100 || st.Score != 0 || st.GameOver {
		t.Errorf("initial state = %+v", st)
	}
	p := g.Player()
	if p.Pos != core.V(400, 520) {
		t.Errorf("player starts at %v, want (400, 520)", p.Pos)
	}
	if p.Weapon != WeaponLaser {
		t.Errorf("player weapon = %v, want laser", p.Weapon)
	}
}

func TestFireCooldown(t *testing.T) {
	g := newTestGame(t, NewRand(1))

	g.Step(pressing(core.ActionFire))
	if g.shots != 1 {
		t.Fatalf("first shot rejected")
	}

	for tick := 1; tick < 15; tick++ {
		g.Step(pressing(core.ActionFire))
		if g.shots != 1 {
			t.Fatalf("shot accepted %d ticks after the first", tick)
		}
	}

	g.Step(pressing(core.ActionFire))
	if g.shots != 2 {
		t.Errorf("shot on tick 15 rejected")
	}
}

func TestFireWeaponModes(t *testing.T) {
	tests := []struct {
		mode    WeaponMode
		bullets int
	}{
		{WeaponLaser, 1},
		{WeaponSpread, 3},
		{WeaponCharge, 1},
	}

	for _, tt := range tests {
		g := newTestGame(t, NewRand(1))
		g.Player().UpgradeWeapon(tt.mode, 100)
		if tt.mode == WeaponLaser {
			g.Player().UpgradeWeapon(WeaponLaser, 0)
		}

		g.Step(pressing(core.ActionFire))

		bullets := g.Entities(KindBullet)
		if len(bullets) != tt.bullets {
			t.Errorf("%v: fired %d bullets, want %d", tt.mode, len(bullets), tt.bullets)
			continue
		}
		if g.Player().Cooldown != 14 {
			t.Errorf("%v: cooldown after tick = %d, want 14", tt.mode, g.Player().Cooldown)
		}
		if tt.mode == WeaponSpread {
			wantVX := []float64{-2, 0, 2}
			for i, b := range bullets {
				if b.Vel.X != wantVX[i] || b.Vel.Y != -5 {
					t.Errorf("spread bullet %d velocity = %v", i, b.Vel)
				}
			}
		}
	}
}

func TestHeldMovement(t *testing.T) {
	g := newTestGame(t, NewRand(1))

	g.Step(holding(core.ActionLeft))
	if got := g.Player().Pos.X; got != 397 {
		t.Errorf("x after left = %v, want 397", got)
	}

	g.Step(holding(core.ActionLeft, core.ActionRight))
	if got := g.Player().Pos.X; got != 397 {
		t.Errorf("x with both held = %v, want 397", got)
	}

	for range 500 {
		g.Step(holding(core.ActionRight))
	}
	if got := g.Player().Box().Right(); got != 800 {
		t.Errorf("player right edge = %v, want 800", got)
	}
}

func TestEntityBehaviors(t *testing.T) {
	g := newTestGame(t, fixedRand{f: 0.5})

	zig := placeEnemy(g, EnemyZigzag, core.V(100, 100))
	zig.Vel.Y = 1
	sinker := placeEnemy(g, EnemyStandard, core.V(700, g.cfg.Arena.Height+10))
	sinker.Vel.Y = 1.2
	escaping := bulletInto(g, core.V(50, -10))
	drop := g.world.add(newPowerUp(g.cfg.Drops, PowerUpHeal, core.V(50, 50)))
	spark := g.world.add(newParticle(g.cfg.Particles, core.V(300, 300), fixedRand{f: 0.5}))
	spark.Life = 2

	g.Step(idle())

	if zig.Pos.X != 100 || zig.Pos.Y != 101 {
		t.Errorf("zigzag after tick 1 = %v, want (100, 101)", zig.Pos)
	}
	if math.Abs(zig.Phase-0.1) > eps {
		t.Errorf("zigzag phase = %v, want 0.1", zig.Phase)
	}
	if !sinker.Dead {
		t.Error("enemy past the bottom edge not removed")
	}
	if !escaping.Dead {
		t.Error("bullet past the top edge not removed")
	}
	if drop.Pos.Y != 51 {
		t.Errorf("power-up y = %v, want 51", drop.Pos.Y)
	}
	if spark.Life != 1 || spark.Dead {
		t.Errorf("particle life = %d dead=%v", spark.Life, spark.Dead)
	}

	g.Step(idle())

	wantX := 100 + 3*math.Sin(0.1)
	if math.Abs(zig.Pos.X-wantX) > eps {
		t.Errorf("zigzag x after tick 2 = %v, want %v", zig.Pos.X, wantX)
	}
	if !spark.Dead {
		t.Error("particle with expired life not removed")
	}
}

func TestEndToEndFirstKill(t *testing.T) {
	tests := []struct {
		name     string
		roll     float64
		wantDrop int
	}{
		{"drop", 0.1, 1},
		{"no drop", 0.9, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, fixedRand{f: tt.roll})
			st := g.State()
			if st.Wave != 1 || st.HP != 100 || st.Score != 0 {
				t.Fatalf("unexpected start state %+v", st)
			}

			target := placeEnemy(g, EnemyStandard, core.V(400, 300))

			for range 300 {
				g.Step(holding(core.ActionFire))
				if target.Dead {
					break
				}
			}
			if !target.Dead {
				t.Fatal("target never destroyed")
			}

			if g.score != 10 {
				t.Errorf("score = %d, want 10", g.score)
			}
			if got := g.Count(KindParticle); got != 12 {
				t.Errorf("particles = %d, want 12", got)
			}
			if got := g.Count(KindPowerUp); got != tt.wantDrop {
				t.Errorf("power-ups = %d, want %d", got, tt.wantDrop)
			}
			if tt.wantDrop == 1 {
				pu := g.Entities(KindPowerUp)[0]
				if pu.Drop != PowerUpHeal || pu.Pos != target.Pos {
					t.Errorf("drop = %v at %v", pu.Drop, pu.Pos)
				}
			}
		})
	}
}

func TestWaveProgressesInMatch(t *testing.T) {
	cfg := config.DefaultShooterConfig()
	cfg.Waves.BaseCount = 0
	cfg.Waves.PerWave = 1
	cfg.Waves.SpawnDelay = 1
	g := NewWithConfig(cfg)
	g.ResetWithRand(testRuntime(1), fixedRand{f: 0.9})

	var started bool
	for range 2000 {
		for _, e := range g.Entities(KindEnemy) {
			e.Dead = true
		}
		res := g.Step(idle())
		if hasEvent(res.Events, core.EventWaveCleared) {
			if !hasEvent(res.Events, core.EventWaveStarted) {
				t.Fatal("wave_cleared without wave_started")
			}
			started = true
			break
		}
	}
	if !started {
		t.Fatal("wave never advanced")
	}
	if g.State().Wave != 2 {
		t.Errorf("wave = %d, want 2", g.State().Wave)
	}
	if len(g.Waves().Queue()) != 2 {
		t.Errorf("wave 2 queue = %d, want 2", len(g.Waves().Queue()))
	}
}

func TestPauseAndQuit(t *testing.T) {
	g := newTestGame(t, NewRand(1))

	g.Step(pressing(core.ActionPause))
	if !g.State().Paused || g.Tick() != 0 {
		t.Fatalf("paused=%v tick=%d after pause", g.State().Paused, g.Tick())
	}
	g.Step(holding(core.ActionLeft))
	if g.Player().Pos.X != 400 {
		t.Error("player moved while paused")
	}

	g.Step(pressing(core.ActionPause))
	if g.State().Paused {
		t.Fatal("pause did not toggle off")
	}

	res := g.Step(pressing(core.ActionQuit))
	if !res.State.GameOver || g.Stats().EndReason != EndQuit {
		t.Errorf("quit: gameOver=%v reason=%q", res.State.GameOver, g.Stats().EndReason)
	}
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 3000)
	for i := range inputs {
		switch {
		case i%200 < 60:
			inputs[i] = holding(core.ActionFire, core.ActionLeft)
		case i%200 < 120:
			inputs[i] = holding(core.ActionFire, core.ActionRight)
		default:
			inputs[i] = holding(core.ActionFire)
		}
	}

	run := func(seed int64) Snapshot {
		g := NewWithConfig(config.DefaultShooterConfig())
		g.Reset(testRuntime(seed))
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	a, b := run(42), run(42)
	if a.Hash() != b.Hash() {
		t.Errorf("same seed produced different hashes: %x vs %x", a.Hash(), b.Hash())
	}
	if a.Score != b.Score || a.Tick != b.Tick || len(a.Entities) != len(b.Entities) {
		t.Errorf("same seed diverged: %+v vs %+v", a, b)
	}

	differs := false
	for seed := int64(1); seed <= 5; seed++ {
		if run(seed).Hash() != a.Hash() {
			differs = true
			break
		}
	}
	if !differs {
		t.Error("every seed produced the same match")
	}
}

func TestSpritesAndRender(t *testing.T) {
	g := newTestGame(t, fixedRand{f: 0.1})
	placeEnemy(g, EnemyTank, core.V(200, 200))
	g.world.add(newPowerUp(g.cfg.Drops, PowerUpWeapon, core.V(600, 200)))
	g.Step(pressing(core.ActionFire))

	visuals := map[Visual]int{}
	for _, s := range g.Sprites() {
		visuals[s.Visual]++
	}
	if visuals[VisualPlayer] != 1 || visuals[VisualTank] != 1 || visuals[VisualLaser] != 1 || visuals[VisualWeaponDrop] != 1 {
		t.Errorf("unexpected sprite set %v", visuals)
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if hud := screen.Row(0); !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Wave: 1") {
		t.Errorf("HUD row = %q", hud)
	}
	if !strings.Contains(screen.String(), "/A\\") {
		t.Error("player glyph not rendered")
	}
	if len(g.Stars()) != 50 {
		t.Errorf("stars = %d, want 50", len(g.Stars()))
	}
}

func TestRegistered(t *testing.T) {
	g := New()
	if g.ID() != GameID || g.Title() != "Neon Void" {
		t.Errorf("ID/Title = %q/%q", g.ID(), g.Title())
	}
}

func TestHUDLine(t *testing.T) {
	tests := []struct {
		hud  HUD
		want string
	}{
		{HUD{Score: 120, Wave: 3, HP: 80, MaxHP: 100}, "Score: 120  Wave: 3  HP: 80/100  Weapon: laser"},
		{HUD{Wave: 1, HP: 100, MaxHP: 100, Weapon: WeaponSpread, WeaponTicks: 61}, "Score: 0  Wave: 1  HP: 100/100  Weapon: spread 2s"},
	}
	for _, tt := range tests {
		if got := tt.hud.Line(); got != tt.want {
			t.Errorf("Line() = %q, want %q", got, tt.want)
		}
	}
}
