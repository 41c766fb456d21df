package system

import (
	"testing"

	"github.com/milk9111/magnetfisher/ecs"
	"github.com/milk9111/magnetfisher/ecs/component"
)

func TestDayCycleFullDay(t *testing.T) {
	cfg := testConfig()
	w := ecs.NewWorld()
	magnet := newTestMagnet(t, w, 0, 100)
	winch := NewWinch(w, magnet)
	winch.ChangeWinchSpeed(600)

	dayEntity := ecs.CreateEntity(w)
	if err := ecs.Add(w, dayEntity, component.DayCycleComponent.Kind(), &component.DayCycle{Duration: 0.1}); err != nil {
		t.Fatalf("add day cycle: %v", err)
	}

	newDays := 0
	days := NewDayCycleSystem(cfg, winch, func(*ecs.World) { newDays++ })
	systems := []ecs.System{days, NewPhysicsSystem(cfg), NewMagnetSystem(cfg)}

	runFrames(w, 1, systems...)
	day := mustGet(t, w, dayEntity, component.DayCycleComponent.Kind())
	if day.Phase != component.DayDocked {
		t.Fatalf("expected to start docked, got %v", day.Phase)
	}

	input := mustGet(t, w, magnet, component.InputComponent.Kind())
	input.DropPressed = true
	runFrames(w, 1, systems...)
	input.DropPressed = false
	if day.Phase != component.DayFishing {
		t.Fatalf("expected fishing after drop, got %v", day.Phase)
	}
	if state, _ := winch.State(); !state.Dropped {
		t.Fatalf("expected the winch to drop the magnet")
	}

	w.Events().Push(ecs.Event{Type: ecs.EventLootCollected, Data: ecs.LootCollected{Kind: "coin", Value: 5}})
	w.Events().Push(ecs.Event{Type: ecs.EventLootCollected, Data: ecs.LootCollected{Kind: "can", Value: 1}})
	runFrames(w, 1, systems...)
	if day.Haul != 6 {
		t.Fatalf("expected haul 6, got %v", day.Haul)
	}

	runFrames(w, 10, systems...)
	if day.Phase != component.DayRewinding {
		t.Fatalf("expected rewinding once the day ran out, got %v", day.Phase)
	}

	runFrames(w, 30, systems...)
	if day.Phase != component.DayDocked {
		t.Fatalf("expected to dock after the rewind, got %v", day.Phase)
	}
	if day.Day != 1 || day.Bank != 6 || day.Haul != 0 {
		t.Fatalf("expected banked day, got %+v", *day)
	}
	if day.Duration != cfg.Day.Duration {
		t.Fatalf("expected next day to use configured duration, got %v", day.Duration)
	}
	if newDays != 1 {
		t.Fatalf("expected one new day callback, got %d", newDays)
	}
}

func TestDayCycleRewindOnInput(t *testing.T) {
	cfg := testConfig()
	w := ecs.NewWorld()
	magnet := newTestMagnet(t, w, 0, 100)
	winch := NewWinch(w, magnet)
	dayEntity := ecs.CreateEntity(w)
	_ = ecs.Add(w, dayEntity, component.DayCycleComponent.Kind(), &component.DayCycle{Phase: component.DayFishing, Duration: 60})
	winch.DropMagnet()

	input := mustGet(t, w, magnet, component.InputComponent.Kind())
	input.RewindPressed = true
	NewDayCycleSystem(cfg, winch, nil).Update(w)

	if day := mustGet(t, w, dayEntity, component.DayCycleComponent.Kind()); day.Phase != component.DayRewinding {
		t.Fatalf("expected rewinding, got %v", day.Phase)
	}
	if state, _ := winch.State(); !state.Rewinding {
		t.Fatalf("expected winch to rewind")
	}
}

func TestUpgradeRequestsWalkEquipmentTiers(t *testing.T) {
	cfg := testConfig()
	cfg.Equipment.RopeLengths = []float64{200, 400}
	cfg.Equipment.WinchSpeeds = []float64{100, 160}

	w := ecs.NewWorld()
	magnet := newTestMagnet(t, w, 0, 200)
	winch := NewWinch(w, magnet)
	dayEntity := ecs.CreateEntity(w)
	_ = ecs.Add(w, dayEntity, component.DayCycleComponent.Kind(), &component.DayCycle{Duration: 60})

	days := NewDayCycleSystem(cfg, winch, nil)
	upgrades := NewUpgradeSystem(winch)
	input := mustGet(t, w, magnet, component.InputComponent.Kind())
	input.UpgradePressed = true

	tests := []struct {
		name       string
		wantLength float64
		wantSpeed  float64
	}{
		{name: "rope_first", wantLength: 400, wantSpeed: 100},
		{name: "then_winch", wantLength: 400, wantSpeed: 160},
		{name: "maxed_out", wantLength: 400, wantSpeed: 160},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runFrames(w, 1, days, upgrades)
			state, _ := winch.State()
			if state.PlayerRopeLength != tt.wantLength || state.WinchSpeed != tt.wantSpeed {
				t.Fatalf("expected %v/%v, got %v/%v", tt.wantLength, tt.wantSpeed, state.PlayerRopeLength, state.WinchSpeed)
			}
			if ecs.Has(w, magnet, component.UpgradeRequestComponent.Kind()) {
				t.Fatalf("expected upgrade request to be consumed")
			}
		})
	}
}
