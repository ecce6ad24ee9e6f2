package component

import (
	"testing"

	"go-sky-shooter/internal/config"
	"go-sky-shooter/internal/defs"
)

func TestPowerupsAdd(t *testing.T) {
	var p Powerups

	if !p.Add(defs.PowerMachineGun) {
		t.Fatal("expected first add to succeed")
	}
	if !p.Dirty {
		t.Error("Add should mark powerups dirty")
	}
	p.Add(defs.PowerMachineGun)
	mg, ok := p.Get(defs.PowerMachineGun)
	if !ok || mg.Level != 2 {
		t.Fatalf("expected machine gun level 2, got %+v", mg)
	}
	if got := p.UnusedSlots(); got != config.PowerupSlots-1 {
		t.Errorf("UnusedSlots = %d, want %d", got, config.PowerupSlots-1)
	}
}

func TestPowerupsFull(t *testing.T) {
	var p Powerups
	for _, tp := range defs.AllPowerUps {
		p.Add(tp)
	}
	if p.UnusedSlots() != 0 {
		t.Fatalf("expected all slots used, %d free", p.UnusedSlots())
	}
	if len(p.Unused()) != 0 {
		t.Errorf("Unused() = %v, want empty", p.Unused())
	}
	if p.Add("laser") {
		t.Error("adding to a full rack should fail")
	}
	if got := p.Current(); len(got) != len(defs.AllPowerUps) {
		t.Errorf("Current() = %v", got)
	}
}

func TestSpecialMunitionsMultiplier(t *testing.T) {
	var none *SpecialMunitions
	if none.DamageMultiplier() != 1 {
		t.Error("absent munitions should multiply by 1")
	}
	if (&SpecialMunitions{Level: 0}).DamageMultiplier() != 1 {
		t.Error("level 0 munitions should multiply by 1")
	}
	if (&SpecialMunitions{Level: 3}).DamageMultiplier() != 3 {
		t.Error("level 3 munitions should multiply by 3")
	}
}

func TestWeaponsImplementInterface(t *testing.T) {
	weapons := []Weapon{NewMachineGun(1), NewPeaShooter(1), NewSniper(1), NewBile(1)}
	for _, w := range weapons {
		if w.Definition() == nil {
			t.Errorf("%T has no definition", w)
		}
		if w.State().Ready() {
			t.Errorf("%T should start cooling down", w)
		}
	}
}
