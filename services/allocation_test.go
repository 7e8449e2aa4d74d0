package services

import (
	"testing"

	"stay/models"
)

func instance(adults, maxOcc int, childTable models.PriceTable) RoomInstance {
	return RoomInstance{
		OfferID:        "x",
		IntendedAdults: adults,
		MaxOccupancy:   maxOcc,
		ChildTable:     childTable,
		Currency:       "VND",
	}
}

func TestAllocateChildrenOrderStable(t *testing.T) {
	// Sức chứa trống theo thứ tự chọn: [1, 0, 2]
	instances := []RoomInstance{
		instance(2, 3, roomOnlyTable(200, 0)),
		instance(3, 3, roomOnlyTable(200, 0)),
		instance(1, 3, roomOnlyTable(200, 0)),
	}

	result := AllocateChildren(instances, 2, models.MealPlanRoomOnly)
	if result.Unplaced != 0 {
		t.Fatalf("Unplaced = %d, want 0", result.Unplaced)
	}
	want := []int{1, 0, 1}
	if len(result.Placements) != len(want) {
		t.Fatalf("placements = %d, want %d", len(result.Placements), len(want))
	}
	for i, p := range result.Placements {
		if p.Children != want[i] {
			t.Errorf("placements[%d].Children = %d, want %d", i, p.Children, want[i])
		}
	}
	if result.ChildPricePerNight != 400 {
		t.Errorf("ChildPricePerNight = %d, want 400", result.ChildPricePerNight)
	}
}

func TestAllocateChildrenUnplaced(t *testing.T) {
	// Hai phòng, mỗi phòng trống 1 chỗ, 3 trẻ em
	instances := []RoomInstance{
		instance(2, 3, roomOnlyTable(200, 0)),
		instance(2, 3, roomOnlyTable(200, 0)),
	}

	result := AllocateChildren(instances, 3, models.MealPlanRoomOnly)
	if result.Unplaced != 1 {
		t.Errorf("Unplaced = %d, want 1", result.Unplaced)
	}
	if result.ChildPricePerNight != 400 {
		t.Errorf("ChildPricePerNight = %d, want 400", result.ChildPricePerNight)
	}
}

func TestAllocateChildrenUnitNoCharge(t *testing.T) {
	// Mô hình theo phòng không có bảng giá trẻ em
	instances := []RoomInstance{instance(2, 4, models.PriceTable{})}

	result := AllocateChildren(instances, 2, models.MealPlanRoomOnly)
	if result.Unplaced != 0 {
		t.Errorf("Unplaced = %d, want 0", result.Unplaced)
	}
	if result.ChildPricePerNight != 0 {
		t.Errorf("ChildPricePerNight = %d, want 0", result.ChildPricePerNight)
	}
}

func TestAllocateChildrenZeroChildren(t *testing.T) {
	instances := []RoomInstance{instance(1, 3, roomOnlyTable(200, 0))}

	result := AllocateChildren(instances, 0, models.MealPlanRoomOnly)
	if result.Unplaced != 0 || result.ChildPricePerNight != 0 {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestAllocateChildrenOvercrowdedInstance(t *testing.T) {
	// IntendedAdults vượt sức chứa thì phần trống là 0, không âm
	instances := []RoomInstance{instance(4, 3, roomOnlyTable(200, 0))}

	result := AllocateChildren(instances, 1, models.MealPlanRoomOnly)
	if result.Unplaced != 1 {
		t.Errorf("Unplaced = %d, want 1", result.Unplaced)
	}
}

func TestCheckCombinedCapacity(t *testing.T) {
	instances := []RoomInstance{
		instance(2, 3, models.PriceTable{}),
		instance(2, 2, models.PriceTable{}),
	}

	if err := CheckCombinedCapacity(instances, 4, 1); err != nil {
		t.Errorf("5 guests in capacity 5 should pass: %v", err)
	}
	if err := CheckCombinedCapacity(instances, 4, 2); err == nil {
		t.Error("6 guests in capacity 5 should fail")
	}
}

func TestBuildInstances(t *testing.T) {
	offers, categories := selectionFixture(t)

	t.Run("ExpandsQuantities", func(t *testing.T) {
		entries := []struct {
			id  string
			qty int
		}{{"1_2", 2}, {"2_1", 1}}
		sel := NewSelection()
		for _, e := range entries {
			if err := sel.SetQuantity(offers, categories, e.id, e.qty); err != nil {
				t.Fatalf("SetQuantity: %v", err)
			}
		}

		instances := BuildInstances(sel.Entries(), offers, categories, 5)
		if len(instances) != 3 {
			t.Fatalf("expected 3 instances, got %d", len(instances))
		}
		if instances[0].IntendedAdults != 2 || instances[1].IntendedAdults != 2 {
			t.Errorf("occupancy instances should keep offer adults")
		}
		if instances[2].IntendedAdults != 1 {
			t.Errorf("instances[2].IntendedAdults = %d, want 1", instances[2].IntendedAdults)
		}
	})

	t.Run("UnitAbsorbsAdults", func(t *testing.T) {
		bungalow := unitCategory(t, 20, 2, 4, roomOnlyTable(3000, 0))
		cats := []models.RoomCategory{*bungalow}
		offs := GenerateOffers(bungalow, models.MealPlanRoomOnly)

		sel := NewSelection()
		if err := sel.SetQuantity(offs, cats, "20_4", 2); err != nil {
			t.Fatalf("SetQuantity: %v", err)
		}

		instances := BuildInstances(sel.Entries(), offs, cats, 6)
		if len(instances) != 2 {
			t.Fatalf("expected 2 instances, got %d", len(instances))
		}
		if instances[0].IntendedAdults != 4 || instances[1].IntendedAdults != 2 {
			t.Errorf("adults spread = [%d, %d], want [4, 2]",
				instances[0].IntendedAdults, instances[1].IntendedAdults)
		}
	})
}
