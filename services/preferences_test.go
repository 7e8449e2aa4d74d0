package services

import (
	"testing"

	"stay/constants"
	"stay/dto"
	"stay/models"
)

func intp(v int) *int { return &v }

func TestMergePreferences(t *testing.T) {
	t.Run("NilSides", func(t *testing.T) {
		old := &dto.BookingPreferences{CheckIn: "2024-06-01"}
		if got := MergePreferences(nil, old); got != old {
			t.Error("nil old must return new unchanged")
		}
		if got := MergePreferences(old, nil); got != old {
			t.Error("nil new must return old")
		}
	})

	t.Run("FillsMissingFields", func(t *testing.T) {
		old := &dto.BookingPreferences{
			CheckIn:    "2024-06-01",
			CheckOut:   "2024-06-03",
			AdultCount: intp(2),
			MealPlan:   intp(1),
			Selected:   []dto.SelectionEntry{{OfferID: "1_2", Quantity: 1}},
		}
		merged := MergePreferences(old, &dto.BookingPreferences{
			CheckIn:    "2024-07-10",
			AdultCount: intp(3),
		})

		if merged.CheckIn != "2024-07-10" {
			t.Errorf("new value must win, got %q", merged.CheckIn)
		}
		if merged.CheckOut != "2024-06-03" {
			t.Errorf("missing field must come from snapshot, got %q", merged.CheckOut)
		}
		if merged.AdultCount == nil || *merged.AdultCount != 3 {
			t.Errorf("AdultCount = %v, want 3", merged.AdultCount)
		}
		if merged.MealPlan == nil || *merged.MealPlan != 1 {
			t.Errorf("MealPlan = %v, want 1", merged.MealPlan)
		}
		if len(merged.Selected) != 1 || merged.Selected[0].OfferID != "1_2" {
			t.Errorf("Selected = %+v, want snapshot selection", merged.Selected)
		}
	})
}

func TestApplyPreferences(t *testing.T) {
	prefs := &dto.BookingPreferences{
		CheckIn:    "2024-06-01",
		CheckOut:   "2024-06-03",
		AdultCount: intp(2),
		ChildCount: intp(1),
		MealPlan:   intp(2),
	}

	t.Run("AppliesSetFields", func(t *testing.T) {
		query := ApplyPreferences(dto.BookingQuery{PropertyID: 1}, prefs)
		if query.CheckIn != "2024-06-01" || query.CheckOut != "2024-06-03" {
			t.Errorf("dates not applied: %+v", query)
		}
		if query.AdultCount != 2 || query.ChildCount != 1 || query.MealPlan != 2 {
			t.Errorf("counts not applied: %+v", query)
		}
	})

	t.Run("NilFieldsLeaveQueryAlone", func(t *testing.T) {
		partial := &dto.BookingPreferences{AdultCount: intp(3)}
		query := ApplyPreferences(dto.BookingQuery{
			PropertyID:   1,
			CheckIn:      "2024-08-01",
			CheckOut:     "2024-08-02",
			MealPlan:     1,
			BookingStyle: 1,
		}, partial)
		if query.AdultCount != 3 {
			t.Errorf("AdultCount = %d, want 3", query.AdultCount)
		}
		if query.CheckIn != "2024-08-01" || query.MealPlan != 1 || query.BookingStyle != 1 {
			t.Errorf("fields without snapshot values overwritten: %+v", query)
		}
	})

	t.Run("NilPrefs", func(t *testing.T) {
		query := dto.BookingQuery{PropertyID: 1, AdultCount: 2}
		if got := ApplyPreferences(query, nil); got != query {
			t.Errorf("nil prefs must leave query unchanged: %+v", got)
		}
	})
}

// Giá trị 0 khách gửi tường minh (Room-Only, đặt qua đêm) phải sống sót qua
// ảnh chụp cũ có giá trị khác: hợp nhất rồi áp lên truy vấn không được đổi nó
func TestExplicitZeroSurvivesStaleSnapshot(t *testing.T) {
	stored := &dto.BookingPreferences{
		CheckIn:      "2024-06-01",
		CheckOut:     "2024-06-03",
		AdultCount:   intp(2),
		MealPlan:     intp(models.MealPlanAllMeals),
		BookingStyle: intp(constants.BookingStyleDayUse),
	}
	incoming := &dto.BookingPreferences{
		CheckIn:      "2024-06-01",
		CheckOut:     "2024-06-03",
		MealPlan:     intp(models.MealPlanRoomOnly),
		BookingStyle: intp(constants.BookingStyleOvernight),
	}

	merged := MergePreferences(stored, incoming)
	query := ApplyPreferences(dto.BookingQuery{PropertyID: 1}, merged)

	if query.MealPlan != models.MealPlanRoomOnly {
		t.Errorf("MealPlan = %d, explicit Room-Only overridden by snapshot", query.MealPlan)
	}
	if query.BookingStyle != constants.BookingStyleOvernight {
		t.Errorf("BookingStyle = %d, explicit overnight overridden by snapshot", query.BookingStyle)
	}
	// Trường khách không gửi vẫn được ảnh chụp bù
	if query.AdultCount != 2 {
		t.Errorf("AdultCount = %d, want 2 from snapshot", query.AdultCount)
	}
}

func TestSnapshotPreferences(t *testing.T) {
	query := dto.BookingQuery{
		PropertyID: 1,
		CheckIn:    "2024-06-01",
		CheckOut:   "2024-06-03",
		AdultCount: 2,
		ChildCount: 1,
		MealPlan:   1,
	}
	selected := []dto.SelectionEntry{{OfferID: "1_2", Quantity: 2}}

	snap := SnapshotPreferences(query, selected)
	if snap.CheckIn != query.CheckIn || snap.CheckOut != query.CheckOut {
		t.Errorf("dates not captured: %+v", snap)
	}
	if *snap.AdultCount != 2 || *snap.ChildCount != 1 || *snap.MealPlan != 1 {
		t.Errorf("counts not captured: %+v", snap)
	}
	if len(snap.Selected) != 1 || snap.Selected[0].Quantity != 2 {
		t.Errorf("selection not captured: %+v", snap.Selected)
	}

	// ảnh chụp phải độc lập với truy vấn gốc
	query.AdultCount = 9
	if *snap.AdultCount != 2 {
		t.Error("snapshot must not alias the query")
	}
}
