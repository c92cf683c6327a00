package usecase

import (
	"testing"

	"moving-offer-service/internal/model"
	"moving-offer-service/internal/offer"
)

func localDistance(km float64) model.DistanceEstimate {
	return model.DistanceEstimate{Km: km, Source: model.DistanceSourceLocal}
}

func baseJob() offer.GenerateOfferInput {
	return offer.GenerateOfferInput{
		Rooms:           3.5,
		AddressFrom:     "Bahnhofstrasse 10, 8001 Zürich",
		AddressTo:       "Hauptstrasse 5, 3011 Bern",
		HasLift:         true,
		Floor:           0,
		IncludeAssembly: true,
		ExpressService:  false,
		HeavyItems:      0,
	}
}

func TestCalculatePricing_WorkedExample(t *testing.T) {
	// 3.5 rooms Zürich-Bern, lift, assembly, no express, no heavy items,
	// local distance 124 km.
	result := calculatePricing(baseJob(), localDistance(124))

	if len(result.Tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(result.Tasks))
	}

	wantPrices := map[string]int{
		"Packing & Carrying": 298, // round(3.5 × 85)
		"Transport":          390, // 80 + round(124 × 2.50)
		"Furniture Assembly": 158, // round(3.5 × 45)
	}
	for _, task := range result.Tasks {
		if want, ok := wantPrices[task.Name]; !ok || task.Price != want {
			t.Errorf("task %q: price %d, want %d", task.Name, task.Price, want)
		}
	}

	if result.Subtotal != 846 {
		t.Errorf("subtotal = %d, want 846", result.Subtotal)
	}
	if result.TotalPrice != 846 {
		t.Errorf("total = %d, want 846 (express not applied)", result.TotalPrice)
	}
	if result.ExpressService.Applied || result.ExpressService.Surcharge != 0 {
		t.Errorf("express must not apply: %+v", result.ExpressService)
	}
	if result.Currency != "CHF" {
		t.Errorf("currency = %q, want CHF", result.Currency)
	}
}

func TestCalculatePricing_ExpressSurcharge(t *testing.T) {
	job := baseJob()
	job.ExpressService = true

	result := calculatePricing(job, localDistance(124))

	if !result.ExpressService.Applied {
		t.Fatal("express surcharge not applied")
	}
	if result.ExpressService.Surcharge != 169 { // round(846 × 0.20)
		t.Errorf("surcharge = %d, want 169", result.ExpressService.Surcharge)
	}
	if result.TotalPrice != 1015 {
		t.Errorf("total = %d, want 1015", result.TotalPrice)
	}
	if result.Subtotal != 846 {
		t.Errorf("subtotal must stay pre-surcharge: %d", result.Subtotal)
	}
	// Express is a modifier, never a task.
	for _, task := range result.Tasks {
		if task.Name == "Express Service" {
			t.Error("express surcharge must not appear as a task")
		}
	}
}

func TestCalculatePricing_NoLiftSurcharge(t *testing.T) {
	job := baseJob()
	job.HasLift = false
	job.Floor = 3

	result := calculatePricing(job, localDistance(124))

	var found bool
	for _, task := range result.Tasks {
		if task.Name == "No-Lift Surcharge" {
			found = true
			if task.Price != 90 { // 3 floors × 30
				t.Errorf("no-lift price = %d, want 90", task.Price)
			}
		}
	}
	if !found {
		t.Fatal("no-lift surcharge task missing")
	}
}

func TestCalculatePricing_NoLiftSkippedOnGroundFloorOrLift(t *testing.T) {
	for name, mutate := range map[string]func(*offer.GenerateOfferInput){
		"has lift":     func(j *offer.GenerateOfferInput) { j.HasLift = true; j.Floor = 4 },
		"ground floor": func(j *offer.GenerateOfferInput) { j.HasLift = false; j.Floor = 0 },
	} {
		t.Run(name, func(t *testing.T) {
			job := baseJob()
			mutate(&job)
			result := calculatePricing(job, localDistance(25))
			for _, task := range result.Tasks {
				if task.Name == "No-Lift Surcharge" {
					t.Error("no-lift surcharge must not be present")
				}
			}
		})
	}
}

func TestCalculatePricing_HeavyItems(t *testing.T) {
	job := baseJob()
	job.HeavyItems = 2

	result := calculatePricing(job, localDistance(124))

	var found bool
	for _, task := range result.Tasks {
		if task.Name == "Heavy Items Handling" {
			found = true
			if task.Price != 100 { // 2 items × 50
				t.Errorf("heavy items price = %d, want 100", task.Price)
			}
		}
	}
	if !found {
		t.Fatal("heavy items task missing")
	}
}

func TestCalculatePricing_AssemblyOptional(t *testing.T) {
	job := baseJob()
	job.IncludeAssembly = false

	result := calculatePricing(job, localDistance(124))

	if len(result.Tasks) != 2 {
		t.Fatalf("expected 2 tasks without assembly, got %d", len(result.Tasks))
	}
	if result.Subtotal != 298+390 {
		t.Errorf("subtotal = %d, want %d", result.Subtotal, 298+390)
	}
}

func TestCalculatePricing_Invariants(t *testing.T) {
	jobs := []offer.GenerateOfferInput{
		baseJob(),
		{Rooms: 1, AddressFrom: "a", AddressTo: "b", HasLift: false, Floor: 5, IncludeAssembly: false, ExpressService: true, HeavyItems: 3},
		{Rooms: 2.5, AddressFrom: "a", AddressTo: "b", HasLift: true, IncludeAssembly: true, ExpressService: true},
		{Rooms: 6, AddressFrom: "a", AddressTo: "b", HasLift: false, Floor: 1, IncludeAssembly: true, HeavyItems: 1},
	}

	for _, job := range jobs {
		result := calculatePricing(job, localDistance(25))

		sum := 0
		for i, task := range result.Tasks {
			if task.ID != i+1 {
				t.Errorf("task ids must be sequential from 1: got %d at index %d", task.ID, i)
			}
			sum += task.Price
		}
		if result.Subtotal != sum {
			t.Errorf("subtotal %d != task sum %d", result.Subtotal, sum)
		}
		if result.TotalPrice != result.Subtotal+result.ExpressService.Surcharge {
			t.Errorf("total %d != subtotal %d + surcharge %d",
				result.TotalPrice, result.Subtotal, result.ExpressService.Surcharge)
		}
	}
}

func TestCalculatePricing_RoundsHalfUp(t *testing.T) {
	job := baseJob()
	job.Rooms = 2.5

	result := calculatePricing(job, localDistance(25))

	// 2.5 × 85 = 212.5 → 213, 2.5 × 45 = 112.5 → 113, 25 × 2.5 = 62.5 → 63.
	if result.Tasks[0].Price != 213 {
		t.Errorf("packing = %d, want 213", result.Tasks[0].Price)
	}
	if result.Tasks[1].Price != 80+63 {
		t.Errorf("transport = %d, want 143", result.Tasks[1].Price)
	}
	if result.Tasks[2].Price != 113 {
		t.Errorf("assembly = %d, want 113", result.Tasks[2].Price)
	}
}
