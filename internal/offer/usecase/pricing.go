package usecase

import (
	"fmt"
	"math"

	"moving-offer-service/internal/model"
	"moving-offer-service/internal/offer"
)

// Pricing constants for moving services (CHF-based for Swiss market).
const (
	ratePerRoom         = 85   // per room cost (packing + carrying)
	ratePerKm           = 2.50 // transport cost per km
	rateTransportBase   = 80   // base transport fee (loading/unloading)
	rateAssemblyPerRoom = 45   // furniture assembly per room
	rateNoLiftPerFloor  = 30   // surcharge per floor when no lift available
	rateHeavyItem       = 50   // per heavy item (piano, safe, etc.)

	expressMultiplier = 1.20 // +20% for express/same-week service

	currencyCHF = "CHF"
)

// calculatePricing builds the itemized task list and totals for a validated job
// and a resolved distance. Pure: same input always yields the same result, and
// it never fails for input that passed validation.
func calculatePricing(job offer.GenerateOfferInput, distance model.DistanceEstimate) model.PricingResult {
	tasks := make([]model.Task, 0, 5)
	subtotal := 0
	taskID := 1

	rooms := formatNumber(job.Rooms)
	km := formatNumber(distance.Km)

	// Task: Packing & Carrying
	packingCost := int(math.Round(job.Rooms * ratePerRoom))
	tasks = append(tasks, model.Task{
		ID:               taskID,
		Name:             "Packing & Carrying",
		Description:      fmt.Sprintf("Pack and carry belongings from %s rooms", rooms),
		Price:            packingCost,
		PriceExplanation: fmt.Sprintf("%s rooms × CHF %d/room", rooms, ratePerRoom),
	})
	taskID++
	subtotal += packingCost

	// Task: Transport (base + per km)
	kmCost := int(math.Round(distance.Km * ratePerKm))
	transportCost := rateTransportBase + kmCost
	tasks = append(tasks, model.Task{
		ID:               taskID,
		Name:             "Transport",
		Description:      fmt.Sprintf("Load, drive %s km, and unload the moving truck", km),
		Price:            transportCost,
		PriceExplanation: fmt.Sprintf("Base CHF %d + %s km × CHF %.2f/km", rateTransportBase, km, ratePerKm),
	})
	taskID++
	subtotal += transportCost

	// Task: Furniture Assembly (optional)
	if job.IncludeAssembly {
		assemblyCost := int(math.Round(job.Rooms * rateAssemblyPerRoom))
		tasks = append(tasks, model.Task{
			ID:               taskID,
			Name:             "Furniture Assembly",
			Description:      "Disassemble furniture at origin, reassemble at destination",
			Price:            assemblyCost,
			PriceExplanation: fmt.Sprintf("%s rooms × CHF %d/room", rooms, rateAssemblyPerRoom),
		})
		taskID++
		subtotal += assemblyCost
	}

	// Surcharge: No Lift
	if !job.HasLift && job.Floor > 0 {
		liftCost := job.Floor * rateNoLiftPerFloor
		tasks = append(tasks, model.Task{
			ID:               taskID,
			Name:             "No-Lift Surcharge",
			Description:      fmt.Sprintf("Manual carrying up/down %d floor(s) without elevator", job.Floor),
			Price:            liftCost,
			PriceExplanation: fmt.Sprintf("%d floor(s) × CHF %d/floor", job.Floor, rateNoLiftPerFloor),
		})
		taskID++
		subtotal += liftCost
	}

	// Surcharge: Heavy Items
	if job.HeavyItems > 0 {
		heavyCost := job.HeavyItems * rateHeavyItem
		tasks = append(tasks, model.Task{
			ID:               taskID,
			Name:             "Heavy Items Handling",
			Description:      fmt.Sprintf("Special handling for %d heavy item(s) (piano, safe, etc.)", job.HeavyItems),
			Price:            heavyCost,
			PriceExplanation: fmt.Sprintf("%d item(s) × CHF %d/item", job.HeavyItems, rateHeavyItem),
		})
		taskID++
		subtotal += heavyCost
	}

	// Express Service modifier: applied on the subtotal, never a task of its own.
	express := model.ExpressService{Applied: false, Surcharge: 0}
	if job.ExpressService {
		express = model.ExpressService{
			Applied:     true,
			Surcharge:   int(math.Round(float64(subtotal) * (expressMultiplier - 1))),
			Explanation: "+20% express service fee",
		}
	}

	return model.PricingResult{
		Tasks:          tasks,
		Distance:       distance,
		Subtotal:       subtotal,
		ExpressService: express,
		TotalPrice:     subtotal + express.Surcharge,
		Currency:       currencyCHF,
	}
}
