package lca

import "context"

// InventoryProvider supplies life-cycle-inventory elementary flows for
// a resolved process. Implementations may query a real inventory
// database; SimulatedInventory stands in with fixed proportional flows
// so the aggregation math can be exercised without an ecoinvent
// licence. Swapping in a real backend must not touch the aggregation
// logic.
type InventoryProvider interface {
	// Inventory returns the elementary flows emitted when amountKg of
	// the mapped process input is consumed. An empty slice means "no
	// data available", not zero impact.
	Inventory(ctx context.Context, mapping ProcessMapping, amountKg float64) ([]LCIFlow, error)
}

// flowRatio defines kilograms of an elementary flow emitted per
// kilogram of process input.
type flowRatio struct {
	flowName    string
	category    string
	compartment string
	perKg       float64
}

// simulatedFlowRatios approximate cradle-to-gate emissions for
// agricultural processing, scaled linearly by input mass. This is a
// stand-in for an ecoinvent LCI query, not a computed physical model.
var simulatedFlowRatios = []flowRatio{
	{"Carbon dioxide, fossil", "air", "unspecified", 0.89},
	{"Methane, biogenic", "air", "unspecified", 0.0025},
	{"Dinitrogen monoxide", "air", "unspecified", 0.0008},
	{"Sulfur hexafluoride", "air", "unspecified", 0.0000001},
	{"Nitrogen trifluoride", "air", "unspecified", 0.00000005},
	{"Ammonia", "air", "low population density", 0.0012},
	{"Phosphate", "water", "groundwater", 0.0005},
}

// SimulatedInventory is the default InventoryProvider. It produces the
// same fixed set of proportional flows for every mapped process.
type SimulatedInventory struct{}

// NewSimulatedInventory creates the default simulated provider.
func NewSimulatedInventory() *SimulatedInventory {
	return &SimulatedInventory{}
}

// Inventory returns the simulated elementary flows for amountKg of the
// mapped process input.
func (s *SimulatedInventory) Inventory(_ context.Context, _ ProcessMapping, amountKg float64) ([]LCIFlow, error) {
	flows := make([]LCIFlow, 0, len(simulatedFlowRatios))
	for _, r := range simulatedFlowRatios {
		flows = append(flows, LCIFlow{
			FlowName:    r.flowName,
			Category:    r.category,
			Compartment: r.compartment,
			Amount:      r.perKg * amountKg,
			Unit:        "kg",
		})
	}
	return flows, nil
}
