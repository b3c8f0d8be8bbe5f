package estimate

// Rule is a warranty/insurance discount on one part for vehicles up to a given age
type Rule struct {
	PartID              string
	MaxVehicleAgeMonths int
	DiscountPercentage  float64
}

type Warranty struct {
	Discount  float64 `json:"discount"`
	FinalCost float64 `json:"final_cost"`
}

// ApplyWarranty discounts each covered part by the first rule that still applies at the
// vehicle's age. A discount never exceeds the part cost and the final cost never drops below zero.
func ApplyWarranty(ageMonths int, partIDs []string, parts map[string]Part, rules []Rule, cost float64) Warranty {
	var discount float64
	for _, id := range partIDs {
		rule, ok := matchRule(rules, id, ageMonths)
		if !ok {
			continue
		}
		part, ok := parts[id]
		if !ok {
			continue
		}
		d := part.Cost * rule.DiscountPercentage / 100
		if d > part.Cost {
			d = part.Cost
		}
		discount += d
	}

	final := cost - discount
	if final < 0 {
		final = 0
	}
	return Warranty{Discount: Round2(discount), FinalCost: Round2(final)}
}

func matchRule(rules []Rule, partID string, ageMonths int) (Rule, bool) {
	for _, r := range rules {
		if r.PartID == partID && r.MaxVehicleAgeMonths >= ageMonths {
			return r, true
		}
	}
	return Rule{}, false
}
