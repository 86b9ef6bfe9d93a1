// Package catalog filters the equipment inventory for the request form:
// which bodies exist per category and which lenses a chosen body accepts.
package catalog

import "camclub-backend/internal/domain"

// Bodies returns the bodies in the inventory, optionally narrowed to one
// category. Empty results are valid.
func Bodies(items []domain.EquipmentItem, category string) []domain.EquipmentItem {
	var bodies []domain.EquipmentItem
	for _, it := range items {
		if it.Kind != domain.KindBody {
			continue
		}
		if category != "" && it.Category != category {
			continue
		}
		bodies = append(bodies, it)
	}
	return bodies
}

// BodyCategories returns the distinct body categories in inventory order.
func BodyCategories(items []domain.EquipmentItem) []string {
	seen := make(map[string]bool)
	var cats []string
	for _, it := range items {
		if it.Kind != domain.KindBody || it.Category == "" || seen[it.Category] {
			continue
		}
		seen[it.Category] = true
		cats = append(cats, it.Category)
	}
	return cats
}

// CompatibleLenses returns the available lenses a member may request with the
// given body. With no body selected (nil) every available lens qualifies,
// since lens-only rentals are allowed.
//
// With a body selected:
//   - the lens brand must match the body brand, with one hard-coded
//     exception: Canon bodies also take Tamron lenses;
//   - a full-frame body takes only full-frame lenses, while crop bodies
//     accept either format.
func CompatibleLenses(items []domain.EquipmentItem, body *domain.EquipmentItem) []domain.EquipmentItem {
	var lenses []domain.EquipmentItem
	for _, it := range items {
		if it.Kind != domain.KindLens || !it.IsAvailable() {
			continue
		}
		if body != nil {
			if !brandCompatible(body.Brand, it.Brand) {
				continue
			}
			if body.Format == domain.FormatFullFrame && it.Format != domain.FormatFullFrame {
				continue
			}
		}
		lenses = append(lenses, it)
	}
	return lenses
}

func brandCompatible(bodyBrand, lensBrand string) bool {
	if bodyBrand == lensBrand {
		return true
	}
	return bodyBrand == "Canon" && lensBrand == "Tamron"
}

// FindBody looks a body up by model among the inventory items.
func FindBody(items []domain.EquipmentItem, model string) *domain.EquipmentItem {
	for i := range items {
		if items[i].Kind == domain.KindBody && items[i].Model == model {
			return &items[i]
		}
	}
	return nil
}
