// Package permission classifies Android permission identifiers into risk tiers.
package permission

import (
	"sort"

	"github.com/huanfeng/apkscope/pkg/models"
)

type entry struct {
	category    models.PermissionCategory
	description string
}

// table is built once from the static maps and never mutated afterwards.
var table = buildTable()

func buildTable() map[string]entry {
	t := make(map[string]entry, len(dangerousPermissions)+len(normalPermissions))
	for id, desc := range normalPermissions {
		t[id] = entry{category: models.CategoryNormal, description: desc}
	}
	// dangerous wins if an identifier were ever listed in both
	for id, desc := range dangerousPermissions {
		t[id] = entry{category: models.CategoryDangerous, description: desc}
	}
	return t
}

// Classify resolves a permission identifier to its record. Identifiers in
// neither table resolve to the unknown tier.
func Classify(identifier string) models.PermissionRecord {
	e, ok := table[identifier]
	if !ok {
		e = entry{category: models.CategoryUnknown, description: UnknownDescription}
	}

	return models.PermissionRecord{
		Identifier:  identifier,
		Description: e.description,
		Category:    e.category,
		IconTag:     IconTag(identifier),
		RiskNote:    RiskNote(e.category),
	}
}

// ClassifyAll classifies identifiers preserving their order
func ClassifyAll(identifiers []string) []models.PermissionRecord {
	records := make([]models.PermissionRecord, 0, len(identifiers))
	for _, id := range identifiers {
		records = append(records, Classify(id))
	}
	return records
}

// IconTag returns the display icon tag for an identifier
func IconTag(identifier string) string {
	if tag, ok := iconTags[identifier]; ok {
		return tag
	}
	return GenericIconTag
}

// RiskNote returns the risk assessment text for a category
func RiskNote(category models.PermissionCategory) string {
	if note, ok := riskNotes[category]; ok {
		return note
	}
	return riskNotes[models.CategoryUnknown]
}

// Known returns a record for every identifier in the lookup tables, sorted
// by category (dangerous first) then identifier.
func Known() []models.PermissionRecord {
	ids := make([]string, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		ci, cj := table[ids[i]].category, table[ids[j]].category
		if ci != cj {
			return ci == models.CategoryDangerous
		}
		return ids[i] < ids[j]
	})
	return ClassifyAll(ids)
}

// Summary counts records per category
func Summary(records []models.PermissionRecord) map[models.PermissionCategory]int {
	counts := map[models.PermissionCategory]int{
		models.CategoryDangerous: 0,
		models.CategoryNormal:    0,
		models.CategoryUnknown:   0,
	}
	for _, r := range records {
		counts[r.Category]++
	}
	return counts
}
