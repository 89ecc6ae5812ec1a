// Package group partitions tool lists into ordered, labelled buckets.
package group

import "github.com/ryan-rushton/omni/internal/catalog"

// GeneralUtilities labels tools that have no sub-category.
const GeneralUtilities = "General Utilities"

// Bucket is one group of tools sharing a key.
type Bucket[K comparable] struct {
	Key   K
	Tools []catalog.Tool
}

// ByCategory groups tools by category. Buckets appear in the order their
// first tool appears; tools keep their input order.
func ByCategory(tools []catalog.Tool) []Bucket[catalog.Category] {
	return by(tools, func(t catalog.Tool) catalog.Category { return t.Category })
}

// BySubCategory groups tools by sub-category, using GeneralUtilities for
// tools without one.
func BySubCategory(tools []catalog.Tool) []Bucket[string] {
	return by(tools, SubCategoryLabel)
}

// SubCategoryLabel returns the bucket label for t.
func SubCategoryLabel(t catalog.Tool) string {
	if t.SubCategory == "" {
		return GeneralUtilities
	}
	return t.SubCategory
}

func by[K comparable](tools []catalog.Tool, key func(catalog.Tool) K) []Bucket[K] {
	var buckets []Bucket[K]
	index := make(map[K]int)
	for _, t := range tools {
		k := key(t)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, Bucket[K]{Key: k})
		}
		buckets[i].Tools = append(buckets[i].Tools, t)
	}
	return buckets
}

// Flatten returns the tools of all buckets in bucket order.
func Flatten[K comparable](buckets []Bucket[K]) []catalog.Tool {
	var out []catalog.Tool
	for _, b := range buckets {
		out = append(out, b.Tools...)
	}
	return out
}
