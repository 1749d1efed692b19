// Package leads defines the lead record and its priority buckets.
//
// Scores are produced elsewhere; the only facts this package encodes about
// scoring are the documented bucket thresholds. There is no scoring formula
// here and none should be added.
package leads

import (
	"sort"
	"strings"
)

// Priority is the outreach bucket derived from a lead's score.
type Priority string

// Bucket thresholds: 90-100 Hot, 80-89 High, 70-79 Qualified, below 70 Nurture.
const (
	PriorityHot       Priority = "Hot"
	PriorityHigh      Priority = "High"
	PriorityQualified Priority = "Qualified"
	PriorityNurture   Priority = "Nurture"
)

// PriorityForScore maps a numeric score to its bucket.
func PriorityForScore(score int) Priority {
	switch {
	case score >= 90:
		return PriorityHot
	case score >= 80:
		return PriorityHigh
	case score >= 70:
		return PriorityQualified
	default:
		return PriorityNurture
	}
}

// Lead is a prospective sales contact. Field names follow the documented
// spreadsheet/database columns.
type Lead struct {
	DateAdded        string
	Name             string
	Title            string
	Company          string
	Location         string
	Industry         string
	CompanySize      string
	LinkedInURL      string
	Email1           string
	Email2           string
	Email3           string
	Phone            string
	WhatsApp         string
	Website          string
	ProductsInterest string
	Score            int
	Notes            string
	NextAction       string
	Status           string
}

// Priority returns the bucket for the lead's score.
func (l Lead) Priority() Priority {
	return PriorityForScore(l.Score)
}

// SortByScore orders leads hottest-first. The sort is stable so equal scores
// keep their original order.
func SortByScore(ls []Lead) {
	sort.SliceStable(ls, func(i, j int) bool { return ls[i].Score > ls[j].Score })
}

// CountByPriority tallies leads per bucket.
func CountByPriority(ls []Lead) map[Priority]int {
	out := make(map[Priority]int, 4)
	for _, l := range ls {
		out[l.Priority()]++
	}
	return out
}

// CountByRegion tallies leads whose location mentions each region.
func CountByRegion(ls []Lead, regions []string) map[string]int {
	out := make(map[string]int, len(regions))
	for _, region := range regions {
		out[region] = 0
	}
	for _, l := range ls {
		loc := strings.ToLower(l.Location)
		for _, region := range regions {
			if region != "" && strings.Contains(loc, strings.ToLower(region)) {
				out[region]++
			}
		}
	}
	return out
}
