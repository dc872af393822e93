package usecase

import (
	"math"

	"github.com/AJEETSINGHPATEL/jobportal-backend/internal/domain"
)

// ScoreProfile computes the 0-100 completion percentage persisted on every
// profile write. It is a weighted-points model: each field or entry adds to
// a numerator when filled and to a denominator whether filled or not, so an
// empty optional field still drags the score down.
func ScoreProfile(p *domain.Profile) int {
	var num, denom float64

	// Required identity fields weigh double.
	for _, v := range []string{p.FullName, p.Email} {
		denom += 2
		if v != "" {
			num += 2
		}
	}

	for _, v := range []string{p.Phone, p.Address, p.Headline, p.Summary, p.ProfilePicture} {
		denom += 1
		if v != "" {
			num += 1
		}
	}

	// An entry missing either key sub-field still counts against the
	// denominator; an absent section counts for nothing at all.
	for _, e := range p.Experience {
		denom += 2
		if e.Title != "" && e.Company != "" {
			num += 2
		}
	}
	for _, e := range p.Education {
		denom += 2
		if e.School != "" && e.Degree != "" {
			num += 2
		}
	}

	// Skills are scored against a fixed expectation of twenty.
	denom += 10
	skillPoints := 0.5 * float64(len(p.Skills))
	if skillPoints > 10 {
		skillPoints = 10
	}
	num += skillPoints

	if len(p.Projects) == 0 {
		// No projects at all reads as two expected but missing.
		denom += 4
	} else {
		for _, pr := range p.Projects {
			denom += 2
			if pr.Title != "" && pr.Description != "" {
				num += 2
			}
		}
	}

	if denom == 0 {
		return 0
	}
	score := int(math.Floor(100 * num / denom))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
