package hashtag

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/types"
)

// OptimizerStageName identifies the platform optimization stage at the gate.
const OptimizerStageName = "platform_hashtag_optimizer"

// Optimize filters the recommended set against the platform's inappropriate
// keywords, resizes it to the platform and content-type windows, re-ranks it
// by platform relevance, and attaches a compliance report. The optimized
// recommendation replaces the stored day artifact.
func Optimize(s *store.ContextStore, rec *types.HashtagRecommendation, contentType string) (*types.HashtagRecommendation, error) {
	if err := s.Precondition(OptimizerStageName, store.KeyBusinessProfile, store.KeyBrandProfile); err != nil {
		return nil, err
	}

	businessVal, _ := s.Get(store.KeyBusinessProfile)
	business := businessVal.(*types.BusinessProfile)

	window := Window(rec.Platform)
	min, max := window.Min, window.Max
	if ctMin, ctMax, ok := contentTypeWindow(rec.Platform, contentType); ok {
		min, max = ctMin, ctMax
	}

	kept := filterInappropriate(rec.FinalSet, rec.Platform)
	if len(kept) > max {
		rankByBusinessRelevance(kept, business.Industry)
		kept = kept[:max]
	}

	underfilled := false
	if len(kept) < min {
		kept = backfill(kept, business.Industry, min)
		// Backfilled tags must also clear the platform filter.
		kept = filterInappropriate(kept, rec.Platform)
		underfilled = len(kept) < min
	}

	rankByPlatformCriteria(kept, rec.Platform)

	optimized := &types.HashtagRecommendation{
		Day:                 rec.Day,
		Platform:            rec.Platform,
		ContentKeywords:     rec.ContentKeywords,
		FinalSet:            kept,
		BreakdownByCategory: breakdownByCategory(kept),
		Window:              types.HashtagWindow{Min: min, Max: max},
		Compliance:          checkCompliance(kept, rec.Platform, business.Industry, min, max),
		Underfilled:         underfilled,
	}

	s.Set(store.HashtagKey(rec.Day), optimized)
	return optimized, nil
}

var windowPattern = regexp.MustCompile(`(\d+)-(\d+)`)

// contentTypeWindow parses the "min-max" adjustment for a content type.
func contentTypeWindow(platform, contentType string) (int, int, bool) {
	adjustments, ok := contentTypeWindows[platform]
	if !ok {
		return 0, 0, false
	}
	spec, ok := adjustments[contentType]
	if !ok {
		return 0, 0, false
	}
	match := windowPattern.FindStringSubmatch(spec)
	if match == nil {
		return 0, 0, false
	}
	var min, max int
	fmt.Sscanf(match[1], "%d", &min)
	fmt.Sscanf(match[2], "%d", &max)
	return min, max, true
}

// filterInappropriate drops tags containing any of the platform's
// inappropriate keywords.
func filterInappropriate(candidates []types.HashtagCandidate, platform string) []types.HashtagCandidate {
	blocked := inappropriateKeywords[platform]
	kept := make([]types.HashtagCandidate, 0, len(candidates))
	for _, c := range candidates {
		tag := strings.ToLower(strings.TrimPrefix(c.Tag, "#"))
		bad := false
		for _, keyword := range blocked {
			if strings.Contains(tag, keyword) {
				bad = true
				break
			}
		}
		if !bad {
			kept = append(kept, c)
		}
	}
	return kept
}

// rankByBusinessRelevance orders candidates for truncation: industry word
// matches score 3, general business terms 2, medium length 1.
func rankByBusinessRelevance(candidates []types.HashtagCandidate, industry string) {
	industryWords := strings.Fields(strings.ToLower(industry))
	score := func(c types.HashtagCandidate) int {
		tag := strings.ToLower(strings.TrimPrefix(c.Tag, "#"))
		n := 0
		for _, word := range industryWords {
			if strings.Contains(tag, word) {
				n += 3
				break
			}
		}
		for _, keyword := range []string{"business", "professional", "industry", "marketing"} {
			if strings.Contains(tag, keyword) {
				n += 2
				break
			}
		}
		if len(tag) >= 4 && len(tag) <= 10 {
			n++
		}
		return n
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return score(candidates[i]) > score(candidates[j])
	})
}

// rankByPlatformCriteria orders the final set by how many platform criteria
// substrings each tag contains.
func rankByPlatformCriteria(candidates []types.HashtagCandidate, platform string) {
	criteria := platformRankCriteria[platform]
	score := func(c types.HashtagCandidate) int {
		tag := strings.ToLower(strings.TrimPrefix(c.Tag, "#"))
		n := 0
		for _, criterion := range criteria {
			if strings.Contains(tag, criterion) {
				n++
			}
		}
		return n
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return score(candidates[i]) > score(candidates[j])
	})
}

// checkCompliance runs the four platform compliance checks.
func checkCompliance(candidates []types.HashtagCandidate, platform, industry string, min, max int) *types.ComplianceReport {
	report := &types.ComplianceReport{}

	if len(candidates) >= min && len(candidates) <= max {
		report.CountCompliance = types.ComplianceCheck{Passed: true}
	} else {
		report.CountCompliance = types.ComplianceCheck{
			Passed:      false,
			Remediation: fmt.Sprintf("Adjust hashtag count to the %d-%d window", min, max),
		}
	}

	if balancedForPlatform(candidates) {
		report.AppropriatenessCompliance = types.ComplianceCheck{Passed: true}
	} else {
		report.AppropriatenessCompliance = types.ComplianceCheck{
			Passed:      false,
			Remediation: "Replace casual hashtags with professional alternatives",
		}
	}

	if len(filterInappropriate(candidates, platform)) == len(candidates) {
		report.AvoidListCompliance = types.ComplianceCheck{Passed: true}
	} else {
		report.AvoidListCompliance = types.ComplianceCheck{
			Passed:      false,
			Remediation: "Remove hashtags that appear on the platform's avoid list",
		}
	}

	if adheresToBestPractices(candidates, platform, industry) {
		report.BestPracticeAdherence = types.ComplianceCheck{Passed: true}
	} else {
		report.BestPracticeAdherence = types.ComplianceCheck{
			Passed:      false,
			Remediation: "Review and align with platform best practices",
		}
	}

	report.OverallCompliance = report.CountCompliance.Passed &&
		report.AppropriatenessCompliance.Passed &&
		report.AvoidListCompliance.Passed &&
		report.BestPracticeAdherence.Passed
	return report
}

// balancedForPlatform passes when professional-flavored tags are at least as
// common as casual-flavored ones.
func balancedForPlatform(candidates []types.HashtagCandidate) bool {
	professional, casual := 0, 0
	for _, c := range candidates {
		tag := strings.ToLower(c.Tag)
		for _, keyword := range professionalKeywords {
			if strings.Contains(tag, keyword) {
				professional++
				break
			}
		}
		for _, keyword := range casualKeywords {
			if strings.Contains(tag, keyword) {
				casual++
				break
			}
		}
	}
	return professional >= casual
}

// adheresToBestPractices evaluates the checkable platform practices and
// requires at least 70% to pass.
func adheresToBestPractices(candidates []types.HashtagCandidate, platform, industry string) bool {
	practices := bestPractices[platform]
	if len(practices) == 0 {
		return true
	}
	passed := 0
	for _, practice := range practices {
		if evaluatePractice(candidates, practice, industry) {
			passed++
		}
	}
	return float64(passed) >= float64(len(practices))*0.7
}

func evaluatePractice(candidates []types.HashtagCandidate, practice, industry string) bool {
	lowered := strings.ToLower(practice)
	switch {
	case strings.Contains(lowered, "relevant"):
		return halfRelevantToIndustry(candidates, industry)
	case strings.Contains(lowered, "sparingly"):
		return len(candidates) <= 3
	case strings.Contains(lowered, "professional"):
		return balancedForPlatform(candidates)
	case strings.Contains(lowered, "community"):
		for _, c := range candidates {
			tag := strings.ToLower(c.Tag)
			if strings.Contains(tag, "community") || strings.Contains(tag, "local") {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// halfRelevantToIndustry passes when at least half the tags contain an
// industry word.
func halfRelevantToIndustry(candidates []types.HashtagCandidate, industry string) bool {
	if len(candidates) == 0 {
		return false
	}
	industryWords := strings.Fields(strings.ToLower(industry))
	relevant := 0
	for _, c := range candidates {
		tag := strings.ToLower(strings.TrimPrefix(c.Tag, "#"))
		for _, word := range industryWords {
			if strings.Contains(tag, word) {
				relevant++
				break
			}
		}
	}
	return relevant*2 >= len(candidates)
}
