package hashtag

import (
	"sort"
	"strings"

	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/types"
)

// StageName identifies the hashtag research stage at the gate.
const StageName = "hashtag_recommender"

// Recommend extracts keywords from the post, gathers candidates from the
// trending, industry, audience, platform, branded, and content pools under
// the category quotas, scores them against the keywords, and writes the
// ranked set under the day-scoped key. Deduplication keeps the first-seen
// candidate so ordering stays deterministic.
func Recommend(s *store.ContextStore, post *types.DailyPost, branded []string) (*types.HashtagRecommendation, error) {
	if err := s.Precondition(StageName, store.KeyBusinessProfile, store.KeyBrandProfile); err != nil {
		return nil, err
	}

	businessVal, _ := s.Get(store.KeyBusinessProfile)
	business := businessVal.(*types.BusinessProfile)

	keywords := ExtractKeywords(post.Title, post.Caption, post.ContentTheme, post.Goal)
	window := Window(post.Platform)

	candidates := gatherCandidates(business, post.Platform, keywords, branded, window.Max)
	candidates = dedupFirstSeen(candidates)
	scoreAgainstKeywords(candidates, keywords)

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].RelevanceScore > candidates[j].RelevanceScore
	})
	if len(candidates) > window.Max {
		candidates = candidates[:window.Max]
	}

	underfilled := false
	if len(candidates) < window.Min {
		candidates = backfill(candidates, business.Industry, window.Min)
		underfilled = len(candidates) < window.Min
	}

	rec := &types.HashtagRecommendation{
		Day:                 post.Day,
		Platform:            post.Platform,
		ContentKeywords:     keywords,
		FinalSet:            candidates,
		BreakdownByCategory: breakdownByCategory(candidates),
		Window:              window,
		Underfilled:         underfilled,
	}

	s.Set(store.HashtagKey(post.Day), rec)
	return rec, nil
}

// gatherCandidates fills the category quotas in fixed order: popular
// (trending), niche (industry + audience), branded, content. Pools sharing a
// category draw from one budget so the quota is an upper bound across them.
func gatherCandidates(business *types.BusinessProfile, platform string, keywords, branded []string, maxCount int) []types.HashtagCandidate {
	var candidates []types.HashtagCandidate
	take := func(tags []string, category string, limit int) int {
		taken := 0
		for _, tag := range tags {
			if taken == limit {
				break
			}
			candidates = append(candidates, types.HashtagCandidate{Tag: tag, SourceCategory: category})
			taken++
		}
		return taken
	}

	popularQuota := quota(maxCount, popularQuotaPct)
	nicheQuota := quota(maxCount, nicheQuotaPct)
	brandedQuota := quota(maxCount, brandedQuotaPct)
	contentQuota := quota(maxCount, contentQuotaPct)

	// Popular: general and industry trending, then platform trending from
	// whatever budget remains.
	trending := append([]string{}, generalTrending...)
	if key, ok := industryCategory(business.Industry); ok {
		trending = append(trending, industryTrending[key]...)
	} else {
		trending = append(trending, defaultIndustryTrending...)
	}
	popularLeft := popularQuota
	popularLeft -= take(trending, types.SourceTrending, popularLeft)
	take(platformTrending[platform], types.SourcePlatform, popularLeft)

	// Niche: industry gets half the budget rounded up, audience the rest.
	industryNiche := defaultIndustryPool.niche
	if key, ok := industryCategory(business.Industry); ok {
		industryNiche = industryPools[key].niche
	}
	audienceNiche := audiencePools[audienceCategory(business.TargetAudience)].niche
	nicheLeft := nicheQuota
	nicheLeft -= take(industryNiche, types.SourceIndustry, (nicheQuota+1)/2)
	take(audienceNiche, types.SourceAudience, nicheLeft)

	// Branded: at most two custom tags.
	if brandedQuota > 2 {
		brandedQuota = 2
	}
	take(branded, types.SourceBranded, brandedQuota)

	// Content: hashtags derived from the top extracted keywords.
	contentTags := make([]string, 0, contentQuota)
	for _, keyword := range keywords {
		if len(contentTags) == contentQuota {
			break
		}
		contentTags = append(contentTags, "#"+keyword)
	}
	take(contentTags, types.SourceContent, contentQuota)

	return candidates
}

// quota converts a percentage of the window maximum into a count, never
// below one.
func quota(maxCount, pct int) int {
	n := maxCount * pct / 100
	if n < 1 {
		n = 1
	}
	return n
}

// dedupFirstSeen drops repeated tags, keeping the earliest occurrence.
func dedupFirstSeen(candidates []types.HashtagCandidate) []types.HashtagCandidate {
	seen := make(map[string]struct{}, len(candidates))
	out := candidates[:0]
	for _, c := range candidates {
		key := strings.ToLower(c.Tag)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, c)
	}
	return out
}

// scoreAgainstKeywords adds one point per bidirectional case-insensitive
// substring match between the tag and a content keyword.
func scoreAgainstKeywords(candidates []types.HashtagCandidate, keywords []string) {
	for i := range candidates {
		tag := strings.ToLower(strings.TrimPrefix(candidates[i].Tag, "#"))
		score := 0
		for _, keyword := range keywords {
			if strings.Contains(tag, keyword) || strings.Contains(keyword, tag) {
				score++
			}
		}
		candidates[i].RelevanceScore = score
	}
}

// backfill tops the set up to the minimum from the industry defaults, then
// the general list, skipping tags already present.
func backfill(candidates []types.HashtagCandidate, industry string, min int) []types.HashtagCandidate {
	present := make(map[string]struct{}, len(candidates))
	for _, c := range candidates {
		present[strings.ToLower(c.Tag)] = struct{}{}
	}

	var pool []string
	if key, ok := industryCategory(industry); ok {
		pool = append(pool, backfillByIndustry[key]...)
	}
	pool = append(pool, generalBackfill...)

	for _, tag := range pool {
		if len(candidates) >= min {
			break
		}
		if _, dup := present[strings.ToLower(tag)]; dup {
			continue
		}
		present[strings.ToLower(tag)] = struct{}{}
		candidates = append(candidates, types.HashtagCandidate{Tag: tag, SourceCategory: types.SourceIndustry})
	}
	return candidates
}

func breakdownByCategory(candidates []types.HashtagCandidate) map[string][]string {
	breakdown := make(map[string][]string)
	for _, c := range candidates {
		breakdown[c.SourceCategory] = append(breakdown[c.SourceCategory], c.Tag)
	}
	return breakdown
}
