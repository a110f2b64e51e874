package post

import (
	"fmt"
	"strings"
	"time"

	"github.com/jonathan/content-planner/internal/store"
	"github.com/jonathan/content-planner/internal/types"
)

// StageName identifies the daily post stage at the gate.
const StageName = "daily_post_assembler"

// Request carries the per-day assembly inputs. Audience, voice, and weekly
// structure come from the stored artifacts.
type Request struct {
	Day          int
	ContentTheme string
	PostType     string
	Platform     string
}

// AssembleDailyPost builds the post for one day and writes it under the
// day-scoped key. Template selection goes through the picker; passing nil
// always selects the first template.
func AssembleDailyPost(s *store.ContextStore, picker Picker, req Request) (*types.DailyPost, error) {
	if req.Day < 1 || req.Day > 7 {
		return nil, &types.ValidationError{Field: "day", Message: fmt.Sprintf("day out of range: %d", req.Day)}
	}
	if err := s.Precondition(StageName,
		store.KeyBusinessProfile, store.KeyBrandProfile, store.KeyStrategyFramework); err != nil {
		return nil, err
	}
	if picker == nil {
		picker = firstPicker{}
	}

	businessVal, _ := s.Get(store.KeyBusinessProfile)
	brandVal, _ := s.Get(store.KeyBrandProfile)
	frameworkVal, _ := s.Get(store.KeyStrategyFramework)

	business := businessVal.(*types.BusinessProfile)
	brand := brandVal.(*types.BrandProfile)
	framework := frameworkVal.(*types.StrategyFramework)

	// Posts may only target platforms the run selected.
	if selectionVal, ok := s.Get(store.KeyPlatformSelection); ok {
		selection := selectionVal.(*types.PlatformSelection)
		if !selection.Contains(req.Platform) {
			return nil, &types.ValidationError{Field: "platform", Message: "platform not in selection: " + req.Platform}
		}
	} else if !types.IsValidPlatform(req.Platform) {
		return nil, &types.ValidationError{Field: "platform", Message: "unsupported platform: " + req.Platform}
	}

	dayName := types.DayName(req.Day)

	titles := titleTemplates(req.ContentTheme, business.TargetAudience, brand.Voice, req.Platform)
	title := titles[picker.Pick(len(titles))]

	hookFamily := hooks[req.ContentTheme]
	if hookFamily == nil {
		hookFamily = hooks[hookFallbackTheme]
	}
	hook := hookFamily[picker.Pick(len(hookFamily))]
	body := mainContent(req.ContentTheme, business, brand)

	ctaFamily := callsToAction[req.Platform]
	cta := ctaFamily[picker.Pick(len(ctaFamily))]

	caption := formatCaption(strings.Join([]string{hook, body, cta}, "\n\n"), req.Platform)

	built := &types.DailyPost{
		Day:                  req.Day,
		DayName:              dayName,
		Platform:             req.Platform,
		Goal:                 resolveGoal(dayName, req.ContentTheme, framework),
		PostType:             req.PostType,
		Title:                title,
		Caption:              caption,
		ContentTheme:         req.ContentTheme,
		PlatformOptimization: platformOptimizations[req.Platform],
		BrandAlignment: types.BrandAlignment{
			Voice:  brand.Voice,
			Tone:   brand.Tone,
			Values: brand.CoreValues,
		},
		TargetAudience: business.TargetAudience,
		GeneratedAt:    time.Now().UTC(),
	}

	s.Set(store.DayPostKey(req.Day), built)
	return built, nil
}

// resolveGoal picks the post goal: universal themes carry a fixed goal,
// otherwise the weekday focus area decides, with a generic default.
func resolveGoal(dayName, theme string, framework *types.StrategyFramework) string {
	if goal, ok := goalByTheme[theme]; ok {
		return goal
	}
	if plan, ok := framework.WeeklyStructure[dayName]; ok {
		if goal, ok := goalByFocus[plan.FocusArea]; ok {
			return goal
		}
	}
	return defaultGoal
}

// formatCaption applies platform formatting. Instagram gets extra line
// breaks for readability; the others keep the assembled text.
func formatCaption(caption, platform string) string {
	if platform == types.PlatformInstagram {
		return strings.ReplaceAll(caption, ". ", ".\n\n")
	}
	return caption
}
