package home

import (
	"fmt"

	"github.com/stageproof/stageproof.dev/internal/platform/assets/registry"
	"github.com/stageproof/stageproof.dev/internal/services/web/templates"
)

// featureRecord is one homepage highlight before icon resolution.
type featureRecord struct {
	title       string
	icon        string
	description string
}

// featureRecords is the fixed homepage feature content. Order is display
// order; the list is read-only for the lifetime of the process.
var featureRecords = []featureRecord{
	{
		title:       "Pixel-perfect testing made simple.",
		icon:        "pixel-grid",
		description: "StageProof drives real browsers against your app and compares every frame to an approved baseline, so visual regressions never reach production.",
	},
	{
		title:       "Test it. Trust it. Ship it.",
		icon:        "shield-check",
		description: "Deterministic runs and automatic waiting keep suites flake-free, so a green build is a build you can ship.",
	},
	{
		title:       "Your app. Every screen. Zero bugs.",
		icon:        "devices",
		description: "One suite covers your entire viewport matrix, from the smallest phone to the widest desktop, in a single run.",
	},
}

type service struct {
	appName  string
	tagline  string
	features []templates.FeatureItem
}

// newService resolves feature icons once so render paths never touch the
// asset registry.
func newService(appName string, tagline string, icons *registry.Registry) (service, error) {
	features := make([]templates.FeatureItem, 0, len(featureRecords))
	for _, record := range featureRecords {
		href, err := icons.Icon(record.icon)
		if err != nil {
			return service{}, fmt.Errorf("resolve feature icon %q: %w", record.icon, err)
		}
		features = append(features, templates.FeatureItem{
			Title:       record.title,
			Icon:        href,
			Description: record.description,
		})
	}
	return service{appName: appName, tagline: tagline, features: features}, nil
}

func (s service) featureItems() []templates.FeatureItem {
	return s.features
}

func (s service) healthBody() string {
	return "ok"
}
