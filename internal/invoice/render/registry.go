package render

import (
	"bytes"
	"fmt"
	"html/template"

	subscriptiondomain "github.com/Candratama/invow-sub000/internal/subscription/domain"
	"github.com/gosimple/slug"
)

// Template describes one registered visual template.
type Template struct {
	ID          string                  `json:"id"`
	Name        string                  `json:"name"`
	Description string                  `json:"description"`
	Tier        subscriptiondomain.Tier `json:"tier"`

	tpl *template.Template
}

// TemplateAccess is a registry entry annotated with the caller's access, used
// to render locked templates as upsell affordances instead of hiding them.
type TemplateAccess struct {
	Template
	IsLocked bool `json:"is_locked"`
}

type templateSpec struct {
	name        string
	description string
	tier        subscriptiondomain.Tier
	content     string
}

// The registry is defined at build time and never mutated at runtime.
// Exactly one entry is free tier.
var registry = buildRegistry([]templateSpec{
	{"Classic", "Traditional layout with a colored header band", subscriptiondomain.TierFree, classicContent},
	{"Simple", "Minimal monochrome layout with generous whitespace", subscriptiondomain.TierPremium, simpleContent},
	{"Modern", "Left accent rail with bold typography", subscriptiondomain.TierPremium, modernContent},
	{"Elegant", "Serif headings with fine rules", subscriptiondomain.TierPremium, elegantContent},
	{"Bold", "Full-bleed brand header and heavy totals", subscriptiondomain.TierPremium, boldContent},
	{"Compact", "Dense single-column layout for short invoices", subscriptiondomain.TierPremium, compactContent},
	{"Creative", "Angled header with floating summary card", subscriptiondomain.TierPremium, creativeContent},
	{"Corporate", "Two-column letterhead with formal footer", subscriptiondomain.TierPremium, corporateContent},
})

func buildRegistry(specs []templateSpec) []Template {
	templates := make([]Template, 0, len(specs))
	free := 0
	for _, spec := range specs {
		if spec.tier == subscriptiondomain.TierFree {
			free++
		}
		id := slug.Make(spec.name)
		tpl := template.Must(
			template.New(id).Funcs(templateFuncs()).Parse(documentShell),
		)
		tpl = template.Must(tpl.Parse(spec.content))
		templates = append(templates, Template{
			ID:          id,
			Name:        spec.name,
			Description: spec.description,
			Tier:        spec.tier,
			tpl:         tpl,
		})
	}
	if free != 1 {
		panic(fmt.Sprintf("template registry must have exactly one free entry, got %d", free))
	}
	return templates
}

// DefaultTemplateID returns the free-tier template's ID.
func DefaultTemplateID() string {
	for _, t := range registry {
		if t.Tier == subscriptiondomain.TierFree {
			return t.ID
		}
	}
	return ""
}

// Lookup returns the registered template for the given ID.
func Lookup(id string) (Template, bool) {
	for _, t := range registry {
		if t.ID == id {
			return t, true
		}
	}
	return Template{}, false
}

// TemplatesForTier returns the templates the given tier may use.
func TemplatesForTier(tier subscriptiondomain.Tier) []Template {
	out := make([]Template, 0, len(registry))
	for _, t := range registry {
		if t.Tier == subscriptiondomain.TierFree || tier == subscriptiondomain.TierPremium {
			out = append(out, t)
		}
	}
	return out
}

// CanAccess reports whether the tier may render the template. Unknown IDs
// resolve to no access rather than an error so callers can fall back to the
// default template without special-casing.
func CanAccess(id string, tier subscriptiondomain.Tier) bool {
	t, ok := Lookup(id)
	if !ok {
		return false
	}
	return t.Tier == subscriptiondomain.TierFree || tier == subscriptiondomain.TierPremium
}

// TemplatesWithAccess returns every registered template annotated with
// whether it is locked for the given tier.
func TemplatesWithAccess(tier subscriptiondomain.Tier) []TemplateAccess {
	out := make([]TemplateAccess, 0, len(registry))
	for _, t := range registry {
		out = append(out, TemplateAccess{
			Template: t,
			IsLocked: tier != subscriptiondomain.TierPremium && t.Tier == subscriptiondomain.TierPremium,
		})
	}
	return out
}

// Render produces the HTML document for the given template ID. An unknown or
// inaccessible template silently falls back to the default free template; the
// caller's tier can therefore never unlock a premium layout by guessing IDs.
func Render(id string, in Input) (string, error) {
	t, ok := Lookup(id)
	if !ok || !CanAccess(id, in.Tier) {
		t, _ = Lookup(DefaultTemplateID())
	}

	doc := buildDocument(in)

	var buf bytes.Buffer
	if err := t.tpl.Execute(&buf, doc); err != nil {
		return "", fmt.Errorf("render template %s: %w", t.ID, err)
	}
	return buf.String(), nil
}
