// AngelaMos | 2026
// kinds.go

package settings

import (
	"encoding/json"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/carterperez-dev/portfolio-cms/internal/core"
)

// Kind names one singleton settings document.
type Kind string

const (
	KindWebsite Kind = "website"
	KindHome    Kind = "home"
	KindContact Kind = "contact"
	KindAboutUs Kind = "about_us"
)

var kinds = []Kind{KindWebsite, KindHome, KindContact, KindAboutUs}

func Kinds() []Kind {
	return append([]Kind(nil), kinds...)
}

// definition carries everything that differs between the settings kinds.
type definition struct {
	label    string
	policies Policies

	// initial is the document a create request is merged onto.
	initial func() map[string]any

	// newDocument returns an empty typed document of this kind.
	newDocument func() document

	// released lists public ids that are no longer referenced once prev
	// is replaced by next. next is nil on delete.
	released func(prev, next document) []string
}

var definitions = map[Kind]definition{
	KindWebsite: {
		label:       "Website",
		policies:    websitePolicies,
		initial:     emptyDocument,
		newDocument: func() document { return &Website{} },
		released:    websiteReleased,
	},
	KindHome: {
		label:       "Home",
		policies:    homePolicies,
		initial:     emptyDocument,
		newDocument: func() document { return &Home{} },
		released:    homeReleased,
	},
	KindContact: {
		label:       "Contact Us",
		policies:    contactPolicies,
		initial:     contactInitial,
		newDocument: func() document { return &Contact{} },
	},
	KindAboutUs: {
		label:       "About Us",
		policies:    aboutUsPolicies,
		initial:     emptyDocument,
		newDocument: func() document { return &AboutUs{} },
	},
}

func lookup(kind Kind) (definition, error) {
	def, ok := definitions[kind]
	if !ok {
		return definition{}, fmt.Errorf("unknown settings kind %q", kind)
	}
	return def, nil
}

func emptyDocument() map[string]any {
	return map[string]any{}
}

func contactInitial() map[string]any {
	fields, err := toMap(defaultFormFields())
	if err != nil {
		panic(fmt.Sprintf("encode default form fields: %v", err))
	}
	return map[string]any{"contactUsFormFields": fields}
}

// decode turns a merged map into the normalized typed document. A nil
// validator skips validation, which is how stored documents are loaded.
func (d definition) decode(
	v *validator.Validate,
	doc map[string]any,
) (document, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("encode settings: %w", err)
	}

	out := d.newDocument()
	if err := json.Unmarshal(raw, out); err != nil {
		return nil, core.InvalidInputError("Invalid settings document")
	}
	out.normalize()

	if v != nil {
		if err := core.ValidateStruct(v, out); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func websiteReleased(prev, next document) []string {
	old, ok := prev.(*Website)
	if !ok {
		return nil
	}

	if next == nil {
		return []string{old.Logo.PublicID, old.Favicon.PublicID}
	}

	cur, ok := next.(*Website)
	if !ok {
		return nil
	}

	var ids []string
	if old.Logo.PublicID != cur.Logo.PublicID {
		ids = append(ids, old.Logo.PublicID)
	}
	if old.Favicon.PublicID != "" && old.Favicon.PublicID != cur.Favicon.PublicID {
		ids = append(ids, old.Favicon.PublicID)
	}
	return ids
}

// homeReleased reports the images of features that were removed or whose
// image changed. The caller releases them once the new document is
// committed, so a failed save never loses an image still in use.
func homeReleased(prev, next document) []string {
	old, ok := prev.(*Home)
	if !ok {
		return nil
	}

	current := map[string]string{}
	if cur, ok := next.(*Home); ok {
		for _, f := range cur.Features {
			current[f.Key] = f.Image.PublicID
		}
	}

	var ids []string
	for _, f := range old.Features {
		publicID, kept := current[f.Key]
		if !kept || publicID != f.Image.PublicID {
			ids = append(ids, f.Image.PublicID)
		}
	}
	return ids
}

func toMap(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}
